package model

// Bebida is the single catalog entity: a beverage on the menu.
// The schema only enforces column types; normalization, price range and
// uniqueness of (name, size) are the service layer's responsibility.
type Bebida struct {
	ID    int     `gorm:"primaryKey"`
	Name  string  `gorm:"size:100;not null"`
	Size  string  `gorm:"size:20;not null"`
	Price float64 `gorm:"not null"`
}

func (Bebida) TableName() string { return "bebidas" }

// Tamaños válidos de bebida.
const (
	TamanoSmall  = "small"
	TamanoMedium = "medium"
	TamanoLarge  = "large"
)

// TamanosValidos lists the closed size enum, in menu order.
var TamanosValidos = []string{TamanoSmall, TamanoMedium, TamanoLarge}
