package repository

import (
	"context"
	"strings"

	"github.com/JordiGD/Parcial2-Soft1/internal/model"

	"gorm.io/gorm"
)

// BebidaRepository maps Bebida to/from the bebidas table. It executes the
// primitive store operations only; business rules live in the service.
type BebidaRepository interface {
	Crear(ctx context.Context, b *model.Bebida) error
	Listar(ctx context.Context) ([]model.Bebida, error)
	// BuscarPorNombre does a case-insensitive substring match and returns
	// the first row only; the tie-break among multiple matches is whatever
	// the store returns first.
	BuscarPorNombre(ctx context.Context, nombre string) (*model.Bebida, error)
	ObtenerPorNombreYTamano(ctx context.Context, nombre, tamano string) (*model.Bebida, error)
	EliminarPorID(ctx context.Context, id int) (bool, error)
	Contar(ctx context.Context) (int64, error)
}

type bebidaRepository struct{ db *gorm.DB }

func NewBebidaRepository(db *gorm.DB) BebidaRepository {
	return &bebidaRepository{db: db}
}

func (r *bebidaRepository) Crear(ctx context.Context, b *model.Bebida) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bebidaRepository) Listar(ctx context.Context) ([]model.Bebida, error) {
	var list []model.Bebida
	err := r.db.WithContext(ctx).Find(&list).Error
	return list, err
}

func (r *bebidaRepository) BuscarPorNombre(ctx context.Context, nombre string) (*model.Bebida, error) {
	var b model.Bebida
	err := r.db.WithContext(ctx).Where("name ILIKE ?", "%"+nombre+"%").First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bebidaRepository) ObtenerPorNombreYTamano(ctx context.Context, nombre, tamano string) (*model.Bebida, error) {
	var b model.Bebida
	err := r.db.WithContext(ctx).
		Where("lower(name) = lower(?) AND size = ?", nombre, strings.ToLower(tamano)).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bebidaRepository) EliminarPorID(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Bebida{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *bebidaRepository) Contar(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Bebida{}).Count(&total).Error
	return total, err
}
