package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// PedidoItemRequest accepts both shapes the UIs send: a flat productName or
// a nested drink object. Either may name the beverage.
type PedidoItemRequest struct {
	ProductName string        `json:"productName"`
	Drink       *DrinkRequest `json:"drink"`
	Size        string        `json:"size"`
	Quantity    int           `json:"quantity"`
}

type DrinkRequest struct {
	Name string `json:"name"`
}

// NombreBebida resolves the requested beverage name, preferring the nested
// drink object when present.
func (i PedidoItemRequest) NombreBebida() string {
	if i.Drink != nil && i.Drink.Name != "" {
		return i.Drink.Name
	}
	return i.ProductName
}

type CrearPedidoRequest struct {
	Items []PedidoItemRequest `json:"items"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DrinkResponse struct {
	Name  string  `json:"name"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

type PedidoItemResponse struct {
	Drink    DrinkResponse `json:"drink"`
	Size     string        `json:"size"`
	Quantity int           `json:"quantity"`
}

type PedidoResponse struct {
	ID         int64                `json:"id"`
	Items      []PedidoItemResponse `json:"items"`
	TotalPrice float64              `json:"totalPrice"`
	OrderDate  time.Time            `json:"orderDate"`
	Status     string               `json:"status"`
}
