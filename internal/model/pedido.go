package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados de un pedido. Orders that fail validation are never persisted;
// REJECTED exists for parity with clients that render the status.
const (
	PedidoConfirmado = "CONFIRMED"
	PedidoRechazado  = "REJECTED"
)

// Pedido is a coffee order stored in the "orders" Mongo collection.
// MongoID is the ObjectId; ID is the sequential business id clients see.
type Pedido struct {
	MongoID    primitive.ObjectID `bson:"_id,omitempty"`
	ID         int64              `bson:"id"`
	Items      []PedidoItem       `bson:"items"`
	TotalPrice float64            `bson:"totalPrice"`
	OrderDate  time.Time          `bson:"orderDate"`
	Status     string             `bson:"status"`
}

// PedidoItem is one order line. The drink snapshot is embedded as priced at
// order time, so later menu changes do not rewrite order history.
type PedidoItem struct {
	Drink    Drink  `bson:"drink"`
	Size     string `bson:"size"`
	Quantity int    `bson:"quantity"`
}

// Drink is the beverage snapshot embedded in an order item.
type Drink struct {
	Name  string  `bson:"name"`
	Size  string  `bson:"size"`
	Price float64 `bson:"price"`
}
