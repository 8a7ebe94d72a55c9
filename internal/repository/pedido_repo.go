package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/JordiGD/Parcial2-Soft1/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ordersCollection    = "orders"
	sequencesCollection = "sequences"
	// The single counter document used for order ids.
	sequenceDocID = "sequence"
	// First assigned business id is sequenceStart+1.
	sequenceStart = 1000
)

// PedidoRepository persists orders in MongoDB and hands out sequential
// business ids from the sequences counter collection.
type PedidoRepository interface {
	Crear(ctx context.Context, p *model.Pedido) error
	Listar(ctx context.Context) ([]model.Pedido, error)
	SiguienteID(ctx context.Context) (int64, error)
	// Inicializar seeds the counter document and the orders indexes.
	// Idempotent; call once at startup.
	Inicializar(ctx context.Context) error
}

type pedidoRepository struct {
	orders    *mongo.Collection
	sequences *mongo.Collection
}

func NewPedidoRepository(db *mongo.Database) PedidoRepository {
	return &pedidoRepository{
		orders:    db.Collection(ordersCollection),
		sequences: db.Collection(sequencesCollection),
	}
}

func (r *pedidoRepository) Inicializar(ctx context.Context) error {
	_, err := r.sequences.UpdateOne(ctx,
		bson.M{"_id": sequenceDocID},
		bson.M{"$setOnInsert": bson.M{"seq": int64(sequenceStart)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	_, err = r.orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "orderDate", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}

func (r *pedidoRepository) Crear(ctx context.Context, p *model.Pedido) error {
	res, err := r.orders.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.MongoID = oid
	}
	return nil
}

func (r *pedidoRepository) Listar(ctx context.Context) ([]model.Pedido, error) {
	cur, err := r.orders.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []model.Pedido
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *pedidoRepository) SiguienteID(ctx context.Context) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	// No upsert here: an absent counter would restart ids at 1 instead of
	// continuing from the seeded base. Inicializar owns the seeding.
	err := r.sequences.FindOneAndUpdate(ctx,
		bson.M{"_id": sequenceDocID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, fmt.Errorf("sequences: contador %q no inicializado", sequenceDocID)
	}
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}
