package residents

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database interactions for the residents feature
type Repository struct {
	residents *mongo.Collection
	houses    *mongo.Collection
}

// NewRepository creates repository and ensures the email uniqueness index
func NewRepository(db *mongo.Database) *Repository {
	residents := db.Collection("residents")

	_, _ = residents.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &Repository{
		residents: residents,
		houses:    db.Collection("houses"),
	}
}

// FindByEmail returns the resident with the given email, nil when none exists.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Resident, error) {
	var resident Resident
	err := r.residents.FindOne(ctx, bson.M{"email": email}).Decode(&resident)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resident, nil
}

// FindHouse returns the house with the given id, nil when none exists.
func (r *Repository) FindHouse(ctx context.Context, houseID primitive.ObjectID) (*House, error) {
	var house House
	err := r.houses.FindOne(ctx, bson.M{"_id": houseID}).Decode(&house)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &house, nil
}
