package pets

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database interactions for the pets feature
type Repository struct {
	pets      *mongo.Collection
	residents *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	pets := db.Collection("pets")

	_, _ = pets.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		// A resident's pets, newest first
		Keys: bson.D{
			{Key: "residentId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	})

	return &Repository{
		pets:      pets,
		residents: db.Collection("residents"),
	}
}

// ResidentExists checks that the owning resident is registered.
func (r *Repository) ResidentExists(ctx context.Context, residentID primitive.ObjectID) (bool, error) {
	count, err := r.residents.CountDocuments(ctx, bson.M{"_id": residentID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertPet stores the pet row and fills in its generated id.
func (r *Repository) InsertPet(ctx context.Context, pet *Pet) error {
	if pet.ID.IsZero() {
		pet.ID = primitive.NewObjectID()
	}
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = time.Now()
	}
	_, err := r.pets.InsertOne(ctx, pet)
	return err
}

// FindPet returns the pet with the given id, nil when none exists.
func (r *Repository) FindPet(ctx context.Context, petID primitive.ObjectID) (*Pet, error) {
	var pet Pet
	err := r.pets.FindOne(ctx, bson.M{"_id": petID}).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

// ListByResident returns a resident's pets, newest first.
func (r *Repository) ListByResident(ctx context.Context, residentID primitive.ObjectID) ([]Pet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.pets.Find(ctx, bson.M{"residentId": residentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pets []Pet
	if err = cursor.All(ctx, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

// UpdatePet overwrites the editable fields of a pet and returns the stored
// document, nil when the pet does not exist.
func (r *Repository) UpdatePet(ctx context.Context, petID primitive.ObjectID, input UpdatePetInput) (*Pet, error) {
	update := bson.M{"$set": bson.M{
		"name":        input.Name,
		"specie":      input.Specie,
		"breed":       input.Breed,
		"color":       input.Color,
		"description": input.Description,
		"status":      input.Status,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var pet Pet
	err := r.pets.FindOneAndUpdate(ctx, bson.M{"_id": petID}, update, opts).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pet, nil
}
