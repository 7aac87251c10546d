package register

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ressly/ressly-be/internal/features/residents"
)

// ErrDuplicateEmail is returned by InsertResident when the unique email
// index fires.
var ErrDuplicateEmail = errors.New("a resident with this email already exists")

// Repository handles database interactions for the registration flow
type Repository struct {
	codes     *mongo.Collection
	houses    *mongo.Collection
	residents *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		codes:     db.Collection("invitation_codes"),
		houses:    db.Collection("houses"),
		residents: db.Collection("residents"),
	}
}

// FindCodeByValue returns the invitation code row matching the raw code
// string, nil when none exists.
func (r *Repository) FindCodeByValue(ctx context.Context, code string) (*InvitationCode, error) {
	var row InvitationCode
	err := r.codes.FindOne(ctx, bson.M{"code": code}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ConsumeCode marks the invitation code as used. It only matches codes that
// are still unused, so the returned count is 0 when the code was already
// consumed or never existed.
func (r *Repository) ConsumeCode(ctx context.Context, codeID primitive.ObjectID) (int64, error) {
	result, err := r.codes.UpdateOne(ctx,
		bson.M{"_id": codeID, "isUsed": false},
		bson.M{"$set": bson.M{"isUsed": true}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// FindHouseByNumber returns the house with the given number inside the
// residential, nil when none exists.
func (r *Repository) FindHouseByNumber(ctx context.Context, houseNumber string, residentialID primitive.ObjectID) (*residents.House, error) {
	var house residents.House
	err := r.houses.FindOne(ctx, bson.M{
		"houseNumber":   houseNumber,
		"residentialId": residentialID,
	}).Decode(&house)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &house, nil
}

// InsertResident stores the resident row and fills in its generated id.
// Duplicate emails surface as ErrDuplicateEmail.
func (r *Repository) InsertResident(ctx context.Context, resident *residents.Resident) error {
	if resident.ID.IsZero() {
		resident.ID = primitive.NewObjectID()
	}
	if resident.CreatedAt.IsZero() {
		resident.CreatedAt = time.Now()
	}
	_, err := r.residents.InsertOne(ctx, resident)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}
