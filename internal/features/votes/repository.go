package votes

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ressly/ressly-be/internal/features/reports"
)

// ErrDuplicateVote is returned by InsertVote when the unique (report, voter)
// constraint fires. The service treats it as "already voted" and resolves the
// cast by re-reading, never as a failure.
var ErrDuplicateVote = errors.New("vote already exists for this report and resident")

// Repository handles database interactions for the votes feature
type Repository struct {
	votes     *mongo.Collection
	reports   *mongo.Collection
	residents *mongo.Collection
}

// NewRepository creates repository and ensures the uniqueness constraint
func NewRepository(db *mongo.Database) *Repository {
	votes := db.Collection("report_votes")

	// Unique compound index: the source of truth for one-vote-per-pair.
	_, _ = votes.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "reportId", Value: 1},
			{Key: "residentId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})

	return &Repository{
		votes:     votes,
		reports:   db.Collection("reports"),
		residents: db.Collection("residents"),
	}
}

// FindReport returns the target report or nil when absent.
func (r *Repository) FindReport(ctx context.Context, reportID primitive.ObjectID) (*reports.Report, error) {
	var report reports.Report
	err := r.reports.FindOne(ctx, bson.M{"_id": reportID}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

// ResidentExists checks that the voter is registered.
func (r *Repository) ResidentExists(ctx context.Context, residentID primitive.ObjectID) (bool, error) {
	count, err := r.residents.CountDocuments(ctx, bson.M{"_id": residentID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindVote returns the (report, voter) row or nil when the pair has no vote.
func (r *Repository) FindVote(ctx context.Context, reportID, residentID primitive.ObjectID) (*Vote, error) {
	var vote Vote
	err := r.votes.FindOne(ctx, bson.M{"reportId": reportID, "residentId": residentID}).Decode(&vote)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

// InsertVote stores a new vote row. A constraint violation surfaces as
// ErrDuplicateVote.
func (r *Repository) InsertVote(ctx context.Context, vote *Vote) error {
	if vote.ID.IsZero() {
		vote.ID = primitive.NewObjectID()
	}
	_, err := r.votes.InsertOne(ctx, vote)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateVote
		}
		return err
	}
	return nil
}

// UpdateVoteValue flips an existing vote to the given value.
func (r *Repository) UpdateVoteValue(ctx context.Context, reportID, residentID primitive.ObjectID, value int) error {
	_, err := r.votes.UpdateOne(ctx,
		bson.M{"reportId": reportID, "residentId": residentID},
		bson.M{"$set": bson.M{"value": value}})
	return err
}

// DeleteVote removes the pair's vote row and returns how many were removed.
func (r *Repository) DeleteVote(ctx context.Context, reportID, residentID primitive.ObjectID) (int64, error) {
	result, err := r.votes.DeleteOne(ctx, bson.M{"reportId": reportID, "residentId": residentID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
