package reports

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database interactions for the reports feature
type Repository struct {
	reports   *mongo.Collection
	images    *mongo.Collection
	votes     *mongo.Collection
	residents *mongo.Collection
}

// NewRepository creates repository and ensures indexes
func NewRepository(db *mongo.Database) *Repository {
	reports := db.Collection("reports")
	images := db.Collection("report_images")

	_, _ = reports.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			// Resident's own reports, newest first
			Keys: bson.D{
				{Key: "residentId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			// Community feed scans public reports by recency
			Keys: bson.D{
				{Key: "public", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	})

	_, _ = images.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		// Image rows of a report in display order
		Keys: bson.D{
			{Key: "reportId", Value: 1},
			{Key: "position", Value: 1},
		},
	})

	return &Repository{
		reports:   reports,
		images:    images,
		votes:     db.Collection("report_votes"),
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

// InsertReport stores the report row and fills in its generated id.
func (r *Repository) InsertReport(ctx context.Context, report *Report) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	_, err := r.reports.InsertOne(ctx, report)
	return err
}

// InsertImage stores one image row linked to its report.
func (r *Repository) InsertImage(ctx context.Context, image *ReportImage) error {
	if image.ID.IsZero() {
		image.ID = primitive.NewObjectID()
	}
	_, err := r.images.InsertOne(ctx, image)
	return err
}

// FindReport returns the report or nil when absent.
func (r *Repository) FindReport(ctx context.Context, reportID primitive.ObjectID) (*Report, error) {
	var report Report
	err := r.reports.FindOne(ctx, bson.M{"_id": reportID}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

// ListByResident returns a resident's reports, newest first.
func (r *Repository) ListByResident(ctx context.Context, residentID primitive.ObjectID) ([]Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.reports.Find(ctx, bson.M{"residentId": residentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []Report
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ListImages returns a report's images in display order.
func (r *Repository) ListImages(ctx context.Context, reportID primitive.ObjectID) ([]ReportImage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.images.Find(ctx, bson.M{"reportId": reportID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []ReportImage
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteReport removes the report row and returns how many were removed.
func (r *Repository) DeleteReport(ctx context.Context, reportID primitive.ObjectID) (int64, error) {
	result, err := r.reports.DeleteOne(ctx, bson.M{"_id": reportID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteImagesByReport removes every image row of a report.
func (r *Repository) DeleteImagesByReport(ctx context.Context, reportID primitive.ObjectID) error {
	_, err := r.images.DeleteMany(ctx, bson.M{"reportId": reportID})
	return err
}

// DeleteVotesByReport removes every vote row of a report.
func (r *Repository) DeleteVotesByReport(ctx context.Context, reportID primitive.ObjectID) error {
	_, err := r.votes.DeleteMany(ctx, bson.M{"reportId": reportID})
	return err
}
