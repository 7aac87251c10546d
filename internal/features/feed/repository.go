package feed

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ressly/ressly-be/internal/features/reports"
)

// communityReport is the raw aggregation output: one public report joined
// with its author, house, votes, and ordered images.
type communityReport struct {
	reports.Report `bson:",inline"`

	Author authorDoc  `bson:"author"`
	Votes  []voteDoc  `bson:"votes"`
	Images []imageDoc `bson:"images"`
}

type authorDoc struct {
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
	PhotoURL  string `bson:"residentPhotoUrl"`
}

type voteDoc struct {
	ResidentID primitive.ObjectID `bson:"residentId"`
	Value      int                `bson:"value"`
}

type imageDoc struct {
	URL string `bson:"url"`
}

// Repository reads the collections the feed aggregates over. It never writes.
type Repository struct {
	reports *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{reports: db.Collection("reports")}
}

// FetchCommunityReports returns every public report owned by a resident of
// the given residential, created at or after the cutoff when one applies,
// with votes and display-ordered images attached. Ranking happens in the
// service layer.
func (r *Repository) FetchCommunityReports(ctx context.Context, residentialID primitive.ObjectID, cutoff time.Time, bounded bool) ([]communityReport, error) {
	match := bson.M{"public": true}
	if bounded {
		match["createdAt"] = bson.M{"$gte": cutoff}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "residents",
			"localField":   "residentId",
			"foreignField": "_id",
			"as":           "author",
		}}},
		bson.D{{Key: "$unwind", Value: "$author"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "houses",
			"localField":   "author.houseId",
			"foreignField": "_id",
			"as":           "house",
		}}},
		bson.D{{Key: "$unwind", Value: "$house"}},
		bson.D{{Key: "$match", Value: bson.M{"house.residentialId": residentialID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "report_votes",
			"localField":   "_id",
			"foreignField": "reportId",
			"as":           "votes",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "report_images",
			"let":  bson.M{"rid": "$_id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$eq": bson.A{"$reportId", "$$rid"}},
				}}},
				bson.D{{Key: "$sort", Value: bson.M{"position": 1}}},
			},
			"as": "images",
		}}},
	}

	cursor, err := r.reports.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []communityReport
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
