package feed

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/pkg/apperrors"
)

// Source yields the joined community reports the feed ranks.
type Source interface {
	FetchCommunityReports(ctx context.Context, residentialID primitive.ObjectID, cutoff time.Time, bounded bool) ([]communityReport, error)
}

// Service assembles the ranked, anonymized community feed.
type Service struct {
	source Source
	now    func() time.Time
}

func NewService(source Source) *Service {
	return &Service{source: source, now: time.Now}
}

// List returns the community feed for a residential: public reports within
// the window, each with its vote sum, the caller's own vote when a caller id
// is given, and images in display order; ranked by vote sum then recency.
// The result reflects all committed votes and reports at call time.
func (s *Service) List(ctx context.Context, residentialID primitive.ObjectID, window Window, caller *primitive.ObjectID) ([]FeedEntry, error) {
	cutoff, bounded := window.Cutoff(s.now())

	docs, err := s.source.FetchCommunityReports(ctx, residentialID, cutoff, bounded)
	if err != nil {
		return nil, apperrors.Persistence("Error al obtener los reportes comunitarios", err)
	}

	entries := make([]FeedEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, buildEntry(doc, caller))
	}

	rankEntries(entries)
	return entries, nil
}

// buildEntry flattens one aggregation document into a feed entry, computing
// the signed vote sum and the caller's own vote, and enforcing anonymity.
func buildEntry(doc communityReport, caller *primitive.ObjectID) FeedEntry {
	entry := FeedEntry{
		ID:          doc.ID,
		ResidentID:  doc.ResidentID,
		Title:       doc.Title,
		Category:    doc.Category,
		Urgency:     doc.Urgency,
		Location:    doc.Location,
		Description: doc.Description,
		Anonymous:   doc.Anonymous,
		Public:      doc.Public,
		Status:      doc.Status,
		CreatedAt:   doc.CreatedAt,
		Images:      make([]string, 0, len(doc.Images)),
	}

	for _, vote := range doc.Votes {
		entry.VoteSum += vote.Value
		if caller != nil && vote.ResidentID == *caller {
			v := vote.Value
			entry.UserVote = &v
		}
	}

	for _, image := range doc.Images {
		entry.Images = append(entry.Images, image.URL)
	}

	// Anonymity wins over whatever author data is stored.
	if !doc.Anonymous {
		firstName := doc.Author.FirstName
		lastName := doc.Author.LastName
		photoURL := doc.Author.PhotoURL
		entry.AuthorFirstName = &firstName
		entry.AuthorLastName = &lastName
		entry.AuthorPhotoURL = &photoURL
	}

	return entry
}

// rankEntries orders by vote sum descending, ties broken by creation time
// descending (newest first).
func rankEntries(entries []FeedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].VoteSum != entries[j].VoteSum {
			return entries[i].VoteSum > entries[j].VoteSum
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
