package feed

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/features/reports"
	"github.com/ressly/ressly-be/pkg/apperrors"
)

// Window restricts the feed to reports created within a trailing period.
type Window string

const (
	WindowAll   Window = "all"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow parses the window query parameter; empty means all.
func ParseWindow(raw string) (Window, error) {
	switch Window(raw) {
	case "", WindowAll:
		return WindowAll, nil
	case WindowWeek:
		return WindowWeek, nil
	case WindowMonth:
		return WindowMonth, nil
	default:
		return "", apperrors.Validation("INVALID_WINDOW",
			"El filtro debe ser all, week o month")
	}
}

// Cutoff returns the oldest creation time admitted by the window. The second
// return is false for the unbounded window.
func (w Window) Cutoff(now time.Time) (time.Time, bool) {
	switch w {
	case WindowWeek:
		return now.AddDate(0, 0, -7), true
	case WindowMonth:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// FeedEntry is one ranked report in the community feed. Author fields are
// null when the report is anonymous; UserVote is null when the caller has not
// voted or is unknown.
type FeedEntry struct {
	ID              primitive.ObjectID `json:"id"`
	ResidentID      primitive.ObjectID `json:"residentId"`
	Title           string             `json:"title"`
	Category        reports.Category   `json:"category"`
	Urgency         reports.Urgency    `json:"urgency"`
	Location        string             `json:"location,omitempty"`
	Description     string             `json:"description"`
	Anonymous       bool               `json:"anonymous"`
	Public          bool               `json:"public"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	AuthorFirstName *string            `json:"firstName"`
	AuthorLastName  *string            `json:"lastName"`
	AuthorPhotoURL  *string            `json:"residentPhotoUrl"`
	VoteSum         int                `json:"voteCount"`
	UserVote        *int               `json:"userVote"`
	Images          []string           `json:"images"`
}
