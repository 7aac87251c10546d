package votes

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vote values are +1 (upvote) and -1 (downvote); nothing else is ever stored.
const (
	Upvote   = 1
	Downvote = -1
)

// Actions a cast-vote call can resolve to.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionRemoved = "removed"
)

// Vote is one resident's vote on one report. The unique index on
// (reportId, residentId) guarantees at most one row per pair.
type Vote struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportID   primitive.ObjectID `bson:"reportId" json:"reportId"`
	ResidentID primitive.ObjectID `bson:"residentId" json:"residentId"`
	Value      int                `bson:"value" json:"value"`
}

// CastVoteRequest for POST /votes. Value is a pointer so an explicit 0 is
// distinguishable from an absent field: missing is a MISSING_FIELD, while 0
// reaches the service and is rejected as an invalid vote value.
type CastVoteRequest struct {
	ReportID string `json:"reportId"`
	VoterID  string `json:"voterId"`
	Value    *int   `json:"value"`
}

// CastVoteResult reports how the ledger resolved a cast. Value is null when
// the vote toggled off.
type CastVoteResult struct {
	Action string `json:"action"`
	Value  *int   `json:"value"`
}
