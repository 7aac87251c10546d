package votes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/features/reports"
	"github.com/ressly/ressly-be/pkg/apperrors"
)

type pair struct {
	report, resident primitive.ObjectID
}

// voteStore is an in-memory ledger enforcing the one-row-per-pair constraint
// the unique index provides in Mongo.
type voteStore struct {
	reports   map[primitive.ObjectID]reports.Report
	residents map[primitive.ObjectID]bool
	votes     map[pair]int

	// raceOnInsert simulates a concurrent cast winning between the advisory
	// read and the insert: the row appears with this value and the insert
	// reports a duplicate.
	raceOnInsert *int
}

func newVoteStore() *voteStore {
	return &voteStore{
		reports:   map[primitive.ObjectID]reports.Report{},
		residents: map[primitive.ObjectID]bool{},
		votes:     map[pair]int{},
	}
}

func (f *voteStore) FindReport(_ context.Context, id primitive.ObjectID) (*reports.Report, error) {
	if report, ok := f.reports[id]; ok {
		return &report, nil
	}
	return nil, nil
}

func (f *voteStore) ResidentExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return f.residents[id], nil
}

func (f *voteStore) FindVote(_ context.Context, reportID, residentID primitive.ObjectID) (*Vote, error) {
	if value, ok := f.votes[pair{reportID, residentID}]; ok {
		return &Vote{ReportID: reportID, ResidentID: residentID, Value: value}, nil
	}
	return nil, nil
}

func (f *voteStore) InsertVote(_ context.Context, vote *Vote) error {
	key := pair{vote.ReportID, vote.ResidentID}
	if f.raceOnInsert != nil {
		f.votes[key] = *f.raceOnInsert
		f.raceOnInsert = nil
		return ErrDuplicateVote
	}
	if _, ok := f.votes[key]; ok {
		return ErrDuplicateVote
	}
	f.votes[key] = vote.Value
	return nil
}

func (f *voteStore) UpdateVoteValue(_ context.Context, reportID, residentID primitive.ObjectID, value int) error {
	f.votes[pair{reportID, residentID}] = value
	return nil
}

func (f *voteStore) DeleteVote(_ context.Context, reportID, residentID primitive.ObjectID) (int64, error) {
	key := pair{reportID, residentID}
	if _, ok := f.votes[key]; !ok {
		return 0, nil
	}
	delete(f.votes, key)
	return 1, nil
}

// passTx runs the unit of work directly; the fake store has no staging to
// discard because every toggle resolution is a single write.
type passTx struct{}

func (passTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newVoteService(t *testing.T) (*Service, *voteStore, primitive.ObjectID, primitive.ObjectID) {
	t.Helper()
	store := newVoteStore()
	reportID := primitive.NewObjectID()
	voterID := primitive.NewObjectID()
	store.reports[reportID] = reports.Report{ID: reportID, Public: true}
	store.residents[voterID] = true
	return NewService(store, passTx{}), store, reportID, voterID
}

func TestCast_TogglesOffOnRepeat(t *testing.T) {
	svc, store, reportID, voterID := newVoteService(t)

	result, err := svc.Cast(context.Background(), reportID, voterID, Upvote)
	require.NoError(t, err)
	require.Equal(t, ActionCreated, result.Action)
	require.NotNil(t, result.Value)
	require.Equal(t, Upvote, *result.Value)

	result, err = svc.Cast(context.Background(), reportID, voterID, Upvote)
	require.NoError(t, err)
	require.Equal(t, ActionRemoved, result.Action)
	require.Nil(t, result.Value)
	require.Empty(t, store.votes)
}

func TestCast_OppositeValueUpdatesInPlace(t *testing.T) {
	svc, store, reportID, voterID := newVoteService(t)

	_, err := svc.Cast(context.Background(), reportID, voterID, Upvote)
	require.NoError(t, err)

	result, err := svc.Cast(context.Background(), reportID, voterID, Downvote)
	require.NoError(t, err)
	require.Equal(t, ActionUpdated, result.Action)
	require.Equal(t, Downvote, *result.Value)

	// Still exactly one row for the pair.
	require.Len(t, store.votes, 1)
	require.Equal(t, Downvote, store.votes[pair{reportID, voterID}])

	result, err = svc.Cast(context.Background(), reportID, voterID, Upvote)
	require.NoError(t, err)
	require.Equal(t, ActionUpdated, result.Action)
	require.Equal(t, Upvote, store.votes[pair{reportID, voterID}])
}

func TestCast_DuplicateInsertRaceResolvesAgainstWinner(t *testing.T) {
	svc, store, reportID, voterID := newVoteService(t)

	// A concurrent upvote lands between the read and the insert. Casting the
	// same value resolves as a toggle-off of the winner's row.
	up := Upvote
	store.raceOnInsert = &up
	result, err := svc.Cast(context.Background(), reportID, voterID, Upvote)
	require.NoError(t, err)
	require.Equal(t, ActionRemoved, result.Action)
	require.Empty(t, store.votes)

	// Same race with the opposite value resolves as an update.
	store.raceOnInsert = &up
	result, err = svc.Cast(context.Background(), reportID, voterID, Downvote)
	require.NoError(t, err)
	require.Equal(t, ActionUpdated, result.Action)
	require.Equal(t, Downvote, store.votes[pair{reportID, voterID}])
}

func TestCast_Rejections(t *testing.T) {
	svc, store, reportID, voterID := newVoteService(t)

	_, err := svc.Cast(context.Background(), reportID, voterID, 2)
	require.Equal(t, "INVALID_VOTE_VALUE", apperrors.CodeOf(err))

	_, err = svc.Cast(context.Background(), primitive.NewObjectID(), voterID, Upvote)
	require.Equal(t, "REPORT_NOT_FOUND", apperrors.CodeOf(err))

	_, err = svc.Cast(context.Background(), reportID, primitive.NewObjectID(), Upvote)
	require.Equal(t, "RESIDENT_NOT_FOUND", apperrors.CodeOf(err))

	private := primitive.NewObjectID()
	store.reports[private] = reports.Report{ID: private, Public: false}
	_, err = svc.Cast(context.Background(), private, voterID, Upvote)
	require.Equal(t, "REPORT_NOT_PUBLIC", apperrors.CodeOf(err))
	require.Equal(t, apperrors.KindPermissionDenied, apperrors.KindOf(err))
}

func TestRemove(t *testing.T) {
	svc, _, reportID, voterID := newVoteService(t)

	_, err := svc.Cast(context.Background(), reportID, voterID, Downvote)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), reportID, voterID))

	err = svc.Remove(context.Background(), reportID, voterID)
	require.Equal(t, "VOTE_NOT_FOUND", apperrors.CodeOf(err))
}
