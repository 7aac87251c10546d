package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/features/reports"
)

type fakeSource struct {
	docs []communityReport

	gotCutoff  time.Time
	gotBounded bool
}

func (f *fakeSource) FetchCommunityReports(_ context.Context, _ primitive.ObjectID, cutoff time.Time, bounded bool) ([]communityReport, error) {
	f.gotCutoff = cutoff
	f.gotBounded = bounded
	return f.docs, nil
}

func doc(title string, createdAt time.Time, anonymous bool, votes ...voteDoc) communityReport {
	return communityReport{
		Report: reports.Report{
			ID:        primitive.NewObjectID(),
			Title:     title,
			Anonymous: anonymous,
			Public:    true,
			Status:    reports.StatusPending,
			CreatedAt: createdAt,
		},
		Author: authorDoc{FirstName: "Ana", LastName: "García", PhotoURL: "https://cdn.example/ana.jpg"},
		Votes:  votes,
		Images: []imageDoc{{URL: "https://cdn.example/a.jpg"}, {URL: "https://cdn.example/b.jpg"}},
	}
}

func TestList_RanksByVoteSumThenRecency(t *testing.T) {
	now := time.Now()
	voterA := primitive.NewObjectID()
	voterB := primitive.NewObjectID()

	source := &fakeSource{docs: []communityReport{
		doc("old, two upvotes", now.Add(-48*time.Hour), false,
			voteDoc{ResidentID: voterA, Value: 1}, voteDoc{ResidentID: voterB, Value: 1}),
		doc("newer, net zero", now.Add(-1*time.Hour), false,
			voteDoc{ResidentID: voterA, Value: 1}, voteDoc{ResidentID: voterB, Value: -1}),
		doc("older, net zero", now.Add(-24*time.Hour), false),
		doc("downvoted", now, false, voteDoc{ResidentID: voterB, Value: -1}),
	}}
	svc := NewService(source)

	entries, err := svc.List(context.Background(), primitive.NewObjectID(), WindowAll, nil)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	require.Equal(t, "old, two upvotes", entries[0].Title)
	require.Equal(t, 2, entries[0].VoteSum)
	require.Equal(t, "newer, net zero", entries[1].Title)
	require.Equal(t, "older, net zero", entries[2].Title)
	require.Equal(t, "downvoted", entries[3].Title)
	require.Equal(t, -1, entries[3].VoteSum)
}

func TestList_UserVote(t *testing.T) {
	caller := primitive.NewObjectID()
	other := primitive.NewObjectID()

	source := &fakeSource{docs: []communityReport{
		doc("mine is down", time.Now(), false,
			voteDoc{ResidentID: other, Value: 1}, voteDoc{ResidentID: caller, Value: -1}),
		doc("not voted", time.Now(), false, voteDoc{ResidentID: other, Value: 1}),
	}}
	svc := NewService(source)

	entries, err := svc.List(context.Background(), primitive.NewObjectID(), WindowAll, &caller)
	require.NoError(t, err)

	byTitle := map[string]FeedEntry{}
	for _, e := range entries {
		byTitle[e.Title] = e
	}

	require.NotNil(t, byTitle["mine is down"].UserVote)
	require.Equal(t, -1, *byTitle["mine is down"].UserVote)
	require.Nil(t, byTitle["not voted"].UserVote)

	// Without a caller the field stays null everywhere.
	entries, err = svc.List(context.Background(), primitive.NewObjectID(), WindowAll, nil)
	require.NoError(t, err)
	for _, e := range entries {
		require.Nil(t, e.UserVote)
	}
}

func TestList_AnonymousHidesAuthor(t *testing.T) {
	source := &fakeSource{docs: []communityReport{
		doc("anonymous", time.Now(), true),
		doc("signed", time.Now().Add(-time.Minute), false),
	}}
	svc := NewService(source)

	entries, err := svc.List(context.Background(), primitive.NewObjectID(), WindowAll, nil)
	require.NoError(t, err)

	for _, e := range entries {
		if e.Title == "anonymous" {
			require.Nil(t, e.AuthorFirstName)
			require.Nil(t, e.AuthorLastName)
			require.Nil(t, e.AuthorPhotoURL)
			// The rest of the entry is untouched.
			require.Len(t, e.Images, 2)
		} else {
			require.NotNil(t, e.AuthorFirstName)
			require.Equal(t, "Ana", *e.AuthorFirstName)
			require.Equal(t, "García", *e.AuthorLastName)
		}
	}
}

func TestBuildEntry_AnonymousNullsStoredAuthor(t *testing.T) {
	d := doc("anonymous", time.Now(), true, voteDoc{ResidentID: primitive.NewObjectID(), Value: 1})
	require.True(t, d.Anonymous)
	require.NotEmpty(t, d.Author.FirstName) // author data is stored either way

	entry := buildEntry(d, nil)
	require.True(t, entry.Anonymous)
	require.Nil(t, entry.AuthorFirstName)
	require.Nil(t, entry.AuthorLastName)
	require.Nil(t, entry.AuthorPhotoURL)
	require.Equal(t, 1, entry.VoteSum)
}

func TestList_ImagesKeepDisplayOrder(t *testing.T) {
	source := &fakeSource{docs: []communityReport{doc("r", time.Now(), false)}}
	svc := NewService(source)

	entries, err := svc.List(context.Background(), primitive.NewObjectID(), WindowAll, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"https://cdn.example/a.jpg", "https://cdn.example/b.jpg"}, entries[0].Images)
}

func TestList_WindowBoundsTheFetch(t *testing.T) {
	source := &fakeSource{}
	svc := NewService(source)
	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	_, err := svc.List(context.Background(), primitive.NewObjectID(), WindowWeek, nil)
	require.NoError(t, err)
	require.True(t, source.gotBounded)
	require.Equal(t, fixed.AddDate(0, 0, -7), source.gotCutoff)

	_, err = svc.List(context.Background(), primitive.NewObjectID(), WindowMonth, nil)
	require.NoError(t, err)
	require.Equal(t, fixed.AddDate(0, 0, -30), source.gotCutoff)

	_, err = svc.List(context.Background(), primitive.NewObjectID(), WindowAll, nil)
	require.NoError(t, err)
	require.False(t, source.gotBounded)
}
