package store

import (
	"testing"

	"github.com/jdalisay/platebook/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionMutualExclusion(t *testing.T) {
	f := newFixture(t)
	author := f.user("author")
	reader := f.user("reader")
	restaurantID := f.restaurant(author, "Trattoria Uno")
	reviewID := f.review(author, restaurantID, 4)

	// Walk the state machine through every transition; after each step the
	// user must appear in at most one set.
	steps := []struct {
		op   func() error
		want model.Reaction
	}{
		{func() error { return f.s.Like(reviewID, reader) }, model.ReactionLiked},
		{func() error { return f.s.Dislike(reviewID, reader) }, model.ReactionDisliked},
		{func() error { return f.s.Dislike(reviewID, reader) }, model.ReactionDisliked},
		{func() error { return f.s.Like(reviewID, reader) }, model.ReactionLiked},
		{func() error { return f.s.ClearReaction(reviewID, reader) }, model.ReactionNeutral},
		{func() error { return f.s.ClearReaction(reviewID, reader) }, model.ReactionNeutral},
		{func() error { return f.s.Dislike(reviewID, reader) }, model.ReactionDisliked},
	}

	for i, step := range steps {
		require.NoError(t, step.op(), "step %d", i)

		rows := f.reactions(reviewID, reader)
		assert.LessOrEqual(t, len(rows), 1, "step %d: user present in both sets", i)

		got, err := f.s.GetReaction(reviewID, reader)
		require.NoError(t, err)
		assert.Equal(t, step.want, got, "step %d", i)
	}
}

func TestLikeIsIdempotent(t *testing.T) {
	f := newFixture(t)
	author := f.user("author")
	reader := f.user("reader")
	restaurantID := f.restaurant(author, "Trattoria Uno")
	reviewID := f.review(author, restaurantID, 4)

	require.NoError(t, f.s.Like(reviewID, reader))
	once := f.reactions(reviewID, reader)

	require.NoError(t, f.s.Like(reviewID, reader))
	twice := f.reactions(reviewID, reader)

	require.Len(t, twice, 1)
	assert.Equal(t, once[0].Kind, twice[0].Kind)
	assert.Equal(t, once[0].ReviewID, twice[0].ReviewID)
}

func TestReactionsAreIndependentAcrossUsers(t *testing.T) {
	f := newFixture(t)
	author := f.user("author")
	alice := f.user("alice")
	bob := f.user("bob")
	restaurantID := f.restaurant(author, "Trattoria Uno")
	reviewID := f.review(author, restaurantID, 4)

	require.NoError(t, f.s.Like(reviewID, alice))
	require.NoError(t, f.s.Dislike(reviewID, bob))

	got, err := f.s.GetReaction(reviewID, alice)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionLiked, got)

	got, err = f.s.GetReaction(reviewID, bob)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionDisliked, got)
}

func TestReactionOnMissingReview(t *testing.T) {
	f := newFixture(t)
	reader := f.user("reader")

	assert.True(t, IsNotFound(f.s.Like("no-such-review", reader)))
	assert.True(t, IsNotFound(f.s.Dislike("no-such-review", reader)))
	assert.True(t, IsNotFound(f.s.ClearReaction("no-such-review", reader)))
}

func TestReactionOnSoftDeletedReview(t *testing.T) {
	f := newFixture(t)
	author := f.user("author")
	reader := f.user("reader")
	restaurantID := f.restaurant(author, "Trattoria Uno")
	reviewID := f.review(author, restaurantID, 4)
	f.softDelete(&model.Review{}, reviewID)

	assert.True(t, IsNotFound(f.s.Like(reviewID, reader)))
	assert.True(t, IsNotFound(f.s.Dislike(reviewID, reader)))
	assert.True(t, IsNotFound(f.s.ClearReaction(reviewID, reader)))
}

func TestGetReactionDefaultsToNeutral(t *testing.T) {
	f := newFixture(t)
	author := f.user("author")
	restaurantID := f.restaurant(author, "Trattoria Uno")
	reviewID := f.review(author, restaurantID, 4)

	got, err := f.s.GetReaction(reviewID, f.user("reader"))
	require.NoError(t, err)
	assert.Equal(t, model.ReactionNeutral, got)

	// Unknown review classifies as neutral too: reads are permissive.
	got, err = f.s.GetReaction("no-such-review", author)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionNeutral, got)
}
