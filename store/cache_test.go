package store

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jdalisay/platebook/model"
	"github.com/jdalisay/platebook/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	f := newFixture(t)
	f.s.cache = utils.GetRedisClientForAddr(mr.Addr())
	return f
}

func TestTopRestaurantsServedFromCache(t *testing.T) {
	f := newCachedFixture(t)
	owner := f.user("owner")

	high := f.restaurant(owner, "High")
	f.restaurant(owner, "Low")
	f.setRating(high, 4.5)

	views, err := f.s.TopRestaurants(2)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "High", views[0].Name)

	// Mutate the table behind the store's back; the warm cache still
	// answers, proving the read never hit the database.
	require.NoError(t, f.s.db.Model(&model.Restaurant{}).Where("id = ?", high).
		Update("name", "Renamed").Error)

	views, err = f.s.TopRestaurants(2)
	require.NoError(t, err)
	assert.Equal(t, "High", views[0].Name)

	// Any smaller n is answered from the same cached page.
	views, err = f.s.TopRestaurants(1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "High", views[0].Name)
}

func TestRatingRecomputationInvalidatesCache(t *testing.T) {
	f := newCachedFixture(t)
	owner := f.user("owner")

	first := f.restaurant(owner, "First")
	second := f.restaurant(owner, "Second")
	f.setRating(first, 4.0)
	f.setRating(second, 2.0)

	views, err := f.s.TopRestaurants(2)
	require.NoError(t, err)
	assert.Equal(t, "First", views[0].Name)

	// A five-star review flips the ranking; the recomputation must drop
	// the cached page.
	_, err = f.s.AddReview(f.user("alice"), second, "wow", "stellar", 5, nil)
	require.NoError(t, err)

	views, err = f.s.TopRestaurants(2)
	require.NoError(t, err)
	assert.Equal(t, "Second", views[0].Name)
}

func TestArchiveInvalidatesCache(t *testing.T) {
	f := newCachedFixture(t)
	owner := f.user("owner")

	top := f.restaurant(owner, "Top")
	f.restaurant(owner, "Rest")
	f.setRating(top, 5.0)

	views, err := f.s.TopRestaurants(2)
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.NoError(t, f.s.ArchiveRestaurant(top))

	views, err = f.s.TopRestaurants(2)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Rest", views[0].Name)
}
