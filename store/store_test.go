package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jdalisay/platebook/model"
	"github.com/jdalisay/platebook/utils"
	"github.com/stretchr/testify/require"
)

// fixture seeds entities straight through the db handle so tests can set up
// arbitrary states, including ones the public API would reject. Seeded rows
// get strictly increasing CreatedAt timestamps so insertion order is
// deterministic.
type fixture struct {
	t   *testing.T
	s   *Store
	now time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		t:   t,
		s:   New(utils.NewTestDB(t)),
		now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fixture) user(username string) string {
	f.t.Helper()
	id := uuid.New().String()
	err := f.s.db.Create(&model.User{
		Id:           id,
		CreatedAt:    f.tick(),
		EmailAddress: username + "@example.com",
		Username:     username,
		FirstName:    username,
		LastName:     "tester",
		PasswordHash: "not-a-real-hash",
	}).Error
	require.NoError(f.t, err)
	return id
}

func (f *fixture) restaurant(ownerID, name string) string {
	f.t.Helper()
	id := uuid.New().String()
	err := f.s.db.Create(&model.Restaurant{
		Id:          id,
		CreatedAt:   f.tick(),
		Name:        name,
		Type:        "Italian",
		Address:     "123 Example St",
		PhoneNumber: "555-0100",
		PricingFrom: 10,
		PricingTo:   50,
		UserID:      ownerID,
	}).Error
	require.NoError(f.t, err)
	return id
}

func (f *fixture) review(userID, restaurantID string, rating int) string {
	f.t.Helper()
	id := uuid.New().String()
	err := f.s.db.Create(&model.Review{
		Id:               id,
		CreatedAt:        f.tick(),
		UserID:           userID,
		RestaurantID:     restaurantID,
		Date:             f.now.Format("2006-01-02"),
		Title:            "a title",
		Content:          "some content",
		Rating:           rating,
		PictureAddresses: model.ImageList(nil),
	}).Error
	require.NoError(f.t, err)
	return id
}

func (f *fixture) comment(userID, reviewID, content string) string {
	f.t.Helper()
	id := uuid.New().String()
	err := f.s.db.Create(&model.Comment{
		Id:        id,
		CreatedAt: f.tick(),
		UserID:    userID,
		ReviewID:  reviewID,
		Content:   content,
	}).Error
	require.NoError(f.t, err)
	return id
}

// softDelete flips the delete flag directly, simulating prior archival.
func (f *fixture) softDelete(entity interface{}, id string) {
	f.t.Helper()
	err := f.s.db.Model(entity).Where("id = ?", id).Update("delete_status", true).Error
	require.NoError(f.t, err)
}

// reactions returns all reaction rows for a (review, user) pair. The
// mutual-exclusion invariant means there can be at most one.
func (f *fixture) reactions(reviewID, userID string) []model.ReviewReaction {
	f.t.Helper()
	var rows []model.ReviewReaction
	err := f.s.db.
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Find(&rows).Error
	require.NoError(f.t, err)
	return rows
}

func (f *fixture) deleteStatus(entity interface{}, id string) bool {
	f.t.Helper()
	var flags []bool
	err := f.s.db.Model(entity).Where("id = ?", id).Pluck("delete_status", &flags).Error
	require.NoError(f.t, err)
	require.Len(f.t, flags, 1)
	return flags[0]
}

func (f *fixture) restaurantRating(restaurantID string) float64 {
	f.t.Helper()
	var ratings []float64
	err := f.s.db.Model(&model.Restaurant{}).
		Where("id = ?", restaurantID).
		Pluck("rating", &ratings).Error
	require.NoError(f.t, err)
	require.Len(f.t, ratings, 1)
	return ratings[0]
}
