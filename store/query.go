package store

import (
	"sort"
	"strings"

	"github.com/jdalisay/platebook/model"
	"github.com/jdalisay/platebook/utils"
	"github.com/jinzhu/copier"
)

// The read facade assembles denormalized views for the presentation layer.
// Reads are permissive: an unknown parent id yields an empty result set,
// never an error. Only mutations are strict about existence.

// TopRestaurants returns the n highest-rated live restaurants, best first.
// Ties keep insertion order. Served from the Redis cache when one is
// configured and warm.
func (s *Store) TopRestaurants(n int) ([]model.RestaurantView, error) {
	if n <= 0 {
		return []model.RestaurantView{}, nil
	}

	if s.cache != nil {
		if views, ok := s.cache.GetTopRestaurants(n); ok {
			return views, nil
		}
	}

	// Fetch at least a full cache page so the cached ranking answers any
	// smaller n.
	limit := n
	if limit < utils.TopRestaurantsCacheSize {
		limit = utils.TopRestaurantsCacheSize
	}

	var restaurants []model.Restaurant
	if err := s.db.
		Where("delete_status = ?", false).
		Order("rating desc").
		Order("created_at asc").
		Limit(limit).
		Find(&restaurants).Error; err != nil {
		return nil, storageErr(err, "list top restaurants")
	}

	views := restaurantViews(restaurants)

	if s.cache != nil {
		page := views
		if len(page) > utils.TopRestaurantsCacheSize {
			page = page[:utils.TopRestaurantsCacheSize]
		}
		// Best effort, the database remains the source of truth.
		s.cache.SetTopRestaurants(page)
	}

	if n < len(views) {
		views = views[:n]
	}
	return views, nil
}

// RestaurantsByType lists live restaurants of one cuisine type, best rated
// first.
func (s *Store) RestaurantsByType(cuisineType string) ([]model.RestaurantView, error) {
	var restaurants []model.Restaurant
	if err := s.db.
		Where("type = ? AND delete_status = ?", cuisineType, false).
		Order("rating desc").
		Order("created_at asc").
		Find(&restaurants).Error; err != nil {
		return nil, storageErr(err, "list restaurants by type")
	}
	return restaurantViews(restaurants), nil
}

// RestaurantsByFilter lists live restaurants matching every set filter
// field. Substring matching is case-insensitive against name OR address;
// numeric bounds are inclusive.
func (s *Store) RestaurantsByFilter(filter model.RestaurantFilter) ([]model.RestaurantView, error) {
	q := s.db.Where("delete_status = ?", false)

	if filter.NameOrAddress != "" {
		pattern := "%" + strings.ToLower(filter.NameOrAddress) + "%"
		q = q.Where("(lower(name) LIKE ? OR lower(address) LIKE ?)", pattern, pattern)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.MinRating != nil {
		q = q.Where("rating >= ?", *filter.MinRating)
	}
	if filter.PriceFrom != nil {
		q = q.Where("pricing_from >= ?", *filter.PriceFrom)
	}
	if filter.PriceTo != nil {
		q = q.Where("pricing_to <= ?", *filter.PriceTo)
	}

	var restaurants []model.Restaurant
	if err := q.Order("created_at asc").Find(&restaurants).Error; err != nil {
		return nil, storageErr(err, "filter restaurants")
	}
	return restaurantViews(restaurants), nil
}

// RestaurantsForUser lists the live restaurants owned by the user.
func (s *Store) RestaurantsForUser(userID string) ([]model.RestaurantView, error) {
	var restaurants []model.Restaurant
	if err := s.db.
		Where("user_id = ? AND delete_status = ?", userID, false).
		Order("created_at asc").
		Find(&restaurants).Error; err != nil {
		return nil, storageErr(err, "list user restaurants")
	}
	return restaurantViews(restaurants), nil
}

// ReviewsForRestaurant lists the restaurant's live reviews, most liked
// first, ties in insertion order.
func (s *Store) ReviewsForRestaurant(restaurantID string) ([]model.ReviewView, error) {
	var reviews []model.Review
	if err := s.db.Preload("User").
		Where("restaurant_id = ? AND delete_status = ?", restaurantID, false).
		Order("created_at asc").
		Find(&reviews).Error; err != nil {
		return nil, storageErr(err, "list restaurant reviews")
	}

	views, err := s.annotateReviews(reviews)
	if err != nil {
		return nil, err
	}
	sortByLikes(views)
	return views, nil
}

// SearchReviews lists the restaurant's live reviews whose title or content
// contains the query, case-insensitively, most liked first.
func (s *Store) SearchReviews(restaurantID, query string) ([]model.ReviewView, error) {
	q := s.db.Preload("User").
		Where("restaurant_id = ? AND delete_status = ?", restaurantID, false)
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("(lower(title) LIKE ? OR lower(content) LIKE ?)", pattern, pattern)
	}

	var reviews []model.Review
	if err := q.Order("created_at asc").Find(&reviews).Error; err != nil {
		return nil, storageErr(err, "search reviews")
	}

	views, err := s.annotateReviews(reviews)
	if err != nil {
		return nil, err
	}
	sortByLikes(views)
	return views, nil
}

// ReviewsForUser lists the user's live reviews for the profile page, newest
// first.
func (s *Store) ReviewsForUser(userID string) ([]model.ReviewView, error) {
	var reviews []model.Review
	if err := s.db.Preload("User").
		Where("user_id = ? AND delete_status = ?", userID, false).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return nil, storageErr(err, "list user reviews")
	}
	return s.annotateReviews(reviews)
}

// CommentsForReview lists the live comments under a review, newest first,
// each flagged when its author owns the restaurant the review belongs to.
// A missing or soft-deleted parent review yields an empty list.
func (s *Store) CommentsForReview(reviewID string) ([]model.CommentView, error) {
	var parents []model.Review
	if err := s.db.
		Where("id = ? AND delete_status = ?", reviewID, false).
		Limit(1).
		Find(&parents).Error; err != nil {
		return nil, storageErr(err, "lookup parent review")
	}
	if len(parents) == 0 {
		return []model.CommentView{}, nil
	}

	var owners []string
	if err := s.db.Model(&model.Restaurant{}).
		Where("id = ?", parents[0].RestaurantID).
		Limit(1).
		Pluck("user_id", &owners).Error; err != nil {
		return nil, storageErr(err, "lookup restaurant owner")
	}
	restaurantOwner := ""
	if len(owners) > 0 {
		restaurantOwner = owners[0]
	}

	var comments []model.Comment
	if err := s.db.Preload("User").
		Where("review_id = ? AND delete_status = ?", reviewID, false).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		return nil, storageErr(err, "list review comments")
	}

	// Annotate sequentially so every flag is set before the result is
	// returned.
	views := make([]model.CommentView, 0, len(comments))
	for i := range comments {
		view := commentView(&comments[i])
		view.IsRestaurantOwner = restaurantOwner != "" && utils.SameID(comments[i].UserID, restaurantOwner)
		views = append(views, view)
	}
	return views, nil
}

// CommentsForUser lists the user's live comments for the profile page,
// newest first.
func (s *Store) CommentsForUser(userID string) ([]model.CommentView, error) {
	var comments []model.Comment
	if err := s.db.Preload("User").
		Where("user_id = ? AND delete_status = ?", userID, false).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		return nil, storageErr(err, "list user comments")
	}

	views := make([]model.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, commentView(&comments[i]))
	}
	return views, nil
}

// annotateReviews builds review views with like/dislike counts, live comment
// counts and the has_images flag. Counting is done against the reaction and
// comment tables, not against the input slice.
func (s *Store) annotateReviews(reviews []model.Review) ([]model.ReviewView, error) {
	views := make([]model.ReviewView, 0, len(reviews))
	if len(reviews) == 0 {
		return views, nil
	}

	ids := make([]string, 0, len(reviews))
	for i := range reviews {
		ids = append(ids, reviews[i].Id)
	}

	type reactionCount struct {
		ReviewID string
		Kind     model.Reaction
		Count    int
	}
	var counts []reactionCount
	if err := s.db.Model(&model.ReviewReaction{}).
		Select("review_id, kind, count(*) as count").
		Where("review_id IN ?", ids).
		Group("review_id").Group("kind").
		Scan(&counts).Error; err != nil {
		return nil, storageErr(err, "count reactions")
	}

	likes := map[string]int{}
	dislikes := map[string]int{}
	for _, c := range counts {
		switch c.Kind {
		case model.ReactionLiked:
			likes[c.ReviewID] = c.Count
		case model.ReactionDisliked:
			dislikes[c.ReviewID] = c.Count
		}
	}

	for i := range reviews {
		review := &reviews[i]

		var view model.ReviewView
		copier.Copy(&view, review)
		copier.Copy(&view.Author, &review.User)
		view.Images = review.Images()
		view.HasImages = len(view.Images) > 0
		view.Likes = likes[review.Id]
		view.Dislikes = dislikes[review.Id]

		var commentCount int64
		if err := s.db.Model(&model.Comment{}).
			Where("review_id = ? AND delete_status = ?", review.Id, false).
			Count(&commentCount).Error; err != nil {
			return nil, storageErr(err, "count review comments")
		}
		view.CommentCount = int(commentCount)

		views = append(views, view)
	}
	return views, nil
}

// sortByLikes orders views by like count descending. The sort is stable so
// equally liked reviews keep their insertion order.
func sortByLikes(views []model.ReviewView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Likes > views[j].Likes
	})
}

func restaurantViews(restaurants []model.Restaurant) []model.RestaurantView {
	views := make([]model.RestaurantView, 0, len(restaurants))
	for i := range restaurants {
		var view model.RestaurantView
		copier.Copy(&view, &restaurants[i])
		views = append(views, view)
	}
	return views
}

func commentView(comment *model.Comment) model.CommentView {
	var view model.CommentView
	copier.Copy(&view, comment)
	copier.Copy(&view.Author, &comment.User)
	return view
}
