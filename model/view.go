package model

// Denormalized read views assembled by the query facade for the presentation
// layer. Views are plain data, never written back to storage.

type UserView struct {
	Id             string `json:"id"`
	EmailAddress   string `json:"email_address"`
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PictureAddress string `json:"picture_address"`
	Biography      string `json:"biography"`
}

type RestaurantView struct {
	Id             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Address        string  `json:"address"`
	PhoneNumber    string  `json:"phone_number"`
	PricingFrom    float64 `json:"pricing_from"`
	PricingTo      float64 `json:"pricing_to"`
	PictureAddress string  `json:"picture_address"`
	Rating         float64 `json:"rating"`
	UserID         string  `json:"user_id"`
}

type ReviewView struct {
	Id           string   `json:"id"`
	Date         string   `json:"date"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Rating       int      `json:"rating"`
	Images       []string `json:"images"`
	HasImages    bool     `json:"has_images"`
	Likes        int      `json:"likes"`
	Dislikes     int      `json:"dislikes"`
	CommentCount int      `json:"comment_count"`
	EditStatus   bool     `json:"edit_status"`
	UserID       string   `json:"user_id"`
	RestaurantID string   `json:"restaurant_id"`
	Author       UserView `json:"author"`
}

type CommentView struct {
	Id         string   `json:"id"`
	Content    string   `json:"content"`
	EditStatus bool     `json:"edit_status"`
	UserID     string   `json:"user_id"`
	ReviewID   string   `json:"review_id"`
	Author     UserView `json:"author"`
	// IsRestaurantOwner is true iff the comment's author owns the restaurant
	// that owns the parent review, i.e. the comment is an owner reply.
	IsRestaurantOwner bool `json:"is_restaurant_owner"`
}
