package model

// RestaurantFilter is a conjunctive filter over non-deleted restaurants.
// Zero-valued / nil fields are not applied. Numeric bounds are inclusive.
type RestaurantFilter struct {
	// NameOrAddress is matched case-insensitively as a substring of the
	// restaurant name OR its address.
	NameOrAddress string
	Type          string
	MinRating     *float64
	PriceFrom     *float64
	PriceTo       *float64
}
