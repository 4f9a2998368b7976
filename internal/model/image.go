package model

// Image is one gallery entry of a restaurant.  A restaurant has zero or
// more images; the banner is stored separately on the restaurant itself.
type Image struct {
	ID           uint64 // imgs.id
	RestaurantID uint64 // imgs.id_locale
	URL          string // imgs.url
}
