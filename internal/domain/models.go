package domain

import "time"

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// NewUser holds the attributes accepted when registering a user.
type NewUser struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// Property is a stored listing. CostPerNight is in dollars; the store keeps cents.
type Property struct {
	ID                int64   `json:"id"`
	OwnerID           int64   `json:"owner_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url"`
	CoverPhotoURL     string  `json:"cover_photo_url"`
	CostPerNight      float64 `json:"cost_per_night"`
	ParkingSpaces     int32   `json:"parking_spaces"`
	NumberOfBathrooms int32   `json:"number_of_bathrooms"`
	NumberOfBedrooms  int32   `json:"number_of_bedrooms"`
	Country           string  `json:"country"`
	Street            string  `json:"street"`
	City              string  `json:"city"`
	Province          string  `json:"province"`
	PostCode          string  `json:"post_code"`
	Active            bool    `json:"active"`
}

// NewProperty holds the attributes accepted when listing a property.
// CostPerNight is expressed in dollars.
type NewProperty struct {
	OwnerID           int64   `json:"owner_id" validate:"required,gt=0"`
	Title             string  `json:"title" validate:"required,max=255"`
	Description       string  `json:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url" validate:"omitempty,url"`
	CoverPhotoURL     string  `json:"cover_photo_url" validate:"omitempty,url"`
	CostPerNight      float64 `json:"cost_per_night" validate:"gte=0"`
	ParkingSpaces     int32   `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int32   `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int32   `json:"number_of_bedrooms" validate:"gte=0"`
	Country           string  `json:"country" validate:"required"`
	Street            string  `json:"street" validate:"required"`
	City              string  `json:"city" validate:"required"`
	Province          string  `json:"province" validate:"required"`
	PostCode          string  `json:"post_code" validate:"required"`
}

// PropertyRecord is a search result row: the property plus its
// average review score, nil when the property has no reviews.
type PropertyRecord struct {
	Property
	AverageRating *float64 `json:"average_rating"`
}

type Reservation struct {
	ID         int64     `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	PropertyID int64     `json:"property_id"`
	GuestID    int64     `json:"guest_id"`
}

// ReservationWithProperty is one row of a guest's reservation history.
type ReservationWithProperty struct {
	Reservation Reservation    `json:"reservation"`
	Property    PropertyRecord `json:"property"`
}
