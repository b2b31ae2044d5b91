package db_models

import "github.com/lib/pq"

type Hotel struct {
	BaseModel
	Name          string
	City          string
	StarRating    int
	NightlyRate   float64
	RoomsTotal    int
	OccupancyRate float64
	Amenities     pq.StringArray `gorm:"type:text[]"`

	Bookings []Booking
}
