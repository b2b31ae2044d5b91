package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	BaseModel
	HotelID     uuid.UUID
	OrganizerID uuid.UUID
	EventType   string
	RoomCount   int
	CheckIn     time.Time
	CheckOut    time.Time
	BookedAt    time.Time
	Status      BookingStatus

	// Breakdown holds the PricingBreakdown document exactly as the engine
	// returned it; it is replaced wholesale on every repricing.
	Breakdown datatypes.JSON

	Hotel   Hotel
	Members []BookingMember
}
