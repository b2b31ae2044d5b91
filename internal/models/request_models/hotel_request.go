package request_models

type CreateHotelRequest struct {
	Name          string   `json:"name" binding:"required"`
	City          string   `json:"city" binding:"required"`
	StarRating    int      `json:"star_rating" binding:"min=1,max=5"`
	NightlyRate   float64  `json:"nightly_rate" binding:"min=0"`
	RoomsTotal    int      `json:"rooms_total" binding:"min=1"`
	OccupancyRate float64  `json:"occupancy_rate" binding:"min=0,max=1"`
	Amenities     []string `json:"amenities"`
}
