package response_models

type HotelResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	StarRating    int      `json:"star_rating"`
	NightlyRate   float64  `json:"nightly_rate"`
	RoomsTotal    int      `json:"rooms_total"`
	OccupancyRate float64  `json:"occupancy_rate"`
	Amenities     []string `json:"amenities"`
}
