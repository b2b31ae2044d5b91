package response_models

type Recommendation struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type SuitabilityScore struct {
	Category     string `json:"category"`
	CategoryName string `json:"category_name"`

	// CategoryFallback is set when the requested event type was not
	// recognized and the general profile was used instead.
	CategoryFallback bool `json:"category_fallback,omitempty"`

	OverallScore            int     `json:"overall_score"`
	RequiredAmenitiesScore  float64 `json:"required_amenities_score"`
	PreferredAmenitiesScore float64 `json:"preferred_amenities_score"`
	StarRatingScore         float64 `json:"star_rating_score"`
	PriceScore              float64 `json:"price_score"`

	MatchedAmenities []string         `json:"matched_amenities"`
	MissingAmenities []string         `json:"missing_amenities"`
	Recommendations  []Recommendation `json:"recommendations"`
	Summary          string           `json:"summary"`
}

// CategoryMatch is one row of a cross-category comparison.
type CategoryMatch struct {
	SuitabilityScore
	BestMatch bool `json:"best_match"`
}
