package services

import "strings"

const (
	CategoryMICE       = "mice"
	CategoryWedding    = "wedding"
	CategoryConference = "conference"
	CategoryGeneral    = "general"
)

// EventCategoryProfile is the static scoring configuration for one event
// category. Required amenities carry 40 points of the overall score,
// preferred amenities 30.
type EventCategoryProfile struct {
	Key                string
	DisplayName        string
	RequiredAmenities  []string
	PreferredAmenities []string
	Features           []string
	MinGroupSize       int
	MaxGroupSize       int
}

// CategoryOrder fixes the declaration order of categories; cross-category
// comparisons break score ties by this order.
var CategoryOrder = []string{CategoryMICE, CategoryWedding, CategoryConference, CategoryGeneral}

var categoryProfiles = map[string]EventCategoryProfile{
	CategoryMICE: {
		Key:                CategoryMICE,
		DisplayName:        "MICE",
		RequiredAmenities:  []string{"Conference Room", "WiFi", "Projector", "Catering"},
		PreferredAmenities: []string{"Business Center", "Airport Shuttle", "Breakfast", "Parking"},
		Features:           []string{"Corporate meetings", "Incentive retreats", "Exhibitions"},
		MinGroupSize:       20,
		MaxGroupSize:       500,
	},
	CategoryWedding: {
		Key:                CategoryWedding,
		DisplayName:        "Wedding",
		RequiredAmenities:  []string{"Banquet Hall", "Kitchen", "Catering", "Parking"},
		PreferredAmenities: []string{"Garden", "Bridal Suite", "Decoration Support", "Music System"},
		Features:           []string{"Ceremonies", "Receptions", "Multi-day celebrations"},
		MinGroupSize:       50,
		MaxGroupSize:       1000,
	},
	CategoryConference: {
		Key:                CategoryConference,
		DisplayName:        "Conference",
		RequiredAmenities:  []string{"Auditorium", "WiFi", "Projector", "Microphone"},
		PreferredAmenities: []string{"Recording Setup", "Business Center", "Catering", "Parking"},
		Features:           []string{"Keynotes", "Panel discussions", "Workshops"},
		MinGroupSize:       100,
		MaxGroupSize:       2000,
	},
	CategoryGeneral: {
		Key:                CategoryGeneral,
		DisplayName:        "General",
		RequiredAmenities:  []string{"WiFi", "Parking"},
		PreferredAmenities: []string{"Restaurant", "Pool", "Gym"},
		Features:           []string{"Leisure stays", "Small gatherings"},
		MinGroupSize:       1,
		MaxGroupSize:       100,
	},
}

// ResolveCategoryProfile maps an event type to its profile. Unrecognized
// types fall back to the general profile; the second return value reports
// whether a fallback happened.
func ResolveCategoryProfile(eventType string) (EventCategoryProfile, bool) {
	key := strings.ToLower(strings.TrimSpace(eventType))
	if profile, ok := categoryProfiles[key]; ok {
		return profile, false
	}
	return categoryProfiles[CategoryGeneral], true
}
