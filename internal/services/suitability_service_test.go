package services

import (
	"strings"
	"testing"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/request_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/response_models"
)

func TestScoreMissingRequiredAmenities(t *testing.T) {
	engine := NewSuitabilityService()

	// WiFi present, Conference Room missing: expect a high-severity
	// recommendation naming the gap and no critical WiFi warning.
	score := engine.Score(request_models.SuitabilityRequest{
		EventType:  "mice",
		Amenities:  []string{"WiFi", "Parking"},
		StarRating: 4,
		Price:      2500,
	})

	var high *response_models.Recommendation
	for i := range score.Recommendations {
		rec := &score.Recommendations[i]
		if rec.Severity == "critical" {
			t.Errorf("critical recommendation fired with WiFi present: %q", rec.Message)
		}
		if rec.Severity == "high" {
			high = rec
		}
	}

	if high == nil {
		t.Fatal("no high-severity recommendation for missing required amenities")
	}
	if !strings.Contains(high.Message, "Conference Room") {
		t.Errorf("high recommendation %q does not name Conference Room", high.Message)
	}

	found := false
	for _, missing := range score.MissingAmenities {
		if missing == "Conference Room" {
			found = true
		}
	}
	if !found {
		t.Errorf("MissingAmenities %v does not include Conference Room", score.MissingAmenities)
	}
}

func TestScoreCriticalChecks(t *testing.T) {
	engine := NewSuitabilityService()

	cases := []struct {
		eventType string
		keyword   string
	}{
		{"mice", "WiFi"},
		{"wedding", "kitchen"},
		{"conference", "auditorium"},
	}

	for _, tc := range cases {
		score := engine.Score(request_models.SuitabilityRequest{
			EventType: tc.eventType,
			Amenities: []string{"Pool"},
		})

		hasCritical := false
		for _, rec := range score.Recommendations {
			if rec.Severity == "critical" {
				hasCritical = true
			}
		}
		if !hasCritical {
			t.Errorf("%s without %s amenity: no critical recommendation", tc.eventType, tc.keyword)
		}
	}
}

func TestScoreComponentsFullMatch(t *testing.T) {
	engine := NewSuitabilityService()

	score := engine.Score(request_models.SuitabilityRequest{
		EventType: "mice",
		Amenities: []string{
			"Conference Room", "WiFi", "Projector", "Catering",
			"Business Center", "Airport Shuttle", "Breakfast", "Parking",
		},
		StarRating: 5,
		Price:      3500,
	})

	if score.RequiredAmenitiesScore != 40 {
		t.Errorf("RequiredAmenitiesScore = %v, want 40", score.RequiredAmenitiesScore)
	}
	if score.PreferredAmenitiesScore != 30 {
		t.Errorf("PreferredAmenitiesScore = %v, want 30", score.PreferredAmenitiesScore)
	}
	if score.StarRatingScore != 20 {
		t.Errorf("StarRatingScore = %v, want 20 (capped)", score.StarRatingScore)
	}
	if score.PriceScore != 10 {
		t.Errorf("PriceScore = %v, want 10", score.PriceScore)
	}
	if score.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", score.OverallScore)
	}
	if !strings.Contains(score.Summary, "excellent") {
		t.Errorf("Summary %q not in the excellent band", score.Summary)
	}
}

func TestScorePriceTierFlatCap(t *testing.T) {
	engine := NewSuitabilityService()

	budget := engine.Score(request_models.SuitabilityRequest{EventType: "general", Price: 2999})
	mid := engine.Score(request_models.SuitabilityRequest{EventType: "general", Price: 3000})
	premium := engine.Score(request_models.SuitabilityRequest{EventType: "general", Price: 25000})

	if budget.PriceScore != 5 {
		t.Errorf("budget PriceScore = %v, want 5", budget.PriceScore)
	}
	if mid.PriceScore != 10 || premium.PriceScore != 10 {
		t.Errorf("mid/premium PriceScore = %v/%v, want 10/10", mid.PriceScore, premium.PriceScore)
	}
}

func TestScoreStarRatingDefault(t *testing.T) {
	engine := NewSuitabilityService()

	score := engine.Score(request_models.SuitabilityRequest{EventType: "general"})
	if score.StarRatingScore != 15 {
		t.Errorf("unrated hotel StarRatingScore = %v, want 15 (3-star default)", score.StarRatingScore)
	}
}

func TestScoreUnknownCategoryFallsBack(t *testing.T) {
	engine := NewSuitabilityService()

	score := engine.Score(request_models.SuitabilityRequest{
		EventType: "birthday",
		Amenities: []string{"WiFi", "Parking"},
	})

	if score.Category != CategoryGeneral {
		t.Errorf("Category = %q, want %q", score.Category, CategoryGeneral)
	}
	if !score.CategoryFallback {
		t.Error("CategoryFallback not reported for unrecognized event type")
	}
}

func TestScoreAmenityMatchingIsFuzzy(t *testing.T) {
	engine := NewSuitabilityService()

	// Labels are matched case-insensitively and by substring in both
	// directions.
	score := engine.Score(request_models.SuitabilityRequest{
		EventType: "mice",
		Amenities: []string{"  free high-speed WIFI ", "conference room (grand)", "LCD Projector", "In-house Catering"},
	})

	if score.RequiredAmenitiesScore != 40 {
		t.Errorf("RequiredAmenitiesScore = %v, want 40 for fuzzy matches", score.RequiredAmenitiesScore)
	}
}

func TestScoreMonotonicInRequiredCoverage(t *testing.T) {
	engine := NewSuitabilityService()

	required := []string{"Conference Room", "WiFi", "Projector", "Catering"}
	previous := -1.0
	for i := 0; i <= len(required); i++ {
		score := engine.Score(request_models.SuitabilityRequest{
			EventType: "mice",
			Amenities: required[:i],
		})
		if score.RequiredAmenitiesScore < previous {
			t.Fatalf("adding required amenity %d dropped the score from %v to %v",
				i, previous, score.RequiredAmenitiesScore)
		}
		previous = score.RequiredAmenitiesScore
	}
}

func TestCompareAcrossCategories(t *testing.T) {
	engine := NewSuitabilityService()

	matches := engine.CompareAcrossCategories([]string{"WiFi", "Parking"}, 3, 2000)

	if len(matches) != len(CategoryOrder) {
		t.Fatalf("got %d matches, want %d", len(matches), len(CategoryOrder))
	}

	if matches[0].Category != CategoryGeneral {
		t.Errorf("best match = %q, want %q", matches[0].Category, CategoryGeneral)
	}
	if !matches[0].BestMatch {
		t.Error("top entry not flagged as best match")
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].BestMatch {
			t.Errorf("entry %d flagged as best match", i)
		}
		if matches[i].OverallScore > matches[i-1].OverallScore {
			t.Errorf("matches not sorted descending at index %d", i)
		}
	}

	// MICE and Conference tie here; declaration order breaks the tie.
	if matches[1].Category != CategoryMICE || matches[2].Category != CategoryConference {
		t.Errorf("tie not broken by declaration order: %q before %q",
			matches[1].Category, matches[2].Category)
	}
}

func TestSummaryBands(t *testing.T) {
	engine := NewSuitabilityService()

	limited := engine.Score(request_models.SuitabilityRequest{
		EventType:  "conference",
		StarRating: 1,
		Price:      2000,
	})
	if !strings.Contains(limited.Summary, "limited") {
		t.Errorf("Summary %q not in the limited band (score %d)", limited.Summary, limited.OverallScore)
	}
}
