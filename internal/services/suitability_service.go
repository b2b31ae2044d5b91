package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/request_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/response_models"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
)

const (
	requiredAmenityWeight  = 40.0
	preferredAmenityWeight = 30.0
	starRatingWeightCap    = 20.0
	starRatingDefault      = 3

	midRangePriceThreshold = 3000.0
	budgetPriceScore       = 5.0
	midRangePriceScore     = 10.0

	preferredCoverageFloor = 0.5
)

type SuitabilityServiceInterface interface {
	Score(request request_models.SuitabilityRequest) *response_models.SuitabilityScore
	CompareAcrossCategories(amenities []string, starRating int, price float64) []response_models.CategoryMatch
}

// SuitabilityService is the single authoritative scorer; booking creation and
// standalone queries both go through it so identical inputs always score
// identically.
type SuitabilityService struct{}

func NewSuitabilityService() SuitabilityServiceInterface {
	return &SuitabilityService{}
}

func (s *SuitabilityService) Score(request request_models.SuitabilityRequest) *response_models.SuitabilityScore {
	profile, fellBack := ResolveCategoryProfile(request.EventType)
	normalized := normalizeAmenities(request.Amenities)

	matchedRequired, missingRequired := matchAmenities(normalized, profile.RequiredAmenities)
	matchedPreferred, _ := matchAmenities(normalized, profile.PreferredAmenities)

	requiredScore := weightedCoverage(len(matchedRequired), len(profile.RequiredAmenities), requiredAmenityWeight)
	preferredScore := weightedCoverage(len(matchedPreferred), len(profile.PreferredAmenities), preferredAmenityWeight)

	starRating := request.StarRating
	if starRating <= 0 {
		starRating = starRatingDefault
	}
	starScore := float64(starRating) * 5
	if starScore > starRatingWeightCap {
		starScore = starRatingWeightCap
	}

	// Flat cap above the mid-range threshold: premium pricing earns nothing
	// beyond the mid tier.
	priceScore := midRangePriceScore
	if request.Price < midRangePriceThreshold {
		priceScore = budgetPriceScore
	}

	overall := int(utils.RoundHalfUp(requiredScore + preferredScore + starScore + priceScore))
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}

	matched := append(append([]string{}, matchedRequired...), matchedPreferred...)

	score := &response_models.SuitabilityScore{
		Category:                profile.Key,
		CategoryName:            profile.DisplayName,
		CategoryFallback:        fellBack,
		OverallScore:            overall,
		RequiredAmenitiesScore:  requiredScore,
		PreferredAmenitiesScore: preferredScore,
		StarRatingScore:         starScore,
		PriceScore:              priceScore,
		MatchedAmenities:        matched,
		MissingAmenities:        missingRequired,
		Summary:                 summaryText(profile.DisplayName, overall),
	}
	score.Recommendations = buildRecommendations(profile, normalized, missingRequired, matchedPreferred, starRating)

	return score
}

// CompareAcrossCategories scores the same hotel against every category and
// ranks the results. The sort is stable, so equal scores keep category
// declaration order and the top entry is the best match.
func (s *SuitabilityService) CompareAcrossCategories(amenities []string, starRating int, price float64) []response_models.CategoryMatch {
	matches := make([]response_models.CategoryMatch, 0, len(CategoryOrder))
	for _, category := range CategoryOrder {
		score := s.Score(request_models.SuitabilityRequest{
			EventType:  category,
			Amenities:  amenities,
			StarRating: starRating,
			Price:      price,
		})
		matches = append(matches, response_models.CategoryMatch{SuitabilityScore: *score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].OverallScore > matches[j].OverallScore
	})
	if len(matches) > 0 {
		matches[0].BestMatch = true
	}

	return matches
}

func normalizeAmenities(amenities []string) []string {
	out := make([]string, 0, len(amenities))
	for _, amenity := range amenities {
		normalized := strings.ToLower(strings.TrimSpace(amenity))
		if normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

// matchAmenities checks every profile label against the hotel's normalized
// amenities with substring matching in both directions, so "WiFi" matches
// "Free WiFi" and "High-speed wifi access" alike.
func matchAmenities(normalized []string, labels []string) (matched, missing []string) {
	for _, label := range labels {
		want := strings.ToLower(strings.TrimSpace(label))
		found := false
		for _, have := range normalized {
			if strings.Contains(have, want) || strings.Contains(want, have) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, label)
		} else {
			missing = append(missing, label)
		}
	}
	return matched, missing
}

func hasAmenityLike(normalized []string, keyword string) bool {
	for _, have := range normalized {
		if strings.Contains(have, keyword) {
			return true
		}
	}
	return false
}

func weightedCoverage(matched, total int, weight float64) float64 {
	if total == 0 {
		return weight
	}
	return float64(matched) / float64(total) * weight
}

func buildRecommendations(
	profile EventCategoryProfile,
	normalized []string,
	missingRequired []string,
	matchedPreferred []string,
	starRating int,
) []response_models.Recommendation {

	var critical, rest []response_models.Recommendation

	// Category-specific deal breakers fire regardless of the overall score.
	switch profile.Key {
	case CategoryMICE:
		if !hasAmenityLike(normalized, "wifi") {
			critical = append(critical, response_models.Recommendation{
				Severity: "critical",
				Message:  "MICE events cannot run without reliable WiFi",
			})
		}
	case CategoryWedding:
		if !hasAmenityLike(normalized, "kitchen") {
			critical = append(critical, response_models.Recommendation{
				Severity: "critical",
				Message:  "Weddings need on-site kitchen facilities for catering",
			})
		}
	case CategoryConference:
		if !hasAmenityLike(normalized, "auditorium") {
			critical = append(critical, response_models.Recommendation{
				Severity: "critical",
				Message:  "Conferences need an auditorium for plenary sessions",
			})
		}
	}

	if len(missingRequired) > 0 {
		rest = append(rest, response_models.Recommendation{
			Severity: "high",
			Message: fmt.Sprintf("Missing essential amenities for %s events: %s",
				profile.DisplayName, strings.Join(missingRequired, ", ")),
		})
	}

	if len(profile.PreferredAmenities) > 0 {
		coverage := float64(len(matchedPreferred)) / float64(len(profile.PreferredAmenities))
		if coverage < preferredCoverageFloor {
			rest = append(rest, response_models.Recommendation{
				Severity: "medium",
				Message: fmt.Sprintf("Less than half of the preferred %s amenities are available; adding %s would improve the fit",
					profile.DisplayName, strings.Join(firstN(diffLabels(profile.PreferredAmenities, matchedPreferred), 3), ", ")),
			})
		}
	}

	if starRating < 4 {
		rest = append(rest, response_models.Recommendation{
			Severity: "low",
			Message:  fmt.Sprintf("A %d-star rating may not meet %s organizer expectations; 4 stars and above rank higher", starRating, profile.DisplayName),
		})
	}

	return append(critical, rest...)
}

func diffLabels(all, matched []string) []string {
	matchedSet := make(map[string]struct{}, len(matched))
	for _, label := range matched {
		matchedSet[label] = struct{}{}
	}
	var out []string
	for _, label := range all {
		if _, ok := matchedSet[label]; !ok {
			out = append(out, label)
		}
	}
	return out
}

func firstN(labels []string, n int) []string {
	if len(labels) <= n {
		return labels
	}
	return labels[:n]
}

func summaryText(displayName string, overall int) string {
	var tier string
	switch {
	case overall >= 85:
		tier = "an excellent"
	case overall >= 70:
		tier = "a good"
	case overall >= 55:
		tier = "a moderate"
	default:
		tier = "a limited"
	}
	return fmt.Sprintf("This hotel is %s fit for %s events (%d/100)", tier, displayName, overall)
}
