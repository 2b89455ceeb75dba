package algorithms

import (
	"math"

	"cofoundr_backend/internal/models"
)

// Per-term caps of the weighted sum. Total is bounded by their sum (85) and
// reported on a 0-100 scale without normalization; the caps are the contract.
const (
	maxComplementarityScore = 40.0
	maxSkillOverlapScore    = 20.0
	maxLocationScore        = 10.0
	maxAvailabilityScore    = 10.0
	maxCompletenessScore    = 5.0

	maxReasons = 3
)

// CompatibilityScore computes how promising the candidate is as a co-founder
// for the viewer (0-100) plus up to three human-readable reasons, ordered by
// term priority. Pure function: both profiles must arrive with skills, offers
// and looking-for tags preloaded.
func CompatibilityScore(viewer, candidate *models.User) (int, []string) {
	reasons := []string{}

	// Tag complementarity: my offers against their needs and vice versa.
	complementarity := complementarityScore(viewer, candidate)
	if complementarity > 0 {
		reasons = append(reasons, "You each offer what the other is looking for")
	}

	skillOverlap := skillOverlapScore(viewer, candidate)
	if skillOverlap > 0 {
		reasons = append(reasons, "Overlapping skill sets")
	}

	location := locationScore(viewer.Location, candidate.Location)
	if location == maxLocationScore {
		reasons = append(reasons, "Based in the same location")
	}

	availability := availabilityScore(viewer.Availability, candidate.Availability)
	if availability > 7 {
		reasons = append(reasons, "Similar time commitment")
	}

	completeness := completenessScore(candidate)
	if completeness > 4 {
		reasons = append(reasons, "Complete, detailed profile")
	}

	total := complementarity + skillOverlap + location + availability + completeness

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return int(math.Round(total)), reasons
}

// complementarityScore counts viewer offers present in the candidate's
// looking-for list plus viewer looking-for present in the candidate's offers,
// 8 points each, capped at 40. Tags compare exactly; free-text duplicates in
// a user's own list count once per tag occurrence on the viewer side only.
func complementarityScore(viewer, candidate *models.User) float64 {
	candidateNeeds := toSet(candidate.LookingForLabels())
	candidateOffers := toSet(candidate.OfferLabels())

	matches := 0
	for _, offer := range viewer.OfferLabels() {
		if candidateNeeds[offer] {
			matches++
		}
	}
	for _, need := range viewer.LookingForLabels() {
		if candidateOffers[need] {
			matches++
		}
	}

	return math.Min(maxComplementarityScore, float64(matches)*8)
}

// skillOverlapScore counts the skill-name intersection, 4 points per shared
// skill, capped at 20. Skills are globally deduplicated so sets suffice.
func skillOverlapScore(viewer, candidate *models.User) float64 {
	viewerSkills := toSet(viewer.SkillNames())

	shared := 0
	for _, name := range candidate.SkillNames() {
		if viewerSkills[name] {
			shared++
			delete(viewerSkills, name)
		}
	}

	return math.Min(maxSkillOverlapScore, float64(shared)*4)
}

// locationScore: exact case-sensitive equality 10, both present but unequal
// 5, either absent 0. Location is free text; no geo lookup.
func locationScore(viewerLocation, candidateLocation string) float64 {
	if viewerLocation == "" || candidateLocation == "" {
		return 0
	}
	if viewerLocation == candidateLocation {
		return maxLocationScore
	}
	return 5
}

// availabilityScore rewards similar weekly commitment. Only computed when
// both users state a percentage.
func availabilityScore(viewer, candidate *int) float64 {
	if viewer == nil || candidate == nil {
		return 0
	}
	diff := math.Abs(float64(*viewer - *candidate))
	return math.Max(0, maxAvailabilityScore-diff/10)
}

// completenessScore scales the fraction of filled profile sections to 5.
func completenessScore(candidate *models.User) float64 {
	checks := []bool{
		candidate.Bio != "",
		candidate.Headline != "",
		candidate.Location != "",
		len(candidate.Skills) > 0,
		len(candidate.Offers) > 0,
		len(candidate.LookingFor) > 0,
	}

	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}

	return float64(filled) / float64(len(checks)) * maxCompletenessScore
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
