package algorithms

import (
	"fmt"
	"testing"

	"cofoundr_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func buildProfile(offers, lookingFor, skills []string, location string, availability *int) *models.User {
	u := &models.User{Location: location, Availability: availability}
	for _, label := range offers {
		u.Offers = append(u.Offers, models.Offer{Label: label})
	}
	for _, label := range lookingFor {
		u.LookingFor = append(u.LookingFor, models.LookingFor{Label: label})
	}
	for _, name := range skills {
		u.Skills = append(u.Skills, models.UserSkill{Skill: &models.Skill{Name: name}})
	}
	return u
}

func intPtr(v int) *int { return &v }

func TestCompatibilityScore_TypicalProfiles(t *testing.T) {
	viewer := buildProfile(
		[]string{"Backend Development"},
		[]string{"Marketing"},
		[]string{"React", "Node.js"},
		"SF",
		intPtr(80),
	)
	candidate := buildProfile(
		[]string{"Marketing"},
		[]string{"Backend Development"},
		[]string{"React"},
		"SF",
		intPtr(85),
	)

	score, reasons := CompatibilityScore(viewer, candidate)

	// complementarity 16 + skill overlap 4 + location 10 + availability 9.5
	// + completeness 4/6*5 ≈ 3.33 => 42.83, rounded to 43.
	assert.Equal(t, 43, score)
	assert.Len(t, reasons, 3)
	assert.Equal(t, "You each offer what the other is looking for", reasons[0])
	assert.Equal(t, "Overlapping skill sets", reasons[1])
	assert.Equal(t, "Based in the same location", reasons[2])
}

func TestCompatibilityScore_EmptyProfiles(t *testing.T) {
	score, reasons := CompatibilityScore(&models.User{}, &models.User{})

	assert.Equal(t, 0, score)
	assert.Empty(t, reasons)
}

func TestCompatibilityScore_TermCaps(t *testing.T) {
	// Ten complementary tag pairs and ten shared skills blow well past the
	// per-term caps; each term must clip independently.
	var offers, needs, skills []string
	for i := 0; i < 10; i++ {
		offers = append(offers, fmt.Sprintf("Offer %d", i))
		needs = append(needs, fmt.Sprintf("Need %d", i))
		skills = append(skills, fmt.Sprintf("Skill %d", i))
	}

	viewer := buildProfile(offers, needs, skills, "Berlin", intPtr(100))
	candidate := buildProfile(needs, offers, skills, "Berlin", intPtr(100))
	candidate.Bio = "bio"
	candidate.Headline = "headline"

	score, reasons := CompatibilityScore(viewer, candidate)

	// 40 + 20 + 10 + 10 + 5 is the absolute maximum.
	assert.Equal(t, 85, score)
	assert.Len(t, reasons, 3, "reasons are truncated to the top three terms")
}

func TestCompatibilityScore_Boundedness(t *testing.T) {
	profiles := []*models.User{
		{},
		buildProfile([]string{"A"}, nil, nil, "", nil),
		buildProfile(nil, []string{"A"}, []string{"Go"}, "NYC", intPtr(0)),
		buildProfile([]string{"A", "A"}, []string{"B"}, []string{"Go", "Rust"}, "NYC", intPtr(100)),
	}

	for _, viewer := range profiles {
		for _, candidate := range profiles {
			score, _ := CompatibilityScore(viewer, candidate)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestCompatibilityScore_LocationTiers(t *testing.T) {
	base := buildProfile(nil, nil, nil, "", nil)

	sf := buildProfile(nil, nil, nil, "SF", nil)
	berlin := buildProfile(nil, nil, nil, "Berlin", nil)
	lowercaseSF := buildProfile(nil, nil, nil, "sf", nil)

	// Exact case-sensitive match only earns full points.
	score, _ := CompatibilityScore(sf, lowercaseSF)
	other, _ := CompatibilityScore(sf, berlin)
	assert.Equal(t, other, score, "case mismatch scores as different location")

	// Either side missing scores zero for the term.
	score, _ = CompatibilityScore(base, sf)
	assert.Equal(t, 1, score) // completeness only: 1/6*5 rounds to 1
}

func TestCompatibilityScore_AvailabilityRequiresBoth(t *testing.T) {
	viewer := buildProfile(nil, nil, nil, "", intPtr(50))
	candidate := buildProfile(nil, nil, nil, "", nil)

	score, _ := CompatibilityScore(viewer, candidate)
	assert.Equal(t, 0, score, "availability term skipped when one side is absent")

	candidate.Availability = intPtr(50)
	score, reasons := CompatibilityScore(viewer, candidate)
	assert.Equal(t, 10, score)
	assert.Contains(t, reasons, "Similar time commitment")
}

func TestCompatibilityScore_DuplicateTagsTolerated(t *testing.T) {
	// Duplicate free-text tags are a real data state; each viewer occurrence
	// matching the candidate counts, but the score still respects the cap.
	viewer := buildProfile([]string{"Design", "Design"}, nil, nil, "", nil)
	candidate := buildProfile(nil, []string{"Design"}, nil, "", nil)

	score, _ := CompatibilityScore(viewer, candidate)
	completeness := 1.0 / 6 * 5 // candidate has only a looking-for entry
	assert.Equal(t, int(16+completeness+0.5), score)
}
