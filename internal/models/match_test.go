package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPairOrdersLexicographically(t *testing.T) {
	a, b := CanonicalPair("bbb", "aaa")
	assert.Equal(t, "aaa", a)
	assert.Equal(t, "bbb", b)

	a, b = CanonicalPair("aaa", "bbb")
	assert.Equal(t, "aaa", a)
	assert.Equal(t, "bbb", b)
}

func TestMatchParticipantHelpers(t *testing.T) {
	m := &Match{UserAID: "aaa", UserBID: "bbb"}

	assert.True(t, m.Involves("aaa"))
	assert.True(t, m.Involves("bbb"))
	assert.False(t, m.Involves("ccc"))

	assert.Equal(t, "bbb", m.OtherUserID("aaa"))
	assert.Equal(t, "aaa", m.OtherUserID("bbb"))
}

func TestNormalizeSkillName(t *testing.T) {
	assert.Equal(t, "Go", NormalizeSkillName("  Go "))
	assert.Equal(t, "Machine Learning", NormalizeSkillName("Machine   Learning"))
	assert.Equal(t, "", NormalizeSkillName("   "))
}
