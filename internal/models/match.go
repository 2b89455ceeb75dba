package models

// Match is an undirected relationship between two users, stored in canonical
// order: UserAID is always the lexicographically smaller id. The unique index
// on the ordered pair therefore guarantees a single row per unordered pair,
// and the pair lookup is a single indexed read.
type Match struct {
	BaseModel
	UserAID string `gorm:"not null;uniqueIndex:idx_match_pair" json:"user_a_id"`
	UserBID string `gorm:"not null;uniqueIndex:idx_match_pair;index" json:"user_b_id"`
	Active  bool   `gorm:"not null;default:true" json:"active"`

	UserA *User `gorm:"foreignKey:UserAID" json:"-"`
	UserB *User `gorm:"foreignKey:UserBID" json:"-"`
}

// CanonicalPair orders two user ids deterministically for match storage.
func CanonicalPair(x, y string) (userA, userB string) {
	if x < y {
		return x, y
	}
	return y, x
}

// Involves reports whether the given user is one of the two participants.
func (m *Match) Involves(userID string) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// OtherUserID returns the participant that is not the given user.
// Callers must check Involves first.
func (m *Match) OtherUserID(userID string) string {
	if m.UserAID == userID {
		return m.UserBID
	}
	return m.UserAID
}
