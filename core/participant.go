package core

import "time"

// Participant is one user's membership record within a session. Identity is
// the ID field, unique within a session. Color is assigned by the session at
// insertion time when empty and never reassigned once set.
type Participant struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Color    string    `json:"color"`
	IsHost   bool      `json:"isHost"`
	JoinedAt time.Time `json:"joinedAt"`
	LastSeen time.Time `json:"lastSeen"`
}
