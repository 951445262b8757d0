package domain

import "time"

// DarpanIDLength is the exact digit count of a valid Darpan registration id.
const DarpanIDLength = 5

// NGO is the domain model for volunteering organizations.
type NGO struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Location          string    `json:"location"`
	IsVerified        bool      `json:"is_verified"`
	DarpanID          string    `json:"darpan_id,omitempty"`
	VolunteersNeeded  int       `json:"volunteers_needed"`
	CurrentVolunteers int       `json:"current_volunteers"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CapacityRemaining reports how many volunteer slots are still open.
func (n *NGO) CapacityRemaining() int {
	remaining := n.VolunteersNeeded - n.CurrentVolunteers
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ValidDarpanID reports whether the given id is exactly five numeric digits.
func ValidDarpanID(id string) bool {
	if len(id) != DarpanIDLength {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
