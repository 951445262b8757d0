package domain

// VenueType enumerates venue ownership categories.
type VenueType string

const (
	VenueTypePublic     VenueType = "PUBLIC"
	VenueTypeCommercial VenueType = "COMMERCIAL"
	VenueTypePrivate    VenueType = "PRIVATE"
)

// SafetyRating is the green/yellow/red classification derived from venue type.
type SafetyRating string

const (
	SafetyGreen  SafetyRating = "GREEN"
	SafetyYellow SafetyRating = "YELLOW"
	SafetyRed    SafetyRating = "RED"
)

// Venue is an owned value of an Event. SafetyRating is derived data: it must
// always equal SafetyRatingForVenueType(Type) and is never set independently.
type Venue struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	Type         VenueType    `json:"type"`
	SafetyRating SafetyRating `json:"safety_rating"`
}

// SafetyRatingForVenueType maps venue type to its safety rating. Unrecognized
// types fall through to the most cautious rating.
func SafetyRatingForVenueType(t VenueType) SafetyRating {
	switch t {
	case VenueTypePublic:
		return SafetyGreen
	case VenueTypeCommercial:
		return SafetyYellow
	case VenueTypePrivate:
		return SafetyRed
	default:
		return SafetyRed
	}
}

// SafetyBadgeText returns the UI badge label for a safety rating.
func SafetyBadgeText(r SafetyRating) string {
	switch r {
	case SafetyGreen:
		return "Verified Safe"
	case SafetyYellow:
		return "Caution"
	default:
		return "High Caution"
	}
}

// ClassifyVenue returns a copy of the venue with its safety rating recomputed
// from its type. Idempotent; callers reapply it whenever the type changes.
func ClassifyVenue(v Venue) Venue {
	v.SafetyRating = SafetyRatingForVenueType(v.Type)
	return v
}
