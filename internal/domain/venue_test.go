package domain

import "testing"

func TestSafetyRatingForVenueType(t *testing.T) {
	tests := []struct {
		venueType VenueType
		want      SafetyRating
	}{
		{VenueTypePublic, SafetyGreen},
		{VenueTypeCommercial, SafetyYellow},
		{VenueTypePrivate, SafetyRed},
		{VenueType("ROOFTOP"), SafetyRed},
		{VenueType(""), SafetyRed},
	}

	for _, tt := range tests {
		if got := SafetyRatingForVenueType(tt.venueType); got != tt.want {
			t.Fatalf("rating for %q: expected %q, got %q", tt.venueType, tt.want, got)
		}
	}
}

func TestClassifyVenueIdempotent(t *testing.T) {
	for _, venueType := range []VenueType{VenueTypePublic, VenueTypeCommercial, VenueTypePrivate, VenueType("UNKNOWN")} {
		venue := Venue{ID: "venue-1", Type: venueType}
		once := ClassifyVenue(venue)
		twice := ClassifyVenue(once)
		if once != twice {
			t.Fatalf("classification of %q not idempotent: %+v vs %+v", venueType, once, twice)
		}
	}
}

func TestPrivateVenueAlwaysHighCaution(t *testing.T) {
	venue := ClassifyVenue(Venue{ID: "venue-2", Name: "Back Room", Address: "12 Hill Rd", Type: VenueTypePrivate})
	if venue.SafetyRating != SafetyRed {
		t.Fatalf("expected red rating for private venue, got %q", venue.SafetyRating)
	}
	if badge := SafetyBadgeText(venue.SafetyRating); badge != "High Caution" {
		t.Fatalf("expected badge %q, got %q", "High Caution", badge)
	}
}

func TestValidDarpanID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"12345", true},
		{"00000", true},
		{"1234", false},
		{"123456", false},
		{"12a45", false},
		{"12 45", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDarpanID(tt.id); got != tt.valid {
			t.Fatalf("ValidDarpanID(%q): expected %v, got %v", tt.id, tt.valid, got)
		}
	}
}
