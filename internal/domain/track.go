package domain

// Track selects which side of the platform the user is engaging with.
type Track string

const (
	TrackVolunteering Track = "VOLUNTEERING"
	TrackSocial       Track = "SOCIAL"
)
