// Package trust implements the trust-point economy: the action/delta table,
// clamped accumulation, tier derivation and RSVP eligibility gates.
package trust

import "github.com/spec-kit/community-engage/internal/domain"

// PointAction names a reputation-affecting community action.
type PointAction string

const (
	ActionOrganizeEvent         PointAction = "ORGANIZE_EVENT"
	ActionAttendEvent           PointAction = "ATTEND_EVENT"
	ActionNoShow                PointAction = "NO_SHOW"
	ActionVerifyIdentity        PointAction = "VERIFY_IDENTITY"
	ActionReportViolation       PointAction = "REPORT_VIOLATION"
	ActionVolunteerActivity     PointAction = "VOLUNTEER_ACTIVITY"
	ActionCommunityContribution PointAction = "COMMUNITY_CONTRIBUTION"
)

// Deltas is the fixed action/delta table. Values are behavior-critical
// constants, not configuration.
var Deltas = map[PointAction]int{
	ActionOrganizeEvent:         20,
	ActionAttendEvent:           5,
	ActionNoShow:                -10,
	ActionVerifyIdentity:        10,
	ActionReportViolation:       -5,
	ActionVolunteerActivity:     15,
	ActionCommunityContribution: 10,
}

// Eligibility thresholds over the trust-point scale.
const (
	// RSVPThreshold is the minimum point count required to RSVP.
	RSVPThreshold = 20
	// WarningThreshold marks where the UI starts warning the user that they
	// are close to losing RSVP eligibility.
	WarningThreshold = 30
)

// Tier is a named reputation band derived from trust points.
type Tier string

const (
	TierNew    Tier = "New"
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierHigh   Tier = "High"
	TierElite  Tier = "Elite"
)

// Clamp bounds a point count to the valid trust-point range.
func Clamp(points int) int {
	if points < domain.TrustPointsMin {
		return domain.TrustPointsMin
	}
	if points > domain.TrustPointsMax {
		return domain.TrustPointsMax
	}
	return points
}

// DeltaFor returns the signed delta for an action, or 0 for an unknown one.
func DeltaFor(action PointAction) int {
	return Deltas[action]
}

// Apply accumulates an action's delta onto a point count, clamped.
func Apply(points int, action PointAction) int {
	return Clamp(points + DeltaFor(action))
}

// TierFor maps a point count to its reputation tier.
func TierFor(points int) Tier {
	points = Clamp(points)
	switch {
	case points < 20:
		return TierNew
	case points < 50:
		return TierBronze
	case points < 70:
		return TierSilver
	case points < 90:
		return TierHigh
	default:
		return TierElite
	}
}

// CanRSVP reports whether a point count meets the RSVP eligibility gate.
func CanRSVP(points int) bool {
	return points >= RSVPThreshold
}

// NearIneligibility reports whether the user is still eligible but close
// enough to the gate that the UI should warn before further point loss.
func NearIneligibility(points int) bool {
	return points >= RSVPThreshold && points < WarningThreshold
}
