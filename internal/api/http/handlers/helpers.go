package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/community-engage/internal/api/dto"
	"github.com/spec-kit/community-engage/internal/auth"
	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/service"
	"github.com/spec-kit/community-engage/internal/state"
	"github.com/spec-kit/community-engage/internal/trust"
	"github.com/spec-kit/community-engage/pkg/errorutil"
)

// sessionStore resolves the authenticated principal and their state store.
func sessionStore(c *fiber.Ctx, sessions *service.SessionService) (*state.Store, *domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, nil, errorutil.NewUnauthorized("user required")
	}
	store, err := sessions.StoreFor(c.UserContext(), principal.User)
	if err != nil {
		return nil, nil, errorutil.MapError(err)
	}
	return store, principal.User, nil
}

func userSummary(user *domain.User) *dto.UserSummary {
	if user == nil {
		return nil
	}
	return &dto.UserSummary{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		TrustPoints:        user.TrustPoints,
		TrustTier:          string(trust.TierFor(user.TrustPoints)),
		CanRSVP:            trust.CanRSVP(user.TrustPoints),
		NearIneligibility:  trust.NearIneligibility(user.TrustPoints),
		VerificationStatus: string(user.VerificationStatus),
	}
}

func ngoSummary(ngo *domain.NGO) dto.NGOSummary {
	return dto.NGOSummary{
		ID:                ngo.ID,
		Name:              ngo.Name,
		Description:       ngo.Description,
		Category:          ngo.Category,
		Location:          ngo.Location,
		IsVerified:        ngo.IsVerified,
		VolunteersNeeded:  ngo.VolunteersNeeded,
		CurrentVolunteers: ngo.CurrentVolunteers,
	}
}

func eventSummary(event *domain.Event, rsvpd bool) dto.EventSummary {
	return dto.EventSummary{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Category:    event.Category,
		Venue: dto.VenueSummary{
			Name:         event.Venue.Name,
			Address:      event.Venue.Address,
			Type:         string(event.Venue.Type),
			SafetyRating: string(event.Venue.SafetyRating),
			SafetyBadge:  domain.SafetyBadgeText(event.Venue.SafetyRating),
		},
		MaxAttendees: event.MaxAttendees,
		Attendees:    len(event.RSVPList),
		IsRSVPd:      rsvpd,
		StartsAt:     event.StartsAt,
	}
}

func notificationSummary(notification *domain.Notification) dto.NotificationSummary {
	return dto.NotificationSummary{
		ID:        notification.ID,
		Type:      string(notification.Type),
		Title:     notification.Title,
		Body:      notification.Body,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

func threadSummary(thread *domain.ChatThread) dto.ThreadSummary {
	messages := make([]dto.MessageSummary, 0, len(thread.Messages))
	for _, message := range thread.Messages {
		messages = append(messages, dto.MessageSummary{
			ID:       message.ID,
			SenderID: message.SenderID,
			Body:     message.Body,
			IsRead:   message.IsRead,
			SentAt:   message.SentAt,
		})
	}
	return dto.ThreadSummary{
		ID:           thread.ID,
		ContextKind:  string(thread.Context.Kind),
		ContextID:    thread.Context.ID,
		Participants: thread.Participants,
		Messages:     messages,
		LastActivity: thread.LastActivity,
	}
}
