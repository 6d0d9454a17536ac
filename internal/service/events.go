package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event is a platform notification published to interested consumers
// (admin dashboards, mailers) over redis pub/sub.
type Event struct {
	Type       string    `json:"type"`
	ResourceID string    `json:"resourceId"`
	ActorID    string    `json:"actorId,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	EventApplicationSubmitted = "application.submitted"
	EventOrganizerRevoked     = "organizer.revoked"
	EventCampaignApproved     = "campaign.approved"
	EventDonationCompleted    = "donation.completed"
	EventWithdrawalPaid       = "withdrawal.paid"
)

const eventChannel = "causeway:events"

type EventService struct {
	rdb *redis.Client
}

func NewEventService(redisClient *redis.Client) *EventService {
	return &EventService{
		rdb: redisClient,
	}
}

func (s *EventService) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, eventChannel, jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}
