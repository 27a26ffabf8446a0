package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Entities and actions reported through change events.
const (
	EntityStudent    = "student"
	EntityCourse     = "course"
	EntityAssignment = "assignment"
	EntityProgress   = "progress"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent tells listeners that a record changed and derived statistics should be refetched.
type ChangeEvent struct {
	Source     string    `json:"source"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         uint      `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ChangeNotifier announces successful mutations.
type ChangeNotifier interface {
	Notify(ctx context.Context, entity, action string, id uint)
}

// SubjectPublisher is the part of a NATS connection used for publishing.
type SubjectPublisher interface {
	Publish(subject string, data []byte) error
}

type changeNotifier struct {
	redis        *redis.Client
	redisChannel string
	nats         SubjectPublisher
	natsSubject  string
	logger       zerolog.Logger
	nodeID       string
	now          func() time.Time
}

// NewChangeNotifier publishes change events on Redis pub/sub and NATS. Either transport may be
// nil. Publish failures are logged and never reach the caller.
func NewChangeNotifier(redisClient *redis.Client, natsConn SubjectPublisher, channelBase string, logger zerolog.Logger) ChangeNotifier {
	channel := ""
	subject := ""
	if channelBase != "" {
		channel = channelBase + ":changes"
		subject = strings.ReplaceAll(channelBase, ":", ".") + ".changes"
	}

	return &changeNotifier{
		redis:        redisClient,
		redisChannel: channel,
		nats:         natsConn,
		natsSubject:  subject,
		logger:       logger.With().Str("component", "change_notifier").Logger(),
		nodeID:       uuid.NewString(),
		now:          time.Now,
	}
}

func (n *changeNotifier) Notify(ctx context.Context, entity, action string, id uint) {
	payload, err := json.Marshal(ChangeEvent{
		Source:     n.nodeID,
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: n.now().UTC(),
	})
	if err != nil {
		n.logger.Warn().Err(err).Msg("failed to encode change event")
		return
	}

	if n.redis != nil && n.redisChannel != "" {
		if err := n.redis.Publish(ctx, n.redisChannel, payload).Err(); err != nil {
			n.logger.Warn().Err(err).Str("entity", entity).Msg("failed to publish change event to redis")
		}
	}

	if n.nats != nil && n.natsSubject != "" {
		if err := n.nats.Publish(n.natsSubject, payload); err != nil {
			n.logger.Warn().Err(err).Str("entity", entity).Msg("failed to publish change event to nats")
		}
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string, string, uint) {}

func notifierOrNop(notifier ChangeNotifier) ChangeNotifier {
	if notifier == nil {
		return nopNotifier{}
	}
	return notifier
}
