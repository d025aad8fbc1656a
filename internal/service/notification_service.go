package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/repository"
)

const notificationBufferSize = 16

// NotificationService persists and fans out notifications to report owners.
// Events are bridged across nodes through Redis pub/sub and NATS so a client
// connected to any node receives them.
type NotificationService interface {
	LaporanNotifier
	List(ctx context.Context, session Session, limit, offset int) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, id uint, session Session) (dto.NotificationResponse, error)
	Subscribe(pegawaiID uint) (<-chan dto.NotificationResponse, func())
	Start(ctx context.Context)
}

type notificationService struct {
	repo        repository.NotificationRepository
	redis       *redis.Client
	redisStream string
	nats        *nats.Conn
	natsSubject string
	logger      zerolog.Logger
	broker      *notificationBroker
	nodeID      string
}

type notificationEvent struct {
	Source       string                    `json:"source"`
	Notification dto.NotificationResponse `json:"notification"`
	SentAt       time.Time                 `json:"sent_at"`
}

type notificationBroker struct {
	mu          sync.RWMutex
	subscribers map[uint]map[chan dto.NotificationResponse]struct{}
}

// NewNotificationService constructs a notification service.
func NewNotificationService(repo repository.NotificationRepository, redisClient *redis.Client, channelBase string, natsConn *nats.Conn, logger zerolog.Logger) NotificationService {
	stream := ""
	subject := ""
	if channelBase != "" {
		stream = channelBase + ":notifications"
		subject = strings.ReplaceAll(channelBase, ":", ".") + ".notifications"
	}

	return &notificationService{
		repo:        repo,
		redis:       redisClient,
		redisStream: stream,
		nats:        natsConn,
		natsSubject: subject,
		logger:      logger.With().Str("component", "notification_service").Logger(),
		broker: &notificationBroker{
			subscribers: make(map[uint]map[chan dto.NotificationResponse]struct{}),
		},
		nodeID: uuid.NewString(),
	}
}

func (s *notificationService) Start(ctx context.Context) {
	if s.redis != nil && s.redisStream != "" {
		go s.consumeRedis(ctx)
	}
	if s.nats != nil && s.natsSubject != "" {
		go s.consumeNATS(ctx)
	}
}

// NotifyLaporan persists the event and fans it out. Failures are logged, not
// returned: notification delivery must never roll back a verification.
func (s *notificationService) NotifyLaporan(ctx context.Context, pegawaiID, laporanID uint, notifType, message string) {
	model := models.Notification{
		PegawaiID: pegawaiID,
		LaporanID: &laporanID,
		Type:      notifType,
		Message:   message,
	}

	if err := s.repo.Create(ctx, &model); err != nil {
		s.logger.Error().Err(err).Uint("pegawai_id", pegawaiID).Msg("failed to persist notification")
		return
	}

	response := dto.NewNotificationResponse(model)
	s.broker.broadcast(pegawaiID, response)

	if err := s.publish(ctx, response); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish notification to broker")
	}
}

func (s *notificationService) List(ctx context.Context, session Session, limit, offset int) ([]dto.NotificationResponse, error) {
	notifications, err := s.repo.ListByPegawai(ctx, session.PegawaiID, limit, offset)
	if err != nil {
		return nil, err
	}

	return dto.NewNotificationResponseSlice(notifications), nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uint, session Session) (dto.NotificationResponse, error) {
	notification, err := s.repo.MarkRead(ctx, id, session.PegawaiID)
	if err != nil {
		return dto.NotificationResponse{}, err
	}

	return dto.NewNotificationResponse(notification), nil
}

func (s *notificationService) Subscribe(pegawaiID uint) (<-chan dto.NotificationResponse, func()) {
	channel := make(chan dto.NotificationResponse, notificationBufferSize)
	s.broker.subscribe(pegawaiID, channel)

	cleanup := func() {
		s.broker.unsubscribe(pegawaiID, channel)
	}

	return channel, cleanup
}

func (s *notificationService) publish(ctx context.Context, notification dto.NotificationResponse) error {
	event := notificationEvent{
		Source:       s.nodeID,
		Notification: notification,
		SentAt:       time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if s.redis != nil && s.redisStream != "" {
		if err := s.redis.Publish(ctx, s.redisStream, payload).Err(); err != nil {
			return err
		}
	}

	if s.nats != nil && s.natsSubject != "" {
		if err := s.nats.Publish(s.natsSubject, payload); err != nil {
			return err
		}
	}

	return nil
}

func (s *notificationService) consumeRedis(ctx context.Context) {
	pubsub := s.redis.Subscribe(ctx, s.redisStream)
	defer func() { _ = pubsub.Close() }()

	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			s.logger.Error().Err(err).Msg("notification redis subscription closed")
			return
		}
		s.handleEvent([]byte(msg.Payload))
	}
}

func (s *notificationService) consumeNATS(ctx context.Context) {
	sub, err := s.nats.QueueSubscribe(s.natsSubject, "izakod-notifications", func(msg *nats.Msg) {
		s.handleEvent(msg.Data)
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to subscribe to nats notifications subject")
		return
	}

	go func() {
		<-ctx.Done()
		if err := sub.Drain(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to drain notification nats subscription")
		}
	}()
}

func (s *notificationService) handleEvent(payload []byte) {
	var event notificationEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		s.logger.Warn().Err(err).Msg("invalid notification event payload")
		return
	}

	if event.Source == s.nodeID {
		return
	}

	s.broker.broadcast(event.Notification.PegawaiID, event.Notification)
}

func (b *notificationBroker) subscribe(pegawaiID uint, ch chan dto.NotificationResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.subscribers[pegawaiID]; !exists {
		b.subscribers[pegawaiID] = make(map[chan dto.NotificationResponse]struct{})
	}
	b.subscribers[pegawaiID][ch] = struct{}{}
}

func (b *notificationBroker) unsubscribe(pegawaiID uint, ch chan dto.NotificationResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subscribers, ok := b.subscribers[pegawaiID]; ok {
		delete(subscribers, ch)
		close(ch)
		if len(subscribers) == 0 {
			delete(b.subscribers, pegawaiID)
		}
	}
}

func (b *notificationBroker) broadcast(pegawaiID uint, notification dto.NotificationResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subscribers := b.subscribers[pegawaiID]
	for ch := range subscribers {
		select {
		case ch <- notification:
		default:
		}
	}
}
