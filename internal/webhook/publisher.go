package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/sar_coordination_system/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

// Типы событий, уходящих внешним потребителям
const (
	EventCriticalIncident = "critical_incident"
	EventSecurityRouting  = "security_routing"
)

// Event - структура для данных вебхука
type Event struct {
	EventID    uuid.UUID        `json:"event_id"`
	Type       string           `json:"type"`
	IncidentID string           `json:"incident_id"`
	RiskScore  int              `json:"risk_score"`
	RiskLevel  models.RiskLevel `json:"risk_level"`
	Timestamp  time.Time        `json:"timestamp"`
	Incident   *models.Incident `json:"incident,omitempty"`
}

// NewEvent составляет событие по инциденту
func NewEvent(eventType string, incident *models.Incident) Event {
	return Event{
		EventID:    uuid.New(),
		Type:       eventType,
		IncidentID: incident.ID,
		RiskScore:  incident.AIProfile.RiskScore,
		RiskLevel:  incident.HealthProfile.RiskLevel,
		Timestamp:  time.Now().UTC(),
		Incident:   incident,
	}
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
