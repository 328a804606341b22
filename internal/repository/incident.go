package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/sar_coordination_system/internal/models"
	"github.com/shenikar/sar_coordination_system/internal/service"
)

// IncidentStore хранит сессионную партию инцидентов в памяти процесса.
// Партия живет до следующей генерации и никуда не персистируется;
// Redis используется только как вспомогательный сессионный кэш с TTL.
// Записи принимаются и отдаются копиями: хранимые экземпляры никогда
// не разделяются с вызывающим кодом, единственная послегенерационная
// мутация (IsSecurityRouted) видна читателям только через повторное чтение.
type IncidentStore struct {
	mu          sync.RWMutex
	batch       []*models.Incident
	byID        map[string]*models.Incident
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentStore(redisClient *redis.Client, cacheTTL time.Duration) service.IncidentStore {
	return &IncidentStore{
		byID:        make(map[string]*models.Incident),
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// cloneIncident копирует запись на уровне структуры. Слайсы внутри записи
// после генерации не изменяются, поэтому их разделение безопасно.
func cloneIncident(incident *models.Incident) *models.Incident {
	clone := *incident
	return &clone
}

// ReplaceBatch замещает сессионную партию целиком
func (s *IncidentStore) ReplaceBatch(ctx context.Context, incidents []*models.Incident) error {
	stored := make([]*models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		stored = append(stored, cloneIncident(incident))
	}

	s.mu.Lock()
	s.batch = stored
	s.byID = make(map[string]*models.Incident, len(stored))
	for _, incident := range stored {
		s.byID[incident.ID] = incident
	}
	s.mu.Unlock()

	// Кэш вспомогательный: сбой записи партию не отменяет
	for _, incident := range incidents {
		_ = s.setIncidentCache(ctx, incident)
	}
	return nil
}

// ListIncidents возвращает текущую партию в виде копий записей
func (s *IncidentStore) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	incidents := make([]*models.Incident, 0, len(s.batch))
	for _, incident := range s.batch {
		incidents = append(incidents, cloneIncident(incident))
	}
	return incidents, nil
}

// GetByID возвращает копию инцидента из памяти, при промахе - из кэша Redis
func (s *IncidentStore) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	s.mu.RLock()
	incident, ok := s.byID[id]
	if ok {
		incident = cloneIncident(incident)
	}
	s.mu.RUnlock()
	if ok {
		return incident, nil
	}

	cached, err := s.getIncidentFromCache(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check incident cache: %w", err)
	}
	if cached != nil {
		return cached, nil
	}
	return nil, fmt.Errorf("%w: %s", service.ErrIncidentNotFound, id)
}

// SetSecurityRouted помечает инцидент как переданный в службу безопасности
// и обновляет его копию в кэше
func (s *IncidentStore) SetSecurityRouted(ctx context.Context, id string) (*models.Incident, error) {
	s.mu.Lock()
	incident, ok := s.byID[id]
	if ok {
		incident.IsSecurityRouted = true
		incident = cloneIncident(incident)
	}
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrIncidentNotFound, id)
	}

	_ = s.setIncidentCache(ctx, incident)
	return incident, nil
}

// getIncidentFromCache пытается получить инцидент из Redis
func (s *IncidentStore) getIncidentFromCache(ctx context.Context, id string) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id)
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// setIncidentCache сохраняет инцидент в Redis с TTL сессии
func (s *IncidentStore) setIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID)
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := s.redisClient.Set(ctx, key, val, s.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}
