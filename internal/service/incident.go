package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/sar_coordination_system/internal/config"
	"github.com/shenikar/sar_coordination_system/internal/geopath"
	"github.com/shenikar/sar_coordination_system/internal/models"
	"github.com/shenikar/sar_coordination_system/internal/webhook"
)

// ErrIncidentNotFound - инцидент отсутствует в текущей сессионной партии
var ErrIncidentNotFound = errors.New("incident not found in session batch")

// IncidentStore определяет контракт для хранения сессионной партии инцидентов
type IncidentStore interface {
	ReplaceBatch(ctx context.Context, incidents []*models.Incident) error
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	SetSecurityRouted(ctx context.Context, id string) (*models.Incident, error)
}

// IncidentGenerator определяет контракт движка синтеза инцидентов
type IncidentGenerator interface {
	GenerateIncidents(count int) ([]*models.Incident, error)
	GenerateAssetsForIncident(incident *models.Incident) (*models.AssetBundle, error)
}

// IncidentService определяет контракт бизнес-логики управления партией
type IncidentService interface {
	GenerateBatch(ctx context.Context, count int) ([]*models.Incident, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	RouteToSecurity(ctx context.Context, id string) (*models.Incident, error)
	GetAssets(ctx context.Context, id string) (*models.AssetBundle, error)
	GetStats(ctx context.Context) (*models.BatchStats, error)
}

type incidentService struct {
	store     IncidentStore
	generator IncidentGenerator
	publisher webhook.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewIncidentService(store IncidentStore, generator IncidentGenerator, publisher webhook.Publisher, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		store:     store,
		generator: generator,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// GenerateBatch генерирует свежую партию и замещает ею сессионную.
// Либо сохраняется вся запрошенная партия, либо возвращается ошибка.
func (s *incidentService) GenerateBatch(ctx context.Context, count int) ([]*models.Incident, error) {
	if count <= 0 {
		count = s.cfg.DefaultBatchSize
	}
	if count > s.cfg.MaxBatchSize {
		count = s.cfg.MaxBatchSize
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GenerateBatch",
		"count":   count,
	})
	log.Info("Generating a fresh incident batch")

	incidents, err := s.generator.GenerateIncidents(count)
	if err != nil {
		log.WithError(err).Error("Failed to generate incident batch")
		return nil, fmt.Errorf("service: could not generate batch: %w", err)
	}

	if err := s.store.ReplaceBatch(ctx, incidents); err != nil {
		log.WithError(err).Error("Failed to store incident batch")
		return nil, fmt.Errorf("service: could not store batch: %w", err)
	}

	// События по критическим инцидентам уходят внешним потребителям.
	// Сбой публикации партию не отменяет.
	for _, incident := range incidents {
		if incident.HealthProfile.RiskLevel != models.RiskCritical {
			continue
		}
		if err := s.publisher.Publish(ctx, webhook.NewEvent(webhook.EventCriticalIncident, incident)); err != nil {
			log.WithError(err).WithField("incident_id", incident.ID).Warn("Failed to publish critical incident event")
		}
	}

	log.WithField("generated", len(incidents)).Info("Incident batch generated and stored")
	return incidents, nil
}

// ListIncidents возвращает текущую сессионную партию целиком
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	incidents, err := s.store.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from store")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// GetIncident возвращает инцидент по идентификатору
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.store.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from store")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// RouteToSecurity помечает инцидент как переданный в службу безопасности.
// Единственная разрешенная мутация записи после генерации.
func (s *incidentService) RouteToSecurity(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "RouteToSecurity",
		"incident_id": id,
	})
	log.Info("Routing incident to security")

	incident, err := s.store.SetSecurityRouted(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to route incident to security")
		return nil, fmt.Errorf("service: could not route incident %s to security: %w", id, err)
	}

	if err := s.publisher.Publish(ctx, webhook.NewEvent(webhook.EventSecurityRouting, incident)); err != nil {
		log.WithError(err).Warn("Failed to publish security routing event")
	}

	log.Info("Incident routed to security")
	return incident, nil
}

// GetAssets строит производные активы (сенсоры и группы) для инцидента.
// Набор свежий на каждый вызов, ничего не кэшируется.
func (s *incidentService) GetAssets(ctx context.Context, id string) (*models.AssetBundle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetAssets",
		"incident_id": id,
	})

	incident, err := s.store.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident for asset generation")
		return nil, fmt.Errorf("service: could not get incident %s: %w", id, err)
	}

	bundle, err := s.generator.GenerateAssetsForIncident(incident)
	if err != nil {
		log.WithError(err).Error("Failed to generate assets")
		return nil, fmt.Errorf("service: could not generate assets for %s: %w", id, err)
	}

	log.WithFields(logrus.Fields{
		"sensors": len(bundle.Sensors),
		"teams":   len(bundle.Teams),
	}).Info("Assets generated")
	return bundle, nil
}

// GetStats считает сводку по текущей партии
func (s *incidentService) GetStats(ctx context.Context) (*models.BatchStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStats",
	})

	incidents, err := s.store.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for stats")
		return nil, fmt.Errorf("service: could not compute stats: %w", err)
	}

	stats := &models.BatchStats{Total: len(incidents)}
	var scoreSum int
	var pathMeters float64
	var pathCount int
	for _, incident := range incidents {
		scoreSum += incident.AIProfile.RiskScore
		if incident.HealthProfile.RiskLevel == models.RiskCritical {
			stats.Critical++
		}
		if incident.Status == models.StatusSearching {
			stats.Searching++
		}
		if incident.IsSecurityRouted {
			stats.SecurityRouted++
		}
		// Маршруты отсортированы по убыванию уверенности, первый - наиболее вероятный
		if len(incident.AIProfile.PredictedPaths) > 0 {
			pathMeters += geopath.LengthMeters(incident.AIProfile.PredictedPaths[0].Points)
			pathCount++
		}
	}
	if stats.Total > 0 {
		stats.AverageRiskScore = float64(scoreSum) / float64(stats.Total)
	}
	if pathCount > 0 {
		stats.AveragePathKm = pathMeters / float64(pathCount) / 1000
	}

	return stats, nil
}
