package generator

import (
	"fmt"
	"strings"

	"github.com/shenikar/sar_coordination_system/internal/models"
	"github.com/shenikar/sar_coordination_system/internal/random"
	"github.com/shenikar/sar_coordination_system/internal/refdata"
)

const (
	sensorOffset = 0.008
	droneChance  = 0.5
)

// GenerateAssetsForIncident производит сенсоры и поисковые группы,
// пространственно привязанные к одному инциденту. Чистая функция от
// инцидента и источника случайности: инцидент не изменяется, на каждый
// вызов - свежий набор активов, без кэширования.
func (g *Generator) GenerateAssetsForIncident(incident *models.Incident) (*models.AssetBundle, error) {
	bundle := &models.AssetBundle{
		Sensors: []models.Sensor{},
		Teams:   []models.Team{},
	}
	center := incident.LastSeenCoords
	serial := incidentSerial(incident.ID)

	// Сенсоры: 0-4 штуки в малом радиусе вокруг точки последнего обнаружения
	sensorCount, err := random.IntRange(g.src, 0, 4)
	if err != nil {
		return nil, err
	}
	for i := 0; i < sensorCount; i++ {
		sensorType, err := random.Choice(g.src, refdata.SensorTypes)
		if err != nil {
			return nil, err
		}
		battery, err := random.IntRange(g.src, 40, 100)
		if err != nil {
			return nil, err
		}
		reading, err := random.IntRange(g.src, 20, 45)
		if err != nil {
			return nil, err
		}

		status := "active"
		if incident.HealthProfile.RiskLevel == models.RiskCritical {
			status = "alert"
		}

		bundle.Sensors = append(bundle.Sensors, models.Sensor{
			ID:     fmt.Sprintf("SENS-%s-%d", serial, i),
			Type:   sensorType,
			Status: status,
			Coords: models.GeoCoordinate{
				Lat: center.Lat + random.Float(g.src, -sensorOffset, sensorOffset),
				Lng: center.Lng + random.Float(g.src, -sensorOffset, sensorOffset),
			},
			Battery:      battery,
			ReadingValue: fmt.Sprintf("%d", reading),
			MetricLabel:  refdata.SensorMetricLabels[sensorType],
			LocationName: fmt.Sprintf("نطاق %s", incident.City),
		})
	}

	// Наземная группа выходит только по инцидентам в активном поиске
	if incident.Status == models.StatusSearching {
		bundle.Teams = append(bundle.Teams, models.Team{
			ID:     fmt.Sprintf("GT-%s", serial),
			Name:   fmt.Sprintf("فريق أرضي (%s)", serial),
			Type:   models.TeamGround,
			Status: "searching",
			Coords: models.GeoCoordinate{
				Lat: center.Lat - 0.003,
				Lng: center.Lng + 0.003,
			},
			AssignedIncidentID: incident.ID,
		})
	}

	// Волонтерская группа: только если инциденту назначена волонтерская
	// поддержка (выставляется при генерации для не-низкого риска)
	if incident.HasVolunteerSupport && random.Chance(g.src, 0.5) {
		bundle.Teams = append(bundle.Teams, models.Team{
			ID:     fmt.Sprintf("VT-%s", serial),
			Name:   fmt.Sprintf("فريق متطوعين (%s)", serial),
			Type:   models.TeamVolunteer,
			Status: "standby",
			Coords: models.GeoCoordinate{
				Lat: center.Lat + 0.002,
				Lng: center.Lng + 0.005,
			},
			AssignedIncidentID: incident.ID,
		})
	}

	// Дрон только для отображения на карте, не входит в наземное управление
	if random.Chance(g.src, droneChance) {
		battery, err := random.IntRange(g.src, 50, 90)
		if err != nil {
			return nil, err
		}
		sector, err := random.IntRange(g.src, 1, 5)
		if err != nil {
			return nil, err
		}
		bundle.Teams = append(bundle.Teams, models.Team{
			ID:     fmt.Sprintf("DR-%s", serial),
			Name:   fmt.Sprintf("درون %s - قطاع %d", incident.City, sector),
			Type:   models.TeamDrone,
			Status: "searching",
			Coords: models.GeoCoordinate{
				Lat: center.Lat + 0.004,
				Lng: center.Lng - 0.002,
			},
			Battery:            battery,
			AssignedIncidentID: incident.ID,
		})
	}

	return bundle, nil
}

// incidentSerial выделяет числовой хвост из идентификатора вида INC-2026-1000
func incidentSerial(id string) string {
	parts := strings.Split(id, "-")
	return parts[len(parts)-1]
}
