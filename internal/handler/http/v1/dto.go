package v1

import (
	"time"

	"github.com/shenikar/sar_coordination_system/internal/models"
)

// GenerateBatchRequest DTO для запроса генерации партии
// @Description DTO для запроса генерации партии инцидентов
type GenerateBatchRequest struct {
	Count int `json:"count" validate:"gte=0,lte=10000"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                  string                  `json:"id"`
	MissingName         string                  `json:"missing_name"`
	Age                 int                     `json:"age"`
	Gender              models.Gender           `json:"gender"`
	Region              string                  `json:"region"`
	Governorate         string                  `json:"governorate"`
	City                string                  `json:"city"`
	LastSeenCoords      models.GeoCoordinate    `json:"last_seen_coords"`
	CityAnchorCoords    models.GeoCoordinate    `json:"city_anchor_coords"`
	TerrainType         string                  `json:"terrain_type"`
	WeatherContext      string                  `json:"weather_context"`
	Status              models.IncidentStatus   `json:"status"`
	LastSeenHoursAgo    int                     `json:"last_seen_hours_ago"`
	ReportDate          time.Time               `json:"report_date"`
	Source              string                  `json:"source"`
	Description         string                  `json:"description"`
	HealthProfile       models.HealthProfile    `json:"health_profile"`
	AIProfile           models.AIProfile        `json:"ai_profile"`
	Companions          []models.Companion      `json:"companions"`
	Connections         models.ConnectionStatus `json:"connections"`
	HasVolunteerSupport bool                    `json:"has_volunteer_support"`
	IsSecurityRouted    bool                    `json:"is_security_routed"`
}

// AssetBundleResponse DTO для ответа с производными активами инцидента
// @Description DTO для ответа с сенсорами и группами инцидента
type AssetBundleResponse struct {
	Sensors []models.Sensor `json:"sensors"`
	Teams   []models.Team   `json:"teams"`
}

// StatsResponse DTO для ответа со сводкой по партии
// @Description DTO для ответа со сводкой по текущей партии
type StatsResponse struct {
	Total            int     `json:"total"`
	Critical         int     `json:"critical"`
	Searching        int     `json:"searching"`
	SecurityRouted   int     `json:"security_routed"`
	AverageRiskScore float64 `json:"average_risk_score"`
	AveragePathKm    float64 `json:"average_path_km"`
}
