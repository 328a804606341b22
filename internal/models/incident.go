package models

import (
	"time"
)

// Gender - пол пропавшего
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IncidentStatus - статус инцидента в жизненном цикле поиска
type IncidentStatus string

const (
	StatusNew           IncidentStatus = "new"
	StatusSearching     IncidentStatus = "searching"
	StatusMonitoring    IncidentStatus = "monitoring"
	StatusFoundAlive    IncidentStatus = "found_alive"
	StatusFoundDeceased IncidentStatus = "found_deceased"
	StatusClosed        IncidentStatus = "closed"
)

// RiskLevel - категориальный уровень риска для здоровья/выживания
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// PathTier - уровень достоверности прогнозируемого маршрута
type PathTier string

const (
	TierPrimary   PathTier = "primary"
	TierSecondary PathTier = "secondary"
	TierTertiary  PathTier = "tertiary"
)

// GeoCoordinate - пара широта/долгота, без валидации по реальной географии
type GeoCoordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HealthProfile - медицинский профиль пропавшего.
// RiskLevel всегда производное поле, никогда не задается независимо.
type HealthProfile struct {
	ChronicDiseases []string  `json:"chronic_diseases"`
	RiskLevel       RiskLevel `json:"risk_level"`
}

// PredictedPath - один прогнозируемый маршрут движения.
// Первая точка всегда совпадает с точкой последнего обнаружения.
type PredictedPath struct {
	Points     []GeoCoordinate `json:"points"`
	Confidence int             `json:"confidence"`
	Label      string          `json:"label"`
	Tier       PathTier        `json:"tier"`
}

// AIProfile - результат аналитического скоринга по инциденту
type AIProfile struct {
	RiskScore             int             `json:"risk_score"`
	Confidence            int             `json:"confidence"`
	ShortLine             string          `json:"short_line"`
	Explanation           string          `json:"explanation,omitempty"`
	PredictedPaths        []PredictedPath `json:"predicted_paths"`
	SensorAnalysis        string          `json:"sensor_analysis,omitempty"`
	SurvivalEstimateHours int             `json:"survival_estimate_hours"`
}

// Companion - спутник пропавшего на момент исчезновения
type Companion struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ConnectionStatus - флаги привязки к внешним реестрам.
// Sehaty истинен только при наличии реального хронического заболевания.
type ConnectionStatus struct {
	Absher     bool `json:"absher"`
	Tawakkalna bool `json:"tawakkalna"`
	Sehaty     bool `json:"sehaty"`
	NCM        bool `json:"ncm"`
}

// Incident - одна синтезированная запись о пропавшем человеке
type Incident struct {
	ID                  string           `json:"id"`
	MissingName         string           `json:"missing_name"`
	Age                 int              `json:"age"`
	Gender              Gender           `json:"gender"`
	Region              string           `json:"region"`
	Governorate         string           `json:"governorate"`
	City                string           `json:"city"`
	LastSeenCoords      GeoCoordinate    `json:"last_seen_coords"`
	CityAnchorCoords    GeoCoordinate    `json:"city_anchor_coords"`
	TerrainType         string           `json:"terrain_type"`
	WeatherContext      string           `json:"weather_context"`
	Status              IncidentStatus   `json:"status"`
	LastSeenHoursAgo    int              `json:"last_seen_hours_ago"`
	ReportDate          time.Time        `json:"report_date"`
	Source              string           `json:"source"`
	Description         string           `json:"description"`
	HealthProfile       HealthProfile    `json:"health_profile"`
	AIProfile           AIProfile        `json:"ai_profile"`
	Companions          []Companion      `json:"companions"`
	Connections         ConnectionStatus `json:"connections"`
	HasVolunteerSupport bool             `json:"has_volunteer_support"`
	IsSecurityRouted    bool             `json:"is_security_routed"`
}
