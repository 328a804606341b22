package models

// SensorType - тип сенсора наблюдения
type SensorType string

const (
	SensorThermal SensorType = "thermal"
	SensorMotion  SensorType = "motion"
	SensorCamera  SensorType = "camera"
	SensorSeismic SensorType = "seismic"
)

// TeamType - тип поисковой группы
type TeamType string

const (
	TeamGround    TeamType = "ground"
	TeamVolunteer TeamType = "volunteer"
	TeamDrone     TeamType = "drone"
)

// Sensor - сенсор, пространственно привязанный к одному инциденту.
// Генерируется заново при каждом запросе, нигде не сохраняется.
type Sensor struct {
	ID           string        `json:"id"`
	Type         SensorType    `json:"type"`
	Status       string        `json:"status"`
	Coords       GeoCoordinate `json:"coords"`
	Battery      int           `json:"battery"`
	ReadingValue string        `json:"reading_value"`
	MetricLabel  string        `json:"metric_label"`
	LocationName string        `json:"location_name"`
}

// Team - поисковая группа, привязанная к одному инциденту
type Team struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Type               TeamType      `json:"type"`
	Status             string        `json:"status"`
	Coords             GeoCoordinate `json:"coords"`
	Battery            int           `json:"battery,omitempty"`
	AssignedIncidentID string        `json:"assigned_incident_id"`
}

// AssetBundle - набор производных активов для одного инцидента
type AssetBundle struct {
	Sensors []Sensor `json:"sensors"`
	Teams   []Team   `json:"teams"`
}
