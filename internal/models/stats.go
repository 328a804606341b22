package models

// BatchStats - сводка по текущей сессионной партии инцидентов.
// AveragePathKm - средняя геодезическая длина наиболее вероятного
// прогнозируемого маршрута по партии, в километрах.
type BatchStats struct {
	Total            int     `json:"total"`
	Critical         int     `json:"critical"`
	Searching        int     `json:"searching"`
	SecurityRouted   int     `json:"security_routed"`
	AverageRiskScore float64 `json:"average_risk_score"`
	AveragePathKm    float64 `json:"average_path_km"`
}
