package v1

import "github.com/shenikar/sar_coordination_system/internal/models"

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                  model.ID,
		MissingName:         model.MissingName,
		Age:                 model.Age,
		Gender:              model.Gender,
		Region:              model.Region,
		Governorate:         model.Governorate,
		City:                model.City,
		LastSeenCoords:      model.LastSeenCoords,
		CityAnchorCoords:    model.CityAnchorCoords,
		TerrainType:         model.TerrainType,
		WeatherContext:      model.WeatherContext,
		Status:              model.Status,
		LastSeenHoursAgo:    model.LastSeenHoursAgo,
		ReportDate:          model.ReportDate,
		Source:              model.Source,
		Description:         model.Description,
		HealthProfile:       model.HealthProfile,
		AIProfile:           model.AIProfile,
		Companions:          model.Companions,
		Connections:         model.Connections,
		HasVolunteerSupport: model.HasVolunteerSupport,
		IsSecurityRouted:    model.IsSecurityRouted,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

// ModelToAssetBundleResponse преобразует набор активов в DTO
func ModelToAssetBundleResponse(bundle *models.AssetBundle) *AssetBundleResponse {
	return &AssetBundleResponse{
		Sensors: bundle.Sensors,
		Teams:   bundle.Teams,
	}
}

// ModelToStatsResponse преобразует сводку по партии в DTO
func ModelToStatsResponse(stats *models.BatchStats) *StatsResponse {
	return &StatsResponse{
		Total:            stats.Total,
		Critical:         stats.Critical,
		Searching:        stats.Searching,
		SecurityRouted:   stats.SecurityRouted,
		AverageRiskScore: stats.AverageRiskScore,
		AveragePathKm:    stats.AveragePathKm,
	}
}
