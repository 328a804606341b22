package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/sar_coordination_system/internal/models"
)

func testIncident(status models.IncidentStatus, risk models.RiskLevel) *models.Incident {
	return &models.Incident{
		ID:             "INC-2026-1007",
		City:           "الرياض",
		Status:         status,
		LastSeenCoords: models.GeoCoordinate{Lat: 24.7136, Lng: 46.6753},
		HealthProfile: models.HealthProfile{
			ChronicDiseases: []string{"none"},
			RiskLevel:       risk,
		},
	}
}

func TestGenerateAssets_GroundTeamOnlyWhileSearching(t *testing.T) {
	g := newTestGenerator(t)

	for _, status := range []models.IncidentStatus{
		models.StatusNew, models.StatusMonitoring, models.StatusFoundAlive,
		models.StatusFoundDeceased, models.StatusClosed,
	} {
		for i := 0; i < 20; i++ {
			bundle, err := g.GenerateAssetsForIncident(testIncident(status, models.RiskLow))
			require.NoError(t, err)
			for _, team := range bundle.Teams {
				assert.NotEqual(t, models.TeamGround, team.Type,
					"наземная группа при статусе %q", status)
			}
		}
	}

	// При активном поиске наземная группа присутствует всегда
	bundle, err := g.GenerateAssetsForIncident(testIncident(models.StatusSearching, models.RiskLow))
	require.NoError(t, err)
	found := false
	for _, team := range bundle.Teams {
		if team.Type == models.TeamGround {
			found = true
			assert.Equal(t, "GT-1007", team.ID)
			assert.Equal(t, "INC-2026-1007", team.AssignedIncidentID)
		}
	}
	assert.True(t, found)
}

func TestGenerateAssets_SensorCountAndOffsets(t *testing.T) {
	g := newTestGenerator(t)
	inc := testIncident(models.StatusSearching, models.RiskLow)

	for i := 0; i < 50; i++ {
		bundle, err := g.GenerateAssetsForIncident(inc)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(bundle.Sensors), 4)

		for _, sensor := range bundle.Sensors {
			assert.LessOrEqual(t, math.Abs(sensor.Coords.Lat-inc.LastSeenCoords.Lat), sensorOffset)
			assert.LessOrEqual(t, math.Abs(sensor.Coords.Lng-inc.LastSeenCoords.Lng), sensorOffset)
			assert.Equal(t, "active", sensor.Status)
			assert.GreaterOrEqual(t, sensor.Battery, 40)
			assert.LessOrEqual(t, sensor.Battery, 100)
			assert.NotEmpty(t, sensor.MetricLabel)
		}
	}
}

func TestGenerateAssets_SensorsAlertOnCriticalRisk(t *testing.T) {
	g := newTestGenerator(t)
	inc := testIncident(models.StatusSearching, models.RiskCritical)

	// Добиваемся непустого набора сенсоров: количество случайно 0-4
	for i := 0; i < 50; i++ {
		bundle, err := g.GenerateAssetsForIncident(inc)
		require.NoError(t, err)
		for _, sensor := range bundle.Sensors {
			assert.Equal(t, "alert", sensor.Status)
		}
	}
}

func TestGenerateAssets_VolunteerTeamGated(t *testing.T) {
	g := newTestGenerator(t)

	// Без флага волонтерской поддержки группа не появляется никогда
	inc := testIncident(models.StatusNew, models.RiskHigh)
	inc.HasVolunteerSupport = false
	for i := 0; i < 50; i++ {
		bundle, err := g.GenerateAssetsForIncident(inc)
		require.NoError(t, err)
		for _, team := range bundle.Teams {
			assert.NotEqual(t, models.TeamVolunteer, team.Type)
		}
	}
}

func TestGenerateAssets_DoesNotMutateIncident(t *testing.T) {
	g := newTestGenerator(t)
	inc := testIncident(models.StatusSearching, models.RiskMedium)
	before := *inc

	_, err := g.GenerateAssetsForIncident(inc)
	require.NoError(t, err)

	assert.Equal(t, before.ID, inc.ID)
	assert.Equal(t, before.Status, inc.Status)
	assert.Equal(t, before.LastSeenCoords, inc.LastSeenCoords)
	assert.Equal(t, before.HealthProfile.RiskLevel, inc.HealthProfile.RiskLevel)
}

func TestIncidentSerial(t *testing.T) {
	assert.Equal(t, "1000", incidentSerial("INC-2026-1000"))
	assert.Equal(t, "1042", incidentSerial("INC-2024-1042"))
}
