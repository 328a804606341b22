package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/sar_coordination_system/internal/config"
	"github.com/shenikar/sar_coordination_system/internal/models"
	"github.com/shenikar/sar_coordination_system/internal/service"
	"github.com/shenikar/sar_coordination_system/internal/service/mocks"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:          []string{"test-api-key"},
		DefaultBatchSize: 8,
		MaxBatchSize:     500,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testBatchIncident(id string) *models.Incident {
	return &models.Incident{
		ID:          id,
		MissingName: "محمد العتيبي",
		Age:         34,
		Gender:      models.GenderMale,
		Region:      "الرياض",
		Governorate: "الرياض",
		City:        "الرياض",
		Status:      models.StatusSearching,
		HealthProfile: models.HealthProfile{
			ChronicDiseases: []string{"none"},
			RiskLevel:       models.RiskLow,
		},
		AIProfile: models.AIProfile{
			RiskScore: 72,
		},
	}
}

func TestGenerateBatch_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := GenerateBatchRequest{Count: 2}
	expectedIncidents := []*models.Incident{
		testBatchIncident("INC-2026-1000"),
		testBatchIncident("INC-2026-1001"),
	}

	mockService.EXPECT().GenerateBatch(gomock.Any(), 2).Return(expectedIncidents, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents/generate", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "INC-2026-1000", resp[0].ID)
	assert.Equal(t, expectedIncidents[0].MissingName, resp[0].MissingName)
}

func TestGenerateBatch_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GenerateBatch(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents/generate", bytes.NewBufferString(`{"count": 5`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestGenerateBatch_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := GenerateBatchRequest{Count: 20000} // Превышен верхний предел

	mockService.EXPECT().GenerateBatch(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents/generate", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Count' failed on the 'lte' tag")
}

func TestGenerateBatch_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := GenerateBatchRequest{Count: 3}
	serviceError := errors.New("failed to generate batch in service")

	mockService.EXPECT().GenerateBatch(gomock.Any(), 3).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents/generate", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedIncidents := []*models.Incident{
		testBatchIncident("INC-2026-1000"),
		testBatchIncident("INC-2026-1001"),
	}

	mockService.EXPECT().ListIncidents(gomock.Any()).Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedIncidents[1].ID, resp[1].ID)
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to list incidents")

	mockService.EXPECT().ListIncidents(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedIncident := testBatchIncident("INC-2026-1005")

	mockService.EXPECT().GetIncident(gomock.Any(), "INC-2026-1005").Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/INC-2026-1005", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedIncident.ID, resp.ID)
	assert.Equal(t, expectedIncident.MissingName, resp.MissingName)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), "INC-2026-9999").Return(nil, service.ErrIncidentNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/INC-2026-9999", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("cache backend unavailable")

	mockService.EXPECT().GetIncident(gomock.Any(), "INC-2026-1000").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/INC-2026-1000", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestRouteToSecurity_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	routedIncident := testBatchIncident("INC-2026-1003")
	routedIncident.IsSecurityRouted = true

	mockService.EXPECT().RouteToSecurity(gomock.Any(), "INC-2026-1003").Return(routedIncident, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-2026-1003/security-route", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.IsSecurityRouted)
}

func TestRouteToSecurity_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().RouteToSecurity(gomock.Any(), "INC-2026-9999").Return(nil, service.ErrIncidentNotFound).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-2026-9999/security-route", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetAssets_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedBundle := &models.AssetBundle{
		Sensors: []models.Sensor{
			{ID: "SN-1002-1", Type: models.SensorCamera},
		},
		Teams: []models.Team{
			{ID: "GT-1002", Type: models.TeamGround},
		},
	}

	mockService.EXPECT().GetAssets(gomock.Any(), "INC-2026-1002").Return(expectedBundle, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/INC-2026-1002/assets", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AssetBundleResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.Sensors, 1)
	assert.Len(t, resp.Teams, 1)
	assert.Equal(t, expectedBundle.Sensors[0].ID, resp.Sensors[0].ID)
}

func TestGetAssets_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetAssets(gomock.Any(), "INC-2026-9999").Return(nil, fmt.Errorf("service: %w", service.ErrIncidentNotFound)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/INC-2026-9999/assets", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedStats := &models.BatchStats{
		Total:            8,
		Critical:         2,
		Searching:        3,
		SecurityRouted:   1,
		AverageRiskScore: 61.5,
		AveragePathKm:    2.4,
	}

	mockService.EXPECT().GetStats(gomock.Any()).Return(expectedStats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedStats.Total, resp.Total)
	assert.Equal(t, expectedStats.AverageRiskScore, resp.AverageRiskScore)
	assert.Equal(t, expectedStats.AveragePathKm, resp.AveragePathKm)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to get stats")

	mockService.EXPECT().GetStats(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
