package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/masterdu/masterdu-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogControllerTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	catalogService := service.NewCatalogService(
		repository.NewServiceRepository(dir),
		repository.NewCourseRepository(dir),
	)
	ctrl := NewCatalogController(catalogService)

	router := gin.New()
	router.GET("/api/services", ctrl.GetServices)
	router.POST("/api/services", ctrl.ReplaceServices)
	router.PUT("/api/services/:id", ctrl.SaveService)
	router.DELETE("/api/services/:id", ctrl.DeleteService)
	router.GET("/api/courses", ctrl.GetCourses)
	router.POST("/api/courses", ctrl.ReplaceCourses)

	return router
}

func TestCatalogController_GetServices_Empty(t *testing.T) {
	router := setupCatalogControllerTest(t)

	req := httptest.NewRequest("GET", "/api/services", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCatalogController_ReplaceServices(t *testing.T) {
	router := setupCatalogControllerTest(t)

	items := []model.ServiceItem{
		{ID: "svc-1", Name: "祈福儀式", Description: "為家宅祈福", Price: model.NumericPrice(6800)},
		{ID: "svc-2", Name: "風水檢測", Description: "上門勘察", Price: model.TextPrice("請查詢")},
	}
	body, _ := json.Marshal(items)
	req := httptest.NewRequest("POST", "/api/services", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Services saved successfully", response["message"])
	assert.Equal(t, float64(2), response["count"])

	req = httptest.NewRequest("GET", "/api/services", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var loaded []model.ServiceItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	require.Len(t, loaded, 2)
	assert.Equal(t, "祈福儀式", loaded[0].Name)
}

func TestCatalogController_ReplaceCourses(t *testing.T) {
	router := setupCatalogControllerTest(t)

	body, _ := json.Marshal([]model.CourseItem{
		{ID: "crs-1", Name: "塔羅初班", Description: "入門課程"},
	})
	req := httptest.NewRequest("POST", "/api/courses", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Courses saved successfully", response["message"])
	assert.Equal(t, float64(1), response["count"])
}

func TestCatalogController_SaveService_UsesPathID(t *testing.T) {
	router := setupCatalogControllerTest(t)

	body, _ := json.Marshal(model.ServiceItem{Name: "祈福儀式", Description: "為家宅祈福"})
	req := httptest.NewRequest("PUT", "/api/services/svc-9", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var saved model.ServiceItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "svc-9", saved.ID)
}

func TestCatalogController_SaveService_MissingFields(t *testing.T) {
	router := setupCatalogControllerTest(t)

	body, _ := json.Marshal(model.ServiceItem{Name: "無介紹"})
	req := httptest.NewRequest("PUT", "/api/services/svc-9", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogController_DeleteService(t *testing.T) {
	router := setupCatalogControllerTest(t)

	body, _ := json.Marshal(model.ServiceItem{Name: "a", Description: "b"})
	req := httptest.NewRequest("PUT", "/api/services/svc-1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("DELETE", "/api/services/svc-1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/api/services", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "[]", w.Body.String())
}
