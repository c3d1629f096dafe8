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

func setupMembershipControllerTest(t *testing.T) (*gin.Engine, service.MembershipService) {
	gin.SetMode(gin.TestMode)

	membershipService := service.NewMembershipService(
		repository.NewMembershipRepository(t.TempDir()),
	)
	ctrl := NewMembershipController(membershipService)

	// Admin routes are registered without the auth middleware here;
	// route protection is covered by the middleware tests.
	router := gin.New()
	router.GET("/api/tiers", ctrl.GetTiers)
	router.POST("/api/memberships/apply", ctrl.Apply)
	router.GET("/api/memberships", ctrl.GetApplications)
	router.POST("/api/memberships", ctrl.ReplaceApplications)
	router.GET("/api/memberships/:id", ctrl.GetApplication)
	router.PUT("/api/memberships/:id", ctrl.SaveApplication)
	router.DELETE("/api/memberships/:id", ctrl.DeleteApplication)

	return router, membershipService
}

func applyBody() []byte {
	body, _ := json.Marshal(ApplyRequest{
		Name:  "陳大文",
		Email: "chan@example.com",
		Phone: "91234567",
		DOB:   "1990-01-01",
		Time:  "子時",
		Tier:  "love",
	})
	return body
}

func TestMembershipController_GetTiers(t *testing.T) {
	router, _ := setupMembershipControllerTest(t)

	req := httptest.NewRequest("GET", "/api/tiers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var tiers []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tiers))
	require.Len(t, tiers, 4)
	assert.Equal(t, "love", tiers[0]["id"])
	assert.Equal(t, float64(6800), tiers[0]["price"])
}

func TestMembershipController_Apply(t *testing.T) {
	router, _ := setupMembershipControllerTest(t)

	req := httptest.NewRequest("POST", "/api/memberships/apply", bytes.NewBuffer(applyBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var app map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
	assert.NotEmpty(t, app["id"])
	assert.Equal(t, "pending", app["status"])
	assert.Equal(t, "love", app["tier"])
}

func TestMembershipController_Apply_UnknownTier(t *testing.T) {
	router, _ := setupMembershipControllerTest(t)

	body, _ := json.Marshal(ApplyRequest{
		Name: "陳大文", Email: "chan@example.com", Phone: "91234567",
		DOB: "1990-01-01", Tier: "platinum",
	})
	req := httptest.NewRequest("POST", "/api/memberships/apply", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "MEMBERSHIP_INVALID_TIER", response["error"])
}

func TestMembershipController_Apply_MissingFields(t *testing.T) {
	router, _ := setupMembershipControllerTest(t)

	req := httptest.NewRequest("POST", "/api/memberships/apply", bytes.NewBufferString(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMembershipController_ReplaceApplications(t *testing.T) {
	router, svc := setupMembershipControllerTest(t)

	body, _ := json.Marshal([]model.MembershipApplication{
		{ID: "app-1", Name: "陳大文", Email: "chan@example.com", Phone: "91234567", Tier: "love", Status: "pending"},
	})
	req := httptest.NewRequest("POST", "/api/memberships", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Memberships saved successfully", response["message"])
	assert.Equal(t, float64(1), response["count"])

	apps, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "app-1", apps[0].ID)
}

func TestMembershipController_GetApplication(t *testing.T) {
	router, svc := setupMembershipControllerTest(t)

	app, err := svc.Apply("陳大文", "chan@example.com", "91234567", "1990-01-01", "", "love")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/memberships/"+app.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var loaded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, app.ID, loaded["id"])
}

func TestMembershipController_GetApplication_NotFound(t *testing.T) {
	router, _ := setupMembershipControllerTest(t)

	req := httptest.NewRequest("GET", "/api/memberships/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "MEMBERSHIP_NOT_FOUND", response["error"])
}

func TestMembershipController_SaveApplication_MarksPaid(t *testing.T) {
	router, svc := setupMembershipControllerTest(t)

	app, err := svc.Apply("陳大文", "chan@example.com", "91234567", "1990-01-01", "", "love")
	require.NoError(t, err)

	app.Status = "paid"
	body, _ := json.Marshal(app)
	req := httptest.NewRequest("PUT", "/api/memberships/"+app.ID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var saved map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "paid", saved["status"])
	assert.NotEmpty(t, saved["paidAt"])
}

func TestMembershipController_DeleteApplication(t *testing.T) {
	router, svc := setupMembershipControllerTest(t)

	app, err := svc.Apply("陳大文", "chan@example.com", "91234567", "1990-01-01", "", "love")
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/memberships/"+app.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/api/memberships/"+app.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
