package handlers

import (
	"context"
	"net/http"
	"time"

	"freeze_dryer/internal/models"
	"freeze_dryer/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockSimulation struct {
	result       models.SimulationResult
	runErr       error
	runDelay     time.Duration
	boiling      []service.TerpeneBoilingPoint
	boilingErr   error
	lastSettings models.FreezeDryerSettings
	lastGroup    string
	lastPressure float64
	runCalls     int
}

func (m *mockSimulation) Run(s models.FreezeDryerSettings) (models.SimulationResult, error) {
	m.runCalls++
	m.lastSettings = s
	if m.runDelay > 0 {
		time.Sleep(m.runDelay)
	}
	return m.result, m.runErr
}
func (m *mockSimulation) Terpenes(group string) []models.Terpene {
	m.lastGroup = group
	return []models.Terpene{{Name: "D-Limonene", Group: models.GroupMajor}}
}
func (m *mockSimulation) BoilingPoints(pressureMbar float64) ([]service.TerpeneBoilingPoint, error) {
	m.lastPressure = pressureMbar
	return m.boiling, m.boilingErr
}

type mockConfigs struct {
	saved     models.SavedConfig
	saveErr   error
	loadErr   error
	listResp  []models.SavedConfig
	listErr   error
	deleteErr error

	lastOwnerID int
	lastName    string
}

func (m *mockConfigs) Save(ctx context.Context, ownerID int, name string, s models.FreezeDryerSettings) (models.SavedConfig, error) {
	m.lastOwnerID, m.lastName = ownerID, name
	return m.saved, m.saveErr
}
func (m *mockConfigs) Load(ctx context.Context, ownerID int, name string) (models.SavedConfig, error) {
	m.lastOwnerID, m.lastName = ownerID, name
	return m.saved, m.loadErr
}
func (m *mockConfigs) List(ctx context.Context, ownerID int) ([]models.SavedConfig, error) {
	m.lastOwnerID = ownerID
	return m.listResp, m.listErr
}
func (m *mockConfigs) Delete(ctx context.Context, ownerID int, name string) error {
	m.lastOwnerID, m.lastName = ownerID, name
	return m.deleteErr
}

type mockStepIO struct {
	importResp []models.DryingStep
	importErr  error
	exportResp []byte
	exportErr  error
	lastDoc    []byte
}

func (m *mockStepIO) Import(doc []byte) ([]models.DryingStep, error) {
	m.lastDoc = doc
	return m.importResp, m.importErr
}
func (m *mockStepIO) Export(steps []models.DryingStep) ([]byte, error) {
	return m.exportResp, m.exportErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
