package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabolarium/backend/internal/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.LoadConfig("no-such-config.yaml")
	require.NoError(t, err)
	cfg.Data.Dir = t.TempDir()
	cfg.Data.BackupDir = t.TempDir()
	// port 1 refuses connections immediately, so email sends fail fast
	cfg.SMTP.Host = "127.0.0.1"
	cfg.SMTP.Port = 1

	repos, err := SetupStore(cfg, zerolog.Nop())
	require.NoError(t, err)

	deps := BuildDependencies(cfg, repos, zerolog.Nop())
	return SetupRouter(cfg, deps)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/students", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/students", adminToken(t, router), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSampleTutorsSeededOnFreshStore(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/tutors/available?language=Korean", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data)
}

func TestRegistrationFlow(t *testing.T) {
	router := newTestRouter(t)

	// field rules violated
	rec := doJSON(t, router, http.MethodPost, "/api/v1/register", "",
		`{"name":"Jo","email":"juan@example.com","age":2,"language":"Klingon","scheduledTime":"10:00 AM - 1:00 PM","sessionInterval":"2 times per week","paymentOption":"GCash","termsAccepted":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// declined terms block the registration outright
	rec = doJSON(t, router, http.MethodPost, "/api/v1/register", "",
		`{"name":"Juan Dela Cruz","email":"juan@example.com","age":21,"language":"Korean","scheduledTime":"10:00 AM - 1:00 PM","sessionInterval":"2 times per week","paymentOption":"GCash","termsAccepted":false}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// valid registration; the confirmation email fails fast but the
	// record sticks
	rec = doJSON(t, router, http.MethodPost, "/api/v1/register", "",
		`{"name":"Juan Dela Cruz","email":"juan@example.com","age":21,"language":"Korean","scheduledTime":"10:00 AM - 1:00 PM","sessionInterval":"2 times per week","paymentOption":"GCash","termsAccepted":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data struct {
			RegistrationID string `json:"registrationId"`
			EmailSent      bool   `json:"emailSent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "REG0001", created.Data.RegistrationID)
	assert.False(t, created.Data.EmailSent)

	token := adminToken(t, router)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/students/REG0001", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// approval assigns one of the seeded tutors
	rec = doJSON(t, router, http.MethodPost, "/api/v1/students/REG0001/approve", token,
		`{"tutorName":"Angeline Janer"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var decision struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decision))
	assert.Equal(t, "Approved", decision.Data.Status)
}

func TestTutorRoleCannotReachAdminEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "",
		`{"username":"maria.santos@vocabolarium.com","password":"tutor123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "TUTOR", resp.Data.Role)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/students", resp.Data.Token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/me/students", resp.Data.Token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
