package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_API_KEY", "test-api-key")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, db)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req, err := http.NewRequest("POST", path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *gin.Engine, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginAndSession(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/auth/register", map[string]string{
		"username":         "thanhng",
		"password":         "matkhau123",
		"confirm_password": "matkhau123",
		"name":             "Ngọc Thành",
		"email":            "thanh@example.com",
		"phone":            "0912345678",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var registered struct {
		EmployeeID string `json:"employee_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.Equal(t, "NV001", registered.EmployeeID)

	w = postJSON(t, r, "/auth/login", map[string]string{
		"username": "thanhng",
		"password": "matkhau123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var session struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "NV001", session.User.ID)
	assert.Equal(t, models.RoleStaff, session.User.Role)

	// the token carries the session
	header := http.Header{"Authorization": {"Bearer " + session.Token}}
	w = get(t, r, "/me", header)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "NV001", me.ID)
	assert.Equal(t, "thanhng", me.Username)

	// no token, no session
	w = get(t, r, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = get(t, r, "/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	postJSON(t, r, "/auth/register", map[string]string{
		"username":         "thanhng",
		"password":         "matkhau123",
		"confirm_password": "matkhau123",
		"name":             "Ngọc Thành",
		"email":            "thanh@example.com",
		"phone":            "0912345678",
	}, nil)

	w := postJSON(t, r, "/auth/login", map[string]string{
		"username": "thanhng",
		"password": "matkhau124",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireAPIKey(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/admin/users", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(t, r, "/admin/users", http.Header{"X-API-KEY": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(t, r, "/admin/users", http.Header{"X-API-KEY": {"test-api-key"}})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminReportExport(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/admin/reports/export-excel", http.Header{"X-API-KEY": {"test-api-key"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Bao_Cao_Doanh_Thu_")
	assert.NotZero(t, w.Body.Len())
}
