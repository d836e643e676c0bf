package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/sqlite"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/sqlite/sqlitetest"
	attendanceService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/attendance"
	authService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/employee"
	profileService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/profile"
	reportService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/report"
	wageService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/wage"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestFilesURL   = "http://localhost:8080/api/v1/files"
	handlerTestPassword   = "SecurePass123!"
)

var emailSeq atomic.Int64

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testServer struct {
	t          *testing.T
	router     http.Handler
	jwtService jwt.Service
	filesRoot  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := sqlitetest.NewDB(t)

	profileRepo := sqlite.NewProfileRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)
	attendanceRepo := sqlite.NewAttendanceRepository(db)
	paymentRepo := sqlite.NewWagePaymentRepository(db)
	tokenRepo := sqlite.NewTokenRepository(db)

	filesRoot := t.TempDir()
	fileStorage, err := storage.NewLocalStorage(filesRoot, handlerTestFilesURL)
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)

	router := NewRouter(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		[]string{"http://localhost:3000"},
		jwtSvc,
		NewAuthHandler(jwtSvc, authService.NewAuthService(sqlite.NewTransactor(db), profileRepo, jwtSvc, tokenRepo)),
		NewProfileHandler(profileService.NewProfileService(profileRepo)),
		NewDashboardHandler(dashboardService.NewDashboardService(employeeRepo, attendanceRepo)),
		NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo)),
		NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, profileRepo)),
		NewWageHandler(wageService.NewWageService(paymentRepo, employeeRepo, attendanceRepo, profileRepo, wage.ScopingUnbounded)),
		NewReportHandler(reportService.NewReportService(attendanceRepo, employeeRepo, fileStorage)),
	)

	return &testServer{t: t, router: router, jwtService: jwtSvc, filesRoot: filesRoot}
}

func (s *testServer) do(method, path, token string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

type registeredUser struct {
	ID           string
	Email        string
	AccessToken  string
	RefreshToken string
}

// register creates an account and returns its tokens. An empty site
// registers without one.
func (s *testServer) register(role, site string) registeredUser {
	s.t.Helper()
	email := fmt.Sprintf("user-%d@example.com", emailSeq.Add(1))
	body := map[string]interface{}{
		"name":             "Test " + role,
		"email":            email,
		"password":         handlerTestPassword,
		"confirm_password": handlerTestPassword,
		"role":             role,
	}
	if site != "" {
		body["site_location"] = site
	}
	w := s.do(http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		Profile      struct {
			ID string `json:"id"`
		} `json:"profile"`
	}
	decode(s.t, w, &data)
	return registeredUser{ID: data.Profile.ID, Email: email, AccessToken: data.AccessToken, RefreshToken: data.RefreshToken}
}

func (s *testServer) createEmployee(token, code, site, dailyWage string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/employees", token, map[string]interface{}{
		"employee_code": code,
		"name":          "Worker " + code,
		"job_category":  "Mason",
		"daily_wage":    dailyWage,
		"site_location": site,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var data struct {
		ID string `json:"id"`
	}
	decode(s.t, w, &data)
	return data.ID
}

func (s *testServer) markAttendance(token, employeeID, date, kind string) *httptest.ResponseRecorder {
	s.t.Helper()
	return s.do(http.MethodPost, "/api/v1/attendance", token, map[string]string{
		"employee_id":     employeeID,
		"date":            date,
		"attendance_type": kind,
	})
}
