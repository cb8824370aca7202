// internal/tests/helpers_test.go
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
)

const (
	testSecret      = "test-secret"
	studentID       = "stu-1"
	studentName     = "Asha Rao"
	parentEmail     = "parent@example.com"
	studentEmail    = "asha@college.edu"
	adminEmail      = "office@college.edu"
	accountPassword = "Str0ng!pass"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			SQLitePath:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			MaxLifetime:  300,
			LogLevel:     "silent",
		},
		Store:    config.StoreConfig{Backend: "sql"},
		Auth:     config.AuthConfig{Provider: "local"},
		JWT:      config.JWTConfig{SecretKey: testSecret, AccessTokenTTL: 1},
		I18n:     config.I18nConfig{DefaultLocale: "en"},
		Logging:  config.LoggingConfig{Level: "error", Build: "test"},
		Frontend: config.FrontendConfig{AllowedOrigins: []string{"*"}},
	}
}

type stubGenerator struct{}

func (stubGenerator) GenerateEmailDraft(context.Context, string) (*services.EmailDraft, error) {
	return &services.EmailDraft{
		Subject: "Leave Application Submitted for " + studentName,
		Body:    "<p>Dear Parent,</p><p>" + studentName + " has applied for Sick Leave from 2025-03-01 to 2025-03-03. It is pending review.</p>",
	}, nil
}

type recordingMailer struct {
	mu         sync.Mutex
	configured bool
	sent       []services.EmailMessage
}

func (m *recordingMailer) Configured() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.configured
}

func (m *recordingMailer) Send(_ context.Context, msg services.EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.configured {
		return services.ErrMailerNotConfigured
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) setConfigured(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configured = v
}

func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta map[string]interface{} `json:"meta"`
}

func doRequest(r *gin.Engine, method, path, token string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(w *httptest.ResponseRecorder) (envelope, error) {
	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	return env, err
}
