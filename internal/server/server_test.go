package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/symptomcheck/internal/analyzer"
	"github.com/Skufu/symptomcheck/internal/catalog"
)

type fakeDB struct {
	err error
}

func (f fakeDB) Ping(ctx context.Context) error {
	return f.err
}

func newTestRouter(t *testing.T, deps Dependencies) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Matcher == nil {
		deps.Matcher = analyzer.NewCached(analyzer.New(deps.Catalog), time.Minute)
	}
	return NewRouter(deps)
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter(t, Dependencies{})

	w := do(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := newTestRouter(t, Dependencies{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestRouterReadyz(t *testing.T) {
	tests := []struct {
		name   string
		db     *fakeDB
		status int
		body   string
	}{
		{"disabled", nil, http.StatusOK, `{"status":"ok","db":"disabled"}`},
		{"healthy", &fakeDB{}, http.StatusOK, `{"status":"ok","db":"ok"}`},
		{"unhealthy", &fakeDB{err: errors.New("boom")}, http.StatusServiceUnavailable, `{"status":"degraded","db":"unhealthy: boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := Dependencies{}
			if tt.db != nil {
				deps.DB = *tt.db
			}
			router := newTestRouter(t, deps)

			w := do(router, http.MethodGet, "/readyz", "")
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestAnalyzeCommonCold(t *testing.T) {
	router := newTestRouter(t, Dependencies{})

	w := do(router, http.MethodPost, "/api/symptoms/analyze",
		`{"symptoms":["Fever","cough","headache","fatigue","runny nose","sore throat"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result           *analyzer.MatchResult `json:"result"`
		EmergencyWarning *string               `json:"emergencyWarning"`
		Indicators       []string              `json:"indicators"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, "Common Cold", resp.Result.Name)
	assert.Equal(t, 95, resp.Result.Probability)
	assert.Equal(t, 6, resp.Result.MatchingSymptomCount)
	assert.Equal(t, catalog.Mild, resp.Result.Severity)
	assert.Nil(t, resp.EmergencyWarning)
	assert.Empty(t, resp.Indicators)
}

func TestAnalyzeSurfacesBothOutputs(t *testing.T) {
	router := newTestRouter(t, Dependencies{})

	w := do(router, http.MethodPost, "/api/symptoms/analyze",
		`{"symptoms":["chest pain","shortness of breath","dizziness","headache","fatigue"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	result := resp["result"].(map[string]any)
	assert.Equal(t, "Hypertension (High Blood Pressure)", result["name"])
	assert.Equal(t, "severe", result["severity"])
	assert.Equal(t, analyzer.EmergencyWarning, resp["emergencyWarning"])
	assert.Equal(t, []any{"chest pain", "shortness of breath"}, resp["indicators"])
}

func TestAnalyzeEmptyAndFallback(t *testing.T) {
	router := newTestRouter(t, Dependencies{})

	w := do(router, http.MethodPost, "/api/symptoms/analyze", `{"symptoms":[]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":null,"emergencyWarning":null,"indicators":[]}`, w.Body.String())

	w = do(router, http.MethodPost, "/api/symptoms/analyze", `{"symptoms":["   "]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var blank map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blank))
	require.NotNil(t, blank["result"])
	assert.Equal(t, true, blank["result"].(map[string]any)["fallback"])

	w = do(router, http.MethodPost, "/api/symptoms/analyze", `{"symptoms":["nonexistent symptom xyz"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	result := resp["result"].(map[string]any)
	assert.Equal(t, float64(35), result["probability"])
	assert.Equal(t, true, result["fallback"])
	assert.Equal(t, "mild", result["severity"])
}

func TestAnalyzeValidation(t *testing.T) {
	router := newTestRouter(t, Dependencies{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"symptoms":`},
		{"missing field", `{}`},
		{"wrong type", `{"symptoms":"fever"}`},
		{"term too long", `{"symptoms":["` + strings.Repeat("a", 201) + `"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPost, "/api/symptoms/analyze", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"invalid payload"}`, w.Body.String())
		})
	}
}

func TestAnalyzeBodyTooLarge(t *testing.T) {
	router := newTestRouter(t, Dependencies{MaxBodyBytes: 32})

	w := do(router, http.MethodPost, "/api/symptoms/analyze",
		`{"symptoms":["fever","cough","headache","fatigue"]}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestEmergencyEndpoint(t *testing.T) {
	router := newTestRouter(t, Dependencies{})

	w := do(router, http.MethodPost, "/api/symptoms/emergency", `{"symptoms":["I have chest pain"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, analyzer.EmergencyWarning, resp["warning"])
	assert.Equal(t, []any{"chest pain"}, resp["indicators"])

	w = do(router, http.MethodPost, "/api/symptoms/emergency", `{"symptoms":["tired"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"warning":null,"indicators":[]}`, w.Body.String())
}

func TestRankEndpoint(t *testing.T) {
	router := newTestRouter(t, Dependencies{})

	w := do(router, http.MethodPost, "/api/symptoms/rank", `{"symptoms":["headache","dizziness","fatigue"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Candidates []analyzer.MatchResult `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Candidates)
	assert.Equal(t, "Hypertension (High Blood Pressure)", resp.Candidates[0].Name)
	assert.Equal(t, "Dehydration", resp.Candidates[1].Name)

	w = do(router, http.MethodPost, "/api/symptoms/rank", `{"symptoms":[]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"candidates":[]}`, w.Body.String())
}

func TestConditionsEndpoint(t *testing.T) {
	router := newTestRouter(t, Dependencies{})

	w := do(router, http.MethodGet, "/api/conditions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Conditions []conditionSummary `json:"conditions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Conditions, 8)
	assert.Equal(t, "Common Cold", resp.Conditions[0].Name)
	assert.Equal(t, catalog.Severe, resp.Conditions[4].Severity)
}

func TestLimitBodySize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(limitBodySize(10))
	router.POST("/echo", func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	t.Run("within limit", func(t *testing.T) {
		w := do(router, http.MethodPost, "/echo", "12345")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("over limit", func(t *testing.T) {
		w := do(router, http.MethodPost, "/echo", "01234567890")
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
