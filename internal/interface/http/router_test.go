package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/travel-wellness/internal/domain/auth"
	"github.com/yanqian/travel-wellness/internal/domain/exposure"
	"github.com/yanqian/travel-wellness/internal/domain/hydration"
	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
	"github.com/yanqian/travel-wellness/internal/domain/timezone"
	"github.com/yanqian/travel-wellness/internal/infra/config"
	"github.com/yanqian/travel-wellness/internal/infra/plancache"
)

func TestRouter_JetLagPlan(t *testing.T) {
	server := newRouterUnderTest(t, "")

	recorder := performRequest(server, http.MethodPost, "/api/v1/jetlag/plan",
		`{"originZone":"America/New_York","destinationZone":"Asia/Tokyo","referenceTime":"2024-07-01T12:00:00Z","bedtime":"23:00","wakeTime":"07:00"}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotEmpty(t, recorder.Header().Get(requestIDHeader))

	var plan jetlag.Plan
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &plan))
	require.Equal(t, 13, plan.DifferenceHours)
	require.Equal(t, jetlag.DirectionEastward, plan.Direction)
	require.Equal(t, jetlag.SeveritySevere, plan.Severity)
	require.Equal(t, 9, plan.DaysToAdjust)
	require.Len(t, plan.DailySchedule, 9)
	require.Len(t, plan.LightSchedule, 9)
	require.Equal(t, -13.0, plan.DailySchedule[8].CumulativeAdjustmentHours)
}

func TestRouter_JetLagUnknownZone(t *testing.T) {
	server := newRouterUnderTest(t, "")

	recorder := performRequest(server, http.MethodPost, "/api/v1/jetlag/plan",
		`{"originZone":"Mars/Olympus_Mons","destinationZone":"Asia/Tokyo"}`, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "unknown_timezone", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "Mars/Olympus_Mons")
}

func TestRouter_JetLagInvalidJSON(t *testing.T) {
	server := newRouterUnderTest(t, "")

	recorder := performRequest(server, http.MethodPost, "/api/v1/jetlag/plan", `{"originZone":123}`, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_JetLagRejectsBadClockTime(t *testing.T) {
	server := newRouterUnderTest(t, "")

	recorder := performRequest(server, http.MethodPost, "/api/v1/jetlag/plan",
		`{"originZone":"UTC","destinationZone":"Asia/Tokyo","bedtime":"25:00"}`, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_TimeZoneDifference(t *testing.T) {
	server := newRouterUnderTest(t, "")

	recorder := performRequest(server, http.MethodGet,
		"/api/v1/timezones/difference?origin=America/New_York&destination=Asia/Kolkata&at=2024-07-01T12:00:00Z", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var diff timezone.Difference
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &diff))
	require.Equal(t, -240, diff.OriginOffsetMinutes)
	require.Equal(t, 330, diff.DestinationOffsetMinutes)
	require.Equal(t, 10, diff.Hours)
}

func TestRouter_HeatIndex(t *testing.T) {
	server := newRouterUnderTest(t, "")

	recorder := performRequest(server, http.MethodPost, "/api/v1/exposure/heat-index", `{"temperatureC":26.7,"humidityPct":40}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var data exposure.HeatIndexData
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &data))
	require.Equal(t, 26.7, data.HeatIndexC)
	require.Equal(t, exposure.DangerSafe, data.DangerLevel)
}

func TestRouter_HeatIndexRejectsOutOfRange(t *testing.T) {
	server := newRouterUnderTest(t, "")

	recorder := performRequest(server, http.MethodPost, "/api/v1/exposure/heat-index", `{"temperatureC":30,"humidityPct":140}`, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_input", errBody["error"]["code"])
}

func TestRouter_ActivityRisk(t *testing.T) {
	server := newRouterUnderTest(t, "")

	body := `{"reading":{"temperatureC":33,"humidityPct":50,"windSpeedMs":2,"visibilityM":10000,"cloudCoverPct":20,"uvIndex":2,"aqi":180},"heatWarning":"high"}`
	recorder := performRequest(server, http.MethodPost, "/api/v1/exposure/activity", body, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var assessment exposure.RiskAssessment
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &assessment))
	require.Equal(t, 9, assessment.TotalScore)
	require.Equal(t, exposure.RiskHigh, assessment.CombinedRisk)
	require.Equal(t, exposure.SafetyAvoid, assessment.OutdoorSafety)
}

func TestRouter_Hydration(t *testing.T) {
	server := newRouterUnderTest(t, "")

	body := `{"bodyWeightKg":70,"temperatureC":20,"humidityPct":50,"altitudeM":0,"activityLevel":"sedentary"}`
	recorder := performRequest(server, http.MethodPost, "/api/v1/hydration", body, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var rec hydration.Recommendation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rec))
	require.Equal(t, 2.45, rec.DailyIntakeLiters)
	require.Equal(t, hydration.RiskLow, rec.DehydrationRisk)
}

func TestRouter_HealthSkipsAuth(t *testing.T) {
	server := newRouterUnderTest(t, "test-secret")

	recorder := performRequest(server, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestRouter_RequiresBearerWhenSecretSet(t *testing.T) {
	server := newRouterUnderTest(t, "test-secret")
	body := `{"temperatureC":30,"humidityPct":50}`

	recorder := performRequest(server, http.MethodPost, "/api/v1/exposure/heat-index", body, nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.Equal(t, "unauthorized", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])

	recorder = performRequest(server, http.MethodPost, "/api/v1/exposure/heat-index", body, map[string]string{"Authorization": "Bearer nope"})
	require.Equal(t, http.StatusForbidden, recorder.Code)
	require.Equal(t, "invalid_token", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])

	token, err := auth.NewService(auth.Config{Secret: "test-secret"}, newTestLogger()).IssueToken("traveler", time.Hour)
	require.NoError(t, err)
	recorder = performRequest(server, http.MethodPost, "/api/v1/exposure/heat-index", body, map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_PreservesRequestID(t *testing.T) {
	server := newRouterUnderTest(t, "")

	recorder := performRequest(server, http.MethodGet, "/healthz", "", map[string]string{requestIDHeader: "trace-123"})
	require.Equal(t, "trace-123", recorder.Header().Get(requestIDHeader))
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, "")

	recorder := performRequest(server, http.MethodOptions, "/api/v1/hydration", "", map[string]string{"Origin": "https://app.example.com"})
	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func performRequest(server *http.Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, secret string) *http.Server {
	t.Helper()
	logger := newTestLogger()
	jetLagSvc := jetlag.NewService(jetlag.Config{Policy: jetlag.DefaultPolicy(), CacheTTL: time.Minute}, plancache.NewMemoryStore(time.Minute), logger)
	exposureSvc := exposure.NewService(exposure.Config{Policy: exposure.DefaultPolicy()}, logger)
	hydrationSvc := hydration.NewService(hydration.Config{Policy: hydration.DefaultPolicy()}, logger)
	handler := NewHandler(jetLagSvc, exposureSvc, hydrationSvc, logger)
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			AllowedOrigins: []string{"*"},
		},
	}
	return NewRouter(cfg, handler, auth.NewService(auth.Config{Secret: secret}, logger), logger)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
