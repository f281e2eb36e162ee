package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rpifan/rpifan/internal/controller"
	"github.com/rpifan/rpifan/internal/endpoints"
	"github.com/rpifan/rpifan/internal/sensors"
	"github.com/rpifan/rpifan/internal/testingutils"
	"github.com/stretchr/testify/assert"
)

func createService(t *testing.T, sensor sensors.Sensor) (*echo.Echo, *controller.Controller) {
	state, err := controller.NewState(500)
	assert.NoError(t, err)
	c := controller.NewController(state, sensor, testingutils.NewMockFan(), 5*time.Second, 10)
	tree := endpoints.NewDefaultTree("/rpifan", state, sensor)
	return CreateRestService(tree, c, prometheus.NewRegistry()), c
}

func request(rest *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	rest.ServeHTTP(rec, req)
	return rec
}

func TestAlive(t *testing.T) {
	// GIVEN
	rest, _ := createService(t, testingutils.NewMockSensor(425))

	// WHEN
	rec := request(rest, http.MethodGet, "/alive", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadStatus(t *testing.T) {
	// GIVEN
	rest, _ := createService(t, testingutils.NewMockSensor(425))

	// WHEN
	rec := request(rest, http.MethodGet, "/rpifan/status", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Fan: off\nTemperature: 42.5 °C\n", rec.Body.String())
}

func TestWriteThreshold(t *testing.T) {
	// GIVEN
	rest, c := createService(t, testingutils.NewMockSensor(425))

	// WHEN
	rec := request(rest, http.MethodPut, "/rpifan/threshold_temp", "65\n")

	// THEN
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 650, c.State().Snapshot().ThresholdTenths)

	// WHEN
	rec = request(rest, http.MethodGet, "/rpifan/threshold_temp/", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Threshold Temperature: 65 °C\n", rec.Body.String())
}

func TestWriteThreshold_Post(t *testing.T) {
	// GIVEN
	rest, c := createService(t, testingutils.NewMockSensor(425))

	// WHEN
	rec := request(rest, http.MethodPost, "/rpifan/threshold_temp", "20")

	// THEN
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 200, c.State().Snapshot().ThresholdTenths)
}

func TestWriteThreshold_Rejected(t *testing.T) {
	tests := []struct {
		body   string
		status int
	}{
		{body: "abc", status: http.StatusBadRequest},
		{body: "19", status: http.StatusBadRequest},
		{body: "91", status: http.StatusBadRequest},
		{body: "", status: http.StatusBadRequest},
		{body: strings.Repeat("5", 100), status: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		// GIVEN
		rest, c := createService(t, testingutils.NewMockSensor(425))

		// WHEN
		rec := request(rest, http.MethodPut, "/rpifan/threshold_temp", tt.body)

		// THEN
		assert.Equal(t, tt.status, rec.Code, tt.body)
		assert.Equal(t, 500, c.State().Snapshot().ThresholdTenths)

		var result Result
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.NotEmpty(t, result.Message)
	}
}

func TestWriteStatus_ReadOnly(t *testing.T) {
	// GIVEN
	rest, _ := createService(t, testingutils.NewMockSensor(425))

	// WHEN
	rec := request(rest, http.MethodPut, "/rpifan/status", "on")

	// THEN
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestReadUnknownEndpoint(t *testing.T) {
	// GIVEN
	rest, _ := createService(t, testingutils.NewMockSensor(425))

	// WHEN
	rec := request(rest, http.MethodGet, "/rpifan/fan", "")

	// THEN
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEndpoints(t *testing.T) {
	// GIVEN
	rest, _ := createService(t, testingutils.NewMockSensor(425))

	// WHEN
	rec := request(rest, http.MethodGet, "/rpifan", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
	var result []EndpointInfo
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []EndpointInfo{
		{Name: "status", Path: "/rpifan/status", Mode: "-r--r--r--"},
		{Name: "threshold_temp", Path: "/rpifan/threshold_temp", Mode: "-rw-rw-rw-"},
	}, result)
}

func TestGetState(t *testing.T) {
	// GIVEN
	rest, c := createService(t, testingutils.NewMockSensor(612))
	c.Tick()

	// WHEN
	rec := request(rest, http.MethodGet, "/api/state", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
	var result StateResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.FanEnabled)
	assert.Equal(t, 50, result.ThresholdCelsius)
	assert.Equal(t, 61.2, *result.Temperature)
	assert.Equal(t, "5s", result.TickRate)
	assert.Equal(t, uint64(1), result.Statistics.Ticks)
}

func TestGetState_SensorUnavailable(t *testing.T) {
	// GIVEN
	rest, _ := createService(t, testingutils.NewUnavailableSensor(sensors.ErrSensorUnavailable))

	// WHEN
	rec := request(rest, http.MethodGet, "/api/state", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
	var result StateResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Nil(t, result.Temperature)
}

func TestGetHistory(t *testing.T) {
	// GIVEN
	rest, c := createService(t, testingutils.NewMockSensor(500))
	c.Tick()
	c.Tick()

	// WHEN
	rec := request(rest, http.MethodGet, "/api/history", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
	var result HistoryResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []float64{50, 50}, result.Values)
	assert.Equal(t, 50.0, result.Avg)
}
