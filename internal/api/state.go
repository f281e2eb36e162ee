package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
	"github.com/rpifan/rpifan/internal/controller"
	"github.com/rpifan/rpifan/internal/sensors"
	"github.com/rpifan/rpifan/internal/util"
)

type StateResponse struct {
	FanId            string                `json:"fanId"`
	SensorId         string                `json:"sensorId"`
	FanEnabled       bool                  `json:"fanEnabled"`
	ThresholdCelsius int                   `json:"thresholdCelsius"`
	Temperature      *float64              `json:"temperature"`
	TickRate         string                `json:"tickRate"`
	Statistics       controller.Statistics `json:"statistics"`
}

type HistoryResponse struct {
	Values []float64 `json:"values"`
	Min    float64   `json:"min"`
	Avg    float64   `json:"avg"`
	Max    float64   `json:"max"`
}

func registerStateEndpoints(rest *echo.Echo, c *controller.Controller) {
	rest.GET(EndpointPathState, func(ctx echo.Context) error {
		return getState(ctx, c)
	})
	rest.GET(EndpointPathHistory, func(ctx echo.Context) error {
		return getHistory(ctx, c)
	})
}

func getState(c echo.Context, contr *controller.Controller) error {
	snapshot := contr.State().Snapshot()
	sample := sensors.Read(contr.Sensor())

	response := StateResponse{
		FanId:            contr.Fan().GetId(),
		SensorId:         contr.Sensor().GetId(),
		FanEnabled:       snapshot.FanEnabled,
		ThresholdCelsius: snapshot.ThresholdDegrees(),
		TickRate:         contr.TickRate().String(),
		Statistics:       contr.Statistics(),
	}
	if sample.Available() {
		temperature := sample.Value.Celsius()
		response.Temperature = &temperature
	}

	data := reprint.This(response)
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getHistory(c echo.Context, contr *controller.Controller) error {
	values := contr.History()
	if values == nil {
		values = []float64{}
	}
	data := HistoryResponse{
		Values: values,
		Min:    util.Min(values),
		Avg:    util.Avg(values),
		Max:    util.Max(values),
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}
