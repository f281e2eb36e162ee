package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rpifan/rpifan/internal/controller"
	"github.com/rpifan/rpifan/internal/endpoints"
)

const (
	urlParamName    = "name"
	indentationChar = "  "

	EndpointPathAlive   = "/alive/"
	EndpointPathState   = "/api/state/"
	EndpointPathHistory = "/api/history/"
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// CreateRestService serves the endpoint tree below its mount point,
// together with a JSON view of the controller.
// Request metrics are registered with registerer, if it is not nil.
func CreateRestService(tree *endpoints.Tree, c *controller.Controller, registerer prometheus.Registerer) *echo.Echo {
	echoRest := CreateWebserver(registerer)

	echoRest.GET(EndpointPathAlive, isAlive)

	registerEndpointTree(echoRest, tree)
	registerStateEndpoints(echoRest, c)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, name string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No endpoint with name '" + name + "' found",
	}, indentationChar)
}

// return the error message of an error
func returnError(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusInternalServerError, &Result{
		Name:    "Unknown Error",
		Message: e.Error(),
	}, indentationChar)
}

// maps endpoint errors to a response
func returnEndpointError(c echo.Context, name string, e error) error {
	status := http.StatusInternalServerError
	title := "Unknown Error"
	switch {
	case errors.Is(e, endpoints.ErrNotFound):
		return returnNotFound(c, name)
	case errors.Is(e, endpoints.ErrReadOnly):
		status = http.StatusMethodNotAllowed
		title = "Read-only"
	case errors.Is(e, endpoints.ErrWriteTooLarge):
		status = http.StatusRequestEntityTooLarge
		title = "Too large"
	case errors.Is(e, endpoints.ErrMalformed), errors.Is(e, endpoints.ErrOutOfRange):
		status = http.StatusBadRequest
		title = "Invalid value"
	default:
		return returnError(c, e)
	}
	return c.JSONPretty(status, &Result{
		Name:    title,
		Message: e.Error(),
	}, indentationChar)
}
