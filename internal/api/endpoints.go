package api

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rpifan/rpifan/internal/endpoints"
)

type EndpointInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Mode string `json:"mode"`
}

func registerEndpointTree(rest *echo.Echo, tree *endpoints.Tree) {
	group := rest.Group(tree.MountPoint())

	group.GET("/", func(c echo.Context) error {
		return listEndpoints(c, tree)
	})
	group.GET("/:"+urlParamName+"/", func(c echo.Context) error {
		return readEndpoint(c, tree)
	})
	group.PUT("/:"+urlParamName+"/", func(c echo.Context) error {
		return writeEndpoint(c, tree)
	})
	group.POST("/:"+urlParamName+"/", func(c echo.Context) error {
		return writeEndpoint(c, tree)
	})
}

func listEndpoints(c echo.Context, tree *endpoints.Tree) error {
	var data []EndpointInfo
	for _, name := range tree.Names() {
		endpoint, err := tree.Get(name)
		if err != nil {
			continue
		}
		data = append(data, EndpointInfo{
			Name: name,
			Path: tree.Path(name),
			Mode: endpoint.Mode().String(),
		})
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func readEndpoint(c echo.Context, tree *endpoints.Tree) error {
	name := c.Param(urlParamName)
	content, err := tree.Read(name)
	if err != nil {
		return returnEndpointError(c, name, err)
	}
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, content)
}

func writeEndpoint(c echo.Context, tree *endpoints.Tree) error {
	name := c.Param(urlParamName)

	// one byte more than accepted, to detect oversized payloads
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, endpoints.WriteBufferSize+1))
	if err != nil {
		return returnError(c, err)
	}

	err = tree.Write(name, payload)
	if err != nil {
		return returnEndpointError(c, name, err)
	}
	return c.NoContent(http.StatusNoContent)
}
