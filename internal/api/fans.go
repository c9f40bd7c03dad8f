package api

import (
	"net/http"

	"github.com/arrayfan/arrayfan/internal/fans"
	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

func registerFanEndpoints(rest *echo.Echo) {
	group := rest.Group("/fan")

	group.GET("/", getFans)
	group.GET("/:"+urlParamId+"/", getFan)
}

// returns a list of all currently configured fans
func getFans(c echo.Context) error {
	data := reprint.This(fans.FanMap.Items())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getFan(c echo.Context) error {
	id := c.Param(urlParamId)
	fan, exists := fans.FanMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	data := reprint.This(fan)
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}
