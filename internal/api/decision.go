package api

import (
	"net/http"

	"github.com/arrayfan/arrayfan/internal/state"
	"github.com/labstack/echo/v4"
)

func registerDecisionEndpoints(rest *echo.Echo) {
	group := rest.Group("/decision")

	group.GET("/", getDecision)
}

// returns the outcome of the most recent decision run
func getDecision(c echo.Context) error {
	decision, ok := state.LatestDecision()
	if !ok {
		return c.JSONPretty(http.StatusServiceUnavailable, &Result{
			Name:    "No decision yet",
			Message: "no decision run has completed",
		}, indentationChar)
	}
	return c.JSONPretty(http.StatusOK, decision, indentationChar)
}
