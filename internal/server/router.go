package server

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the planner endpoints onto an Echo instance.
func RegisterRoutes(e *echo.Echo) {
	handler := NewPlannerHandler()

	e.POST("/snapshot", handler.LoadSnapshot)
	e.GET("/titles", handler.GetTitles)
	e.POST("/schedule", handler.Solve)
	e.POST("/schedule/override", handler.Override)
	e.POST("/curriculum", handler.LoadCurriculum)
	e.GET("/prereqs/:code", handler.GetPrereqs)
}
