package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the exercise library, template preview
// and read-only access to users' workouts and calendars.
// Mounted at /mcp by the backend (admin only) and run over stdio by cmd/movimentai_mcp.
func NewServer(workoutsRepo workoutsLister, calendarRepo calendarRanger) *mcp.Server {
	h := NewHandler(workoutsRepo, calendarRepo)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "movimentai",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the exercise library (id, title, category, target muscles). Optional filter: category (e.g. Peito, Pernas). Use when you need valid exercise ids.",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise",
		Description: "Returns one library exercise with description, steps, common errors and breathing tips. Arg: id (e.g. chest-1).",
	}, h.GetExerciseTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "preview_template",
		Description: "Returns the weekly splits a generated workout would get. Args: days_per_week (3-6), selected_days (labels Seg..Dom, as many as days_per_week); optional age, sex, activity_level to also get the difficulty.",
	}, h.PreviewTemplateTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workouts",
		Description: "Returns the workouts of a user, newest first. Arg: user_id.",
	}, h.ListWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_calendar",
		Description: "Returns the calendar entries (scheduled and completed workouts) of a user in a date range. Args: user_id, from_date, to_date (YYYY-MM-DD).",
	}, h.GetCalendarTool())

	return s
}

// NewHTTPHandler serves the server over the streamable HTTP transport.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
