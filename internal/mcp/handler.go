package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/movimentai/internal/calendar"
	"github.com/2beens/movimentai/internal/exercises"
	"github.com/2beens/movimentai/internal/workouts"
	"github.com/2beens/movimentai/internal/workouts/templates"
	"github.com/2beens/movimentai/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxCalendarRangeDays keeps get_calendar answers small enough for a model context.
const maxCalendarRangeDays = 366

type workoutsLister interface {
	List(ctx context.Context, userID string) ([]workouts.Workout, error)
}

type calendarRanger interface {
	Range(ctx context.Context, userID, from, to string) ([]calendar.Entry, error)
}

// Handler turns tool inputs into repo and library calls and formats the results.
type Handler struct {
	workouts workoutsLister
	calendar calendarRanger
}

func NewHandler(workoutsRepo workoutsLister, calendarRepo calendarRanger) *Handler {
	return &Handler{
		workouts: workoutsRepo,
		calendar: calendarRepo,
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: %s", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

type ListExercisesInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter by category (e.g. Peito, Costas, Pernas)"`
}

type exerciseListItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	TargetMuscles []string `json:"targetMuscles"`
}

func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, ListExercisesInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ListExercisesInput) (*mcp.CallToolResult, any, error) {
		list := exercises.All()
		if c := strings.TrimSpace(in.Category); c != "" {
			list = exercises.ByCategory(c)
			if len(list) == 0 {
				return errorResult("Unknown category %q, known: %s", c, strings.Join(exercises.Categories(), ", ")), nil, nil
			}
		}

		items := make([]exerciseListItem, 0, len(list))
		for _, e := range list {
			items = append(items, exerciseListItem{
				ID:            e.ID,
				Title:         e.Title,
				Category:      e.Category,
				TargetMuscles: e.TargetMuscles,
			})
		}
		return jsonResult(items), nil, nil
	}
}

type GetExerciseInput struct {
	ID string `json:"id" jsonschema:"Exercise id (e.g. chest-1)"`
}

func (h *Handler) GetExerciseTool() func(context.Context, *mcp.CallToolRequest, GetExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in GetExerciseInput) (*mcp.CallToolResult, any, error) {
		e, ok := exercises.Get(in.ID)
		if !ok {
			return errorResult("Exercise %q not found", in.ID), nil, nil
		}
		return jsonResult(e), nil, nil
	}
}

type PreviewTemplateInput struct {
	DaysPerWeek   int      `json:"days_per_week" jsonschema:"Training days per week (3, 4, 5 or 6)"`
	SelectedDays  []string `json:"selected_days" jsonschema:"Weekday labels: Seg, Ter, Qua, Qui, Sex, Sáb, Dom"`
	Age           int      `json:"age,omitempty" jsonschema:"Age in years"`
	Sex           string   `json:"sex,omitempty" jsonschema:"male, female or prefer-not"`
	ActivityLevel string   `json:"activity_level,omitempty" jsonschema:"sedentary, light, moderate, very-active or athlete"`
}

type templatePreview struct {
	Splits         templates.Splits `json:"splits"`
	ExercisesCount int              `json:"exercisesCount"`
	Difficulty     string           `json:"difficulty,omitempty"`
}

func (h *Handler) PreviewTemplateTool() func(context.Context, *mcp.CallToolRequest, PreviewTemplateInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in PreviewTemplateInput) (*mcp.CallToolResult, any, error) {
		splits, err := templates.Select(in.DaysPerWeek, in.SelectedDays)
		if err != nil {
			return errorResult("Invalid template request: %s", err), nil, nil
		}

		preview := templatePreview{
			Splits:         splits,
			ExercisesCount: splits.ExercisesCount(),
		}
		if in.Age > 0 || in.Sex != "" || in.ActivityLevel != "" {
			preview.Difficulty = templates.Difficulty(in.Age, in.Sex, in.ActivityLevel)
		}
		return jsonResult(preview), nil, nil
	}
}

type ListWorkoutsInput struct {
	UserID string `json:"user_id" jsonschema:"Account id (uuid)"`
}

func (h *Handler) ListWorkoutsTool() func(context.Context, *mcp.CallToolRequest, ListWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListWorkoutsInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.UserID) == "" {
			return errorResult("user_id is required"), nil, nil
		}
		list, err := h.workouts.List(ctx, in.UserID)
		if err != nil {
			return errorResult("Error listing workouts: %s", err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

type GetCalendarInput struct {
	UserID   string `json:"user_id" jsonschema:"Account id (uuid)"`
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"End date (YYYY-MM-DD), inclusive"`
}

func (h *Handler) GetCalendarTool() func(context.Context, *mcp.CallToolRequest, GetCalendarInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetCalendarInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.UserID) == "" {
			return errorResult("user_id is required"), nil, nil
		}
		from, err := pkg.ParseDate(in.FromDate)
		if err != nil {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		to, err := pkg.ParseDate(in.ToDate)
		if err != nil {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}
		if to.Before(from) {
			return errorResult("to_date is before from_date"), nil, nil
		}
		if to.Sub(from).Hours()/24 > maxCalendarRangeDays {
			return errorResult("Range too long: at most %d days", maxCalendarRangeDays), nil, nil
		}

		entries, err := h.calendar.Range(ctx, in.UserID, in.FromDate, in.ToDate)
		if err != nil {
			return errorResult("Error fetching calendar: %s", err), nil, nil
		}
		return jsonResult(calendar.GroupByDate(entries)), nil, nil
	}
}
