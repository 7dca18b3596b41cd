//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/2beens/movimentai/internal/calendar"
	"github.com/2beens/movimentai/internal/dashboard"
	"github.com/2beens/movimentai/internal/execution"
	"github.com/2beens/movimentai/internal/workouts"
	"github.com/2beens/movimentai/internal/workouts/templates"
	"github.com/2beens/movimentai/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trainingDays returns three distinct weekdays, today first.
func trainingDays(now time.Time) []string {
	i := slices.Index(templates.Weekdays, templates.Label(now.Weekday()))
	return []string{
		templates.Weekdays[i],
		templates.Weekdays[(i+2)%7],
		templates.Weekdays[(i+4)%7],
	}
}

func (s *IntegrationTestSuite) TestGenerateAndExecuteWorkout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := signupAndLogin(ctx, t, "bruno@movimentai.test")
	now := time.Now().UTC()
	today := pkg.FormatDate(now)

	status, body := doRequest(ctx, t, http.MethodPost, "/workouts/generate", token, workouts.GenerateRequest{
		WorkoutName:   "Meu Treino",
		Sex:           "male",
		Age:           30,
		ActivityLevel: "moderately-active",
		DaysPerWeek:   3,
		SelectedDays:  trainingDays(now),
		Goal:          "Hipertrofia",
	}, nil)
	require.Equal(t, http.StatusCreated, status, string(body))

	var generated workouts.GenerateResponse
	require.NoError(t, json.Unmarshal(body, &generated))
	require.NotNil(t, generated.Workout)
	workoutID := generated.Workout.ID
	assert.Equal(t, workouts.TypeAI, generated.Workout.Type)
	assert.Contains(t, generated.ScheduledDates, today)

	status, body = doRequest(ctx, t, http.MethodGet, "/workouts", token, nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), workoutID)

	// start today's split and skip through it
	status, body = doRequest(ctx, t, http.MethodPost, fmt.Sprintf("/workouts/%s/execute", workoutID), token, nil, nil)
	require.Equal(t, http.StatusCreated, status, string(body))

	var started execution.SessionResponse
	require.NoError(t, json.Unmarshal(body, &started))
	require.NotNil(t, started.Session)
	sessionID := started.Session.ID
	exercisesCount := len(started.Session.Machine.Exercises)
	require.NotZero(t, exercisesCount)

	// first series starts a rest, finishing another one during it is refused
	status, _ = doRequest(ctx, t, http.MethodPost, "/executions/"+sessionID+"/series", token, nil, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = doRequest(ctx, t, http.MethodPost, "/executions/"+sessionID+"/series", token, nil, nil)
	assert.Equal(t, http.StatusConflict, status)
	status, _ = doRequest(ctx, t, http.MethodPost, "/executions/"+sessionID+"/rest/cancel", token, nil, nil)
	require.Equal(t, http.StatusOK, status)

	var last execution.SessionResponse
	for range exercisesCount {
		status, body = doRequest(ctx, t, http.MethodPost, "/executions/"+sessionID+"/skip", token, nil, nil)
		require.Equal(t, http.StatusOK, status, string(body))
		require.NoError(t, json.Unmarshal(body, &last))
	}
	require.NotNil(t, last.Transition)
	assert.True(t, last.Transition.Completed)
	require.NotNil(t, last.Session.Completion)
	assert.True(t, last.Session.Completion.Recorded)
	assert.NotEmpty(t, last.Session.Completion.Phrase)

	status, _ = doRequest(ctx, t, http.MethodPost, "/executions/"+sessionID+"/skip", token, nil, nil)
	assert.Equal(t, http.StatusConflict, status)

	var completed int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM calendar_entry WHERE workout_id = $1 AND status = $2`,
		workoutID, calendar.StatusCompleted,
	).Scan(&completed))
	assert.Equal(t, 1, completed)

	status, body = doRequest(ctx, t, http.MethodGet, "/calendar?from="+today+"&to="+today, token, nil, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var rangeResp calendar.RangeResponse
	require.NoError(t, json.Unmarshal(body, &rangeResp))
	statuses := make([]string, 0)
	for _, e := range rangeResp.Dates[today] {
		statuses = append(statuses, e.Status)
	}
	assert.Contains(t, statuses, calendar.StatusCompleted)

	status, body = doRequest(ctx, t, http.MethodGet, "/dashboard", token, nil, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var dash dashboard.Dashboard
	require.NoError(t, json.Unmarshal(body, &dash))
	assert.Empty(t, dash.Degraded)
	assert.GreaterOrEqual(t, dash.WeekDone, 1)
}

func (s *IntegrationTestSuite) TestWorkoutsAreScopedToTheirOwner() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	owner := signupAndLogin(ctx, t, "carla@movimentai.test")
	other := signupAndLogin(ctx, t, "davi@movimentai.test")

	status, body := doRequest(ctx, t, http.MethodPost, "/workouts/manual", owner, workouts.ManualRequest{
		Title: "Manual",
		Days: map[string]workouts.ManualDay{
			"Seg": {Exercises: []string{"chest-1", "back-1"}},
			"Ter": {Rest: true},
		},
	}, nil)
	require.Equal(t, http.StatusCreated, status, string(body))

	var created workouts.Workout
	require.NoError(t, json.Unmarshal(body, &created))

	status, _ = doRequest(ctx, t, http.MethodGet, "/workouts/"+created.ID, other, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = doRequest(ctx, t, http.MethodDelete, "/workouts/"+created.ID, other, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(ctx, t, http.MethodGet, "/workouts/"+created.ID, owner, nil, nil)
	assert.Equal(t, http.StatusOK, status)
}
