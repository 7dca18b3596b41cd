package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/movimentai/internal/calendar"
	"github.com/2beens/movimentai/internal/telemetry/metrics"
	"github.com/2beens/movimentai/internal/telemetry/tracing"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

const completionRetryDelay = 250 * time.Millisecond

type completionWriter interface {
	RecordCompletion(ctx context.Context, userID, workoutID, date string) (*calendar.Entry, error)
}

// Recorder persists finished workouts as completed calendar entries. A failed
// write is retried once, then the error is returned to the caller.
type Recorder struct {
	writer  completionWriter
	metrics *metrics.Manager
	backOff func() backoff.BackOff
}

func NewRecorder(writer completionWriter, metricsManager *metrics.Manager) *Recorder {
	return &Recorder{
		writer:  writer,
		metrics: metricsManager,
		backOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewConstantBackOff(completionRetryDelay), 1)
		},
	}
}

func (r *Recorder) Record(ctx context.Context, userID, workoutID, date string) (_ *calendar.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "execution.recorder.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	attempt := 0
	entry, err := backoff.RetryWithData(func() (*calendar.Entry, error) {
		attempt++
		entry, err := r.writer.RecordCompletion(ctx, userID, workoutID, date)
		if errors.Is(err, calendar.ErrWorkoutNotFound) {
			// the workout was deleted meanwhile, retrying won't help
			return nil, backoff.Permanent(err)
		}
		if err != nil {
			log.Warnf("record completion of %s for %s, attempt %d: %s", workoutID, userID, attempt, err)
		}
		return entry, err
	}, backoff.WithContext(r.backOff(), ctx))
	if err != nil {
		r.metrics.CounterCompletionWriteFails.Inc()
		return nil, fmt.Errorf("record completion after %d attempts: %w", attempt, err)
	}

	r.metrics.CounterWorkoutsCompleted.Inc()
	return entry, nil
}
