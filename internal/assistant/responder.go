package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/2beens/movimentai/internal/telemetry/metrics"
	"github.com/2beens/movimentai/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=responder_mocks_test.go -package=assistant_test

const (
	cacheSize        = 10 * 1024 * 1024
	cacheExpireSecs  = 60 * 60
	maxCachedKeySize = 1024
)

type completer interface {
	Configured() bool
	Complete(ctx context.Context, message string) (string, error)
}

type Reply struct {
	Text   string
	Source string
}

// Responder answers chat messages: cached model reply, then a fresh model
// call, then the local keyword table.
type Responder struct {
	llm     completer
	cache   *freecache.Cache
	metrics *metrics.Manager
}

func NewResponder(llm completer, metricsManager *metrics.Manager) *Responder {
	return &Responder{
		llm:     llm,
		cache:   freecache.NewCache(cacheSize),
		metrics: metricsManager,
	}
}

func (r *Responder) Reply(ctx context.Context, message string) Reply {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.responder.reply")
	defer span.End()

	reply := r.reply(ctx, message)
	span.SetAttributes(attribute.String("source", reply.Source))
	r.metrics.CounterChatResponses.WithLabelValues(reply.Source).Inc()
	return reply
}

func (r *Responder) reply(ctx context.Context, message string) Reply {
	if r.llm == nil || !r.llm.Configured() {
		return Reply{Text: LocalReply(message), Source: SourceLocal}
	}

	key := cacheKey(message)
	if cached, err := r.cache.Get(key); err == nil {
		log.Tracef("assistant: reply for %q found in cache", message)
		return Reply{Text: string(cached), Source: SourceGemini}
	}

	start := time.Now()
	text, err := r.llm.Complete(ctx, message)
	r.metrics.HistogramLLMDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		log.Errorf("assistant: model call failed, using local reply: %s", err)
		return Reply{Text: LocalReply(message), Source: SourceLocal}
	}

	if len(key) <= maxCachedKeySize {
		if err := r.cache.Set(key, []byte(text), cacheExpireSecs); err != nil {
			log.Errorf("assistant: set reply cache: %s", err)
		}
	}
	return Reply{Text: text, Source: SourceGemini}
}

func cacheKey(message string) []byte {
	return []byte(strings.Join(strings.Fields(strings.ToLower(message)), " "))
}
