package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

const (
	SessionSweepSpec   = "@every 8h"
	ExecutionPurgeSpec = "@hourly"

	jobTimeout = 5 * time.Minute
)

type sessionSweeper interface {
	ScanAndClean(ctx context.Context)
}

type executionPurger interface {
	PurgeExpired(ctx context.Context)
}

// Job is one periodic task; Run gets a context bounded by the job timeout.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context)
}

type Scheduler struct {
	cron *cron.Cron
	jobs []Job
}

func NewScheduler(jobs ...Job) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
		jobs: jobs,
	}
	for _, job := range jobs {
		if err := s.cron.AddFunc(job.Spec, wrap(job)); err != nil {
			return nil, fmt.Errorf("add job %s [%s]: %w", job.Name, job.Spec, err)
		}
	}
	return s, nil
}

// DefaultJobs are the maintenance tasks the backend runs.
func DefaultJobs(sessions sessionSweeper, executions executionPurger) []Job {
	return []Job{
		{Name: "auth-session-sweep", Spec: SessionSweepSpec, Run: sessions.ScanAndClean},
		{Name: "execution-index-purge", Spec: ExecutionPurgeSpec, Run: executions.PurgeExpired},
	}
}

func wrap(job Job) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				log.Errorf("!!! job %s panicked: %v", job.Name, r)
			}
		}()

		start := time.Now()
		log.Debugf("=> job %s start", job.Name)
		job.Run(ctx)
		log.Debugf("=> job %s done in %s", job.Name, time.Since(start))
	}
}

func (s *Scheduler) Start() {
	log.Infof("starting scheduler with %d jobs", len(s.jobs))
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Debugln("scheduler stopped")
}

// Len returns the number of scheduled entries.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}
