package jobs

import (
	"context"
	"fmt"
	"time"

	"tvpss-crew-backend/internal/logger"
	"tvpss-crew-backend/internal/service"
)

const (
	JobPendingDigest = "pending-digest"

	jobTimeout = 2 * time.Minute
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	crewSvc service.CrewService
}

// NewJobRunner creates a new job runner
func NewJobRunner(crewSvc service.CrewService) *JobRunner {
	return &JobRunner{crewSvc: crewSvc}
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			err = fmt.Errorf("job %s panicked: %v", jobName, r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return err
	}
	logger.Info("Job completed", "job", jobName)
	return nil
}

// PendingDigest logs how many crew applications are waiting for review.
func (jr *JobRunner) PendingDigest() {
	_ = jr.runPendingDigest()
}

func (jr *JobRunner) runPendingDigest() error {
	return jr.runWithRecovery(JobPendingDigest, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		count, err := jr.crewSvc.CountPending(ctx)
		if err != nil {
			return err
		}
		logger.Info("Pending crew applications", "count", count)
		return nil
	})
}

// RunOnce runs the named job immediately
func (jr *JobRunner) RunOnce(jobName string) error {
	switch jobName {
	case JobPendingDigest:
		return jr.runPendingDigest()
	default:
		return fmt.Errorf("unknown job %q", jobName)
	}
}
