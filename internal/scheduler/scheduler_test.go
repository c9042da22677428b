package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvpss-crew-backend/internal/config"
	"tvpss-crew-backend/internal/jobs"
)

func TestNewScheduler(t *testing.T) {
	t.Run("Registers", func(t *testing.T) {
		s, err := NewScheduler(jobs.NewJobRunner(nil), config.SchedulerConfig{PendingDigest: "0 0 8 * * *"})
		require.NoError(t, err)
		assert.Equal(t, 1, s.Entries())

		s.Start()
		s.Stop()
	})

	t.Run("InvalidSpec", func(t *testing.T) {
		_, err := NewScheduler(jobs.NewJobRunner(nil), config.SchedulerConfig{PendingDigest: "every morning"})
		assert.Error(t, err)
	})

	t.Run("FiveFieldSpecRejected", func(t *testing.T) {
		_, err := NewScheduler(jobs.NewJobRunner(nil), config.SchedulerConfig{PendingDigest: "0 8 * * *"})
		assert.Error(t, err)
	})
}
