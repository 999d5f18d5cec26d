package jobs

import (
	"fmt"
)

// JobManager starts and stops the scheduled jobs of the service.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

func NewJobManager(outboxRelayJob *OutboxRelayJob) *JobManager {
	return &JobManager{outboxRelayJob: outboxRelayJob}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
