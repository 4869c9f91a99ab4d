package jobs

import (
	"fmt"
	"log/slog"

	"shipping/internal/adapters/in/fileexchange"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fileExchangeJob *FileExchangeJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(exchange *fileexchange.Exchange, logger *slog.Logger) *JobManager {
	return &JobManager{
		fileExchangeJob: NewFileExchangeJob(exchange, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fileExchangeJob.Start(); err != nil {
		return fmt.Errorf("failed to start file exchange job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fileExchangeJob.Stop()
}
