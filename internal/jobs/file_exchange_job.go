package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"shipping/internal/adapters/in/fileexchange"
)

// FileExchangeJob drives the file-exchange transport: it polls the
// exchange directory every second and is otherwise idle between checks.
type FileExchangeJob struct {
	exchange *fileexchange.Exchange
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFileExchangeJob creates the polling job for the given exchange.
func NewFileExchangeJob(exchange *fileexchange.Exchange, logger *slog.Logger) *FileExchangeJob {
	return &FileExchangeJob{
		exchange: exchange,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "file_exchange_job"),
	}
}

// Start begins polling the exchange directory every second.
func (j *FileExchangeJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.exchange.Poll(ctx); err != nil {
			j.logger.ErrorContext(ctx, "File exchange poll failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "File exchange job started (polling every second)")
	return nil
}

// Stop stops the polling job.
func (j *FileExchangeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "File exchange job stopped")
}
