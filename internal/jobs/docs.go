// Package jobs provides scheduled background tasks for the shipment
// tracking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. FileExchangeJob - Runs every second to poll the file-exchange
// directory for inbound tracking requests
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(exchange, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The poll job uses the cron expression "* * * * * *", which means it runs
// every second. That bounds the time between a request file being written
// and the core observing it to one poll interval.
//
// # Error Handling
//
// A missing request file is the normal idle case and is not an error;
// everything else (unreadable request, failed response write) is logged
// and retried on the next tick.
package jobs
