// Package jobs provides scheduled background tasks for the workshop system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the repair shop back office.
//
// # Available Jobs
//
// 1. QuoteExpirationJob - Runs every ten minutes to surface work orders
// awaiting approval whose quotes have expired
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiration sweep is read-only: expiry itself is enforced by the Quote
// entity at approval time, so a missed run never corrupts state. Sweep
// failures are logged and retried on the next tick.
package jobs
