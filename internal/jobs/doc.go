// Package jobs provides background job processing for the assessment API.
//
// Jobs run on ticker loops inside the server process. Each job follows
// the same lifecycle pattern:
//
//   - Constructor (NewXxxJob) accepts its dependencies and interval
//   - Start launches the loop in a goroutine
//   - Stop signals shutdown and waits for the loop to exit
//
// # Available Jobs
//
//   - SessionSweeper: prunes quiz session state past its retention window
//
// # Usage
//
//	sweeper := jobs.NewSessionSweeper(store, jobs.SessionSweeperConfig{
//	    TTL:      30 * 24 * time.Hour,
//	    Interval: time.Hour,
//	})
//	sweeper.Start()
//	defer sweeper.Stop()
package jobs
