// Package jobs provides scheduled background tasks for the pickup service.
//
// Jobs run on github.com/robfig/cron/v3 schedulers with second precision and
// are started and stopped together through JobManager:
//
//	jobManager := jobs.NewJobManager(countHandler, pickupMetrics, "*/30 * * * * *", log)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// PickupStatusSnapshotJob counts stored pickups per status and publishes the
// result to the pickups_by_status gauge. A failed run is logged and the gauge
// keeps its previous values until the next successful run.
package jobs
