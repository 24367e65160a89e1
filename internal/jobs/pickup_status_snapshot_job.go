package jobs

import (
	"context"
	"fmt"
	"sync"

	"wastepickup/internal/core/application/usecases/queries"
	"wastepickup/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// DefaultSnapshotSchedule runs the snapshot every 30 seconds.
const DefaultSnapshotSchedule = "*/30 * * * * *"

// StatusCounter counts pickups per status.
type StatusCounter interface {
	Handle(ctx context.Context, query queries.CountPickupsByStatusQuery) (map[string]int64, error)
}

// StatusGauge receives the latest counts.
type StatusGauge interface {
	SetStatusCounts(counts map[string]int64)
}

// PickupStatusSnapshotJob periodically refreshes the per-status gauge.
type PickupStatusSnapshotJob struct {
	counter  StatusCounter
	gauge    StatusGauge
	schedule string
	cron     *cron.Cron
	logger   *logger.Logger

	mu       sync.Mutex
	started  bool
	inflight sync.WaitGroup
}

// NewPickupStatusSnapshotJob creates the job. An empty schedule falls back
// to DefaultSnapshotSchedule.
func NewPickupStatusSnapshotJob(
	counter StatusCounter,
	gauge StatusGauge,
	schedule string,
	log *logger.Logger,
) *PickupStatusSnapshotJob {
	if schedule == "" {
		schedule = DefaultSnapshotSchedule
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PickupStatusSnapshotJob{
		counter:  counter,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   log.Component("pickup_status_snapshot_job"),
	}
}

// Run takes one snapshot.
func (j *PickupStatusSnapshotJob) Run(ctx context.Context) error {
	counts, err := j.counter.Handle(ctx, queries.NewCountPickupsByStatusQuery())
	if err != nil {
		return fmt.Errorf("count pickups by status: %w", err)
	}
	j.gauge.SetStatusCounts(counts)
	return nil
}

// Start schedules the job and takes a first snapshot immediately.
func (j *PickupStatusSnapshotJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.started {
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, j.tick)
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.started = true
	j.inflight.Add(1)
	go func() {
		defer j.inflight.Done()
		j.tick()
	}()
	j.logger.Info(context.Background(), "pickup status snapshot job started ("+j.schedule+")")
	return nil
}

// Stop stops scheduling and waits for a running snapshot to finish.
func (j *PickupStatusSnapshotJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.started {
		return
	}

	<-j.cron.Stop().Done()
	j.inflight.Wait()
	j.started = false
	j.logger.Info(context.Background(), "pickup status snapshot job stopped")
}

func (j *PickupStatusSnapshotJob) tick() {
	ctx := context.Background()
	if err := j.Run(ctx); err != nil {
		j.logger.Error(ctx, "pickup status snapshot failed", err)
	}
}
