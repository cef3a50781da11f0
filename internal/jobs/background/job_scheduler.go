package background

import (
	"context"
	"log"
	"time"

	"stockflow/internal/jobs"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler owns the periodic background work.
type JobScheduler struct {
	scheduler  gocron.Scheduler
	stockAlert *jobs.StockAlertService
}

// NewJobScheduler creates the scheduler and registers the low-stock scan
// at the given interval.
func NewJobScheduler(stockAlert *jobs.StockAlertService, scanInterval time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:  scheduler,
		stockAlert: stockAlert,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(scanInterval),
		gocron.NewTask(js.stockAlert.ScheduledLowStockCheck, context.Background()),
		gocron.WithName("low-stock-alerts"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}
