package background

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/services"
)

// JobScheduler runs the periodic background jobs of the billing server.
// Today that is a single job: re-warming the order-list cache so the
// previous-bills listing stays fast even after the TTL lapses.
type JobScheduler struct {
	scheduler gocron.Scheduler
	orderSvc  services.OrderServiceInterface
}

// NewJobScheduler creates a scheduler with the cache-warm job registered.
func NewJobScheduler(orderSvc services.OrderServiceInterface) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler: scheduler,
		orderSvc:  orderSvc,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(js.refreshOrderListCache),
		gocron.WithName("order-list-cache-refresh"),
	)
	if err != nil {
		return nil, err
	}

	return js, nil
}

func (js *JobScheduler) refreshOrderListCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := js.orderSvc.RefreshOrderListCache(ctx); err != nil {
		log.Printf("WARN: order list cache refresh failed: %v", err)
	}
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop shuts the scheduler down, waiting for running jobs.
func (js *JobScheduler) Stop() error {
	return js.scheduler.Shutdown()
}
