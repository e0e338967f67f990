package sessions

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/sidesh-hub/medinfo-india/interfaces"
	"github.com/sidesh-hub/medinfo-india/logging"
)

// Compile-time check to ensure Janitor implements interfaces.Janitor
var _ interfaces.Janitor = (*Janitor)(nil)

// Janitor periodically sweeps idle sessions out of the store.
type Janitor struct {
	store     *Store
	interval  time.Duration
	scheduler *gocron.Scheduler
}

// NewJanitor creates a janitor sweeping at the given interval.
func NewJanitor(store *Store, interval time.Duration) *Janitor {
	return &Janitor{
		store:     store,
		interval:  interval,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start schedules the sweep job and runs the scheduler in the background.
func (j *Janitor) Start() error {
	_, err := j.scheduler.Every(j.interval).Do(func() {
		if removed := j.store.SweepExpired(); removed > 0 {
			logging.Info("Swept idle sessions",
				"removed", removed,
				"remaining", j.store.Count(),
			)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	j.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler.
func (j *Janitor) Stop() {
	j.scheduler.Stop()
}
