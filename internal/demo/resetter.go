package demo

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/booktodo/internal/entities"
)

// Seeder replaces the whole book table with a catalogue.
type Seeder interface {
	Seed(ctx context.Context, catalogue []entities.Book) (int, error)
}

// Resetter periodically restores the demo catalogue so visitors always see
// the same reading list.
type Resetter struct {
	seeder    Seeder
	catalogue []entities.Book
	schedule  string

	cron    *cron.Cron
	mu      sync.Mutex
	running bool
}

// NewResetter creates a resetter for the given five-field cron schedule.
func NewResetter(seeder Seeder, catalogue []entities.Book, schedule string) *Resetter {
	return &Resetter{
		seeder:    seeder,
		catalogue: catalogue,
		schedule:  schedule,
		cron:      newCron(),
	}
}

func newCron() *cron.Cron {
	return cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)))
}

// ValidateSchedule checks a five-field cron expression.
func ValidateSchedule(schedule string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}
	return nil
}

// Start seeds once immediately and then on every tick of the schedule.
func (r *Resetter) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return nil
	}

	if err := ValidateSchedule(r.schedule); err != nil {
		return err
	}

	// The job is registered only once the first reset succeeded.
	if err := r.Reset(ctx); err != nil {
		return err
	}

	if _, err := r.cron.AddFunc(r.schedule, func() { r.Reset(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule demo reset: %w", err)
	}

	r.cron.Start()
	r.running = true
	log.Printf("Demo reset scheduler started (schedule: %s)", r.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running reset to finish or ctx to expire.
func (r *Resetter) Stop(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}

	stopped := r.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
		log.Printf("Demo reset scheduler stop timed out")
	}
	r.cron = newCron()
	r.running = false
	log.Printf("Demo reset scheduler stopped")
}

// Reset reinstalls the catalogue now.
func (r *Resetter) Reset(ctx context.Context) error {
	created, err := r.seeder.Seed(ctx, r.catalogue)
	if err != nil {
		log.Printf("Demo reset failed: %v", err)
		return fmt.Errorf("demo reset: %w", err)
	}
	log.Printf("Demo catalogue reset (%d books)", created)
	return nil
}
