package services

import (
	"context"
	"log"
	"sync"
	"time"
)

// ExportJanitor periodically deletes summary exports older than the
// configured TTL. Download ids pointing at a swept file answer 404.
type ExportJanitor interface {
	Start(ctx context.Context)
	Stop()
	SweepNow() int
}

type exportJanitor struct {
	storage  StorageService
	maxAge   time.Duration
	interval time.Duration
	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

const defaultSweepInterval = 10 * time.Minute

func NewExportJanitor(storage StorageService, maxAge, interval time.Duration) ExportJanitor {
	// time.NewTicker panics on a non-positive interval.
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &exportJanitor{
		storage:  storage,
		maxAge:   maxAge,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start implements ExportJanitor.
func (j *exportJanitor) Start(ctx context.Context) {
	log.Printf("🧹 Starting export janitor (ttl %s, every %s)\n", j.maxAge, j.interval)

	j.wg.Add(1)
	go j.run(ctx)
}

// Stop implements ExportJanitor.
func (j *exportJanitor) Stop() {
	j.stopOnce.Do(func() {
		log.Println("🛑 Stopping export janitor...")
		close(j.stopChan)
		j.wg.Wait()
		log.Println("✅ Export janitor stopped")
	})
}

// SweepNow implements ExportJanitor.
func (j *exportJanitor) SweepNow() int {
	removed, err := j.storage.SweepExports(j.maxAge)
	if err != nil {
		log.Printf("⚠️  Failed to sweep exports: %v\n", err)
		return 0
	}

	if removed > 0 {
		log.Printf("🧹 Removed %d expired exports\n", removed)
	}
	return removed
}

func (j *exportJanitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.SweepNow()
		}
	}
}
