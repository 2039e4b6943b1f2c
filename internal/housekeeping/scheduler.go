package housekeeping

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sabeelnahmed/bendersdummy/internal/auth/sessions"
)

// Scheduler runs the periodic session sweep. The embedded Redis used in dev
// keeps a frozen clock and never expires keys on its own, so the sweep
// enforces the session TTL by issue time.
type Scheduler struct {
	c        *cron.Cron
	sessions *sessions.Store
}

func NewScheduler(store *sessions.Store) *Scheduler {
	return &Scheduler{sessions: store}
}

// Start registers the sweep to run every five minutes.
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc("0 */5 * * * *", s.sweep); err != nil {
		return err
	}

	c.Start()
	s.c = c
	log.Println("housekeeping scheduler started (session sweep every 5m)")
	return nil
}

func (s *Scheduler) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	purged, err := s.sessions.PurgeExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("session sweep failed: %v", err)
		return
	}

	live, err := s.sessions.Count(ctx)
	if err != nil {
		log.Printf("session count failed: %v", err)
		return
	}

	log.Printf("session sweep done: purged=%d live=%d", purged, live)
}
