package cron

import (
	"log"

	"golf-outing-api/packages/outing/services"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron        *cron.Cron
	consistency *services.ConsistencyService
}

func NewScheduler(consistency *services.ConsistencyService) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:        c,
		consistency: consistency,
	}
}

// Start schedules the recurring jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Gross-score consistency sweep at minute 0 of every hour
	_, err := s.cron.AddFunc("0 0 * * * *", s.runConsistencySweep)
	if err != nil {
		log.Printf("Error scheduling consistency sweep: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runConsistencySweep() {
	log.Println("Running gross-score consistency sweep...")

	teamCount, err := s.consistency.GetTeamCount()
	if err != nil {
		log.Printf("Error counting teams for sweep: %v", err)
		return
	}

	if teamCount == 0 {
		log.Println("No teams to sweep")
		return
	}

	repaired, err := s.consistency.SweepGrossScores()
	if err != nil {
		log.Printf("Error during consistency sweep: %v", err)
		return
	}

	if repaired > 0 {
		log.Printf("Consistency sweep repaired %d team(s)", repaired)
	} else {
		log.Println("Consistency sweep found no drift")
	}
}

// RunNow manually triggers the consistency sweep (useful for testing).
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering consistency sweep...")
	s.runConsistencySweep()
}
