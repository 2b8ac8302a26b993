package services

import (
	"errors"
	"fmt"
	"sort"

	"golf-outing-api/packages/outing/models"

	"gorm.io/gorm"
)

// FlightService partitions an event's teams into flights of roughly equal
// strength, seeded from current gross score.
type FlightService struct {
	db *gorm.DB
}

func NewFlightService(db *gorm.DB) *FlightService {
	return &FlightService{
		db: db,
	}
}

// AssignFlights ranks an event's teams best-to-worst and deals them into
// the event's configured number of flights with a snake draft: each pass
// through the flight numbers alternates direction, so no flight
// accumulates the top of every round. Re-running with unchanged scores
// reproduces the same assignment.
func (s *FlightService) AssignFlights(eventID uint) (*models.FlightAssignmentResult, error) {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("event not found")
		}
		return nil, err
	}

	numberOfFlights := event.NumberOfFlights
	if numberOfFlights < 1 {
		numberOfFlights = 1
	}

	var teams []models.Team
	if err := s.db.Where("event_id = ?", eventID).Find(&teams).Error; err != nil {
		return nil, err
	}

	if len(teams) == 0 {
		return &models.FlightAssignmentResult{
			Success: true,
			Message: "No teams to assign",
		}, nil
	}

	// Rank best to worst. Teams without a gross score (nothing recorded
	// yet) rank behind every scored team; ties break on name so the
	// ordering is stable across runs. Sorting happens here rather than in
	// SQL because NULL ordering differs between database engines.
	sort.Slice(teams, func(i, j int) bool {
		gi, gj := teams[i].GrossScore, teams[j].GrossScore
		switch {
		case gi == nil && gj == nil:
			return teams[i].TeamName < teams[j].TeamName
		case gi == nil:
			return false
		case gj == nil:
			return true
		case *gi != *gj:
			return *gi < *gj
		default:
			return teams[i].TeamName < teams[j].TeamName
		}
	})

	teamsPerFlight := (len(teams) + numberOfFlights - 1) / numberOfFlights

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range teams {
			round := i / numberOfFlights
			var flightNumber int
			if round%2 == 0 {
				flightNumber = (i % numberOfFlights) + 1
			} else {
				flightNumber = numberOfFlights - (i % numberOfFlights)
			}

			updates := map[string]interface{}{
				"flight_number": flightNumber,
				"flight":        fmt.Sprintf("Flight %d", flightNumber),
			}
			if err := tx.Model(&models.Team{}).Where("id = ?", teams[i].ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.FlightAssignmentResult{
		Success:        true,
		Message:        fmt.Sprintf("Assigned %d teams to %d flights", len(teams), numberOfFlights),
		TeamsAssigned:  len(teams),
		TeamsPerFlight: teamsPerFlight,
	}, nil
}
