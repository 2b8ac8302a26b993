package services

import (
	"errors"
	"fmt"
	"math"

	"golf-outing-api/packages/outing/models"

	"gorm.io/gorm"
)

// payoutPercentages maps the number of paid places to the share of a
// flight's purse each place receives. Kept as data rather than a formula
// so administrators can retune it without touching the calculation.
var payoutPercentages = map[int][]int{
	1: {100},
	2: {60, 40},
	3: {50, 30, 20},
	4: {40, 30, 20, 10},
	5: {35, 25, 20, 12, 8},
}

const (
	defaultPlacesToPay = 3
	maxPlacesToPay     = 5
)

// PrizeService computes payout schedules. It never writes anything: the
// result is a plan for the organizer, not stored state.
type PrizeService struct {
	db *gorm.DB
}

func NewPrizeService(db *gorm.DB) *PrizeService {
	return &PrizeService{
		db: db,
	}
}

// CalculatePrizes splits a purse evenly across the event's flights and
// spreads each flight's share over the paid places per the percentage
// table. Every payout is floored to a $5 multiple, so the awarded total
// never exceeds the purse; the remainder is reported as leftover.
func (s *PrizeService) CalculatePrizes(eventID uint, req models.CalculatePrizesRequest) (*models.PrizeDistribution, error) {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("event not found")
		}
		return nil, err
	}

	if req.TotalPurse <= 0 {
		return nil, errors.New("total purse must be positive")
	}

	numberOfFlights := event.NumberOfFlights
	if numberOfFlights < 1 {
		numberOfFlights = 1
	}

	var totalTeams int64
	if err := s.db.Model(&models.Team{}).Where("event_id = ?", eventID).
		Count(&totalTeams).Error; err != nil {
		return nil, err
	}

	if totalTeams == 0 {
		return &models.PrizeDistribution{
			Error:        "No teams in event",
			Distribution: []models.FlightPrizes{},
		}, nil
	}

	teamsPerFlight := (int(totalTeams) + numberOfFlights - 1) / numberOfFlights

	places := req.PlacesToPay
	if places <= 0 {
		places = defaultPlacesToPay
	}
	if places > teamsPerFlight {
		places = teamsPerFlight
	}
	if places > maxPlacesToPay {
		places = maxPlacesToPay
	}

	percentages, ok := payoutPercentages[places]
	if !ok {
		percentages = payoutPercentages[defaultPlacesToPay]
	}

	prizePerFlight := req.TotalPurse / float64(numberOfFlights)

	distribution := make([]models.FlightPrizes, 0, numberOfFlights)
	totalAwarded := 0.0

	for flight := 1; flight <= numberOfFlights; flight++ {
		prizes := make([]models.PrizeAward, 0, len(percentages))
		flightTotal := 0.0

		for i, pct := range percentages {
			rawAmount := prizePerFlight * float64(pct) / 100
			// Round down to the nearest $5 for even cash amounts
			amount := math.Floor(rawAmount/5) * 5
			prizes = append(prizes, models.PrizeAward{
				Place:      i + 1,
				Percentage: pct,
				Amount:     amount,
			})
			flightTotal += amount
		}

		distribution = append(distribution, models.FlightPrizes{
			Flight:        flight,
			FlightName:    fmt.Sprintf("Flight %d", flight),
			Prizes:        prizes,
			FlightTotal:   flightTotal,
			TeamsInFlight: teamsPerFlight,
		})
		totalAwarded += flightTotal
	}

	return &models.PrizeDistribution{
		Success:         true,
		TotalPurse:      req.TotalPurse,
		NumberOfFlights: numberOfFlights,
		TotalTeams:      int(totalTeams),
		TeamsPerFlight:  teamsPerFlight,
		PlacesToPay:     places,
		Distribution:    distribution,
		TotalAwarded:    totalAwarded,
		Leftover:        req.TotalPurse - totalAwarded,
	}, nil
}
