package models

// Payload shapes for the flight-assignment and prize-distribution
// operations. Field names follow the wire format the companion frontend
// already consumes.

type FlightAssignmentResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	TeamsAssigned  int    `json:"teamsAssigned"`
	TeamsPerFlight int    `json:"teamsPerFlight"`
}

type CalculatePrizesRequest struct {
	TotalPurse  float64 `json:"totalPurse" binding:"required,gt=0"`
	PlacesToPay int     `json:"placesToPay"`
}

type PrizeAward struct {
	Place      int     `json:"place"`
	Percentage int     `json:"percentage"`
	Amount     float64 `json:"amount"`
}

type FlightPrizes struct {
	Flight        int          `json:"flight"`
	FlightName    string       `json:"flightName"`
	Prizes        []PrizeAward `json:"prizes"`
	FlightTotal   float64      `json:"flightTotal"`
	TeamsInFlight int          `json:"teamsInFlight"`
}

// PrizeDistribution is the full payout plan. When the event has no teams,
// Error is set and Distribution is empty so callers can branch without
// treating the condition as a failure.
type PrizeDistribution struct {
	Success         bool           `json:"success,omitempty"`
	Error           string         `json:"error,omitempty"`
	TotalPurse      float64        `json:"totalPurse,omitempty"`
	NumberOfFlights int            `json:"numberOfFlights,omitempty"`
	TotalTeams      int            `json:"totalTeams,omitempty"`
	TeamsPerFlight  int            `json:"teamsPerFlight,omitempty"`
	PlacesToPay     int            `json:"placesToPay,omitempty"`
	Distribution    []FlightPrizes `json:"distribution"`
	TotalAwarded    float64        `json:"totalAwarded"`
	Leftover        float64        `json:"leftover"`
}
