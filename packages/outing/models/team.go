package models

import (
	"time"

	"gorm.io/gorm"
)

// Team is the scoring unit of an event. GrossScore is a derived aggregate:
// it always equals the sum of the team's recorded strokes and is only ever
// written by the score service, never edited directly.
type Team struct {
	ID             uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID        uint     `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"event_id"`
	TeamName       string   `gorm:"size:255" json:"team_name"`
	TeamNumber     int      `json:"team_number"`
	TeamHandicap   *float64 `json:"team_handicap"`
	Flight         string   `gorm:"size:50" json:"flight"`
	FlightNumber   int      `gorm:"default:1" json:"flight_number"`
	CartNumber     *int     `json:"cart_number"`
	HoleAssignment *int     `json:"hole_assignment"`
	GrossScore     *int     `json:"gross_score"`
	NetScore       *int     `json:"net_score"`
	AccessCode     *string  `gorm:"size:20;uniqueIndex" json:"access_code,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Event   Event    `gorm:"foreignKey:EventID;references:ID" json:"event,omitempty"`
	Players []Player `gorm:"foreignKey:TeamID" json:"players,omitempty"`
	Scores  []Score  `gorm:"foreignKey:TeamID" json:"scores,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

type CreateTeamRequest struct {
	EventID      uint     `json:"event_id" binding:"required"`
	TeamName     string   `json:"team_name"`
	TeamNumber   int      `json:"team_number"`
	TeamHandicap *float64 `json:"team_handicap,omitempty"`
	CartNumber   *int     `json:"cart_number,omitempty"`
}

type UpdateTeamRequest struct {
	TeamName       *string  `json:"team_name,omitempty"`
	TeamNumber     *int     `json:"team_number,omitempty"`
	TeamHandicap   *float64 `json:"team_handicap,omitempty"`
	CartNumber     *int     `json:"cart_number,omitempty"`
	HoleAssignment *int     `json:"hole_assignment,omitempty"`
	NetScore       *int     `json:"net_score,omitempty"`
}

// LeaderboardEntry is a team row decorated for the live leaderboard view.
type LeaderboardEntry struct {
	Team
	HolesCompleted int `json:"holes_completed"`
}
