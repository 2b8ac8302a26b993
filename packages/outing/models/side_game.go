package models

import (
	"time"

	"gorm.io/gorm"
)

type SideGameResult struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID     uint    `gorm:"not null;index" json:"event_id"`
	GameType    string  `gorm:"size:50" json:"game_type"` // skins, ctp, long_drive, straight_drive, longest_putt
	HoleNumber  int     `json:"hole_number"`
	PlayerID    *uint   `json:"player_id"`
	TeamID      *uint   `json:"team_id"`
	Measurement string  `gorm:"size:100" json:"measurement"`
	PrizeAmount float64 `json:"prize_amount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SideGameResult) TableName() string {
	return "side_game_results"
}

type Mulligan struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID     uint      `gorm:"not null;index" json:"team_id"`
	PlayerID   *uint     `gorm:"index" json:"player_id"`
	HoleNumber int       `json:"hole_number"`
	ShotType   string    `gorm:"size:50" json:"shot_type"`
	UsedAt     time.Time `gorm:"autoCreateTime" json:"used_at"`
}

func (Mulligan) TableName() string {
	return "mulligans"
}

type CreateSideGameResultRequest struct {
	EventID     uint    `json:"event_id" binding:"required"`
	GameType    string  `json:"game_type" binding:"required"`
	HoleNumber  int     `json:"hole_number"`
	PlayerID    *uint   `json:"player_id,omitempty"`
	TeamID      *uint   `json:"team_id,omitempty"`
	Measurement string  `json:"measurement"`
	PrizeAmount float64 `json:"prize_amount"`
}

type CreateMulliganRequest struct {
	TeamID     uint   `json:"team_id" binding:"required"`
	PlayerID   *uint  `json:"player_id,omitempty"`
	HoleNumber int    `json:"hole_number"`
	ShotType   string `json:"shot_type"`
}
