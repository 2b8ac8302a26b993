package models

import (
	"time"

	"gorm.io/gorm"
)

type Player struct {
	ID             uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID         uint     `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"team_id"`
	EventID        uint     `gorm:"not null;index" json:"event_id"`
	FirstName      string   `gorm:"size:100" json:"first_name"`
	LastName       string   `gorm:"size:100" json:"last_name"`
	Email          string   `gorm:"size:255" json:"email"`
	Phone          string   `gorm:"size:50" json:"phone"`
	HandicapIndex  *float64 `json:"handicap_index"`
	CourseHandicap *int     `json:"course_handicap"`
	TeePreference  string   `gorm:"size:50" json:"tee_preference"`
	Gender         string   `gorm:"size:20" json:"gender"`
	AgeCategory    string   `gorm:"size:20" json:"age_category"`
	PaymentStatus  string   `gorm:"size:20" json:"payment_status"`
	CheckedIn      bool     `gorm:"default:false" json:"checked_in"`
	CheckinTime    string   `gorm:"size:50" json:"checkin_time"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Team Team `gorm:"foreignKey:TeamID;references:ID" json:"team,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type CreatePlayerRequest struct {
	TeamID        uint     `json:"team_id" binding:"required"`
	EventID       uint     `json:"event_id" binding:"required"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	HandicapIndex *float64 `json:"handicap_index,omitempty"`
	TeePreference string   `json:"tee_preference"`
	Gender        string   `json:"gender"`
	AgeCategory   string   `json:"age_category"`
}

type UpdatePlayerRequest struct {
	FirstName      *string  `json:"first_name,omitempty"`
	LastName       *string  `json:"last_name,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	HandicapIndex  *float64 `json:"handicap_index,omitempty"`
	CourseHandicap *int     `json:"course_handicap,omitempty"`
	TeePreference  *string  `json:"tee_preference,omitempty"`
	PaymentStatus  *string  `json:"payment_status,omitempty"`
	CheckedIn      *bool    `json:"checked_in,omitempty"`
	CheckinTime    *string  `json:"checkin_time,omitempty"`
}
