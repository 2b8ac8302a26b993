package models

import (
	"time"

	"gorm.io/gorm"
)

// Score holds one team's result on one hole. At most one row exists per
// (team_id, hole_number); repeated submissions update in place. A nil
// Strokes means the hole has not been scored yet.
type Score struct {
	ID                uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID            uint   `gorm:"not null;uniqueIndex:idx_scores_team_hole" json:"team_id"`
	HoleNumber        int    `gorm:"not null;uniqueIndex:idx_scores_team_hole" json:"hole_number"`
	Strokes           *int   `json:"strokes"`
	DriveUsedPlayerID *uint  `json:"drive_used_player_id"`
	RecordedBy        string `gorm:"size:100" json:"recorded_by"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Team Team `gorm:"foreignKey:TeamID;references:ID" json:"team,omitempty"`
}

func (Score) TableName() string {
	return "scores"
}

// ScoreAudit is an append-only record of a single score change, written
// before the score row itself so no attempted change goes unrecorded.
type ScoreAudit struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID               uint      `gorm:"not null;index" json:"team_id"`
	HoleNumber           int       `json:"hole_number"`
	OldStrokes           *int      `json:"old_strokes"`
	NewStrokes           *int      `json:"new_strokes"`
	OldDriveUsedPlayerID *uint     `json:"old_drive_used_player_id"`
	NewDriveUsedPlayerID *uint     `json:"new_drive_used_player_id"`
	ChangedBy            string    `gorm:"size:100" json:"changed_by"`
	ChangeSource         string    `gorm:"size:20;default:mobile" json:"change_source"`
	Timestamp            time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (ScoreAudit) TableName() string {
	return "score_audits"
}

type RecordScoreRequest struct {
	TeamID            uint   `json:"team_id" binding:"required"`
	HoleNumber        int    `json:"hole_number" binding:"required,min=1"`
	Strokes           *int   `json:"strokes"`
	DriveUsedPlayerID *uint  `json:"drive_used_player_id,omitempty"`
	ChangedBy         string `json:"changed_by,omitempty"`
}

type RecordScoreResponse struct {
	Success    bool `json:"success"`
	GrossScore int  `json:"grossScore"`
}

// EventAuditEntry decorates an audit row with team identity for the
// event-wide audit view.
type EventAuditEntry struct {
	ScoreAudit
	TeamName   string `json:"team_name"`
	TeamNumber int    `json:"team_number"`
}
