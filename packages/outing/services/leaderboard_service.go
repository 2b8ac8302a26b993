package services

import (
	"sort"

	"golf-outing-api/packages/outing/models"

	"gorm.io/gorm"
)

// LeaderboardService serves the read side of live scoring: standings per
// flight and the audit history behind them. It never writes.
type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{
		db: db,
	}
}

// GetLeaderboard returns an event's teams ordered by flight, score, and
// name, each decorated with its roster and the number of holes scored so
// viewers can tell a low score from an unfinished round.
func (s *LeaderboardService) GetLeaderboard(eventID uint) ([]models.LeaderboardEntry, error) {
	var teams []models.Team
	if err := s.db.Where("event_id = ?", eventID).Find(&teams).Error; err != nil {
		return nil, err
	}

	sort.Slice(teams, func(i, j int) bool {
		if teams[i].FlightNumber != teams[j].FlightNumber {
			return teams[i].FlightNumber < teams[j].FlightNumber
		}
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

	entries := make([]models.LeaderboardEntry, 0, len(teams))
	for _, team := range teams {
		var players []models.Player
		if err := s.db.Where("team_id = ?", team.ID).Find(&players).Error; err != nil {
			return nil, err
		}
		team.Players = players

		var holesCompleted int64
		if err := s.db.Model(&models.Score{}).
			Where("team_id = ? AND strokes IS NOT NULL", team.ID).
			Count(&holesCompleted).Error; err != nil {
			return nil, err
		}

		entries = append(entries, models.LeaderboardEntry{
			Team:           team,
			HolesCompleted: int(holesCompleted),
		})
	}

	return entries, nil
}

// GetTeamAudit returns a team's score change history, newest first.
func (s *LeaderboardService) GetTeamAudit(teamID uint) ([]models.ScoreAudit, error) {
	var audits []models.ScoreAudit

	result := s.db.Where("team_id = ?", teamID).
		Order("timestamp DESC").
		Find(&audits)
	if result.Error != nil {
		return nil, result.Error
	}

	return audits, nil
}

// GetEventAudit returns the change history across all of an event's
// teams, newest first, annotated with team name and number.
func (s *LeaderboardService) GetEventAudit(eventID uint) ([]models.EventAuditEntry, error) {
	var teams []models.Team
	if err := s.db.Where("event_id = ?", eventID).Find(&teams).Error; err != nil {
		return nil, err
	}

	teamIDs := make([]uint, 0, len(teams))
	teamByID := make(map[uint]models.Team, len(teams))
	for _, team := range teams {
		teamIDs = append(teamIDs, team.ID)
		teamByID[team.ID] = team
	}

	entries := []models.EventAuditEntry{}
	if len(teamIDs) == 0 {
		return entries, nil
	}

	var audits []models.ScoreAudit
	if err := s.db.Where("team_id IN ?", teamIDs).
		Order("timestamp DESC").
		Find(&audits).Error; err != nil {
		return nil, err
	}

	for _, audit := range audits {
		entry := models.EventAuditEntry{ScoreAudit: audit}
		if team, ok := teamByID[audit.TeamID]; ok {
			entry.TeamName = team.TeamName
			entry.TeamNumber = team.TeamNumber
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
