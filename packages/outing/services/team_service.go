package services

import (
	"errors"
	"math/rand"

	"golf-outing-api/packages/outing/models"

	"gorm.io/gorm"
)

const accessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db: db,
	}
}

func (s *TeamService) GetTeamsByEvent(eventID uint) ([]models.Team, error) {
	var teams []models.Team

	result := s.db.Where("event_id = ?", eventID).
		Order("team_number ASC").
		Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

func (s *TeamService) GetTeamByID(id uint) (*models.Team, error) {
	var team models.Team

	result := s.db.First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("team not found")
		}
		return nil, result.Error
	}

	return &team, nil
}

func (s *TeamService) CreateTeam(req models.CreateTeamRequest) (*models.Team, error) {
	var event models.Event
	if err := s.db.First(&event, req.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("event not found")
		}
		return nil, err
	}

	team := &models.Team{
		EventID:      req.EventID,
		TeamName:     req.TeamName,
		TeamNumber:   req.TeamNumber,
		TeamHandicap: req.TeamHandicap,
		CartNumber:   req.CartNumber,
		FlightNumber: 1,
	}

	if err := s.db.Create(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

func (s *TeamService) UpdateTeam(id uint, req models.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.GetTeamByID(id)
	if err != nil {
		return nil, err
	}

	// gross_score and flight assignments are owned by the score and
	// flight services and cannot be edited here
	updates := make(map[string]interface{})
	if req.TeamName != nil {
		updates["team_name"] = *req.TeamName
	}
	if req.TeamNumber != nil {
		updates["team_number"] = *req.TeamNumber
	}
	if req.TeamHandicap != nil {
		updates["team_handicap"] = *req.TeamHandicap
	}
	if req.CartNumber != nil {
		updates["cart_number"] = *req.CartNumber
	}
	if req.HoleAssignment != nil {
		updates["hole_assignment"] = *req.HoleAssignment
	}
	if req.NetScore != nil {
		updates["net_score"] = *req.NetScore
	}

	if len(updates) > 0 {
		if err := s.db.Model(team).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetTeamByID(id)
}

// DeleteTeam removes a team along with its players and scores.
func (s *TeamService) DeleteTeam(id uint) error {
	if _, err := s.GetTeamByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.Player{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&models.Score{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, id).Error
	})
}

// GenerateAccessCode issues the opaque code a team uses for mobile
// self-service scoring. Codes are retried until unique, the same way
// slugs are made unique elsewhere in the stack.
func (s *TeamService) GenerateAccessCode(teamID uint) (string, error) {
	team, err := s.GetTeamByID(teamID)
	if err != nil {
		return "", err
	}

	var code string
	for {
		code = randomAccessCode(6)

		var existing models.Team
		result := s.db.Where("access_code = ?", code).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			break
		}
		if result.Error != nil {
			return "", result.Error
		}
	}

	if err := s.db.Model(team).Update("access_code", code).Error; err != nil {
		return "", err
	}

	return code, nil
}

func (s *TeamService) GetTeamByAccessCode(code string) (*models.Team, error) {
	var team models.Team

	result := s.db.Where("access_code = ?", code).First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid access code")
		}
		return nil, result.Error
	}

	return &team, nil
}

func randomAccessCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = accessCodeAlphabet[rand.Intn(len(accessCodeAlphabet))]
	}
	return string(code)
}
