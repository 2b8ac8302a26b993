package services

import (
	"errors"

	"golf-outing-api/packages/outing/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) GetPlayersByEvent(eventID uint) ([]models.Player, error) {
	var players []models.Player

	result := s.db.Where("event_id = ?", eventID).
		Order("last_name ASC, first_name ASC").
		Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (s *PlayerService) GetPlayersByTeam(teamID uint) ([]models.Player, error) {
	var players []models.Player

	result := s.db.Where("team_id = ?", teamID).Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("player not found")
		}
		return nil, result.Error
	}

	return &player, nil
}

func (s *PlayerService) CreatePlayer(req models.CreatePlayerRequest) (*models.Player, error) {
	var team models.Team
	if err := s.db.First(&team, req.TeamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("team not found")
		}
		return nil, err
	}

	player := &models.Player{
		TeamID:        req.TeamID,
		EventID:       req.EventID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		HandicapIndex: req.HandicapIndex,
		TeePreference: req.TeePreference,
		Gender:        req.Gender,
		AgeCategory:   req.AgeCategory,
	}

	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) UpdatePlayer(id uint, req models.UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.GetPlayerByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.HandicapIndex != nil {
		updates["handicap_index"] = *req.HandicapIndex
	}
	if req.CourseHandicap != nil {
		updates["course_handicap"] = *req.CourseHandicap
	}
	if req.TeePreference != nil {
		updates["tee_preference"] = *req.TeePreference
	}
	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
	}
	if req.CheckedIn != nil {
		updates["checked_in"] = *req.CheckedIn
	}
	if req.CheckinTime != nil {
		updates["checkin_time"] = *req.CheckinTime
	}

	if len(updates) > 0 {
		if err := s.db.Model(player).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetPlayerByID(id)
}

func (s *PlayerService) DeletePlayer(id uint) error {
	result := s.db.Delete(&models.Player{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("player not found")
	}

	return nil
}
