package services

import (
	"errors"

	"golf-outing-api/packages/outing/models"

	"gorm.io/gorm"
)

type SideGameService struct {
	db *gorm.DB
}

func NewSideGameService(db *gorm.DB) *SideGameService {
	return &SideGameService{
		db: db,
	}
}

func (s *SideGameService) GetResultsByEvent(eventID uint) ([]models.SideGameResult, error) {
	var results []models.SideGameResult

	if err := s.db.Where("event_id = ?", eventID).Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (s *SideGameService) CreateResult(req models.CreateSideGameResultRequest) (*models.SideGameResult, error) {
	var event models.Event
	if err := s.db.First(&event, req.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("event not found")
		}
		return nil, err
	}

	result := &models.SideGameResult{
		EventID:     req.EventID,
		GameType:    req.GameType,
		HoleNumber:  req.HoleNumber,
		PlayerID:    req.PlayerID,
		TeamID:      req.TeamID,
		Measurement: req.Measurement,
		PrizeAmount: req.PrizeAmount,
	}

	if err := s.db.Create(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (s *SideGameService) GetMulligansByPlayer(playerID uint) ([]models.Mulligan, error) {
	var mulligans []models.Mulligan

	if err := s.db.Where("player_id = ?", playerID).Find(&mulligans).Error; err != nil {
		return nil, err
	}

	return mulligans, nil
}

func (s *SideGameService) CreateMulligan(req models.CreateMulliganRequest) (*models.Mulligan, error) {
	var team models.Team
	if err := s.db.First(&team, req.TeamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("team not found")
		}
		return nil, err
	}

	mulligan := &models.Mulligan{
		TeamID:     req.TeamID,
		PlayerID:   req.PlayerID,
		HoleNumber: req.HoleNumber,
		ShotType:   req.ShotType,
	}

	if err := s.db.Create(mulligan).Error; err != nil {
		return nil, err
	}

	return mulligan, nil
}
