package services

import (
	"errors"

	"golf-outing-api/packages/outing/models"

	"gorm.io/gorm"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		db: db,
	}
}

func (s *EventService) GetAllEvents() ([]models.Event, error) {
	var events []models.Event

	result := s.db.Order("created_at DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (s *EventService) GetEventByID(id uint) (*models.Event, error) {
	var event models.Event

	result := s.db.First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("event not found")
		}
		return nil, result.Error
	}

	return &event, nil
}

func (s *EventService) CreateEvent(event *models.Event) error {
	if event.Name == "" {
		return errors.New("event name is required")
	}

	return s.db.Create(event).Error
}

// UpdateEvent replaces the stored configuration with the submitted one.
// The event form submits the full document, so this is a whole-row save
// rather than a field-by-field patch.
func (s *EventService) UpdateEvent(id uint, event *models.Event) (*models.Event, error) {
	existing, err := s.GetEventByID(id)
	if err != nil {
		return nil, err
	}

	event.ID = existing.ID
	event.CreatedAt = existing.CreatedAt

	if err := s.db.Save(event).Error; err != nil {
		return nil, err
	}

	return s.GetEventByID(id)
}

// DeleteEvent removes an event and everything hanging off it: teams,
// players, and the scores of those teams.
func (s *EventService) DeleteEvent(id uint) error {
	if _, err := s.GetEventByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var teamIDs []uint
		if err := tx.Model(&models.Team{}).Where("event_id = ?", id).
			Pluck("id", &teamIDs).Error; err != nil {
			return err
		}

		if len(teamIDs) > 0 {
			if err := tx.Where("team_id IN ?", teamIDs).Delete(&models.Score{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Player{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Team{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Event{}, id).Error
	})
}
