package services

import (
	"errors"
	"sync"

	"golf-outing-api/packages/outing/models"

	"gorm.io/gorm"
)

// ScoreService is the single write path for hole scores. Every mutation
// writes an audit row first, then upserts the score, then recomputes the
// team's gross score, all inside one transaction held under a per-team
// lock so concurrent submissions for the same team cannot interleave.
type ScoreService struct {
	db        *gorm.DB
	teamLocks sync.Map // team ID -> *sync.Mutex
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{
		db: db,
	}
}

func (s *ScoreService) lockTeam(teamID uint) *sync.Mutex {
	v, _ := s.teamLocks.LoadOrStore(teamID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}

// RecordScore records or updates a team's score on a hole and returns the
// recomputed gross score.
func (s *ScoreService) RecordScore(req models.RecordScoreRequest, changeSource string) (int, error) {
	var team models.Team
	if err := s.db.First(&team, req.TeamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.New("team not found")
		}
		return 0, err
	}

	if req.Strokes != nil && *req.Strokes < 0 {
		return 0, errors.New("strokes cannot be negative")
	}

	changedBy := req.ChangedBy
	if changedBy == "" {
		changedBy = "Team"
	}
	if changeSource == "" {
		changeSource = "manual"
	}

	mu := s.lockTeam(req.TeamID)
	defer mu.Unlock()

	grossScore := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Existing score for this hole, if any
		var existing models.Score
		hasExisting := true
		if err := tx.Where("team_id = ? AND hole_number = ?", req.TeamID, req.HoleNumber).
			First(&existing).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			hasExisting = false
		}

		// Audit row goes in before the score itself, so an attempted
		// change is never lost
		audit := models.ScoreAudit{
			TeamID:               req.TeamID,
			HoleNumber:           req.HoleNumber,
			NewStrokes:           req.Strokes,
			NewDriveUsedPlayerID: req.DriveUsedPlayerID,
			ChangedBy:            changedBy,
			ChangeSource:         changeSource,
		}
		if hasExisting {
			audit.OldStrokes = existing.Strokes
			audit.OldDriveUsedPlayerID = existing.DriveUsedPlayerID
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}

		if hasExisting {
			updates := map[string]interface{}{
				"strokes":              req.Strokes,
				"drive_used_player_id": req.DriveUsedPlayerID,
				"recorded_by":          changedBy,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
		} else {
			score := models.Score{
				TeamID:            req.TeamID,
				HoleNumber:        req.HoleNumber,
				Strokes:           req.Strokes,
				DriveUsedPlayerID: req.DriveUsedPlayerID,
				RecordedBy:        changedBy,
			}
			if err := tx.Create(&score).Error; err != nil {
				return err
			}
		}

		gross, err := sumStrokes(tx, req.TeamID)
		if err != nil {
			return err
		}
		grossScore = gross

		return tx.Model(&models.Team{}).Where("id = ?", req.TeamID).
			Update("gross_score", grossScore).Error
	})
	if err != nil {
		return 0, err
	}

	return grossScore, nil
}

// RecomputeGrossScore re-derives a team's gross score from its stored
// strokes. Used by the consistency sweep; returns the recomputed value and
// whether the stored aggregate had drifted.
func (s *ScoreService) RecomputeGrossScore(teamID uint) (int, bool, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, errors.New("team not found")
		}
		return 0, false, err
	}

	mu := s.lockTeam(teamID)
	defer mu.Unlock()

	// A team with no score rows keeps a nil gross score; writing 0 here
	// would make an unscored team rank as if it had played
	var recorded int64
	if err := s.db.Model(&models.Score{}).Where("team_id = ?", teamID).
		Count(&recorded).Error; err != nil {
		return 0, false, err
	}
	if recorded == 0 {
		return 0, false, nil
	}

	gross, err := sumStrokes(s.db, teamID)
	if err != nil {
		return 0, false, err
	}

	drifted := team.GrossScore == nil || *team.GrossScore != gross
	if drifted {
		if err := s.db.Model(&models.Team{}).Where("id = ?", teamID).
			Update("gross_score", gross).Error; err != nil {
			return 0, false, err
		}
	}

	return gross, drifted, nil
}

func (s *ScoreService) GetTeamScores(teamID uint) ([]models.Score, error) {
	var scores []models.Score

	result := s.db.Where("team_id = ?", teamID).
		Order("hole_number ASC").
		Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}

	return scores, nil
}

// sumStrokes totals a team's recorded strokes, treating unscored holes
// (NULL strokes) as zero.
func sumStrokes(db *gorm.DB, teamID uint) (int, error) {
	var total int64
	err := db.Model(&models.Score{}).
		Where("team_id = ?", teamID).
		Select("COALESCE(SUM(strokes), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}
