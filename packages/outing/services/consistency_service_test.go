package services

import (
	"testing"

	"golf-outing-api/packages/outing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepGrossScores(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db, 1)
	drifted := seedTeam(t, db, event.ID, "Drifted", nil)
	clean := seedTeam(t, db, event.ID, "Clean", nil)
	unscored := seedTeam(t, db, event.ID, "Unscored", nil)

	scoreSvc := NewScoreService(db)
	for _, team := range []*models.Team{drifted, clean} {
		_, err := scoreSvc.RecordScore(models.RecordScoreRequest{
			TeamID: team.ID, HoleNumber: 1, Strokes: intPtr(4),
		}, "mobile")
		require.NoError(t, err)
	}
	require.NoError(t, db.Model(&models.Team{}).Where("id = ?", drifted.ID).
		Update("gross_score", 50).Error)

	svc := NewConsistencyService(db, scoreSvc)

	count, err := svc.GetTeamCount()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	repaired, err := svc.SweepGrossScores()
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	var stored models.Team
	require.NoError(t, db.First(&stored, drifted.ID).Error)
	require.NotNil(t, stored.GrossScore)
	assert.Equal(t, 4, *stored.GrossScore)

	var unscoredStored models.Team
	require.NoError(t, db.First(&unscoredStored, unscored.ID).Error)
	assert.Nil(t, unscoredStored.GrossScore, "sweep never invents a score")

	// Second pass finds nothing to repair
	repaired, err = svc.SweepGrossScores()
	require.NoError(t, err)
	assert.Zero(t, repaired)
}
