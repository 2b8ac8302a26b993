package services

import (
	"testing"

	"golf-outing-api/packages/outing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db)
	event := seedEvent(t, db, 1)

	t.Run("creates under an event", func(t *testing.T) {
		team, err := svc.CreateTeam(models.CreateTeamRequest{
			EventID:    event.ID,
			TeamName:   "Eagles",
			TeamNumber: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, "Eagles", team.TeamName)
		assert.Equal(t, 1, team.FlightNumber, "new teams start in flight 1")
		assert.Nil(t, team.GrossScore)
	})

	t.Run("rejects unknown event", func(t *testing.T) {
		_, err := svc.CreateTeam(models.CreateTeamRequest{EventID: 9999})
		require.Error(t, err)
		assert.Equal(t, "event not found", err.Error())
	})
}

func TestUpdateTeam(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db)
	event := seedEvent(t, db, 1)
	team := seedTeam(t, db, event.ID, "Eagles", intPtr(70))

	name := "Soaring Eagles"
	cart := 12
	updated, err := svc.UpdateTeam(team.ID, models.UpdateTeamRequest{
		TeamName:   &name,
		CartNumber: &cart,
	})
	require.NoError(t, err)
	assert.Equal(t, "Soaring Eagles", updated.TeamName)
	require.NotNil(t, updated.CartNumber)
	assert.Equal(t, 12, *updated.CartNumber)
	require.NotNil(t, updated.GrossScore)
	assert.Equal(t, 70, *updated.GrossScore, "gross score is untouchable here")

	_, err = svc.UpdateTeam(9999, models.UpdateTeamRequest{})
	require.Error(t, err)
}

func TestDeleteTeam(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db)
	event := seedEvent(t, db, 1)
	team := seedTeam(t, db, event.ID, "Eagles", nil)
	keep := seedTeam(t, db, event.ID, "Hawks", nil)

	player := models.Player{TeamID: team.ID, EventID: event.ID, FirstName: "Pat"}
	require.NoError(t, db.Create(&player).Error)

	scoreSvc := NewScoreService(db)
	_, err := scoreSvc.RecordScore(models.RecordScoreRequest{
		TeamID: team.ID, HoleNumber: 1, Strokes: intPtr(4),
	}, "mobile")
	require.NoError(t, err)
	_, err = scoreSvc.RecordScore(models.RecordScoreRequest{
		TeamID: keep.ID, HoleNumber: 1, Strokes: intPtr(5),
	}, "mobile")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTeam(team.ID))

	_, err = svc.GetTeamByID(team.ID)
	require.Error(t, err)

	var scores int64
	require.NoError(t, db.Model(&models.Score{}).Count(&scores).Error)
	assert.Equal(t, int64(1), scores, "other teams' scores survive")

	var players int64
	require.NoError(t, db.Model(&models.Player{}).Count(&players).Error)
	assert.Zero(t, players)
}

func TestGenerateAccessCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db)
	event := seedEvent(t, db, 1)
	team := seedTeam(t, db, event.ID, "Eagles", nil)

	code, err := svc.GenerateAccessCode(team.ID)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.Contains(t, accessCodeAlphabet, string(c), "codes avoid ambiguous characters")
	}

	found, err := svc.GetTeamByAccessCode(code)
	require.NoError(t, err)
	assert.Equal(t, team.ID, found.ID)

	// Regenerating replaces the old code
	newCode, err := svc.GenerateAccessCode(team.ID)
	require.NoError(t, err)
	if newCode != code {
		_, err = svc.GetTeamByAccessCode(code)
		require.Error(t, err)
	}

	_, err = svc.GetTeamByAccessCode("NOPE99")
	require.Error(t, err)
	assert.Equal(t, "invalid access code", err.Error())

	_, err = svc.GenerateAccessCode(9999)
	require.Error(t, err)
}

func TestGetTeamsByEvent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(db)
	event := seedEvent(t, db, 1)
	other := seedEvent(t, db, 1)

	for i, name := range []string{"Charlie", "Alpha", "Bravo"} {
		team := seedTeam(t, db, event.ID, name, nil)
		require.NoError(t, db.Model(&models.Team{}).Where("id = ?", team.ID).
			Update("team_number", 3-i).Error)
	}
	seedTeam(t, db, other.ID, "Outsider", nil)

	teams, err := svc.GetTeamsByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, "Bravo", teams[0].TeamName, "ordered by team number")
	assert.Equal(t, "Alpha", teams[1].TeamName)
	assert.Equal(t, "Charlie", teams[2].TeamName)
}
