package services

import (
	"testing"

	"golf-outing-api/packages/outing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlayer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayerService(db)
	event := seedEvent(t, db, 1)
	team := seedTeam(t, db, event.ID, "Eagles", nil)

	hcp := 12.4
	player, err := svc.CreatePlayer(models.CreatePlayerRequest{
		TeamID:        team.ID,
		EventID:       event.ID,
		FirstName:     "Pat",
		LastName:      "Lee",
		Email:         "pat.lee@email.com",
		HandicapIndex: &hcp,
	})
	require.NoError(t, err)
	assert.NotZero(t, player.ID)
	require.NotNil(t, player.HandicapIndex)
	assert.Equal(t, 12.4, *player.HandicapIndex)

	_, err = svc.CreatePlayer(models.CreatePlayerRequest{TeamID: 9999, EventID: event.ID})
	require.Error(t, err)
	assert.Equal(t, "team not found", err.Error())
}

func TestUpdatePlayer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayerService(db)
	event := seedEvent(t, db, 1)
	team := seedTeam(t, db, event.ID, "Eagles", nil)

	player, err := svc.CreatePlayer(models.CreatePlayerRequest{
		TeamID:    team.ID,
		EventID:   event.ID,
		FirstName: "Pat",
		LastName:  "Lee",
	})
	require.NoError(t, err)

	checkedIn := true
	checkinTime := "7:42 AM"
	updated, err := svc.UpdatePlayer(player.ID, models.UpdatePlayerRequest{
		CheckedIn:   &checkedIn,
		CheckinTime: &checkinTime,
	})
	require.NoError(t, err)
	assert.True(t, updated.CheckedIn)
	assert.Equal(t, "7:42 AM", updated.CheckinTime)
	assert.Equal(t, "Pat", updated.FirstName, "untouched fields survive")

	_, err = svc.UpdatePlayer(9999, models.UpdatePlayerRequest{})
	require.Error(t, err)
}

func TestDeletePlayer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayerService(db)
	event := seedEvent(t, db, 1)
	team := seedTeam(t, db, event.ID, "Eagles", nil)

	player, err := svc.CreatePlayer(models.CreatePlayerRequest{
		TeamID:  team.ID,
		EventID: event.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlayer(player.ID))
	require.Error(t, svc.DeletePlayer(player.ID))
}

func TestGetPlayersByEvent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayerService(db)
	event := seedEvent(t, db, 1)
	team := seedTeam(t, db, event.ID, "Eagles", nil)

	for _, name := range [][2]string{{"Chris", "Walker"}, {"Alex", "Baker"}, {"Sam", "Baker"}} {
		_, err := svc.CreatePlayer(models.CreatePlayerRequest{
			TeamID:    team.ID,
			EventID:   event.ID,
			FirstName: name[0],
			LastName:  name[1],
		})
		require.NoError(t, err)
	}

	players, err := svc.GetPlayersByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "Alex", players[0].FirstName, "sorted by last then first name")
	assert.Equal(t, "Sam", players[1].FirstName)
	assert.Equal(t, "Chris", players[2].FirstName)
}
