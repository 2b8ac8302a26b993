package services

import (
	"fmt"
	"testing"

	"golf-outing-api/packages/outing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func flightNumbers(t *testing.T, db *gorm.DB, eventID uint) map[string]int {
	t.Helper()

	var teams []models.Team
	require.NoError(t, db.Where("event_id = ?", eventID).Find(&teams).Error)

	out := make(map[string]int, len(teams))
	for _, team := range teams {
		out[team.TeamName] = team.FlightNumber
	}
	return out
}

func TestAssignFlights(t *testing.T) {
	t.Run("snake draft over ranked teams", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 3)
		svc := NewFlightService(db)

		// Seven teams, best score first. The snake deals flights
		// 1,2,3 then reverses to 3,2,1 then forward again.
		scores := []int{60, 62, 64, 66, 68, 70, 72}
		for i, score := range scores {
			seedTeam(t, db, event.ID, fmt.Sprintf("Team %d", i+1), intPtr(score))
		}

		result, err := svc.AssignFlights(event.ID)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 7, result.TeamsAssigned)
		assert.Equal(t, 3, result.TeamsPerFlight)

		got := flightNumbers(t, db, event.ID)
		want := map[string]int{
			"Team 1": 1,
			"Team 2": 2,
			"Team 3": 3,
			"Team 4": 3,
			"Team 5": 2,
			"Team 6": 1,
			"Team 7": 1,
		}
		assert.Equal(t, want, got)

		var first models.Team
		require.NoError(t, db.Where("event_id = ? AND team_name = ?", event.ID, "Team 3").
			First(&first).Error)
		assert.Equal(t, "Flight 3", first.Flight)
	})

	t.Run("unscored teams rank last", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 2)
		svc := NewFlightService(db)

		seedTeam(t, db, event.ID, "Idle B", nil)
		seedTeam(t, db, event.ID, "Idle A", nil)
		seedTeam(t, db, event.ID, "Scored", intPtr(75))

		_, err := svc.AssignFlights(event.ID)
		require.NoError(t, err)

		got := flightNumbers(t, db, event.ID)
		// Ranked: Scored, then the unscored pair by name
		want := map[string]int{
			"Scored": 1,
			"Idle A": 2,
			"Idle B": 2,
		}
		assert.Equal(t, want, got)
	})

	t.Run("ties break on name for stable reruns", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 2)
		svc := NewFlightService(db)

		seedTeam(t, db, event.ID, "Bravo", intPtr(70))
		seedTeam(t, db, event.ID, "Alpha", intPtr(70))

		_, err := svc.AssignFlights(event.ID)
		require.NoError(t, err)
		first := flightNumbers(t, db, event.ID)
		assert.Equal(t, 1, first["Alpha"])
		assert.Equal(t, 2, first["Bravo"])

		_, err = svc.AssignFlights(event.ID)
		require.NoError(t, err)
		assert.Equal(t, first, flightNumbers(t, db, event.ID))
	})

	t.Run("no teams is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 3)
		svc := NewFlightService(db)

		result, err := svc.AssignFlights(event.ID)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "No teams to assign", result.Message)
		assert.Zero(t, result.TeamsAssigned)
	})

	t.Run("zero configured flights treated as one", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 0)
		svc := NewFlightService(db)

		seedTeam(t, db, event.ID, "Solo", intPtr(68))

		result, err := svc.AssignFlights(event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, result.TeamsPerFlight)
		assert.Equal(t, map[string]int{"Solo": 1}, flightNumbers(t, db, event.ID))
	})

	t.Run("unknown event", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewFlightService(db)

		_, err := svc.AssignFlights(9999)
		require.Error(t, err)
		assert.Equal(t, "event not found", err.Error())
	})
}
