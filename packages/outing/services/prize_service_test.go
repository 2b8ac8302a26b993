package services

import (
	"fmt"
	"testing"

	"golf-outing-api/packages/outing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTeams(t *testing.T, db *gorm.DB, eventID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		seedTeam(t, db, eventID, fmt.Sprintf("Team %d", i+1), nil)
	}
}

func TestCalculatePrizes(t *testing.T) {
	t.Run("single flight three places", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 1)
		seedTeams(t, db, event.ID, 10)
		svc := NewPrizeService(db)

		dist, err := svc.CalculatePrizes(event.ID, models.CalculatePrizesRequest{
			TotalPurse:  1000,
			PlacesToPay: 3,
		})
		require.NoError(t, err)
		assert.True(t, dist.Success)
		assert.Equal(t, 3, dist.PlacesToPay)
		require.Len(t, dist.Distribution, 1)

		prizes := dist.Distribution[0].Prizes
		require.Len(t, prizes, 3)
		assert.Equal(t, 500.0, prizes[0].Amount)
		assert.Equal(t, 300.0, prizes[1].Amount)
		assert.Equal(t, 200.0, prizes[2].Amount)
		assert.Equal(t, 1000.0, dist.TotalAwarded)
		assert.Equal(t, 0.0, dist.Leftover)
	})

	t.Run("rounding leaves non-negative leftover", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 3)
		seedTeams(t, db, event.ID, 12)
		svc := NewPrizeService(db)

		// 1000/3 per flight does not split into clean $5 amounts
		dist, err := svc.CalculatePrizes(event.ID, models.CalculatePrizesRequest{
			TotalPurse:  1000,
			PlacesToPay: 3,
		})
		require.NoError(t, err)
		require.Len(t, dist.Distribution, 3)

		for _, flight := range dist.Distribution {
			for _, prize := range flight.Prizes {
				assert.Zero(t, int(prize.Amount)%5, "award is a $5 multiple")
			}
		}
		assert.LessOrEqual(t, dist.TotalAwarded, dist.TotalPurse)
		assert.GreaterOrEqual(t, dist.Leftover, 0.0)
		assert.InDelta(t, dist.TotalPurse, dist.TotalAwarded+dist.Leftover, 0.0001)
	})

	t.Run("places clamp to teams per flight", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 2)
		seedTeams(t, db, event.ID, 4) // 2 per flight
		svc := NewPrizeService(db)

		dist, err := svc.CalculatePrizes(event.ID, models.CalculatePrizesRequest{
			TotalPurse:  800,
			PlacesToPay: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, dist.PlacesToPay)

		prizes := dist.Distribution[0].Prizes
		require.Len(t, prizes, 2)
		assert.Equal(t, 60, prizes[0].Percentage)
		assert.Equal(t, 40, prizes[1].Percentage)
	})

	t.Run("places cap at five", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 1)
		seedTeams(t, db, event.ID, 20)
		svc := NewPrizeService(db)

		dist, err := svc.CalculatePrizes(event.ID, models.CalculatePrizesRequest{
			TotalPurse:  10000,
			PlacesToPay: 8,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, dist.PlacesToPay)

		prizes := dist.Distribution[0].Prizes
		require.Len(t, prizes, 5)
		assert.Equal(t, []int{35, 25, 20, 12, 8}, []int{
			prizes[0].Percentage, prizes[1].Percentage, prizes[2].Percentage,
			prizes[3].Percentage, prizes[4].Percentage,
		})
	})

	t.Run("places default to three", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 1)
		seedTeams(t, db, event.ID, 10)
		svc := NewPrizeService(db)

		dist, err := svc.CalculatePrizes(event.ID, models.CalculatePrizesRequest{
			TotalPurse: 1000,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, dist.PlacesToPay)
	})

	t.Run("no teams", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 1)
		svc := NewPrizeService(db)

		dist, err := svc.CalculatePrizes(event.ID, models.CalculatePrizesRequest{
			TotalPurse: 1000,
		})
		require.NoError(t, err)
		assert.False(t, dist.Success)
		assert.Equal(t, "No teams in event", dist.Error)
		assert.Empty(t, dist.Distribution)
	})

	t.Run("rejects non-positive purse", func(t *testing.T) {
		db := setupTestDB(t)
		event := seedEvent(t, db, 1)
		seedTeams(t, db, event.ID, 4)
		svc := NewPrizeService(db)

		_, err := svc.CalculatePrizes(event.ID, models.CalculatePrizesRequest{TotalPurse: 0})
		require.Error(t, err)
	})

	t.Run("unknown event", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewPrizeService(db)

		_, err := svc.CalculatePrizes(9999, models.CalculatePrizesRequest{TotalPurse: 100})
		require.Error(t, err)
		assert.Equal(t, "event not found", err.Error())
	})
}
