package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"golf-outing-api/packages/outing/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

// setupTestDB creates an in-memory SQLite database for testing. Shared
// cache with a single connection keeps the same database visible across
// goroutines in the concurrency tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:outing_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Event{},
		&models.Team{},
		&models.Player{},
		&models.Score{},
		&models.ScoreAudit{},
		&models.SideGameResult{},
		&models.Mulligan{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func seedEvent(t *testing.T, db *gorm.DB, numberOfFlights int) *models.Event {
	t.Helper()

	event := models.Event{
		Name:            "Test Outing",
		CourseName:      "Pine Valley Golf Club",
		NumberOfFlights: numberOfFlights,
		HolesPlayed:     18,
	}
	require.NoError(t, db.Create(&event).Error)
	return &event
}

func seedTeam(t *testing.T, db *gorm.DB, eventID uint, name string, grossScore *int) *models.Team {
	t.Helper()

	team := models.Team{
		EventID:    eventID,
		TeamName:   name,
		GrossScore: grossScore,
	}
	require.NoError(t, db.Create(&team).Error)
	return &team
}

func intPtr(v int) *int {
	return &v
}
