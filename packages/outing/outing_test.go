package outing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"golf-outing-api/packages/outing/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var routerDBCounter atomic.Int64

func setupRouter(t *testing.T) (*gin.Engine, *Module, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:outing_module_test_%d?mode=memory&cache=shared", routerDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Event{},
		&models.Team{},
		&models.Player{},
		&models.Score{},
		&models.ScoreAudit{},
		&models.SideGameResult{},
		&models.Mulligan{},
	))

	module := NewModule(db)
	r := gin.New()
	module.SetupRoutes(r)
	return r, module, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEventLifecycle(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", gin.H{
		"name":              "Fall Classic",
		"course_name":       "Pine Valley Golf Club",
		"number_of_flights": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Fall Classic", created.Name)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/events/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/events/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/events/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/events/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMobileScoringFlow(t *testing.T) {
	r, module, db := setupRouter(t)

	event := models.Event{Name: "Fall Classic", NumberOfFlights: 1, HolesPlayed: 18, TeamSize: 4}
	require.NoError(t, db.Create(&event).Error)
	team := models.Team{EventID: event.ID, TeamName: "Eagles", TeamNumber: 1, FlightNumber: 1}
	require.NoError(t, db.Create(&team).Error)

	code, err := module.TeamService.GenerateAccessCode(team.ID)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/mobile/team/"+code, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mobile struct {
		Team  models.Team  `json:"team"`
		Event models.Event `json:"event"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mobile))
	assert.Equal(t, team.ID, mobile.Team.ID)
	assert.Equal(t, event.ID, mobile.Event.ID)

	w = doJSON(t, r, http.MethodGet, "/api/mobile/team/WRONG1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/mobile/score", gin.H{
		"team_id":     team.ID,
		"hole_number": 1,
		"strokes":     4,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.RecordScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 4, resp.GrossScore)

	// Correction over PUT lands on the same handler
	w = doJSON(t, r, http.MethodPut, "/api/mobile/score", gin.H{
		"team_id":     team.ID,
		"hole_number": 1,
		"strokes":     5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.GrossScore)

	w = doJSON(t, r, http.MethodPost, "/api/scores", gin.H{
		"team_id":     team.ID,
		"hole_number": 2,
		"strokes":     3,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.GrossScore)

	// Both sources show up in the audit trail
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/teams/%d/audit", team.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var audits []models.ScoreAudit
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &audits))
	require.Len(t, audits, 3)

	sources := map[string]int{}
	for _, a := range audits {
		sources[a.ChangeSource]++
	}
	assert.Equal(t, 2, sources["mobile"])
	assert.Equal(t, 1, sources["manual"])

	w = doJSON(t, r, http.MethodPost, "/api/scores", gin.H{
		"team_id":     9999,
		"hole_number": 1,
		"strokes":     4,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompetitionEndpoints(t *testing.T) {
	r, _, db := setupRouter(t)

	event := models.Event{Name: "Fall Classic", NumberOfFlights: 2, HolesPlayed: 18}
	require.NoError(t, db.Create(&event).Error)
	for i, score := range []int{60, 64, 68, 72} {
		gross := score
		team := models.Team{
			EventID:    event.ID,
			TeamName:   fmt.Sprintf("Team %d", i+1),
			TeamNumber: i + 1,
			GrossScore: &gross,
		}
		require.NoError(t, db.Create(&team).Error)
	}

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/events/%d/assign-flights", event.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var assignment models.FlightAssignmentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assignment))
	assert.True(t, assignment.Success)
	assert.Equal(t, 4, assignment.TeamsAssigned)
	assert.Equal(t, 2, assignment.TeamsPerFlight)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/events/%d/calculate-prizes", event.ID), gin.H{
		"totalPurse":  1000,
		"placesToPay": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var dist models.PrizeDistribution
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dist))
	assert.True(t, dist.Success)
	assert.Len(t, dist.Distribution, 2)
	assert.Equal(t, 2, dist.PlacesToPay)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/events/%d/leaderboard", event.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []models.LeaderboardEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 4)
	assert.Equal(t, "Team 1", entries[0].TeamName)
}

func TestDocumentEndpoint(t *testing.T) {
	r, _, db := setupRouter(t)

	event := models.Event{Name: "Fall Classic", Format: "Captains Choice", TeamSize: 4, HolesPlayed: 18}
	require.NoError(t, db.Create(&event).Error)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/events/%d/documents/summary", event.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Document string `json:"document"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc.Document, "Fall Classic")

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/events/%d/documents/poster", event.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
