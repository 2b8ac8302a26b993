package handlers

import (
	"net/http"

	"golf-outing-api/packages/outing/models"
	"golf-outing-api/packages/outing/services"

	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	scoreService  *services.ScoreService
	teamService   *services.TeamService
	eventService  *services.EventService
	playerService *services.PlayerService
}

func NewScoreHandler(scoreService *services.ScoreService, teamService *services.TeamService, eventService *services.EventService, playerService *services.PlayerService) *ScoreHandler {
	return &ScoreHandler{
		scoreService:  scoreService,
		teamService:   teamService,
		eventService:  eventService,
		playerService: playerService,
	}
}

// RecordMobileScore records a score submitted from the mobile scoring page
// @Summary Record score from mobile
// @Description Record or update a team's hole score with an audit trail entry
// @Tags scoring
// @Accept json
// @Produce json
// @Param score body models.RecordScoreRequest true "Score data"
// @Success 200 {object} models.RecordScoreResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/mobile/score [post]
func (h *ScoreHandler) RecordMobileScore(c *gin.Context) {
	h.recordScore(c, "mobile")
}

// RecordManualScore records a score entered at the scoring table
// @Summary Record score manually
// @Description Record or update a team's hole score from the admin scoring screen
// @Tags scoring
// @Accept json
// @Produce json
// @Param score body models.RecordScoreRequest true "Score data"
// @Success 200 {object} models.RecordScoreResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/scores [post]
func (h *ScoreHandler) RecordManualScore(c *gin.Context) {
	h.recordScore(c, "manual")
}

func (h *ScoreHandler) recordScore(c *gin.Context, changeSource string) {
	var req models.RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grossScore, err := h.scoreService.RecordScore(req, changeSource)
	if err != nil {
		switch err.Error() {
		case "team not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "strokes cannot be negative":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.RecordScoreResponse{
		Success:    true,
		GrossScore: grossScore,
	})
}

// GetMobileTeam resolves a team access code for the mobile scoring page
// @Summary Get team by access code
// @Description Resolve a team access code to the team, its event, players, and scores
// @Tags scoring
// @Produce json
// @Param accessCode path string true "Team access code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/mobile/team/{accessCode} [get]
func (h *ScoreHandler) GetMobileTeam(c *gin.Context) {
	team, err := h.teamService.GetTeamByAccessCode(c.Param("accessCode"))
	if err != nil {
		if err.Error() == "invalid access code" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid access code"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	event, err := h.eventService.GetEventByID(team.EventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	players, err := h.playerService.GetPlayersByTeam(team.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	scores, err := h.scoreService.GetTeamScores(team.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"team":    team,
		"event":   event,
		"players": players,
		"scores":  scores,
	})
}
