package handlers

import (
	"net/http"

	"golf-outing-api/packages/outing/models"
	"golf-outing-api/packages/outing/services"

	"github.com/gin-gonic/gin"
)

// CompetitionHandler exposes the flight-assignment, prize-distribution,
// leaderboard, and audit views of an event.
type CompetitionHandler struct {
	flightService      *services.FlightService
	prizeService       *services.PrizeService
	leaderboardService *services.LeaderboardService
}

func NewCompetitionHandler(flightService *services.FlightService, prizeService *services.PrizeService, leaderboardService *services.LeaderboardService) *CompetitionHandler {
	return &CompetitionHandler{
		flightService:      flightService,
		prizeService:       prizeService,
		leaderboardService: leaderboardService,
	}
}

// AssignFlights partitions an event's teams into flights
// @Summary Assign flights
// @Description Rank teams by gross score and deal them into flights with a snake draft
// @Tags competition
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.FlightAssignmentResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/events/{id}/assign-flights [post]
func (h *CompetitionHandler) AssignFlights(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	result, err := h.flightService.AssignFlights(id)
	if err != nil {
		if err.Error() == "event not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// CalculatePrizes computes a payout plan
// @Summary Calculate prize distribution
// @Description Compute a per-flight payout schedule for a purse; pure calculation, nothing is stored
// @Tags competition
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param purse body models.CalculatePrizesRequest true "Purse and places to pay"
// @Success 200 {object} models.PrizeDistribution
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/events/{id}/calculate-prizes [post]
func (h *CompetitionHandler) CalculatePrizes(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req models.CalculatePrizesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	distribution, err := h.prizeService.CalculatePrizes(id, req)
	if err != nil {
		switch err.Error() {
		case "event not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "total purse must be positive":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, distribution)
}

// GetLeaderboard returns the live standings for an event
// @Summary Get leaderboard
// @Description Teams ordered by flight, gross score, and name, with holes completed
// @Tags competition
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} models.LeaderboardEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/events/{id}/leaderboard [get]
func (h *CompetitionHandler) GetLeaderboard(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	leaderboard, err := h.leaderboardService.GetLeaderboard(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}

// GetTeamAudit returns a team's score change history
// @Summary Get team audit history
// @Description Score changes for a team, newest first
// @Tags competition
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} models.ScoreAudit
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/teams/{id}/audit [get]
func (h *CompetitionHandler) GetTeamAudit(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	audit, err := h.leaderboardService.GetTeamAudit(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, audit)
}

// GetEventAudit returns an event's score change history
// @Summary Get event audit history
// @Description Score changes across all of an event's teams, newest first, with team identity
// @Tags competition
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} models.EventAuditEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/events/{id}/audit [get]
func (h *CompetitionHandler) GetEventAudit(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	audit, err := h.leaderboardService.GetEventAudit(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, audit)
}
