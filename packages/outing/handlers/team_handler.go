package handlers

import (
	"net/http"

	"golf-outing-api/packages/outing/models"
	"golf-outing-api/packages/outing/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService  *services.TeamService
	scoreService *services.ScoreService
}

func NewTeamHandler(teamService *services.TeamService, scoreService *services.ScoreService) *TeamHandler {
	return &TeamHandler{
		teamService:  teamService,
		scoreService: scoreService,
	}
}

// GetTeamsByEvent lists an event's teams
// @Summary Get teams for an event
// @Description Get all teams in an event ordered by team number
// @Tags teams
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} models.Team
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/events/{id}/teams [get]
func (h *TeamHandler) GetTeamsByEvent(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	teams, err := h.teamService.GetTeamsByEvent(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// CreateTeam creates a team
// @Summary Create team
// @Description Create a new team in an event
// @Tags teams
// @Accept json
// @Produce json
// @Param team body models.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(req)
	if err != nil {
		if err.Error() == "event not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam updates a team
// @Summary Update team
// @Description Update team details; gross score and flight fields are managed by the scoring and flight services
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body models.UpdateTeamRequest true "Team update data"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(id, req)
	if err != nil {
		if err.Error() == "team not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam deletes a team
// @Summary Delete team
// @Description Delete a team along with its players and scores
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	if err := h.teamService.DeleteTeam(id); err != nil {
		if err.Error() == "team not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

// GetTeamScores lists a team's hole scores
// @Summary Get team scores
// @Description Get a team's hole-by-hole scores in hole order
// @Tags scores
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} models.Score
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/teams/{id}/scores [get]
func (h *TeamHandler) GetTeamScores(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	scores, err := h.scoreService.GetTeamScores(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, scores)
}

// GenerateAccessCode issues a team's mobile scoring code
// @Summary Generate access code
// @Description Generate a new mobile scoring access code for a team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/teams/{id}/generate-code [post]
func (h *TeamHandler) GenerateAccessCode(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	code, err := h.teamService.GenerateAccessCode(id)
	if err != nil {
		if err.Error() == "team not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessCode": code})
}
