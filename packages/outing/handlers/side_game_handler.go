package handlers

import (
	"net/http"

	"golf-outing-api/packages/outing/models"
	"golf-outing-api/packages/outing/services"

	"github.com/gin-gonic/gin"
)

type SideGameHandler struct {
	sideGameService *services.SideGameService
}

func NewSideGameHandler(sideGameService *services.SideGameService) *SideGameHandler {
	return &SideGameHandler{
		sideGameService: sideGameService,
	}
}

// GetResultsByEvent lists side game results for an event
// @Summary Get side game results
// @Tags side-games
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} models.SideGameResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/events/{id}/side-games [get]
func (h *SideGameHandler) GetResultsByEvent(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	results, err := h.sideGameService.GetResultsByEvent(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

// CreateResult records a side game result
// @Summary Create side game result
// @Tags side-games
// @Accept json
// @Produce json
// @Param result body models.CreateSideGameResultRequest true "Side game result"
// @Success 201 {object} models.SideGameResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/side-games [post]
func (h *SideGameHandler) CreateResult(c *gin.Context) {
	var req models.CreateSideGameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.sideGameService.CreateResult(req)
	if err != nil {
		if err.Error() == "event not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetMulligansByPlayer lists a player's mulligans
// @Summary Get mulligans for a player
// @Tags side-games
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {array} models.Mulligan
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/players/{id}/mulligans [get]
func (h *SideGameHandler) GetMulligansByPlayer(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	mulligans, err := h.sideGameService.GetMulligansByPlayer(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mulligans)
}

// CreateMulligan records a mulligan use
// @Summary Record mulligan
// @Tags side-games
// @Accept json
// @Produce json
// @Param mulligan body models.CreateMulliganRequest true "Mulligan record"
// @Success 201 {object} models.Mulligan
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/mulligans [post]
func (h *SideGameHandler) CreateMulligan(c *gin.Context) {
	var req models.CreateMulliganRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mulligan, err := h.sideGameService.CreateMulligan(req)
	if err != nil {
		if err.Error() == "team not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, mulligan)
}
