package handlers

import (
	"net/http"

	"golf-outing-api/packages/outing/services"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// GenerateDocument renders a printable event document
// @Summary Generate event document
// @Description Render one of the event's text documents (summary, rules, starter-script, scorecard)
// @Tags documents
// @Produce json
// @Param id path int true "Event ID"
// @Param type path string true "Document type" Enums(summary, rules, starter-script, scorecard)
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/events/{id}/documents/{type} [get]
func (h *DocumentHandler) GenerateDocument(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	document, err := h.documentService.GenerateDocument(id, c.Param("type"))
	if err != nil {
		switch err.Error() {
		case "event not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "invalid document type":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": document})
}
