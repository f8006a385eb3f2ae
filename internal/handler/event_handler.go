package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seisnet/waveform-backend-go/internal/models"
	"github.com/seisnet/waveform-backend-go/internal/service"
	"github.com/seisnet/waveform-backend-go/pkg/response"
)

// EventHandler handles HTTP requests for shot/event metadata
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// GetShotLines handles GET /api/v1/events
func (h *EventHandler) GetShotLines(c *gin.Context) {
	lines, err := h.eventService.ListShotLines()
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"shotLines": lines,
		"count":     len(lines),
	})
}

// GetEvents handles GET /api/v1/events/:shotline
func (h *EventHandler) GetEvents(c *gin.Context) {
	var filter models.EventFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	filter.ShotLine = c.Param("shotline")

	events, err := h.eventService.ListEvents(filter)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  events,
		"count": len(events),
	})
}
