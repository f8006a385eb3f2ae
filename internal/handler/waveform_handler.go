package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seisnet/waveform-backend-go/internal/middleware"
	"github.com/seisnet/waveform-backend-go/internal/models"
	"github.com/seisnet/waveform-backend-go/internal/service"
	"github.com/seisnet/waveform-backend-go/pkg/response"
)

// WaveformHandler handles HTTP requests for waveform extraction
type WaveformHandler struct {
	waveformService *service.WaveformService
}

// NewWaveformHandler creates a new waveform handler
func NewWaveformHandler(waveformService *service.WaveformService) *WaveformHandler {
	return &WaveformHandler{
		waveformService: waveformService,
	}
}

// GetWaveforms handles GET /api/v1/waveforms
func (h *WaveformHandler) GetWaveforms(c *gin.Context) {
	var filter models.CutFilter

	// Parse query parameters
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	h.extract(c, filter)
}

// PostWaveforms handles POST /api/v1/waveforms with a JSON selection body,
// for selections too large to express as a query string.
func (h *WaveformHandler) PostWaveforms(c *gin.Context) {
	var filter models.CutFilter

	if err := c.ShouldBindJSON(&filter); err != nil {
		response.BadRequest(c, "Invalid selection body")
		return
	}

	h.extract(c, filter)
}

func (h *WaveformHandler) extract(c *gin.Context, filter models.CutFilter) {
	// Authenticated callers may receive restricted spans.
	includeRestricted := middleware.IsAuthenticated(c)

	result, err := h.waveformService.ExtractTraces(filter, includeRestricted)
	if err != nil {
		writeError(c, err)
		return
	}

	// Zero traces is a valid, successful, empty response.
	response.Success(c, result)
}
