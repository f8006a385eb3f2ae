package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seisnet/waveform-backend-go/internal/models"
	"github.com/seisnet/waveform-backend-go/internal/service"
	"github.com/seisnet/waveform-backend-go/pkg/response"
)

// StationHandler handles HTTP requests for station metadata
type StationHandler struct {
	stationService *service.StationService
}

// NewStationHandler creates a new station handler
func NewStationHandler(stationService *service.StationService) *StationHandler {
	return &StationHandler{
		stationService: stationService,
	}
}

// GetArrays handles GET /api/v1/arrays
func (h *StationHandler) GetArrays(c *gin.Context) {
	names, err := h.stationService.ListArrays()
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"arrays": names,
		"count":  len(names),
	})
}

// GetStations handles GET /api/v1/stations
func (h *StationHandler) GetStations(c *gin.Context) {
	var filter models.StationFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	arrays, err := h.stationService.ListStations(filter)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  arrays,
		"count": len(arrays),
	})
}

// GetStationsByArray handles GET /api/v1/stations/:array
func (h *StationHandler) GetStationsByArray(c *gin.Context) {
	var filter models.StationFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	filter.Arrays = []string{c.Param("array")}

	arrays, err := h.stationService.ListStations(filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(arrays) == 0 {
		response.NotFound(c, "Array not found or empty")
		return
	}

	response.Success(c, arrays[0])
}
