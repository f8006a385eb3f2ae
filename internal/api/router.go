package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seisnet/waveform-backend-go/internal/config"
	"github.com/seisnet/waveform-backend-go/internal/handler"
	"github.com/seisnet/waveform-backend-go/internal/middleware"
)

// Handlers bundles the route handlers wired by the router.
type Handlers struct {
	Waveform *handler.WaveformHandler
	Station  *handler.StationHandler
	Event    *handler.EventHandler
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, h Handlers, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Auth(cfg.JWTSecret))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Waveform extraction API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(60, time.Minute))
	{
		waveforms := api.Group("/waveforms")
		{
			waveforms.GET("", h.Waveform.GetWaveforms)
			waveforms.POST("", h.Waveform.PostWaveforms)
		}

		api.GET("/arrays", h.Station.GetArrays)

		stations := api.Group("/stations")
		{
			stations.GET("", h.Station.GetStations)
			stations.GET("/:array", h.Station.GetStationsByArray)
		}

		events := api.Group("/events")
		{
			events.GET("", h.Event.GetShotLines)
			events.GET("/:shotline", h.Event.GetEvents)
		}
	}

	return r
}
