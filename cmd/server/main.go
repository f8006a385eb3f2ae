package main

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/seisnet/waveform-backend-go/internal/api"
	"github.com/seisnet/waveform-backend-go/internal/config"
	"github.com/seisnet/waveform-backend-go/internal/database"
	"github.com/seisnet/waveform-backend-go/internal/handler"
	"github.com/seisnet/waveform-backend-go/internal/observability"
	"github.com/seisnet/waveform-backend-go/internal/repository"
	"github.com/seisnet/waveform-backend-go/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Open(database.Config{Path: cfg.ArchivePath})
	if err != nil {
		log.Fatal("Failed to open archive: ", err)
	}
	defer db.Close()

	restrictions, err := config.LoadRestrictions(cfg.RestrictionsPath)
	if err != nil {
		log.Fatal("Failed to load restrictions: ", err)
	}
	if len(restrictions) > 0 {
		log.Printf("Loaded %d restricted intervals", len(restrictions))
	}

	registry := prometheus.NewRegistry()
	metrics := observability.New(registry)

	archive := repository.NewArchive(db)
	waveformService := service.NewWaveformService(archive, restrictions, cfg.Network, metrics)
	stationService := service.NewStationService(archive)
	eventService := service.NewEventService(archive)

	router := api.SetupRouter(cfg, api.Handlers{
		Waveform: handler.NewWaveformHandler(waveformService),
		Station:  handler.NewStationHandler(stationService),
		Event:    handler.NewEventHandler(eventService),
	}, registry)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
