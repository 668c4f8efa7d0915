package services

import (
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/diagnostics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/events"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/repositories/combats"
	combatService "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/services/combat"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CombatService combatService.Service
	Bus           *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CombatRepository combats.Repository
	Bus              *events.Bus
	Reporter         diagnostics.Reporter
	UUIDGenerator    uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	combatRepo := cfg.CombatRepository
	if combatRepo == nil {
		combatRepo = combats.NewInMemoryRepository(nil)
	}

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
	}

	svc := combatService.NewService(&combatService.ServiceConfig{
		Repository:    combatRepo,
		Bus:           bus,
		Reporter:      cfg.Reporter,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	return &Provider{
		CombatService: svc,
		Bus:           bus,
	}
}
