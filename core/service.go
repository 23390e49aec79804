package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Interface is a long-running component started and stopped by the Registry
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

type registeredService struct {
	name    string
	service Interface
}

// Registry starts services in registration order and stops them in reverse
type Registry struct {
	services []registeredService
	logger   *zap.Logger
}

// NewRegistry creates an empty registry; a nil logger discards output
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger}
}

// Register adds a named service
func (sr *Registry) Register(name string, service Interface) {
	sr.services = append(sr.services, registeredService{name: name, service: service})
}

// StartAll starts every service. On failure the already started ones are stopped
// and the error names the failing service.
func (sr *Registry) StartAll(ctx context.Context) error {
	for i, entry := range sr.services {
		if err := entry.service.Start(ctx); err != nil {
			sr.logger.Error("service failed to start", zap.String("service", entry.name), zap.Error(err))
			sr.stopFrom(i - 1)
			return fmt.Errorf("start %s: %w", entry.name, err)
		}
		sr.logger.Debug("service started", zap.String("service", entry.name))
	}
	return nil
}

// StopAll stops every service, last registered first
func (sr *Registry) StopAll() {
	sr.stopFrom(len(sr.services) - 1)
}

func (sr *Registry) stopFrom(last int) {
	for i := last; i >= 0; i-- {
		sr.services[i].service.Stop()
		sr.logger.Debug("service stopped", zap.String("service", sr.services[i].name))
	}
}
