package service

import (
	"context"

	"github.com/spec-kit/storefront/internal/repository"
)

// SystemService reports on the backing store.
type SystemService struct {
	health repository.HealthChecker
}

// ConnectionStatus is the result of TestConnection.
type ConnectionStatus struct {
	Backend string
	Success bool
	Message string
}

// TestConnection pings the store. A failed ping is reported in the status,
// not as an error.
func (s *SystemService) TestConnection(ctx context.Context) ConnectionStatus {
	if s.health == nil {
		return ConnectionStatus{Backend: "none", Message: "no store configured"}
	}
	status := ConnectionStatus{Backend: s.health.Backend()}
	if err := s.health.Ping(ctx); err != nil {
		status.Message = err.Error()
		return status
	}
	status.Success = true
	status.Message = "connection successful"
	return status
}
