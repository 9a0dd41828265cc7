package salessim

import (
	"github.com/MarcGrol/salessimulator/lib/mylog"
)

type service struct {
	registry *SessionRegistry
	logger   mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func newService(registry *SessionRegistry, logger mylog.Logger) *service {
	return &service{
		registry: registry,
		logger:   logger,
	}
}
