package module

import "almanac/internal/services/runs/domain"

// Ports are the run history ports other modules may consume
// both are nil when run history is disabled
type Ports struct {
	Recorder domain.RecorderPort
	Query    domain.QueryPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
