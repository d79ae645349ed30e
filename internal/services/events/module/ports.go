package module

import dom "langshift/internal/services/events/domain"

// Ports holds the ports exposed by the events module
type Ports struct {
	Emitter dom.EmitterPort
}
