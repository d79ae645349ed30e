package module

import dom "langshift/internal/services/history/domain"

// Ports holds the ports exposed by the history module
type Ports struct {
	Recorder dom.RecorderPort
	Query    dom.QueryPort
}
