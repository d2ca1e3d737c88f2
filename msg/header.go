package msg

import "time"

// Header carries the coordinate frame and time of an observation.
type Header struct {
	// FrameID names the coordinate frame the data is expressed in.
	FrameID string `json:"frame_id" yaml:"frame_id"`

	// Stamp is the observation time. The zero value means "latest
	// available"; transform sources resolve it to their most recent data.
	Stamp time.Time `json:"stamp" yaml:"stamp"`
}

// GetHeader returns a copy of the header.
func (h Header) GetHeader() Header { return h }

// SetHeader replaces the header.
func (h *Header) SetHeader(header Header) { *h = header }

// Stamped is satisfied by any value carrying a frame/time header. All
// stamped message types satisfy it by embedding Header.
type Stamped interface {
	GetHeader() Header
}

// HeaderSetter is the writable side of Stamped. Pointers to types embedding
// Header satisfy it.
type HeaderSetter interface {
	Stamped
	SetHeader(Header)
}
