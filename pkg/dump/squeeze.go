package dump

import "bytes"

// SqueezeAction is the per-line decision of a Squeezer.
type SqueezeAction uint8

const (
	// SqueezePrint renders the line normally.
	SqueezePrint SqueezeAction = iota
	// SqueezeMarker emits the marker line instead of this line. Returned
	// exactly once at the start of each suppressed run.
	SqueezeMarker
	// SqueezeSuppress emits nothing.
	SqueezeSuppress
	// SqueezeMarkerThenPrint emits the marker line followed by the line
	// itself. Returned only when the first repeated line is also the
	// final line, which must stay visible.
	SqueezeMarkerThenPrint
)

// SqueezeMarkerLine is the literal line emitted at the start of every
// suppressed run, independent of borders and panels.
const SqueezeMarkerLine = "*"

// Squeezer collapses runs of identical full-width lines into a single
// marker. Lines compare by raw bytes. The final line of a stream is always
// printed, and a short final line never takes part in a comparison.
type Squeezer struct {
	enabled   bool
	width     int
	prev      []byte
	squeezing bool
}

// NewSqueezer returns a squeezer for lines of width bytes. A disabled
// squeezer passes every line through unchanged.
func NewSqueezer(enabled bool, width int) *Squeezer {
	return &Squeezer{enabled: enabled, width: width}
}

// Process decides what to emit for the next line. It must be called
// exactly once per line, in stream order.
func (s *Squeezer) Process(line Line) SqueezeAction {
	if !s.enabled {
		return SqueezePrint
	}

	repeat := len(line.Bytes) == s.width && s.prev != nil && bytes.Equal(line.Bytes, s.prev)
	if !repeat {
		s.remember(line.Bytes)
		s.squeezing = false
		return SqueezePrint
	}

	if line.Last {
		// The tail of the stream stays visible even mid-squeeze. A run
		// that was never announced still gets its marker.
		if s.squeezing {
			s.squeezing = false
			return SqueezePrint
		}
		return SqueezeMarkerThenPrint
	}

	if s.squeezing {
		return SqueezeSuppress
	}
	s.squeezing = true
	return SqueezeMarker
}

func (s *Squeezer) remember(b []byte) {
	if len(b) != s.width {
		s.prev = nil
		return
	}
	s.prev = append(s.prev[:0], b...)
}
