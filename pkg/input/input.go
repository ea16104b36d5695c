// Package input opens dump sources and positions them at a requested
// offset, draining forward when the source cannot seek.
package input

import (
	"errors"
	"io"
	"syscall"

	"github.com/hexane-dev/hexane/pkg/bytesize"
)

// ErrNotSeekable reports a skip that needs random access on a source
// that only supports reading forward.
var ErrNotSeekable = errors.New("input only supports seeking forward with a relative offset")

// Source is one dump input stream. File sources seek when the operating
// system allows it; everything else is read strictly forward.
type Source struct {
	r        io.Reader
	seekable bool
}

// File wraps an opened file. Skipping uses a real seek, falling back to
// a forward drain when the descriptor turns out to be a pipe.
func File(f io.ReadSeeker) *Source {
	return &Source{r: f, seekable: true}
}

// Reader wraps a forward-only stream such as standard input.
func Reader(r io.Reader) *Source {
	return &Source{r: r}
}

func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// Skip positions the source at the parsed amount and returns the
// resulting absolute stream position. Start and current anchors advance
// from the current position; the end anchor counts backward from the end
// and needs a seekable source. Draining past the end of a short stream
// stops there without error, so the caller sees it as empty input.
func (s *Source) Skip(amount bytesize.Amount) (int64, error) {
	if s.seekable {
		pos, err := s.seek(amount)
		if err == nil {
			return pos, nil
		}
		if !errors.Is(err, syscall.ESPIPE) {
			return 0, err
		}
		// A named pipe opened as a file.
	}
	return s.drain(amount)
}

func (s *Source) seek(amount bytesize.Amount) (int64, error) {
	sk := s.r.(io.Seeker)
	if amount.Anchor == bytesize.AnchorEnd {
		return sk.Seek(-amount.Value, io.SeekEnd)
	}
	return sk.Seek(amount.Value, io.SeekCurrent)
}

func (s *Source) drain(amount bytesize.Amount) (int64, error) {
	if amount.Anchor == bytesize.AnchorEnd {
		return 0, ErrNotSeekable
	}
	n, err := io.CopyN(io.Discard, s.r, amount.Value)
	if err != nil && err != io.EOF {
		return 0, err
	}
	return n, nil
}
