package input

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexane-dev/hexane/pkg/bytesize"
)

func tempFile(t *testing.T, data string) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "input")
	require.NoError(t, err)
	_, err = f.WriteString(data)
	require.NoError(t, err)
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestFile_SkipForward(t *testing.T) {
	src := File(tempFile(t, "0123456789abcdef"))
	pos, err := src.Skip(bytesize.Amount{Value: 4, Anchor: bytesize.AnchorStart})
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)

	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "456789abcdef", string(rest))
}

func TestFile_SkipFromEnd(t *testing.T) {
	src := File(tempFile(t, "0123456789abcdef"))
	pos, err := src.Skip(bytesize.Amount{Value: 4, Anchor: bytesize.AnchorEnd})
	require.NoError(t, err)
	assert.Equal(t, int64(12), pos)

	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "cdef", string(rest))
}

func TestFile_SkipRelative(t *testing.T) {
	src := File(tempFile(t, "0123456789abcdef"))
	_, err := src.Skip(bytesize.Amount{Value: 4, Anchor: bytesize.AnchorStart})
	require.NoError(t, err)
	pos, err := src.Skip(bytesize.Amount{Value: 4, Anchor: bytesize.AnchorCurrent})
	require.NoError(t, err)
	assert.Equal(t, int64(8), pos)

	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "89abcdef", string(rest))
}

func TestFile_SkipBeforeStartFails(t *testing.T) {
	src := File(tempFile(t, "0123456789abcdef"))
	_, err := src.Skip(bytesize.Amount{Value: 100, Anchor: bytesize.AnchorEnd})
	assert.Error(t, err, "seeking before the start of the file")
}

func TestReader_DrainsForward(t *testing.T) {
	src := Reader(strings.NewReader("0123456789abcdef"))
	pos, err := src.Skip(bytesize.Amount{Value: 4, Anchor: bytesize.AnchorStart})
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)

	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "456789abcdef", string(rest))
}

func TestReader_RejectsEndAnchor(t *testing.T) {
	src := Reader(strings.NewReader("0123456789abcdef"))
	_, err := src.Skip(bytesize.Amount{Value: 4, Anchor: bytesize.AnchorEnd})
	assert.ErrorIs(t, err, ErrNotSeekable)
}

func TestReader_DrainPastEndStopsThere(t *testing.T) {
	src := Reader(strings.NewReader("0123456789"))
	pos, err := src.Skip(bytesize.Amount{Value: 100, Anchor: bytesize.AnchorStart})
	require.NoError(t, err)
	assert.Equal(t, int64(10), pos)

	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Empty(t, rest, "everything was drained, the dump sees empty input")
}

func TestFile_PipeFallsBackToDrain(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	_, err = w.WriteString("0123456789abcdef")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	src := File(r)
	pos, err := src.Skip(bytesize.Amount{Value: 4, Anchor: bytesize.AnchorStart})
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)

	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "456789abcdef", string(rest))
}

func TestFile_PipeRejectsEndAnchor(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })

	src := File(r)
	_, err = src.Skip(bytesize.Amount{Value: 2, Anchor: bytesize.AnchorEnd})
	assert.ErrorIs(t, err, ErrNotSeekable)
}
