package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(2, 1, color.NRGBA{R: 147, G: 51, B: 234, A: 255})

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, Save(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	r, g, b, _ := got.At(2, 1).RGBA()
	assert.Equal(t, uint32(147*0x101), r)
	assert.Equal(t, uint32(51*0x101), g)
	assert.Equal(t, uint32(234*0x101), b)
}

func TestSaveErrors(t *testing.T) {
	assert.ErrorIs(t, Save(filepath.Join(t.TempDir(), "x.png"), nil), ErrEmpty)
	assert.ErrorIs(t, Save(filepath.Join(t.TempDir(), "x.png"), image.NewNRGBA(image.Rect(0, 0, 0, 0))), ErrEmpty)

	err := Save(filepath.Join(t.TempDir(), "missing", "x.png"), image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithExt(t *testing.T) {
	assert.Equal(t, "a.png", WithExt("a"))
	assert.Equal(t, "a.PNG", WithExt("a.PNG"))
	assert.Equal(t, "dir/b.jpg.png", WithExt("dir/b.jpg"))
}
