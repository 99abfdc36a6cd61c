package render

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

func TestLoadTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})

	path := filepath.Join(t.TempDir(), "track.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	tex, err := LoadTexture(path)
	require.NoError(t, err)

	w, h := tex.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, path, tex.Name)
}

func TestLoadTextureNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	_, err := LoadTexture(path)
	require.Error(t, err)
}

func TestNilTextureSize(t *testing.T) {
	var tex *Texture
	w, h := tex.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestLoadTextureMissingFile(t *testing.T) {
	_, err := LoadTexture("does-not-exist.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.png")
}

func TestLoadBundledTrackTexture(t *testing.T) {
	tex, err := LoadTexture(filepath.Join("..", "assets", "track.png"))
	require.NoError(t, err)

	w, h := tex.Size()
	assert.Equal(t, 256, w)
	assert.Equal(t, 128, h)
}
