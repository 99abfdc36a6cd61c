package render

import (
	"image"
	_ "image/jpeg" // decoders for LoadTexture
	_ "image/png"
	"os"

	"github.com/rotisserie/eris"
)

// Texture is a decoded image that shapes can be filled with.
// Backends upload it lazily on first use.
type Texture struct {
	Name  string
	Image image.Image
}

// NewTexture wraps an already decoded image
func NewTexture(name string, img image.Image) *Texture {
	return &Texture{Name: name, Image: img}
}

// LoadTexture loads a texture from a file
func LoadTexture(filename string) (*Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open texture %q", filename)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to decode texture %q", filename)
	}

	return NewTexture(filename, img), nil
}

// Size returns the texture size in pixels
func (t *Texture) Size() (width, height int) {
	if t == nil || t.Image == nil {
		return 0, 0
	}
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}
