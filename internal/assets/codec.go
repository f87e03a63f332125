package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// Input limits. Targets are shrunk to the canvas size, so anything bigger
// than this is refused before its pixels are decoded.
const (
	MaxFileBytes = 64 << 20
	MaxPixels    = 4096 * 4096
)

// ErrTooLarge is returned for images over MaxFileBytes or MaxPixels.
var ErrTooLarge = errors.New("assets: image too large")

type codec struct {
	name   string
	magic  string // '?' matches any byte
	decode func(io.Reader) (image.Image, error)
	config func(io.Reader) (image.Config, error)
}

var codecs = []codec{
	{"png", "\x89PNG\r\n\x1a\n", png.Decode, png.DecodeConfig},
	{"gif", "GIF8?a", gif.Decode, gif.DecodeConfig},
	{"jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig},
	{"bmp", "BM????\x00\x00\x00\x00", bmp.Decode, bmp.DecodeConfig},
	{"webp", "RIFF????WEBPVP8", webp.Decode, webp.DecodeConfig},
}

// TGA has no signature; it is tried only when nothing above matches.
var tgaCodec = codec{"tga", "", tga.Decode, tga.DecodeConfig}

func sniff(data []byte) codec {
	for _, c := range codecs {
		if matchMagic(c.magic, data) {
			return c
		}
	}
	return tgaCodec
}

func matchMagic(magic string, data []byte) bool {
	if len(data) < len(magic) {
		return false
	}
	for i := 0; i < len(magic); i++ {
		if magic[i] != '?' && magic[i] != data[i] {
			return false
		}
	}
	return true
}

// decodeImage reads r fully, checks the header dimensions and then
// decodes it with the codec picked from the leading bytes.
func decodeImage(r io.Reader) (image.Image, string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > MaxFileBytes {
		return nil, "", fmt.Errorf("%w: more than %d bytes", ErrTooLarge, MaxFileBytes)
	}

	c := sniff(data)
	cfg, err := c.config(bytes.NewReader(data))
	if err != nil {
		return nil, c.name, fmt.Errorf("%s: %w", c.name, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, c.name, fmt.Errorf("%s: empty image %dx%d", c.name, cfg.Width, cfg.Height)
	}
	if cfg.Width > MaxPixels/cfg.Height {
		return nil, c.name, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	img, err := c.decode(bytes.NewReader(data))
	if err != nil {
		return nil, c.name, fmt.Errorf("%s: %w", c.name, err)
	}
	return img, c.name, nil
}
