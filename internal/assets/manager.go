package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"

	clr "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"sketchmatch/internal/logger"
	"sketchmatch/internal/raster"
)

//go:embed images/*.png
var projectAssets embed.FS

// Options controls how a target image is turned into a reference buffer.
type Options struct {
	Width, Height int
	Channels      int

	// Paper is composited under transparent areas.
	Paper raster.RGB

	// Binarize snaps every pixel to Ink or Paper, whichever is closer in
	// CIE-Lab. Without it a target containing other colours can never
	// score 1.
	Binarize bool
	Ink      raster.RGB
}

// Targets lists the names of the embedded target images.
func Targets() []string {
	entries, err := fs.ReadDir(projectAssets, "images")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// LoadTarget decodes an embedded target image.
func LoadTarget(name string, opts Options) (*raster.Buffer, error) {
	fileData, err := projectAssets.ReadFile(path.Join("images", name))
	if err != nil {
		return nil, fmt.Errorf("assets: read target %q: %w", name, err)
	}
	buf, err := Decode(bytes.NewReader(fileData), opts)
	if err != nil {
		return nil, fmt.Errorf("assets: target %q: %w", name, err)
	}
	logger.Logger().Info("target loaded", "name", name, "source", "embedded")
	return buf, nil
}

// LoadFile decodes a target image from disk. PNG, GIF, JPEG, BMP, WebP
// and TGA are accepted.
func LoadFile(filename string, opts Options) (*raster.Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", filename, err)
	}
	defer f.Close()

	buf, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", filename, err)
	}
	logger.Logger().Info("target loaded", "name", filename, "source", "file")
	return buf, nil
}

// Load resolves name as an embedded target first and as a file path
// otherwise.
func Load(name string, opts Options) (*raster.Buffer, error) {
	if _, err := fs.Stat(projectAssets, path.Join("images", name)); err == nil {
		return LoadTarget(name, opts)
	}
	return LoadFile(name, opts)
}

// Decode reads an image and converts it into a buffer of the requested
// size. The image is flattened onto the paper colour and scaled with
// nearest-neighbour sampling, which introduces no new colours. Images over
// MaxFileBytes or MaxPixels fail with ErrTooLarge.
func Decode(r io.Reader, opts Options) (*raster.Buffer, error) {
	src, format, err := decodeImage(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Paper), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	buf, err := raster.FromImage(dst, opts.Channels)
	if err != nil {
		return nil, err
	}
	if opts.Binarize {
		Binarize(buf, opts.Ink, opts.Paper)
	}
	logger.Logger().Debug("target decoded", "format", format,
		"src", src.Bounds().Size(), "dst", dst.Bounds().Size())
	return buf, nil
}

// Binarize replaces every pixel of buf with ink or paper, whichever is
// perceptually nearer.
func Binarize(buf *raster.Buffer, ink, paper raster.RGB) {
	inkLab, _ := clr.MakeColor(ink)
	paperLab, _ := clr.MakeColor(paper)

	// Targets are usually a handful of colours; cache the decision.
	seen := make(map[raster.RGB]raster.RGB)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c, _ := buf.RGBAt(x, y)
			snapped, ok := seen[c]
			if !ok {
				col, _ := clr.MakeColor(c)
				snapped = paper
				if col.DistanceLab(inkLab) < col.DistanceLab(paperLab) {
					snapped = ink
				}
				seen[c] = snapped
			}
			buf.SetRGB(x, y, snapped)
		}
	}
}
