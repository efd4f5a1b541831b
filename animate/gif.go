// Package animate assembles rendered frames into a looping animated GIF.
package animate

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/hyperwalk/logging"
)

// DefaultDelay is the frame delay in hundredths of a second.
const DefaultDelay = 20

// FramePaths returns every .png file under dir, recursively, in lexical order.
func FramePaths(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".png") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// Quantize converts img to a Plan9 paletted image using Floyd-Steinberg dithering.
func Quantize(img image.Image) *image.Paletted {
	paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, img.Bounds().Min)
	return paletted
}

// Encode writes the frames as a GIF that loops forever, each shown for delay hundredths of a second.
func Encode(w io.Writer, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, frame := range frames {
		out.Image = append(out.Image, Quantize(frame))
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, out)
}

// AssembleGIF reads every frame under dir in lexical order and writes them to out as a GIF.
func AssembleGIF(dir, out string, delay int, logger logging.Logger) (err error) {
	paths, err := FramePaths(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.Errorf("no .png frames found under %q", dir)
	}
	frames := make([]image.Image, 0, len(paths))
	for _, path := range paths {
		img, err := imaging.Open(path)
		if err != nil {
			return errors.Wrapf(err, "cannot open frame %q", path)
		}
		frames = append(frames, img)
	}
	logger.Debugw("encoding gif", "frames", len(frames), "out", out)

	//nolint:gosec
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return Encode(f, frames, delay)
}
