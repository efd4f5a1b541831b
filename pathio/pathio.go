// Package pathio writes and reads quaternion sequences as comma separated rows for the rendering
// tools that replay them frame by frame.
package pathio

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"go.viam.com/hyperwalk/spatialmath"
	"go.viam.com/hyperwalk/walk"
)

// TransformsHeader is the header row of a transformation label file.
var TransformsHeader = []string{"frame", "w", "x", "y", "z"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'e', 18, 64)
}

func quaternionRecord(q spatialmath.Quaternion) []string {
	a := q.Array()
	return []string{formatFloat(a[0]), formatFloat(a[1]), formatFloat(a[2]), formatFloat(a[3])}
}

// Write emits one w,x,y,z row per quaternion with no header.
func Write(w io.Writer, qs []spatialmath.Quaternion) error {
	cw := csv.NewWriter(w)
	for _, q := range qs {
		if err := cw.Write(quaternionRecord(q)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTransforms emits a header followed by one frame,w,x,y,z row per path entry describing the
// transformation that produced that frame from the previous one.
func WriteTransforms(w io.Writer, path walk.Path) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TransformsHeader); err != nil {
		return err
	}
	for i, s := range path {
		if err := cw.Write(append([]string{strconv.Itoa(i)}, quaternionRecord(s.Transformation)...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read parses rows written by Write.
func Read(r io.Reader) ([]spatialmath.Quaternion, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var qs []spatialmath.Quaternion
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return qs, nil
		}
		if err != nil {
			return nil, err
		}
		var a [4]float64
		for i, field := range record {
			if a[i], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, errors.Wrapf(err, "row %d field %d", row, i+1)
			}
		}
		qs = append(qs, spatialmath.FromArray(a))
	}
}

// WriteFile writes qs to the named file, truncating it if it exists.
func WriteFile(name string, qs []spatialmath.Quaternion) error {
	return writeFile(name, func(w io.Writer) error { return Write(w, qs) })
}

// WriteTransformsFile writes the transformation labels of path to the named file.
func WriteTransformsFile(name string, path walk.Path) error {
	return writeFile(name, func(w io.Writer) error { return WriteTransforms(w, path) })
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	//nolint:gosec
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return write(f)
}

// ReadFile reads quaternions from the named file.
func ReadFile(name string) ([]spatialmath.Quaternion, error) {
	//nolint:gosec
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(f.Close)
	return Read(f)
}
