package pathio

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/hyperwalk/logging"
	"go.viam.com/hyperwalk/sampling"
	"go.viam.com/hyperwalk/spatialmath"
	"go.viam.com/hyperwalk/walk"
)

func testPath(t *testing.T) walk.Path {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	space, err := sampling.BuildSpace(rng, 100)
	test.That(t, err, test.ShouldBeNil)
	p, err := walk.NewPlanner(space, walk.Config{Neighbors: 2, Steps: 25}, rng, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	path, err := p.Plan(context.Background())
	test.That(t, err, test.ShouldBeNil)
	return path
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []spatialmath.Quaternion{spatialmath.Identity(), spatialmath.NewQuaternion(0.5, -0.5, 0.5, -0.5)})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, buf.String(), test.ShouldEqual,
		"1.000000000000000000e+00,0.000000000000000000e+00,0.000000000000000000e+00,0.000000000000000000e+00\n"+
			"5.000000000000000000e-01,-5.000000000000000000e-01,5.000000000000000000e-01,-5.000000000000000000e-01\n")
}

func TestFileRoundTrip(t *testing.T) {
	path := testPath(t)
	name := filepath.Join(t.TempDir(), "rotations.csv")
	test.That(t, WriteFile(name, path.Orientations()), test.ShouldBeNil)

	raw, err := os.ReadFile(name)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.Count(string(raw), "\n"), test.ShouldEqual, len(path))

	read, err := ReadFile(name)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, read, test.ShouldHaveLength, len(path))
	for i, q := range read {
		test.That(t, spatialmath.AlmostEqual(q, path[i].Orientation, 1e-12), test.ShouldBeTrue)
	}
}

func TestWriteTransforms(t *testing.T) {
	path := testPath(t)
	var buf bytes.Buffer
	test.That(t, WriteTransforms(&buf, path), test.ShouldBeNil)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	test.That(t, lines, test.ShouldHaveLength, len(path)+1)
	test.That(t, lines[0], test.ShouldEqual, "frame,w,x,y,z")
	test.That(t, lines[1], test.ShouldStartWith, "0,")
	test.That(t, lines[len(lines)-1], test.ShouldStartWith, "25,")

	name := filepath.Join(t.TempDir(), "labels.csv")
	test.That(t, WriteTransformsFile(name, path), test.ShouldBeNil)
	raw, err := os.ReadFile(name)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(raw), test.ShouldEqual, buf.String())
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("1,0,0\n"))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = Read(strings.NewReader("1,0,0,0\n1,zero,0,0\n"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "row 2 field 2")

	qs, err := Read(strings.NewReader(""))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, qs, test.ShouldBeEmpty)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	test.That(t, os.IsNotExist(err), test.ShouldBeTrue)
}

func TestWriteFileErrorIsUninterpreted(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, os.IsNotExist(err), test.ShouldBeTrue)
}
