package vtkgo_test

import (
	"strings"
	"testing"

	"github.com/hupe1980/vtkgo"
	"github.com/hupe1980/vtkgo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPointWriter(t *testing.T, n int) *vtkgo.Writer {
	t.Helper()
	w := vtkgo.New("t")
	require.NoError(t, w.HeaderPolygonal())
	require.NoError(t, w.InsertPoints(make([]model.Point, n)))
	return w
}

func TestPointScalars(t *testing.T) {
	w := newPointWriter(t, 3)
	require.NoError(t, w.PointScalars([]float64{1, 2.5, -3}, "height"))

	doc, err := w.Finalize()
	require.NoError(t, err)

	want := strings.Join([]string{
		"POINT_DATA 3",
		"SCALARS height DOUBLE",
		"LOOKUP_TABLE default",
		"1.0000000000",
		"2.5000000000",
		"-3.0000000000",
		"",
	}, "\n")
	assert.Contains(t, doc, want)
}

func TestPointVectors(t *testing.T) {
	w := newPointWriter(t, 2)
	require.NoError(t, w.PointVectors([]model.Vector{{X: 1}, {Y: -1}}, "normal"))

	doc, err := w.Finalize()
	require.NoError(t, err)

	want := strings.Join([]string{
		"POINT_DATA 2",
		"VECTORS normal DOUBLE",
		"1.0000000000 0.0000000000 0.0000000000",
		"0.0000000000 -1.0000000000 0.0000000000",
		"",
	}, "\n")
	assert.Contains(t, doc, want)
}

func TestPointData_BlockHeaderOnce(t *testing.T) {
	w := newPointWriter(t, 2)
	require.NoError(t, w.PointScalars([]float64{1, 2}, "a"))
	require.NoError(t, w.PointVectors([]model.Vector{{}, {}}, "b"))
	require.NoError(t, w.PointScalars([]float64{3, 4}, "c"))

	doc, err := w.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(doc, "POINT_DATA"))
}

func TestPointScalars_CountMismatch(t *testing.T) {
	w := newPointWriter(t, 3)

	err := w.PointScalars([]float64{1, 2}, "short")
	var mismatch *vtkgo.CountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.Expected)
	assert.Equal(t, 2, mismatch.Actual)

	// The failed call must not have emitted the block header.
	doc, err := w.Finalize()
	require.NoError(t, err)
	assert.NotContains(t, doc, "POINT_DATA")
	assert.NotContains(t, doc, "short")
}

func TestPointScalars_RequiresPoints(t *testing.T) {
	w := vtkgo.New("t")
	require.NoError(t, w.HeaderPolygonal())

	err := w.PointScalars([]float64{1}, "x")
	assert.ErrorIs(t, err, vtkgo.ErrMissingPrerequisite)
}

func TestFieldNameSanitized(t *testing.T) {
	w := newPointWriter(t, 1)
	require.NoError(t, w.PointScalars([]float64{1}, "  surface deviation  "))

	doc, err := w.Finalize()
	require.NoError(t, err)
	assert.Contains(t, doc, "SCALARS surface_deviation DOUBLE")
}

func TestCellAttributes(t *testing.T) {
	w := vtkgo.New("t")
	require.NoError(t, w.HeaderPolygonal())
	require.NoError(t, w.InsertPoints(hemispherePoints(2, 3))) // 7 points
	require.NoError(t, w.BuildHemisphere(2, 3))                // 6 cells

	require.NoError(t, w.CellScalars([]float64{1, 2, 3, 4, 5, 6}, "area"))
	require.NoError(t, w.CellVectors(make([]model.Vector, 6), "flux"))

	doc, err := w.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(doc, "CELL_DATA"))
	assert.Contains(t, doc, "CELL_DATA 6\nSCALARS area DOUBLE\n")
	assert.Contains(t, doc, "VECTORS flux DOUBLE\n")

	// Cell data renders after point data sections in the fixed order.
	assert.Less(t, strings.Index(doc, "POLYGONS"), strings.Index(doc, "CELL_DATA"))
}

func TestCellScalars_RequiresTopology(t *testing.T) {
	w := newPointWriter(t, 4)

	err := w.CellScalars([]float64{1}, "x")
	assert.ErrorIs(t, err, vtkgo.ErrMissingPrerequisite)
}

func TestCellScalars_CountMismatch(t *testing.T) {
	w := vtkgo.New("t")
	require.NoError(t, w.HeaderPolygonal())
	require.NoError(t, w.InsertPoints(hemispherePoints(2, 3)))
	require.NoError(t, w.BuildHemisphere(2, 3))

	err := w.CellScalars([]float64{1, 2}, "x")
	var mismatch *vtkgo.CountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 6, mismatch.Expected)
}

func TestPointScalars_EmptyInput(t *testing.T) {
	w := newPointWriter(t, 2)
	assert.ErrorIs(t, w.PointScalars(nil, "x"), vtkgo.ErrEmptyInput)
}
