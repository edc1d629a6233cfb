package vtkgo

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hupe1980/vtkgo/model"
	"github.com/hupe1980/vtkgo/numfmt"
	"github.com/hupe1980/vtkgo/section"
	"github.com/hupe1980/vtkgo/topology"
)

const (
	// fileSignature is the first line of every VTK legacy file.
	fileSignature = "# vtk DataFile Version 2.0"

	// encodingMarker is the third line; vtkgo only emits ASCII documents.
	encodingMarker = "ASCII"

	// numericType is the data type token of all point and attribute payloads.
	numericType = "DOUBLE"
)

// DataSetType is the topological category of the geometry block.
type DataSetType uint8

const (
	// DataSetUnset means no header has been declared yet.
	DataSetUnset DataSetType = iota
	// DataSetPolygonalData is an unstructured polygon mesh.
	DataSetPolygonalData
	// DataSetStructuredGrid is a grid with explicit dimensions.
	DataSetStructuredGrid
)

// String returns the DATASET keyword for the type.
func (t DataSetType) String() string {
	switch t {
	case DataSetPolygonalData:
		return "POLYDATA"
	case DataSetStructuredGrid:
		return "STRUCTURED_GRID"
	default:
		return "UNSET"
	}
}

// Writer incrementally assembles one VTK legacy document.
//
// Builder calls may come in any order except that InsertPoints must precede
// BuildHemisphere and all attribute calls. Each section is append-only and
// every call validates its preconditions before writing, so a failed call
// leaves the Writer unchanged. A Writer produces exactly one document and is
// not safe for concurrent use.
type Writer struct {
	title   string
	format  numfmt.Formatter
	logger  *Logger
	metrics MetricsCollector

	dataSetType    DataSetType
	pointCount     int
	gridPointCount int
	cellCount      int
	finalized      bool

	header    section.Buffer
	points    section.Buffer
	cells     section.Buffer
	pointData section.Buffer
	cellData  section.Buffer
}

// New creates a Writer for a document with the given title.
// The title is sanitized per SanitizeTitle before use.
func New(title string, optFns ...Option) *Writer {
	opts := applyOptions(optFns)
	return &Writer{
		title:   SanitizeTitle(title),
		format:  opts.format,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
}

// Title returns the sanitized document title.
func (w *Writer) Title() string {
	return w.title
}

// DataSet returns the declared dataset type, or DataSetUnset.
func (w *Writer) DataSet() DataSetType {
	return w.dataSetType
}

// PointCount returns the canonical point count, or 0 before InsertPoints.
func (w *Writer) PointCount() int {
	return w.pointCount
}

// CellCount returns the number of topology cells generated so far.
func (w *Writer) CellCount() int {
	return w.cellCount
}

// HeaderPolygonal declares the dataset as an unstructured polygon mesh.
// It fails with ErrAlreadySet if a header was already declared.
func (w *Writer) HeaderPolygonal() error {
	if err := w.checkMutable(); err != nil {
		return err
	}
	if w.dataSetType != DataSetUnset {
		err := fmt.Errorf("%w: dataset header", ErrAlreadySet)
		w.logger.LogHeader(DataSetPolygonalData, err)
		w.metrics.RecordSection(SectionHeader, 0, err)
		return err
	}

	w.dataSetType = DataSetPolygonalData
	w.header.WriteLinef("DATASET %s", w.dataSetType)
	w.header.Terminate()

	w.logger.LogHeader(w.dataSetType, nil)
	w.metrics.RecordSection(SectionHeader, w.header.Lines(), nil)
	return nil
}

// HeaderStructuredGrid declares the dataset as a structured grid with the
// given dimensions and records the grid-derived point count x*y*z, which
// Finalize checks against the actual inserted point count.
// It fails with ErrAlreadySet if a header was already declared and with
// ErrEmptyInput if any dimension is not positive.
func (w *Writer) HeaderStructuredGrid(x, y, z int) error {
	if err := w.checkMutable(); err != nil {
		return err
	}
	if w.dataSetType != DataSetUnset {
		err := fmt.Errorf("%w: dataset header", ErrAlreadySet)
		w.logger.LogHeader(DataSetStructuredGrid, err)
		w.metrics.RecordSection(SectionHeader, 0, err)
		return err
	}
	if x < 1 || y < 1 || z < 1 {
		err := fmt.Errorf("%w: grid dimensions %d %d %d", ErrEmptyInput, x, y, z)
		w.logger.LogHeader(DataSetStructuredGrid, err)
		w.metrics.RecordSection(SectionHeader, 0, err)
		return err
	}

	w.dataSetType = DataSetStructuredGrid
	w.gridPointCount = x * y * z
	w.header.WriteLinef("DATASET %s", w.dataSetType)
	w.header.WriteLinef("DIMENSIONS %d %d %d", x, y, z)
	w.header.Terminate()

	w.logger.LogHeader(w.dataSetType, nil)
	w.metrics.RecordSection(SectionHeader, w.header.Lines(), nil)
	return nil
}

// HeaderStructuredGrid2D declares a planar structured grid (z = 1).
func (w *Writer) HeaderStructuredGrid2D(x, y int) error {
	return w.HeaderStructuredGrid(x, y, 1)
}

// InsertPoints records the point coordinate list and establishes the
// canonical point count. It fails with ErrAlreadySet if points were already
// inserted and with ErrEmptyInput for an empty list.
func (w *Writer) InsertPoints(points []model.Point) error {
	if err := w.checkMutable(); err != nil {
		return err
	}
	if w.points.Populated() {
		err := fmt.Errorf("%w: points", ErrAlreadySet)
		w.logger.LogInsertPoints(len(points), err)
		w.metrics.RecordSection(SectionPoints, 0, err)
		return err
	}
	if len(points) == 0 {
		err := fmt.Errorf("%w: points", ErrEmptyInput)
		w.logger.LogInsertPoints(0, err)
		w.metrics.RecordSection(SectionPoints, 0, err)
		return err
	}

	w.pointCount = len(points)
	w.points.WriteLinef("POINTS %d %s", w.pointCount, numericType)
	for _, p := range points {
		w.points.WriteLine(w.format.Triple(p.X, p.Y, p.Z))
	}
	w.points.Terminate()

	w.logger.LogInsertPoints(w.pointCount, nil)
	w.metrics.RecordSection(SectionPoints, w.points.Lines(), nil)
	return nil
}

// BuildHemisphere generates the cell topology for a hemispherical mesh of
// nTheta rings and mPhi sectors per ring, capped by one apex point.
//
// Caller contract: the points inserted via InsertPoints must be ordered apex
// first (index 0), then ring-major with ascending sectors. Only the count
// relation nTheta*mPhi+1 == PointCount() is validated, never the ordering.
//
// It fails with ErrMissingPrerequisite before InsertPoints and with
// *CountMismatchError when the count relation does not hold; on failure the
// topology section is untouched.
func (w *Writer) BuildHemisphere(nTheta, mPhi int) error {
	if err := w.checkMutable(); err != nil {
		return err
	}
	if w.pointCount == 0 {
		err := fmt.Errorf("%w: points must be inserted before topology", ErrMissingPrerequisite)
		w.logger.LogTopology(nTheta, mPhi, 0, err)
		w.metrics.RecordSection(SectionPolygons, 0, err)
		return err
	}
	if want := topology.HemispherePointCount(nTheta, mPhi); want != w.pointCount {
		err := &CountMismatchError{What: "hemisphere point", Expected: want, Actual: w.pointCount}
		w.logger.LogTopology(nTheta, mPhi, 0, err)
		w.metrics.RecordSection(SectionPolygons, 0, err)
		return err
	}

	cells, err := topology.Hemisphere(nTheta, mPhi)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrEmptyInput, err)
		w.logger.LogTopology(nTheta, mPhi, 0, err)
		w.metrics.RecordSection(SectionPolygons, 0, err)
		return err
	}

	w.cells.WriteLinef("POLYGONS %d %d",
		topology.HemisphereCellCount(nTheta, mPhi),
		topology.HemisphereTokenCount(nTheta, mPhi))
	buf := make([]byte, 0, 32)
	for _, cell := range cells {
		buf = strconv.AppendInt(buf[:0], int64(len(cell)), 10)
		for _, idx := range cell {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx), 10)
		}
		w.cells.WriteLine(string(buf))
	}
	w.cells.Terminate()
	w.cellCount += len(cells)

	w.logger.LogTopology(nTheta, mPhi, len(cells), nil)
	w.metrics.RecordSection(SectionPolygons, w.cells.Lines(), nil)
	return nil
}

// Finalize validates the cross-section invariants and returns the assembled
// document. On failure it returns an empty document, never a partial one.
// A successful Finalize consumes the Writer: any further call fails with
// ErrAlreadySet.
func (w *Writer) Finalize() (string, error) {
	start := time.Now()

	if w.finalized {
		err := fmt.Errorf("%w: writer already finalized", ErrAlreadySet)
		w.logger.LogFinalize(0, err)
		w.metrics.RecordFinalize(0, time.Since(start), err)
		return "", err
	}
	if !w.header.Populated() {
		err := fmt.Errorf("%w: no dataset header declared", ErrMissingPrerequisite)
		w.logger.LogFinalize(0, err)
		w.metrics.RecordFinalize(0, time.Since(start), err)
		return "", err
	}
	if !w.points.Populated() {
		err := fmt.Errorf("%w: no points inserted", ErrMissingPrerequisite)
		w.logger.LogFinalize(0, err)
		w.metrics.RecordFinalize(0, time.Since(start), err)
		return "", err
	}
	if w.dataSetType == DataSetStructuredGrid && w.gridPointCount != w.pointCount {
		err := &CountMismatchError{What: "structured grid point", Expected: w.gridPointCount, Actual: w.pointCount}
		w.logger.LogFinalize(0, err)
		w.metrics.RecordFinalize(0, time.Since(start), err)
		return "", err
	}

	var preamble section.Buffer
	preamble.WriteLine(fileSignature)
	preamble.WriteLine(w.title)
	preamble.WriteLine(encodingMarker)

	doc := section.Assemble(&preamble, &w.header, &w.points, &w.cells, &w.pointData, &w.cellData)
	w.finalized = true

	w.logger.LogFinalize(len(doc), nil)
	w.metrics.RecordFinalize(len(doc), time.Since(start), nil)
	return doc, nil
}

// MustFinalize is like Finalize but panics on error.
func (w *Writer) MustFinalize() string {
	doc, err := w.Finalize()
	if err != nil {
		panic(err)
	}
	return doc
}

func (w *Writer) checkMutable() error {
	if w.finalized {
		return fmt.Errorf("%w: writer already finalized", ErrAlreadySet)
	}
	return nil
}
