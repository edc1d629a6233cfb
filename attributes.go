package vtkgo

import (
	"fmt"

	"github.com/hupe1980/vtkgo/model"
	"github.com/hupe1980/vtkgo/section"
)

// Section names reported to the MetricsCollector.
const (
	SectionHeader    = "header"
	SectionPoints    = "points"
	SectionPolygons  = "polygons"
	SectionPointData = "point_data"
	SectionCellData  = "cell_data"
)

// lookupTable is the palette every scalar field references.
const lookupTable = "default"

// PointScalars appends a scalar field decorating the points.
//
// The field name is trimmed and internal spaces become underscores. The
// POINT_DATA block header is emitted on the first point attribute only;
// later attributes append below it. It fails with ErrMissingPrerequisite
// before InsertPoints and with *CountMismatchError when len(values) differs
// from the point count; on failure no section is touched and the block
// header is not duplicated.
func (w *Writer) PointScalars(values []float64, name string) error {
	if err := w.checkAttribute(SectionPointData, len(values), w.pointCount, "point"); err != nil {
		w.logger.LogAttribute(SectionPointData, "scalars", name, len(values), err)
		return err
	}

	w.openDataBlock(&w.pointData, "POINT_DATA", w.pointCount)
	w.writeScalars(&w.pointData, values, sanitizeFieldName(name))

	w.logger.LogAttribute(SectionPointData, "scalars", name, len(values), nil)
	w.metrics.RecordSection(SectionPointData, w.pointData.Lines(), nil)
	return nil
}

// PointVectors appends a vector field decorating the points.
// Semantics mirror PointScalars.
func (w *Writer) PointVectors(values []model.Vector, name string) error {
	if err := w.checkAttribute(SectionPointData, len(values), w.pointCount, "point"); err != nil {
		w.logger.LogAttribute(SectionPointData, "vectors", name, len(values), err)
		return err
	}

	w.openDataBlock(&w.pointData, "POINT_DATA", w.pointCount)
	w.writeVectors(&w.pointData, values, sanitizeFieldName(name))

	w.logger.LogAttribute(SectionPointData, "vectors", name, len(values), nil)
	w.metrics.RecordSection(SectionPointData, w.pointData.Lines(), nil)
	return nil
}

// CellScalars appends a scalar field decorating the cells. The CELL_DATA
// block header is emitted on the first cell attribute only. It fails with
// ErrMissingPrerequisite before any topology has been generated.
func (w *Writer) CellScalars(values []float64, name string) error {
	if err := w.checkAttribute(SectionCellData, len(values), w.cellCount, "cell"); err != nil {
		w.logger.LogAttribute(SectionCellData, "scalars", name, len(values), err)
		return err
	}

	w.openDataBlock(&w.cellData, "CELL_DATA", w.cellCount)
	w.writeScalars(&w.cellData, values, sanitizeFieldName(name))

	w.logger.LogAttribute(SectionCellData, "scalars", name, len(values), nil)
	w.metrics.RecordSection(SectionCellData, w.cellData.Lines(), nil)
	return nil
}

// CellVectors appends a vector field decorating the cells.
// Semantics mirror CellScalars.
func (w *Writer) CellVectors(values []model.Vector, name string) error {
	if err := w.checkAttribute(SectionCellData, len(values), w.cellCount, "cell"); err != nil {
		w.logger.LogAttribute(SectionCellData, "vectors", name, len(values), err)
		return err
	}

	w.openDataBlock(&w.cellData, "CELL_DATA", w.cellCount)
	w.writeVectors(&w.cellData, values, sanitizeFieldName(name))

	w.logger.LogAttribute(SectionCellData, "vectors", name, len(values), nil)
	w.metrics.RecordSection(SectionCellData, w.cellData.Lines(), nil)
	return nil
}

// checkAttribute validates every precondition of an attribute call before
// anything is written.
func (w *Writer) checkAttribute(sectionName string, actual, declared int, what string) error {
	if err := w.checkMutable(); err != nil {
		w.metrics.RecordSection(sectionName, 0, err)
		return err
	}
	if declared == 0 {
		err := fmt.Errorf("%w: no %s count declared", ErrMissingPrerequisite, what)
		w.metrics.RecordSection(sectionName, 0, err)
		return err
	}
	if actual == 0 {
		err := fmt.Errorf("%w: attribute values", ErrEmptyInput)
		w.metrics.RecordSection(sectionName, 0, err)
		return err
	}
	if actual != declared {
		err := &CountMismatchError{What: what + " attribute", Expected: declared, Actual: actual}
		w.metrics.RecordSection(sectionName, 0, err)
		return err
	}
	return nil
}

// openDataBlock emits the block-opening count line exactly once per section.
func (w *Writer) openDataBlock(buf *section.Buffer, keyword string, count int) {
	if buf.Populated() {
		return
	}
	buf.WriteLinef("%s %d", keyword, count)
}

func (w *Writer) writeScalars(buf *section.Buffer, values []float64, name string) {
	buf.WriteLinef("SCALARS %s %s", name, numericType)
	buf.WriteLinef("LOOKUP_TABLE %s", lookupTable)
	for _, v := range values {
		buf.WriteLine(w.format.Float(v))
	}
	buf.Terminate()
}

func (w *Writer) writeVectors(buf *section.Buffer, values []model.Vector, name string) {
	buf.WriteLinef("VECTORS %s %s", name, numericType)
	for _, v := range values {
		buf.WriteLine(w.format.Triple(v.X, v.Y, v.Z))
	}
	buf.Terminate()
}
