// Package vtkgo builds VTK legacy files (ASCII, section-based) describing 3D
// point clouds, their topology, and scalar/vector decorations.
//
// It targets measurement and metrology pipelines that produce point-cloud or
// structured-grid data and need a visualization-tool-ready export.
//
// # Quick Start
//
//	w := vtkgo.New("hemisphere scan")
//	_ = w.HeaderPolygonal()
//	_ = w.InsertPoints(points) // apex first, then ring-major, sector-ascending
//	_ = w.BuildHemisphere(3, 4)
//	_ = w.PointScalars(heights, "height")
//	doc, err := w.Finalize()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = emit.WriteFile("scan.vtk", doc)
//
// # Builder Model
//
// A Writer accumulates five independent append-only sections (header, points,
// cell topology, point attributes, cell attributes). Builder calls may come
// in any order, with one exception: InsertPoints establishes the canonical
// point count and must precede topology generation and any attribute call.
// Finalize validates the cross-section invariants and concatenates the
// sections in fixed order; it never returns a partial document.
//
// Every mutating call checks its preconditions before touching a section, so
// a failed call leaves the Writer exactly as it was. Failures are sentinel
// errors (ErrAlreadySet, ErrEmptyInput, ErrMissingPrerequisite) or a typed
// *CountMismatchError, all matchable with errors.Is / errors.As.
//
// # Output Destinations
//
// The emit package writes finalized documents to local files or, through the
// blobstore packages, to S3 and MinIO — optionally compressed (gzip, zstd,
// lz4). The export package batches many documents per run with bounded
// concurrency and byte-rate throttling.
//
// A Writer is single-use and not safe for concurrent use.
package vtkgo
