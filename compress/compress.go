// Package compress provides optional output compression for exported
// documents.
//
// A Compressor wraps the destination writer; the emitter streams the
// document text through it. The compressor also contributes a file extension
// (e.g. ".zst") that the emitter appends to the blob name so the encoding is
// visible in the stored name.
package compress

import (
	"compress/gzip"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressor wraps a destination writer with a compression encoder.
// Implementations must be safe for concurrent use.
type Compressor interface {
	// WrapWriter returns a WriteCloser encoding into w. Closing the returned
	// writer flushes the encoder; it must not close w itself.
	WrapWriter(w io.Writer) (io.WriteCloser, error)

	// Name returns the stable name of the compressor ("none", "gzip", ...).
	Name() string

	// Ext returns the file extension including the dot, or "" for None.
	Ext() string
}

// ByName returns a built-in compressor by its stable name.
func ByName(name string) (Compressor, bool) {
	switch name {
	case "none", "":
		return None{}, true
	case "gzip":
		return Gzip{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// None is the identity compressor.
type None struct{}

func (None) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

func (None) Name() string { return "none" }
func (None) Ext() string  { return "" }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Gzip compresses with compress/gzip.
type Gzip struct {
	// Level is a gzip compression level; 0 means gzip.DefaultCompression.
	Level int
}

func (g Gzip) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	level := g.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}
	return gzip.NewWriterLevel(w, level)
}

func (Gzip) Name() string { return "gzip" }
func (Gzip) Ext() string  { return ".gz" }

// Zstd compresses with klauspost/compress zstd.
type Zstd struct {
	// Level is a zstd encoder level; the zero value means zstd.SpeedDefault.
	Level zstd.EncoderLevel
}

func (z Zstd) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	level := z.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}
	return zstd.NewWriter(w, zstd.WithEncoderLevel(level))
}

func (Zstd) Name() string { return "zstd" }
func (Zstd) Ext() string  { return ".zst" }

// LZ4 compresses with pierrec/lz4 frame encoding.
type LZ4 struct{}

func (LZ4) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

func (LZ4) Name() string { return "lz4" }
func (LZ4) Ext() string  { return ".lz4" }
