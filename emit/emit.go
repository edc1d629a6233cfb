// Package emit performs the terminal write of an assembled document.
//
// An Emitter is bound to a blobstore destination and optionally compresses
// the text on the way out. Emitting an empty document is a silent no-op —
// an empty document means assembly failed upstream and there is nothing to
// write, not an emit error.
package emit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hupe1980/vtkgo/blobstore"
	"github.com/hupe1980/vtkgo/compress"
)

// DefaultExtension is the canonical suffix of VTK legacy files.
const DefaultExtension = ".vtk"

// Emitter writes assembled documents to a blob store.
type Emitter struct {
	store          blobstore.BlobStore
	compressor     compress.Compressor
	forceExtension bool
	logger         *slog.Logger
}

// Options configures an Emitter.
type Options struct {
	// Compressor encodes the document on the way out.
	// Default: compress.None.
	Compressor compress.Compressor

	// ForceExtension replaces the caller-supplied extension with the
	// canonical ".vtk" suffix.
	// Default: true.
	ForceExtension bool

	// Logger receives structured emit logs. Default: discard.
	Logger *slog.Logger
}

// New creates an Emitter writing to the given store.
func New(store blobstore.BlobStore, optFns ...func(o *Options)) *Emitter {
	opts := Options{
		Compressor:     compress.None{},
		ForceExtension: true,
		Logger:         slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Compressor == nil {
		opts.Compressor = compress.None{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Emitter{
		store:          store,
		compressor:     opts.Compressor,
		forceExtension: opts.ForceExtension,
		logger:         opts.Logger,
	}
}

// Name returns the blob name Emit will write the given name to, after
// extension forcing and the compressor suffix.
func (e *Emitter) Name(name string) string {
	if e.forceExtension {
		if ext := filepath.Ext(name); ext != "" && ext != DefaultExtension {
			name = strings.TrimSuffix(name, ext)
		}
		if !strings.HasSuffix(name, DefaultExtension) {
			name += DefaultExtension
		}
	}
	return name + e.compressor.Ext()
}

// Emit writes the document under the given name. An empty document performs
// no write and returns nil.
func (e *Emitter) Emit(ctx context.Context, name, document string) error {
	if document == "" {
		e.logger.DebugContext(ctx, "nothing to emit", "name", name)
		return nil
	}

	target := e.Name(name)

	blob, err := e.store.Create(ctx, target)
	if err != nil {
		e.logger.ErrorContext(ctx, "emit failed", "name", target, "error", err)
		return fmt.Errorf("emit: create %s: %w", target, err)
	}

	enc, err := e.compressor.WrapWriter(blob)
	if err != nil {
		_ = blob.Close()
		e.logger.ErrorContext(ctx, "emit failed", "name", target, "error", err)
		return fmt.Errorf("emit: %s encoder: %w", e.compressor.Name(), err)
	}

	if _, err := io.WriteString(enc, document); err != nil {
		_ = enc.Close()
		_ = blob.Close()
		e.logger.ErrorContext(ctx, "emit failed", "name", target, "error", err)
		return fmt.Errorf("emit: write %s: %w", target, err)
	}
	if err := enc.Close(); err != nil {
		_ = blob.Close()
		e.logger.ErrorContext(ctx, "emit failed", "name", target, "error", err)
		return fmt.Errorf("emit: flush %s: %w", target, err)
	}
	if err := blob.Close(); err != nil {
		e.logger.ErrorContext(ctx, "emit failed", "name", target, "error", err)
		return fmt.Errorf("emit: close %s: %w", target, err)
	}

	e.logger.InfoContext(ctx, "document emitted",
		"name", target,
		"bytes", len(document),
		"compressor", e.compressor.Name(),
	)
	return nil
}

// WriteFile writes a document to a single local file path. It is the thin
// terminal write for callers that do not need a blob store; empty documents
// are a silent no-op here too.
func WriteFile(path, document string, optFns ...func(o *Options)) error {
	if document == "" {
		return nil
	}
	store, err := blobstore.NewLocalStore(filepath.Dir(path))
	if err != nil {
		return err
	}
	return New(store, optFns...).Emit(context.Background(), filepath.Base(path), document)
}
