package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/scribe/internal/engine"
	"github.com/dshills/scribe/internal/engine/buffer"
)

// FileSystem abstracts the file access a document needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// OSFS implements FileSystem using the os package.
type OSFS struct{}

// ReadFile reads a file from disk.
func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes a file to disk.
func (OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// filePerm is used when saving.
const filePerm fs.FileMode = 0o644

// DocumentOptions configures how a document is loaded.
type DocumentOptions struct {
	// TabWidth is the tab stop width for typed tabs.
	TabWidth int

	// ExpandTabsOnLoad types the file contents through the insert path,
	// expanding tabs. By default the file is parsed and tabs kept.
	ExpandTabsOnLoad bool

	// Clipboard receives every cut or copy, if set.
	Clipboard engine.ClipboardSink
}

// Document is the file being edited together with its engine.
type Document struct {
	// Path is the file path as given.
	Path string

	// Name is the display name.
	Name string

	// Engine holds the text, cursor, selection and clipboard.
	Engine *engine.Engine

	fs      FileSystem
	isNew   bool
	loadErr error
	written int
}

// OpenDocument loads path through fsys. A file that cannot be read, whether
// missing or unreadable, yields an empty document marked dirty; the cause
// of a failure other than a missing file is kept in LoadError. The cursor
// starts at the end of the loaded text.
func OpenDocument(fsys FileSystem, path string, opts DocumentOptions) (*Document, error) {
	if path == "" {
		return nil, ErrNoFile
	}
	if fsys == nil {
		fsys = OSFS{}
	}

	engineOpts := []engine.Option{}
	if opts.TabWidth > 0 {
		engineOpts = append(engineOpts, engine.WithTabWidth(opts.TabWidth))
	}
	if opts.Clipboard != nil {
		engineOpts = append(engineOpts, engine.WithClipboardSink(opts.Clipboard))
	}

	doc := &Document{
		Path: path,
		Name: filepath.Base(path),
		fs:   fsys,
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			doc.loadErr = NewOperationError("open", path, err)
		}
		doc.isNew = true
		doc.Engine = engine.New(append(engineOpts, engine.WithDirty(true))...)
		return doc, nil
	}

	if opts.ExpandTabsOnLoad {
		doc.Engine = engine.New(engineOpts...)
		doc.Engine.Feed(data)
	} else {
		doc.Engine = engine.New(append(engineOpts, engine.WithBuffer(buffer.Parse(data)))...)
	}
	doc.Engine.MarkClean()
	return doc, nil
}

// IsNew reports whether the document started empty because the file could
// not be read.
func (d *Document) IsNew() bool {
	return d.isNew
}

// LoadError returns why an existing file could not be read, or nil when
// the file was loaded or simply did not exist.
func (d *Document) LoadError() error {
	return d.loadErr
}

// Save writes the document to its path. On success the dirty flag is
// cleared; on failure it is left set and an *OperationError is returned.
func (d *Document) Save() error {
	data := d.Engine.Bytes()
	if err := d.fs.WriteFile(d.Path, data, filePerm); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.Engine.MarkClean()
	d.isNew = false
	d.written = len(data)
	return nil
}

// Written returns the number of bytes written by the last successful save.
func (d *Document) Written() int {
	return d.written
}
