package app

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/dshills/scribe/internal/clipboard"
	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/engine"
	"github.com/dshills/scribe/internal/input/keymap"
	"github.com/dshills/scribe/internal/renderer"
	"github.com/dshills/scribe/internal/renderer/backend"
	"github.com/dshills/scribe/internal/watcher"
)

// saveMute is how long file notifications are ignored after our own save.
const saveMute = 500 * time.Millisecond

// Status messages shown in the status bar.
const (
	msgSaveFailed  = "save failed"
	msgFileChanged = "file changed on disk"
	msgFileRemoved = "file removed on disk"
)

// Application owns the open document and runs the event loop.
type Application struct {
	cfg      *config.Config
	logger   *Logger
	backend  backend.Backend
	renderer *renderer.Renderer
	keymap   *keymap.Keymap
	doc      *Document
	watcher  *watcher.Watcher

	message string
	pasting bool

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Path is the file to edit.
	Path string

	// Config is the loaded configuration. Defaults to config.Default().
	Config *config.Config

	// Backend is the terminal backend used by Run.
	Backend backend.Backend

	// FileSystem is used to load and save the document. Defaults to OSFS.
	FileSystem FileSystem

	// Logger defaults to GetLogger().
	Logger *Logger

	// Clipboard overrides the OS clipboard mirror selected by the
	// configuration.
	Clipboard engine.ClipboardSink
}

// New opens the document and prepares the key bindings.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = GetLogger()
	}

	km, err := keymap.New(cfg.Keys)
	if err != nil {
		return nil, &InitError{Component: "keymap", Err: err}
	}

	sink := opts.Clipboard
	if sink == nil && cfg.Clipboard.System {
		sink = clipboard.New(clipboard.WithLogger(logger.WithComponent("clipboard")))
	}

	doc, err := OpenDocument(opts.FileSystem, opts.Path, DocumentOptions{
		TabWidth:         cfg.Editor.TabWidth,
		ExpandTabsOnLoad: cfg.Editor.ExpandTabsOnLoad,
		Clipboard:        sink,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("keymap: %d keys bound", km.Len())
	switch {
	case doc.LoadError() != nil:
		logger.Warn("cannot read %s, starting empty: %v", doc.Path, doc.LoadError())
	case doc.IsNew():
		logger.Info("new file %s", doc.Path)
	default:
		logger.Info("loaded %s (%d lines, %d bytes)", doc.Path, doc.Engine.LineCount(), doc.Engine.Size())
	}

	return &Application{
		cfg:     cfg,
		logger:  logger,
		backend: opts.Backend,
		keymap:  km,
		doc:     doc,
	}, nil
}

// Document returns the open document.
func (app *Application) Document() *Document {
	return app.doc
}

// Message returns the current status bar message.
func (app *Application) Message() string {
	return app.message
}

// IsRunning returns true while Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Run initializes the backend and processes events until quit or ctx is
// done. Quitting never saves.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	app.renderer = renderer.New(app.backend, app.renderOptions())
	app.startWatcher()
	defer app.stopWatcher()

	events := make(chan backend.Event)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(app.backend, events, done)

	var fileEvents <-chan watcher.Event
	var fileErrors <-chan error
	if app.watcher != nil {
		fileEvents = app.watcher.Events()
		fileErrors = app.watcher.Errors()
	}

	app.render()
	for {
		select {
		case <-ctx.Done():
			app.logger.Info("shutdown: %v", ctx.Err())
			return ctx.Err()

		case ev := <-events:
			if err := app.handleBackendEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					app.logger.Info("quit (dirty=%v)", app.doc.Engine.Dirty())
					return nil
				}
				return err
			}

		case ev, ok := <-fileEvents:
			if !ok {
				fileEvents = nil
				continue
			}
			app.handleFileEvent(ev)

		case err, ok := <-fileErrors:
			if !ok {
				fileErrors = nil
				continue
			}
			app.logger.WithComponent("watcher").Warn("watch error: %v", err)
		}

		app.render()
	}
}

// pollEvents forwards backend events until done is closed.
func pollEvents(b backend.Backend, out chan<- backend.Event, done <-chan struct{}) {
	for {
		ev := b.PollEvent()
		if ev.Type == backend.EventNone {
			select {
			case <-done:
				return
			default:
				// A terminal that has been shut down keeps returning
				// EventNone; back off until done is closed.
				time.Sleep(10 * time.Millisecond)
				continue
			}
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (app *Application) renderOptions() renderer.Options {
	opts := renderer.DefaultOptions()
	opts.ShowLineNumbers = app.cfg.UI.LineNumbers
	opts.MinGutterWidth = app.cfg.UI.MinGutterWidth
	opts.TabWidth = app.doc.Engine.TabWidth()
	opts.ScrollMargin = app.cfg.UI.ScrollMargin
	opts.StatusPositionOffset = app.cfg.UI.StatusPositionOffset
	return opts
}

func (app *Application) render() {
	if app.renderer == nil {
		return
	}
	app.renderer.Render(app.doc.Engine, renderer.Status{
		Filename: app.doc.Name,
		Message:  app.message,
	})
}

func (app *Application) startWatcher() {
	if !app.cfg.Files.WatchExternal {
		return
	}
	w, err := watcher.New(app.doc.Path)
	if err != nil {
		app.logger.WithComponent("watcher").Warn("cannot watch %s: %v", app.doc.Path, err)
		return
	}
	app.watcher = w
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logger.WithComponent("watcher").Debug("close: %v", err)
	}
	app.watcher = nil
}
