package app

import (
	"github.com/dshills/scribe/internal/input/key"
	"github.com/dshills/scribe/internal/input/keymap"
	"github.com/dshills/scribe/internal/renderer/backend"
	"github.com/dshills/scribe/internal/watcher"
)

// handleBackendEvent processes a backend event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventPaste:
		app.pasting = ev.PasteStart
		return nil
	default:
		// Resize needs nothing beyond the redraw after every event.
		return nil
	}
}

// handleKeyEvent runs the bound action or types the key.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	kev := convertToKeyEvent(ev)

	if app.pasting {
		app.typeKey(kev)
		return nil
	}

	app.message = ""
	if action, ok := app.keymap.Lookup(kev); ok {
		return app.dispatch(action)
	}
	app.typeKey(kev)
	return nil
}

// typeKey inserts printable single-byte characters, tabs and line breaks.
// Control combinations, including control bytes inside a paste, are
// ignored.
func (app *Application) typeKey(kev key.Event) {
	e := app.doc.Engine
	switch kev.Key {
	case key.KeyEnter:
		e.Insert('\n')
	case key.KeyTab:
		e.Insert('\t')
	case key.KeyRune:
		if kev.IsModified() {
			return
		}
		if kev.Rune >= ' ' && kev.Rune < 0x7F {
			e.Insert(byte(kev.Rune))
		}
	}
}

// dispatch executes a bound action.
func (app *Application) dispatch(action keymap.Action) error {
	e := app.doc.Engine
	switch action {
	case keymap.ActionQuit:
		return ErrQuit
	case keymap.ActionSave:
		app.save()
	case keymap.ActionCut:
		e.Cut()
	case keymap.ActionCopy:
		e.Copy()
	case keymap.ActionPaste:
		e.Paste()
	case keymap.ActionSelectAll:
		e.SelectAll()
	case keymap.ActionDelete:
		e.Erase()
	case keymap.ActionBackspace:
		e.Backspace()
	case keymap.ActionMoveLeft, keymap.ActionSelectLeft:
		e.MoveLeft(action == keymap.ActionSelectLeft)
	case keymap.ActionMoveRight, keymap.ActionSelectRight:
		e.MoveRight(action == keymap.ActionSelectRight)
	case keymap.ActionMoveUp, keymap.ActionSelectUp:
		e.MoveUp(action == keymap.ActionSelectUp)
	case keymap.ActionMoveDown, keymap.ActionSelectDown:
		e.MoveDown(action == keymap.ActionSelectDown)
	case keymap.ActionMoveLineStart, keymap.ActionSelectLineStart:
		e.MoveToLineStart(action == keymap.ActionSelectLineStart)
	case keymap.ActionMoveLineEnd, keymap.ActionSelectLineEnd:
		e.MoveToLineEnd(action == keymap.ActionSelectLineEnd)
	default:
		app.logger.Debug("unhandled action %s", action)
	}
	return nil
}

// save writes the document and reports failure in the status bar.
func (app *Application) save() bool {
	if app.watcher != nil {
		_ = app.watcher.Mute(saveMute)
	}
	if err := app.doc.Save(); err != nil {
		app.message = msgSaveFailed
		app.logger.Error("%v", err)
		return false
	}
	app.logger.Info("saved %s (%d bytes)", app.doc.Path, app.doc.Written())
	return true
}

// handleFileEvent reports a change made to the file by another process.
// The document is never reloaded.
func (app *Application) handleFileEvent(ev watcher.Event) {
	app.logger.WithComponent("watcher").Info("%s %s", ev.Op, ev.Path)
	if ev.Op.Gone() {
		app.message = msgFileRemoved
		return
	}
	app.message = msgFileChanged
}

// convertToKeyEvent converts a backend.Event to a key.Event.
func convertToKeyEvent(ev backend.Event) key.Event {
	mods := key.ModNone
	if ev.Mod.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if ev.Mod.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if ev.Mod.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}

	if ev.Key == backend.KeyRune {
		return key.NewRuneEvent(ev.Rune, mods)
	}
	return key.NewSpecialEvent(mapBackendKey(ev.Key), mods)
}

// mapBackendKey maps a backend.Key to a key.Key.
func mapBackendKey(bk backend.Key) key.Key {
	switch bk {
	case backend.KeyEscape:
		return key.KeyEscape
	case backend.KeyEnter:
		return key.KeyEnter
	case backend.KeyTab:
		return key.KeyTab
	case backend.KeyBackspace:
		return key.KeyBackspace
	case backend.KeyDelete:
		return key.KeyDelete
	case backend.KeyInsert:
		return key.KeyInsert
	case backend.KeyHome:
		return key.KeyHome
	case backend.KeyEnd:
		return key.KeyEnd
	case backend.KeyPageUp:
		return key.KeyPageUp
	case backend.KeyPageDown:
		return key.KeyPageDown
	case backend.KeyUp:
		return key.KeyUp
	case backend.KeyDown:
		return key.KeyDown
	case backend.KeyLeft:
		return key.KeyLeft
	case backend.KeyRight:
		return key.KeyRight
	default:
		return key.KeyNone
	}
}
