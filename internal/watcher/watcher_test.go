package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func waitEvent(t *testing.T, w *Watcher, timeout time.Duration) (Event, bool) {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev, true
	case <-time.After(timeout):
		return Event{}, false
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
		{OpCreate | OpWrite, "CREATE|WRITE"},
		{0, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestOpGone(t *testing.T) {
	if !OpRemove.Gone() {
		t.Error("remove should report gone")
	}
	if !(OpWrite | OpRename).Gone() {
		t.Error("rename should report gone")
	}
	if (OpRename | OpCreate).Gone() {
		t.Error("rename followed by create should not report gone")
	}
	if OpWrite.Gone() {
		t.Error("write should not report gone")
	}
}

func TestConvertOp(t *testing.T) {
	if got := convertOp(fsnotify.Create | fsnotify.Write); got != OpCreate|OpWrite {
		t.Errorf("convertOp(create|write) = %v", got)
	}
	if got := convertOp(fsnotify.Chmod); got != 0 {
		t.Errorf("convertOp(chmod) = %v, want 0", got)
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "file.txt")

	_, err := New(path)
	if !errors.Is(err, ErrPathNotExist) {
		t.Errorf("expected ErrPathNotExist, got %v", err)
	}
}

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("one"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("two"), 0644); err != nil {
		t.Fatal(err)
	}

	ev, ok := waitEvent(t, w, 2*time.Second)
	if !ok {
		t.Fatal("expected an event for the external write")
	}
	if ev.Path != w.Path() {
		t.Errorf("expected path %s, got %s", w.Path(), ev.Path)
	}
	if ev.Op == 0 {
		t.Error("expected a non-zero op")
	}
}

func TestWatcher_ThroughSymlinkedDirectory(t *testing.T) {
	base := t.TempDir()
	realDir := filepath.Join(base, "real")
	if err := os.Mkdir(realDir, 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(base, "link")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.WriteFile(filepath.Join(realDir, "notes.txt"), []byte("one"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(filepath.Join(link, "notes.txt"), WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(realDir, "notes.txt"), []byte("two"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, ok := waitEvent(t, w, 2*time.Second); !ok {
		t.Fatal("expected an event for a file opened through a symlinked directory")
	}
}

func TestResolvePath_MissingFile(t *testing.T) {
	base := t.TempDir()
	realDir := filepath.Join(base, "real")
	if err := os.Mkdir(realDir, 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(base, "link")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := resolvePath(filepath.Join(link, "new.txt"))
	if err != nil {
		t.Fatalf("resolvePath error = %v", err)
	}
	want, err := filepath.EvalSymlinks(realDir)
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(want, "new.txt") {
		t.Errorf("expected %s, got %s", filepath.Join(want, "new.txt"), got)
	}
}

func TestWatcher_DetectsCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.txt")

	w, err := New(path, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	ev, ok := waitEvent(t, w, 2*time.Second)
	if !ok {
		t.Fatal("expected an event for the created file")
	}
	if !ev.Op.Has(OpCreate) {
		t.Errorf("expected CREATE in %v", ev.Op)
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")

	w, err := New(path, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if ev, ok := waitEvent(t, w, 200*time.Millisecond); ok {
		t.Errorf("expected no event, got %+v", ev)
	}
}

func TestWatcher_CoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "burst.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDelay(200*time.Millisecond))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	if _, ok := waitEvent(t, w, 2*time.Second); !ok {
		t.Fatal("expected a coalesced event")
	}
	if ev, ok := waitEvent(t, w, 400*time.Millisecond); ok {
		t.Errorf("expected a single event, got another: %+v", ev)
	}
}

func TestWatcher_Mute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.txt")

	w, err := New(path, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	if err := w.Mute(time.Second); err != nil {
		t.Fatalf("Mute error = %v", err)
	}
	if err := os.WriteFile(path, []byte("own write"), 0644); err != nil {
		t.Fatal(err)
	}

	if ev, ok := waitEvent(t, w, 200*time.Millisecond); ok {
		t.Errorf("expected muted write to be dropped, got %+v", ev)
	}
}

func TestWatcher_Close(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "f.txt"))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}

	if _, ok := <-w.Events(); ok {
		t.Error("expected events channel to be closed")
	}
	if _, ok := <-w.Errors(); ok {
		t.Error("expected errors channel to be closed")
	}
	if err := w.Mute(time.Second); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("expected ErrWatcherClosed, got %v", err)
	}
}
