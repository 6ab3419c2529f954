package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitEvent(t *testing.T, w *FileWatcher) Event {
	t.Helper()
	select {
	case ev, ok := <-w.Events():
		if !ok {
			t.Fatal("events channel closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
	}
	return Event{}
}

func TestEventTypeString(t *testing.T) {
	cases := map[EventType]string{
		Initial:       "initial",
		Changed:       "changed",
		Removed:       "removed",
		EventType(99): "unknown",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("EventType(%d).String() = %q, want %q", typ, got, want)
		}
	}
}

func TestNewFileWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")

	w := NewFileWatcher(path, WithDebounce(20*time.Millisecond))
	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}
	if w.debounceDelay != 20*time.Millisecond {
		t.Errorf("debounceDelay = %v, want 20ms", w.debounceDelay)
	}
}

func TestFileWatcher_StartStop(t *testing.T) {
	w := NewFileWatcher(filepath.Join(t.TempDir(), "input.txt"))

	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}
	w.Stop()
	w.Stop()

	if _, ok := <-w.Events(); ok {
		t.Error("Events channel should be closed after Stop()")
	}
}

func TestFileWatcher_StopWithoutStart(t *testing.T) {
	w := NewFileWatcher(filepath.Join(t.TempDir(), "input.txt"))
	w.Stop()
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	w := NewFileWatcher(filepath.Join(t.TempDir(), "missing", "input.txt"))
	if err := w.Start(); err == nil {
		w.Stop()
		t.Fatal("Start() expected error for missing directory")
	}
}

func TestFileWatcher_InitialContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("1,2"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	w := NewFileWatcher(path)
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	ev := waitEvent(t, w)
	if ev.Type != Initial {
		t.Errorf("Type = %v, want Initial", ev.Type)
	}
	if ev.Content != "1,2" {
		t.Errorf("Content = %q, want %q", ev.Content, "1,2")
	}
}

func TestFileWatcher_DetectsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")

	w := NewFileWatcher(path, WithDebounce(20*time.Millisecond))
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("1\n2,3"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	ev := waitEvent(t, w)
	if ev.Type != Changed {
		t.Errorf("Type = %v, want Changed", ev.Type)
	}
	if ev.Content != "1\n2,3" {
		t.Errorf("Content = %q, want %q", ev.Content, "1\n2,3")
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove file: %v", err)
	}
	ev = waitEvent(t, w)
	if ev.Type != Removed {
		t.Errorf("Type = %v, want Removed", ev.Type)
	}
}

func TestFileWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWatcher(filepath.Join(dir, "input.txt"), WithDebounce(20*time.Millisecond))
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("9"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFileWatcher_DebouncesBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	w := NewFileWatcher(path, WithDebounce(100*time.Millisecond))
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	for _, content := range []string{"1", "1,2", "1,2,3"} {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}

	ev := waitEvent(t, w)
	if ev.Content != "1,2,3" {
		t.Errorf("Content = %q, want last write %q", ev.Content, "1,2,3")
	}

	select {
	case ev := <-w.Events():
		t.Fatalf("expected a single debounced event, got extra %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}
