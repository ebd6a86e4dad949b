package scene

import (
	"path/filepath"
	"testing"

	"github.com/Sam-Bouten/compas/geometry"
)

func testSession(t *testing.T, depth int) *Session {
	t.Helper()
	session, err := OpenSession(filepath.Join(t.TempDir(), "scene.db"), depth)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestSceneWithoutSession(t *testing.T) {
	s := NewScene(newFakeHost())
	if err := s.Save(); err != ErrNoSession {
		t.Errorf("Save err = %v, want ErrNoSession", err)
	}
	if _, err := s.Undo(); err != ErrNoSession {
		t.Errorf("Undo err = %v, want ErrNoSession", err)
	}
	if _, err := s.Redo(); err != ErrNoSession {
		t.Errorf("Redo err = %v, want ErrNoSession", err)
	}
}

func TestSessionUndoRedo(t *testing.T) {
	s := NewScene(newFakeHost())
	s.UseSession(testSession(t, 10))

	obj, err := s.Add(geometry.Pt(0, 0, 0), "p")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	obj.SetItem(geometry.Pt(1, 0, 0))
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Undo restores the first snapshot.
	ok, err := s.Undo()
	if err != nil || !ok {
		t.Fatalf("Undo = (%v, %v), want (true, nil)", ok, err)
	}
	restored := s.FindByName("p")
	if len(restored) != 1 {
		t.Fatalf("restored %d objects, want 1", len(restored))
	}
	if got := restored[0].Item().(geometry.Point); got.X != 0 {
		t.Errorf("restored item = %+v, want X = 0", got)
	}

	// Nothing older to undo.
	ok, err = s.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if ok {
		t.Error("Undo past the beginning of the history")
	}

	// Redo moves forward again.
	ok, err = s.Redo()
	if err != nil || !ok {
		t.Fatalf("Redo = (%v, %v), want (true, nil)", ok, err)
	}
	restored = s.FindByName("p")
	if got := restored[0].Item().(geometry.Point); got.X != 1 {
		t.Errorf("redone item = %+v, want X = 1", got)
	}
	ok, err = s.Redo()
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if ok {
		t.Error("Redo past the end of the history")
	}
}

func TestSessionBranching(t *testing.T) {
	s := NewScene(newFakeHost())
	s.UseSession(testSession(t, 10))

	obj, err := s.Add(geometry.Pt(0, 0, 0), "p")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	for x := 1; x <= 3; x++ {
		if err := s.Save(); err != nil {
			t.Fatalf("Save: %v", err)
		}
		obj.SetItem(geometry.Pt(float64(x), 0, 0))
	}
	// States: x = 0, 1, 2. Walk back to x = 0, then save x = 3: the x = 1
	// and x = 2 states are discarded.
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	obj = s.FindByName("p")[0]
	obj.SetItem(geometry.Pt(3, 0, 0))
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if ok, err := s.Redo(); err != nil || ok {
		t.Errorf("Redo after branching = (%v, %v), want (false, nil)", ok, err)
	}
	ok, err := s.Undo()
	if err != nil || !ok {
		t.Fatalf("Undo = (%v, %v), want (true, nil)", ok, err)
	}
	if got := s.FindByName("p")[0].Item().(geometry.Point); got.X != 0 {
		t.Errorf("undone item = %+v, want X = 0", got)
	}
}

func TestSessionDepth(t *testing.T) {
	session := testSession(t, 2)
	s := NewScene(newFakeHost())
	s.UseSession(session)

	obj, err := s.Add(geometry.Pt(0, 0, 0), "p")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	for x := 0; x < 5; x++ {
		obj.SetItem(geometry.Pt(float64(x), 0, 0))
		if err := s.Save(); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	n, err := session.Len()
	if err != nil {
		t.Fatalf("Len: %v", err)
	}
	if n != 2 {
		t.Errorf("session holds %d states, want 2", n)
	}
	// Only one step of history is left to undo.
	if ok, _ := s.Undo(); !ok {
		t.Error("expected one undo step")
	}
	if ok, _ := s.Undo(); ok {
		t.Error("history deeper than the depth limit")
	}
}
