package scene

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Sam-Bouten/compas"
	"github.com/Sam-Bouten/compas/colors"
	"github.com/Sam-Bouten/compas/geometry"
)

// fakeHost records host calls and keeps host geometry in a plain map.
type fakeHost struct {
	items    map[uuid.UUID]compas.Data
	redraws  int
	enabled  bool
	toggles  []bool
	waits    int
	removals int
}

func newFakeHost() *fakeHost {
	return &fakeHost{items: map[uuid.UUID]compas.Data{}, enabled: true}
}

func (h *fakeHost) EnableRedraw(enabled bool) {
	h.enabled = enabled
	h.toggles = append(h.toggles, enabled)
}

func (h *fakeHost) Redraw() {
	if h.enabled {
		h.redraws++
	}
}

func (h *fakeHost) Wait() { h.waits++ }

func (h *fakeHost) Remove(guid uuid.UUID) {
	delete(h.items, guid)
	h.removals++
}

func (h *fakeHost) Transform(guid uuid.UUID, t geometry.Transformation) error {
	item, ok := h.items[guid]
	if !ok {
		return errors.New("fakeHost: unknown guid")
	}
	moved, err := geometry.Transformed(item, t)
	if err != nil {
		return err
	}
	h.items[guid] = moved
	return nil
}

// fakeArtist copies the item into the fake host table.
type fakeArtist struct{}

func (fakeArtist) Draw(host Host, item compas.Data) (uuid.UUID, error) {
	h, ok := host.(*fakeHost)
	if !ok {
		return uuid.Nil, errors.New("fakeArtist: wrong host")
	}
	guid := uuid.New()
	h.items[guid] = item
	return guid, nil
}

// circleArtist is a second artist type, distinct from fakeArtist, so tests
// can observe which artist an object resolved.
type circleArtist struct{ fakeArtist }

func init() {
	RegisterArtist(geometry.Point{}, func() Artist { return fakeArtist{} })
	RegisterArtist(geometry.Line{}, func() Artist { return fakeArtist{} })
	RegisterArtist(geometry.Circle{}, func() Artist { return circleArtist{} })
	RegisterObject(geometry.Point{}, func(item compas.Data) (*Object, error) {
		return NewObject(item), nil
	})
	RegisterObject(geometry.Line{}, func(item compas.Data) (*Object, error) {
		return NewObject(item), nil
	})
	// Colors have an object wrapper but no artist, to exercise draw
	// failures.
	RegisterObject(colors.Color{}, func(item compas.Data) (*Object, error) {
		return NewObject(item), nil
	})
}

func TestBuildArtistUnregistered(t *testing.T) {
	if _, err := BuildArtist(colors.Color{}); !errors.Is(err, ErrNoArtist) {
		t.Fatalf("err = %v, want ErrNoArtist", err)
	}
}

func TestBuildObjectUnregistered(t *testing.T) {
	if _, err := BuildObject(geometry.Polygon{}); !errors.Is(err, ErrNoObject) {
		t.Fatalf("err = %v, want ErrNoObject", err)
	}
}

func TestRegisteredObjectTypes(t *testing.T) {
	tags := RegisteredObjectTypes()
	want := map[string]bool{"geometry/Point": false, "geometry/Line": false}
	for _, tag := range tags {
		if _, ok := want[tag]; ok {
			want[tag] = true
		}
	}
	for tag, seen := range want {
		if !seen {
			t.Errorf("tag %q missing from %v", tag, tags)
		}
	}
	for i := 1; i < len(tags); i++ {
		if tags[i-1] > tags[i] {
			t.Fatalf("tags not sorted: %v", tags)
		}
	}
}

func TestSceneAddFind(t *testing.T) {
	s := NewScene(newFakeHost())
	a, err := s.Add(geometry.Pt(0, 0, 0), "anchor")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	b, err := s.Add(geometry.Pt(1, 0, 0), "anchor")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add(geometry.Line{Start: geometry.Pt(0, 0, 0), End: geometry.Pt(1, 0, 0)}, "edge"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got, ok := s.Find(a.GUID()); !ok || got != a {
		t.Error("Find by GUID failed")
	}
	if _, ok := s.Find(uuid.New()); ok {
		t.Error("Find reported an unknown GUID")
	}
	anchors := s.FindByName("anchor")
	if len(anchors) != 2 || anchors[0] != a || anchors[1] != b {
		t.Errorf("FindByName returned %d objects in wrong order", len(anchors))
	}
	if len(s.Objects()) != 3 {
		t.Errorf("Objects() returned %d, want 3", len(s.Objects()))
	}
}

func TestSceneDraw(t *testing.T) {
	host := newFakeHost()
	s := NewScene(host)
	if _, err := s.Add(geometry.Pt(0, 0, 0), "a"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	hidden, err := s.Add(geometry.Pt(1, 1, 1), "b")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	hidden.Visible = false

	if err := s.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(host.items) != 1 {
		t.Errorf("host has %d items, want 1 (hidden object skipped)", len(host.items))
	}
	if host.redraws != 1 {
		t.Errorf("host redrawn %d times, want 1", host.redraws)
	}
	// Redraw suppression bracketed the batch.
	if len(host.toggles) < 2 || host.toggles[0] != false || host.toggles[len(host.toggles)-1] != true {
		t.Errorf("redraw toggles = %v", host.toggles)
	}

	// Drawing twice replaces host geometry instead of accumulating it.
	if err := s.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(host.items) != 1 {
		t.Errorf("host has %d items after redraw, want 1", len(host.items))
	}
}

func TestSceneDrawError(t *testing.T) {
	s := NewScene(newFakeHost())
	if _, err := s.Add(colors.Red(), "swatch"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add(geometry.Pt(0, 0, 0), "a"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	err := s.Draw()
	if !errors.Is(err, ErrNoArtist) {
		t.Fatalf("Draw err = %v, want ErrNoArtist", err)
	}
	// The drawable object still made it to the host.
	if len(s.Host().(*fakeHost).items) != 1 {
		t.Error("drawable object was not drawn")
	}
}

func TestObjectTransformSynchronize(t *testing.T) {
	host := newFakeHost()
	s := NewScene(host)
	obj, err := s.Add(geometry.Pt(1, 0, 0), "p")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := obj.Transform(geometry.Translation(geometry.Vec(1, 0, 0))); !errors.Is(err, ErrNotDrawn) {
		t.Fatalf("Transform before Draw: err = %v, want ErrNotDrawn", err)
	}
	if err := s.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// Quarter turn, then a shift: the host geometry moves step by step.
	if err := obj.Transform(geometry.RotationZ(math.Pi / 2)); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if err := obj.Transform(geometry.Translation(geometry.Vec(1, 0, 0))); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if obj.PendingTransformations() != 2 {
		t.Errorf("pending = %d, want 2", obj.PendingTransformations())
	}

	// The item lags behind until Synchronize.
	if got := obj.Item().(geometry.Point); got.Sub(geometry.Pt(1, 0, 0)).Length() > geometry.Tolerance {
		t.Errorf("item moved prematurely to %+v", got)
	}

	if err := obj.Synchronize(); err != nil {
		t.Fatalf("Synchronize: %v", err)
	}
	if obj.PendingTransformations() != 0 {
		t.Error("stack not cleared")
	}
	want := geometry.Pt(1, 1, 0)
	if got := obj.Item().(geometry.Point); got.Sub(want).Length() > geometry.Tolerance {
		t.Errorf("item = %+v, want %+v", got, want)
	}
	// Item and host geometry agree again.
	for _, hostItem := range host.items {
		if got := hostItem.(geometry.Point); got.Sub(want).Length() > geometry.Tolerance {
			t.Errorf("host geometry = %+v, want %+v", got, want)
		}
	}

	// Synchronize with an empty stack is a no-op.
	if err := obj.Synchronize(); err != nil {
		t.Fatalf("Synchronize: %v", err)
	}
}

func TestSceneClearPurge(t *testing.T) {
	host := newFakeHost()
	s := NewScene(host)
	if _, err := s.Add(geometry.Pt(0, 0, 0), "a"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	s.Clear()
	if len(host.items) != 0 {
		t.Error("Clear left host geometry behind")
	}
	if len(s.Objects()) != 1 {
		t.Error("Clear removed scene objects")
	}

	if err := s.Draw(); err != nil {
		t.Fatalf("Draw after Clear: %v", err)
	}
	s.Purge()
	if len(host.items) != 0 || len(s.Objects()) != 0 {
		t.Error("Purge left objects behind")
	}
}

func TestSceneOn(t *testing.T) {
	host := newFakeHost()
	s := NewScene(host)
	var frames []int
	err := s.On(time.Millisecond, 3, func(frame int) error {
		frames = append(frames, frame)
		return nil
	})
	if err != nil {
		t.Fatalf("On: %v", err)
	}
	if len(frames) != 3 || frames[0] != 0 || frames[2] != 2 {
		t.Errorf("frames = %v, want [0 1 2]", frames)
	}
	if host.waits != 3 {
		t.Errorf("host waited %d times, want 3", host.waits)
	}

	boom := errors.New("boom")
	err = s.On(0, 5, func(frame int) error {
		if frame == 1 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("On err = %v, want boom", err)
	}
}

func TestSetItem(t *testing.T) {
	host := newFakeHost()
	s := NewScene(host)
	obj, err := s.Add(geometry.Pt(0, 0, 0), "p")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	obj.SetItem(geometry.Pt(5, 5, 5))
	if len(host.items) != 0 {
		t.Error("SetItem kept stale host geometry")
	}
	if got := obj.Item().(geometry.Point); got.X != 5 {
		t.Errorf("item = %+v", got)
	}

	// Replacing the item with a different type must re-dispatch the artist.
	obj.SetItem(geometry.Circle{Plane: geometry.WorldXY(), Radius: 1})
	a, err := obj.Artist()
	if err != nil {
		t.Fatalf("Artist: %v", err)
	}
	if _, ok := a.(circleArtist); !ok {
		t.Errorf("artist = %T, want circleArtist", a)
	}
	if err := obj.Draw(); err != nil {
		t.Fatalf("Draw after SetItem: %v", err)
	}
}
