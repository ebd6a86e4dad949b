package scene

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Sam-Bouten/compas"
)

// ErrNoSession reports a persistence operation on a scene without an
// attached session.
var ErrNoSession = errors.New("scene: no session attached")

// Scene owns the objects added to one host and drives their lifecycle.
//
// A scene is not safe for concurrent use; drive it from one goroutine the
// way a host event loop would.
type Scene struct {
	// Settings holds host- and application-specific options. The scene
	// itself does not interpret them.
	Settings map[string]any

	host    Host
	objects map[uuid.UUID]*Object
	order   []uuid.UUID
	session *Session
}

// NewScene creates an empty scene rendering into the given host.
func NewScene(host Host) *Scene {
	return &Scene{
		Settings: map[string]any{},
		host:     host,
		objects:  map[uuid.UUID]*Object{},
	}
}

// Host returns the host the scene renders into.
func (s *Scene) Host() Host { return s.host }

// UseSession attaches a session for Save, Undo and Redo. Pass nil to
// detach.
func (s *Scene) UseSession(session *Session) {
	s.session = session
}

// Add builds a scene object for the item through the object registry and
// adds it to the scene. The object is returned for further configuration;
// it is not drawn until Draw is called.
func (s *Scene) Add(item compas.Data, name string) (*Object, error) {
	obj, err := BuildObject(item)
	if err != nil {
		return nil, err
	}
	obj.scene = s
	obj.Name = name
	s.objects[obj.GUID()] = obj
	s.order = append(s.order, obj.GUID())
	compas.Logger().Debug("scene: object added",
		"guid", obj.GUID(), "name", name, "dtype", item.DataType())
	return obj, nil
}

// Find returns the object with the given identifier.
func (s *Scene) Find(guid uuid.UUID) (*Object, bool) {
	obj, ok := s.objects[guid]
	return obj, ok
}

// FindByName returns all objects with the given name, in the order they
// were added.
func (s *Scene) FindByName(name string) []*Object {
	var found []*Object
	for _, guid := range s.order {
		if obj := s.objects[guid]; obj.Name == name {
			found = append(found, obj)
		}
	}
	return found
}

// Objects returns the objects of the scene in the order they were added.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, 0, len(s.objects))
	for _, guid := range s.order {
		out = append(out, s.objects[guid])
	}
	return out
}

// Clear removes the host geometry of all objects. The objects stay in the
// scene and can be drawn again.
func (s *Scene) Clear() {
	s.host.EnableRedraw(false)
	for _, guid := range s.order {
		s.objects[guid].Clear()
	}
	s.host.EnableRedraw(true)
	s.host.Redraw()
}

// Purge removes all objects from the scene together with their host
// geometry.
func (s *Scene) Purge() {
	s.host.EnableRedraw(false)
	for _, guid := range s.order {
		s.objects[guid].Clear()
		delete(s.objects, guid)
	}
	s.order = s.order[:0]
	s.host.EnableRedraw(true)
	s.host.Redraw()
}

// Draw draws all objects with redrawing suppressed, then redraws the host
// once. Objects that fail to draw are reported joined in the returned
// error; the remaining objects still draw.
func (s *Scene) Draw() error {
	s.host.EnableRedraw(false)
	var errs []error
	for _, guid := range s.order {
		if err := s.objects[guid].Draw(); err != nil {
			errs = append(errs, err)
		}
	}
	s.host.EnableRedraw(true)
	s.host.Redraw()
	return errors.Join(errs...)
}

// Update redraws the host without touching the objects.
func (s *Scene) Update() {
	s.host.EnableRedraw(true)
	s.host.Redraw()
}

// On runs a dynamic visualization: fn is invoked once per frame, the host
// is updated after each call, and the loop waits interval between frames.
// The loop stops early when fn returns an error.
func (s *Scene) On(interval time.Duration, frames int, fn func(frame int) error) error {
	for frame := 0; frame < frames; frame++ {
		if interval > 0 {
			time.Sleep(interval)
		}
		if err := fn(frame); err != nil {
			return fmt.Errorf("scene: frame %d: %w", frame, err)
		}
		s.Update()
		s.host.Wait()
	}
	return nil
}

// Save records a snapshot of the scene in the attached session.
func (s *Scene) Save() error {
	if s.session == nil {
		return ErrNoSession
	}
	snapshot, err := s.snapshot()
	if err != nil {
		return err
	}
	return s.session.save(snapshot)
}

// Undo restores the snapshot preceding the current one. It reports whether
// a snapshot was restored; at the beginning of the history there is nothing
// to undo.
func (s *Scene) Undo() (bool, error) {
	if s.session == nil {
		return false, ErrNoSession
	}
	snapshot, ok, err := s.session.undo()
	if err != nil || !ok {
		return false, err
	}
	if err := s.restore(snapshot); err != nil {
		return false, err
	}
	return true, nil
}

// Redo restores the snapshot following the current one. It reports whether
// a snapshot was restored; at the end of the history there is nothing to
// redo.
func (s *Scene) Redo() (bool, error) {
	if s.session == nil {
		return false, ErrNoSession
	}
	snapshot, ok, err := s.session.redo()
	if err != nil || !ok {
		return false, err
	}
	if err := s.restore(snapshot); err != nil {
		return false, err
	}
	return true, nil
}
