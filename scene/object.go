package scene

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Sam-Bouten/compas"
	"github.com/Sam-Bouten/compas/geometry"
)

// ErrNoObject reports an item type with no registered object factory.
var ErrNoObject = errors.New("scene: no object registered for item type")

// ErrNotDrawn reports an operation that needs host geometry on an object
// that has not been drawn.
var ErrNotDrawn = errors.New("scene: object has no host geometry")

// Object pairs one item with its state in a host: the artist drawing it,
// the identifier of the created host geometry, its name and visibility, and
// the stack of transformations not yet folded back into the item.
type Object struct {
	// Name labels the object in the scene. Multiple objects may share a
	// name; Scene.FindByName returns all of them.
	Name string

	// Visible toggles drawing. Hidden objects keep their scene entry but
	// create no host geometry.
	Visible bool

	item   compas.Data
	scene  *Scene
	artist Artist
	id     uuid.UUID
	guid   uuid.UUID
	stack  []geometry.Transformation
}

// NewObject wraps an item in a scene object with a fresh identifier. The
// artist is resolved lazily on first use, so items can be wrapped before
// their host package is imported.
func NewObject(item compas.Data) *Object {
	return &Object{
		Visible: true,
		item:    item,
		id:      uuid.New(),
	}
}

// GUID returns the unique identifier of the object. Scenes index objects by
// this identifier.
func (o *Object) GUID() uuid.UUID { return o.id }

// Item returns the wrapped item.
func (o *Object) Item() compas.Data { return o.item }

// SetItem replaces the wrapped item and discards the current host geometry,
// the resolved artist and any pending transformations. The artist is
// re-dispatched on the next draw so the item type may change.
func (o *Object) SetItem(item compas.Data) {
	o.Clear()
	o.item = item
	o.artist = nil
	o.stack = nil
}

// Artist returns the artist drawing the item, resolving it through the
// artist registry on first call.
func (o *Object) Artist() (Artist, error) {
	if o.artist == nil {
		a, err := BuildArtist(o.item)
		if err != nil {
			return nil, err
		}
		o.artist = a
	}
	return o.artist, nil
}

// Clear removes the host geometry of the object, if any.
func (o *Object) Clear() {
	if o.guid == uuid.Nil || o.scene == nil {
		return
	}
	o.scene.host.Remove(o.guid)
	o.guid = uuid.Nil
}

// Draw creates host geometry for the item, replacing any previous geometry.
// Hidden objects are cleared but not drawn.
func (o *Object) Draw() error {
	if o.scene == nil {
		return fmt.Errorf("scene: object %q is not part of a scene", o.Name)
	}
	o.Clear()
	if !o.Visible {
		return nil
	}
	artist, err := o.Artist()
	if err != nil {
		return err
	}
	guid, err := artist.Draw(o.scene.host, o.item)
	if err != nil {
		return fmt.Errorf("scene: drawing %q: %w", o.Name, err)
	}
	o.guid = guid
	return nil
}

// Transform moves the host geometry of the object immediately and records
// the transformation on the pending stack. The item itself is not updated
// until Synchronize folds the stack back into it.
func (o *Object) Transform(t geometry.Transformation) error {
	if o.guid == uuid.Nil {
		return ErrNotDrawn
	}
	if err := o.scene.host.Transform(o.guid, t); err != nil {
		return err
	}
	o.stack = append(o.stack, t)
	return nil
}

// Synchronize folds the pending transformations into the item, most recent
// transformation outermost, and clears the stack. After Synchronize the
// item matches the host geometry again.
func (o *Object) Synchronize() error {
	if len(o.stack) == 0 {
		return nil
	}
	combined := geometry.Identity()
	for _, t := range o.stack {
		combined = t.Multiply(combined)
	}
	item, err := geometry.Transformed(o.item, combined)
	if err != nil {
		return fmt.Errorf("scene: synchronizing %q: %w", o.Name, err)
	}
	o.item = item
	o.stack = o.stack[:0]
	return nil
}

// PendingTransformations returns the number of transformations applied to
// the host geometry but not yet folded into the item.
func (o *Object) PendingTransformations() int { return len(o.stack) }

// ObjectFactory creates the scene object wrapping an item.
type ObjectFactory func(item compas.Data) (*Object, error)

type objectEntry struct {
	dtype   string
	factory ObjectFactory
}

var (
	objectMu sync.RWMutex
	objects  = map[reflect.Type]objectEntry{}
)

// RegisterObject registers an object factory for the concrete type of the
// prototype item. Host packages register their object types from init.
// Registering a type twice replaces the previous factory (last registration
// wins).
func RegisterObject(prototype compas.Data, factory ObjectFactory) {
	objectMu.Lock()
	defer objectMu.Unlock()
	objects[reflect.TypeOf(prototype)] = objectEntry{
		dtype:   prototype.DataType(),
		factory: factory,
	}
}

// RegisteredObjectTypes returns the sorted data type tags of all items with
// a registered object factory.
func RegisteredObjectTypes() []string {
	objectMu.RLock()
	defer objectMu.RUnlock()
	tags := make([]string, 0, len(objects))
	for _, entry := range objects {
		tags = append(tags, entry.dtype)
	}
	sort.Strings(tags)
	return tags
}

// BuildObject creates a scene object matching the concrete type of the
// item. Returns ErrNoObject when the type has no registered factory.
func BuildObject(item compas.Data) (*Object, error) {
	objectMu.RLock()
	entry, ok := objects[reflect.TypeOf(item)]
	objectMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoObject, item)
	}
	return entry.factory(item)
}
