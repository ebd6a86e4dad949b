package scene

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/Sam-Bouten/compas"
	"github.com/Sam-Bouten/compas/geometry"
)

// ErrNoArtist reports an item type with no registered artist.
var ErrNoArtist = errors.New("scene: no artist registered for item type")

// Host is the drawing surface a scene renders into. Implementations wrap a
// document or viewport of a concrete visualization backend.
type Host interface {
	// EnableRedraw toggles whether Redraw takes effect. Scenes disable
	// redrawing while batching object updates and re-enable it afterwards.
	EnableRedraw(enabled bool)

	// Redraw flushes all host geometry to the output surface.
	Redraw()

	// Wait blocks until the host has processed pending work. Hosts without
	// an event loop return immediately.
	Wait()

	// Remove deletes the host geometry with the given identifier.
	Remove(guid uuid.UUID)

	// Transform applies a transformation to the host geometry with the
	// given identifier, leaving the originating item untouched.
	Transform(guid uuid.UUID, t geometry.Transformation) error
}

// Artist translates one kind of item into host geometry.
//
// Artists are host-specific: an implementation knows the concrete Host it
// draws into and the styling (color, weight) it applies. The item is passed
// at draw time so that an artist observes item updates made through
// Object.Synchronize.
type Artist interface {
	// Draw creates host geometry for the item and returns its identifier.
	Draw(host Host, item compas.Data) (uuid.UUID, error)
}

// ArtistFactory creates a fresh artist with default styling.
type ArtistFactory func() Artist

var (
	artistMu sync.RWMutex
	artists  = map[reflect.Type]ArtistFactory{}
)

// RegisterArtist registers an artist factory for the concrete type of the
// prototype item. Host packages register their artists from init.
// Registering a type twice replaces the previous factory (last registration
// wins).
func RegisterArtist(prototype compas.Data, factory ArtistFactory) {
	artistMu.Lock()
	defer artistMu.Unlock()
	artists[reflect.TypeOf(prototype)] = factory
}

// BuildArtist creates an artist matching the concrete type of the item.
// Returns ErrNoArtist when the type has no registered factory.
func BuildArtist(item compas.Data) (Artist, error) {
	artistMu.RLock()
	factory, ok := artists[reflect.TypeOf(item)]
	artistMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoArtist, item)
	}
	return factory(), nil
}
