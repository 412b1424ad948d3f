// Package typerules holds alternate type rules and the shared resolution
// context rule factories are evaluated against.
//
// An alternate type rule substitutes one Go type for another when a
// model is documented, for example documenting time.Time as string.
package typerules

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/erraggy/docctx/docerrors"
	"github.com/erraggy/docctx/internal/maputil"
)

// Resolver maps type names to reflect.Types. It is the context handed to
// rule factories and the lookup table fragments use to name types.
//
// Concurrency: Resolver is safe for concurrent use.
type Resolver struct {
	mu         sync.RWMutex
	byName     map[string]reflect.Type
	nameByType map[reflect.Type]string
}

// NewResolver returns a resolver seeded with Go's predeclared types plus
// time.Time, time.Duration and []byte (registered as "bytes").
func NewResolver() *Resolver {
	r := &Resolver{
		byName:     make(map[string]reflect.Type),
		nameByType: make(map[reflect.Type]string),
	}
	for _, t := range []reflect.Type{
		reflect.TypeFor[bool](),
		reflect.TypeFor[string](),
		reflect.TypeFor[int](),
		reflect.TypeFor[int8](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[int32](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[uint8](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[uint64](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[any](),
		reflect.TypeFor[time.Time](),
		reflect.TypeFor[time.Duration](),
	} {
		r.set(t.String(), t)
	}
	r.set("bytes", reflect.TypeFor[[]byte]())
	return r
}

func (r *Resolver) set(name string, t reflect.Type) {
	r.byName[name] = t
	if _, ok := r.nameByType[t]; !ok {
		r.nameByType[t] = name
	}
}

// Register binds name to t. Re-registering the same binding is a no-op;
// binding an existing name to a different type is a configuration error.
// An empty name registers t under t.String().
func (r *Resolver) Register(name string, t reflect.Type) error {
	if t == nil {
		return &docerrors.ConfigError{Option: "type", Value: name, Message: "cannot register a nil type"}
	}
	if name == "" {
		name = t.String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok && existing != t {
		return &docerrors.ConfigError{
			Option:  "type",
			Value:   name,
			Message: fmt.Sprintf("already registered as %s", existing),
		}
	}
	r.set(name, t)
	return nil
}

// Register binds name to T on r.
//
//	typerules.Register[models.User](resolver, "")
func Register[T any](r *Resolver, name string) error {
	return r.Register(name, reflect.TypeFor[T]())
}

// Resolve returns the type registered under name.
// Unknown names yield a *docerrors.ConfigError wrapping docerrors.ErrUnknownType.
func (r *Resolver) Resolve(name string) (reflect.Type, error) {
	r.mu.RLock()
	t, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &docerrors.ConfigError{Option: "type", Value: name, Cause: docerrors.ErrUnknownType}
	}
	return t, nil
}

// NameOf returns the first name t was registered under, or t.String()
// when t is not registered.
func (r *Resolver) NameOf(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.nameByType[t]; ok {
		return name
	}
	return t.String()
}

// Names returns every registered name in sorted order.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maputil.SortedKeys(r.byName)
}
