package scene

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/zeusync/scenegraph/internal/core/observability/log"
)

type (
	// NodeFactory returns an empty, initialised node of one concrete variant.
	NodeFactory func() Node
	// ComponentFactory returns a component with constructor defaults.
	ComponentFactory func() Component
)

// Registry maps type tags to factories. Node and component tags share one
// open namespace: registering a tag replaces any earlier factory of either
// kind and logs a warning.
//
// A Registry is read-mostly: populate it at start-up, then decode from any
// number of goroutines.
type Registry struct {
	mu         sync.RWMutex
	nodes      map[string]NodeFactory
	components map[string]ComponentFactory
	logger     log.Log
}

// NewRegistry returns an empty registry. A nil logger falls back to the process logger.
func NewRegistry(logger log.Log) *Registry {
	return &Registry{
		nodes:      make(map[string]NodeFactory),
		components: make(map[string]ComponentFactory),
		logger:     logger,
	}
}

func (r *Registry) log() log.Log {
	if r.logger != nil {
		return r.logger
	}
	return log.Provide()
}

// RegisterNode records factory for tag. The last registration wins.
func (r *Registry) RegisterNode(tag string, factory NodeFactory) error {
	if tag == "" {
		return ErrInvalidTag
	}
	if factory == nil {
		return fmt.Errorf("%w: node %q", ErrNilFactory, tag)
	}
	r.mu.Lock()
	replaced := r.takeTagLocked(tag)
	r.nodes[tag] = factory
	r.mu.Unlock()
	if replaced != "" {
		r.log().Warn("type tag re-registered",
			log.String("tag", tag),
			log.String("previous", replaced),
			log.String("kind", "node"))
	}
	return nil
}

// RegisterComponent records factory for tag. The last registration wins.
func (r *Registry) RegisterComponent(tag string, factory ComponentFactory) error {
	if tag == "" {
		return ErrInvalidTag
	}
	if factory == nil {
		return fmt.Errorf("%w: component %q", ErrNilFactory, tag)
	}
	r.mu.Lock()
	replaced := r.takeTagLocked(tag)
	r.components[tag] = factory
	r.mu.Unlock()
	if replaced != "" {
		r.log().Warn("type tag re-registered",
			log.String("tag", tag),
			log.String("previous", replaced),
			log.String("kind", "component"))
	}
	return nil
}

// takeTagLocked drops any factory under tag and reports which kind it was.
func (r *Registry) takeTagLocked(tag string) string {
	if _, ok := r.nodes[tag]; ok {
		delete(r.nodes, tag)
		return "node"
	}
	if _, ok := r.components[tag]; ok {
		delete(r.components, tag)
		return "component"
	}
	return ""
}

// Unregister removes tag. It reports whether anything was registered.
func (r *Registry) Unregister(tag string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.takeTagLocked(tag) != ""
}

// Has reports whether tag is registered as either kind.
func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, n := r.nodes[tag]
	_, c := r.components[tag]
	return n || c
}

// New instantiates an empty node for tag.
func (r *Registry) New(tag string) (Node, error) {
	r.mu.RLock()
	f := r.nodes[tag]
	r.mu.RUnlock()
	if f == nil {
		return nil, &UnknownTypeError{Tag: tag, Kind: "node"}
	}
	return f(), nil
}

// NewComponent instantiates a component with defaults for tag.
func (r *Registry) NewComponent(tag string) (Component, error) {
	r.mu.RLock()
	f := r.components[tag]
	r.mu.RUnlock()
	if f == nil {
		return nil, &UnknownTypeError{Tag: tag, Kind: "component"}
	}
	return f(), nil
}

// Create instantiates the node for rec.Type and decodes rec into it.
func (r *Registry) Create(rec Record, opts ...DecodeOption) (Node, error) {
	return r.NewDecoder(opts...).Decode(rec)
}

func (r *Registry) NodeTags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.nodes)
}

func (r *Registry) ComponentTags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.components)
}

// Clone returns an independent registry with the same factories, for tests
// that register extension types without touching the shared one.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := NewRegistry(r.logger)
	for k, v := range r.nodes {
		out.nodes[k] = v
	}
	for k, v := range r.components {
		out.components[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var defaultRegistry atomic.Pointer[Registry]

func init() {
	r := NewRegistry(nil)
	RegisterBuiltins(r)
	defaultRegistry.Store(r)
}

// DefaultRegistry returns the process-wide registry that built-in and plugin
// types register into at package init.
func DefaultRegistry() *Registry {
	return defaultRegistry.Load()
}

// SetDefaultRegistry swaps the process-wide registry and returns the previous one.
func SetDefaultRegistry(r *Registry) *Registry {
	return defaultRegistry.Swap(r)
}

// RegisterBuiltins adds the node variants of this package to r.
func RegisterBuiltins(r *Registry) {
	_ = r.RegisterNode(EntityTag, func() Node { return NewEntity("") })
	_ = r.RegisterNode(ActorTag, func() Node { return NewActor("") })
	_ = r.RegisterNode(WorldTag, func() Node { return NewWorld("") })
	_ = r.RegisterNode(StageTag, func() Node { return NewStage("", 0, 0) })
}

var (
	_ Node = (*Entity)(nil)
	_ Node = (*Actor)(nil)
	_ Node = (*World)(nil)
	_ Node = (*Stage)(nil)
)
