// Package components holds the built-in component types. Importing the
// package registers them with scene.DefaultRegistry.
package components

import "github.com/zeusync/scenegraph/internal/core/scene"

// Type tags of the built-in components.
const (
	TransformTag = "transform"
	TagTag       = "tag"
	TriggerTag   = "trigger"
)

func init() {
	Register(scene.DefaultRegistry())
}

// Register adds the built-in components to r.
func Register(r *scene.Registry) {
	_ = r.RegisterComponent(TransformTag, func() scene.Component { return NewTransform() })
	_ = r.RegisterComponent(TagTag, func() scene.Component { return NewTag("") })
	_ = r.RegisterComponent(TriggerTag, func() scene.Component { return NewTrigger("", scene.Vec3{}, scene.Vec3{}) })
}

var (
	_ scene.Component = (*Transform)(nil)
	_ scene.Component = (*Tag)(nil)
	_ scene.Component = (*Trigger)(nil)
)
