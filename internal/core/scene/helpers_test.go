package scene_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/scenegraph/internal/core/observability/log"
	"github.com/zeusync/scenegraph/internal/core/scene"
	"github.com/zeusync/scenegraph/internal/core/scene/components"
)

func newRegistry(t *testing.T) (*scene.Registry, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	r := scene.NewRegistry(log.Wrap(zap.New(core), log.LevelDebug))
	scene.RegisterBuiltins(r)
	components.Register(r)
	return r, logs
}

func names(nodes []scene.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Base().Name()
	}
	return out
}

// buildWorld returns W -> [A(0,10), B(10,20) -> [hero{transform, tag x2}]].
func buildWorld(t *testing.T) (*scene.World, *scene.Stage, *scene.Stage) {
	t.Helper()
	w := scene.NewWorld("W")
	w.LoadPositions = []scene.Vec3{{X: 1}, {Y: 2, Z: 3}}
	w.LoadDistance = 50

	a := scene.NewStage("A", 0, 10)
	b := scene.NewStage("B", 10, 20)
	b.BeginPosition = scene.Vec3{X: 10}
	b.EndPosition = scene.Vec3{X: 20, Y: 1.5}

	hero := scene.NewActor("hero")
	tr := components.NewTransform()
	tr.Position = scene.Vec3{X: 1, Y: 2, Z: 3}
	if err := hero.AddComponent(tr); err != nil {
		t.Fatal(err)
	}
	for _, label := range []string{"player", "friendly"} {
		if err := hero.AddComponent(components.NewTag(label)); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.AddChildren(hero); err != nil {
		t.Fatal(err)
	}
	if err := w.AddChildren(a, b); err != nil {
		t.Fatal(err)
	}
	return w, a, b
}
