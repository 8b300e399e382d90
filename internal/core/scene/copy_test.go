package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scenegraph/internal/core/scene"
	"github.com/zeusync/scenegraph/internal/core/scene/components"
)

func heroWithWeapon(t *testing.T) *scene.Actor {
	t.Helper()
	hero := scene.NewActor("hero")
	hero.SetLocked(true)
	tr := components.NewTransform()
	tr.Position = scene.Vec3{X: 1, Y: 2, Z: 3}
	require.NoError(t, hero.AddComponent(tr))
	require.NoError(t, hero.AddChildren(scene.NewActor("weapon")))
	return hero
}

func TestCloneRecursiveFreshIDs(t *testing.T) {
	hero := heroWithWeapon(t)
	clone := hero.Clone(true)

	c, ok := clone.(*scene.Actor)
	require.True(t, ok)
	assert.NotEqual(t, hero.ID(), c.ID())
	assert.Equal(t, "hero", c.Name())
	assert.True(t, c.Locked())
	assert.Nil(t, c.Parent())

	require.Equal(t, 1, c.NumChildren())
	weapon := c.ChildAt(0)
	assert.Equal(t, "weapon", weapon.Base().Name())
	assert.NotEqual(t, hero.ChildAt(0).Base().ID(), weapon.Base().ID())
	assert.Same(t, c, weapon.Base().Parent())

	orig, _ := hero.Component(components.TransformTag)
	copied, ok := c.Component(components.TransformTag)
	require.True(t, ok)
	assert.NotSame(t, orig, copied)
	assert.Same(t, c, copied.Base().Owner())
	assert.Equal(t, orig.(*components.Transform).Position, copied.(*components.Transform).Position)

	// the source is untouched
	assert.Equal(t, 1, hero.NumChildren())
	assert.Same(t, hero, orig.Base().Owner())
}

func TestClonePreserveIDs(t *testing.T) {
	hero := heroWithWeapon(t)
	clone := hero.Clone(true, scene.PreserveIDs())

	assert.Equal(t, hero.ID(), clone.Base().ID())
	assert.Equal(t, hero.ChildAt(0).Base().ID(), clone.Base().ChildAt(0).Base().ID())
}

func assertUniqueIDs(t *testing.T, root scene.Node) {
	t.Helper()
	seen := make(map[string]string)
	var visit func(n scene.Node)
	visit = func(n scene.Node) {
		b := n.Base()
		if prev, ok := seen[b.ID()]; ok {
			t.Errorf("id %s shared by %q and %q", b.ID(), prev, b.Name())
		}
		seen[b.ID()] = b.Name()
		for _, c := range b.Children() {
			visit(c)
		}
	}
	visit(root)
}

func TestPreserveIDsOntoSiblingFallsBackToFresh(t *testing.T) {
	root := scene.NewActor("root")
	x := scene.NewActor("x")
	y := scene.NewActor("y")
	require.NoError(t, root.AddChildren(x, y))

	y.Copy(x, false, scene.PreserveIDs())

	assert.Equal(t, "x", y.Name())
	assert.NotEqual(t, x.ID(), y.ID())
	assertUniqueIDs(t, root)
}

func TestPreserveIDsRecursiveOntoSiblingFallsBackToFresh(t *testing.T) {
	root := scene.NewActor("root")
	hero := heroWithWeapon(t)
	other := scene.NewActor("other")
	require.NoError(t, root.AddChildren(hero, other))

	other.Copy(hero, true, scene.PreserveIDs())

	require.Equal(t, 1, other.NumChildren())
	assert.NotEqual(t, hero.ID(), other.ID())
	assert.NotEqual(t, hero.ChildAt(0).Base().ID(), other.ChildAt(0).Base().ID())
	assertUniqueIDs(t, root)
}

func TestPreserveIDsRefreshInPlace(t *testing.T) {
	root := scene.NewActor("root")
	hero := heroWithWeapon(t)
	require.NoError(t, root.AddChildren(hero))
	weaponID := hero.ChildAt(0).Base().ID()

	reloaded := hero.Clone(true, scene.PreserveIDs())
	reloaded.Base().SetName("hero v2")
	hero.Copy(reloaded, true, scene.PreserveIDs())

	assert.Equal(t, "hero v2", hero.Name())
	assert.Equal(t, reloaded.Base().ID(), hero.ID())
	require.Equal(t, 1, hero.NumChildren())
	assert.Equal(t, weaponID, hero.ChildAt(0).Base().ID())
	assert.Same(t, root, hero.Parent())
}

func TestCloneShallow(t *testing.T) {
	hero := heroWithWeapon(t)
	clone := hero.Clone(false)

	assert.Equal(t, "hero", clone.Base().Name())
	assert.Zero(t, clone.Base().NumChildren())
	assert.Zero(t, clone.Base().NumComponents())
}

func TestCopyRecursiveReplacesContent(t *testing.T) {
	hero := heroWithWeapon(t)
	dst := scene.NewActor("dst")
	old := scene.NewActor("old")
	oldTag := components.NewTag("old")
	require.NoError(t, dst.AddChildren(old))
	require.NoError(t, dst.AddComponent(oldTag))

	got := dst.Copy(hero, true)
	assert.Same(t, dst, got)
	assert.True(t, old.IsDisposed())
	assert.True(t, oldTag.IsDisposed())
	assert.Equal(t, []string{"weapon"}, names(dst.Children()))
	assert.False(t, dst.HasComponent(components.TagTag))
	assert.True(t, dst.HasComponent(components.TransformTag))
}

func TestCopyDropsRejectedComponents(t *testing.T) {
	hero := heroWithWeapon(t)
	w := scene.NewWorld("w")
	w.Copy(hero, true)

	assert.Equal(t, "hero", w.Name())
	assert.Zero(t, w.NumComponents())
	assert.Equal(t, 1, w.NumChildren())
}

func TestCloneStageAndWorld(t *testing.T) {
	w, a, b := buildWorld(t)
	require.True(t, w.SetActiveStage(b))
	a.SetEnabled(false)

	clone, ok := w.Clone(true).(*scene.World)
	require.True(t, ok)
	assert.Equal(t, w.LoadPositions, clone.LoadPositions)
	assert.Equal(t, w.LoadDistance, clone.LoadDistance)
	assert.Equal(t, []string{"A", "B"}, names(clone.Stages()))

	active := clone.ActiveStage()
	assert.Equal(t, "B", active.Base().Name())
	assert.NotEqual(t, b.ID(), active.Base().ID())

	sb := active.(*scene.Stage)
	assert.Equal(t, 10.0, sb.Start)
	assert.Equal(t, 20.0, sb.Finish)
	assert.Equal(t, b.EndPosition, sb.EndPosition)
	assert.False(t, clone.Stages()[0].Base().Enabled())

	// load positions are not shared
	clone.LoadPositions[0].X = 99
	assert.Equal(t, 1.0, w.LoadPositions[0].X)
}

func TestCopyFromOwnDescendant(t *testing.T) {
	root := scene.NewActor("root")
	child := heroWithWeapon(t)
	require.NoError(t, root.AddChildren(child))

	root.Copy(child, true)
	assert.Equal(t, "hero", root.Name())
	assert.Equal(t, []string{"weapon"}, names(root.Children()))
	assert.True(t, root.HasComponent(components.TransformTag))
	assert.True(t, child.IsDisposed())
}
