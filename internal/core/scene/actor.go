package scene

// ActorTag is the type tag of Actor.
const ActorTag = "actor"

// Actor is a general-purpose scene object that hosts spatial, gameplay and
// render components.
type Actor struct {
	Entity
}

func NewActor(name string) *Actor {
	a := &Actor{}
	a.Init(a, name)
	return a
}

func (a *Actor) TypeTag() string { return ActorTag }

func (a *Actor) ComponentFamily() FamilySet {
	return Families(FamilySpatial, FamilyGameplay, FamilyRender)
}

func (a *Actor) Clone(recursive bool, opts ...CopyOption) Node {
	return NewActor("").Copy(a, recursive, opts...)
}
