package scene

// StageTag is the type tag of Stage.
const StageTag = "stage"

// Stage record field keys.
const (
	FieldStart         = "start"
	FieldFinish        = "finish"
	FieldBeginPosition = "begin_position"
	FieldEndPosition   = "end_position"
)

// Stage is a bounded partition of a World along an external progression axis,
// with spatial anchors for entering and leaving it. Stage only stores its
// range; activation is decided by the owning World. The base enabled flag
// says whether the stage takes part in active-stage selection.
type Stage struct {
	Entity

	Start         float64
	Finish        float64
	BeginPosition Vec3
	EndPosition   Vec3
}

func NewStage(name string, start, finish float64) *Stage {
	s := &Stage{Start: start, Finish: finish}
	s.Init(s, name)
	return s
}

func (s *Stage) AsStage() *Stage { return s }

func (s *Stage) TypeTag() string { return StageTag }

func (s *Stage) ComponentFamily() FamilySet {
	return Families(FamilyStage, FamilyGameplay)
}

// Contains reports whether progress falls in [Start, Finish).
func (s *Stage) Contains(progress float64) bool {
	return progress >= s.Start && progress < s.Finish
}

func (s *Stage) Length() float64 { return s.Finish - s.Start }

func (s *Stage) Encode() Record {
	rec := s.Entity.Encode()
	rec.Fields[FieldStart] = s.Start
	rec.Fields[FieldFinish] = s.Finish
	rec.Fields.SetVec3(FieldBeginPosition, s.BeginPosition)
	rec.Fields.SetVec3(FieldEndPosition, s.EndPosition)
	return rec
}

func (s *Stage) Decode(d *Decoder, rec Record) error {
	if err := s.Entity.Decode(d, rec); err != nil {
		return err
	}
	f := rec.Fields
	if err := f.Float(FieldStart, &s.Start); err != nil {
		return err
	}
	if err := f.Float(FieldFinish, &s.Finish); err != nil {
		return err
	}
	if err := f.Vec3(FieldBeginPosition, &s.BeginPosition); err != nil {
		return err
	}
	return f.Vec3(FieldEndPosition, &s.EndPosition)
}

func (s *Stage) Copy(src Node, recursive bool, opts ...CopyOption) Node {
	s.Entity.copyFrom(src, recursive, opts)
	if other, ok := asStage(src); ok {
		s.Start, s.Finish = other.Start, other.Finish
		s.BeginPosition, s.EndPosition = other.BeginPosition, other.EndPosition
	}
	return s
}

func (s *Stage) Clone(recursive bool, opts ...CopyOption) Node {
	return NewStage("", 0, 0).Copy(s, recursive, opts...)
}

// asStage recognises Stage and any variant embedding it.
func asStage(n Node) (*Stage, bool) {
	sn, ok := n.(interface{ AsStage() *Stage })
	if !ok {
		return nil, false
	}
	return sn.AsStage(), true
}
