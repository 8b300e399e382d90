package scene

import (
	"fmt"

	"github.com/zeusync/scenegraph/internal/core/observability/log"
	"github.com/zeusync/scenegraph/pkg/encoding"
)

// Base record field keys.
const (
	FieldEnabled = "enabled"
	FieldLocked  = "locked"
)

// Encode captures the node, its components and its subtree as a Record.
func (e *Entity) Encode() Record {
	self := e.node()
	rec := Record{
		Type: self.TypeTag(),
		ID:   e.id,
		Name: e.name,
		Fields: Fields{
			FieldEnabled: e.enabled,
			FieldLocked:  e.locked,
		},
	}
	for _, c := range e.Components() {
		rec.Components = append(rec.Components, EncodeComponent(c))
	}
	for _, child := range e.children {
		rec.Children = append(rec.Children, child.Encode())
	}
	return rec
}

// Decode restores the base fields present in rec, then decodes components and
// children through d. Absent fields keep their current values.
func (e *Entity) Decode(d *Decoder, rec Record) error {
	if rec.ID != "" {
		e.id = d.ID(rec.ID)
	}
	if rec.Name != "" {
		e.name = rec.Name
	}
	if err := rec.Fields.Bool(FieldEnabled, &e.enabled); err != nil {
		return err
	}
	if err := rec.Fields.Bool(FieldLocked, &e.locked); err != nil {
		return err
	}
	if err := d.DecodeComponents(e.node(), rec.Components); err != nil {
		return err
	}
	return d.DecodeChildren(e.node(), rec.Children)
}

// DecodeMode selects how a Decoder reacts to records it cannot restore.
type DecodeMode uint8

const (
	// ModeStrict aborts the whole decode on the first failure.
	ModeStrict DecodeMode = iota
	// ModeLenient skips the failing node (with its subtree) or component and continues.
	ModeLenient
)

func (m DecodeMode) String() string {
	if m == ModeLenient {
		return "lenient"
	}
	return "strict"
}

// ParseDecodeMode accepts "strict" or "lenient".
func ParseDecodeMode(s string) (DecodeMode, error) {
	switch s {
	case "strict", "":
		return ModeStrict, nil
	case "lenient":
		return ModeLenient, nil
	default:
		return ModeStrict, fmt.Errorf("unknown decode mode %q", s)
	}
}

// Skipped describes a record dropped by a lenient decode.
type Skipped struct {
	Parent string // id of the node the record belonged to
	Type   string
	ID     string
	Err    error
}

type DecodeOption func(*Decoder)

// Strict selects ModeStrict, the default.
func Strict() DecodeOption { return func(d *Decoder) { d.mode = ModeStrict } }

// Lenient selects ModeLenient.
func Lenient() DecodeOption { return func(d *Decoder) { d.mode = ModeLenient } }

func WithMode(m DecodeMode) DecodeOption { return func(d *Decoder) { d.mode = m } }

// FreshIDs assigns new ids to every decoded node instead of the persisted ones.
// References between nodes are remapped through ResolveID.
func FreshIDs() DecodeOption { return func(d *Decoder) { d.freshIDs = true } }

func WithLogger(l log.Log) DecodeOption { return func(d *Decoder) { d.logger = l } }

// Decoder rebuilds node trees from records through a Registry. A Decoder holds
// per-decode state and must not be shared between goroutines.
type Decoder struct {
	registry *Registry
	mode     DecodeMode
	freshIDs bool
	logger   log.Log

	ids     map[string]string
	skipped []Skipped
}

// NewDecoder returns a decoder bound to r.
func (r *Registry) NewDecoder(opts ...DecodeOption) *Decoder {
	d := &Decoder{registry: r, ids: make(map[string]string)}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = r.log()
	}
	return d
}

func (d *Decoder) Mode() DecodeMode { return d.mode }

// Skipped lists the records a lenient decode dropped, in encounter order.
func (d *Decoder) Skipped() []Skipped { return append([]Skipped(nil), d.skipped...) }

// ID returns the id a decoded node gets for a persisted id and remembers the mapping.
func (d *Decoder) ID(recordID string) string {
	if !d.freshIDs {
		d.ids[recordID] = recordID
		return recordID
	}
	if id, ok := d.ids[recordID]; ok {
		return id
	}
	id := NewID()
	d.ids[recordID] = id
	return id
}

// ResolveID maps a persisted id to the id of the node decoded from it.
func (d *Decoder) ResolveID(recordID string) (string, bool) {
	id, ok := d.ids[recordID]
	return id, ok
}

// Decode builds the tree described by rec. An unknown root type is an error in
// both modes, since there is nothing left to return.
func (d *Decoder) Decode(rec Record) (Node, error) {
	n, err := d.registry.New(rec.Type)
	if err != nil {
		return nil, err
	}
	if err := n.Decode(d, rec); err != nil {
		n.Base().Dispose()
		return nil, fmt.Errorf("decode %s: %w", recordLabel(rec), err)
	}
	return n, nil
}

// DecodeChildren decodes recs and attaches them to parent in order.
func (d *Decoder) DecodeChildren(parent Node, recs []Record) error {
	pb := parent.Base()
	for _, rec := range recs {
		child, err := d.Decode(rec)
		if err == nil {
			if err = pb.AddChildren(child); err != nil {
				child.Base().Dispose()
			}
		}
		if err == nil {
			continue
		}
		if d.mode == ModeStrict {
			return err
		}
		d.skip(pb, rec.Type, rec.ID, err)
	}
	return nil
}

// DecodeComponents instantiates recs through the registry and attaches them to owner.
func (d *Decoder) DecodeComponents(owner Node, recs []ComponentRecord) error {
	ob := owner.Base()
	for _, rec := range recs {
		err := d.decodeComponent(ob, rec)
		if err == nil {
			continue
		}
		if d.mode == ModeStrict {
			return fmt.Errorf("component %q: %w", rec.Type, err)
		}
		d.skip(ob, rec.Type, "", err)
	}
	return nil
}

func (d *Decoder) decodeComponent(owner *Entity, rec ComponentRecord) error {
	c, err := d.registry.NewComponent(rec.Type)
	if err != nil {
		return err
	}
	if err := c.DecodeFields(rec.Fields); err != nil {
		return err
	}
	return owner.AddComponent(c)
}

func (d *Decoder) skip(parent *Entity, typ, id string, err error) {
	d.skipped = append(d.skipped, Skipped{Parent: parent.id, Type: typ, ID: id, Err: err})
	d.logger.Warn("skipping record",
		log.String("parent", parent.id),
		log.String("type", typ),
		log.String("id", id),
		log.Error(err),
	)
}

// Unmarshal parses data in format f and decodes the resulting record.
func (d *Decoder) Unmarshal(f encoding.Format, data []byte) (Node, error) {
	var m map[string]any
	if err := encoding.Unmarshal(f, data, &m); err != nil {
		return nil, err
	}
	rec, err := RecordFromMap(m)
	if err != nil {
		return nil, err
	}
	return d.Decode(rec)
}

// Marshal encodes n in format f.
func Marshal(f encoding.Format, n Node) ([]byte, error) {
	return encoding.Marshal(f, n.Encode().Map())
}

// Unmarshal decodes data with the default registry.
func Unmarshal(f encoding.Format, data []byte, opts ...DecodeOption) (Node, error) {
	return DefaultRegistry().NewDecoder(opts...).Unmarshal(f, data)
}

// Fingerprint hashes the encoded form of n, ids included.
func Fingerprint(n Node) (uint64, error) {
	return encoding.Fingerprint(n.Encode().Map())
}

func recordLabel(rec Record) string {
	switch {
	case rec.Name != "":
		return fmt.Sprintf("%s %q", rec.Type, rec.Name)
	case rec.ID != "":
		return fmt.Sprintf("%s(%s)", rec.Type, rec.ID)
	default:
		return rec.Type
	}
}
