package scene

import "fmt"

// Reserved record keys. Variant fields must not use them.
const (
	KeyType       = "type"
	KeyID         = "id"
	KeyName       = "name"
	KeyComponents = "components"
	KeyChildren   = "children"
)

// Record is the persisted shape of a node:
//
//	{type, id, name, <variant fields>, components: [...], children: [...]}
//
// Fields carries the flat variant values (enabled, locked, start, ...).
type Record struct {
	Type       string
	ID         string
	Name       string
	Fields     Fields
	Components []ComponentRecord
	Children   []Record
}

// ComponentRecord is the persisted shape of a component: {type, <fields>}.
type ComponentRecord struct {
	Type   string
	Fields Fields
}

// Map flattens r into the nested generic structure handed to wire encoders.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.Fields)+5)
	for k, v := range r.Fields {
		m[k] = v
	}
	m[KeyType] = r.Type
	if r.ID != "" {
		m[KeyID] = r.ID
	}
	if r.Name != "" {
		m[KeyName] = r.Name
	}
	if len(r.Components) > 0 {
		list := make([]any, len(r.Components))
		for i, c := range r.Components {
			list[i] = c.Map()
		}
		m[KeyComponents] = list
	}
	if len(r.Children) > 0 {
		list := make([]any, len(r.Children))
		for i, c := range r.Children {
			list[i] = c.Map()
		}
		m[KeyChildren] = list
	}
	return m
}

func (c ComponentRecord) Map() map[string]any {
	m := make(map[string]any, len(c.Fields)+1)
	for k, v := range c.Fields {
		m[k] = v
	}
	m[KeyType] = c.Type
	return m
}

// RecordFromMap parses the generic structure produced by a wire decoder.
func RecordFromMap(m map[string]any) (Record, error) {
	var r Record
	typ, ok := m[KeyType].(string)
	if !ok || typ == "" {
		return r, fmt.Errorf("%w: missing %q", ErrInvalidRecord, KeyType)
	}
	r.Type = typ
	if raw, ok := m[KeyID]; ok {
		if r.ID, ok = raw.(string); !ok {
			return r, fmt.Errorf("%w: %q must be a string in %s record", ErrInvalidRecord, KeyID, typ)
		}
	}
	if raw, ok := m[KeyName]; ok {
		if r.Name, ok = raw.(string); !ok {
			return r, fmt.Errorf("%w: %q must be a string in %s record", ErrInvalidRecord, KeyName, typ)
		}
	}

	for k, v := range m {
		switch k {
		case KeyType, KeyID, KeyName, KeyComponents, KeyChildren:
			continue
		}
		if r.Fields == nil {
			r.Fields = make(Fields)
		}
		r.Fields[k] = v
	}

	comps, err := listOfMaps(m, KeyComponents)
	if err != nil {
		return r, err
	}
	for i, cm := range comps {
		ctyp, ok := cm[KeyType].(string)
		if !ok || ctyp == "" {
			return r, fmt.Errorf("%w: component %d of %s record has no %q", ErrInvalidRecord, i, typ, KeyType)
		}
		cr := ComponentRecord{Type: ctyp}
		for k, v := range cm {
			if k == KeyType {
				continue
			}
			if cr.Fields == nil {
				cr.Fields = make(Fields)
			}
			cr.Fields[k] = v
		}
		r.Components = append(r.Components, cr)
	}

	children, err := listOfMaps(m, KeyChildren)
	if err != nil {
		return r, err
	}
	for i, cm := range children {
		child, err := RecordFromMap(cm)
		if err != nil {
			return r, fmt.Errorf("child %d of %s record: %w", i, typ, err)
		}
		r.Children = append(r.Children, child)
	}
	return r, nil
}

func listOfMaps(m map[string]any, key string) ([]map[string]any, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list", ErrInvalidRecord, key)
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		im, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q entries must be objects, got %T", ErrInvalidRecord, key, item)
		}
		out = append(out, im)
	}
	return out, nil
}
