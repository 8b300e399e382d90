package scene

// Vec3 is a spatial anchor. It is stored in records as a three element list.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func (v Vec3) value() []any { return []any{v.X, v.Y, v.Z} }

// Fields holds the flat, variant-specific values of a record.
//
// The read helpers implement the "if defined" merge: they leave dst untouched
// when the key is absent and fail with a *FieldError when the value has the
// wrong shape.
type Fields map[string]any

func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

func (f Fields) SetVec3(key string, v Vec3) {
	f[key] = v.value()
}

func (f Fields) SetVec3List(key string, vs []Vec3) {
	list := make([]any, len(vs))
	for i, v := range vs {
		list[i] = v.value()
	}
	f[key] = list
}

func (f Fields) Bool(key string, dst *bool) error {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	b, ok := raw.(bool)
	if !ok {
		return &FieldError{Key: key, Want: "bool", Got: raw}
	}
	*dst = b
	return nil
}

func (f Fields) Text(key string, dst *string) error {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return &FieldError{Key: key, Want: "string", Got: raw}
	}
	*dst = s
	return nil
}

func (f Fields) Float(key string, dst *float64) error {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	v, ok := toFloat(raw)
	if !ok {
		return &FieldError{Key: key, Want: "number", Got: raw}
	}
	*dst = v
	return nil
}

func (f Fields) Vec3(key string, dst *Vec3) error {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	v, ok := toVec3(raw)
	if !ok {
		return &FieldError{Key: key, Want: "[x, y, z]", Got: raw}
	}
	*dst = v
	return nil
}

func (f Fields) Vec3List(key string, dst *[]Vec3) error {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	if raw == nil {
		*dst = nil
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		return &FieldError{Key: key, Want: "list of [x, y, z]", Got: raw}
	}
	out := make([]Vec3, 0, len(list))
	for _, item := range list {
		v, ok := toVec3(item)
		if !ok {
			return &FieldError{Key: key, Want: "list of [x, y, z]", Got: item}
		}
		out = append(out, v)
	}
	*dst = out
	return nil
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	default:
		return 0, false
	}
}

func toVec3(raw any) (Vec3, bool) {
	var parts [3]float64
	switch v := raw.(type) {
	case []any:
		if len(v) != 3 {
			return Vec3{}, false
		}
		for i, p := range v {
			f, ok := toFloat(p)
			if !ok {
				return Vec3{}, false
			}
			parts[i] = f
		}
	case []float64:
		if len(v) != 3 {
			return Vec3{}, false
		}
		copy(parts[:], v)
	case Vec3:
		return v, true
	default:
		return Vec3{}, false
	}
	return Vec3{X: parts[0], Y: parts[1], Z: parts[2]}, true
}
