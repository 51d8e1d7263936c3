package types

// ToInterface converts a PlistValue into a generic, JSON-marshalable form:
// Integer/Float become number types, String stays a string, Object becomes
// a map[string]any (a Go map, so the original key order is not kept),
// Array becomes a slice, and Data is
// encoded as {"type": "Buffer", "data": [...]} to match the host-interop
// convention used when exchanging project trees with non-Go callers.
func ToInterface(v PlistValue) any {
	switch v.Kind() {
	case KindString:
		s, _ := v.AsString()
		return s
	case KindInteger:
		n, _ := v.AsInteger()
		return n
	case KindFloat:
		f, _ := v.AsFloat()
		return f
	case KindData:
		b, _ := v.AsData()
		data := make([]any, len(b))
		for i, x := range b {
			data[i] = int(x)
		}
		return map[string]any{"type": "Buffer", "data": data}
	case KindArray:
		items, _ := v.AsArray()
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = ToInterface(it)
		}
		return out
	case KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]any, obj.Len())
		obj.Range(func(key string, value PlistValue) bool {
			out[key] = ToInterface(value)
			return true
		})
		return out
	default:
		return nil
	}
}

// FromInterface converts a generic host value back into a PlistValue.
// Booleans map to String("YES"/"NO"); nil maps to String(""); a map with
// exactly the two keys "type"=="Buffer" and "data" (an array of integers)
// is recognized as the Data encoding rather than treated as a nested
// Object.
func FromInterface(v any) PlistValue {
	switch x := v.(type) {
	case nil:
		return String("")
	case bool:
		if x {
			return String("YES")
		}
		return String("NO")
	case string:
		return String(x)
	case int:
		return Integer(int64(x))
	case int64:
		return Integer(x)
	case float64:
		return Float(x)
	case []any:
		items := make([]PlistValue, len(x))
		for i, it := range x {
			items[i] = FromInterface(it)
		}
		return Array(items)
	case map[string]any:
		if bytes, ok := asBufferEncoding(x); ok {
			return Data(bytes)
		}
		m := NewOrderedMap()
		for k, val := range x {
			m.Set(k, FromInterface(val))
		}
		return Object(m)
	default:
		return String("")
	}
}

func asBufferEncoding(m map[string]any) ([]byte, bool) {
	if len(m) != 2 {
		return nil, false
	}
	typ, ok := m["type"].(string)
	if !ok || typ != "Buffer" {
		return nil, false
	}
	raw, ok := m["data"].([]any)
	if !ok {
		return nil, false
	}
	out := make([]byte, 0, len(raw))
	for _, elem := range raw {
		switch n := elem.(type) {
		case int:
			out = append(out, byte(n))
		case int64:
			out = append(out, byte(n))
		case float64:
			out = append(out, byte(int64(n)))
		default:
			return nil, false
		}
	}
	return out, true
}
