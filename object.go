package xcode

import (
	"github.com/mozharovsky/xcode/types"
)

// PbxObject is the typed view of one entry in a project's objects table.
// Cross-object edges are never live pointers: every reference is a UUID
// string carried inside Props, and Props is the object's full body
// (including its own "isa" entry) so that a round trip through ToPlist
// reproduces the source exactly.
type PbxObject struct {
	UUID  string
	Props *types.OrderedMap
}

// NewPbxObject builds a PbxObject from a UUID and its property body,
// defaulting "isa" to "Unknown" if the body doesn't carry one.
func NewPbxObject(uuid string, props *types.OrderedMap) *PbxObject {
	if props == nil {
		props = types.NewOrderedMap()
	}
	if _, ok := props.Get("isa"); !ok {
		props.Set("isa", types.String("Unknown"))
	}
	return &PbxObject{UUID: uuid, Props: props}
}

// ISA returns the object's isa discriminator.
func (o *PbxObject) ISA() string {
	v, ok := o.Props.Get("isa")
	if !ok {
		return "Unknown"
	}
	s, _ := v.AsString()
	return s
}

// ToPlist returns the object's property body, unchanged, for writing.
func (o *PbxObject) ToPlist() *types.OrderedMap {
	return o.Props
}

// GetString reads a string-valued property.
func (o *PbxObject) GetString(key string) (string, bool) {
	v, ok := o.Props.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// GetInt reads an integer-valued property.
func (o *PbxObject) GetInt(key string) (int64, bool) {
	v, ok := o.Props.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsInteger()
}

// GetArray reads an array-valued property.
func (o *PbxObject) GetArray(key string) ([]types.PlistValue, bool) {
	v, ok := o.Props.Get(key)
	if !ok {
		return nil, false
	}
	return v.AsArray()
}

// GetObject reads an object-valued property.
func (o *PbxObject) GetObject(key string) (*types.OrderedMap, bool) {
	v, ok := o.Props.Get(key)
	if !ok {
		return nil, false
	}
	return v.AsObject()
}

// SetString sets a string-valued property.
func (o *PbxObject) SetString(key, value string) { o.Props.Set(key, types.String(value)) }

// SetInt sets an integer-valued property.
func (o *PbxObject) SetInt(key string, value int64) { o.Props.Set(key, types.Integer(value)) }

// Set sets an arbitrary property value.
func (o *PbxObject) Set(key string, value types.PlistValue) { o.Props.Set(key, value) }

// Remove deletes a property, preserving the order of the remaining keys.
func (o *PbxObject) Remove(key string) { o.Props.Delete(key) }

// IsReferencing reports whether uuid appears in any of o's reference-key
// properties, scalar or array element, by exact string equality.
func (o *PbxObject) IsReferencing(uuid string) bool {
	for _, key := range types.ReferenceKeys(o.ISA()) {
		v, ok := o.Props.Get(key)
		if !ok {
			continue
		}
		if s, ok := v.AsString(); ok && s == uuid {
			return true
		}
		if items, ok := v.AsArray(); ok {
			for _, item := range items {
				if s, ok := item.AsString(); ok && s == uuid {
					return true
				}
			}
		}
	}
	return false
}

// RemoveReference erases every occurrence of uuid from o's reference-key
// properties: a matching scalar is replaced with an empty string (the key
// is kept), a matching array element is dropped.
func (o *PbxObject) RemoveReference(uuid string) {
	for _, key := range types.ReferenceKeys(o.ISA()) {
		v, ok := o.Props.Get(key)
		if !ok {
			continue
		}
		if s, ok := v.AsString(); ok {
			if s == uuid {
				o.Props.Set(key, types.String(""))
			}
			continue
		}
		if items, ok := v.AsArray(); ok {
			filtered := make([]types.PlistValue, 0, len(items))
			for _, item := range items {
				if s, ok := item.AsString(); ok && s == uuid {
					continue
				}
				filtered = append(filtered, item)
			}
			o.Props.Set(key, types.Array(filtered))
		}
	}
}

// GetReferenceUUIDs returns the set of UUID-shaped strings found across
// every reference-key property, deduplicated.
func (o *PbxObject) GetReferenceUUIDs() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		if s == "" {
			return
		}
		if !types.LooksLikeUUID(s) {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, key := range types.ReferenceKeys(o.ISA()) {
		v, ok := o.Props.Get(key)
		if !ok {
			continue
		}
		if s, ok := v.AsString(); ok {
			add(s)
			continue
		}
		if items, ok := v.AsArray(); ok {
			for _, item := range items {
				if s, ok := item.AsString(); ok {
					add(s)
				}
			}
		}
	}
	return out
}

// DisplayName returns the object's name, productName, or path, in that
// priority order, falling back to its ISA.
func (o *PbxObject) DisplayName() string {
	for _, key := range []string{"name", "productName", "path"} {
		if s, ok := o.GetString(key); ok && s != "" {
			return s
		}
	}
	return o.ISA()
}
