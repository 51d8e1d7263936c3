// Package xcode parses, queries, and rewrites Xcode project.pbxproj files
// (the Old-Style Property List dialect Xcode itself writes) without
// losing byte-for-byte fidelity for parts of the document an edit never
// touches.
package xcode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mozharovsky/xcode/pkg/plist"
	"github.com/mozharovsky/xcode/types"
)

// XcodeProject is the in-memory, mutable view of a project.pbxproj
// document: a flat UUID-keyed table of typed objects plus the small set
// of top-level fields Xcode wraps around it.
type XcodeProject struct {
	ArchiveVersion int64
	ObjectVersion  int64
	Classes        *types.OrderedMap
	RootObjectUUID string
	Objects        *types.OrderedMap // uuid -> Object(props)
	FilePath       string            // empty if not loaded from disk
}

// ProjectFromText parses raw Old-Style Plist text and builds the typed
// project view.
func ProjectFromText(text string) (*XcodeProject, error) {
	root, err := plist.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("xcode: parse project: %w", err)
	}
	return projectFromValue(root, "")
}

// LoadProject reads and parses a project.pbxproj file from disk.
func LoadProject(path string) (*XcodeProject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("xcode: read project: %w", err)
	}
	root, err := plist.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("xcode: parse project %s: %w", path, err)
	}
	return projectFromValue(root, path)
}

func projectFromValue(root types.PlistValue, path string) (*XcodeProject, error) {
	obj, ok := root.AsObject()
	if !ok {
		return nil, fmt.Errorf("xcode: root value is not an object")
	}

	archiveVersion := int64(types.LastKnownArchiveVersion)
	if v, ok := obj.Get("archiveVersion"); ok {
		if n, ok := v.AsInteger(); ok {
			archiveVersion = n
		}
	}
	objectVersion := int64(types.DefaultObjectVersion)
	if v, ok := obj.Get("objectVersion"); ok {
		if n, ok := v.AsInteger(); ok {
			objectVersion = n
		}
	}
	classes := types.NewOrderedMap()
	if v, ok := obj.Get("classes"); ok {
		if m, ok := v.AsObject(); ok {
			classes = m
		}
	}
	rootObjVal, ok := obj.Get("rootObject")
	if !ok {
		return nil, fmt.Errorf("xcode: missing rootObject")
	}
	rootUUID, _ := rootObjVal.AsString()

	objectsVal, ok := obj.Get("objects")
	if !ok {
		return nil, fmt.Errorf("xcode: missing objects")
	}
	objects, ok := objectsVal.AsObject()
	if !ok {
		return nil, fmt.Errorf("xcode: objects is not an object")
	}

	rootEntry, ok := objects.Get(rootUUID)
	if !ok {
		return nil, fmt.Errorf("xcode: root object %q not found in objects", rootUUID)
	}
	rootObjBody, _ := rootEntry.AsObject()
	isaVal, _ := rootObjBody.Get("isa")
	isa, _ := isaVal.AsString()
	if isa != string(types.ISAProject) {
		return nil, fmt.Errorf("xcode: root object %q is not a PBXProject (isa: %s)", rootUUID, isa)
	}

	return &XcodeProject{
		ArchiveVersion: archiveVersion,
		ObjectVersion:  objectVersion,
		Classes:        classes,
		RootObjectUUID: rootUUID,
		Objects:        objects,
		FilePath:       path,
	}, nil
}

// ToPlist reconstructs the top-level document value with the canonical
// key order: archiveVersion, classes, objectVersion, objects, rootObject.
func (p *XcodeProject) ToPlist() types.PlistValue {
	m := types.NewOrderedMap()
	m.Set("archiveVersion", types.Integer(p.ArchiveVersion))
	m.Set("classes", types.Object(p.Classes))
	m.Set("objectVersion", types.Integer(p.ObjectVersion))
	m.Set("objects", types.Object(p.Objects))
	m.Set("rootObject", types.String(p.RootObjectUUID))
	return types.Object(m)
}

// Build serializes the project to canonical Old-Style Plist text.
func (p *XcodeProject) Build() string {
	comments := plist.BuildCommentIndex(p.Objects)
	return plist.Build(p.ToPlist(), comments)
}

// Save writes the canonical serialization to path (or p.FilePath if path
// is empty), UTF-8, no BOM.
func (p *XcodeProject) Save(path string) error {
	if path == "" {
		path = p.FilePath
	}
	if path == "" {
		return fmt.Errorf("xcode: no path to save to")
	}
	if err := os.WriteFile(path, []byte(p.Build()), 0o644); err != nil {
		return fmt.Errorf("xcode: save project: %w", err)
	}
	return nil
}

// GetProjectRoot returns the directory containing the .xcodeproj bundle
// (two levels up from the project.pbxproj file), when the project was
// loaded from disk.
func (p *XcodeProject) GetProjectRoot() (string, bool) {
	if p.FilePath == "" {
		return "", false
	}
	return filepath.Dir(filepath.Dir(p.FilePath)), true
}

// GetObject returns the typed object for uuid.
func (p *XcodeProject) GetObject(uuid string) (*PbxObject, bool) {
	v, ok := p.Objects.Get(uuid)
	if !ok {
		return nil, false
	}
	obj, ok := v.AsObject()
	if !ok {
		return nil, false
	}
	return &PbxObject{UUID: uuid, Props: obj}, true
}

// RootObject returns the project's root PBXProject object.
func (p *XcodeProject) RootObject() (*PbxObject, bool) {
	return p.GetObject(p.RootObjectUUID)
}

// ObjectsByISA returns every object whose isa equals isa, in table order.
func (p *XcodeProject) ObjectsByISA(isa string) []*PbxObject {
	var out []*PbxObject
	p.Objects.Range(func(uuid string, value types.PlistValue) bool {
		obj, ok := value.AsObject()
		if !ok {
			return true
		}
		isaVal, _ := obj.Get("isa")
		if s, _ := isaVal.AsString(); s == isa {
			out = append(out, &PbxObject{UUID: uuid, Props: obj})
		}
		return true
	})
	return out
}

// FindObjectsByISA is ObjectsByISA, returning UUIDs only.
func (p *XcodeProject) FindObjectsByISA(isa string) []string {
	objs := p.ObjectsByISA(isa)
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.UUID
	}
	return out
}

// NativeTargets returns every PBXNativeTarget object.
func (p *XcodeProject) NativeTargets() []*PbxObject {
	return p.ObjectsByISA(string(types.ISANativeTarget))
}

// GetReferrers returns every object that references uuid through one of
// its ISA's reference-key properties.
func (p *XcodeProject) GetReferrers(uuid string) []*PbxObject {
	var out []*PbxObject
	p.Objects.Range(func(id string, value types.PlistValue) bool {
		obj, ok := value.AsObject()
		if !ok {
			return true
		}
		candidate := &PbxObject{UUID: id, Props: obj}
		if candidate.IsReferencing(uuid) {
			out = append(out, candidate)
		}
		return true
	})
	return out
}

// TargetUUIDs returns the root PBXProject's targets array, in order.
func (p *XcodeProject) TargetUUIDs() []string {
	root, ok := p.RootObject()
	if !ok {
		return nil
	}
	items, _ := root.GetArray("targets")
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.AsString(); ok {
			out = append(out, s)
		}
	}
	return out
}

// MainGroupUUID returns the root PBXProject's mainGroup UUID.
func (p *XcodeProject) MainGroupUUID() (string, bool) {
	root, ok := p.RootObject()
	if !ok {
		return "", false
	}
	return root.GetString("mainGroup")
}

// ProductRefGroupUUID returns the root PBXProject's productRefGroup UUID.
func (p *XcodeProject) ProductRefGroupUUID() (string, bool) {
	root, ok := p.RootObject()
	if !ok {
		return "", false
	}
	return root.GetString("productRefGroup")
}

// BuildConfigurationListUUID returns the root PBXProject's
// buildConfigurationList UUID.
func (p *XcodeProject) BuildConfigurationListUUID() (string, bool) {
	root, ok := p.RootObject()
	if !ok {
		return "", false
	}
	return root.GetString("buildConfigurationList")
}

// existingUUIDs snapshots the current object table's keys for collision
// checking during UUID minting.
func (p *XcodeProject) existingUUIDs() map[string]struct{} {
	out := make(map[string]struct{}, p.Objects.Len())
	for _, k := range p.Objects.Keys() {
		out[k] = struct{}{}
	}
	return out
}

// CreateObject mints a new UUID (deterministically seeded from the JSON
// encoding of props, with object keys in sorted order), inserts the
// object, and returns its UUID.
func (p *XcodeProject) CreateObject(props *types.OrderedMap) string {
	seed := jsonSeed(props)
	uuid := GenerateUUID(seed, p.existingUUIDs())
	p.Objects.Set(uuid, types.Object(props))
	return uuid
}

func jsonSeed(props *types.OrderedMap) string {
	m := make(map[string]any, props.Len())
	props.Range(func(key string, value types.PlistValue) bool {
		m[key] = types.ToInterface(value)
		return true
	})
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

// DeleteObject removes uuid's entry only; it does not scan for or clear
// dangling references, which may leave orphans (see FindOrphanedReferences).
func (p *XcodeProject) DeleteObject(uuid string) {
	p.Objects.Delete(uuid)
}

// RemoveObject deletes uuid's entry and then scans every remaining object,
// clearing any reference to uuid it finds (cascading delete).
func (p *XcodeProject) RemoveObject(uuid string) {
	p.Objects.Delete(uuid)
	p.Objects.Range(func(id string, value types.PlistValue) bool {
		obj, ok := value.AsObject()
		if !ok {
			return true
		}
		(&PbxObject{UUID: id, Props: obj}).RemoveReference(uuid)
		return true
	})
}

// OrphanedReference records a reference-key property that points at a
// UUID no longer present in the objects table.
type OrphanedReference struct {
	ReferrerUUID string
	ReferrerISA  string
	Property     string
	OrphanUUID   string
}

// FindOrphanedReferences scans every object's reference-key properties
// for UUID values that no longer resolve to an entry in the objects
// table.
func (p *XcodeProject) FindOrphanedReferences() []OrphanedReference {
	var out []OrphanedReference
	p.Objects.Range(func(uuid string, value types.PlistValue) bool {
		obj, ok := value.AsObject()
		if !ok {
			return true
		}
		isaVal, _ := obj.Get("isa")
		isa, _ := isaVal.AsString()
		for _, key := range types.ReferenceKeys(isa) {
			v, ok := obj.Get(key)
			if !ok {
				continue
			}
			checkRef := func(ref string) {
				if ref == "" {
					return
				}
				if _, found := p.Objects.Get(ref); !found {
					out = append(out, OrphanedReference{
						ReferrerUUID: uuid,
						ReferrerISA:  isa,
						Property:     key,
						OrphanUUID:   ref,
					})
				}
			}
			if s, ok := v.AsString(); ok {
				checkRef(s)
				continue
			}
			if items, ok := v.AsArray(); ok {
				for _, item := range items {
					if s, ok := item.AsString(); ok {
						checkRef(s)
					}
				}
			}
		}
		return true
	})
	return out
}

// GetObjectProperty reads an arbitrary property off any object by UUID.
func (p *XcodeProject) GetObjectProperty(uuid, key string) (types.PlistValue, bool) {
	obj, ok := p.GetObject(uuid)
	if !ok {
		return types.PlistValue{}, false
	}
	return obj.Props.Get(key)
}

// SetObjectProperty writes an arbitrary property on any object by UUID.
// It returns false if uuid does not resolve.
func (p *XcodeProject) SetObjectProperty(uuid, key string, value types.PlistValue) bool {
	obj, ok := p.GetObject(uuid)
	if !ok {
		return false
	}
	obj.Set(key, value)
	return true
}
