package xcode

import (
	"testing"

	"github.com/mozharovsky/xcode/types"
)

func newGroupObject(name string, children []string) *PbxObject {
	props := types.NewOrderedMap()
	props.Set("isa", types.String("PBXGroup"))
	if name != "" {
		props.Set("name", types.String(name))
	}
	items := make([]types.PlistValue, len(children))
	for i, c := range children {
		items[i] = types.String(c)
	}
	props.Set("children", types.Array(items))
	return NewPbxObject("GROUPUUID0000000000000001", props)
}

func TestPbxObjectISAAndDisplayName(t *testing.T) {
	obj := newGroupObject("Sources", nil)
	if obj.ISA() != "PBXGroup" {
		t.Errorf("ISA() = %q", obj.ISA())
	}
	if obj.DisplayName() != "Sources" {
		t.Errorf("DisplayName() = %q", obj.DisplayName())
	}
}

func TestPbxObjectDisplayNameFallsBackToISA(t *testing.T) {
	props := types.NewOrderedMap()
	props.Set("isa", types.String("PBXFileReference"))
	obj := NewPbxObject("FILEUUID0000000000000001", props)
	if obj.DisplayName() != "PBXFileReference" {
		t.Errorf("DisplayName() = %q", obj.DisplayName())
	}
}

func TestPbxObjectIsReferencing(t *testing.T) {
	obj := newGroupObject("Sources", []string{"CHILDUUID000000000000001", "CHILDUUID000000000000002"})
	if !obj.IsReferencing("CHILDUUID000000000000001") {
		t.Error("expected IsReferencing to find child in array")
	}
	if obj.IsReferencing("NOTPRESENT00000000000001") {
		t.Error("expected IsReferencing to return false for absent uuid")
	}
}

func TestPbxObjectRemoveReferenceDropsArrayElement(t *testing.T) {
	obj := newGroupObject("Sources", []string{"CHILDUUID000000000000001", "CHILDUUID000000000000002"})
	obj.RemoveReference("CHILDUUID000000000000001")
	items, _ := obj.GetArray("children")
	if len(items) != 1 {
		t.Fatalf("got %d children, want 1", len(items))
	}
	if s, _ := items[0].AsString(); s != "CHILDUUID000000000000002" {
		t.Errorf("remaining child = %q", s)
	}
}

func TestPbxObjectRemoveReferenceBlanksScalar(t *testing.T) {
	props := types.NewOrderedMap()
	props.Set("isa", types.String("PBXBuildFile"))
	props.Set("fileRef", types.String("FILEUUID0000000000000001"))
	obj := NewPbxObject("BUILDFILEUUID000000000001", props)

	obj.RemoveReference("FILEUUID0000000000000001")
	s, ok := obj.GetString("fileRef")
	if !ok || s != "" {
		t.Errorf("fileRef = %q, %v, want empty string kept", s, ok)
	}
}

func TestPbxObjectGetReferenceUUIDsDeduplicatesAndFiltersNonUUIDs(t *testing.T) {
	obj := newGroupObject("Sources", []string{
		"0123456789ABCDEF01234567",
		"0123456789ABCDEF01234567",
		"not-a-uuid",
	})
	refs := obj.GetReferenceUUIDs()
	if len(refs) != 1 || refs[0] != "0123456789ABCDEF01234567" {
		t.Errorf("GetReferenceUUIDs() = %v", refs)
	}
}

func TestPbxObjectSetAndRemove(t *testing.T) {
	obj := newGroupObject("Sources", nil)
	obj.SetString("path", "Sources")
	if s, ok := obj.GetString("path"); !ok || s != "Sources" {
		t.Fatalf("path = %q, %v", s, ok)
	}
	obj.Remove("path")
	if _, ok := obj.GetString("path"); ok {
		t.Error("expected path to be removed")
	}
}
