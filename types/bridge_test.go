package types

import (
	"reflect"
	"testing"
)

func TestToInterfaceScalarKinds(t *testing.T) {
	if got := ToInterface(String("hi")); got != "hi" {
		t.Errorf("String -> %v", got)
	}
	if got := ToInterface(Integer(42)); got != int64(42) {
		t.Errorf("Integer -> %v", got)
	}
	if got := ToInterface(Float(1.5)); got != 1.5 {
		t.Errorf("Float -> %v", got)
	}
}

func TestToInterfaceDataBecomesBufferEncoding(t *testing.T) {
	got := ToInterface(Data([]byte{0x01, 0x02}))
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", got)
	}
	if m["type"] != "Buffer" {
		t.Errorf("type = %v", m["type"])
	}
	data, ok := m["data"].([]any)
	if !ok || len(data) != 2 || data[0] != 1 || data[1] != 2 {
		t.Errorf("data = %v", m["data"])
	}
}

func TestToInterfaceArrayAndObject(t *testing.T) {
	obj := NewOrderedMap()
	obj.Set("x", Integer(1))
	got := ToInterface(Array([]PlistValue{String("a"), Object(obj)}))
	items, ok := got.([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("got %v", got)
	}
	if items[0] != "a" {
		t.Errorf("items[0] = %v", items[0])
	}
	inner, ok := items[1].(map[string]any)
	if !ok || inner["x"] != int64(1) {
		t.Errorf("items[1] = %v", items[1])
	}
}

func TestFromInterfaceBoolAndNil(t *testing.T) {
	if v := FromInterface(true); v.Kind() != KindString {
		t.Fatalf("expected String kind")
	} else if s, _ := v.AsString(); s != "YES" {
		t.Errorf("true -> %q, want YES", s)
	}
	if v := FromInterface(false); func() string { s, _ := v.AsString(); return s }() != "NO" {
		t.Error("false did not map to NO")
	}
	if v := FromInterface(nil); func() string { s, _ := v.AsString(); return s }() != "" {
		t.Error("nil did not map to empty string")
	}
}

func TestFromInterfaceRecognizesBufferEncoding(t *testing.T) {
	in := map[string]any{"type": "Buffer", "data": []any{1, 2, 3}}
	v := FromInterface(in)
	if !v.IsData() {
		t.Fatalf("expected Data kind, got %v", v.Kind())
	}
	b, _ := v.AsData()
	if !reflect.DeepEqual(b, []byte{1, 2, 3}) {
		t.Errorf("data = %v, want [1 2 3]", b)
	}
}

func TestFromInterfacePlainMapBecomesObject(t *testing.T) {
	in := map[string]any{"name": "App"}
	v := FromInterface(in)
	if !v.IsObject() {
		t.Fatalf("expected Object kind, got %v", v.Kind())
	}
	obj, _ := v.AsObject()
	name, ok := obj.Get("name")
	if !ok {
		t.Fatal("missing name key")
	}
	if s, _ := name.AsString(); s != "App" {
		t.Errorf("name = %q", s)
	}
}

func TestToFromInterfaceRoundTrip(t *testing.T) {
	obj := NewOrderedMap()
	obj.Set("name", String("App"))
	obj.Set("count", Integer(3))
	original := Object(obj)

	back := FromInterface(ToInterface(original))
	backObj, ok := back.AsObject()
	if !ok {
		t.Fatal("expected object after round trip")
	}
	name, _ := backObj.Get("name")
	if s, _ := name.AsString(); s != "App" {
		t.Errorf("name after round trip = %q", s)
	}
	count, _ := backObj.Get("count")
	if n, _ := count.AsInteger(); n != 3 {
		t.Errorf("count after round trip = %d", n)
	}
}
