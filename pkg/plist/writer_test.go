package plist

import (
	"strings"
	"testing"

	"github.com/mozharovsky/xcode/types"
)

func TestBuildShebangAndTopLevelBraces(t *testing.T) {
	obj := types.NewOrderedMap()
	obj.Set("archiveVersion", types.Integer(1))
	out := Build(types.Object(obj), nil)
	if !strings.HasPrefix(out, "// !$*UTF8*$!\n") {
		t.Fatalf("missing shebang: %q", out)
	}
	if !strings.Contains(out, "archiveVersion = 1;") {
		t.Errorf("missing archiveVersion line, got %q", out)
	}
}

func TestBuildISASectionGroupingAndOrdering(t *testing.T) {
	objects := types.NewOrderedMap()

	fileRefB := types.NewOrderedMap()
	fileRefB.Set("isa", types.String("PBXFileReference"))
	fileRefB.Set("path", types.String("b.swift"))
	objects.Set("BBBBBBBBBBBBBBBBBBBBBBBB", types.Object(fileRefB))

	fileRefA := types.NewOrderedMap()
	fileRefA.Set("isa", types.String("PBXFileReference"))
	fileRefA.Set("path", types.String("a.swift"))
	objects.Set("AAAAAAAAAAAAAAAAAAAAAAAA", types.Object(fileRefA))

	group := types.NewOrderedMap()
	group.Set("isa", types.String("PBXGroup"))
	objects.Set("CCCCCCCCCCCCCCCCCCCCCCCC", types.Object(group))

	root := types.NewOrderedMap()
	root.Set("objects", types.Object(objects))
	out := Build(types.Object(root), nil)

	groupIdx := strings.Index(out, "Begin PBXGroup section")
	fileIdx := strings.Index(out, "Begin PBXFileReference section")
	if groupIdx == -1 || fileIdx == -1 {
		t.Fatalf("missing section markers: %q", out)
	}
	if fileIdx > groupIdx {
		t.Errorf("expected PBXFileReference section before PBXGroup (ASCII order), got reversed order")
	}

	aIdx := strings.Index(out, "AAAAAAAAAAAAAAAAAAAAAAAA")
	bIdx := strings.Index(out, "BBBBBBBBBBBBBBBBBBBBBBBB")
	if aIdx == -1 || bIdx == -1 || aIdx > bIdx {
		t.Errorf("expected ascending UUID order within section, got a=%d b=%d", aIdx, bIdx)
	}
}

func TestBuildInlinesFileReferenceAndBuildFile(t *testing.T) {
	objects := types.NewOrderedMap()
	fileRef := types.NewOrderedMap()
	fileRef.Set("isa", types.String("PBXFileReference"))
	fileRef.Set("path", types.String("main.swift"))
	objects.Set("AAAAAAAAAAAAAAAAAAAAAAAA", types.Object(fileRef))
	buildFile := types.NewOrderedMap()
	buildFile.Set("isa", types.String("PBXBuildFile"))
	buildFile.Set("fileRef", types.String("AAAAAAAAAAAAAAAAAAAAAAAA"))
	objects.Set("DDDDDDDDDDDDDDDDDDDDDDDD", types.Object(buildFile))

	root := types.NewOrderedMap()
	root.Set("objects", types.Object(objects))
	out := Build(types.Object(root), nil)

	if !strings.Contains(out, "DDDDDDDDDDDDDDDDDDDDDDDD = {isa = PBXBuildFile; fileRef = AAAAAAAAAAAAAAAAAAAAAAAA; };") {
		t.Errorf("expected inline form for PBXBuildFile, got %q", out)
	}
	if strings.Contains(out, "\t\tAAAAAAAAAAAAAAAAAAAAAAAA = {\n") {
		t.Errorf("expected inline single-line form for PBXFileReference, got multi-line: %q", out)
	}
	if !strings.Contains(out, "AAAAAAAAAAAAAAAAAAAAAAAA = {isa = PBXFileReference; path = main.swift; };") {
		t.Errorf("expected inline form, got %q", out)
	}
}

func TestBuildCommentAnnotation(t *testing.T) {
	objects := types.NewOrderedMap()
	target := types.NewOrderedMap()
	target.Set("isa", types.String("PBXNativeTarget"))
	objects.Set("TARGETUUID00000000000001", types.Object(target))

	root := types.NewOrderedMap()
	root.Set("rootObject", types.String("TARGETUUID00000000000001"))
	comments := map[string]string{"TARGETUUID00000000000001": "MyApp"}
	out := Build(types.Object(root), comments)
	if !strings.Contains(out, "TARGETUUID00000000000001 /* MyApp */") {
		t.Errorf("expected comment annotation, got %q", out)
	}
}

func TestKeyHasFloatValueMatchesUppercaseKeysOnly(t *testing.T) {
	if !keyHasFloatValue("SWIFT_VERSION") {
		t.Error("expected SWIFT_VERSION to match")
	}
	if !keyHasFloatValue("IPHONEOS_DEPLOYMENT_TARGET") {
		t.Error("expected *_DEPLOYMENT_TARGET to match")
	}
	if keyHasFloatValue("swift_version") {
		t.Error("lowercase key should not match")
	}
	if keyHasFloatValue("name") {
		t.Error("unrelated key should not match")
	}
}
