package plist

import (
	"testing"

	"github.com/mozharovsky/xcode/types"
)

func TestBuildCommentIndexDefaultName(t *testing.T) {
	objects := types.NewOrderedMap()
	fileRef := types.NewOrderedMap()
	fileRef.Set("isa", types.String("PBXFileReference"))
	fileRef.Set("path", types.String("AppDelegate.swift"))
	objects.Set("FILEUUID0000000000000001", types.Object(fileRef))

	idx := BuildCommentIndex(objects)
	if got := idx["FILEUUID0000000000000001"]; got != "AppDelegate.swift" {
		t.Errorf("got %q, want %q", got, "AppDelegate.swift")
	}
}

func TestBuildCommentIndexProjectObject(t *testing.T) {
	objects := types.NewOrderedMap()
	proj := types.NewOrderedMap()
	proj.Set("isa", types.String("PBXProject"))
	objects.Set("PROJUUID0000000000000001", types.Object(proj))

	idx := BuildCommentIndex(objects)
	if got := idx["PROJUUID0000000000000001"]; got != "Project object" {
		t.Errorf("got %q, want %q", got, "Project object")
	}
}

func TestBuildCommentIndexBuildFileComposesFileInPhase(t *testing.T) {
	objects := types.NewOrderedMap()

	fileRef := types.NewOrderedMap()
	fileRef.Set("isa", types.String("PBXFileReference"))
	fileRef.Set("path", types.String("main.swift"))
	objects.Set("FILEUUID0000000000000001", types.Object(fileRef))

	phase := types.NewOrderedMap()
	phase.Set("isa", types.String("PBXSourcesBuildPhase"))
	phase.Set("files", types.Array([]types.PlistValue{types.String("BUILDFILEUUID000000000001")}))
	objects.Set("PHASEUUID0000000000000001", types.Object(phase))

	buildFile := types.NewOrderedMap()
	buildFile.Set("isa", types.String("PBXBuildFile"))
	buildFile.Set("fileRef", types.String("FILEUUID0000000000000001"))
	objects.Set("BUILDFILEUUID000000000001", types.Object(buildFile))

	idx := BuildCommentIndex(objects)
	want := "main.swift in Sources"
	if got := idx["BUILDFILEUUID000000000001"]; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildCommentIndexBuildFileMissingRefIsNull(t *testing.T) {
	objects := types.NewOrderedMap()
	buildFile := types.NewOrderedMap()
	buildFile.Set("isa", types.String("PBXBuildFile"))
	objects.Set("BUILDFILEUUID000000000001", types.Object(buildFile))

	idx := BuildCommentIndex(objects)
	if got := idx["BUILDFILEUUID000000000001"]; got != "(null) in [missing build phase]" {
		t.Errorf("got %q", got)
	}
}

func TestBuildCommentIndexConfigurationListFallsBackToTargetName(t *testing.T) {
	objects := types.NewOrderedMap()

	list := types.NewOrderedMap()
	list.Set("isa", types.String("XCConfigurationList"))
	objects.Set("LISTUUID0000000000000001", types.Object(list))

	target := types.NewOrderedMap()
	target.Set("isa", types.String("PBXNativeTarget"))
	target.Set("name", types.String("MyApp"))
	target.Set("buildConfigurationList", types.String("LISTUUID0000000000000001"))
	objects.Set("TARGETUUID0000000000001", types.Object(target))

	idx := BuildCommentIndex(objects)
	want := `Build configuration list for PBXNativeTarget "MyApp"`
	if got := idx["LISTUUID0000000000000001"]; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildCommentIndexConfigurationListUnknownReferrer(t *testing.T) {
	objects := types.NewOrderedMap()
	list := types.NewOrderedMap()
	list.Set("isa", types.String("XCConfigurationList"))
	objects.Set("LISTUUID0000000000000001", types.Object(list))

	idx := BuildCommentIndex(objects)
	if got := idx["LISTUUID0000000000000001"]; got != "Build configuration list for [unknown]" {
		t.Errorf("got %q", got)
	}
}

func TestBuildCommentIndexRemotePackageRepoName(t *testing.T) {
	objects := types.NewOrderedMap()
	pkg := types.NewOrderedMap()
	pkg.Set("isa", types.String("XCRemoteSwiftPackageReference"))
	pkg.Set("repositoryURL", types.String("https://github.com/apple/swift-log.git"))
	objects.Set("PKGUUID00000000000000001", types.Object(pkg))

	idx := BuildCommentIndex(objects)
	want := `XCRemoteSwiftPackageReference "swift-log"`
	if got := idx["PKGUUID00000000000000001"]; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildCommentIndexGroupWithoutNameOrPathIsUnannotated(t *testing.T) {
	objects := types.NewOrderedMap()
	group := types.NewOrderedMap()
	group.Set("isa", types.String("PBXGroup"))
	objects.Set("GROUPUUID0000000000000001", types.Object(group))

	idx := BuildCommentIndex(objects)
	if got := idx["GROUPUUID0000000000000001"]; got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
