package xcode

import "testing"

const pathsProject = `{
	archiveVersion = 1;
	objectVersion = 46;
	objects = {
		FILEUUID0000000000000001 = {
			isa = PBXFileReference;
			path = App.swift;
			sourceTree = "<group>";
		};
		GROUPUUID0000000000000001 = {
			isa = PBXGroup;
			path = Sources;
			sourceTree = "<group>";
			children = (
				FILEUUID0000000000000001,
			);
		};
		ABSFILEUUID000000000001 = {
			isa = PBXFileReference;
			path = "/usr/lib/libz.dylib";
			sourceTree = "<absolute>";
		};
		PROJECTUUID00000000000001 = {
			isa = PBXProject;
			mainGroup = GROUPUUID0000000000000001;
			projectDirPath = "";
			targets = (
			);
		};
	};
	rootObject = PROJECTUUID00000000000001;
}`

func TestGetRealPathResolvesThroughGroupChain(t *testing.T) {
	proj, err := ProjectFromText(pathsProject)
	if err != nil {
		t.Fatal(err)
	}
	file, ok := proj.GetObject("FILEUUID0000000000000001")
	if !ok {
		t.Fatal("missing file")
	}
	got, ok := proj.GetRealPath(file)
	if !ok {
		t.Fatal("expected a resolvable path")
	}
	want := "Sources/App.swift"
	if got != want {
		t.Errorf("GetRealPath() = %q, want %q", got, want)
	}
}

func TestGetRealPathAbsoluteSourceTreeIgnoresGroupChain(t *testing.T) {
	proj, err := ProjectFromText(pathsProject)
	if err != nil {
		t.Fatal(err)
	}
	file, ok := proj.GetObject("ABSFILEUUID000000000001")
	if !ok {
		t.Fatal("missing file")
	}
	got, ok := proj.GetRealPath(file)
	if !ok {
		t.Fatal("expected a resolvable path")
	}
	if got != "/usr/lib/libz.dylib" {
		t.Errorf("GetRealPath() = %q", got)
	}
}

func TestGetParentsReturnsAncestorChain(t *testing.T) {
	proj, err := ProjectFromText(pathsProject)
	if err != nil {
		t.Fatal(err)
	}
	file, ok := proj.GetObject("FILEUUID0000000000000001")
	if !ok {
		t.Fatal("missing file")
	}
	chain := proj.GetParents(file)
	if len(chain) != 1 || chain[0].UUID != "GROUPUUID0000000000000001" {
		t.Fatalf("GetParents() = %+v", chain)
	}
}

func TestGetFullPathResolvesThroughGroupChain(t *testing.T) {
	proj, err := ProjectFromText(pathsProject)
	if err != nil {
		t.Fatal(err)
	}
	file, ok := proj.GetObject("FILEUUID0000000000000001")
	if !ok {
		t.Fatal("missing file")
	}
	got, ok := proj.GetFullPath(file)
	if !ok {
		t.Fatal("expected a resolvable path")
	}
	want := "Sources/App.swift"
	if got != want {
		t.Errorf("GetFullPath() = %q, want %q", got, want)
	}
}

func TestGetResolvedRootPathIgnoresProjectDirPath(t *testing.T) {
	proj, err := ProjectFromText(pathsProject)
	if err != nil {
		t.Fatal(err)
	}
	group, ok := proj.GetObject("GROUPUUID0000000000000001")
	if !ok {
		t.Fatal("missing group")
	}
	root, ok := proj.RootObject()
	if !ok {
		t.Fatal("missing root object")
	}
	root.SetString("projectDirPath", "Sub")
	got, ok := proj.GetResolvedRootPath(group)
	if !ok {
		t.Fatal("expected a resolvable root")
	}
	if got != "" {
		t.Errorf("GetResolvedRootPath() = %q, want empty string even with projectDirPath set", got)
	}
}

func TestGetResolvedRootPathAbsoluteSourceTreeIsSlash(t *testing.T) {
	proj, err := ProjectFromText(pathsProject)
	if err != nil {
		t.Fatal(err)
	}
	file, ok := proj.GetObject("ABSFILEUUID000000000001")
	if !ok {
		t.Fatal("missing file")
	}
	root, ok := proj.GetResolvedRootPath(file)
	if !ok || root != "/" {
		t.Errorf("GetResolvedRootPath() = %q, %v, want \"/\"", root, ok)
	}
	full, ok := proj.GetFullPath(file)
	if !ok || full != "/usr/lib/libz.dylib" {
		t.Errorf("GetFullPath() = %q, %v, want \"/usr/lib/libz.dylib\"", full, ok)
	}
}

func TestGetParentsEmptyForMainGroup(t *testing.T) {
	proj, err := ProjectFromText(pathsProject)
	if err != nil {
		t.Fatal(err)
	}
	group, ok := proj.GetObject("GROUPUUID0000000000000001")
	if !ok {
		t.Fatal("missing group")
	}
	chain := proj.GetParents(group)
	if len(chain) != 0 {
		t.Errorf("GetParents(mainGroup) = %+v, want empty", chain)
	}
}
