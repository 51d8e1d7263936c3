package xcode

import (
	"path"

	"github.com/mozharovsky/xcode/types"
)

// GetSourceTreeRealPath resolves an object's sourceTree to an absolute
// filesystem-ish base path: "<group>" walks up to the nearest referencing
// group or the project, "SOURCE_ROOT" resolves to the project root,
// "<absolute>" resolves to the empty string, and any other value (e.g.
// "SDKROOT", "BUILT_PRODUCTS_DIR") is returned verbatim.
func (p *XcodeProject) GetSourceTreeRealPath(obj *PbxObject) string {
	sourceTree, _ := obj.GetString("sourceTree")
	switch sourceTree {
	case "<group>":
		parent, ok := p.getParent(obj.UUID)
		if !ok {
			return ""
		}
		if parent.ISA() == string(types.ISAProject) {
			root, _ := p.GetProjectRoot()
			dirPath, _ := parent.GetString("projectDirPath")
			return path.Join(root, dirPath)
		}
		base := p.GetSourceTreeRealPath(parent)
		parentPath, _ := parent.GetString("path")
		if base == "" {
			return parentPath
		}
		if parentPath == "" {
			return base
		}
		return path.Join(base, parentPath)
	case "SOURCE_ROOT":
		root, _ := p.GetProjectRoot()
		return root
	case "<absolute>":
		return ""
	default:
		return sourceTree
	}
}

// GetRealPath joins an object's sourceTree-resolved base with its own
// "path" property. The second result is false when there is no path to
// report.
func (p *XcodeProject) GetRealPath(obj *PbxObject) (string, bool) {
	objPath, hasPath := obj.GetString("path")
	base := p.GetSourceTreeRealPath(obj)
	if !hasPath && base == "" {
		return "", false
	}
	if base == "" {
		return objPath, objPath != ""
	}
	if objPath == "" {
		return base, true
	}
	return path.Join(base, objPath), true
}

// GetFullPath joins an object's project-relative resolved root with its own
// "path" property. Unlike GetRealPath, the root never bottoms out at the
// filesystem project root: a "<group>" chain that reaches PBXProject or a
// "SOURCE_ROOT" sourceTree both resolve to "", so the result is a path
// relative to the project directory rather than an absolute filesystem path.
func (p *XcodeProject) GetFullPath(obj *PbxObject) (string, bool) {
	objPath, _ := obj.GetString("path")
	root, hasRoot := p.GetResolvedRootPath(obj)
	if !hasRoot {
		return objPath, objPath != ""
	}
	if objPath == "" {
		return root, true
	}
	if root == "" {
		return objPath, true
	}
	return path.Join(root, objPath), true
}

// GetResolvedRootPath resolves an object's sourceTree to a project-relative
// base path: "<group>" walks up to the nearest referencing group, bottoming
// out at "" once it reaches the project itself (projectDirPath is ignored
// here, unlike GetSourceTreeRealPath); "SOURCE_ROOT" resolves to ""; and
// "<absolute>" resolves to "/". Any other value is returned verbatim.
func (p *XcodeProject) GetResolvedRootPath(obj *PbxObject) (string, bool) {
	sourceTree, ok := obj.GetString("sourceTree")
	if !ok {
		return "", false
	}
	switch sourceTree {
	case "<group>":
		parent, ok := p.getParent(obj.UUID)
		if !ok {
			return "", false
		}
		if parent.ISA() == string(types.ISAProject) {
			return "", true
		}
		return p.GetFullPath(parent)
	case "SOURCE_ROOT":
		return "", true
	case "<absolute>":
		return "/", true
	default:
		return sourceTree, true
	}
}

// getParent returns the nearest referrer that is a group or the project
// itself (first match wins; note this intentionally excludes
// XCVersionGroup despite it being a "group" ISA elsewhere).
func (p *XcodeProject) getParent(uuid string) (*PbxObject, bool) {
	for _, referrer := range p.GetReferrers(uuid) {
		switch referrer.ISA() {
		case string(types.ISAGroup), string(types.ISAVariantGroup), string(types.ISAProject):
			return referrer, true
		}
	}
	return nil, false
}

// GetParents returns the chain of ancestor groups from the main group
// down to (but not including) obj; empty when obj is the main group.
func (p *XcodeProject) GetParents(obj *PbxObject) []*PbxObject {
	mainGroup, ok := p.MainGroupUUID()
	if !ok || obj.UUID == mainGroup {
		return nil
	}
	var chain []*PbxObject
	current := obj
	for {
		parent, ok := p.getParent(current.UUID)
		if !ok {
			break
		}
		chain = append([]*PbxObject{parent}, chain...)
		if parent.UUID == mainGroup {
			break
		}
		current = parent
	}
	return chain
}
