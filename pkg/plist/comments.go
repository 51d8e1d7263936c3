package plist

import (
	"strings"

	"github.com/mozharovsky/xcode/types"
)

// BuildCommentIndex walks every object in objects (keyed by UUID, each
// value an Object whose props include "isa") and returns a UUID ->
// annotation map for every UUID that should carry a /* ... */ comment when
// the writer emits it. Objects whose annotation is the empty string are
// included so repeated lookups don't redo the work, but the writer treats
// an empty annotation as "no comment".
func BuildCommentIndex(objects *types.OrderedMap) map[string]string {
	fileToPhase := buildFileToPhaseIndex(objects)
	cache := make(map[string]string, objects.Len())
	objects.Range(func(uuid string, value types.PlistValue) bool {
		resolveComment(uuid, objects, fileToPhase, cache)
		return true
	})
	return cache
}

type phaseRef struct {
	isa  string
	name string
	has  bool
}

func buildFileToPhaseIndex(objects *types.OrderedMap) map[string]phaseRef {
	out := make(map[string]phaseRef)
	objects.Range(func(uuid string, value types.PlistValue) bool {
		obj, ok := value.AsObject()
		if !ok {
			return true
		}
		isaVal, _ := obj.Get("isa")
		isa, _ := isaVal.AsString()
		if !strings.HasSuffix(isa, "BuildPhase") {
			return true
		}
		filesVal, ok := obj.Get("files")
		if !ok {
			return true
		}
		files, _ := filesVal.AsArray()
		nameVal, hasName := obj.Get("name")
		name := ""
		if hasName {
			name, _ = nameVal.AsString()
		}
		ref := phaseRef{isa: isa, name: name, has: hasName && name != ""}
		for _, f := range files {
			if fuuid, ok := f.AsString(); ok {
				out[fuuid] = ref
			}
		}
		return true
	})
	return out
}

func resolveComment(uuid string, objects *types.OrderedMap, fileToPhase map[string]phaseRef, cache map[string]string) string {
	if c, ok := cache[uuid]; ok {
		return c
	}
	objVal, ok := objects.Get(uuid)
	if !ok {
		return ""
	}
	obj, ok := objVal.AsObject()
	if !ok {
		return ""
	}
	isaVal, _ := obj.Get("isa")
	isa, _ := isaVal.AsString()

	var comment string
	switch isa {
	case "PBXBuildFile":
		comment = buildFileComment(uuid, obj, objects, fileToPhase, cache)
	case "XCConfigurationList":
		comment = configurationListComment(uuid, objects)
	case "XCRemoteSwiftPackageReference":
		comment = remotePackageComment(isa, obj)
	case "XCLocalSwiftPackageReference":
		comment = localPackageComment(isa, obj)
	case "PBXProject":
		comment = "Project object"
	default:
		if strings.HasSuffix(isa, "BuildPhase") {
			comment = buildPhaseName(obj, isa)
		} else if isa == "PBXGroup" {
			_, hasName := obj.Get("name")
			_, hasPath := obj.Get("path")
			if !hasName && !hasPath {
				comment = ""
			} else {
				comment = defaultName(obj, isa)
			}
		} else {
			comment = defaultName(obj, isa)
		}
	}
	cache[uuid] = comment
	return comment
}

func defaultName(obj *types.OrderedMap, isa string) string {
	for _, key := range []string{"name", "productName", "path"} {
		if v, ok := obj.Get(key); ok {
			if s, ok := v.AsString(); ok && s != "" {
				return s
			}
		}
	}
	return isa
}

func buildPhaseName(obj *types.OrderedMap, isa string) string {
	if v, ok := obj.Get("name"); ok {
		if s, ok := v.AsString(); ok && s != "" {
			return s
		}
	}
	if name, ok := types.StripBuildPhaseName(isa); ok {
		return name
	}
	return ""
}

func buildFileComment(uuid string, obj *types.OrderedMap, objects *types.OrderedMap, fileToPhase map[string]phaseRef, cache map[string]string) string {
	refID := ""
	if v, ok := obj.Get("fileRef"); ok {
		refID, _ = v.AsString()
	}
	if refID == "" {
		if v, ok := obj.Get("productRef"); ok {
			refID, _ = v.AsString()
		}
	}
	name := "(null)"
	if refID != "" {
		if _, ok := objects.Get(refID); ok {
			name = resolveComment(refID, objects, fileToPhase, cache)
			if name == "" {
				name = "(null)"
			}
		}
	}
	ref, ok := fileToPhase[uuid]
	phaseName := "[missing build phase]"
	if ok {
		if ref.has {
			phaseName = ref.name
		} else if dflt, ok := types.StripBuildPhaseName(ref.isa); ok {
			phaseName = dflt
		} else {
			phaseName = ""
		}
	}
	return name + " in " + phaseName
}

func configurationListComment(listUUID string, objects *types.OrderedMap) string {
	var referrerUUID, referrerISA string
	found := false
	objects.Range(func(uuid string, value types.PlistValue) bool {
		obj, ok := value.AsObject()
		if !ok {
			return true
		}
		if v, ok := obj.Get("buildConfigurationList"); ok {
			if s, ok := v.AsString(); ok && s == listUUID {
				referrerUUID = uuid
				isaVal, _ := obj.Get("isa")
				referrerISA, _ = isaVal.AsString()
				found = true
				return false
			}
		}
		return true
	})
	if !found {
		return "Build configuration list for [unknown]"
	}
	referrerVal, _ := objects.Get(referrerUUID)
	referrer, _ := referrerVal.AsObject()
	for _, key := range []string{"name", "path", "productName"} {
		if v, ok := referrer.Get(key); ok {
			if s, ok := v.AsString(); ok && s != "" {
				return "Build configuration list for " + referrerISA + " \"" + s + "\""
			}
		}
	}
	if targetsVal, ok := referrer.Get("targets"); ok {
		if targets, ok := targetsVal.AsArray(); ok && len(targets) > 0 {
			if firstUUID, ok := targets[0].AsString(); ok {
				if tVal, ok := objects.Get(firstUUID); ok {
					if tObj, ok := tVal.AsObject(); ok {
						for _, key := range []string{"productName", "name"} {
							if v, ok := tObj.Get(key); ok {
								if s, ok := v.AsString(); ok && s != "" {
									return "Build configuration list for " + referrerISA + " \"" + s + "\""
								}
							}
						}
					}
				}
			}
		}
	}
	name := ""
	objects.Range(func(uuid string, value types.PlistValue) bool {
		obj, ok := value.AsObject()
		if !ok {
			return true
		}
		isaVal, _ := obj.Get("isa")
		isa, _ := isaVal.AsString()
		if isa != "PBXContainerItemProxy" {
			return true
		}
		if v, ok := obj.Get("containerPortal"); ok {
			if s, ok := v.AsString(); ok && s == referrerUUID {
				if r, ok := obj.Get("remoteInfo"); ok {
					if rs, ok := r.AsString(); ok && rs != "" {
						name = rs
						return false
					}
				}
			}
		}
		return true
	})
	if name != "" {
		return "Build configuration list for " + referrerISA + " \"" + name + "\""
	}
	return "Build configuration list for " + referrerISA
}

func remotePackageComment(isa string, obj *types.OrderedMap) string {
	v, ok := obj.Get("repositoryURL")
	if !ok {
		return isa
	}
	url, _ := v.AsString()
	return isa + " \"" + repoNameFromURL(url) + "\""
}

func repoNameFromURL(url string) string {
	for _, prefix := range []string{"https://github.com/", "http://github.com/"} {
		if strings.HasPrefix(url, prefix) {
			rest := strings.TrimPrefix(url, prefix)
			parts := strings.Split(rest, "/")
			last := parts[len(parts)-1]
			last = strings.TrimSuffix(last, ".git")
			if last != "" {
				return last
			}
		}
	}
	return url
}

func localPackageComment(isa string, obj *types.OrderedMap) string {
	v, ok := obj.Get("relativePath")
	if !ok {
		return isa
	}
	path, _ := v.AsString()
	return isa + " \"" + path + "\""
}
