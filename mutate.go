package xcode

import (
	"path"
	"sort"
	"strings"

	"github.com/mozharovsky/xcode/types"
)

// setSorted copies src into dst in sorted key order so the generated
// buildSettings dictionary has a deterministic, diff-stable layout.
func setSorted(dst *types.OrderedMap, src map[string]string) {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dst.Set(k, types.String(src[k]))
	}
}

// AddGroup creates a PBXGroup under parentUUID with the given name, and
// appends it to the parent's children. It returns the new group's UUID.
func (p *XcodeProject) AddGroup(parentUUID, name string) string {
	props := types.NewOrderedMap()
	props.Set("isa", types.String(string(types.ISAGroup)))
	props.Set("children", types.Array(nil))
	props.Set("sourceTree", types.String("<group>"))
	if name != "" {
		props.Set("name", types.String(name))
	}
	uuid := p.CreateObject(props)
	p.appendToArray(parentUUID, "children", uuid)
	return uuid
}

// AddFile creates a PBXFileReference for filePath under parentUUID,
// inferring lastKnownFileType from the extension and sourceTree from the
// file type (default "<group>"). "path" holds filePath unchanged; "name" is
// set to the basename only when it differs from filePath.
func (p *XcodeProject) AddFile(parentUUID, filePath string) string {
	ext := strings.TrimPrefix(path.Ext(filePath), ".")
	fileType, ok := types.FileTypesByExtension[ext]
	if !ok {
		fileType = "file"
	}
	sourceTree, ok := types.SourceTreeByFileType[fileType]
	if !ok {
		sourceTree = "<group>"
	}
	name := path.Base(filePath)

	props := types.NewOrderedMap()
	props.Set("isa", types.String(string(types.ISAFileReference)))
	props.Set("fileEncoding", types.Integer(4))
	props.Set("lastKnownFileType", types.String(fileType))
	if name != filePath {
		props.Set("name", types.String(name))
	}
	props.Set("path", types.String(filePath))
	props.Set("sourceTree", types.String(sourceTree))
	uuid := p.CreateObject(props)
	p.appendToArray(parentUUID, "children", uuid)
	return uuid
}

// EnsureBuildPhase returns the UUID of the target's existing build phase
// matching isa (first match in buildPhases order), creating one if none
// exists.
func (p *XcodeProject) EnsureBuildPhase(targetUUID string, isa types.ISA) string {
	target, ok := p.GetObject(targetUUID)
	if ok {
		items, _ := target.GetArray("buildPhases")
		for _, item := range items {
			uuid, ok := item.AsString()
			if !ok {
				continue
			}
			phase, ok := p.GetObject(uuid)
			if ok && phase.ISA() == string(isa) {
				return uuid
			}
		}
	}
	props := types.NewOrderedMap()
	props.Set("isa", types.String(string(isa)))
	props.Set("buildActionMask", types.Integer(2147483647))
	props.Set("files", types.Array(nil))
	props.Set("runOnlyForDeploymentPostprocessing", types.Integer(0))
	uuid := p.CreateObject(props)
	p.appendToArray(targetUUID, "buildPhases", uuid)
	return uuid
}

// AddBuildFile creates a PBXBuildFile referencing fileRefUUID and appends
// it to phaseUUID's files array.
func (p *XcodeProject) AddBuildFile(phaseUUID, fileRefUUID string) string {
	props := types.NewOrderedMap()
	props.Set("isa", types.String(string(types.ISABuildFile)))
	props.Set("fileRef", types.String(fileRefUUID))
	uuid := p.CreateObject(props)
	p.appendToArray(phaseUUID, "files", uuid)
	return uuid
}

// AddFramework adds a system framework (e.g. "Foundation") to targetUUID:
// it creates a PBXFileReference under SDKROOT, ensures a
// PBXFrameworksBuildPhase exists, and adds a build file referencing it.
func (p *XcodeProject) AddFramework(targetUUID, name string) string {
	if !strings.HasSuffix(name, ".framework") {
		name += ".framework"
	}
	props := types.NewOrderedMap()
	props.Set("isa", types.String(string(types.ISAFileReference)))
	props.Set("lastKnownFileType", types.String("wrapper.framework"))
	props.Set("name", types.String(name))
	props.Set("path", types.String("System/Library/Frameworks/"+name))
	props.Set("sourceTree", types.String("SDKROOT"))
	fileRefUUID := p.CreateObject(props)

	phaseUUID := p.EnsureBuildPhase(targetUUID, types.ISAFrameworksBuildPhase)
	return p.AddBuildFile(phaseUUID, fileRefUUID)
}

// CreateNativeTarget builds a full PBXNativeTarget (product reference,
// Debug/Release configurations, Sources/Frameworks/Resources build
// phases) and registers it under the root project's targets array. It
// returns the new target's UUID.
func (p *XcodeProject) CreateNativeTarget(name, productType, bundleID string) string {
	ext, ok := types.ProductUTIExtensions[productType]
	if !ok {
		ext = "app"
	}
	fileType, ok := types.FileTypesByExtension[ext]
	if !ok {
		fileType = "wrapper.application"
	}

	productProps := types.NewOrderedMap()
	productProps.Set("isa", types.String(string(types.ISAFileReference)))
	productProps.Set("explicitFileType", types.String(fileType))
	productProps.Set("includeInIndex", types.Integer(0))
	productFileName := name
	if ext != "" {
		productFileName = name + "." + ext
	}
	productProps.Set("path", types.String(productFileName))
	productProps.Set("sourceTree", types.String("BUILT_PRODUCTS_DIR"))
	productUUID := p.CreateObject(productProps)

	debugSettings := types.NewOrderedMap()
	setSorted(debugSettings, types.DefaultBuildSettingsAll())
	setSorted(debugSettings, types.DefaultBuildSettingsDebug())
	debugSettings.Set("PRODUCT_BUNDLE_IDENTIFIER", types.String(bundleID))
	debugSettings.Set("PRODUCT_NAME", types.String(name))
	debugSettings.Set("SWIFT_VERSION", types.String("5.0"))
	debugCfgProps := types.NewOrderedMap()
	debugCfgProps.Set("isa", types.String(string(types.ISABuildConfiguration)))
	debugCfgProps.Set("buildSettings", types.Object(debugSettings))
	debugCfgProps.Set("name", types.String("Debug"))
	debugUUID := p.CreateObject(debugCfgProps)

	releaseSettings := types.NewOrderedMap()
	setSorted(releaseSettings, types.DefaultBuildSettingsAll())
	setSorted(releaseSettings, types.DefaultBuildSettingsRelease())
	releaseSettings.Set("PRODUCT_BUNDLE_IDENTIFIER", types.String(bundleID))
	releaseSettings.Set("PRODUCT_NAME", types.String(name))
	releaseSettings.Set("SWIFT_VERSION", types.String("5.0"))
	releaseCfgProps := types.NewOrderedMap()
	releaseCfgProps.Set("isa", types.String(string(types.ISABuildConfiguration)))
	releaseCfgProps.Set("buildSettings", types.Object(releaseSettings))
	releaseCfgProps.Set("name", types.String("Release"))
	releaseUUID := p.CreateObject(releaseCfgProps)

	listProps := types.NewOrderedMap()
	listProps.Set("isa", types.String(string(types.ISAConfigurationList)))
	listProps.Set("buildConfigurations", types.Array([]types.PlistValue{types.String(debugUUID), types.String(releaseUUID)}))
	listProps.Set("defaultConfigurationIsVisible", types.Integer(0))
	listProps.Set("defaultConfigurationName", types.String("Release"))
	listUUID := p.CreateObject(listProps)

	sourcesUUID := p.emptyBuildPhase(types.ISASourcesBuildPhase)
	frameworksUUID := p.emptyBuildPhase(types.ISAFrameworksBuildPhase)
	resourcesUUID := p.emptyBuildPhase(types.ISAResourcesBuildPhase)

	targetProps := types.NewOrderedMap()
	targetProps.Set("isa", types.String(string(types.ISANativeTarget)))
	targetProps.Set("buildConfigurationList", types.String(listUUID))
	targetProps.Set("buildPhases", types.Array([]types.PlistValue{
		types.String(sourcesUUID), types.String(frameworksUUID), types.String(resourcesUUID),
	}))
	targetProps.Set("buildRules", types.Array(nil))
	targetProps.Set("dependencies", types.Array(nil))
	targetProps.Set("name", types.String(name))
	targetProps.Set("productName", types.String(name))
	targetProps.Set("productReference", types.String(productUUID))
	targetProps.Set("productType", types.String(productType))
	targetUUID := p.CreateObject(targetProps)

	p.appendToArray(p.RootObjectUUID, "targets", targetUUID)
	if refGroup, ok := p.ProductRefGroupUUID(); ok {
		p.appendToArray(refGroup, "children", productUUID)
	}
	return targetUUID
}

func (p *XcodeProject) emptyBuildPhase(isa types.ISA) string {
	props := types.NewOrderedMap()
	props.Set("isa", types.String(string(isa)))
	props.Set("buildActionMask", types.Integer(2147483647))
	props.Set("files", types.Array(nil))
	props.Set("runOnlyForDeploymentPostprocessing", types.Integer(0))
	return p.CreateObject(props)
}

// AddDependency adds dependencyTargetUUID as a target dependency of
// dependentTargetUUID via a PBXContainerItemProxy/PBXTargetDependency
// pair.
func (p *XcodeProject) AddDependency(dependentTargetUUID, dependencyTargetUUID string) string {
	depTarget, _ := p.GetObject(dependencyTargetUUID)
	remoteInfo := "Unknown"
	if depTarget != nil {
		if name, ok := depTarget.GetString("name"); ok && name != "" {
			remoteInfo = name
		}
	}

	proxyProps := types.NewOrderedMap()
	proxyProps.Set("isa", types.String(string(types.ISAContainerItemProxy)))
	proxyProps.Set("containerPortal", types.String(p.RootObjectUUID))
	proxyProps.Set("proxyType", types.Integer(1))
	proxyProps.Set("remoteGlobalIDString", types.String(dependencyTargetUUID))
	proxyProps.Set("remoteInfo", types.String(remoteInfo))
	proxyUUID := p.CreateObject(proxyProps)

	depProps := types.NewOrderedMap()
	depProps.Set("isa", types.String(string(types.ISATargetDependency)))
	depProps.Set("target", types.String(dependencyTargetUUID))
	depProps.Set("targetProxy", types.String(proxyUUID))
	depUUID := p.CreateObject(depProps)

	p.appendToArray(dependentTargetUUID, "dependencies", depUUID)
	return depUUID
}

// RenameTarget renames targetUUID to newName, updating its product
// reference path, matching main-group children, and any
// PBXContainerItemProxy.remoteInfo that named the old target.
func (p *XcodeProject) RenameTarget(targetUUID, newName string) {
	target, ok := p.GetObject(targetUUID)
	if !ok {
		return
	}
	oldName, _ := target.GetString("name")
	target.SetString("name", newName)
	target.SetString("productName", newName)

	if productUUID, ok := target.GetString("productReference"); ok {
		if product, ok := p.GetObject(productUUID); ok {
			if productPath, ok := product.GetString("path"); ok && oldName != "" {
				product.SetString("path", strings.ReplaceAll(productPath, oldName, newName))
			}
		}
	}

	if mainGroup, ok := p.MainGroupUUID(); ok {
		if group, ok := p.GetObject(mainGroup); ok {
			children, _ := group.GetArray("children")
			for _, child := range children {
				childUUID, ok := child.AsString()
				if !ok {
					continue
				}
				childObj, ok := p.GetObject(childUUID)
				if !ok {
					continue
				}
				if childPath, ok := childObj.GetString("path"); ok && childPath == oldName {
					childObj.SetString("path", newName)
					if childName, ok := childObj.GetString("name"); ok && childName != "" {
						childObj.SetString("name", newName)
					}
				}
			}
		}
	}

	if oldName != "" {
		for _, proxy := range p.ObjectsByISA(string(types.ISAContainerItemProxy)) {
			if remoteInfo, ok := proxy.GetString("remoteInfo"); ok && remoteInfo == oldName {
				proxy.SetString("remoteInfo", newName)
			}
		}
	}
}

type embedSettings struct {
	dstSubfolderSpec int64
	dstPath          string
	phaseName        string
}

func embedSettingsFor(productType string) embedSettings {
	switch productType {
	case "com.apple.product-type.application.on-demand-install-capable":
		return embedSettings{16, "$(CONTENTS_FOLDER_PATH)/AppClips", "Embed App Clips"}
	case "com.apple.product-type.application":
		return embedSettings{16, "$(CONTENTS_FOLDER_PATH)/Watch", "Embed Watch Content"}
	case "com.apple.product-type.extensionkit-extension":
		return embedSettings{16, "$(EXTENSIONS_FOLDER_PATH)", "Embed ExtensionKit Extensions"}
	default:
		return embedSettings{13, "", "Embed Foundation Extensions"}
	}
}

// EmbedExtension embeds extensionTargetUUID's product into hostTargetUUID
// via a PBXCopyFilesBuildPhase, choosing the destination folder and phase
// name from the extension's productType.
func (p *XcodeProject) EmbedExtension(hostTargetUUID, extensionTargetUUID string) string {
	ext, ok := p.GetObject(extensionTargetUUID)
	if !ok {
		return ""
	}
	productType, _ := ext.GetString("productType")
	productRef, _ := ext.GetString("productReference")
	settings := embedSettingsFor(productType)

	attrs := types.NewOrderedMap()
	attrs.Set("ATTRIBUTES", types.Array([]types.PlistValue{types.String("RemoveHeadersOnCopy")}))
	buildFileProps := types.NewOrderedMap()
	buildFileProps.Set("isa", types.String(string(types.ISABuildFile)))
	buildFileProps.Set("fileRef", types.String(productRef))
	buildFileProps.Set("settings", types.Object(attrs))
	buildFileUUID := p.CreateObject(buildFileProps)

	phaseProps := types.NewOrderedMap()
	phaseProps.Set("isa", types.String(string(types.ISACopyFilesBuildPhase)))
	phaseProps.Set("buildActionMask", types.Integer(2147483647))
	phaseProps.Set("dstPath", types.String(settings.dstPath))
	phaseProps.Set("dstSubfolderSpec", types.Integer(settings.dstSubfolderSpec))
	phaseProps.Set("files", types.Array([]types.PlistValue{types.String(buildFileUUID)}))
	phaseProps.Set("name", types.String(settings.phaseName))
	phaseProps.Set("runOnlyForDeploymentPostprocessing", types.Integer(0))
	phaseUUID := p.CreateObject(phaseProps)

	p.appendToArray(hostTargetUUID, "buildPhases", phaseUUID)
	return phaseUUID
}

// AddFileSystemSyncGroup adds a PBXFileSystemSynchronizedRootGroup for
// dirPath to targetUUID's fileSystemSynchronizedGroups (Xcode 16+ folder
// references) and to the main group's children.
func (p *XcodeProject) AddFileSystemSyncGroup(targetUUID, dirPath string) string {
	props := types.NewOrderedMap()
	props.Set("isa", types.String(string(types.ISAFileSystemSynchronizedRootGroup)))
	props.Set("path", types.String(dirPath))
	props.Set("sourceTree", types.String("<group>"))
	uuid := p.CreateObject(props)

	p.appendToArray(targetUUID, "fileSystemSynchronizedGroups", uuid)
	if mainGroup, ok := p.MainGroupUUID(); ok {
		p.appendToArray(mainGroup, "children", uuid)
	}
	return uuid
}

// appendToArray appends value to the named array property on obj,
// creating the array if the property is absent.
func (p *XcodeProject) appendToArray(uuid, key, value string) {
	obj, ok := p.GetObject(uuid)
	if !ok {
		return
	}
	items, ok := obj.GetArray(key)
	if !ok {
		items = nil
	}
	items = append(items, types.String(value))
	obj.Set(key, types.Array(items))
}
