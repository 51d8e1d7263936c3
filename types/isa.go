package types

import "strings"

// ISA is the string discriminator naming an Xcode project-model type
// (the class name Xcode itself would instantiate for that object).
type ISA string

const (
	ISABuildFile                                         ISA = "PBXBuildFile"
	ISAAppleScriptBuildPhase                              ISA = "PBXAppleScriptBuildPhase"
	ISACopyFilesBuildPhase                                ISA = "PBXCopyFilesBuildPhase"
	ISAFrameworksBuildPhase                               ISA = "PBXFrameworksBuildPhase"
	ISAHeadersBuildPhase                                  ISA = "PBXHeadersBuildPhase"
	ISAResourcesBuildPhase                                ISA = "PBXResourcesBuildPhase"
	ISAShellScriptBuildPhase                              ISA = "PBXShellScriptBuildPhase"
	ISASourcesBuildPhase                                  ISA = "PBXSourcesBuildPhase"
	ISARezBuildPhase                                      ISA = "PBXRezBuildPhase"
	ISAContainerItemProxy                                 ISA = "PBXContainerItemProxy"
	ISAFileReference                                      ISA = "PBXFileReference"
	ISAGroup                                              ISA = "PBXGroup"
	ISAVariantGroup                                       ISA = "PBXVariantGroup"
	ISAVersionGroup                                       ISA = "XCVersionGroup"
	ISAFileSystemSynchronizedRootGroup                    ISA = "PBXFileSystemSynchronizedRootGroup"
	ISAFileSystemSynchronizedBuildFileExceptionSet        ISA = "PBXFileSystemSynchronizedBuildFileExceptionSet"
	ISAFileSystemSynchronizedGroupBuildPhaseMembershipExceptionSet ISA = "PBXFileSystemSynchronizedGroupBuildPhaseMembershipExceptionSet"
	ISANativeTarget                                       ISA = "PBXNativeTarget"
	ISAAggregateTarget                                    ISA = "PBXAggregateTarget"
	ISALegacyTarget                                       ISA = "PBXLegacyTarget"
	ISAProject                                            ISA = "PBXProject"
	ISATargetDependency                                   ISA = "PBXTargetDependency"
	ISABuildConfiguration                                 ISA = "XCBuildConfiguration"
	ISAConfigurationList                                  ISA = "XCConfigurationList"
	ISABuildRule                                          ISA = "PBXBuildRule"
	ISAReferenceProxy                                     ISA = "PBXReferenceProxy"
	ISASwiftPackageProductDependency                      ISA = "XCSwiftPackageProductDependency"
	ISARemoteSwiftPackageReference                        ISA = "XCRemoteSwiftPackageReference"
	ISALocalSwiftPackageReference                         ISA = "XCLocalSwiftPackageReference"
	ISAUnknown                                            ISA = "Unknown"
)

// IsBuildPhase reports whether isa names one of the eight concrete build
// phase types. Note that PBXFileSystemSynchronizedGroupBuildPhaseMembershipExceptionSet
// is NOT a build phase despite the name containing "BuildPhase".
func (isa ISA) IsBuildPhase() bool {
	switch isa {
	case ISAAppleScriptBuildPhase, ISACopyFilesBuildPhase, ISAFrameworksBuildPhase,
		ISAHeadersBuildPhase, ISAResourcesBuildPhase, ISAShellScriptBuildPhase,
		ISASourcesBuildPhase, ISARezBuildPhase:
		return true
	default:
		return false
	}
}

// IsTarget reports whether isa names one of the three target types.
func (isa ISA) IsTarget() bool {
	switch isa {
	case ISANativeTarget, ISAAggregateTarget, ISALegacyTarget:
		return true
	default:
		return false
	}
}

// IsGroup reports whether isa names one of the four group-like container
// types.
func (isa ISA) IsGroup() bool {
	switch isa {
	case ISAGroup, ISAVariantGroup, ISAVersionGroup, ISAFileSystemSynchronizedRootGroup:
		return true
	default:
		return false
	}
}

// DefaultBuildPhaseName returns the human-readable name Xcode shows for a
// build phase with no explicit "name" property, derived from the ISA
// itself (e.g. PBXSourcesBuildPhase -> "Sources"). The second result is
// false when isa does not have a recognized default.
func (isa ISA) DefaultBuildPhaseName() (string, bool) {
	switch isa {
	case ISASourcesBuildPhase:
		return "Sources", true
	case ISAFrameworksBuildPhase:
		return "Frameworks", true
	case ISAResourcesBuildPhase:
		return "Resources", true
	case ISACopyFilesBuildPhase:
		return "CopyFiles", true
	case ISAHeadersBuildPhase:
		return "Headers", true
	case ISAShellScriptBuildPhase:
		return "ShellScript", true
	case ISAAppleScriptBuildPhase:
		return "AppleScript", true
	case ISARezBuildPhase:
		return "Rez", true
	default:
		return "", false
	}
}

// StripBuildPhaseName derives a default build-phase name from an arbitrary
// ISA string by stripping a "PBX" prefix and a "BuildPhase" suffix. It
// returns false if either affix is missing, matching the reference
// writer's comment-resolution fallback.
func StripBuildPhaseName(isa string) (string, bool) {
	const prefix = "PBX"
	const suffix = "BuildPhase"
	if !strings.HasPrefix(isa, prefix) || !strings.HasSuffix(isa, suffix) {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(isa, prefix), suffix)
	return name, true
}
