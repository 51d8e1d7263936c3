package types

import "strings"

// ReferenceKeys returns the fixed list of property keys that may hold
// UUID references (scalar or array element) for objects of the given ISA.
// This table drives orphan detection, reference removal during cascading
// delete, and reverse-index construction for the comment resolver.
func ReferenceKeys(isa string) []string {
	switch ISA(isa) {
	case ISAProject:
		return []string{"buildConfigurationList", "mainGroup", "productRefGroup", "targets", "packageReferences"}
	case ISANativeTarget, ISAAggregateTarget, ISALegacyTarget:
		return []string{"buildConfigurationList", "dependencies", "buildPhases", "buildRules", "productReference", "packageProductDependencies", "fileSystemSynchronizedGroups"}
	case ISAGroup, ISAVariantGroup, ISAVersionGroup:
		return []string{"children"}
	case ISAConfigurationList:
		return []string{"buildConfigurations"}
	case ISABuildConfiguration:
		return []string{"baseConfigurationReference"}
	case ISABuildFile:
		return []string{"fileRef", "productRef"}
	case ISATargetDependency:
		return []string{"target", "targetProxy"}
	case ISAContainerItemProxy:
		return []string{"containerPortal"}
	case ISAReferenceProxy:
		return []string{"remoteRef"}
	case ISASwiftPackageProductDependency:
		return []string{"package"}
	case ISAFileSystemSynchronizedRootGroup:
		return []string{"exceptions"}
	}
	if strings.HasSuffix(isa, "BuildPhase") && ISA(isa).IsBuildPhase() {
		return []string{"files"}
	}
	return nil
}

// LooksLikeUUID reports whether s has the shape of a minted UUID: exactly
// 24 ASCII hex digits.
func LooksLikeUUID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	default:
		return false
	}
}
