package types

// FileTypesByExtension maps a file extension (without the leading dot) to
// the Xcode lastKnownFileType UTI Xcode itself would assign.
var FileTypesByExtension = map[string]string{
	"a":               "archive.ar",
	"app":             "wrapper.application",
	"appex":           "wrapper.app-extension",
	"bundle":          "wrapper.plug-in",
	"c":               "sourcecode.c.c",
	"cc":              "sourcecode.cpp.cpp",
	"cpp":             "sourcecode.cpp.cpp",
	"css":             "text.css",
	"cxx":             "sourcecode.cpp.cpp",
	"d":               "sourcecode.dtrace",
	"dylib":           "compiled.mach-o.dylib",
	"entitlements":    "text.plist.entitlements",
	"framework":       "wrapper.framework",
	"gif":             "image.gif",
	"gpx":             "text.xml",
	"h":               "sourcecode.c.h",
	"hh":              "sourcecode.cpp.h",
	"hpp":             "sourcecode.cpp.h",
	"html":            "text.html",
	"hxx":             "sourcecode.cpp.h",
	"ipp":             "sourcecode.cpp.h",
	"intentdefinition": "file.intentdefinition",
	"jpeg":            "image.jpeg",
	"jpg":             "image.jpeg",
	"js":              "sourcecode.javascript",
	"json":            "text.json",
	"m":               "sourcecode.c.objc",
	"markdown":        "net.daringfireball.markdown",
	"md":              "net.daringfireball.markdown",
	"mm":              "sourcecode.cpp.objcpp",
	"modulemap":       "sourcecode.module",
	"mp3":             "audio.mp3",
	"pch":             "sourcecode.c.h",
	"plist":           "text.plist.xml",
	"png":             "image.png",
	"s":               "sourcecode.asm",
	"sh":              "text.script.sh",
	"storyboard":      "file.storyboard",
	"strings":         "text.plist.strings",
	"stringsdict":     "text.plist.stringsdict",
	"swift":           "sourcecode.swift",
	"tbd":             "sourcecode.text-based-dylib-definition",
	"ts":              "sourcecode.javascript",
	"tsx":             "sourcecode.javascript",
	"ttf":             "file",
	"wav":             "audio.wav",
	"xcassets":        "folder.assetcatalog",
	"xcconfig":        "text.xcconfig",
	"xcdatamodel":     "wrapper.xcdatamodel",
	"xcdatamodeld":    "wrapper.xcdatamodeld",
	"xcframework":     "wrapper.xcframework",
	"xib":             "file.xib",
	"xml":             "text.xml",
	"yaml":            "text.yaml",
	"yml":             "text.yaml",
	"zip":             "archive.zip",
}

// ProductUTIExtensions maps an Xcode product type to the file extension
// Xcode gives the product it builds.
var ProductUTIExtensions = map[string]string{
	"com.apple.product-type.application":                      "app",
	"com.apple.product-type.application.on-demand-install-capable": "app",
	"com.apple.product-type.app-extension":                    "appex",
	"com.apple.product-type.bundle":                           "bundle",
	"com.apple.product-type.framework":                        "framework",
	"com.apple.product-type.library.dynamic":                  "dylib",
	"com.apple.product-type.library.static":                   "a",
	"com.apple.product-type.tool":                             "",
	"com.apple.product-type.unit-test-bundle":                 "xctest",
	"com.apple.product-type.ui-testing-bundle":                "xctest",
	"com.apple.product-type.application.watchapp":             "app",
	"com.apple.product-type.application.watchapp2":            "app",
	"com.apple.product-type.watchkit-extension":                "appex",
}

// SourceTreeByFileType maps a lastKnownFileType/explicitFileType UTI to the
// sourceTree value Xcode assigns to build products of that type.
var SourceTreeByFileType = map[string]string{
	"wrapper.application":   "BUILT_PRODUCTS_DIR",
	"wrapper.framework":     "BUILT_PRODUCTS_DIR",
	"compiled.mach-o.dylib": "BUILT_PRODUCTS_DIR",
	"wrapper.plug-in":       "BUILT_PRODUCTS_DIR",
	"archive.ar":            "BUILT_PRODUCTS_DIR",
}

// Project-format version constants used when archiveVersion/objectVersion
// are absent from a parsed document.
const (
	LastKnownArchiveVersion = 1
	DefaultObjectVersion    = 46
)

// DefaultBuildSettingsAll returns the build settings Xcode applies to both
// Debug and Release configurations of a freshly created target.
func DefaultBuildSettingsAll() map[string]string {
	return map[string]string{
		"ALWAYS_SEARCH_USER_PATHS":                        "NO",
		"CLANG_ANALYZER_NONNULL":                           "YES",
		"CLANG_ANALYZER_NUMBER_OBJECT_CONVERSION":          "YES_AGGRESSIVE",
		"CLANG_CXX_LANGUAGE_STANDARD":                      "gnu++14",
		"CLANG_CXX_LIBRARY":                                "libc++",
		"CLANG_ENABLE_MODULES":                             "YES",
		"CLANG_ENABLE_OBJC_ARC":                            "YES",
		"CLANG_ENABLE_OBJC_WEAK":                           "YES",
		"CLANG_WARN_BLOCK_CAPTURE_AUTORELEASING":           "YES",
		"CLANG_WARN_BOOL_CONVERSION":                       "YES",
		"CLANG_WARN_COMMA":                                 "YES",
		"CLANG_WARN_CONSTANT_CONVERSION":                   "YES",
		"CLANG_WARN_DEPRECATED_OBJC_IMPLEMENTATIONS":       "YES",
		"CLANG_WARN_DIRECT_OBJC_ISA_USAGE":                 "YES_ERROR",
		"CLANG_WARN_DOCUMENTATION_COMMENTS":                "YES",
		"CLANG_WARN_EMPTY_BODY":                            "YES",
		"CLANG_WARN_ENUM_CONVERSION":                       "YES",
		"CLANG_WARN_INFINITE_RECURSION":                    "YES",
		"CLANG_WARN_INT_CONVERSION":                        "YES",
		"CLANG_WARN_NON_LITERAL_NULL_CONVERSION":           "YES",
		"CLANG_WARN_OBJC_IMPLICIT_RETAIN_SELF":             "YES",
		"CLANG_WARN_OBJC_LITERAL_CONVERSION":               "YES",
		"CLANG_WARN_OBJC_ROOT_CLASS":                       "YES_ERROR",
		"CLANG_WARN_QUOTED_INCLUDE_IN_FRAMEWORK_HEADER":    "YES",
		"CLANG_WARN_RANGE_LOOP_ANALYSIS":                   "YES",
		"CLANG_WARN_STRICT_PROTOTYPES":                     "YES",
		"CLANG_WARN_SUSPICIOUS_MOVE":                       "YES",
		"CLANG_WARN_UNGUARDED_AVAILABILITY":                "YES_AGGRESSIVE",
		"CLANG_WARN_UNREACHABLE_CODE":                      "YES",
		"CLANG_WARN__DUPLICATE_METHOD_MATCH":               "YES",
		"COPY_PHASE_STRIP":                                 "NO",
		"ENABLE_STRICT_OBJC_MSGSEND":                       "YES",
		"GCC_C_LANGUAGE_STANDARD":                          "gnu11",
		"GCC_NO_COMMON_BLOCKS":                              "YES",
		"GCC_WARN_64_TO_32_BIT_CONVERSION":                 "YES",
		"GCC_WARN_ABOUT_RETURN_TYPE":                       "YES_ERROR",
		"GCC_WARN_UNDECLARED_SELECTOR":                     "YES",
		"GCC_WARN_UNINITIALIZED_AUTOS":                     "YES_AGGRESSIVE",
		"GCC_WARN_UNUSED_FUNCTION":                         "YES",
		"GCC_WARN_UNUSED_VARIABLE":                         "YES",
		"MTL_ENABLE_DEBUG_INFO":                            "INCLUDE_SOURCE",
	}
}

// DefaultBuildSettingsDebug returns the Debug-only default build settings.
func DefaultBuildSettingsDebug() map[string]string {
	return map[string]string{
		"DEBUG_INFORMATION_FORMAT": "dwarf",
		"ENABLE_TESTABILITY":       "YES",
		"GCC_DYNAMIC_NO_PIC":       "NO",
		"GCC_OPTIMIZATION_LEVEL":   "0",
		"GCC_PREPROCESSOR_DEFINITIONS": "DEBUG=1 $(inherited)",
		"MTL_ENABLE_DEBUG_INFO":    "INCLUDE_SOURCE",
		"ONLY_ACTIVE_ARCH":         "YES",
	}
}

// DefaultBuildSettingsRelease returns the Release-only default build settings.
func DefaultBuildSettingsRelease() map[string]string {
	return map[string]string{
		"DEBUG_INFORMATION_FORMAT": "dwarf-with-dsym",
		"ENABLE_NS_ASSERTIONS":     "NO",
		"MTL_ENABLE_DEBUG_INFO":    "NO",
		"VALIDATE_PRODUCT":         "YES",
	}
}
