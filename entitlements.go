package xcode

import (
	"fmt"

	"howett.net/plist"
)

// ParseXMLPlist reads the XML (or binary) property-list dialect used by
// .entitlements files and Info.plist. It is a thin pass-through to a
// general-purpose plist library and performs none of the Old-Style
// parser's NeXTSTEP remapping or atom-type inference; it exists only so
// that a caller juggling a whole .xcodeproj bundle has one coherent
// library surface for every plist dialect it might encounter.
func ParseXMLPlist(data []byte) (map[string]any, error) {
	var out map[string]any
	if _, err := plist.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("xcode: parse xml plist: %w", err)
	}
	return out, nil
}

// BuildXMLPlist serializes value as an XML property list.
func BuildXMLPlist(value map[string]any) ([]byte, error) {
	data, err := plist.MarshalIndent(value, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("xcode: build xml plist: %w", err)
	}
	return data, nil
}
