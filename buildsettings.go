package xcode

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mozharovsky/xcode/types"
)

var deploymentTargetKeys = map[string]string{
	"ios":       "IPHONEOS_DEPLOYMENT_TARGET",
	"macos":     "MACOSX_DEPLOYMENT_TARGET",
	"tvos":      "TVOS_DEPLOYMENT_TARGET",
	"watchos":   "WATCHOS_DEPLOYMENT_TARGET",
	"visionos":  "XROS_DEPLOYMENT_TARGET",
}

// configurationUUIDs returns the XCBuildConfiguration UUIDs under a
// target's build configuration list, in order.
func (p *XcodeProject) configurationUUIDs(targetUUID string) []string {
	target, ok := p.GetObject(targetUUID)
	if !ok {
		return nil
	}
	listUUID, ok := target.GetString("buildConfigurationList")
	if !ok {
		return nil
	}
	list, ok := p.GetObject(listUUID)
	if !ok {
		return nil
	}
	items, _ := list.GetArray("buildConfigurations")
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.AsString(); ok {
			out = append(out, s)
		}
	}
	return out
}

// GetDefaultConfiguration returns the configuration whose name matches the
// list's defaultConfigurationName, falling back to the first configuration
// in the list.
func (p *XcodeProject) GetDefaultConfiguration(targetUUID string) (*PbxObject, bool) {
	target, ok := p.GetObject(targetUUID)
	if !ok {
		return nil, false
	}
	listUUID, ok := target.GetString("buildConfigurationList")
	if !ok {
		return nil, false
	}
	list, ok := p.GetObject(listUUID)
	if !ok {
		return nil, false
	}
	defaultName, _ := list.GetString("defaultConfigurationName")
	configs := p.configurationUUIDs(targetUUID)
	if len(configs) == 0 {
		return nil, false
	}
	if defaultName != "" {
		for _, uuid := range configs {
			cfg, ok := p.GetObject(uuid)
			if !ok {
				continue
			}
			if name, _ := cfg.GetString("name"); name == defaultName {
				return cfg, true
			}
		}
	}
	return p.GetObject(configs[0])
}

// GetBuildSetting reads key from the target's default configuration.
func (p *XcodeProject) GetBuildSetting(targetUUID, key string) (string, bool) {
	cfg, ok := p.GetDefaultConfiguration(targetUUID)
	if !ok {
		return "", false
	}
	settings, ok := cfg.GetObject("buildSettings")
	if !ok {
		return "", false
	}
	v, ok := settings.Get(key)
	if !ok {
		return "", false
	}
	return plistValueAsSettingString(v)
}

func plistValueAsSettingString(v types.PlistValue) (string, bool) {
	if s, ok := v.AsString(); ok {
		return s, true
	}
	if n, ok := v.AsInteger(); ok {
		return strconv.FormatInt(n, 10), true
	}
	return "", false
}

// SetBuildSetting writes key = value into every configuration under the
// target's build configuration list.
func (p *XcodeProject) SetBuildSetting(targetUUID, key, value string) {
	for _, uuid := range p.configurationUUIDs(targetUUID) {
		cfg, ok := p.GetObject(uuid)
		if !ok {
			continue
		}
		settings, ok := cfg.GetObject("buildSettings")
		if !ok {
			settings = types.NewOrderedMap()
		}
		settings.Set(key, types.String(value))
		cfg.Set("buildSettings", types.Object(settings))
	}
}

// RemoveBuildSetting deletes key from every configuration under the
// target's build configuration list.
func (p *XcodeProject) RemoveBuildSetting(targetUUID, key string) {
	for _, uuid := range p.configurationUUIDs(targetUUID) {
		cfg, ok := p.GetObject(uuid)
		if !ok {
			continue
		}
		settings, ok := cfg.GetObject("buildSettings")
		if !ok {
			continue
		}
		settings.Delete(key)
	}
}

// FindMainAppTarget finds the PBXNativeTarget whose productType is
// com.apple.product-type.application, preferring one whose build
// settings (in any configuration) already carry the deployment-target key
// for platform ("ios", "macos", "tvos", "watchos", "visionos"), falling
// back to the first application target in PBXProject.targets order.
func (p *XcodeProject) FindMainAppTarget(platform string) (*PbxObject, bool) {
	depKey, ok := deploymentTargetKeys[platform]
	if !ok {
		return nil, false
	}
	var appTargets []*PbxObject
	for _, uuid := range p.TargetUUIDs() {
		t, ok := p.GetObject(uuid)
		if !ok {
			continue
		}
		if t.ISA() != string(types.ISANativeTarget) {
			continue
		}
		if pt, _ := t.GetString("productType"); pt != "com.apple.product-type.application" {
			continue
		}
		appTargets = append(appTargets, t)
	}
	for _, t := range appTargets {
		for _, cfgUUID := range p.configurationUUIDs(t.UUID) {
			cfg, ok := p.GetObject(cfgUUID)
			if !ok {
				continue
			}
			settings, ok := cfg.GetObject("buildSettings")
			if !ok {
				continue
			}
			if _, has := settings.Get(depKey); has {
				return t, true
			}
		}
	}
	if len(appTargets) > 0 {
		return appTargets[0], true
	}
	return nil, false
}

// ResolveBuildSetting expands $(VAR) / $(VAR:transform1:transform2)
// references in value using lookup to resolve variable names, recursing
// to a fixed point (re-resolving the looked-up value before applying
// transforms, and re-resolving the transformed result afterward).
func ResolveBuildSetting(value string, lookup func(string) (string, bool)) string {
	for {
		next := resolveOnce(value, lookup)
		if next == value {
			return next
		}
		value = next
	}
}

func resolveOnce(value string, lookup func(string) (string, bool)) string {
	var b strings.Builder
	i := 0
	for i < len(value) {
		if value[i] == '$' && i+1 < len(value) && value[i+1] == '(' {
			depth := 1
			j := i + 2
			for j < len(value) && depth > 0 {
				switch value[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
				if depth == 0 {
					break
				}
				j++
			}
			if j >= len(value) {
				// unmatched "$(" - emit literally and advance past it
				b.WriteString("$(")
				i += 2
				continue
			}
			inner := value[i+2 : j]
			name := inner
			var transforms []string
			if idx := strings.Index(inner, ":"); idx >= 0 {
				name = inner[:idx]
				transforms = strings.Split(inner[idx+1:], ":")
			}
			resolved, found := "", false
			if lookup != nil {
				resolved, found = lookup(name)
			}
			if found {
				resolved = ResolveBuildSetting(resolved, lookup)
			}
			for _, t := range transforms {
				resolved = applyTransform(resolved, t)
			}
			resolved = ResolveBuildSetting(resolved, lookup)
			b.WriteString(resolved)
			i = j + 1
			continue
		}
		b.WriteByte(value[i])
		i++
	}
	return b.String()
}

func applyTransform(value, modifier string) string {
	switch modifier {
	case "lower":
		return strings.ToLower(value)
	case "upper":
		return strings.ToUpper(value)
	case "suffix":
		return filepath.Ext(value)
	case "file":
		return filepath.Base(value)
	case "dir":
		return filepath.Dir(value)
	case "base":
		base := filepath.Base(value)
		return strings.TrimSuffix(base, filepath.Ext(base))
	case "rfc1034identifier":
		return rfc1034Identifier(value)
	case "c99extidentifier":
		return c99ExtIdentifier(value)
	case "standardizepath":
		if value == "" {
			return ""
		}
		abs, err := filepath.Abs(value)
		if err != nil {
			return value
		}
		return filepath.Clean(abs)
	default:
		const defaultPrefix = "default="
		if strings.HasPrefix(modifier, defaultPrefix) {
			if value == "" {
				return strings.TrimPrefix(modifier, defaultPrefix)
			}
			return value
		}
		return value
	}
}

func rfc1034Identifier(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func c99ExtIdentifier(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '-' || r == ' ' {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
