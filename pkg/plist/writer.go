package plist

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mozharovsky/xcode/types"
)

const shebang = "!$*UTF8*$!"

const maxCachedIndent = 8

// WriterOptions controls cosmetic aspects of serialization. The zero value
// has an empty Tab and Shebang; DefaultWriterOptions holds Xcode's own
// values, and Build always uses those.
type WriterOptions struct {
	Tab     string
	Shebang string
}

// DefaultWriterOptions returns Xcode's canonical tab and shebang text.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{Tab: "\t", Shebang: shebang}
}

// Build serializes value into canonical Old-Style Plist text, using
// comments for the /* ... */ UUID annotations (nil or empty disables
// annotation). Build is the top-level entry point used to write a full
// project document.
func Build(value types.PlistValue, comments map[string]string) string {
	if comments == nil {
		comments = map[string]string{}
	}
	w := &writer{
		comments: comments,
		options:  DefaultWriterOptions(),
		indents:  precomputeIndents("\t"),
	}
	w.buf.Grow(estimateSize(value))
	w.writeShebang()
	w.writeTopLevel(value)
	return w.buf.String()
}

func precomputeIndents(tab string) []string {
	out := make([]string, maxCachedIndent+1)
	cur := ""
	for i := 0; i <= maxCachedIndent; i++ {
		out[i] = cur
		cur += tab
	}
	return out
}

type writer struct {
	buf      strings.Builder
	indent   int
	comments map[string]string
	options  WriterOptions
	indents  []string
}

func (w *writer) writeIndent() {
	if w.indent <= maxCachedIndent {
		w.buf.WriteString(w.indents[w.indent])
		return
	}
	for i := 0; i < w.indent; i++ {
		w.buf.WriteString(w.options.Tab)
	}
}

func (w *writer) writeLine(s string) {
	w.writeIndent()
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func (w *writer) writeAssignLine(key, value string) {
	w.writeIndent()
	w.buf.WriteString(key)
	w.buf.WriteString(" = ")
	w.buf.WriteString(value)
	w.buf.WriteString(";\n")
}

func (w *writer) writeShebang() {
	w.writeIndent()
	w.buf.WriteString("// ")
	w.buf.WriteString(w.options.Shebang)
	w.buf.WriteByte('\n')
}

func (w *writer) formatIDString(id string) string {
	if c, ok := w.comments[id]; ok && c != "" {
		return id + " /* " + c + " */"
	}
	return ensureQuotes(id)
}

func (w *writer) writeFormatID(id string) {
	w.buf.WriteString(w.formatIDString(id))
}

func keyHasFloatValue(key string) bool {
	for i := 0; i < len(key); i++ {
		if key[i] >= 'a' && key[i] <= 'z' {
			return false
		}
	}
	return strings.HasSuffix(key, "SWIFT_VERSION") ||
		strings.HasSuffix(key, "MARKETING_VERSION") ||
		strings.HasSuffix(key, "_DEPLOYMENT_TARGET")
}

func (w *writer) writeTopLevel(value types.PlistValue) {
	w.writeLine("{")
	w.indent++
	if obj, ok := value.AsObject(); ok {
		w.writeObject(obj, true)
	}
	w.indent--
	w.writeLine("}")
}

// writeObject writes every key/value of obj, one per line (except the
// top-level "objects" key, which is routed through writePBXObjects).
func (w *writer) writeObject(obj *types.OrderedMap, isBase bool) {
	obj.Range(func(key string, value types.PlistValue) bool {
		switch value.Kind() {
		case types.KindData:
			data, _ := value.AsData()
			w.writeAssignLine(ensureQuotes(key), formatData(data))
		case types.KindArray:
			items, _ := value.AsArray()
			w.writeArray(key, items)
		case types.KindObject:
			inner, _ := value.AsObject()
			if isBase && key == "objects" {
				w.writePBXObjects(inner)
			} else if !isBase && inner.Len() == 0 {
				w.writeAssignLine(ensureQuotes(key), "{}")
			} else {
				w.writeIndent()
				w.writeFormatID(key)
				w.buf.WriteString(" = {\n")
				w.indent++
				w.writeObject(inner, false)
				w.indent--
				w.writeLine("};")
			}
		case types.KindInteger:
			n, _ := value.AsInteger()
			var token string
			if keyHasFloatValue(key) {
				token = ensureQuotes(strconv.FormatInt(n, 10) + ".0")
			} else {
				token = ensureQuotes(strconv.FormatInt(n, 10))
			}
			w.writeAssignLine(w.formatIDString(key), token)
		case types.KindFloat:
			f, _ := value.AsFloat()
			var token string
			if keyHasFloatValue(key) && f == float64(int64(f)) {
				token = ensureQuotes(strconv.FormatInt(int64(f), 10) + ".0")
			} else {
				token = ensureQuotes(strconv.FormatFloat(f, 'g', -1, 64))
			}
			w.writeAssignLine(w.formatIDString(key), token)
		case types.KindString:
			s, _ := value.AsString()
			var token string
			if key == "remoteGlobalIDString" || key == "TestTargetID" {
				token = ensureQuotes(s)
			} else {
				token = w.formatIDString(s)
			}
			w.writeAssignLine(w.formatIDString(key), token)
		}
		return true
	})
}

func (w *writer) writeArray(key string, items []types.PlistValue) {
	w.writeIndent()
	w.writeFormatID(key)
	w.buf.WriteString(" = (\n")
	w.indent++
	for _, item := range items {
		switch item.Kind() {
		case types.KindData:
			data, _ := item.AsData()
			w.writeLine(formatData(data) + ",")
		case types.KindObject:
			inner, _ := item.AsObject()
			w.writeLine("{")
			w.indent++
			w.writeObject(inner, false)
			w.indent--
			w.writeLine("},")
		case types.KindString:
			s, _ := item.AsString()
			w.writeIndent()
			w.writeFormatID(s)
			w.buf.WriteString(",\n")
		case types.KindInteger:
			n, _ := item.AsInteger()
			w.writeLine(ensureQuotes(strconv.FormatInt(n, 10)) + ",")
		case types.KindFloat:
			f, _ := item.AsFloat()
			w.writeLine(ensureQuotes(strconv.FormatFloat(f, 'g', -1, 64)) + ",")
		case types.KindArray:
			// nested arrays are not part of the canonical schema but are
			// written structurally for completeness.
			inner, _ := item.AsArray()
			w.writeLine("(")
			w.indent++
			for _, sub := range inner {
				if s, ok := sub.AsString(); ok {
					w.writeLine(ensureQuotes(s) + ",")
				}
			}
			w.indent--
			w.writeLine("),")
		}
	}
	w.indent--
	w.writeLine(");")
}

type pbxEntry struct {
	uuid  string
	value *types.OrderedMap
}

// writePBXObjects emits the ISA-grouped "objects" body: groups are sorted
// alphabetically by ISA, entries within a group sorted ascending by UUID.
func (w *writer) writePBXObjects(objects *types.OrderedMap) {
	groups := make(map[string][]pbxEntry)
	objects.Range(func(uuid string, value types.PlistValue) bool {
		obj, ok := value.AsObject()
		if !ok {
			return true
		}
		isaVal, _ := obj.Get("isa")
		isa, ok := isaVal.AsString()
		if !ok || isa == "" {
			isa = "Unknown"
		}
		groups[isa] = append(groups[isa], pbxEntry{uuid: uuid, value: obj})
		return true
	})

	isas := make([]string, 0, len(groups))
	for isa := range groups {
		isas = append(isas, isa)
	}
	sort.Strings(isas)

	for _, isa := range isas {
		entries := groups[isa]
		sort.Slice(entries, func(i, j int) bool { return entries[i].uuid < entries[j].uuid })
		w.buf.WriteByte('\n')
		w.writeLine("/* Begin " + isa + " section */")
		for _, e := range entries {
			w.writeObjectInclusive(e.uuid, e.value, isa)
		}
		w.writeLine("/* End " + isa + " section */")
	}
}

func (w *writer) writeObjectInclusive(key string, value *types.OrderedMap, isa string) {
	if isa == "PBXBuildFile" || isa == "PBXFileReference" {
		w.writeObjectInline(key, value)
		return
	}
	w.writeIndent()
	w.writeFormatID(key)
	w.buf.WriteString(" = {\n")
	w.indent++
	w.writeObject(value, false)
	w.indent--
	w.writeLine("};")
}

func (w *writer) writeObjectInline(key string, value *types.OrderedMap) {
	w.writeIndent()
	line := w.inlineRecursive(key, value)
	line = strings.TrimSuffix(line, " ")
	w.buf.WriteString(line)
	w.buf.WriteByte('\n')
}

func (w *writer) inlineRecursive(key string, value *types.OrderedMap) string {
	var b strings.Builder
	b.WriteString(w.formatIDString(key))
	b.WriteString(" = {")
	value.Range(func(k string, v types.PlistValue) bool {
		switch v.Kind() {
		case types.KindData:
			data, _ := v.AsData()
			b.WriteString(k)
			b.WriteString(" = ")
			b.WriteString(formatData(data))
			b.WriteString("; ")
		case types.KindArray:
			items, _ := v.AsArray()
			b.WriteString(k)
			b.WriteString(" = (")
			for _, item := range items {
				if s, ok := item.AsString(); ok {
					var buf []byte
					writeEnsureQuotesTo(&buf, s)
					b.Write(buf)
					b.WriteString(", ")
				}
			}
			b.WriteString("); ")
		case types.KindObject:
			inner, _ := v.AsObject()
			b.WriteString(w.inlineRecursive(k, inner))
			b.WriteByte(' ')
		case types.KindString:
			s, _ := v.AsString()
			if k == "remoteGlobalIDString" || k == "TestTargetID" {
				b.WriteString(k)
				b.WriteString(" = ")
				b.WriteString(ensureQuotes(s))
				b.WriteString("; ")
			} else {
				b.WriteString(k)
				b.WriteString(" = ")
				b.WriteString(w.formatIDString(s))
				b.WriteString("; ")
			}
		case types.KindInteger:
			n, _ := v.AsInteger()
			b.WriteString(k)
			b.WriteString(" = ")
			b.WriteString(ensureQuotes(strconv.FormatInt(n, 10)))
			b.WriteString("; ")
		case types.KindFloat:
			f, _ := v.AsFloat()
			b.WriteString(k)
			b.WriteString(" = ")
			b.WriteString(ensureQuotes(strconv.FormatFloat(f, 'g', -1, 64)))
			b.WriteString("; ")
		}
		return true
	})
	b.WriteString("}; ")
	return b.String()
}

func estimateSize(value types.PlistValue) int {
	switch value.Kind() {
	case types.KindString:
		s, _ := value.AsString()
		return len(s) + 4
	case types.KindInteger:
		return 12
	case types.KindFloat:
		return 16
	case types.KindData:
		b, _ := value.AsData()
		return len(b)*2 + 4
	case types.KindArray:
		items, _ := value.AsArray()
		total := 8
		for _, it := range items {
			total += estimateSize(it)
		}
		return total
	case types.KindObject:
		obj, _ := value.AsObject()
		total := 8
		obj.Range(func(key string, v types.PlistValue) bool {
			total += len(key) + estimateSize(v) + 6
			return true
		})
		return total
	default:
		return 0
	}
}
