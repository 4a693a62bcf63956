// Package api implements the payload codec for the XBee Series 1 binary API.
//
// It maps symbolic command names plus named field values to the byte payload
// sent to the module, and received response payloads back to named fields.
// Framing (start delimiter, length, checksum) and serial transport belong to
// the surrounding layers; this package only sees deframed payload bytes.
package api

import "sort"

// LengthVariable marks a field with no fixed width. A variable field is only
// legal in the last position of a layout: it consumes all remaining payload
// bytes on decode and accepts any supplied length on encode.
const LengthVariable = -1

// KindKey is the synthetic key under which a decoded Frame stores the
// symbolic response kind. Layouts may not declare a field with this name.
const KindKey = "kind"

// FieldSpec describes one named field within a command or response payload.
type FieldSpec struct {
	Name   string
	Length int
}

// Variable reports whether the field has no fixed width.
func (f FieldSpec) Variable() bool {
	return f.Length == LengthVariable
}

// CommandLayout describes the wire format of one command payload. ID is the
// identifier byte written first, Fields follow in transmission order.
type CommandLayout struct {
	ID     byte
	Fields []FieldSpec
}

// ResponseLayout describes the wire format of one response payload, keyed in
// the table by its leading identifier byte. Kind is the symbolic tag reported
// to the caller, Fields are parsed in declared order.
type ResponseLayout struct {
	Kind   string
	Fields []FieldSpec
}

// Table is the immutable set of known command and response layouts. It is the
// single source of truth for field order and widths; build one at startup
// with NewTable and share it freely, lookups never mutate it.
type Table struct {
	commands  map[string]CommandLayout
	responses map[byte]ResponseLayout
}

// NewTable validates every layout and returns an immutable table. Malformed
// layouts (variable field not in last position, duplicate or reserved field
// names, non-positive fixed lengths) fail here rather than producing
// inconsistent parses later.
func NewTable(commands map[string]CommandLayout, responses map[byte]ResponseLayout) (*Table, error) {
	t := &Table{
		commands:  make(map[string]CommandLayout, len(commands)),
		responses: make(map[byte]ResponseLayout, len(responses)),
	}
	for name, layout := range commands {
		if name == "" {
			return nil, &LayoutError{Layout: name, Reason: "empty command name"}
		}
		if err := validateFields(name, layout.Fields); err != nil {
			return nil, err
		}
		t.commands[name] = layout
	}
	for id, layout := range responses {
		if layout.Kind == "" {
			return nil, &LayoutError{Layout: byteName(id), Reason: "empty response kind"}
		}
		if err := validateFields(layout.Kind, layout.Fields); err != nil {
			return nil, err
		}
		t.responses[id] = layout
	}
	return t, nil
}

func validateFields(layout string, fields []FieldSpec) error {
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		switch {
		case f.Name == "":
			return &LayoutError{Layout: layout, Reason: "empty field name"}
		case f.Name == KindKey:
			return &LayoutError{Layout: layout, Field: f.Name, Reason: "field name is reserved"}
		case seen[f.Name]:
			return &LayoutError{Layout: layout, Field: f.Name, Reason: "duplicate field name"}
		case f.Variable() && i != len(fields)-1:
			return &LayoutError{Layout: layout, Field: f.Name, Reason: "variable-length field must be last"}
		case !f.Variable() && f.Length <= 0:
			return &LayoutError{Layout: layout, Field: f.Name, Reason: "fixed field length must be positive"}
		}
		seen[f.Name] = true
	}
	return nil
}

// Command looks up the layout for a command name.
func (t *Table) Command(name string) (CommandLayout, bool) {
	layout, ok := t.commands[name]
	return layout, ok
}

// Response looks up the layout for a response identifier byte.
func (t *Table) Response(id byte) (ResponseLayout, bool) {
	layout, ok := t.responses[id]
	return layout, ok
}

// CommandNames returns the known command names in sorted order.
func (t *Table) CommandNames() []string {
	names := make([]string, 0, len(t.commands))
	for name := range t.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResponseIDs returns the known response identifier bytes in ascending order.
func (t *Table) ResponseIDs() []byte {
	ids := make([]byte, 0, len(t.responses))
	for id := range t.responses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Commands returns a copy of the command mapping, for building derived tables.
func (t *Table) Commands() map[string]CommandLayout {
	out := make(map[string]CommandLayout, len(t.commands))
	for name, layout := range t.commands {
		out[name] = layout
	}
	return out
}

// Responses returns a copy of the response mapping, for building derived tables.
func (t *Table) Responses() map[byte]ResponseLayout {
	out := make(map[byte]ResponseLayout, len(t.responses))
	for id, layout := range t.responses {
		out[id] = layout
	}
	return out
}
