package api

import "github.com/rs/zerolog"

// Codec encodes command payloads and decodes response payloads against a
// layout table. All methods are pure over their inputs and the immutable
// table; a Codec is safe for concurrent use.
type Codec struct {
	table  *Table
	logger zerolog.Logger
}

// NewCodec returns a codec bound to the given table. A nil table selects the
// built-in Series 1 table.
func NewCodec(table *Table, logger zerolog.Logger) *Codec {
	if table == nil {
		table = Series1Table()
	}
	return &Codec{table: table, logger: logger}
}

// Table returns the layout table the codec was built with.
func (c *Codec) Table() *Table {
	return c.table
}

var defaultCodec = NewCodec(Series1Table(), zerolog.Nop())

// Encode builds a Series 1 command payload using the built-in table.
func Encode(cmd string, fields map[string][]byte) ([]byte, error) {
	return defaultCodec.Encode(cmd, fields)
}

// Encode builds the payload for cmd from the supplied field values: the
// layout's identifier byte followed by each field in declared order. Every
// fixed-length field must be present with exactly its declared size. A
// variable-length field is optional and appended verbatim when non-empty.
// On error no output is produced.
func (c *Codec) Encode(cmd string, fields map[string][]byte) ([]byte, error) {
	layout, ok := c.table.Command(cmd)
	if !ok {
		return nil, &UnknownCommandError{Name: cmd}
	}

	size := 1
	for _, f := range layout.Fields {
		if f.Variable() {
			size += len(fields[f.Name])
		} else {
			size += f.Length
		}
	}

	out := make([]byte, 1, size)
	out[0] = layout.ID
	for _, f := range layout.Fields {
		value, present := fields[f.Name]
		if f.Variable() {
			out = append(out, value...)
			continue
		}
		if !present {
			return nil, &MissingFieldError{Field: f.Name, Length: f.Length}
		}
		// A present-but-empty value is a length mismatch, not an omission.
		if len(value) != f.Length {
			return nil, &LengthMismatchError{Field: f.Name, Want: f.Length, Got: len(value)}
		}
		out = append(out, value...)
	}
	return out, nil
}
