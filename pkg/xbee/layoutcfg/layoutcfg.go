// Package layoutcfg loads layout-table extensions from YAML, for firmware
// variants that add API frames beyond the built-in Series 1 set.
//
// A definition file lists commands and responses with their fields:
//
//	commands:
//	  - name: fw_update
//	    id: 0x20
//	    fields:
//	      - {name: frame_id, len: 1}
//	      - {name: block, len: variable}
//	responses:
//	  - id: 0xa0
//	    kind: fw_status
//	    fields:
//	      - {name: status, len: 1}
//
// Entries with the same command name or response id as a built-in layout
// replace it.
package layoutcfg

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/408881465/xbeeapi/pkg/xbee/api"
)

type File struct {
	Commands  []Command  `yaml:"commands"`
	Responses []Response `yaml:"responses"`
}

type Command struct {
	Name   string  `yaml:"name"`
	ID     uint8   `yaml:"id"`
	Fields []Field `yaml:"fields"`
}

type Response struct {
	ID     uint8   `yaml:"id"`
	Kind   string  `yaml:"kind"`
	Fields []Field `yaml:"fields"`
}

type Field struct {
	Name string `yaml:"name"`
	Len  Length `yaml:"len"`
}

// Length is a field width: a positive byte count or the string "variable".
type Length int

func (l *Length) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var n int
	if err := unmarshal(&n); err == nil {
		*l = Length(n)
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return fmt.Errorf("field length must be a byte count or \"variable\"")
	}
	if s != "variable" {
		return fmt.Errorf("bad field length %q", s)
	}
	*l = Length(api.LengthVariable)
	return nil
}

// Load parses a YAML layout definition and returns a table holding the
// built-in Series 1 layouts plus the file's. The merged table goes through
// the same validation as the built-in one, so malformed definitions fail
// here rather than at decode time.
func Load(contents []byte) (*api.Table, error) {
	return LoadOver(api.Series1Table(), contents)
}

// LoadOver is Load with an explicit base table.
func LoadOver(base *api.Table, contents []byte) (*api.Table, error) {
	var f File
	if err := yaml.Unmarshal(contents, &f); err != nil {
		return nil, fmt.Errorf("parsing layout definition: %w", err)
	}

	commands := base.Commands()
	for _, c := range f.Commands {
		commands[c.Name] = api.CommandLayout{ID: c.ID, Fields: fieldSpecs(c.Fields)}
	}
	responses := base.Responses()
	for _, r := range f.Responses {
		responses[r.ID] = api.ResponseLayout{Kind: r.Kind, Fields: fieldSpecs(r.Fields)}
	}
	return api.NewTable(commands, responses)
}

func fieldSpecs(fields []Field) []api.FieldSpec {
	specs := make([]api.FieldSpec, len(fields))
	for i, f := range fields {
		specs[i] = api.FieldSpec{Name: f.Name, Length: int(f.Len)}
	}
	return specs
}
