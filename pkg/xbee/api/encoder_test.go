package api

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		cmd    string
		fields map[string][]byte
		want   []byte
	}{{
		"at without parameter",
		"at",
		map[string][]byte{"frame_id": {'A'}, "command": []byte("MY")},
		[]byte{0x08, 0x41, 0x4d, 0x59},
	}, {
		"at with parameter",
		"at",
		map[string][]byte{"frame_id": {'+'}, "command": []byte("DL"), "parameter": {0x00, 0x00, 0x13, 0x37}},
		[]byte{0x08, '+', 'D', 'L', 0x00, 0x00, 0x13, 0x37},
	}, {
		"queued at",
		"queued_at",
		map[string][]byte{"frame_id": {0x01}, "command": []byte("BD")},
		[]byte{0x09, 0x01, 'B', 'D'},
	}, {
		"tx",
		"tx",
		map[string][]byte{"frame_id": {0x01}, "dest_addr": {0x56, 0x78}, "options": {0x00}, "data": []byte("hello")},
		[]byte{0x01, 0x01, 0x56, 0x78, 0x00, 'h', 'e', 'l', 'l', 'o'},
	}, {
		"tx long addr",
		"tx_long_addr",
		map[string][]byte{
			"frame_id":  {0x01},
			"dest_addr": {0x00, 0x13, 0xa2, 0x00, 0x40, 0x0a, 0x01, 0x27},
			"options":   {0x00},
			"data":      []byte("ping"),
		},
		[]byte{0x00, 0x01, 0x00, 0x13, 0xa2, 0x00, 0x40, 0x0a, 0x01, 0x27, 0x00, 'p', 'i', 'n', 'g'},
	}, {
		"remote at",
		"remote_at",
		map[string][]byte{
			"frame_id":       {0x52},
			"dest_addr_long": {0x00, 0x13, 0xa2, 0x00, 0x40, 0x0a, 0x01, 0x27},
			"dest_addr":      {0xff, 0xfe},
			"options":        {0x02},
			"command":        []byte("D0"),
			"parameter":      {0x05},
		},
		[]byte{0x17, 0x52, 0x00, 0x13, 0xa2, 0x00, 0x40, 0x0a, 0x01, 0x27, 0xff, 0xfe, 0x02, 'D', '0', 0x05},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.cmd, tt.fields)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode() = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestEncodeUnknownCommand(t *testing.T) {
	_, err := Encode("warp_drive", nil)
	var ue *UnknownCommandError
	if !errors.As(err, &ue) {
		t.Fatalf("Encode() error = %v, want UnknownCommandError", err)
	}
	if ue.Name != "warp_drive" {
		t.Errorf("UnknownCommandError.Name = %q", ue.Name)
	}
}

func TestEncodeMissingField(t *testing.T) {
	_, err := Encode("at", map[string][]byte{"frame_id": {'A'}})
	var me *MissingFieldError
	if !errors.As(err, &me) {
		t.Fatalf("Encode() error = %v, want MissingFieldError", err)
	}
	if me.Field != "command" || me.Length != 2 {
		t.Errorf("MissingFieldError = %+v, want field command length 2", me)
	}
}

func TestEncodeLengthMismatch(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string][]byte
		got    int
	}{{
		"too long",
		map[string][]byte{"frame_id": []byte("AB"), "command": []byte("MY")},
		2,
	}, {
		"too short",
		map[string][]byte{"frame_id": {'A'}, "command": {'M'}},
		1,
	}, {
		// A supplied-but-empty fixed field is a mismatch, not an omission.
		"present but empty",
		map[string][]byte{"frame_id": {}, "command": []byte("MY")},
		0,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode("at", tt.fields)
			var le *LengthMismatchError
			if !errors.As(err, &le) {
				t.Fatalf("Encode() error = %v, want LengthMismatchError", err)
			}
			if le.Got != tt.got {
				t.Errorf("LengthMismatchError.Got = %d, want %d", le.Got, tt.got)
			}
		})
	}
}

func TestEncodeVariableFieldOptional(t *testing.T) {
	withEmpty, err := Encode("at", map[string][]byte{"frame_id": {'A'}, "command": []byte("MY"), "parameter": {}})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	without, err := Encode("at", map[string][]byte{"frame_id": {'A'}, "command": []byte("MY")})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.Equal(withEmpty, without) {
		t.Errorf("empty variable field changed output: % x vs % x", withEmpty, without)
	}
}

func TestEncodeIdentifierAssociation(t *testing.T) {
	// Every command's payload must lead with its declared identifier byte.
	table := Series1Table()
	codec := NewCodec(table, zerolog.Nop())
	for _, name := range table.CommandNames() {
		layout, _ := table.Command(name)
		fields := make(map[string][]byte, len(layout.Fields))
		for _, f := range layout.Fields {
			if !f.Variable() {
				fields[f.Name] = make([]byte, f.Length)
			}
		}
		payload, err := codec.Encode(name, fields)
		if err != nil {
			t.Fatalf("Encode(%q) error = %v", name, err)
		}
		if payload[0] != layout.ID {
			t.Errorf("Encode(%q) leads with 0x%02x, want 0x%02x", name, payload[0], layout.ID)
		}
	}
}
