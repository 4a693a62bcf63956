package api

// Command identifier bytes for Series 1 modules with recent firmware.
const (
	CmdIDTxLongAddr byte = 0x00
	CmdIDTx         byte = 0x01
	CmdIDAT         byte = 0x08
	CmdIDQueuedAT   byte = 0x09
	CmdIDRemoteAT   byte = 0x17
)

// Response identifier bytes for Series 1 modules.
const (
	RespIDRxLongAddr       byte = 0x80
	RespIDRx               byte = 0x81
	RespIDRxIOData         byte = 0x83
	RespIDATResponse       byte = 0x88
	RespIDTxStatus         byte = 0x89
	RespIDStatus           byte = 0x8a
	RespIDRemoteATResponse byte = 0x97
)

var series1Commands = map[string]CommandLayout{
	"at": {ID: CmdIDAT, Fields: []FieldSpec{
		{Name: "frame_id", Length: 1},
		{Name: "command", Length: 2},
		{Name: "parameter", Length: LengthVariable},
	}},
	"queued_at": {ID: CmdIDQueuedAT, Fields: []FieldSpec{
		{Name: "frame_id", Length: 1},
		{Name: "command", Length: 2},
		{Name: "parameter", Length: LengthVariable},
	}},
	"remote_at": {ID: CmdIDRemoteAT, Fields: []FieldSpec{
		{Name: "frame_id", Length: 1},
		{Name: "dest_addr_long", Length: 8},
		{Name: "dest_addr", Length: 2},
		{Name: "options", Length: 1},
		{Name: "command", Length: 2},
		{Name: "parameter", Length: LengthVariable},
	}},
	"tx_long_addr": {ID: CmdIDTxLongAddr, Fields: []FieldSpec{
		{Name: "frame_id", Length: 1},
		{Name: "dest_addr", Length: 8},
		{Name: "options", Length: 1},
		{Name: "data", Length: LengthVariable},
	}},
	"tx": {ID: CmdIDTx, Fields: []FieldSpec{
		{Name: "frame_id", Length: 1},
		{Name: "dest_addr", Length: 2},
		{Name: "options", Length: 1},
		{Name: "data", Length: LengthVariable},
	}},
}

var series1Responses = map[byte]ResponseLayout{
	RespIDRxLongAddr: {Kind: "rx_long_addr", Fields: []FieldSpec{
		{Name: "source_addr", Length: 8},
		{Name: "rssi", Length: 1},
		{Name: "options", Length: 1},
		{Name: "rf_data", Length: LengthVariable},
	}},
	RespIDRx: {Kind: "rx", Fields: []FieldSpec{
		{Name: "source_addr", Length: 2},
		{Name: "rssi", Length: 1},
		{Name: "options", Length: 1},
		{Name: "rf_data", Length: LengthVariable},
	}},
	RespIDRxIOData: {Kind: "rx_io_data", Fields: []FieldSpec{
		{Name: "source_addr", Length: 2},
		{Name: "rssi", Length: 1},
		{Name: "options", Length: 1},
		{Name: "samples", Length: LengthVariable},
	}},
	RespIDTxStatus: {Kind: "tx_status", Fields: []FieldSpec{
		{Name: "frame_id", Length: 1},
		{Name: "status", Length: 1},
	}},
	RespIDStatus: {Kind: "status", Fields: []FieldSpec{
		{Name: "status", Length: 1},
	}},
	RespIDATResponse: {Kind: "at_response", Fields: []FieldSpec{
		{Name: "frame_id", Length: 1},
		{Name: "command", Length: 2},
		{Name: "status", Length: 1},
		{Name: "parameter", Length: LengthVariable},
	}},
	RespIDRemoteATResponse: {Kind: "remote_at_response", Fields: []FieldSpec{
		{Name: "frame_id", Length: 1},
		{Name: "source_addr_long", Length: 8},
		{Name: "source_addr", Length: 2},
		{Name: "command", Length: 2},
		{Name: "status", Length: 1},
		{Name: "parameter", Length: LengthVariable},
	}},
}

var series1 = mustTable(series1Commands, series1Responses)

// Series1Table returns the built-in layout table for Series 1 modules. The
// table is shared and immutable.
func Series1Table() *Table {
	return series1
}

func mustTable(commands map[string]CommandLayout, responses map[byte]ResponseLayout) *Table {
	t, err := NewTable(commands, responses)
	if err != nil {
		panic(err)
	}
	return t
}
