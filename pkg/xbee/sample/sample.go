// Package sample decodes the batched I/O sample payload carried inside
// rx_io_data responses. The layout is fixed by the Series 1 API rather than
// table-driven: a sample count, a 16-bit enabled-channel mask, then one
// record per sample.
package sample

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/408881465/xbeeapi/pkg/xbee/api"
)

const (
	headerLength = 3

	// The mask's high byte carries DIO8 in bit 0 and ADC0-5 in bits 1-6;
	// the low byte carries DIO0-7.
	maxDigitalLine = 8
	numAnalogLines = 6

	analogMask = 0x3ff // readings are 10-bit
)

// Sample holds the channel readings for one sample slot. Digital is keyed by
// DIO line number (0-8), Analog by ADC line number (0-5) with 10-bit
// readings. Only enabled channels appear.
type Sample struct {
	Digital map[int]bool
	Analog  map[int]uint16
}

// DigitalKey returns the wire-style channel identifier for a DIO line,
// e.g. "dio-3".
func DigitalKey(line int) string {
	return fmt.Sprintf("dio-%d", line)
}

// AnalogKey returns the wire-style channel identifier for an ADC line,
// e.g. "adc-0".
func AnalogKey(line int) string {
	return fmt.Sprintf("adc-%d", line)
}

// String renders the sample's channels in ascending line order using the
// dio-<n>/adc-<n> identifiers.
func (s Sample) String() string {
	dio := make([]int, 0, len(s.Digital))
	for line := range s.Digital {
		dio = append(dio, line)
	}
	sort.Ints(dio)
	adc := make([]int, 0, len(s.Analog))
	for line := range s.Analog {
		adc = append(adc, line)
	}
	sort.Ints(adc)

	parts := make([]string, 0, len(dio)+len(adc))
	for _, line := range dio {
		parts = append(parts, fmt.Sprintf("%s=%t", DigitalKey(line), s.Digital[line]))
	}
	for _, line := range adc {
		parts = append(parts, fmt.Sprintf("%s=%d", AnalogKey(line), s.Analog[line]))
	}
	return strings.Join(parts, " ")
}

// Decode parses a raw I/O sample payload (the "samples" field of an
// rx_io_data frame) into one Sample per encoded slot. Every read is bounds
// checked; a payload too short for its declared sample count fails with
// api.ErrTruncated rather than reading past the end.
func Decode(payload []byte) ([]Sample, error) {
	if len(payload) < headerLength {
		return nil, api.ErrTruncated
	}
	count := int(payload[0])
	maskHigh, maskLow := payload[1], payload[2]

	var digital []int
	for line := 0; line < 8; line++ {
		if maskLow&(1<<line) != 0 {
			digital = append(digital, line)
		}
	}
	if maskHigh&0x01 != 0 {
		digital = append(digital, maxDigitalLine)
	}
	var analog []int
	for line := 0; line < numAnalogLines; line++ {
		if maskHigh&(1<<(line+1)) != 0 {
			analog = append(analog, line)
		}
	}

	samples := make([]Sample, 0, count)
	pos := headerLength
	for i := 0; i < count; i++ {
		var s Sample
		if len(digital) > 0 {
			if pos+2 > len(payload) {
				return nil, api.ErrTruncated
			}
			// All digital states share one 16-bit word: low byte holds
			// lines 0-7, high byte bit 0 holds line 8.
			states := binary.BigEndian.Uint16(payload[pos : pos+2])
			s.Digital = make(map[int]bool, len(digital))
			for _, line := range digital {
				s.Digital[line] = states&(1<<line) != 0
			}
			pos += 2
		}
		if len(analog) > 0 {
			s.Analog = make(map[int]uint16, len(analog))
			for _, line := range analog {
				if pos+2 > len(payload) {
					return nil, api.ErrTruncated
				}
				s.Analog[line] = binary.BigEndian.Uint16(payload[pos:pos+2]) & analogMask
				pos += 2
			}
		}
		samples = append(samples, s)
	}
	return samples, nil
}
