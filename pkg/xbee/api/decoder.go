package api

// Frame is a decoded response payload: field name to raw bytes, plus the
// synthetic KindKey entry naming the response shape. Each Decode call returns
// a freshly allocated Frame owned by the caller.
type Frame map[string][]byte

// Kind returns the symbolic response kind, e.g. "status" or "at_response".
func (f Frame) Kind() string {
	return string(f[KindKey])
}

// Decode parses a Series 1 response payload using the built-in table.
func Decode(payload []byte) (Frame, error) {
	return defaultCodec.Decode(payload)
}

// Decode splits a deframed response payload into named fields according to
// the layout selected by its leading identifier byte. A layout ending in a
// fixed-length field strictly bounds the payload size; a trailing
// variable-length field consumes the remainder, and its key is omitted when
// the remainder is empty.
func (c *Codec) Decode(payload []byte) (Frame, error) {
	if len(payload) == 0 {
		c.logger.Debug().Msg("empty response payload")
		return nil, ErrTruncated
	}
	layout, ok := c.table.Response(payload[0])
	if !ok {
		c.logger.Debug().Hex("id", payload[:1]).Int("len", len(payload)).Msg("unrecognized response id")
		return nil, &UnknownResponseError{ID: payload[0]}
	}

	frame := Frame{KindKey: []byte(layout.Kind)}
	cursor := 1
	for _, f := range layout.Fields {
		if f.Variable() {
			if rest := payload[cursor:]; len(rest) > 0 {
				frame[f.Name] = append([]byte(nil), rest...)
			}
			cursor = len(payload)
			break
		}
		if cursor+f.Length > len(payload) {
			c.logger.Debug().Str("kind", layout.Kind).Str("field", f.Name).Int("len", len(payload)).Msg("response payload truncated")
			return nil, ErrTruncated
		}
		frame[f.Name] = append([]byte(nil), payload[cursor:cursor+f.Length]...)
		cursor += f.Length
	}
	if cursor < len(payload) {
		c.logger.Debug().Str("kind", layout.Kind).Int("len", len(payload)).Int("want", cursor).Msg("response payload overlong")
		return nil, ErrOverlong
	}
	return frame, nil
}
