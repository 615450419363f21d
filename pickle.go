package note2clip

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// Record is one (MIME type, content) pair inside a Web Custom MIME
// Data container. Record order is significant: consumers may expect a
// specific type first, so encoding and decoding both preserve it.
type Record struct {
	Key   string
	Value string
}

// EncodeWebCustomData serializes records into Chromium's Web Custom
// MIME Data Format, the Pickle-based container browsers use to carry
// custom MIME types through the system clipboard.
//
// Layout, all little-endian:
//
//	uint32  payload size (byte count of everything after this field)
//	uint32  entry count
//	per entry, for the key and then the value:
//	    uint32     UTF-16 code unit count
//	    char16[]   UTF-16LE data
//	    zero padding to the next 4-byte boundary
//
// Char counts are UTF-16 code units, not bytes and not code points:
// each half of a surrogate pair counts as one unit. Embedded NULs are
// valid code units and pass through unchanged.
func EncodeWebCustomData(records []Record) []byte {
	var body bytes.Buffer

	writeUint32(&body, uint32(len(records)))
	for _, r := range records {
		writeString16(&body, r.Key)
		writeString16(&body, r.Value)
	}

	out := make([]byte, 4, 4+body.Len())
	binary.LittleEndian.PutUint32(out, uint32(body.Len()))
	return append(out, body.Bytes()...)
}

// DecodeWebCustomData parses a Web Custom MIME Data container back
// into its records. Declared sizes are checked against the buffer's
// actual remaining length; a truncated or oversized count is a decode
// failure, never a read past the end.
func DecodeWebCustomData(data []byte) ([]Record, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: %d bytes", ErrContainerTruncated, len(data))
	}

	payloadSize := binary.LittleEndian.Uint32(data)
	if int64(payloadSize) > int64(len(data)-4) {
		return nil, fmt.Errorf("%w: declared %d bytes, have %d", ErrContainerSize, payloadSize, len(data)-4)
	}

	// Clipboard buffers may carry trailing allocation slack; only the
	// declared payload is parsed.
	payload := data[4 : 4+payloadSize]
	count := binary.LittleEndian.Uint32(payload)
	payload = payload[4:]

	// Each entry needs at least two length fields plus padding; a count
	// beyond that is lying about the buffer.
	if int64(count) > int64(len(payload))/8 {
		return nil, fmt.Errorf("%w: %d entries declared in %d bytes", ErrContainerTruncated, count, len(payload))
	}

	records := make([]Record, 0, count)
	for i := uint32(0); i < count; i++ {
		key, rest, err := readString16(payload)
		if err != nil {
			return nil, fmt.Errorf("entry %d key: %w", i, err)
		}
		value, rest, err := readString16(rest)
		if err != nil {
			return nil, fmt.Errorf("entry %d value: %w", i, err)
		}
		records = append(records, Record{Key: key, Value: value})
		payload = rest
	}

	return records, nil
}

// writeString16 appends a length-prefixed UTF-16LE string plus zero
// padding to the next 4-byte boundary.
func writeString16(b *bytes.Buffer, s string) {
	units := utf16.Encode([]rune(s))
	writeUint32(b, uint32(len(units)))
	for _, u := range units {
		b.WriteByte(byte(u))
		b.WriteByte(byte(u >> 8))
	}
	for i := pad4(2 * len(units)); i > 0; i-- {
		b.WriteByte(0)
	}
}

// readString16 consumes one length-prefixed UTF-16LE string and its
// padding, returning the string and the remaining buffer.
func readString16(data []byte) (string, []byte, error) {
	if len(data) < 4 {
		return "", nil, fmt.Errorf("%w: missing length field", ErrContainerTruncated)
	}
	charCount := binary.LittleEndian.Uint32(data)
	data = data[4:]

	byteLen := int64(charCount) * 2
	need := byteLen + int64(pad4(int(byteLen%4)))
	if need > int64(len(data)) {
		return "", nil, fmt.Errorf("%w: declared %d code units, %d bytes remain", ErrContainerTruncated, charCount, len(data))
	}

	units := make([]uint16, charCount)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[2*i:])
	}

	return string(utf16.Decode(units)), data[need:], nil
}

// pad4 returns the zero padding needed after n bytes to restore
// 4-byte alignment.
func pad4(n int) int {
	return (4 - n%4) % 4
}

func writeUint32(b *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.Write(tmp[:])
}
