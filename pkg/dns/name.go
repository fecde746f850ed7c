package dns

import (
	"fmt"
	"strings"
)

const (
	NULL_BYTE = byte('\x00')

	// MAX_LABEL_SIZE bounds a single label's byte length
	MAX_LABEL_SIZE = 63
	// MAX_NAME_SIZE bounds the full encoded name, terminator included
	MAX_NAME_SIZE = 255
	// MAX_POINTER_JUMPS bounds compression pointer chains while decoding
	MAX_POINTER_JUMPS = 5
)

// EncodeName converts a dotted domain name into its label sequence: one
// raw length octet per label followed by the label bytes, terminated by
// the zero-length root label. A single trailing dot is accepted as the
// fully qualified form; "." encodes the root itself.
func EncodeName(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrEmptyLabel)
	}
	if name == "." {
		return []byte{NULL_BYTE}, nil
	}

	name = strings.TrimSuffix(name, ".")
	labels := strings.Split(name, ".")
	encoded := make([]byte, 0, len(name)+2)

	for _, label := range labels {
		if len(label) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyLabel, name)
		}
		if len(label) > MAX_LABEL_SIZE {
			return nil, fmt.Errorf("%w: label %q is %d bytes", ErrLabelTooLong, label, len(label))
		}

		encoded = append(encoded, byte(len(label)))
		encoded = append(encoded, label...)
	}

	encoded = append(encoded, NULL_BYTE)

	if len(encoded) > MAX_NAME_SIZE {
		return nil, fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(encoded))
	}

	return encoded, nil
}

// DecodeName reads a label sequence from the start of data, following
// compression pointers through originalMessage. It returns the dotted
// name and the number of bytes the name occupies in data; a pointer
// occupies two bytes there no matter where it leads.
func DecodeName(data []byte, originalMessage []byte) (string, uint16, error) {
	var labels []string
	var size uint16
	var encodedSize int

	jumps := 0
	jumped := false
	cur := data

	for {
		if len(cur) == 0 {
			return "", 0, fmt.Errorf("%w: missing root label", ErrNameTruncated)
		}

		firstByte := cur[0]

		if isCompressionPointer(firstByte) {
			if len(cur) < 2 {
				return "", 0, fmt.Errorf("%w: pointer needs two bytes", ErrInvalidPointer)
			}
			if jumps >= MAX_POINTER_JUMPS {
				return "", 0, fmt.Errorf("%w: more than %d", ErrPointerLoop, MAX_POINTER_JUMPS)
			}

			offset := extractCompressionOffset(cur)
			if int(offset) >= len(originalMessage) {
				return "", 0, fmt.Errorf("%w: offset %d outside message", ErrInvalidPointer, offset)
			}

			if !jumped {
				size += 2 // Compression pointer is 2 bytes
				jumped = true
			}
			jumps++
			cur = originalMessage[offset:]
			continue
		}

		// The 01 and 10 prefixes are unassigned label types
		if firstByte&0xC0 != 0 {
			return "", 0, fmt.Errorf("%w: 0x%02X", ErrReservedLabelType, firstByte)
		}

		length := int(firstByte)
		encodedSize += 1 // Count the length byte itself
		if !jumped {
			size += 1
		}

		if length == 0 {
			if encodedSize > MAX_NAME_SIZE {
				return "", 0, fmt.Errorf("%w: %d bytes", ErrNameTooLong, encodedSize)
			}
			if len(labels) == 0 {
				return ".", size, nil
			}
			return strings.Join(labels, "."), size, nil
		}

		if len(cur[1:]) < length {
			return "", 0, fmt.Errorf("%w: label needs %d more bytes", ErrNameTruncated, length)
		}

		labels = append(labels, string(cur[1:length+1]))
		encodedSize += length
		if !jumped {
			size += uint16(length)
		}
		cur = cur[length+1:]
	}
}

// isCompressionPointer checks if the length byte starts a compression pointer.
func isCompressionPointer(firstByte byte) bool {
	return (firstByte & 0xC0) == 0xC0
}

// extractCompressionOffset extracts the 14-bit offset from a compression pointer.
func extractCompressionOffset(data []byte) uint16 {
	return uint16(data[0]&0x3F)<<8 | uint16(data[1])
}
