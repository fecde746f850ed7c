package dns

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestDNSHeaderToBytes(t *testing.T) {
	tests := []struct {
		name     string
		header   *DNSHeader
		expected []byte
	}{
		{
			name: "hardcoded response header",
			header: &DNSHeader{
				ID:            1234,
				Response:      true,
				QuestionCount: 1,
			},
			expected: []byte{
				0x04, 0xD2, // ID
				0x80, 0x00, // Flags (QR=1)
				0x00, 0x01, // Question count
				0x00, 0x00, // Answer count
				0x00, 0x00, // Authority count
				0x00, 0x00, // Additional count
			},
		},
		{
			name: "standard query with recursion",
			header: &DNSHeader{
				ID:               0x1234,
				RecursionDesired: true,
				QuestionCount:    1,
			},
			expected: []byte{
				0x12, 0x34, // ID
				0x01, 0x00, // Flags (RD=1)
				0x00, 0x01, // Question count
				0x00, 0x00, // Answer count
				0x00, 0x00, // Authority count
				0x00, 0x00, // Additional count
			},
		},
		{
			name: "response with all common flags",
			header: &DNSHeader{
				ID:                    0x5678,
				Response:              true,
				Authoritative:         true,
				Truncated:             true,
				RecursionDesired:      true,
				RecursionAvailable:    true,
				QuestionCount:         1,
				AnswerRecordCount:     2,
				AuthorityRecordCount:  1,
				AdditionalRecordCount: 1,
			},
			expected: []byte{
				0x56, 0x78, // ID
				0x87, 0x80, // Flags (QR=1, AA=1, TC=1, RD=1, RA=1)
				0x00, 0x01, // Question count
				0x00, 0x02, // Answer count
				0x00, 0x01, // Authority count
				0x00, 0x01, // Additional count
			},
		},
		{
			name: "response with error code",
			header: &DNSHeader{
				ID:            0xABCD,
				Response:      true,
				RCode:         RCODE_NAME_ERROR,
				QuestionCount: 1,
			},
			expected: []byte{
				0xAB, 0xCD, // ID
				0x80, 0x03, // Flags (QR=1, RCODE=3)
				0x00, 0x01, // Question count
				0x00, 0x00, // Answer count
				0x00, 0x00, // Authority count
				0x00, 0x00, // Additional count
			},
		},
		{
			name: "inverse query opcode",
			header: &DNSHeader{
				ID:     0x1111,
				Opcode: OPCODE_IQUERY,
			},
			expected: []byte{
				0x11, 0x11, // ID
				0x08, 0x00, // Flags (OPCODE=1)
				0x00, 0x00, // Question count
				0x00, 0x00, // Answer count
				0x00, 0x00, // Authority count
				0x00, 0x00, // Additional count
			},
		},
		{
			name: "status request opcode",
			header: &DNSHeader{
				ID:     0x2222,
				Opcode: OPCODE_STATUS,
			},
			expected: []byte{
				0x22, 0x22, // ID
				0x10, 0x00, // Flags (OPCODE=2)
				0x00, 0x00, // Question count
				0x00, 0x00, // Answer count
				0x00, 0x00, // Authority count
				0x00, 0x00, // Additional count
			},
		},
		{
			name: "dnssec bits set",
			header: &DNSHeader{
				ID:               0x3333,
				Response:         true,
				Zero:             true,
				AuthenticData:    true,
				CheckingDisabled: true,
			},
			expected: []byte{
				0x33, 0x33, // ID
				0x80, 0x70, // Flags (QR=1, Z=1, AD=1, CD=1)
				0x00, 0x00, // Question count
				0x00, 0x00, // Answer count
				0x00, 0x00, // Authority count
				0x00, 0x00, // Additional count
			},
		},
		{
			name:   "zero header",
			header: &DNSHeader{},
			expected: []byte{
				0x00, 0x00, // ID
				0x00, 0x00, // Flags
				0x00, 0x00, // Question count
				0x00, 0x00, // Answer count
				0x00, 0x00, // Authority count
				0x00, 0x00, // Additional count
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.header.ToBytes()

			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("got %v, want %v", result, test.expected)
			}

			// Verify the length is always 12 bytes
			if len(result) != DNS_HEADER_SIZE {
				t.Errorf("header length: got %d, want %d", len(result), DNS_HEADER_SIZE)
			}
		})
	}
}

func TestDNSHeaderToBytesIdempotent(t *testing.T) {
	header := &DNSHeader{
		ID:            1234,
		Response:      true,
		QuestionCount: 1,
	}

	first := header.ToBytes()
	second := header.ToBytes()

	if !bytes.Equal(first, second) {
		t.Errorf("serialization is not idempotent: %v vs %v", first, second)
	}
}

func TestDNSHeaderByteOrder(t *testing.T) {
	// Multi-byte values must be encoded big-endian
	header := &DNSHeader{
		ID:                    0x1234,
		QuestionCount:         0x9ABC,
		AnswerRecordCount:     0xDEF0,
		AuthorityRecordCount:  0x1357,
		AdditionalRecordCount: 0x2468,
	}

	result := header.ToBytes()

	expected := []byte{
		0x12, 0x34, // ID
		0x00, 0x00, // Flags
		0x9A, 0xBC, // QuestionCount
		0xDE, 0xF0, // AnswerRecordCount
		0x13, 0x57, // AuthorityRecordCount
		0x24, 0x68, // AdditionalRecordCount
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("byte order test failed:\ngot:  %v\nwant: %v", result, expected)
	}
}

func TestNewDNSHeaderFromBytes(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected *DNSHeader
	}{
		{
			name: "query with recursion desired",
			data: []byte{
				0x12, 0x34, // ID
				0x01, 0x00, // Flags (RD=1)
				0x00, 0x01, // Question count
				0x00, 0x00, // Answer count
				0x00, 0x00, // Authority count
				0x00, 0x00, // Additional count
			},
			expected: &DNSHeader{
				ID:               0x1234,
				RecursionDesired: true,
				QuestionCount:    1,
			},
		},
		{
			name: "authoritative response",
			data: []byte{
				0x56, 0x78, // ID
				0x85, 0x80, // Flags (QR=1, AA=1, RD=1, RA=1)
				0x00, 0x01, // Question count
				0x00, 0x03, // Answer count
				0x00, 0x02, // Authority count
				0x00, 0x01, // Additional count
			},
			expected: &DNSHeader{
				ID:                    0x5678,
				Response:              true,
				Authoritative:         true,
				RecursionDesired:      true,
				RecursionAvailable:    true,
				QuestionCount:         1,
				AnswerRecordCount:     3,
				AuthorityRecordCount:  2,
				AdditionalRecordCount: 1,
			},
		},
		{
			name: "status opcode with rcode",
			data: []byte{
				0xAB, 0xCD, // ID
				0x90, 0x04, // Flags (QR=1, OPCODE=2, RCODE=4)
				0x00, 0x00, // Question count
				0x00, 0x00, // Answer count
				0x00, 0x00, // Authority count
				0x00, 0x00, // Additional count
			},
			expected: &DNSHeader{
				ID:       0xABCD,
				Response: true,
				Opcode:   OPCODE_STATUS,
				RCode:    RCODE_NOT_IMPLEMENTED,
			},
		},
		{
			name: "dnssec bits",
			data: []byte{
				0x33, 0x33, // ID
				0x00, 0x70, // Flags (Z=1, AD=1, CD=1)
				0x00, 0x00, // Question count
				0x00, 0x00, // Answer count
				0x00, 0x00, // Authority count
				0x00, 0x00, // Additional count
			},
			expected: &DNSHeader{
				ID:               0x3333,
				Zero:             true,
				AuthenticData:    true,
				CheckingDisabled: true,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := NewDNSHeaderFromBytes(test.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("got %+v, want %+v", result, test.expected)
			}
		})
	}
}

func TestNewDNSHeaderFromBytesTooShort(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "empty data",
			data: []byte{},
		},
		{
			name: "eleven bytes",
			data: make([]byte, 11),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewDNSHeaderFromBytes(test.data)
			if !errors.Is(err, ErrMessageTooShort) {
				t.Errorf("got %v, want ErrMessageTooShort", err)
			}
		})
	}
}

func TestDNSHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		header *DNSHeader
	}{
		{
			name: "standard query",
			header: &DNSHeader{
				ID:               0x1234,
				RecursionDesired: true,
				QuestionCount:    1,
			},
		},
		{
			name: "response with every flag set",
			header: &DNSHeader{
				ID:                    0xFFFF,
				Response:              true,
				Opcode:                OPCODE_UPDATE,
				Authoritative:         true,
				Truncated:             true,
				RecursionDesired:      true,
				RecursionAvailable:    true,
				Zero:                  true,
				AuthenticData:         true,
				CheckingDisabled:      true,
				RCode:                 RCODE_REFUSED,
				QuestionCount:         0xFFFF,
				AnswerRecordCount:     0xFFFF,
				AuthorityRecordCount:  0xFFFF,
				AdditionalRecordCount: 0xFFFF,
			},
		},
		{
			name: "error response",
			header: &DNSHeader{
				ID:            0xABCD,
				Response:      true,
				RCode:         RCODE_SERVER_FAILURE,
				QuestionCount: 1,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reconstructed, err := NewDNSHeaderFromBytes(test.header.ToBytes())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(reconstructed, test.header) {
				t.Errorf("round trip failed: got %+v, want %+v", reconstructed, test.header)
			}
		})
	}
}
