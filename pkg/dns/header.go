package dns

import "fmt"

// DNS_HEADER_SIZE is the fixed size of the wire header in bytes
const DNS_HEADER_SIZE = 12

// DNSHeader represents the fixed 12-byte message header. The flag bits
// share two bytes on the wire:
//
//	byte 2: QR(1) OPCODE(4) AA(1) TC(1) RD(1)
//	byte 3: RA(1) Z(1) AD(1) CD(1) RCODE(4)
//
// Fields stay discrete in memory; packing happens at the byte boundary.
type DNSHeader struct {
	ID                    uint16
	Response              bool
	Opcode                DNSOpcode
	Authoritative         bool
	Truncated             bool
	RecursionDesired      bool
	RecursionAvailable    bool
	Zero                  bool
	AuthenticData         bool
	CheckingDisabled      bool
	RCode                 DNSRCode
	QuestionCount         uint16
	AnswerRecordCount     uint16
	AuthorityRecordCount  uint16
	AdditionalRecordCount uint16
}

// Convert DNSHeader to its 12-byte wire form, big-endian throughout
func (h *DNSHeader) ToBytes() []byte {
	var header = make([]byte, DNS_HEADER_SIZE)
	header[0] = byte(h.ID >> 8)
	header[1] = byte(h.ID & 0xFF)

	if h.Response {
		header[2] |= 1 << 7
	}
	header[2] |= byte(h.Opcode&0xF) << 3
	if h.Authoritative {
		header[2] |= 1 << 2
	}
	if h.Truncated {
		header[2] |= 1 << 1
	}
	if h.RecursionDesired {
		header[2] |= 1
	}

	if h.RecursionAvailable {
		header[3] |= 1 << 7
	}
	if h.Zero {
		header[3] |= 1 << 6
	}
	if h.AuthenticData {
		header[3] |= 1 << 5
	}
	if h.CheckingDisabled {
		header[3] |= 1 << 4
	}
	header[3] |= byte(h.RCode & 0xF)

	header[4] = byte(h.QuestionCount >> 8)
	header[5] = byte(h.QuestionCount & 0xFF)
	header[6] = byte(h.AnswerRecordCount >> 8)
	header[7] = byte(h.AnswerRecordCount & 0xFF)
	header[8] = byte(h.AuthorityRecordCount >> 8)
	header[9] = byte(h.AuthorityRecordCount & 0xFF)
	header[10] = byte(h.AdditionalRecordCount >> 8)
	header[11] = byte(h.AdditionalRecordCount & 0xFF)

	return header
}

// NewDNSHeaderFromBytes unpacks the first 12 bytes of a message into a header
func NewDNSHeaderFromBytes(data []byte) (*DNSHeader, error) {
	if len(data) < DNS_HEADER_SIZE {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrMessageTooShort, len(data), DNS_HEADER_SIZE)
	}

	return &DNSHeader{
		ID:                    uint16(data[0])<<8 | uint16(data[1]),
		Response:              data[2]&(1<<7) != 0,
		Opcode:                DNSOpcode(data[2] >> 3 & 0xF),
		Authoritative:         data[2]&(1<<2) != 0,
		Truncated:             data[2]&(1<<1) != 0,
		RecursionDesired:      data[2]&1 != 0,
		RecursionAvailable:    data[3]&(1<<7) != 0,
		Zero:                  data[3]&(1<<6) != 0,
		AuthenticData:         data[3]&(1<<5) != 0,
		CheckingDisabled:      data[3]&(1<<4) != 0,
		RCode:                 DNSRCode(data[3] & 0xF),
		QuestionCount:         uint16(data[4])<<8 | uint16(data[5]),
		AnswerRecordCount:     uint16(data[6])<<8 | uint16(data[7]),
		AuthorityRecordCount:  uint16(data[8])<<8 | uint16(data[9]),
		AdditionalRecordCount: uint16(data[10])<<8 | uint16(data[11]),
	}, nil
}
