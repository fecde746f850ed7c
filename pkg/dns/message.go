package dns

import "fmt"

// DNSMessage is a full DNS message: header plus the question and answer
// sections this codec knows how to carry.
type DNSMessage struct {
	Header    DNSHeader
	Questions []DNSQuestion
	Answers   []DNSAnswer
}

// ToBytes assembles the outbound packet: header bytes first, then each
// question in declaration order. The header's question count must match
// the question section; a mismatch is a caller error and is never
// silently corrected. Non-zero answer, authority or additional counts
// with no section bytes produce a wire-invalid packet — a known
// limitation of the write-only scope.
func (m *DNSMessage) ToBytes() ([]byte, error) {
	if int(m.Header.QuestionCount) != len(m.Questions) {
		return nil, fmt.Errorf(
			"%w: header declares %d, section has %d",
			ErrQuestionCountMismatch, m.Header.QuestionCount, len(m.Questions),
		)
	}

	message := m.Header.ToBytes()

	for i := range m.Questions {
		questionBytes, err := m.Questions[i].ToBytes()
		if err != nil {
			return nil, err
		}
		message = append(message, questionBytes...)
	}

	for i := range m.Answers {
		answerBytes, err := m.Answers[i].ToBytes()
		if err != nil {
			return nil, err
		}
		message = append(message, answerBytes...)
	}

	return message, nil
}

// NewDNSMessageFromBytes parses the header and question section of an
// inbound packet. Answer sections are not decoded; trailing bytes are
// ignored.
func NewDNSMessageFromBytes(data []byte) (*DNSMessage, error) {
	header, err := NewDNSHeaderFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("can't parse DNS message: %w", err)
	}

	questions, _, err := NewDNSQuestions(data[DNS_HEADER_SIZE:], header.QuestionCount, data)
	if err != nil {
		return nil, fmt.Errorf("can't parse DNS message: %w", err)
	}

	return &DNSMessage{
		Header:    *header,
		Questions: questions,
	}, nil
}

// PrepareResponseHeader derives a reply header from a request header: the
// response flag is set, the id, opcode and remaining flags are carried
// over, and the response code reports NOTIMP for anything but a standard
// query.
func PrepareResponseHeader(reqHeader DNSHeader) DNSHeader {
	respHeader := reqHeader
	respHeader.Response = true

	if reqHeader.Opcode == OPCODE_QUERY {
		respHeader.RCode = RCODE_NO_ERROR
	} else {
		respHeader.RCode = RCODE_NOT_IMPLEMENTED
	}

	return respHeader
}

// GenerateDNSResponse builds the reply to a parsed request: the request's
// questions are echoed back and the counts reflect the sections actually
// present.
func GenerateDNSResponse(request *DNSMessage) *DNSMessage {
	header := PrepareResponseHeader(request.Header)
	header.QuestionCount = uint16(len(request.Questions))
	header.AnswerRecordCount = 0
	header.AuthorityRecordCount = 0
	header.AdditionalRecordCount = 0

	return &DNSMessage{
		Header:    header,
		Questions: request.Questions,
	}
}
