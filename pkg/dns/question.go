package dns

import "fmt"

// DNSQuestion is the restricted record form carried in the question
// section: name, type and class, in that wire order.
type DNSQuestion struct {
	Name  string
	Type  DNSType
	Class DNSClass
}

// ToBytes converts the question to its wire form: encoded name followed
// by type and class as big-endian 16-bit values.
func (q *DNSQuestion) ToBytes() ([]byte, error) {
	name, err := EncodeName(q.Name)
	if err != nil {
		return nil, fmt.Errorf("can't serialize DNS question: %w", err)
	}

	typeBytes := dnsTypeClassToBytes(q.Type)
	classBytes := dnsTypeClassToBytes(q.Class)

	question := make([]byte, 0, len(name)+4)
	question = append(question, name...)
	question = append(question, typeBytes[:]...)
	question = append(question, classBytes[:]...)

	return question, nil
}

// NewDNSQuestionFromBytes reads one question from the start of data,
// resolving compressed names through originalMessage. It returns the
// question and the number of bytes it occupies in data.
func NewDNSQuestionFromBytes(data []byte, originalMessage []byte) (*DNSQuestion, uint16, error) {
	name, nameSize, err := DecodeName(data, originalMessage)
	if err != nil {
		return nil, 0, fmt.Errorf("can't parse DNS question: %w", err)
	}

	data = data[nameSize:] // Remove domain name data

	if len(data) < 4 {
		return nil, 0, fmt.Errorf("can't parse DNS question: not enough bytes for type and class")
	}

	question := &DNSQuestion{
		Name:  name,
		Type:  DNSType(uint16(data[0])<<8 | uint16(data[1])),
		Class: DNSClass(uint16(data[2])<<8 | uint16(data[3])),
	}

	return question, nameSize + 4, nil
}

// NewDNSQuestions reads count questions in sequence.
func NewDNSQuestions(data []byte, count uint16, originalMessage []byte) ([]DNSQuestion, uint16, error) {
	resultQuestions := make([]DNSQuestion, 0, count)
	questionsDataSize := uint16(0)

	for range count {
		question, size, err := NewDNSQuestionFromBytes(data, originalMessage)
		if err != nil {
			return nil, 0, err
		}

		resultQuestions = append(resultQuestions, *question)
		questionsDataSize += size
		data = data[size:]
	}

	return resultQuestions, questionsDataSize, nil
}
