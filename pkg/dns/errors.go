package dns

import "errors"

var (
	// ErrEmptyLabel is returned when a domain name contains an empty label
	ErrEmptyLabel = errors.New("empty label in domain name")
	// ErrLabelTooLong is returned when a label exceeds 63 bytes
	ErrLabelTooLong = errors.New("label exceeds 63 bytes")
	// ErrNameTooLong is returned when an encoded name exceeds 255 bytes
	ErrNameTooLong = errors.New("encoded name exceeds 255 bytes")
	// ErrNameTruncated is returned when name data ends before the root label
	ErrNameTruncated = errors.New("name data is truncated")
	// ErrReservedLabelType is returned for the unassigned 0x40/0x80 label prefixes
	ErrReservedLabelType = errors.New("reserved label type")
	// ErrInvalidPointer is returned when a compression pointer is malformed or out of range
	ErrInvalidPointer = errors.New("invalid compression pointer")
	// ErrPointerLoop is returned when compression pointers chain past the jump limit
	ErrPointerLoop = errors.New("too many compression pointer jumps")
	// ErrMessageTooShort is returned when data is smaller than a DNS header
	ErrMessageTooShort = errors.New("message too short for DNS header")
	// ErrQuestionCountMismatch is returned when the header count disagrees with the question section
	ErrQuestionCountMismatch = errors.New("question count does not match question section")
	// ErrAnswerNotImplemented is returned when serializing an answer section
	ErrAnswerNotImplemented = errors.New("answer section encoding is not implemented")
)
