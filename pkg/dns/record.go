package dns

import "fmt"

// DNSResourceRecord is the generic record shape shared by every message
// section: owner name, type, class, ttl and opaque RDATA. Questions are
// the restricted form carrying only name, type and class.
type DNSResourceRecord struct {
	Name  string
	Type  DNSType
	Class DNSClass
	TTL   uint32
	Data  []byte
}

// ToBytes converts the record to its wire form. The RDATA length field is
// derived from len(Data) at serialization time, so the two can't drift.
func (r *DNSResourceRecord) ToBytes() ([]byte, error) {
	name, err := EncodeName(r.Name)
	if err != nil {
		return nil, fmt.Errorf("can't serialize resource record: %w", err)
	}

	typeBytes := dnsTypeClassToBytes(r.Type)
	classBytes := dnsTypeClassToBytes(r.Class)

	record := make([]byte, 0, len(name)+10+len(r.Data))
	record = append(record, name...)
	record = append(record, typeBytes[:]...)
	record = append(record, classBytes[:]...)
	record = append(record,
		byte(r.TTL>>24), byte(r.TTL>>16), byte(r.TTL>>8), byte(r.TTL),
	)
	record = append(record, byte(len(r.Data)>>8), byte(len(r.Data)&0xFF))
	record = append(record, r.Data...)

	return record, nil
}

// DNSAnswer marks a record destined for the answer section. Building that
// section is not implemented: serializing a DNSAnswer fails with
// ErrAnswerNotImplemented instead of emitting zeroed fields.
type DNSAnswer struct {
	DNSResourceRecord
}

// ToBytes always fails; the answer section has no encoding path yet.
func (a *DNSAnswer) ToBytes() ([]byte, error) {
	return nil, fmt.Errorf("%w: answer for %q", ErrAnswerNotImplemented, a.Name)
}
