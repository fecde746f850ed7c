package dns

import (
	"fmt"
	"strings"
)

// DNSType represents a DNS record type
type DNSType uint16

// DNS Type constants
const (
	TYPE_A     DNSType = 1  // a host address
	TYPE_NS    DNSType = 2  // an authoritative name server
	TYPE_MD    DNSType = 3  // a mail destination (Obsolete - use MX)
	TYPE_MF    DNSType = 4  // a mail forwarder (Obsolete - use MX)
	TYPE_CNAME DNSType = 5  // the canonical name for an alias
	TYPE_SOA   DNSType = 6  // marks the start of a zone of authority
	TYPE_MB    DNSType = 7  // a mailbox domain name (EXPERIMENTAL)
	TYPE_MG    DNSType = 8  // a mail group member (EXPERIMENTAL)
	TYPE_MR    DNSType = 9  // a mail rename domain name (EXPERIMENTAL)
	TYPE_NULL  DNSType = 10 // a null RR (EXPERIMENTAL)
	TYPE_WKS   DNSType = 11 // a well known service description
	TYPE_PTR   DNSType = 12 // a domain name pointer
	TYPE_HINFO DNSType = 13 // host information
	TYPE_MINFO DNSType = 14 // mailbox or mail list information
	TYPE_MX    DNSType = 15 // mail exchange
	TYPE_TXT   DNSType = 16 // text strings
	TYPE_AAAA  DNSType = 28 // IPv6 host address
)

// String returns the string representation of a DNS type
func (t DNSType) String() string {
	switch t {
	case TYPE_A:
		return "A"
	case TYPE_NS:
		return "NS"
	case TYPE_MD:
		return "MD"
	case TYPE_MF:
		return "MF"
	case TYPE_CNAME:
		return "CNAME"
	case TYPE_SOA:
		return "SOA"
	case TYPE_MB:
		return "MB"
	case TYPE_MG:
		return "MG"
	case TYPE_MR:
		return "MR"
	case TYPE_NULL:
		return "NULL"
	case TYPE_WKS:
		return "WKS"
	case TYPE_PTR:
		return "PTR"
	case TYPE_HINFO:
		return "HINFO"
	case TYPE_MINFO:
		return "MINFO"
	case TYPE_MX:
		return "MX"
	case TYPE_TXT:
		return "TXT"
	case TYPE_AAAA:
		return "AAAA"
	default:
		return "UNKNOWN"
	}
}

// DNSTypeFromString resolves a record type mnemonic such as "A" or "MX"
func DNSTypeFromString(name string) (DNSType, error) {
	switch strings.ToUpper(name) {
	case "A":
		return TYPE_A, nil
	case "NS":
		return TYPE_NS, nil
	case "MD":
		return TYPE_MD, nil
	case "MF":
		return TYPE_MF, nil
	case "CNAME":
		return TYPE_CNAME, nil
	case "SOA":
		return TYPE_SOA, nil
	case "MB":
		return TYPE_MB, nil
	case "MG":
		return TYPE_MG, nil
	case "MR":
		return TYPE_MR, nil
	case "NULL":
		return TYPE_NULL, nil
	case "WKS":
		return TYPE_WKS, nil
	case "PTR":
		return TYPE_PTR, nil
	case "HINFO":
		return TYPE_HINFO, nil
	case "MINFO":
		return TYPE_MINFO, nil
	case "MX":
		return TYPE_MX, nil
	case "TXT":
		return TYPE_TXT, nil
	case "AAAA":
		return TYPE_AAAA, nil
	default:
		return 0, fmt.Errorf("unknown DNS type: %q", name)
	}
}

// DNSClass represents a DNS class
type DNSClass uint16

// DNS Class constants
const (
	CLASS_IN DNSClass = 1 // Internet
	CLASS_CS DNSClass = 2 // the CSNET class (Obsolete - used only for examples in some obsolete RFCs)
	CLASS_CH DNSClass = 3 // the CHAOS class
	CLASS_HS DNSClass = 4 // Hesiod [Dyer 87]
)

// String returns the string representation of a DNS class
func (c DNSClass) String() string {
	switch c {
	case CLASS_IN:
		return "IN"
	case CLASS_CS:
		return "CS"
	case CLASS_CH:
		return "CH"
	case CLASS_HS:
		return "HS"
	default:
		return "UNKNOWN"
	}
}

// DNSClassFromString resolves a class mnemonic such as "IN"
func DNSClassFromString(name string) (DNSClass, error) {
	switch strings.ToUpper(name) {
	case "IN":
		return CLASS_IN, nil
	case "CS":
		return CLASS_CS, nil
	case "CH":
		return CLASS_CH, nil
	case "HS":
		return CLASS_HS, nil
	default:
		return 0, fmt.Errorf("unknown DNS class: %q", name)
	}
}

// DNSOpcode represents a DNS operation code (4-bit header field)
type DNSOpcode uint8

// DNS Opcode constants
const (
	OPCODE_QUERY  DNSOpcode = 0 // Standard query
	OPCODE_IQUERY DNSOpcode = 1 // Inverse query (obsolete)
	OPCODE_STATUS DNSOpcode = 2 // Server status request
	OPCODE_NOTIFY DNSOpcode = 4 // Notify
	OPCODE_UPDATE DNSOpcode = 5 // Dynamic update
)

// String returns the string representation of a DNS opcode
func (o DNSOpcode) String() string {
	switch o {
	case OPCODE_QUERY:
		return "QUERY"
	case OPCODE_IQUERY:
		return "IQUERY"
	case OPCODE_STATUS:
		return "STATUS"
	case OPCODE_NOTIFY:
		return "NOTIFY"
	case OPCODE_UPDATE:
		return "UPDATE"
	default:
		return "UNKNOWN"
	}
}

// DNSRCode represents a DNS response code (4-bit header field)
type DNSRCode uint8

// DNS Response Code constants
const (
	RCODE_NO_ERROR        DNSRCode = 0 // No error
	RCODE_FORMAT_ERROR    DNSRCode = 1 // Format error
	RCODE_SERVER_FAILURE  DNSRCode = 2 // Server failure
	RCODE_NAME_ERROR      DNSRCode = 3 // Name error (domain doesn't exist)
	RCODE_NOT_IMPLEMENTED DNSRCode = 4 // Not implemented
	RCODE_REFUSED         DNSRCode = 5 // Refused
)

// String returns the string representation of a DNS response code
func (r DNSRCode) String() string {
	switch r {
	case RCODE_NO_ERROR:
		return "NOERROR"
	case RCODE_FORMAT_ERROR:
		return "FORMERR"
	case RCODE_SERVER_FAILURE:
		return "SERVFAIL"
	case RCODE_NAME_ERROR:
		return "NXDOMAIN"
	case RCODE_NOT_IMPLEMENTED:
		return "NOTIMP"
	case RCODE_REFUSED:
		return "REFUSED"
	default:
		return "UNKNOWN"
	}
}

// Helper function to convert uint16-based types to [2]byte
func dnsTypeClassToBytes[T ~uint16](value T) [2]byte {
	return [2]byte{byte(value >> 8), byte(value & 0xFF)}
}
