package dns

import (
	"fmt"
	"strings"
)

// BinaryString renders a packet as space-separated 8-bit groups, one per
// byte.
func BinaryString(data []byte) string {
	groups := make([]string, len(data))
	for i, b := range data {
		groups[i] = fmt.Sprintf("%08b", b)
	}
	return strings.Join(groups, " ")
}

// HexString renders a packet as space-separated uppercase hex octets.
func HexString(data []byte) string {
	return fmt.Sprintf("% X", data)
}

// DecimalString renders a packet as its decimal byte values.
func DecimalString(data []byte) string {
	return fmt.Sprint(data)
}
