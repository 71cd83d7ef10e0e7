package chainclient

import "math/big"

// FixAddress normalizes a staking address that arrived as a bare decimal
// integer into its 0x-prefixed lowercase hex form. Anything containing a
// non-digit is passed through unchanged; there is no ambient coercion.
func FixAddress(addr string) string {
	if addr == "" {
		return addr
	}
	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}
	n, ok := new(big.Int).SetString(addr, 10)
	if !ok {
		return addr
	}
	return "0x" + n.Text(16)
}
