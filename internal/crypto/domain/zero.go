package domain

// Zero overwrites key material in place so derived keys do not linger in
// memory after use. Safe on nil and empty slices.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
