package common

// WipeByteArray overwrites every byte of b with zeros. It is used to clear
// passwords and other short-lived secrets from memory as soon as they are
// no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
