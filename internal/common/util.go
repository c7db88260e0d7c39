package common

// WipeByteArray zeroes the buffer in place. Passwords read from the terminal
// go through this before being garbage collected.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
