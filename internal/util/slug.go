package util

import "crypto/rand"

const slugAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomSlug returns an n-character random slug over an alphabet without the
// easily confused characters (0/O, 1/l/I).
func RandomSlug(n int) string {
	buf := make([]byte, n)
	rand.Read(buf)
	for i := range buf {
		buf[i] = slugAlphabet[int(buf[i])%len(slugAlphabet)]
	}
	return string(buf)
}
