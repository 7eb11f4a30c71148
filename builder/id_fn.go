package builder

import "fmt"

// IDFn generates a valve identifier from its zero-based index.
// It must be pure: the same idx always yields the same ID.
type IDFn func(idx int) string

// LetterIDFn renders idx in base 26 over 'A'..'Z', padded to at least two
// letters: 0→"AA", 1→"AB", 26→"BA", 675→"ZZ", 676→"BAA".
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}

	var buf [16]byte
	i := len(buf)
	for n := idx; n > 0 || len(buf)-i < 2; n /= 26 {
		i--
		buf[i] = byte('A' + n%26)
	}

	return string(buf[i:])
}
