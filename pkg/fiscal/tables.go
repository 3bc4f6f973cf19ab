package fiscal

import "time"

const (
	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	vowels     = "AEIOU"
	padChar    = 'X'
	monthCodes = "ABCDEHLMPRST"
)

// oddValues holds the weights for the 1st, 3rd, 5th... characters of a
// codice fiscale. Digits and letters share the same sequence: '0' and 'A'
// weigh 1, '1' and 'B' weigh 0, and so on up to '9' and 'J'.
var oddValues = [36]int{
	// 0-9
	1, 0, 5, 7, 9, 13, 15, 17, 19, 21,
	// A-Z
	1, 0, 5, 7, 9, 13, 15, 17, 19, 21,
	2, 4, 18, 20, 11, 3, 6, 8, 12, 14,
	16, 10, 22, 25, 24, 23,
}

// evenValues holds the weights for the 2nd, 4th, 6th... characters: digits
// weigh their face value and letters their alphabet index.
var evenValues = [36]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
	20, 21, 22, 23, 24, 25,
}

// alnumIndex returns the table index of an upper-case ASCII alphanumeric
// character, or -1 for anything else.
func alnumIndex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// MonthCode returns the codice fiscale letter for a calendar month.
// It returns 0 for values outside January..December.
func MonthCode(m time.Month) byte {
	if m < time.January || m > time.December {
		return 0
	}
	return monthCodes[m-1]
}

func isVowel(c byte) bool {
	for i := 0; i < len(vowels); i++ {
		if vowels[i] == c {
			return true
		}
	}
	return false
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
