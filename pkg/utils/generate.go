package utils

import (
	"math/rand/v2"
	"strconv"
)

// GenerateLoginCode returns a uniform random 6-digit login code
// in the range 100000-999999 inclusive.
func GenerateLoginCode() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}
