package apppass

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// DefaultLength applies when the caller does not pick a length and
	// no stored preference exists.
	DefaultLength = 30

	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// memorizableWords feed Word-NN-Word passwords.
var memorizableWords = []string{
	"Tiger", "Orange", "Mountain", "River", "Cloud", "Sky", "Sun", "Moon",
}

// randomAlphanumeric returns a random string of exactly length
// characters drawn from [A-Za-z0-9].
func randomAlphanumeric(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(alphanumeric)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %v", err)
		}
		buf[i] = alphanumeric[n.Int64()]
	}
	return string(buf), nil
}

// randomMemorizable composes a Word-NN-Word password with NN between
// 10 and 99 inclusive.
func randomMemorizable() (string, error) {
	first, err := randomWord()
	if err != nil {
		return "", err
	}
	second, err := randomWord()
	if err != nil {
		return "", err
	}
	n, err := rand.Int(rand.Reader, big.NewInt(90))
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %v", err)
	}
	return fmt.Sprintf("%s-%d-%s", first, 10+n.Int64(), second), nil
}

func randomWord() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(memorizableWords))))
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %v", err)
	}
	return memorizableWords[n.Int64()], nil
}
