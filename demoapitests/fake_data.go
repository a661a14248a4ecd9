package demoapitests

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

func fakeTitle(words int) string {
	return gofakeit.Sentence(words)
}

// fakeBody returns the specified number of sentences, one per line.
func fakeBody(sentences int) string {
	lines := make([]string, 0, sentences)
	for i := 0; i < sentences; i++ {
		lines = append(lines, gofakeit.Sentence(8))
	}
	return strings.Join(lines, "\n")
}

func fakeEmail() string {
	return gofakeit.Email()
}
