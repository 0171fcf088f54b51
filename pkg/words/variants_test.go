package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"squirrels", "squirrel"},
		{"squirrel", "squirrel"},
		{"runs", "run"},
		{"running", "runn"},
		{"boxes", "boxe"},
		{"jumped", "jump"},
		{"bigger", "bigg"},
		{"fastest", "fast"},
		{"best", "b"},
		{"bet", "bet"},
		{"s", ""},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Stem(test.input), test.input)
	}
}

func TestIsVariation(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"squirrel", "squirrels", true},
		{"jump", "jumped", true},
		{"jumped", "jumping", true},
		{"cat", "cater", true},
		{"runs", "running", false},
		{"best", "bet", false},
		{"box", "boxes", false},
		{"acorn", "acorn", true},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IsVariation(test.a, test.b), "%s/%s", test.a, test.b)
		assert.Equal(t, test.expected, IsVariation(test.b, test.a), "%s/%s", test.b, test.a)
	}
}
