package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(readerFromLines("  hello  "), "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))
	got, err := GetSimpleText(r, "p", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(readerFromLines("first", "second", ""), "Content", &out)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", got)
}

func TestGetMultiline_Empty(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(readerFromLines(""), "Content", &out)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	got, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Contains(t, out.String(), "Enter password")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"yes", true},
		{"YES", true},
		{"n", false},
		{"", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := Confirm(readerFromLines(tt.answer), "Sure?", &out)
		assert.Equal(t, tt.want, got, "answer %q", tt.answer)
	}
}
