package iocli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStdio(input string) (*Stdio, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Stdio{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: out,
		fd:  -1, // не терминал
	}, out
}

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnPrintfWrite(t *testing.T) {
	stdio, out := newTestStdio("")

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s\n", 1, "abc")
	n, err := stdio.Write([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestReadInput(t *testing.T) {
	stdio, out := newTestStdio("  user input \nsecond\nlast")

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	result, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", result)

	// Последняя строка без перевода строки
	result, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "last", result)

	// Ввод закончился
	_, err = stdio.ReadInput("")
	assert.Error(t, err)
}

func TestReadPassword_NotTerminal(t *testing.T) {
	stdio, _ := newTestStdio("secret123\n")

	password, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret123", password)
}
