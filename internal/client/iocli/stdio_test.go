package iocli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

// Тесты для Println и Printf — переадресуют в fmt.Println/Printf,
// здесь можно проверить просто, что вызовы не падают.
func TestPrintlnAndPrintf(t *testing.T) {
	stdio := NewStdio()

	assert.NotPanics(t, func() {
		stdio.Println("hello", "world")
	})
	assert.NotPanics(t, func() {
		stdio.Printf("test %d %s", 1, "abc")
	})
}

// Тест ReadInput: читаем из буфера вместо os.Stdin
func TestReadInput(t *testing.T) {
	input := "user input\n"
	r, w, err := os.Pipe()
	assert.NoError(t, err)

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	stdio := NewStdio()
	got, err := stdio.ReadInput("prompt: ")
	assert.NoError(t, err)
	assert.Equal(t, "user input", got)
}

// В тестовой среде stdout обычно не терминал
func TestTermSizeNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	assert.NoError(t, err)
	defer func() { _ = r.Close(); _ = w.Close() }()

	oldStdout := os.Stdout
	defer func() { os.Stdout = oldStdout }()
	os.Stdout = w

	stdio := NewStdio()
	_, _, err = stdio.TermSize()
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	r, w, err := os.Pipe()
	assert.NoError(t, err)

	oldStdout := os.Stdout
	defer func() { os.Stdout = oldStdout }()
	os.Stdout = w

	stdio := NewStdio()
	n, err := stdio.Write([]byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	_ = w.Close()
	buf := make([]byte, 8)
	read, _ := r.Read(buf)
	assert.Equal(t, "abc", string(buf[:read]))
}
