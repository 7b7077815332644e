package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const clearSequence = "\x1b[2J\x1b[1;1H"

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// console is the terminal-backed game operator.
type console struct {
	reader *bufio.Reader
	out    io.Writer
	clear  bool
}

func newConsole(in io.Reader, out io.Writer, clear bool) *console {
	return &console{reader: bufio.NewReader(in), out: out, clear: clear}
}

// ReadLine blocks for the next line of operator input.
func (c *console) ReadLine() (string, error) {
	return readLine(c.reader)
}

// Print writes text to the terminal.
func (c *console) Print(text string) {
	fmt.Fprint(c.out, text)
}

// ClearScreen wipes the terminal when clearing is enabled.
func (c *console) ClearScreen() {
	if !c.clear {
		return
	}
	fmt.Fprint(c.out, clearSequence)
}
