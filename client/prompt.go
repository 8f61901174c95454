package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// GetConfirmation asks prompt and reads one line from buf. Anything starting
// with "y" or "Y" confirms; an empty line or EOF declines.
func GetConfirmation(prompt string, buf *bufio.Reader, out io.Writer) (bool, error) {
	if inputIsTty() {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
	}

	response, err := buf.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return len(response) > 0 && response[0] == 'y', nil
}

// inputIsTty returns true iff we have an interactive prompt.
func inputIsTty() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
