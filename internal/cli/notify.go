package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// termNotifier renders alerts and confirmation prompts on the terminal.
// Alert blocks until the user presses Enter, so a failed request is never
// missed mid-session.
type termNotifier struct {
	in  *bufio.Reader
	out io.Writer
}

func newTermNotifier(in *bufio.Reader, out io.Writer) *termNotifier {
	return &termNotifier{in: in, out: out}
}

func (n *termNotifier) Alert(msg string) {
	color.New(color.FgRed, color.Bold).Fprintln(n.out, msg)
	fmt.Fprint(n.out, "Press Enter to continue...")
	_, _ = n.in.ReadString('\n')
}

func (n *termNotifier) Confirm(msg string) bool {
	fmt.Fprintf(n.out, "%s [y/N]: ", msg)
	line, err := n.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
