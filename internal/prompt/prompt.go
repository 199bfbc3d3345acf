package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrNoSelection is returned when a menu answer is left empty.
	ErrNoSelection = errors.New("no selection made")
	// ErrInvalidSelection is returned for a non-numeric or out-of-range menu answer.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

// New builds a Prompter. Styling is resolved against out, so pipes and
// buffers receive plain text.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Ask prints question and returns the next line of input without its line
// terminator. No other trimming is applied.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, p.styles.question.Render(question)); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	return p.readLine()
}

// Select prints title and a numbered list of options, then returns the
// 1-based choice.
func (p *Prompter) Select(title string, options []string) (int, error) {
	var sb strings.Builder
	sb.WriteString(p.styles.title.Render(title))
	sb.WriteString("\n")
	for i, opt := range options {
		sb.WriteString(p.styles.index.Render(fmt.Sprintf("%2d)", i+1)))
		sb.WriteString(" ")
		sb.WriteString(opt)
		sb.WriteString("\n")
	}
	sb.WriteString(p.styles.cursor.Render("> "))
	if _, err := io.WriteString(p.out, sb.String()); err != nil {
		return 0, fmt.Errorf("write menu: %w", err)
	}

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return 0, ErrNoSelection
	}
	// Digits only: strconv.Atoi would also take "+3".
	if strings.TrimLeft(answer, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q (want 1-%d)", ErrInvalidSelection, answer, len(options))
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return 0, fmt.Errorf("%w: %q (want 1-%d)", ErrInvalidSelection, answer, len(options))
	}
	return n, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
