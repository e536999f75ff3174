package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompt — подтверждение y/n из входного потока. Конец ввода считается отказом.
type Prompt struct {
	mu        sync.Mutex
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// NewPrompt — assumeYes отвечает "да" без чтения (флаг --yes).
func NewPrompt(in io.Reader, out io.Writer, assumeYes bool) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

func (p *Prompt) Confirm(ctx context.Context, prompt string) bool {
	if p.assumeYes {
		return true
	}
	if ctx.Err() != nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s [s/N] ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim", "y", "yes":
		return true
	default:
		return false
	}
}
