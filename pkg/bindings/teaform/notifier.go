package teaform

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formstate/pkg/form"
)

// SettledMsg is delivered when a typing window elapses. Key is empty when the
// form uses a form-wide typing scope.
type SettledMsg struct {
	Key string
}

// Notifier forwards settle callbacks into a running program. The form is
// built before the program exists, so the program is attached afterwards;
// settles before Attach are dropped.
type Notifier struct {
	mu      sync.Mutex
	program *tea.Program
}

// Attach sets the program that receives SettledMsg values.
func (n *Notifier) Attach(p *tea.Program) {
	n.mu.Lock()
	n.program = p
	n.mu.Unlock()
}

// Option returns the form option that wires the notifier.
func (n *Notifier) Option() form.Option {
	return form.WithOnSettle(n.notify)
}

func (n *Notifier) notify(key string) {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()
	if p != nil {
		p.Send(SettledMsg{Key: key})
	}
}
