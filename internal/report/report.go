// Package report collects the output of a command across many repositories
// and renders it as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)

// Report accumulates global messages and per-repository messages. Repository
// sections render in the order they were first added, which lets callers
// control ordering (alphabetical, completion order, ...) by insertion.
type Report struct {
	messages []string

	order        []string
	repoMessages map[string][]string
}

// New returns an empty report.
func New() *Report {
	return &Report{repoMessages: make(map[string][]string)}
}

// AddMessage appends a message to the global section.
func (r *Report) AddMessage(msg string) {
	r.messages = append(r.messages, msg)
}

// AddRepoMessage appends a message to the section for the given repository
// path. The first message for a path registers the section; an empty message
// registers the section without adding a body line.
func (r *Report) AddRepoMessage(path, msg string) {
	if _, ok := r.repoMessages[path]; !ok {
		r.order = append(r.order, path)
	}
	r.repoMessages[path] = append(r.repoMessages[path], msg)
}

// PadRepoOutput appends a blank line to every repository section, separating
// sections visually in text output.
func (r *Report) PadRepoOutput() {
	for _, path := range r.order {
		r.repoMessages[path] = append(r.repoMessages[path], "")
	}
}

// Print renders the report as text: global messages first, then one section
// per repository with at least one message. Headers are styled when w is a
// terminal.
func (r *Report) Print(w io.Writer) {
	style := headerStyle
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		style = lipgloss.NewStyle()
	}

	for _, msg := range r.messages {
		fmt.Fprintln(w, msg)
	}
	for _, path := range r.order {
		msgs := r.repoMessages[path]
		if len(msgs) == 0 {
			continue
		}
		fmt.Fprintln(w, style.Render(path))
		for _, msg := range msgs {
			if msg == "" {
				continue
			}
			fmt.Fprintln(w, msg)
		}
	}
}

// PrintJSON renders the report as a single JSON object. Padding lines are
// omitted; repository keys come out sorted because that is how Go encodes
// maps, which keeps the output diffable.
func (r *Report) PrintJSON(w io.Writer) error {
	repos := make(map[string][]string, len(r.repoMessages))
	for path, msgs := range r.repoMessages {
		kept := make([]string, 0, len(msgs))
		for _, msg := range msgs {
			if msg != "" {
				kept = append(kept, msg)
			}
		}
		repos[path] = kept
	}

	messages := r.messages
	if messages == nil {
		messages = []string{}
	}

	enc := json.NewEncoder(w)
	return enc.Encode(struct {
		Error        bool                `json:"error"`
		Messages     []string            `json:"messages"`
		RepoMessages map[string][]string `json:"repo_messages"`
	}{
		Error:        false,
		Messages:     messages,
		RepoMessages: repos,
	})
}
