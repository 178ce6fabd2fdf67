// Package progress renders a live spinner for the filesystem scan.
//
// The spinner writes to stderr so stdout stays clean for piping and JSON
// output. It is purely cosmetic: dropping updates is fine, and it never
// starts at all when stderr is not a terminal.
package progress

import (
	"fmt"
	"os"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// messageUpdate is sent to update the spinner message
type messageUpdate string

// Spinner shows scan progress as "<n> repos · <dir>". It starts lazily on
// the first Update and is safe to use from the walk goroutine.
type Spinner struct {
	program   *tea.Program
	msgChan   chan string
	done      chan struct{}
	mu        sync.Mutex
	isRunning bool
	disabled  bool
	width     int
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	msgChan chan string
	quit    bool
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForMessage())
}

func (m spinnerModel) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.msgChan
		if !ok {
			return tea.Quit()
		}
		return messageUpdate(msg)
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quit {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case messageUpdate:
		m.message = string(msg)
		return m, m.waitForMessage()
	case tea.KeyPressMsg:
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() tea.View {
	if m.quit || m.message == "" {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), m.message))
}

// NewSpinner creates an idle spinner. When stderr is not a terminal the
// spinner stays silent for its whole life.
func NewSpinner() *Spinner {
	s := &Spinner{
		msgChan: make(chan string, 10),
		done:    make(chan struct{}),
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		s.disabled = true
		return s
	}
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		s.width = w
	}
	return s
}

// Update sets the spinner line to the current scan state, starting the
// animation on first use.
func (s *Spinner) Update(found int, dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disabled {
		return
	}
	if !s.isRunning {
		s.start()
	}

	msg := fmt.Sprintf("%d repos · %s", found, dir)
	if s.width > 4 && len(msg) > s.width-4 {
		msg = msg[:s.width-4] + "…"
	}

	// Non-blocking send: a dropped frame is invisible, a blocked walk is not.
	select {
	case s.msgChan <- msg:
	default:
	}
}

// start must be called with the mutex held.
func (s *Spinner) start() {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	model := spinnerModel{
		spinner: sp,
		msgChan: s.msgChan,
	}

	s.program = tea.NewProgram(model, tea.WithoutSignalHandler(), tea.WithOutput(os.Stderr))
	s.isRunning = true

	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()
}

// Stop ends the animation and clears the line. Safe to call even if the
// spinner never started.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	close(s.msgChan)
	s.mu.Unlock()

	if s.program != nil {
		s.program.Quit()
	}

	select {
	case <-s.done:
	case <-time.After(500 * time.Millisecond):
	}

	fmt.Fprint(os.Stderr, "\r\033[K")
}
