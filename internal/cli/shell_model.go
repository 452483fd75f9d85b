package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/jorisvermeer/cinebot/internal/cli/formatter"
	"github.com/jorisvermeer/cinebot/internal/dialog"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt shellMode = iota // Normal chat input.
	modePick                    // huh question picker is active.
)

// lookupResultMsg delivers a settled remote fetch to the shell.
type lookupResultMsg struct {
	lookup   dialog.Lookup
	fragment dialog.Fragment
}

// shellModel is the bubbletea Model for the interactive chat shell.
type shellModel struct {
	// bubbletea components
	input textinput.Model
	form  *huh.Form // active picker form (nil when not in pick mode)
	width int

	// shell state
	app *App

	// currentCycle identifies the submission whose answer area is on
	// screen. A settled lookup from any other cycle is dropped: its
	// output surface has been superseded.
	currentCycle uuid.UUID

	// mode management
	mode shellMode

	// history
	history    []string
	historyIdx int

	// lifecycle
	quitting bool
}

// newShellModel creates a new bubbletea shell model.
func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return shellModel{
		input: ti,
		app:   app,
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome()),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(promptPrefix) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case lookupResultMsg:
		if out, ok := m.handleLookupResult(msg); ok {
			return m, tea.Println(out)
		}
		return m, nil

	case tea.KeyMsg:
		// Global quit.
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		if m.mode == modePick {
			return m.updatePick(msg)
		}
		return m.updatePrompt(msg)
	}

	// When picking, forward non-key messages to the huh form so it can
	// initialize and transition focus.
	if m.mode == modePick && m.form != nil {
		return m.updatePick(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Tot ziens.") + "\n"
	}
	if m.mode == modePick && m.form != nil {
		return m.form.View()
	}
	return promptPrefix + m.input.View()
}

var promptPrefix = formatter.StylePurple.Render("cinebot") + " " + formatter.Dim("❯") + " "

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if input == "" {
			return m, nil
		}
		m.addHistory(input)
		return m.executeLine(input)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// executeLine handles one submitted line: shell commands first, anything
// else goes to the bot.
func (m shellModel) executeLine(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "exit", "quit":
		m.quitting = true
		return m, tea.Quit
	case "clear":
		return m, tea.Println("\033[H\033[2J")
	case "vragen", "kies":
		return m.startPicker()
	default:
		return m.submitToBot(input)
	}
}

// submitToBot runs one dialog cycle and schedules its remote lookups.
func (m shellModel) submitToBot(input string) (tea.Model, tea.Cmd) {
	p := &transcriptPresenter{}
	reply := m.app.Controller.Submit(p, input)

	switch reply.Kind {
	case dialog.ReplyAnswer:
		m.currentCycle = reply.Cycle
	case dialog.ReplyNoMatch:
		// The answer area was cleared; outstanding lookups are stale.
		m.currentCycle = uuid.Nil
	}

	var cmds []tea.Cmd
	if out := p.String(); out != "" {
		cmds = append(cmds, tea.Println(out))
	}
	for _, lk := range reply.Lookups {
		cmds = append(cmds, fetchCmd(m.app.Controller, lk))
	}
	return m, tea.Batch(cmds...)
}

// fetchCmd executes one lookup off the update loop and delivers the
// settled fragment as a message.
func fetchCmd(c *dialog.Controller, lk dialog.Lookup) tea.Cmd {
	return func() tea.Msg {
		return lookupResultMsg{lookup: lk, fragment: c.Fetch(context.Background(), lk)}
	}
}

// handleLookupResult renders a settled lookup, or drops it when the
// cycle that spawned it is no longer on screen.
func (m *shellModel) handleLookupResult(msg lookupResultMsg) (string, bool) {
	if msg.lookup.Cycle != m.currentCycle {
		return "", false
	}
	return formatter.FormatLookupResult(msg.lookup.Question, msg.fragment), true
}

// ── pick mode ────────────────────────────────────────────────────────────────

const pickFormKey = "question"

// startPicker switches to a huh select over the catalog questions.
func (m shellModel) startPicker() (tea.Model, tea.Cmd) {
	questions := m.app.Controller.Catalog().Questions()
	options := make([]huh.Option[string], len(questions))
	for i, q := range questions {
		options[i] = huh.NewOption(q.Text, q.Text)
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Key(pickFormKey).
			Title("Kies een vraag").
			Options(options...),
	))
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	m.mode = modePick
	return m, m.form.Init()
}

func (m shellModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the picker.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		return m, tea.Println(formatter.Dim("Geannuleerd."))
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		chosen := m.form.GetString(pickFormKey)
		m.mode = modePrompt
		m.form = nil
		model, submitCmd := m.submitToBot(chosen)
		return model, tea.Batch(cmd, submitCmd)
	}

	return m, cmd
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	} else {
		m.historyIdx = len(m.history)
		m.input.SetValue("")
	}
}
