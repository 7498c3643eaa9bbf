package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	config := loadConfig()
	m := initialModel(config)
	defer m.diag.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	width  int
	height int

	mode    Mode
	els     *elements
	engine  *Engine
	bridge  *paramBridge
	trigger *renderTrigger
	deb     *Debouncer
	diag    *DiagLog
	config  *Config

	focus         Role
	statusMessage string
	fatalMessage  string
}

func initialModel(config *Config) model {
	surface := NewSurface(0, 0)
	set := map[Role]Element{
		RoleOutput: &textArea{},
		RoleDepth:  newNumberField(RoleDepth, "depth"),
		RoleLength: newNumberField(RoleLength, "length"),
		RoleDraw:   &button{label: "Draw"},
		RoleCanvas: surface,
	}
	return newModel(config, set)
}

// newModel resolves the required elements and wires the controller.
// Any missing element parks the model in ModeFailed; there is no
// recovery short of restarting.
func newModel(config *Config, set map[Role]Element) model {
	diag := NewDiagLog(config.TracePath)

	m := model{
		mode:   ModeInitializing,
		diag:   diag,
		config: config,
		deb:    NewDebouncer(config.DebounceDelay),
		focus:  RoleDepth,
	}

	// Bind the output area first when it exists, so a setup failure
	// still lands in the visible log.
	if out, ok := set[RoleOutput].(*textArea); ok && out != nil {
		diag.Attach(out)
	}

	els, err := resolveElements(set)
	if err != nil {
		diag.Log(err.Error(), true)
		m.mode = ModeFailed
		m.fatalMessage = err.Error()
		return m
	}

	m.els = els
	m.engine = NewEngine(diag)
	m.bridge = &paramBridge{store: m.engine, depth: els.depth, length: els.length}
	m.trigger = &renderTrigger{bridge: m.bridge, surface: els.canvas, engine: m.engine, diag: diag}

	m.bridge.readInitial()
	m.setFocus(RoleDepth)
	m.mode = ModeReady
	return m
}

func (m *model) setFocus(role Role) {
	m.focus = role
	m.els.depth.focused = role == RoleDepth
	m.els.length.focused = role == RoleLength
	m.els.draw.focused = role == RoleDraw
}

func (m *model) focusedField() *numberField {
	switch m.focus {
	case RoleDepth:
		return m.els.depth
	case RoleLength:
		return m.els.length
	}
	return nil
}

func (m *model) cycleFocus(backwards bool) {
	order := []Role{RoleDepth, RoleLength, RoleDraw}
	for i, role := range order {
		if role == m.focus {
			if backwards {
				m.setFocus(order[(i+len(order)-1)%len(order)])
			} else {
				m.setFocus(order[(i+1)%len(order)])
			}
			return
		}
	}
	m.setFocus(RoleDepth)
}

func (m model) Init() tea.Cmd {
	// The first render waits for the initial WindowSizeMsg to size
	// the surface.
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.safeUpdate(msg)
}

// safeUpdate is the boundary for anything unexpected escaping the
// update path: the panic is logged and the model parked in
// ModeFailed, since no retry path exists.
func (m model) safeUpdate(msg tea.Msg) (out tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			text := fmt.Sprintf("unhandled error: %v", r)
			m.diag.Log(text, true)
			m.mode = ModeFailed
			m.fatalMessage = text
			out = m
			cmd = nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == ModeReady {
			canvasRows := m.height - 2 - outputRows
			if canvasRows < 1 {
				canvasRows = 1
			}
			m.els.canvas.Resize(m.width, canvasRows)
			m.deb.CancelPending()
			m.trigger.updateTriangle()
		}
		return m, nil

	case debounceFiredMsg:
		if m.mode == ModeReady && m.deb.Current(msg) {
			m.trigger.updateTriangle()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.mode != ModeReady {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	m.statusMessage = ""

	switch msg.Type {
	case tea.KeyTab:
		m.cycleFocus(false)
		return m, nil
	case tea.KeyShiftTab:
		m.cycleFocus(true)
		return m, nil
	case tea.KeyEnter:
		// Discrete trigger: render now, dropping any pending firing.
		m.deb.CancelPending()
		m.trigger.updateTriangle()
		return m, nil
	case tea.KeyBackspace:
		if f := m.focusedField(); f != nil {
			f.Backspace()
			return m, m.deb.Trigger()
		}
		return m, nil
	case tea.KeyDelete:
		if f := m.focusedField(); f != nil {
			f.Delete()
			return m, m.deb.Trigger()
		}
		return m, nil
	case tea.KeyLeft:
		if f := m.focusedField(); f != nil {
			f.Left()
		}
		return m, nil
	case tea.KeyRight:
		if f := m.focusedField(); f != nil {
			f.Right()
		}
		return m, nil
	}

	keyStr := msg.String()
	if f := m.focusedField(); f != nil && f.acceptsRune(keyStr) {
		f.Insert(keyStr)
		return m, m.deb.Trigger()
	}

	switch keyStr {
	case "q":
		return m, tea.Quit
	case "e":
		filename := m.config.GetExportPath(fmt.Sprintf("sierpinski-%s.png", time.Now().Format("20060102-150405")))
		if err := exportPNG(filename, m.engine); err != nil {
			m.diag.Log(fmt.Sprintf("Error exporting PNG: %s", err.Error()), true)
		} else {
			m.statusMessage = fmt.Sprintf("Exported to %s", filename)
			m.diag.Log(m.statusMessage, false)
		}
		return m, nil
	case "s":
		filename := m.config.GetExportPath(fmt.Sprintf("sierpinski-%s.txt", time.Now().Format("20060102-150405")))
		if err := exportText(filename, m.els.canvas); err != nil {
			m.diag.Log(fmt.Sprintf("Error saving snapshot: %s", err.Error()), true)
		} else {
			m.statusMessage = fmt.Sprintf("Saved to %s", filename)
			m.diag.Log(m.statusMessage, false)
		}
		return m, nil
	case "y":
		if err := copyToClipboard(m.els.canvas); err != nil {
			m.diag.Log(fmt.Sprintf("Error copying to clipboard: %s", err.Error()), true)
		} else {
			m.statusMessage = "Copied snapshot to clipboard"
		}
		return m, nil
	}

	return m, nil
}

func fieldView(f *numberField) string {
	val := f.value
	if f.focused {
		val = val[:f.cursor] + "▌" + val[f.cursor:]
		return focusedStyle.Render(fmt.Sprintf("%s: [%s]", f.label, val))
	}
	return blurredStyle.Render(fmt.Sprintf("%s: [%s]", f.label, val))
}

func buttonView(b *button) string {
	label := "[ " + b.label + " ]"
	if b.focused {
		return focusedStyle.Render(label)
	}
	return blurredStyle.Render(label)
}

func (m model) View() string {
	switch m.mode {
	case ModeFailed:
		var result strings.Builder
		result.WriteString(errorStyle.Render("ERROR: " + m.fatalMessage))
		result.WriteString("\n\nPress q to quit.\n")
		return result.String()
	case ModeInitializing:
		return "resolving elements...\n"
	}

	var result strings.Builder

	// Control bar
	result.WriteString(" ")
	result.WriteString(fieldView(m.els.depth))
	result.WriteString("   ")
	result.WriteString(fieldView(m.els.length))
	result.WriteString("   ")
	result.WriteString(buttonView(m.els.draw))
	result.WriteString("\n")

	// Drawing surface
	for _, line := range m.els.canvas.Lines() {
		result.WriteString(line)
		result.WriteString("\n")
	}

	// Output area: tail of the diagnostic log
	tail := m.els.output.Tail(outputRows)
	for i := 0; i < outputRows; i++ {
		if i < len(tail) {
			result.WriteString(errorStyle.Render(tail[i]))
		}
		result.WriteString("\n")
	}

	// Status line
	status := "tab=focus  enter=draw  e=png  s=txt  y=copy  q=quit"
	if m.statusMessage != "" {
		status = m.statusMessage + " | " + status
	}
	result.WriteString(statusStyle.Render(status))

	return result.String()
}
