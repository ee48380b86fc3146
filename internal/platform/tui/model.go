package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rockdodge/internal/config"
	"github.com/vovakirdan/rockdodge/internal/core"
	"github.com/vovakirdan/rockdodge/internal/sim"
)

// maxFrameGap caps the time fed to the driver for one frame, so a stalled
// terminal does not fast-forward the session.
const maxFrameGap = 250 * time.Millisecond

// statusTTL is how long a status message stays on screen.
const statusTTL = 3 * time.Second

// Model is the Bubble Tea model for a rockdodge session.
type Model struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	proj    Projection
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	now      func() time.Time
	copyText func(string) error
	shotDir  string

	driver   *sim.Driver // nil while the terminal is too small
	screen   *core.Screen
	lastTick time.Time

	heldDir   core.Direction
	heldUntil time.Time

	status      string
	statusUntil time.Time
	quitting    bool
	err         error
}

// NewModel creates a model and starts the first session on a play area
// sized from rt.
func NewModel(cfg config.GameConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	keys, err := NewKeyMap(cfg.Input)
	if err != nil {
		return Model{}, err
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	shotDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		shotDir = filepath.Join(home, ".rockdodge", "screenshots")
	}

	m := Model{
		cfg:      cfg,
		runtime:  rt,
		proj:     DefaultProjection(),
		keys:     keys,
		help:     help.New(),
		logger:   logger,
		now:      time.Now,
		copyText: clipboard.WriteAll,
		shotDir:  shotDir,
		screen:   core.NewScreen(rt.ScreenW, max(rt.ScreenH-helpRows, 0)),
	}
	m.help.Width = rt.ScreenW

	if err := m.startSession(rt.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startSession replaces the driver with a fresh one. A terminal too small
// for the ship leaves the model without a driver rather than failing.
func (m *Model) startSession(seed int64) error {
	d, err := sim.New(m.cfg, sim.WithSeed(seed), sim.WithLogger(m.logger))
	if err != nil {
		return err
	}

	w, h := m.proj.PlayArea(m.runtime.ScreenW, PlayRows(m.runtime.ScreenH))
	if err := d.Start(w, h); err != nil {
		if errors.Is(err, sim.ErrInvalidPlayArea) || errors.Is(err, sim.ErrDegenerateBounds) {
			m.logger.Warn("terminal too small", "cols", m.runtime.ScreenW, "rows", m.runtime.ScreenH)
			m.driver = nil
			return nil
		}
		return err
	}

	m.driver = d
	m.lastTick = time.Time{}
	m.heldDir = core.DirNone
	m.status = ""
	return nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) gameOver() bool {
	return m.driver != nil && m.driver.Snapshot().IsGameOver
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		if m.driver != nil {
			m.driver.Stop()
		}
		return m, tea.Quit
	case core.ActionPause:
		if m.driver != nil && !m.gameOver() {
			m.driver.TogglePause()
		}
		return m, nil
	case core.ActionRestart:
		if m.gameOver() {
			return m.restart()
		}
		return m, nil
	case core.ActionCopy:
		if m.gameOver() {
			m.copySummary()
		}
		return m, nil
	}

	// Terminals report presses and auto-repeats only. Each one extends the
	// hold window; the direction resets when it lapses.
	if dir, ok := m.keys.Direction(msg); ok && m.driver != nil {
		m.heldDir = dir
		m.heldUntil = m.now().Add(m.cfg.Input.Hold)
		m.driver.SetPlayerDirection(dir)
	}
	return m, nil
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	if err := m.startSession(time.Now().UnixNano()); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	if msg.Width == m.runtime.ScreenW && msg.Height == m.runtime.ScreenH && m.driver != nil {
		return m, nil
	}

	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))

	// The play area is fixed for a session, so a new size starts over.
	// A finished session stays on screen until restart.
	if m.driver == nil || !m.gameOver() {
		if m.driver != nil {
			m.driver.Stop()
		}
		if err := m.startSession(time.Now().UnixNano()); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleTick feeds the wall-clock time since the previous frame to the driver.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.status != "" && t.After(m.statusUntil) {
		m.status = ""
	}
	if m.driver == nil {
		return m, tickCmd(m.runtime.TickRate)
	}

	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = min(max(t.Sub(m.lastTick), 0), maxFrameGap)
	}
	m.lastTick = t

	if m.heldDir != core.DirNone && m.cfg.Input.Hold > 0 && !t.Before(m.heldUntil) {
		m.heldDir = core.DirNone
		m.driver.SetPlayerDirection(core.DirNone)
	}

	if err := m.driver.Advance(dt); err != nil {
		m.logger.Error("simulation failed", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.runtime.TickRate)
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusUntil = m.now().Add(statusTTL)
}

// copySummary puts the run summary on the system clipboard.
func (m *Model) copySummary() {
	summary := Summary(m.driver.Snapshot())
	if err := m.copyText(summary); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("summary copied")
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		m.setStatus("no screenshot directory")
		return
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.setStatus("screenshot failed")
		return
	}

	m.drawFrame()
	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("rockdodge_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

func (m *Model) drawFrame() {
	if m.driver == nil {
		m.screen.Clear()
		return
	}
	DrawFrame(m.screen, m.driver.Snapshot(), m.proj)
	if m.status != "" {
		m.screen.DrawText(0, m.screen.Height()-1, m.status, core.ColorYellow)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.driver == nil {
		return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH,
			lipgloss.Center, lipgloss.Center,
			colorStyles[core.ColorYellow].Render("Terminal too small. Resize or press q to quit."))
	}

	m.drawFrame()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.GameConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
