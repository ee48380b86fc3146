package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rockdodge/internal/config"
	"github.com/vovakirdan/rockdodge/internal/core"
)

type directionBinding struct {
	dir     core.Direction
	binding key.Binding
}

// KeyMap translates Bubble Tea key messages into ship directions and
// session actions. Direction keys come from the config; action keys are fixed.
type KeyMap struct {
	directions []directionBinding
	Move       key.Binding // Help entry covering every direction key
	Pause      key.Binding
	Restart    key.Binding
	Copy       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// NewKeyMap builds the key map from the input bindings. A key may drive only
// one direction and may not shadow an action key.
func NewKeyMap(in config.InputConfig) (KeyMap, error) {
	km := KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy summary"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	owner := make(map[string]string)
	for _, b := range []key.Binding{km.Pause, km.Restart, km.Copy, km.Screenshot, km.Quit} {
		for _, k := range b.Keys() {
			owner[k] = b.Help().Desc
		}
	}

	// Walk directions in declaration order so the result is stable.
	var moveKeys, helpKeys []string
	for _, dir := range core.Directions() {
		keys := in.Bindings[dir.String()]
		if len(keys) == 0 {
			continue
		}
		for _, k := range keys {
			if prev, ok := owner[k]; ok {
				return KeyMap{}, fmt.Errorf("tui: key %q bound to both %s and %s", k, prev, dir)
			}
			owner[k] = dir.String()
		}
		km.directions = append(km.directions, directionBinding{
			dir:     dir,
			binding: key.NewBinding(key.WithKeys(keys...)),
		})
		moveKeys = append(moveKeys, keys...)
		helpKeys = append(helpKeys, keys[0])
	}

	for name := range in.Bindings {
		if _, err := core.ParseDirection(name); err != nil {
			return KeyMap{}, fmt.Errorf("tui: input bindings: %w", err)
		}
	}

	km.Move = key.NewBinding(
		key.WithKeys(moveKeys...),
		key.WithHelp(strings.Join(helpKeys, "/"), "move"),
	)
	return km, nil
}

// Direction returns the direction bound to msg, if any.
func (k KeyMap) Direction(msg tea.KeyMsg) (core.Direction, bool) {
	for _, db := range k.directions {
		if key.Matches(msg, db.binding) {
			return db.dir, true
		}
	}
	return core.DirNone, false
}

// Action returns the session action bound to msg.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Copy):
		return core.ActionCopy
	}
	return core.ActionNone
}

// BoundDirections lists the directions that have at least one key.
func (k KeyMap) BoundDirections() []core.Direction {
	dirs := make([]core.Direction, 0, len(k.directions))
	for _, db := range k.directions {
		dirs = append(dirs, db.dir)
	}
	return slices.Clip(dirs)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Pause},
		{k.Restart, k.Copy, k.Screenshot, k.Quit},
	}
}
