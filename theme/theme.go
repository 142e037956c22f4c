// Package theme serves the palette tokens the frontend paints with.
// The served theme lives on a Manager owned by the process shell and
// handed to consumers, there is no package-global current theme.
package theme

import (
	"fmt"
	"sync"
)

// Mode selects which palette is served.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"

	DefaultMode Mode = Light
)

// Modes returns every declared mode.
func Modes() []Mode {
	return []Mode{Light, Dark}
}

func (m Mode) Valid() bool {
	switch m {
	case Light, Dark:
		return true
	}
	return false
}

// Palette is the token set the frontend reads at boot.
type Palette struct {
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"textColor"`
	SubText    string `json:"subText"`
	Border     string `json:"border"`
	Active     string `json:"active"`
	Error      string `json:"errorText"`
	Success    string `json:"successText"`
}

// Theme pairs a mode with its palette.
type Theme struct {
	Mode    Mode    `json:"mode"`
	Palette Palette `json:"palette"`
}

// palettes must cover Modes exactly, checked by Validate at startup.
var palettes = map[Mode]Palette{
	Light: {
		Background: "#ffffff",
		Surface:    "#faf9fb",
		Text:       "#2b2233",
		SubText:    "#80708f",
		Border:     "#e0dce5",
		Active:     "#6c5fc7",
		Error:      "#f55549",
		Success:    "#268d75",
	},
	Dark: {
		Background: "#1e1825",
		Surface:    "#2f2936",
		Text:       "#ebe6ef",
		SubText:    "#a799b5",
		Border:     "#393041",
		Active:     "#7a6fbe",
		Error:      "#f87277",
		Success:    "#2da98c",
	},
}

// Validate checks the palette table and the declared modes cover each
// other. Run once at startup.
func Validate() error {
	for _, m := range Modes() {
		if _, ok := palettes[m]; !ok {
			return fmt.Errorf("theme mode %s has no palette", m)
		}
	}
	for m := range palettes {
		if !m.Valid() {
			return fmt.Errorf("palette for undeclared theme mode %s", m)
		}
	}
	return nil
}

// Manager holds the theme the service currently serves.
type Manager struct {
	mu  sync.RWMutex
	cur Theme
}

// NewManager validates the palette table and returns a manager serving
// mode. An empty mode serves the default, an undeclared one is an
// error.
func NewManager(mode Mode) (*Manager, error) {
	if err := Validate(); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = DefaultMode
	}
	p, ok := palettes[mode]
	if !ok {
		return nil, fmt.Errorf("unknown theme mode: %s", mode)
	}
	return &Manager{cur: Theme{Mode: mode, Palette: p}}, nil
}

// Current returns the served theme.
func (m *Manager) Current() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Update switches the served theme. Undeclared modes are rejected and
// leave the served theme as it was.
func (m *Manager) Update(mode Mode) (Theme, error) {
	p, ok := palettes[mode]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme mode: %s", mode)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = Theme{Mode: mode, Palette: p}
	return m.cur, nil
}
