package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-wave/wave"
)

const (
	nameTextFGColor         = "#c0c0c0"
	nameSelectedTextFGColor = "#e0e0e0"
	nameSelectedBGColor     = "#3a3a3a"
)

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	headerStyle = lipgloss.NewStyle().BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)

	waveAreaStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	nameStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color(nameTextFGColor))
	nameSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(nameSelectedTextFGColor)).
				Background(lipgloss.Color(nameSelectedBGColor))
	nameDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// buildPalette maps the config colors onto the engine palette, keeping the
// engine defaults for anything left blank.
func buildPalette(c ColorsConfig) wave.Palette {
	p := wave.DefaultPalette()
	set := func(id wave.StyleID, fg string) {
		if fg != "" {
			p[id] = lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
		}
	}
	set(wave.StyleWaveHigh, c.WaveHigh)
	set(wave.StyleWaveLow, c.WaveLow)
	set(wave.StyleLabel, c.Label)
	set(wave.StyleIndicator, c.Indicator)
	if c.Selection != "" {
		p[wave.StyleSelection] = lipgloss.NewStyle().Background(lipgloss.Color(c.Selection))
	}
	if c.BandAlt != "" {
		p[wave.StyleBandAlt] = lipgloss.NewStyle().Background(lipgloss.Color(c.BandAlt))
	}
	return p
}
