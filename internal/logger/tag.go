// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chalkColors maps the color names accepted in service configuration to ANSI
// palette indices.
var chalkColors = map[string]lipgloss.Color{
	"black":         lipgloss.Color("0"),
	"red":           lipgloss.Color("1"),
	"green":         lipgloss.Color("2"),
	"yellow":        lipgloss.Color("3"),
	"blue":          lipgloss.Color("4"),
	"magenta":       lipgloss.Color("5"),
	"cyan":          lipgloss.Color("6"),
	"white":         lipgloss.Color("7"),
	"gray":          lipgloss.Color("8"),
	"grey":          lipgloss.Color("8"),
	"blackbright":   lipgloss.Color("8"),
	"redbright":     lipgloss.Color("9"),
	"greenbright":   lipgloss.Color("10"),
	"yellowbright":  lipgloss.Color("11"),
	"bluebright":    lipgloss.Color("12"),
	"magentabright": lipgloss.Color("13"),
	"cyanbright":    lipgloss.Color("14"),
	"whitebright":   lipgloss.Color("15"),
}

// ServiceTag renders the service name used as the prefix of error log lines.
//
// When color names a known terminal color (case-insensitive, e.g. "cyan" or
// "redBright") the name is styled with it; otherwise the plain name is
// returned. Styling is dropped automatically when the output is not a
// terminal.
func ServiceTag(name, color string) string {
	c, ok := chalkColors[strings.ToLower(strings.TrimSpace(color))]
	if !ok {
		return name
	}

	return lipgloss.NewStyle().Foreground(c).Render(name)
}
