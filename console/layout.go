package console

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// SeatStyle maps one seat to its display identity.
type SeatStyle struct {
	Seat  int    `yaml:"seat" json:"seat"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

// Layout is the seat display table, typically loaded from a YAML file.
type Layout struct {
	Seats []SeatStyle `yaml:"seats" json:"seats"`
}

// seatColors names the colours a layout file may refer to.
var seatColors = map[string]color.Attribute{
	"magenta":   color.FgMagenta,
	"cyan":      color.FgCyan,
	"yellow":    color.FgYellow,
	"green":     color.FgGreen,
	"red":       color.FgRed,
	"blue":      color.FgBlue,
	"white":     color.FgWhite,
	"hiyellow":  color.FgHiYellow,
	"himagenta": color.FgHiMagenta,
	"hicyan":    color.FgHiCyan,
	"higreen":   color.FgHiGreen,
	"hired":     color.FgHiRed,
	"hiblue":    color.FgHiBlue,
}

// defaultPalette mirrors the classic five-seat colour assignment; larger
// tables cycle through it.
var defaultPalette = []string{"magenta", "cyan", "hiyellow", "himagenta", "hicyan"}

// DefaultLayout generates a layout for n seats.
func DefaultLayout(n int) *Layout {
	layout := &Layout{Seats: make([]SeatStyle, n)}
	for i := 0; i < n; i++ {
		layout.Seats[i] = SeatStyle{
			Seat:  i,
			Name:  fmt.Sprintf("Philosopher %d", i),
			Color: defaultPalette[i%len(defaultPalette)],
		}
	}
	return layout
}

// LoadLayout reads a layout from a YAML file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeLayout(data)
}

// DecodeLayout parses YAML layout bytes.
func DecodeLayout(data []byte) (*Layout, error) {
	layout := &Layout{}
	if err := yaml.Unmarshal(data, layout); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	for _, seat := range layout.Seats {
		if seat.Color == "" {
			continue
		}
		if _, ok := seatColors[seat.Color]; !ok {
			return nil, fmt.Errorf("unknown colour %q for seat %d", seat.Color, seat.Seat)
		}
	}
	return layout, nil
}

// styleFor resolves the display identity of a seat, falling back to the
// default palette for seats the layout does not mention.
func (l *Layout) styleFor(seat int) (string, *color.Color) {
	for _, s := range l.Seats {
		if s.Seat == seat {
			name := s.Name
			if name == "" {
				name = fmt.Sprintf("Philosopher %d", seat)
			}
			attr, ok := seatColors[s.Color]
			if !ok {
				attr = seatColors[defaultPalette[seat%len(defaultPalette)]]
			}
			return name, color.New(attr)
		}
	}
	return fmt.Sprintf("Philosopher %d", seat), color.New(seatColors[defaultPalette[seat%len(defaultPalette)]])
}
