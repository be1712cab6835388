package sim

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	offStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2A2A2A"))
	tickStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))

	segmentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4D4F")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B0B0B0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	buttonHeldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#C89A3A")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))

	statusOnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))

	// LED styles per palette color. Blank renders as a dim dot so the
	// ring geometry stays visible when dark.
	ledStyles = [8]lipgloss.Style{
		model.Blank:  offStyle,
		model.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3B30")),
		model.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("#34C759")),
		model.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9500")),
		model.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0A84FF")),
		model.Purple: lipgloss.NewStyle().Foreground(lipgloss.Color("#BF5AF2")),
		model.Cyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("#32D0E0")),
		model.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
	}
)

var ringLabels = [3]string{
	ringSeconds: "seconds",
	ringMinutes: "minutes",
	ringHours:   "hours",
}

// ringRow renders one ring as a strip of 60 LEDs, top of the dial
// first. Every fifth position gets a tick glyph when dark so the
// minute marks stay readable.
func ringRow(leds [model.RingPositions]model.Color) string {
	var b strings.Builder
	for i, c := range leds {
		if c == model.Blank {
			if i%5 == 0 {
				b.WriteString(tickStyle.Render("·"))
			} else {
				b.WriteString(offStyle.Render("·"))
			}
			continue
		}
		style := offStyle
		if int(c) < len(ledStyles) {
			style = ledStyles[c]
		}
		b.WriteString(style.Render("●"))
	}
	return b.String()
}

// colonGlyph picks the separator drawn between digit pairs.
func colonGlyph(colons device.Colons) string {
	switch colons {
	case device.ColonsOn:
		return ":"
	case device.ColonsBottomTwo:
		return "."
	case device.ColonsTopTwo:
		return "'"
	default:
		return " "
	}
}

// segmentLine renders the six glyphs with the colon separators between
// the digit pairs, the way the board is laid out.
func segmentLine(text [6]byte, colons device.Colons) string {
	sep := colonGlyph(colons)
	var b strings.Builder
	for i, g := range text {
		if i == 2 || i == 4 {
			b.WriteString(sep)
		}
		b.WriteByte(g)
	}
	return b.String()
}

// statusLine renders the 4-bit mode indicator row.
func statusLine(status device.StatusLEDs) string {
	var b strings.Builder
	for bit := 0; bit < 4; bit++ {
		if bit > 0 {
			b.WriteString(" ")
		}
		if status&(1<<bit) != 0 {
			b.WriteString(statusOnStyle.Render("●"))
		} else {
			b.WriteString(offStyle.Render("·"))
		}
	}
	return b.String()
}

func buttonsLine(held device.ButtonMask) string {
	parts := make([]string, 0, 3)
	for i, mask := range []device.ButtonMask{device.Button1, device.Button2, device.Button3} {
		label := string(rune('1' + i))
		if held&mask != 0 {
			parts = append(parts, buttonHeldStyle.Render(label))
		} else {
			parts = append(parts, buttonStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// labelWidth is the widest ring label, so the strips line up.
var labelWidth = func() int {
	w := 0
	for _, l := range ringLabels {
		if lw := runewidth.StringWidth(l); lw > w {
			w = lw
		}
	}
	return w
}()

func padLabel(s string) string {
	return s + strings.Repeat(" ", labelWidth-runewidth.StringWidth(s))
}

func renderPanel(frame snapshot, helpView string, width, height int) string {
	rows := make([]string, 0, 8)
	rows = append(rows, titleStyle.Render("clockos"))
	rows = append(rows, "")
	for i := len(frame.rings) - 1; i >= 0; i-- {
		rows = append(rows, labelStyle.Render(padLabel(ringLabels[i]))+"  "+ringRow(frame.rings[i]))
	}
	rows = append(rows, "")
	board := lipgloss.JoinHorizontal(
		lipgloss.Center,
		segmentStyle.Render(segmentLine(frame.text, frame.colons)),
		"  ",
		statusLine(frame.status),
	)
	rows = append(rows, board)
	rows = append(rows, buttonsLine(frame.buttons))
	rows = append(rows, "")
	rows = append(rows, helpView)

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
