// Package display renders command output: the task table and status messages.
package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pablasso/taskcli/internal/tasks"
	"github.com/pablasso/taskcli/internal/tui/styles"
)

// Headers are the task table column titles.
var Headers = []string{"#", "Description", "Status", "Created at", "Updated at"}

const statusColumn = 2

// Printer writes styled output to a terminal or any other writer.
// Colors are only emitted when the writer supports them.
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// New creates a Printer for w.
func New(w io.Writer) *Printer {
	return &Printer{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
	}
}

// Success prints a message in the success color.
func (p *Printer) Success(format string, args ...any) {
	p.line(styles.SuccessStyle, format, args...)
}

// Failure prints a message in the error color.
func (p *Printer) Failure(format string, args ...any) {
	p.line(styles.ErrorStyle, format, args...)
}

func (p *Printer) line(style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, style.Renderer(p.renderer).Render(msg))
}

// Table prints items as a bordered table. The status cell is colored by
// the item's emphasis.
func (p *Printer) Table(items []tasks.Item) {
	fmt.Fprintln(p.w, p.RenderTable(items))
}

// RenderTable returns the table for items as a string.
func (p *Printer) RenderTable(items []tasks.Item) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row(item))
	}

	header := p.renderer.NewStyle().Bold(true).Foreground(styles.PrimaryColor).Padding(0, 1)
	cell := p.renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.renderer.NewStyle().Foreground(styles.SecondaryColor)).
		Headers(Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == statusColumn && row >= 0 && row < len(items) {
				return cell.Inherit(p.EmphasisStyle(items[row].Emphasis))
			}
			return cell
		})

	return t.Render()
}

// EmphasisStyle returns the foreground style for an emphasis class.
func (p *Printer) EmphasisStyle(e tasks.Emphasis) lipgloss.Style {
	return EmphasisStyle(e).Renderer(p.renderer)
}

// EmphasisStyle maps attention to the error color, caution to amber and
// success to the success color.
func EmphasisStyle(e tasks.Emphasis) lipgloss.Style {
	switch e {
	case tasks.EmphasisAttention:
		return styles.ErrorStyle
	case tasks.EmphasisCaution:
		return styles.CautionStyle
	case tasks.EmphasisSuccess:
		return styles.SuccessStyle
	default:
		return lipgloss.NewStyle()
	}
}

// Row returns the table cells for an item.
func Row(item tasks.Item) []string {
	return []string{
		strconv.Itoa(item.ID),
		item.Description,
		string(item.Status),
		item.CreatedAt.String(),
		item.UpdatedAt.String(),
	}
}
