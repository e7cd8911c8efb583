// Package catalog defines the static template catalog: the layouts offered
// by the first selection menu, the styling variants nested under each, and
// the flat list of template identifiers that map 1:1 to on-disk
// template-<id> directories.
package catalog

import "github.com/charmbracelet/lipgloss"

// Display colors for catalog entries.
var (
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// Variant is a styling sub-choice within a Layout. Its ID is a TemplateId.
type Variant struct {
	ID      string
	Display string
	Style   lipgloss.Style
}

// Layout is a top-level template family. A layout with no variants is itself
// a TemplateId; otherwise each of its variants is one.
type Layout struct {
	ID       string
	Display  string
	Style    lipgloss.Style
	Variants []Variant
}

// layouts is the catalog, in menu order. Immutable after process start.
var layouts = []Layout{
	{
		ID:      "html",
		Display: "HTML",
		Style:   yellow,
		Variants: []Variant{
			{ID: "html-css", Display: "CSS", Style: yellow},
			{ID: "html-sass", Display: "Sass", Style: magenta},
		},
	},
	{
		ID:      "react",
		Display: "React",
		Style:   cyan,
		Variants: []Variant{
			{ID: "react-css", Display: "CSS", Style: cyan},
			{ID: "react-sass", Display: "Sass", Style: magenta},
		},
	},
	{
		ID:      "vue",
		Display: "Vue",
		Style:   green,
		Variants: []Variant{
			{ID: "vue-css", Display: "CSS", Style: green},
			{ID: "vue-sass", Display: "Sass", Style: magenta},
		},
	},
	{
		ID:      "minimal",
		Display: "Minimal",
		Style:   magenta,
	},
}

// Layouts returns the catalog layouts in menu order.
func Layouts() []Layout {
	return layouts
}

// TemplateIDs returns every valid template identifier, preserving layout
// order then variant order. A variant-less layout contributes its own ID.
func TemplateIDs() []string {
	var ids []string
	for _, l := range layouts {
		if len(l.Variants) == 0 {
			ids = append(ids, l.ID)
			continue
		}
		for _, v := range l.Variants {
			ids = append(ids, v.ID)
		}
	}
	return ids
}

// IsTemplateID reports whether id names a known template.
func IsTemplateID(id string) bool {
	for _, known := range TemplateIDs() {
		if known == id {
			return true
		}
	}
	return false
}
