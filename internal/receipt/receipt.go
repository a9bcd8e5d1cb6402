// Package receipt turns one bill into a printable markdown receipt
package receipt

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/billform/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Markdown builds the receipt for a bill and its customer
func Markdown(d *models.BillDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Bill #%d\n\n", d.ID)

	b.WriteString("## Customer\n\n")
	fmt.Fprintf(&b, "- **Name:** %s\n", escape(d.Customer.Name))
	fmt.Fprintf(&b, "- **Phone:** %s\n", escape(d.Customer.Phone))
	fmt.Fprintf(&b, "- **Email:** %s\n", escape(d.Customer.Email))
	if addr := strings.TrimSpace(d.Customer.Address); addr != "" {
		fmt.Fprintf(&b, "- **Address:** %s\n", escape(addr))
	}

	b.WriteString("\n## Item\n\n")
	b.WriteString("| Item | Quantity | Price | Total |\n")
	b.WriteString("|:-----|---------:|------:|------:|\n")
	fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
		escape(d.ItemName),
		d.Quantity,
		d.Price.StringFixed(models.MoneyPlaces),
		d.Total.StringFixed(models.MoneyPlaces),
	)

	fmt.Fprintf(&b, "\n**Amount due: %s**\n", d.Total.StringFixed(models.MoneyPlaces))
	return b.String()
}

// Render renders the receipt for the terminal. When glamour cannot render,
// the raw markdown is returned instead.
func Render(d *models.BillDetail, width int) string {
	md := Markdown(d)
	if width <= 0 {
		width = 80
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
)

func escape(s string) string {
	return mdEscaper.Replace(s)
}
