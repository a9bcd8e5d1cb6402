package receipt

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/billform/internal/models"
)

func sampleDetail() *models.BillDetail {
	return &models.BillDetail{
		Bill: models.Bill{
			ID:         7,
			CustomerID: 3,
			ItemName:   "Pen",
			Quantity:   3,
			Price:      decimal.RequireFromString("2.5"),
			Total:      decimal.RequireFromString("7.5"),
		},
		Customer: models.Customer{ID: 3, Name: "Ann", Phone: "5551234567", Email: "ann_b@x.io"},
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleDetail())

	assert.Contains(t, md, "# Bill #7")
	assert.Contains(t, md, "- **Name:** Ann")
	assert.Contains(t, md, `ann\_b@x.io`)
	assert.Contains(t, md, "| Pen | 3 | 2.50 | 7.50 |")
	assert.Contains(t, md, "**Amount due: 7.50**")
	assert.NotContains(t, md, "Address", "empty address is omitted")
}

func TestMarkdownEscapesTableCells(t *testing.T) {
	d := sampleDetail()
	d.ItemName = "A|B"
	d.Customer.Address = "Unit *4*"

	md := Markdown(d)
	assert.Contains(t, md, `| A\|B |`)
	assert.Contains(t, md, `Unit \*4\*`)
}

func TestRenderKeepsContent(t *testing.T) {
	out := Render(sampleDetail(), 60)
	assert.NotEmpty(t, out)
	assert.True(t, strings.Contains(out, "Pen"), "rendered receipt should mention the item")
	assert.True(t, strings.Contains(out, "7.50"))
}
