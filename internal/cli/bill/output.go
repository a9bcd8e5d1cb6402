package bill

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thenoetrevino/billform/internal/cli/styles"
	"github.com/thenoetrevino/billform/internal/models"
	"github.com/thenoetrevino/billform/internal/receipt"
)

// billJSON is the JSON shape of a stored bill
type billJSON struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
	Total      string `json:"total"`
}

func toBillJSON(b *models.Bill) billJSON {
	return billJSON{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		ItemName:   b.ItemName,
		Quantity:   b.Quantity,
		Price:      b.Price.StringFixed(models.MoneyPlaces),
		Total:      b.Total.StringFixed(models.MoneyPlaces),
	}
}

// savedBill is the result of create and update
type savedBill struct {
	Bill   billJSON `json:"bill"`
	Action string   `json:"-"`
}

func (s savedBill) GetID() int64 { return s.Bill.ID }

func (s savedBill) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s Bill %d %s (customer %d, %s x%d, total %s)\n",
		styles.SuccessStyle.Render("✓"), s.Bill.ID, s.Action,
		s.Bill.CustomerID, s.Bill.ItemName, s.Bill.Quantity, s.Bill.Total)
	return err
}

// rowJSON is the JSON shape of a listing row
type rowJSON struct {
	BillID       int64  `json:"bill_id"`
	CustomerName string `json:"customer_name"`
	ItemName     string `json:"item_name"`
	Quantity     int    `json:"quantity"`
	Total        string `json:"total"`
}

// billList is the result of list
type billList struct {
	Bills []rowJSON `json:"bills"`
	rows  []models.BillRow
}

func newBillList(rows []models.BillRow) billList {
	out := billList{Bills: make([]rowJSON, 0, len(rows)), rows: rows}
	for _, r := range rows {
		out.Bills = append(out.Bills, rowJSON{
			BillID:       r.BillID,
			CustomerName: r.CustomerName,
			ItemName:     r.ItemName,
			Quantity:     r.Quantity,
			Total:        r.Total.StringFixed(models.MoneyPlaces),
		})
	}
	return out
}

func (l billList) GetIDs() []int64 {
	ids := make([]int64, len(l.rows))
	for i, r := range l.rows {
		ids[i] = r.BillID
	}
	return ids
}

func (l billList) WriteHuman(w io.Writer) error {
	if len(l.rows) == 0 {
		_, err := fmt.Fprintln(w, "No bills found")
		return err
	}

	cells := make([][]string, len(l.rows))
	for i, r := range l.rows {
		cells[i] = r.Cells()
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n",
		styles.RenderTable(models.BillRowHeader, cells),
		styles.SubtitleStyle.Render(fmt.Sprintf("%d bills", len(l.rows))))
	return err
}

// customerJSON is the JSON shape of a customer
type customerJSON struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// billShow is the result of show
type billShow struct {
	Bill     billJSON     `json:"bill"`
	Customer customerJSON `json:"customer"`

	detail  *models.BillDetail
	receipt bool
	width   int
}

func newBillShow(d *models.BillDetail, asReceipt bool, width int) billShow {
	return billShow{
		Bill:     toBillJSON(&d.Bill),
		Customer: customerJSON(d.Customer),
		detail:   d,
		receipt:  asReceipt,
		width:    width,
	}
}

func (s billShow) GetID() int64 { return s.Bill.ID }

func (s billShow) WriteHuman(w io.Writer) error {
	if s.receipt {
		_, err := fmt.Fprintln(w, receipt.Render(s.detail, s.width))
		return err
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Bill #" + strconv.FormatInt(s.Bill.ID, 10)))
	b.WriteString("\n")
	b.WriteString(styles.SectionStyle.Render("Customer"))
	b.WriteString("\n")
	b.WriteString(styles.RenderField("Name", s.Customer.Name) + "\n")
	b.WriteString(styles.RenderField("Phone", s.Customer.Phone) + "\n")
	b.WriteString(styles.RenderField("Email", s.Customer.Email) + "\n")
	if s.Customer.Address != "" {
		b.WriteString(styles.RenderField("Address", s.Customer.Address) + "\n")
	}
	b.WriteString(styles.SectionStyle.Render("Item"))
	b.WriteString("\n")
	b.WriteString(styles.RenderField("Item", s.Bill.ItemName) + "\n")
	b.WriteString(styles.RenderField("Quantity", strconv.Itoa(s.Bill.Quantity)) + "\n")
	b.WriteString(styles.RenderField("Price", s.Bill.Price) + "\n")
	b.WriteString(styles.RenderField("Total", s.Bill.Total))

	_, err := fmt.Fprintln(w, styles.RenderCard(b.String()))
	return err
}

// deleted is the result of delete
type deleted struct {
	BillID    int64 `json:"bill_id"`
	Cancelled bool  `json:"cancelled,omitempty"`
}

func (d deleted) WriteHuman(w io.Writer) error {
	if d.Cancelled {
		_, err := fmt.Fprintln(w, "Cancelled")
		return err
	}
	_, err := fmt.Fprintf(w, "%s Bill %d deleted\n", styles.SuccessStyle.Render("✓"), d.BillID)
	return err
}

// exported is the result of export
type exported struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Rows   int    `json:"rows"`
}

func (e exported) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s Exported %d bills to %s\n", styles.SuccessStyle.Render("✓"), e.Rows, e.Path)
	return err
}
