package state

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/billform/internal/models"
	billservice "github.com/thenoetrevino/billform/internal/services/bill"
)

// FormState holds the bill form and the values its fields are bound to.
// Every field is text; quantity and price are parsed on submit.
type FormState struct {
	form *huh.Form

	// editingBillID is the bill being edited, 0 for a new bill
	editingBillID int64

	Name     string
	Phone    string
	Email    string
	Address  string
	ItemName string
	Quantity string
	Price    string
	Confirm  bool

	// snapshot is the field values when the form opened, for change detection
	snapshot [7]string
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	s := &FormState{}
	s.Reset()
	return s
}

// Form returns the current form instance.
func (s *FormState) Form() *huh.Form { return s.form }

// SetForm sets the form instance.
func (s *FormState) SetForm(form *huh.Form) { s.form = form }

// EditingBillID returns the ID of the bill being edited, 0 for a new bill.
func (s *FormState) EditingBillID() int64 { return s.editingBillID }

// IsEditing reports whether the form edits an existing bill.
func (s *FormState) IsEditing() bool { return s.editingBillID != 0 }

// Reset clears every field for a fresh entry.
func (s *FormState) Reset() {
	s.form = nil
	s.editingBillID = 0
	s.Name, s.Phone, s.Email, s.Address = "", "", "", ""
	s.ItemName, s.Quantity, s.Price = "", "", ""
	s.Confirm = true
	s.snapshot = s.values()
}

// LoadBill fills the fields from a stored bill for editing.
func (s *FormState) LoadBill(d *models.BillDetail) {
	s.Reset()
	s.editingBillID = d.ID
	s.Name = d.Customer.Name
	s.Phone = d.Customer.Phone
	s.Email = d.Customer.Email
	s.Address = d.Customer.Address
	s.ItemName = d.ItemName
	s.Quantity = strconv.Itoa(d.Quantity)
	s.Price = d.Price.StringFixed(models.MoneyPlaces)
	s.snapshot = s.values()
}

// Total is the live total shown in the form; malformed input shows "0.00".
func (s *FormState) Total() string {
	return billservice.CalculateTotal(s.Quantity, s.Price)
}

// HasChanges reports whether any field differs from when the form opened.
func (s *FormState) HasChanges() bool {
	return s.values() != s.snapshot
}

// SubmitRequest converts the fields into a new customer and bill.
func (s *FormState) SubmitRequest() (billservice.SubmitRequest, error) {
	quantity, err := billservice.ParseQuantity(s.Quantity)
	if err != nil {
		return billservice.SubmitRequest{}, err
	}
	price, err := billservice.ParsePrice(s.Price)
	if err != nil {
		return billservice.SubmitRequest{}, err
	}
	return billservice.SubmitRequest{
		CreateCustomerRequest: billservice.CreateCustomerRequest{
			Name:    s.Name,
			Phone:   s.Phone,
			Email:   s.Email,
			Address: s.Address,
		},
		ItemName: s.ItemName,
		Quantity: quantity,
		Price:    price,
	}, nil
}

// UpdateRequest converts the item fields into an update of the edited bill.
func (s *FormState) UpdateRequest() (billservice.UpdateRequest, error) {
	quantity, err := billservice.ParseQuantity(s.Quantity)
	if err != nil {
		return billservice.UpdateRequest{}, err
	}
	price, err := billservice.ParsePrice(s.Price)
	if err != nil {
		return billservice.UpdateRequest{}, err
	}
	return billservice.UpdateRequest{
		BillID:   s.editingBillID,
		ItemName: s.ItemName,
		Quantity: quantity,
		Price:    price,
	}, nil
}

func (s *FormState) values() [7]string {
	return [7]string{s.Name, s.Phone, s.Email, s.Address, s.ItemName, s.Quantity, s.Price}
}
