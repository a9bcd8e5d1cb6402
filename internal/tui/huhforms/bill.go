// Package huhforms builds the huh forms of the bill table
package huhforms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	billservice "github.com/thenoetrevino/billform/internal/services/bill"
	"github.com/thenoetrevino/billform/internal/tui/state"
)

// CreateBillForm creates the form for a new bill or, when s is editing, for
// changing an existing bill's item. Fields are bound to s by pointer.
// The Total note is recomputed whenever quantity or price change.
func CreateBillForm(s *state.FormState) *huh.Form {
	var fields []huh.Field

	if s.IsEditing() {
		// Customers are never updated; show who the bill belongs to
		fields = append(fields,
			huh.NewNote().
				Title(fmt.Sprintf("Bill #%d", s.EditingBillID())).
				Description(customerSummary(s)),
		)
	} else {
		fields = append(fields,
			huh.NewInput().
				Key("name").
				Title("Name").
				Placeholder("Customer name").
				Validate(billservice.ValidateName).
				Value(&s.Name),
			huh.NewInput().
				Key("phone").
				Title("Phone").
				Placeholder("10 digits").
				CharLimit(10).
				Validate(billservice.ValidatePhone).
				Value(&s.Phone),
			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("name@example.com").
				Validate(billservice.ValidateEmail).
				Value(&s.Email),
			huh.NewInput().
				Key("address").
				Title("Address").
				Placeholder("Optional").
				Value(&s.Address),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Key("item").
			Title("Item Name").
			Validate(billservice.ValidateItemName).
			Value(&s.ItemName),
		huh.NewInput().
			Key("quantity").
			Title("Quantity").
			Placeholder("0").
			Validate(validateQuantity).
			Value(&s.Quantity),
		huh.NewInput().
			Key("price").
			Title("Price").
			Placeholder("0.00").
			Validate(validatePrice).
			Value(&s.Price),
		huh.NewNote().
			Title("Total").
			DescriptionFunc(s.Total, []*string{&s.Quantity, &s.Price}),
		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle(s)).
			Affirmative("Save").
			Negative("Cancel").
			Value(&s.Confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithEscape()).WithShowHelp(false)
}

// CreateDeleteConfirmForm creates the yes/no form shown before deleting a bill
func CreateDeleteConfirmForm(s *state.DeleteState) *huh.Form {
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(fmt.Sprintf("Delete bill #%d: %s?", s.BillID, s.Label)).
			Description("The customer record is kept.").
			Affirmative("Delete").
			Negative("Cancel").
			Value(&s.Confirm),
	))
	return form.WithKeyMap(CreateKeyMapWithEscape()).WithShowHelp(false)
}

func validateQuantity(v string) error {
	_, err := billservice.ParseQuantity(v)
	return err
}

func validatePrice(v string) error {
	_, err := billservice.ParsePrice(v)
	return err
}

func confirmTitle(s *state.FormState) string {
	if s.IsEditing() {
		return "Save changes?"
	}
	return "Submit this bill?"
}

func customerSummary(s *state.FormState) string {
	lines := []string{s.Name, s.Phone, s.Email}
	if s.Address != "" {
		lines = append(lines, s.Address)
	}
	return strings.Join(lines, "\n")
}
