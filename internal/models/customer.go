package models

// Customer is a billing party identified by contact details.
// Customers are created on bill submission and never updated or deleted.
type Customer struct {
	ID      int64
	Name    string
	Phone   string // 10 digits
	Email   string
	Address string
}
