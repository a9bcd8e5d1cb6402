package models

// ============================================================================
// TABLE LAYOUT
// ============================================================================

// BillRowHeader is the fixed header of the bill table and of every export
var BillRowHeader = []string{"Bill ID", "Customer Name", "Item Name", "Quantity", "Total"}

// ============================================================================
// MONEY
// ============================================================================

// MoneyPlaces is the number of decimal places totals are rounded and shown with
const MoneyPlaces = 2
