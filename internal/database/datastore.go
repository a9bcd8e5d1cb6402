package database

// DataStore defines the unified interface for all data operations needed by
// the bill service. Consumers can depend on the smaller interfaces
// (e.g., BillReader, CustomerWriter) where that is all they use.
type DataStore interface {
	CustomerWriter
	BillRepository

	// Close releases the underlying connection
	Close() error
}
