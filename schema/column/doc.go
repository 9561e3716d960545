// Package column provides a read-only view over the table columns that a generated
// model is built from.
//
// Column names follow database conventions, while Go struct field names are
// derived from them in PascalCase:
//
//	column.Long("user_id")      // Go: UserID int64
//	column.String("email")      // Go: Email string
//
// Descriptors are built with fluent builders and are immutable once built:
//
//	col := column.String("email_address").
//	    Length(120).
//	    Raw("EMAIL_ADDRESS").
//	    Descriptor()
//
// The host pipeline normally implements Column itself on top of its own
// introspection results; Descriptor is the stock implementation used by tests
// and small hosts.
package column
