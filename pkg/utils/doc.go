// Package utils provides common utility functions used throughout the pgproj codebase.
//
// # Identifier Utilities (identifier.go)
//
// The identifier utilities provide consistent handling of PostgreSQL SQL
// identifiers: double-quote quoting for names that need it, qualified-name
// formatting, and validity checks used when scaffolding new objects.
//
//	// Quote only when required (case folding or invalid characters)
//	utils.QuoteIfNeeded("users")       // users
//	utils.QuoteIfNeeded("OrderItems")  // "OrderItems"
//
//	// Qualified name, quoting each part when needed
//	utils.QualifiedName("sales", "orders")        // sales.orders
//	utils.QualifiedName("Sales", "Order Items")   // "Sales"."Order Items"
//
//	// Validity check before scaffolding
//	if !utils.IsValidIdentifier(name) {
//		// reject the name
//	}
//
// The utilities are idempotent - quoting an already quoted identifier will
// not double-quote it.
package utils
