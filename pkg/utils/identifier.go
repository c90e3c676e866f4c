package utils

import (
	"regexp"
	"strings"
)

// PostgreSQL truncates identifiers beyond this many bytes.
const maxIdentifierLength = 63

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// QuoteIdentifier wraps an identifier in double quotes, doubling any embedded
// quotes. Qualified names (schema.table) have each part quoted separately.
//
// Examples:
//   - "orders" -> "\"orders\""
//   - "sales.orders" -> "\"sales\".\"orders\""
//   - "\"orders\"" -> "\"orders\"" (already quoted, not double-quoted)
//   - "" -> ""
func QuoteIdentifier(name string) string {
	if name == "" {
		return ""
	}

	if IsQuoted(name) {
		return name
	}

	parts := strings.Split(name, ".")
	for i, part := range parts {
		if IsQuoted(part) {
			continue
		}
		parts[i] = `"` + strings.ReplaceAll(part, `"`, `""`) + `"`
	}

	return strings.Join(parts, ".")
}

// QuoteIfNeeded returns the identifier unchanged when it can appear unquoted
// without case folding, and double-quoted otherwise.
//
// Examples:
//   - "orders" -> "orders"
//   - "Orders" -> "\"Orders\"" (unquoted it would fold to "orders")
//   - "order items" -> "\"order items\""
func QuoteIfNeeded(name string) string {
	if IsValidIdentifier(name) && strings.ToLower(name) == name {
		return name
	}

	return QuoteIdentifier(name)
}

// QualifiedName formats a schema-qualified name, quoting each part only when
// it cannot appear unquoted. An empty schema yields just the name.
//
// Examples:
//   - ("sales", "orders") -> "sales.orders"
//   - ("Sales", "Order Items") -> "\"Sales\".\"Order Items\""
//   - ("", "orders") -> "orders"
func QualifiedName(schema, name string) string {
	if schema == "" {
		return QuoteIfNeeded(name)
	}

	return QuoteIfNeeded(schema) + "." + QuoteIfNeeded(name)
}

// IsQuoted checks whether a string is a single double-quoted identifier.
//
// Examples:
//   - "\"orders\"" -> true
//   - "orders" -> false
//   - "\"sales\".\"orders\"" -> false (qualified name, not a single identifier)
func IsQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' &&
		!strings.Contains(s[1:len(s)-1], `"`)
}

// StripQuotes removes double quotes from an identifier, undoing any doubled
// embedded quotes.
//
// Examples:
//   - "\"orders\"" -> "orders"
//   - "orders" -> "orders"
//   - "\"sales\".\"orders\"" -> "sales.orders"
func StripQuotes(s string) string {
	parts := strings.Split(s, ".")
	for i, part := range parts {
		if IsQuoted(part) {
			parts[i] = strings.ReplaceAll(part[1:len(part)-1], `""`, `"`)
		}
	}

	return strings.Join(parts, ".")
}

// IsValidIdentifier reports whether name is usable as an unquoted PostgreSQL
// identifier: letters, digits, and underscores, not starting with a digit,
// and within PostgreSQL's 63-byte identifier limit.
func IsValidIdentifier(name string) bool {
	if name == "" || len(name) > maxIdentifierLength {
		return false
	}

	return identifierPattern.MatchString(name)
}
