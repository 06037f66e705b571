package validate

import "strings"

// ProductName trims and bounds a product display name.
func ProductName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Amount accepts non-negative currency units.
func Amount(n int64) bool { return n >= 0 }

// StockQty accepts non-negative stock counts.
func StockQty(n int64) bool { return n >= 0 }

// CartQty requires at least one unit on a cart line.
func CartQty(n int64) bool { return n >= 1 }

// PaymentMode defaults an empty mode to cash and bounds its length.
func PaymentMode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "cash", true
	}
	if len(s) > 20 {
		return "", false
	}
	return s, true
}
