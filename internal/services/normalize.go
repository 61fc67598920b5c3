package services

import (
	"strconv"
	"strings"
)

// Storefront payloads carry quantities as strings. Normalization is
// deliberately permissive: garbage falls back to a sensible default instead
// of rejecting the submission.

// normalizeQuantity parses an item quantity, defaulting to one.
func normalizeQuantity(raw string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 1 {
		return 1
	}
	return qty
}

// normalizeExtraQuantity parses an extra quantity, defaulting to zero.
func normalizeExtraQuantity(raw string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 0 {
		return 0
	}
	return qty
}

// buildAddress renders the structured delivery fields into the single line
// the kitchen prints: "street number[, apartment], city, region".
func buildAddress(street, number, apartment, city, region string) string {
	street = strings.TrimSpace(street)
	number = strings.TrimSpace(number)
	apartment = strings.TrimSpace(apartment)
	city = strings.TrimSpace(city)
	region = strings.TrimSpace(region)

	var b strings.Builder
	b.WriteString(street)
	if number != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(number)
	}
	if apartment != "" {
		b.WriteString(", ")
		b.WriteString(apartment)
	}
	if city != "" {
		b.WriteString(", ")
		b.WriteString(city)
	}
	if region != "" {
		b.WriteString(", ")
		b.WriteString(region)
	}
	return b.String()
}
