package observability

import "unicode"

// The longest registered route pattern is about 50 characters
// (/api/v1/admin/reviews/{reviewID}/visibility), so a cap of 96 only ever
// truncates malformed paths.
const maxRouteLength = 96

// SanitizeRoute strips control characters from a route pattern and caps its
// length before the value reaches logs, spans and metric attributes.
func SanitizeRoute(route string) string {
	if route == "" {
		return "/"
	}
	return stripControl(route, maxRouteLength)
}

// SanitizeMethod strips control characters from an HTTP method.
func SanitizeMethod(method string) string {
	return stripControl(method, 10)
}

func stripControl(value string, limit int) string {
	cleaned := make([]rune, 0, len(value))
	for _, r := range value {
		if unicode.IsControl(r) {
			continue
		}
		cleaned = append(cleaned, r)
	}
	if len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}
	return string(cleaned)
}
