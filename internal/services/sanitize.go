package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all markup from customer supplied free text before it
// reaches storage or the admin panel.
var strictPolicy = bluemonday.StrictPolicy()

func sanitizeText(raw string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(raw))
}
