// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in requests and responses.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ParseDate parses an optional YYYY-MM-DD value. Nil or blank yields nil.
func ParseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
