package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds item IDs and breakpoint names.
const maxIDLength = 256

// ValidateItemID validates a layout item identifier.
//
// IDs are opaque to the engine, but they end up in JSON documents, cache keys
// and DOT output, so the rules are conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItem, "item id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidItem, "item id too long (max %d characters)", maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidItem, "item id %q contains control characters", id)
		}
	}
	return nil
}

// ValidateDimensions checks that an item's width and height are positive.
func ValidateDimensions(id string, w, h int) error {
	if w <= 0 || h <= 0 {
		return New(ErrCodeInvalidItem, "item %q must have positive size, got %dx%d", id, w, h)
	}
	return nil
}

// ValidateBreakpointName validates a breakpoint name from configuration or a request.
// Names are used as TOML table keys and JSON object keys.
func ValidateBreakpointName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "breakpoint name cannot be empty")
	}
	if len(name) > maxIDLength {
		return New(ErrCodeInvalidConfig, "breakpoint name too long (max %d characters)", maxIDLength)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return New(ErrCodeInvalidConfig, "breakpoint name %q contains whitespace", name)
	}
	return nil
}

// ValidateCols checks that a column count is usable for bounds correction.
func ValidateCols(cols int) error {
	if cols <= 0 {
		return New(ErrCodeInvalidInput, "column count must be positive, got %d", cols)
	}
	return nil
}

// ValidateMargin checks the shape of a margin value: one value for both axes
// or an explicit [horizontal, vertical] pair.
func ValidateMargin(margin []int) error {
	if len(margin) != 1 && len(margin) != 2 {
		return New(ErrCodeInvalidMargin, "margin must have 1 or 2 values, got %d", len(margin))
	}
	for _, m := range margin {
		if m < 0 {
			return New(ErrCodeInvalidMargin, "margin values must be non-negative, got %d", m)
		}
	}
	return nil
}
