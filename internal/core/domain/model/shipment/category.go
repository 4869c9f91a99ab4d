package shipment

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// Category represents the delivery-speed classification of a shipment.
// It is fixed at creation and drives the delivery-window compliance rules:
// each category has its own timing contract that the delivery policy
// validates at creation and re-checks when a revised estimate arrives.
//
// Category is a closed set; there is no extension point. Unknown (0) helps
// catch uninitialized values.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryStandard has no delivery-window constraint.
	CategoryStandard

	// CategoryExpress must deliver within 3 days of creation.
	CategoryExpress

	// CategoryOvernight must deliver within 1 day of creation.
	CategoryOvernight

	// CategoryBulk must take more than 3 days; arriving too fast is the
	// anomaly for bulk freight.
	CategoryBulk
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:   "Unknown",
		CategoryStandard:  "Standard",
		CategoryExpress:   "Express",
		CategoryOvernight: "Overnight",
		CategoryBulk:      "Bulk",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryStandard:  "Standard",
		CategoryExpress:   "Express",
		CategoryOvernight: "Overnight",
		CategoryBulk:      "Bulk",
	}
}

// CategoryFromString maps a textual category to its Category value.
// Matching is case-insensitive ("bulk", "Bulk" and "BULK" are equivalent).
// Returns an error for anything outside the four known categories.
func CategoryFromString(value string) (Category, error) {
	for category, name := range getValidCategoryStrings() {
		if strings.EqualFold(name, value) {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not a valid category", value),
	)
}

// Validate checks if the Category value is one of the four valid categories.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

// String returns the human-readable name of the category.
// Implements fmt.Stringer; safe to call on any Category value.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
