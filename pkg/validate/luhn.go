package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a valid Luhn number. Spaces and dashes
// between digit groups are ignored.
func IsLuhn(s string) bool {
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	if s == "" {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}
