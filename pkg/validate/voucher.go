package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsVoucherCode reports whether s is a well-formed top-up voucher code.
// Codes are numeric with a Luhn check digit, so most typos are rejected
// before the database is asked about the code.
func IsVoucherCode(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
