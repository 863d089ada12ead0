package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"courier/internal/pkg/errs"

	"github.com/google/uuid"
)

// barcodePrefix is the fixed prefix of every order barcode.
const barcodePrefix = "CO-"

// barcodePattern matches the canonical barcode form: the fixed prefix
// followed by 12 uppercase hexadecimal characters.
var barcodePattern = regexp.MustCompile(`^CO-[0-9A-F]{12}$`)

// ErrBarcodeIsNotConstructed indicates that a Barcode was not created through
// NewBarcode or BarcodeFromString.
var ErrBarcodeIsNotConstructed = errs.NewValueIsRequiredError("Barcode must be created via NewBarcode or BarcodeFromString")

// Barcode is the unique, human-shareable identifier of an order, used for
// public tracking. It is assigned once at order creation and immutable
// afterwards.
//
// The value is derived from a random 128-bit identifier: the fixed "CO-"
// prefix followed by the first 12 uppercase hex characters. Collision
// probability is negligible at this scale; global uniqueness is additionally
// enforced by a unique constraint in storage, and no retry logic exists for
// the (practically impossible) collision case.
//
// Example:
//
//	barcode := kernel.NewBarcode()
//	fmt.Println(barcode.String()) // e.g. "CO-3F2A91D07B6C"
type Barcode struct {
	value string
}

// NewBarcode generates a fresh barcode from a random 128-bit value.
func NewBarcode() Barcode {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return Barcode{
		value: barcodePrefix + strings.ToUpper(raw[:12]),
	}
}

// BarcodeFromString parses a barcode from its canonical string form.
// Used when reconstructing orders from persistence or when resolving public
// tracking lookups. Returns an error if the value does not match
// CO-[0-9A-F]{12}.
func BarcodeFromString(s string) (Barcode, error) {
	if s == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}
	if !barcodePattern.MatchString(s) {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause("barcode",
			fmt.Errorf("%q does not match %s", s, barcodePattern.String()))
	}
	return Barcode{value: s}, nil
}

// String returns the canonical string form of the barcode.
func (b Barcode) String() string {
	return b.value
}

// IsEqual compares two barcodes by value.
func (b Barcode) IsEqual(other Barcode) bool {
	return b.value == other.value
}

// Validate checks that the barcode was created through a constructor function
// and still matches the canonical form.
func (b Barcode) Validate() error {
	if b.value == "" {
		return ErrBarcodeIsNotConstructed
	}
	if !barcodePattern.MatchString(b.value) {
		return errs.NewValueIsInvalidError("barcode")
	}
	return nil
}
