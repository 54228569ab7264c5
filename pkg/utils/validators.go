package utils

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rivo/uniseg"
)

// MaxGraphemesValidator enforces a cap on user-perceived characters rather
// than bytes or runes, so names with combining marks or emoji validate by
// their display length. Registered as the "maxgraphemes" rule.
func MaxGraphemesValidator(fl validator.FieldLevel) bool {

	maxLength, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	gr := uniseg.NewGraphemes(fl.Field().String())
	count := 0
	for gr.Next() {
		count++
		if count > maxLength {
			return false
		}
	}

	return true

}
