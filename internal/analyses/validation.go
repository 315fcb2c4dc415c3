package analyses

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var requestValidator = newValidator()

var fieldMessages = map[string]string{
	"JobDescription": "Job description is required and must be at least 50 characters",
	"ResumeText":     "Resume text is required and must be at least 100 characters",
}

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("mintrim", minTrimmedChars); err != nil {
		panic(err)
	}
	return v
}

// minTrimmedChars checks the rune count of the trimmed field against the tag parameter.
func minTrimmedChars(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= min
}

// Validate enforces the input thresholds. The first failing field wins.
func Validate(req Request) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := fieldMessages[verrs[0].StructField()]; ok {
			return validationError(msg)
		}
		return validationError(verrs[0].Error())
	}
	return validationError(err.Error())
}
