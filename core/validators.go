package core

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Schedule value layouts. Dates and times of day are stored as plain local
// strings; no timezone conversion is ever applied to them.
const (
	DateLayout = "2006-01-02" // YYYY-MM-DD
	TimeLayout = "15:04"      // HH:mm
)

var (
	// custom validation tags & texts
	dateOnlyTag   = "dateonly"
	dateOnlyText  = "must be a valid date in YYYY-MM-DD format"
	dateOnlyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	hhmmTag   = "hhmm"
	hhmmText  = "must be a valid time of day in HH:mm format"
	hhmmRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	requiredTag     = "required"
	requiredWithTag = "required_with"
	requiredText    = "this field is required"
)

// NewValidator returns a Validate instance and its English translator with
// all shared validators registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	InitValidators(validate, translator)
	return validate, translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(dateOnlyTag, dateOnlyValidation)
	RegisterCustomTranslation(validate, translator, dateOnlyTag, dateOnlyText)

	_ = validate.RegisterValidation(hhmmTag, hhmmValidation)
	RegisterCustomTranslation(validate, translator, hhmmTag, hhmmText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, requiredWithTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// ValidDateOnly reports whether `s` is a real calendar date in DateLayout form.
func ValidDateOnly(s string) bool {
	if !dateOnlyRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidHHMM reports whether `s` is a time of day in TimeLayout form.
func ValidHHMM(s string) bool {
	return hhmmRegex.MatchString(s)
}

// Custom Global Validators

// dateOnlyValidation only allows real calendar dates in YYYY-MM-DD form.
func dateOnlyValidation(fl validator.FieldLevel) bool {
	return ValidDateOnly(fl.Field().String())
}

// hhmmValidation only allows zero-padded 24h times of day.
func hhmmValidation(fl validator.FieldLevel) bool {
	return ValidHHMM(fl.Field().String())
}
