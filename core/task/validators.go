package task

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

var (
	taskTypeTag  = "tasktype"
	taskTypeText = "invalid task type"
)

// RegisterValidators registers task-specific validators on `validate`.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(taskTypeTag, taskTypeValidation)
	core.RegisterCustomTranslation(validate, translator, taskTypeTag, taskTypeText)
}

// taskTypeValidation only allows known task types.
func taskTypeValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, typ := range AllTypes {
		if val == typ {
			return true
		}
	}
	return false
}
