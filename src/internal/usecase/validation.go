package usecase

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	httpError "quotation-service/src/pkg/http-error"
)

// validationError maps a failed struct validation to a 422 that carries the
// per-field failures in the envelope's errors list.
func validationError(err error) *httpError.CommonError {
	errObj := httpError.NewUnprocessableEntity()
	errObj.Message = fmt.Sprintf("validation error: %v", err.Error())

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		messages := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			messages = append(messages, fmt.Sprintf("el campo %s no cumple la regla %s", fieldErr.Field(), fieldErr.Tag()))
		}
		errObj.Errors = messages
	}
	return errObj
}
