package utils

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	httpError "quotation-service/src/pkg/http-error"
)

// Result is what every usecase returns; controllers only translate it.
type Result struct {
	Data  interface{}
	Error error
}

// Envelope is the wire shape of every response the API produces.
type Envelope struct {
	Type    string      `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Token   string      `json:"token,omitempty"`
}

func Response(data interface{}, title, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(Envelope{
		Type:    "Exitoso",
		Title:   title,
		Message: message,
		Data:    data,
	})
}

func ResponseWithToken(data interface{}, title, message, token string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(Envelope{
		Type:    "Exitoso",
		Title:   title,
		Message: message,
		Data:    data,
		Token:   token,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	commonErr, ok := err.(*httpError.CommonError)
	if !ok {
		commonErr = httpError.NewInternalServerError()
		// Router-level errors (unmatched route, method not allowed) keep
		// their own status instead of collapsing into a 500.
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < http.StatusInternalServerError {
			commonErr = &httpError.CommonError{
				Code:    fiberErr.Code,
				Title:   "Error en la solicitud",
				Message: fiberErr.Message,
			}
		}
	}
	errs := commonErr.Errors
	if errs == nil {
		errs = []string{}
	}
	return ctx.Status(commonErr.Code).JSON(Envelope{
		Type:    "Error",
		Title:   commonErr.Title,
		Message: commonErr.Message,
		Errors:  errs,
	})
}
