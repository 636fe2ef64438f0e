package http

import (
	"github.com/gofiber/fiber/v2"

	"quotation-service/src/internal/model"
	"quotation-service/src/internal/usecase"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"

	httpError "quotation-service/src/pkg/http-error"
)

type AuthorizationController struct {
	Log          log.Log
	UseCase      *usecase.AuthorizationUseCase
	QuoteUseCase *usecase.QuoteUseCase
}

func NewAuthorizationController(useCase *usecase.AuthorizationUseCase, quoteUseCase *usecase.QuoteUseCase, logger log.Log) *AuthorizationController {
	return &AuthorizationController{
		Log:          logger,
		UseCase:      useCase,
		QuoteUseCase: quoteUseCase,
	}
}

// Authorize approves a quote from a multipart form carrying the code and the
// identity document. ?send-code=true only dispatches a fresh code.
func (c *AuthorizationController) Authorize(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	if ctx.Query("send-code") == "true" {
		request := &model.SendQuoteCodeRequest{QuoteID: int64(id)}
		result := c.QuoteUseCase.SendCode(ctx.Context(), request)
		if result.Error != nil {
			return utils.ResponseError(result.Error, ctx)
		}
		return utils.Response(result.Data, "Codigo enviado", "El codigo se envio correctamente", fiber.StatusOK, ctx)
	}

	photo, err := ctx.FormFile("ine_photo")
	if err != nil {
		c.Log.Error("authorization-controller", "Missing identity document", "Authorize", err.Error())
		errObj := httpError.NewBadRequest()
		errObj.Message = "el documento de identidad es obligatorio"
		return utils.ResponseError(errObj, ctx)
	}

	request := &model.AuthorizeQuoteRequest{
		QuoteID: int64(id),
		Code:    ctx.FormValue("code"),
		Photo:   photo,
	}
	result := c.UseCase.Authorize(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Cotizacion autorizada", "La cotizacion se autorizo correctamente", fiber.StatusOK, ctx)
}
