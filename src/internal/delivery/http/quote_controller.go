package http

import (
	"github.com/gofiber/fiber/v2"

	"quotation-service/src/internal/model"
	"quotation-service/src/internal/usecase"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"

	httpError "quotation-service/src/pkg/http-error"
)

type QuoteController struct {
	Log     log.Log
	UseCase *usecase.QuoteUseCase
}

func NewQuoteController(useCase *usecase.QuoteUseCase, logger log.Log) *QuoteController {
	return &QuoteController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *QuoteController) List(ctx *fiber.Ctx) error {
	request := &model.ListRequest{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Listado de cotizaciones", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
}

func (c *QuoteController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := &model.GetQuoteRequest{QuoteID: int64(id)}
	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Cotizacion", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
}

func (c *QuoteController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateQuoteRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("quote-controller", "Failed to parse request body", "Create", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Cotizacion registrada", "Los datos se registraron correctamente", fiber.StatusCreated, ctx)
}

// Update edits or cancels a pending quote. ?send-code=true texts a fresh
// authorization code instead of mutating anything.
func (c *QuoteController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	if ctx.Query("send-code") == "true" {
		request := &model.SendQuoteCodeRequest{QuoteID: int64(id)}
		result := c.UseCase.SendCode(ctx.Context(), request)
		if result.Error != nil {
			return utils.ResponseError(result.Error, ctx)
		}
		return utils.Response(result.Data, "Codigo enviado", "El codigo se envio correctamente", fiber.StatusOK, ctx)
	}

	request := new(model.UpdateQuoteRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("quote-controller", "Failed to parse request body", "Update", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.QuoteID = int64(id)
	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Cotizacion actualizada", "Los datos se actualizaron correctamente", fiber.StatusOK, ctx)
}

func (c *QuoteController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := &model.GetQuoteRequest{QuoteID: int64(id)}
	result := c.UseCase.Delete(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Cotizacion eliminada", "Los datos se eliminaron correctamente", fiber.StatusOK, ctx)
}
