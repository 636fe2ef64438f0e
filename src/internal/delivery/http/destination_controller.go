package http

import (
	"github.com/gofiber/fiber/v2"

	"quotation-service/src/internal/model"
	"quotation-service/src/internal/usecase"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"

	httpError "quotation-service/src/pkg/http-error"
)

type DestinationController struct {
	Log     log.Log
	UseCase *usecase.DestinationUseCase
}

func NewDestinationController(useCase *usecase.DestinationUseCase, logger log.Log) *DestinationController {
	return &DestinationController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *DestinationController) List(ctx *fiber.Ctx) error {
	request := &model.ListRequest{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Listado de destinos", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
}

func (c *DestinationController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := &model.GetDestinationRequest{DestinationID: int64(id)}
	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Destino", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
}

func (c *DestinationController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateDestinationRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("destination-controller", "Failed to parse request body", "Create", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Destino registrado", "Los datos se registraron correctamente", fiber.StatusCreated, ctx)
}

func (c *DestinationController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := new(model.UpdateDestinationRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("destination-controller", "Failed to parse request body", "Update", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.DestinationID = int64(id)
	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Destino actualizado", "Los datos se actualizaron correctamente", fiber.StatusOK, ctx)
}

func (c *DestinationController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := &model.GetDestinationRequest{DestinationID: int64(id)}
	result := c.UseCase.Delete(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Destino eliminado", "Los datos se eliminaron correctamente", fiber.StatusOK, ctx)
}
