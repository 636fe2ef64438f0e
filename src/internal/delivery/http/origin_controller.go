package http

import (
	"github.com/gofiber/fiber/v2"

	"quotation-service/src/internal/model"
	"quotation-service/src/internal/usecase"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"

	httpError "quotation-service/src/pkg/http-error"
)

type OriginController struct {
	Log     log.Log
	UseCase *usecase.OriginUseCase
}

func NewOriginController(useCase *usecase.OriginUseCase, logger log.Log) *OriginController {
	return &OriginController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OriginController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.List(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Listado de origenes", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
}

func (c *OriginController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := &model.GetOriginRequest{OriginID: int64(id)}
	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Origen", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
}
