package http

import (
	"github.com/gofiber/fiber/v2"

	"quotation-service/src/internal/model"
	"quotation-service/src/internal/usecase"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"

	httpError "quotation-service/src/pkg/http-error"
)

type PersonController struct {
	Log     log.Log
	UseCase *usecase.PersonUseCase
}

func NewPersonController(useCase *usecase.PersonUseCase, logger log.Log) *PersonController {
	return &PersonController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PersonController) List(ctx *fiber.Ctx) error {
	request := &model.ListRequest{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Listado de personas", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
}

func (c *PersonController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := &model.GetPersonRequest{PersonID: int64(id)}
	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Persona", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
}

func (c *PersonController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreatePersonRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("person-controller", "Failed to parse request body", "Create", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Persona registrada", "Los datos se registraron correctamente", fiber.StatusCreated, ctx)
}

func (c *PersonController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := new(model.UpdatePersonRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("person-controller", "Failed to parse request body", "Update", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.PersonID = int64(id)
	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Persona actualizada", "Los datos se actualizaron correctamente", fiber.StatusOK, ctx)
}

func (c *PersonController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := &model.GetPersonRequest{PersonID: int64(id)}
	result := c.UseCase.Delete(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Persona eliminada", "Los datos se eliminaron correctamente", fiber.StatusOK, ctx)
}
