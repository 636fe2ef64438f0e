package http

import (
	"github.com/gofiber/fiber/v2"

	"quotation-service/src/internal/model"
	"quotation-service/src/internal/usecase"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"

	httpError "quotation-service/src/pkg/http-error"
)

type CategoryController struct {
	Log     log.Log
	UseCase *usecase.CategoryUseCase
}

func NewCategoryController(useCase *usecase.CategoryUseCase, logger log.Log) *CategoryController {
	return &CategoryController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *CategoryController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.List(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Listado de categorias", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
}

func (c *CategoryController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := &model.GetCategoryRequest{CategoryID: int64(id)}
	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Categoria", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
}

func (c *CategoryController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateCategoryRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("category-controller", "Failed to parse request body", "Create", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Categoria registrada", "Los datos se registraron correctamente", fiber.StatusCreated, ctx)
}

func (c *CategoryController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := new(model.UpdateCategoryRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("category-controller", "Failed to parse request body", "Update", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.CategoryID = int64(id)
	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Categoria actualizada", "Los datos se actualizaron correctamente", fiber.StatusOK, ctx)
}

func (c *CategoryController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request := &model.GetCategoryRequest{CategoryID: int64(id)}
	result := c.UseCase.Delete(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Categoria eliminada", "Los datos se eliminaron correctamente", fiber.StatusOK, ctx)
}
