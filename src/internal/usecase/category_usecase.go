package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/model"
	"quotation-service/src/internal/model/converter"
	"quotation-service/src/internal/repository"
	httpError "quotation-service/src/pkg/http-error"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"
)

type CategoryUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	CategoryRepository repository.CategoryRepository
}

func NewCategoryUseCase(
	logger log.Log,
	validate *validator.Validate,
	categoryRepository repository.CategoryRepository,
) *CategoryUseCase {
	return &CategoryUseCase{
		Log:                logger,
		Validate:           validate,
		CategoryRepository: categoryRepository,
	}
}

func (c *CategoryUseCase) List(ctx context.Context) utils.Result {
	var result utils.Result

	categories, err := c.CategoryRepository.FindAll(ctx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("category-usecase", fmt.Sprintf("Error listing categories: %v", err), "List", "")
		return result
	}

	result.Data = converter.CategoriesToResponses(categories)
	return result
}

func (c *CategoryUseCase) Get(ctx context.Context, request *model.GetCategoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Get", utils.ConvertString(err))
		return result
	}

	category, err := c.CategoryRepository.FindByID(ctx, request.CategoryID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("category-usecase", fmt.Sprintf("Error finding category: %v", err), "Get", "")
		return result
	}
	if category == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("categoria con id %d no encontrada", request.CategoryID)
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Get", "")
		return result
	}

	result.Data = converter.CategoryToResponse(category)
	return result
}

func (c *CategoryUseCase) Create(ctx context.Context, request *model.CreateCategoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	category := &entity.Category{
		Name:       request.Name,
		Percentage: decimal.NewFromFloat(request.Percentage),
	}
	if err := c.CategoryRepository.Create(ctx, category); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("category-usecase", fmt.Sprintf("Error creating category: %v", err), "Create", "")
		return result
	}

	result.Data = converter.CategoryToResponse(category)
	return result
}

func (c *CategoryUseCase) Update(ctx context.Context, request *model.UpdateCategoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	category, err := c.CategoryRepository.FindByID(ctx, request.CategoryID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("category-usecase", fmt.Sprintf("Error finding category: %v", err), "Update", "")
		return result
	}
	if category == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("categoria con id %d no encontrada", request.CategoryID)
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Update", "")
		return result
	}

	if request.Name != "" {
		category.Name = request.Name
	}
	if request.Percentage > 0 {
		category.Percentage = decimal.NewFromFloat(request.Percentage)
	}

	if err := c.CategoryRepository.Update(ctx, category); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("category-usecase", fmt.Sprintf("Error updating category: %v", err), "Update", "")
		return result
	}

	result.Data = converter.CategoryToResponse(category)
	return result
}

func (c *CategoryUseCase) Delete(ctx context.Context, request *model.GetCategoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Delete", utils.ConvertString(err))
		return result
	}

	category, err := c.CategoryRepository.FindByID(ctx, request.CategoryID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("category-usecase", fmt.Sprintf("Error finding category: %v", err), "Delete", "")
		return result
	}
	if category == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("categoria con id %d no encontrada", request.CategoryID)
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Delete", "")
		return result
	}

	references, err := c.CategoryRepository.CountReferences(ctx, request.CategoryID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("category-usecase", fmt.Sprintf("Error counting category references: %v", err), "Delete", "")
		return result
	}
	if references > 0 {
		errObj := httpError.NewConflict()
		errObj.Message = "la categoria esta en uso por cotizaciones o destinos"
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Delete", "")
		return result
	}

	if err := c.CategoryRepository.Delete(ctx, request.CategoryID); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("category-usecase", fmt.Sprintf("Error deleting category: %v", err), "Delete", "")
		return result
	}

	result.Data = converter.CategoryToResponse(category)
	return result
}
