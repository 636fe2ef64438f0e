package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"quotation-service/src/internal/model"
	"quotation-service/src/internal/model/converter"
	"quotation-service/src/internal/repository"
	httpError "quotation-service/src/pkg/http-error"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"
)

type OriginUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	OriginRepository repository.OriginRepository
}

func NewOriginUseCase(
	logger log.Log,
	validate *validator.Validate,
	originRepository repository.OriginRepository,
) *OriginUseCase {
	return &OriginUseCase{
		Log:              logger,
		Validate:         validate,
		OriginRepository: originRepository,
	}
}

func (c *OriginUseCase) List(ctx context.Context) utils.Result {
	var result utils.Result

	origins, err := c.OriginRepository.FindAll(ctx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("origin-usecase", fmt.Sprintf("Error listing origins: %v", err), "List", "")
		return result
	}

	result.Data = converter.OriginDetailsToResponses(origins)
	return result
}

func (c *OriginUseCase) Get(ctx context.Context, request *model.GetOriginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("origin-usecase", errObj.Message, "Get", utils.ConvertString(err))
		return result
	}

	detail, err := c.OriginRepository.FindDetailByID(ctx, request.OriginID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("origin-usecase", fmt.Sprintf("Error finding origin: %v", err), "Get", "")
		return result
	}
	if detail == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("origen con id %d no encontrado", request.OriginID)
		result.Error = errObj
		c.Log.Error("origin-usecase", errObj.Message, "Get", "")
		return result
	}

	result.Data = converter.OriginDetailToResponse(detail)
	return result
}
