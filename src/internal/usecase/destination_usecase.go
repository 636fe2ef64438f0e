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
	"quotation-service/src/pkg/geocode"
	httpError "quotation-service/src/pkg/http-error"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"
)

type DestinationUseCase struct {
	Log                   log.Log
	Validate              *validator.Validate
	DestinationRepository repository.DestinationRepository
	CategoryRepository    repository.CategoryRepository
	Geocoder              geocode.Resolver
}

func NewDestinationUseCase(
	logger log.Log,
	validate *validator.Validate,
	destinationRepository repository.DestinationRepository,
	categoryRepository repository.CategoryRepository,
	geocoder geocode.Resolver,
) *DestinationUseCase {
	return &DestinationUseCase{
		Log:                   logger,
		Validate:              validate,
		DestinationRepository: destinationRepository,
		CategoryRepository:    categoryRepository,
		Geocoder:              geocoder,
	}
}

func (c *DestinationUseCase) List(ctx context.Context, request *model.ListRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "List", utils.ConvertString(err))
		return result
	}

	page, limit := paginate(request)
	destinations, err := c.DestinationRepository.FindAll(ctx, limit, (page-1)*limit)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("destination-usecase", fmt.Sprintf("Error listing destinations: %v", err), "List", "")
		return result
	}

	for i := range destinations {
		categories, err := c.CategoryRepository.FindByDestinationID(ctx, destinations[i].DestinationID)
		if err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("destination-usecase", fmt.Sprintf("Error loading destination categories: %v", err), "List", "")
			return result
		}
		destinations[i].Categories = categories
	}

	result.Data = converter.DestinationDetailsToResponses(destinations)
	return result
}

func (c *DestinationUseCase) Get(ctx context.Context, request *model.GetDestinationRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "Get", utils.ConvertString(err))
		return result
	}

	detail, err := c.loadDetail(ctx, request.DestinationID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("destination-usecase", fmt.Sprintf("Error finding destination: %v", err), "Get", "")
		return result
	}
	if detail == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("destino con id %d no encontrado", request.DestinationID)
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "Get", "")
		return result
	}

	result.Data = converter.DestinationDetailToResponse(detail)
	return result
}

func (c *DestinationUseCase) Create(ctx context.Context, request *model.CreateDestinationRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	if hasDuplicates(request.Categories) {
		errObj := httpError.NewConflict()
		errObj.Message = "la lista de categorias contiene duplicados"
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "Create", "")
		return result
	}

	for _, categoryID := range request.Categories {
		category, err := c.CategoryRepository.FindByID(ctx, categoryID)
		if err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("destination-usecase", fmt.Sprintf("Error finding category: %v", err), "Create", "")
			return result
		}
		if category == nil {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("categoria con id %d no encontrada", categoryID)
			result.Error = errObj
			c.Log.Error("destination-usecase", errObj.Message, "Create", "")
			return result
		}
	}

	address, err := c.Geocoder.Lookup(ctx, request.ZipCode)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("destination-usecase", fmt.Sprintf("Error resolving zip code: %v", err), "Create", "")
		return result
	}
	if address == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("el codigo postal %s no existe", request.ZipCode)
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "Create", "")
		return result
	}

	direction := directionFromAddress(address)
	destination := &entity.Destination{
		Name:       request.Name,
		Distance:   decimal.NewFromFloat(request.Distance),
		PricePerKm: decimal.NewFromFloat(request.PricePerKm),
	}
	if err := c.DestinationRepository.CreateWithDirection(ctx, direction, destination, request.Categories); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("destination-usecase", fmt.Sprintf("Error creating destination: %v", err), "Create", "")
		return result
	}

	detail, err := c.loadDetail(ctx, destination.DestinationID)
	if err != nil || detail == nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("destination-usecase", fmt.Sprintf("Error reloading destination: %v", err), "Create", "")
		return result
	}

	result.Data = converter.DestinationDetailToResponse(detail)
	return result
}

func (c *DestinationUseCase) Update(ctx context.Context, request *model.UpdateDestinationRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	if hasDuplicates(request.Categories) || hasDuplicates(request.DeleteCategories) {
		errObj := httpError.NewConflict()
		errObj.Message = "la lista de categorias contiene duplicados"
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "Update", "")
		return result
	}

	destination, err := c.DestinationRepository.FindByID(ctx, request.DestinationID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("destination-usecase", fmt.Sprintf("Error finding destination: %v", err), "Update", "")
		return result
	}
	if destination == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("destino con id %d no encontrado", request.DestinationID)
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "Update", "")
		return result
	}

	var direction *entity.Direction
	if request.ZipCode != "" {
		address, err := c.Geocoder.Lookup(ctx, request.ZipCode)
		if err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("destination-usecase", fmt.Sprintf("Error resolving zip code: %v", err), "Update", "")
			return result
		}
		if address == nil {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("el codigo postal %s no existe", request.ZipCode)
			result.Error = errObj
			c.Log.Error("destination-usecase", errObj.Message, "Update", "")
			return result
		}
		direction = directionFromAddress(address)
	}

	for _, categoryID := range request.Categories {
		category, err := c.CategoryRepository.FindByID(ctx, categoryID)
		if err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("destination-usecase", fmt.Sprintf("Error finding category: %v", err), "Update", "")
			return result
		}
		if category == nil {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("categoria con id %d no encontrada", categoryID)
			result.Error = errObj
			c.Log.Error("destination-usecase", errObj.Message, "Update", "")
			return result
		}
		attached, err := c.DestinationRepository.HasCategory(ctx, request.DestinationID, categoryID)
		if err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("destination-usecase", fmt.Sprintf("Error checking category relation: %v", err), "Update", "")
			return result
		}
		if attached {
			errObj := httpError.NewConflict()
			errObj.Message = fmt.Sprintf("la categoria %d ya esta asociada al destino", categoryID)
			result.Error = errObj
			c.Log.Error("destination-usecase", errObj.Message, "Update", "")
			return result
		}
	}

	for _, categoryID := range request.DeleteCategories {
		attached, err := c.DestinationRepository.HasCategory(ctx, request.DestinationID, categoryID)
		if err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("destination-usecase", fmt.Sprintf("Error checking category relation: %v", err), "Update", "")
			return result
		}
		if !attached {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("la categoria %d no esta asociada al destino", categoryID)
			result.Error = errObj
			c.Log.Error("destination-usecase", errObj.Message, "Update", "")
			return result
		}
	}

	if request.Name != "" {
		destination.Name = request.Name
	}
	if request.Distance > 0 {
		destination.Distance = decimal.NewFromFloat(request.Distance)
	}
	if request.PricePerKm > 0 {
		destination.PricePerKm = decimal.NewFromFloat(request.PricePerKm)
	}

	if err := c.DestinationRepository.UpdateWithDirection(ctx, destination, direction, request.Categories, request.DeleteCategories); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("destination-usecase", fmt.Sprintf("Error updating destination: %v", err), "Update", "")
		return result
	}

	detail, err := c.loadDetail(ctx, request.DestinationID)
	if err != nil || detail == nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("destination-usecase", fmt.Sprintf("Error reloading destination: %v", err), "Update", "")
		return result
	}

	result.Data = converter.DestinationDetailToResponse(detail)
	return result
}

func (c *DestinationUseCase) Delete(ctx context.Context, request *model.GetDestinationRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "Delete", utils.ConvertString(err))
		return result
	}

	destination, err := c.DestinationRepository.FindByID(ctx, request.DestinationID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("destination-usecase", fmt.Sprintf("Error finding destination: %v", err), "Delete", "")
		return result
	}
	if destination == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("destino con id %d no encontrado", request.DestinationID)
		result.Error = errObj
		c.Log.Error("destination-usecase", errObj.Message, "Delete", "")
		return result
	}

	if err := c.DestinationRepository.DeleteCascade(ctx, destination.DestinationID, destination.DirectionID); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("destination-usecase", fmt.Sprintf("Error deleting destination: %v", err), "Delete", "")
		return result
	}

	result.Data = destination
	return result
}

func (c *DestinationUseCase) loadDetail(ctx context.Context, id int64) (*entity.DestinationDetail, error) {
	detail, err := c.DestinationRepository.FindDetailByID(ctx, id)
	if err != nil || detail == nil {
		return detail, err
	}
	categories, err := c.CategoryRepository.FindByDestinationID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Categories = categories
	return detail, nil
}

func directionFromAddress(address *geocode.Address) *entity.Direction {
	return &entity.Direction{
		Zip:            address.Zip,
		City:           address.City,
		State:          address.State,
		Municipality:   address.Municipality,
		Settlement:     address.Settlement,
		SettlementType: address.SettlementType,
		Country:        address.Country,
	}
}

func hasDuplicates(ids []int64) bool {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
