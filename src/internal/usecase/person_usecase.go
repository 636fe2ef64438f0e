package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/model"
	"quotation-service/src/internal/model/converter"
	"quotation-service/src/internal/repository"
	httpError "quotation-service/src/pkg/http-error"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 3
)

type PersonUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	PersonRepository repository.PersonRepository
	QuoteRepository  repository.QuoteRepository
}

func NewPersonUseCase(
	logger log.Log,
	validate *validator.Validate,
	personRepository repository.PersonRepository,
	quoteRepository repository.QuoteRepository,
) *PersonUseCase {
	return &PersonUseCase{
		Log:              logger,
		Validate:         validate,
		PersonRepository: personRepository,
		QuoteRepository:  quoteRepository,
	}
}

func (c *PersonUseCase) List(ctx context.Context, request *model.ListRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("person-usecase", errObj.Message, "List", utils.ConvertString(err))
		return result
	}

	page, limit := paginate(request)
	people, err := c.PersonRepository.FindAll(ctx, limit, (page-1)*limit)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("person-usecase", fmt.Sprintf("Error listing people: %v", err), "List", "")
		return result
	}

	responses := make([]model.PersonResponse, 0, len(people))
	for i := range people {
		responses = append(responses, *converter.PersonDetailToResponse(&people[i], nil))
	}
	result.Data = responses
	return result
}

func (c *PersonUseCase) Get(ctx context.Context, request *model.GetPersonRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("person-usecase", errObj.Message, "Get", utils.ConvertString(err))
		return result
	}

	detail, err := c.PersonRepository.FindDetailByID(ctx, request.PersonID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("person-usecase", fmt.Sprintf("Error finding person: %v", err), "Get", "")
		return result
	}
	if detail == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("persona con id %d no encontrada", request.PersonID)
		result.Error = errObj
		c.Log.Error("person-usecase", errObj.Message, "Get", "")
		return result
	}

	quotes, err := c.QuoteRepository.FindDetailByPersonID(ctx, request.PersonID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("person-usecase", fmt.Sprintf("Error loading person quotes: %v", err), "Get", "")
		return result
	}

	result.Data = converter.PersonDetailToResponse(detail, quotes)
	return result
}

func (c *PersonUseCase) Create(ctx context.Context, request *model.CreatePersonRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("person-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	exists, err := c.PersonRepository.ExistsByEmail(ctx, request.Email, 0)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("person-usecase", fmt.Sprintf("Error checking email: %v", err), "Create", "")
		return result
	}
	if exists {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = "el correo ya esta registrado"
		result.Error = errObj
		c.Log.Error("person-usecase", errObj.Message, "Create", request.Email)
		return result
	}

	birthDate, err := time.Parse("2006-01-02", request.BirthDate)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "la fecha de nacimiento no es valida"
		result.Error = errObj
		c.Log.Error("person-usecase", errObj.Message, "Create", request.BirthDate)
		return result
	}

	person := &entity.Person{
		Name:      request.Name,
		LastName:  request.LastName,
		Phone:     request.Phone,
		Email:     request.Email,
		BirthDate: birthDate,
	}
	if err := c.PersonRepository.Create(ctx, person); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("person-usecase", fmt.Sprintf("Error creating person: %v", err), "Create", "")
		return result
	}

	result.Data = converter.PersonToResponse(person)
	return result
}

func (c *PersonUseCase) Update(ctx context.Context, request *model.UpdatePersonRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("person-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	person, err := c.PersonRepository.FindByID(ctx, request.PersonID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("person-usecase", fmt.Sprintf("Error finding person: %v", err), "Update", "")
		return result
	}
	if person == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("persona con id %d no encontrada", request.PersonID)
		result.Error = errObj
		c.Log.Error("person-usecase", errObj.Message, "Update", "")
		return result
	}

	if request.Email != "" && request.Email != person.Email {
		exists, err := c.PersonRepository.ExistsByEmail(ctx, request.Email, person.PersonID)
		if err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("person-usecase", fmt.Sprintf("Error checking email: %v", err), "Update", "")
			return result
		}
		if exists {
			errObj := httpError.NewUnprocessableEntity()
			errObj.Message = "el correo ya esta registrado"
			result.Error = errObj
			c.Log.Error("person-usecase", errObj.Message, "Update", request.Email)
			return result
		}
		person.Email = request.Email
	}

	if request.Name != "" {
		person.Name = request.Name
	}
	if request.LastName != "" {
		person.LastName = request.LastName
	}
	if request.Phone != "" {
		person.Phone = request.Phone
	}
	if request.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", request.BirthDate)
		if err != nil {
			errObj := httpError.NewBadRequest()
			errObj.Message = "la fecha de nacimiento no es valida"
			result.Error = errObj
			c.Log.Error("person-usecase", errObj.Message, "Update", request.BirthDate)
			return result
		}
		person.BirthDate = birthDate
	}

	if err := c.PersonRepository.Update(ctx, person); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("person-usecase", fmt.Sprintf("Error updating person: %v", err), "Update", "")
		return result
	}

	result.Data = converter.PersonToResponse(person)
	return result
}

func (c *PersonUseCase) Delete(ctx context.Context, request *model.GetPersonRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("person-usecase", errObj.Message, "Delete", utils.ConvertString(err))
		return result
	}

	person, err := c.PersonRepository.FindByID(ctx, request.PersonID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("person-usecase", fmt.Sprintf("Error finding person: %v", err), "Delete", "")
		return result
	}
	if person == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("persona con id %d no encontrada", request.PersonID)
		result.Error = errObj
		c.Log.Error("person-usecase", errObj.Message, "Delete", "")
		return result
	}

	if err := c.PersonRepository.DeleteCascade(ctx, request.PersonID); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("person-usecase", fmt.Sprintf("Error deleting person: %v", err), "Delete", "")
		return result
	}

	result.Data = converter.PersonToResponse(person)
	return result
}

func paginate(request *model.ListRequest) (page, limit int) {
	page = request.Page
	if page < 1 {
		page = defaultPage
	}
	limit = request.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
