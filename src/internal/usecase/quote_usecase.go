package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/gateway/messaging"
	"quotation-service/src/internal/model"
	"quotation-service/src/internal/model/converter"
	"quotation-service/src/internal/repository"
	httpError "quotation-service/src/pkg/http-error"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/otp"
	"quotation-service/src/pkg/sms"
	"quotation-service/src/pkg/utils"
)

type QuoteUseCase struct {
	Log                   log.Log
	Validate              *validator.Validate
	Config                *viper.Viper
	QuoteRepository       repository.QuoteRepository
	PersonRepository      repository.PersonRepository
	CategoryRepository    repository.CategoryRepository
	DestinationRepository repository.DestinationRepository
	OriginRepository      repository.OriginRepository
	Codes                 otp.Generator
	Sms                   sms.Sender
	Producer              messaging.QuoteEventPublisher
}

func NewQuoteUseCase(
	logger log.Log,
	validate *validator.Validate,
	cfg *viper.Viper,
	quoteRepository repository.QuoteRepository,
	personRepository repository.PersonRepository,
	categoryRepository repository.CategoryRepository,
	destinationRepository repository.DestinationRepository,
	originRepository repository.OriginRepository,
	codes otp.Generator,
	smsSender sms.Sender,
	producer messaging.QuoteEventPublisher,
) *QuoteUseCase {
	return &QuoteUseCase{
		Log:                   logger,
		Validate:              validate,
		Config:                cfg,
		QuoteRepository:       quoteRepository,
		PersonRepository:      personRepository,
		CategoryRepository:    categoryRepository,
		DestinationRepository: destinationRepository,
		OriginRepository:      originRepository,
		Codes:                 codes,
		Sms:                   smsSender,
		Producer:              producer,
	}
}

func isTerminal(status string) bool {
	return status == entity.StatusAproved || status == entity.StatusCancelled
}

func (c *QuoteUseCase) List(ctx context.Context, request *model.ListRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "List", utils.ConvertString(err))
		return result
	}

	page, limit := paginate(request)
	quotes, err := c.QuoteRepository.FindAll(ctx, limit, (page-1)*limit)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error listing quotes: %v", err), "List", "")
		return result
	}

	result.Data = converter.QuoteDetailsToResponses(quotes)
	return result
}

func (c *QuoteUseCase) Get(ctx context.Context, request *model.GetQuoteRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Get", utils.ConvertString(err))
		return result
	}

	detail, err := c.QuoteRepository.FindDetailByID(ctx, request.QuoteID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error finding quote: %v", err), "Get", "")
		return result
	}
	if detail == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("cotizacion con id %d no encontrada", request.QuoteID)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Get", "")
		return result
	}

	result.Data = converter.QuoteDetailToResponse(detail)
	return result
}

func (c *QuoteUseCase) Create(ctx context.Context, request *model.CreateQuoteRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	person, err := c.PersonRepository.FindByID(ctx, request.PersonID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error finding person: %v", err), "Create", "")
		return result
	}
	if person == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("persona con id %d no encontrada", request.PersonID)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Create", "")
		return result
	}

	category, err := c.CategoryRepository.FindByID(ctx, request.CategoryID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error finding category: %v", err), "Create", "")
		return result
	}
	if category == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("categoria con id %d no encontrada", request.CategoryID)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Create", "")
		return result
	}

	destination, err := c.DestinationRepository.FindByID(ctx, request.DestinationID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error finding destination: %v", err), "Create", "")
		return result
	}
	if destination == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("destino con id %d no encontrado", request.DestinationID)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Create", "")
		return result
	}

	originID := c.Config.GetInt64("app.origin_id")
	origin, err := c.OriginRepository.FindByID(ctx, originID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error finding origin: %v", err), "Create", "")
		return result
	}
	if origin == nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("configured origin %d does not exist", originID), "Create", "")
		return result
	}

	tripDate, err := time.Parse("2006-01-02", request.TripDate)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "la fecha del viaje no es valida"
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Create", request.TripDate)
		return result
	}

	trip := &entity.Trip{
		Date:          tripDate,
		OriginID:      origin.OriginID,
		DestinationID: &destination.DestinationID,
	}
	quote := &entity.Quote{
		Folio:      c.Codes.Digits(otp.FolioLength),
		Price:      ComputePrice(destination.PricePerKm, destination.Distance, category.Percentage),
		Status:     entity.StatusPending,
		PersonID:   person.PersonID,
		CategoryID: category.CategoryID,
	}
	if err := c.QuoteRepository.CreateWithTrip(ctx, trip, quote); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error creating quote: %v", err), "Create", "")
		return result
	}

	if c.Producer != nil {
		event := converter.QuoteToEvent(quote, "created")
		if err := c.Producer.QuoteCreated(event); err != nil {
			c.Log.Error("quote-usecase", fmt.Sprintf("Failed publish quote created event: %v", err), "Create", "")
		}
	}

	detail, err := c.QuoteRepository.FindDetailByID(ctx, quote.QuoteID)
	if err != nil || detail == nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error reloading quote: %v", err), "Create", "")
		return result
	}

	result.Data = converter.QuoteDetailToResponse(detail)
	return result
}

// SendCode texts a fresh authorization code to the quote's owner. A delivery
// failure leaves the stored code untouched so an undelivered code can never
// authorize anything.
func (c *QuoteUseCase) SendCode(ctx context.Context, request *model.SendQuoteCodeRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "SendCode", utils.ConvertString(err))
		return result
	}

	detail, err := c.QuoteRepository.FindDetailByID(ctx, request.QuoteID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error finding quote: %v", err), "SendCode", "")
		return result
	}
	if detail == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("cotizacion con id %d no encontrada", request.QuoteID)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "SendCode", "")
		return result
	}
	if isTerminal(detail.Status) {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("la cotizacion ya fue %s", detail.Status)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "SendCode", detail.Status)
		return result
	}

	code := c.Codes.Digits(otp.CodeLength)
	message := fmt.Sprintf("Tu codigo de autorizacion es: %s", code)
	if err := c.Sms.Send(message, detail.PersonPhone); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error sending code sms: %v", err), "SendCode", "")
		return result
	}

	if err := c.QuoteRepository.SaveCode(ctx, request.QuoteID, code); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error saving code: %v", err), "SendCode", "")
		return result
	}

	result.Data = map[string]string{"message": "codigo enviado"}
	return result
}

// Update mutates a pending quote. The one-time code gates the call and is
// consumed whether the request edits the quote or cancels it.
func (c *QuoteUseCase) Update(ctx context.Context, request *model.UpdateQuoteRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	detail, err := c.QuoteRepository.FindDetailByID(ctx, request.QuoteID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error finding quote: %v", err), "Update", "")
		return result
	}
	if detail == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("cotizacion con id %d no encontrada", request.QuoteID)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Update", "")
		return result
	}
	if isTerminal(detail.Status) {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("la cotizacion ya fue %s", detail.Status)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Update", detail.Status)
		return result
	}

	if detail.Code == nil || *detail.Code != request.Code {
		result.Error = httpError.NewUnauthorized()
		c.Log.Error("quote-usecase", "authorization code mismatch", "Update", "")
		return result
	}

	if request.Cancel == "true" {
		if err := c.QuoteRepository.UpdateStatus(ctx, request.QuoteID, entity.StatusCancelled); err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("quote-usecase", fmt.Sprintf("Error cancelling quote: %v", err), "Update", "")
			return result
		}

		if c.Producer != nil {
			event := converter.QuoteToEvent(&entity.Quote{
				QuoteID: detail.QuoteID,
				Folio:   detail.Folio,
				Price:   detail.Price,
				Status:  entity.StatusCancelled,
			}, "cancelled")
			if err := c.Producer.QuoteCancelled(event); err != nil {
				c.Log.Error("quote-usecase", fmt.Sprintf("Failed publish quote cancelled event: %v", err), "Update", "")
			}
		}

		updated, err := c.QuoteRepository.FindDetailByID(ctx, request.QuoteID)
		if err != nil || updated == nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("quote-usecase", fmt.Sprintf("Error reloading quote: %v", err), "Update", "")
			return result
		}
		result.Data = converter.QuoteDetailToResponse(updated)
		return result
	}

	personID := detail.PersonID
	if request.PersonID > 0 {
		person, err := c.PersonRepository.FindByID(ctx, request.PersonID)
		if err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("quote-usecase", fmt.Sprintf("Error finding person: %v", err), "Update", "")
			return result
		}
		if person == nil {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("persona con id %d no encontrada", request.PersonID)
			result.Error = errObj
			c.Log.Error("quote-usecase", errObj.Message, "Update", "")
			return result
		}
		personID = person.PersonID
	}

	categoryID := detail.CategoryID
	percentage := detail.CategoryPercentage
	if request.CategoryID > 0 {
		category, err := c.CategoryRepository.FindByID(ctx, request.CategoryID)
		if err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("quote-usecase", fmt.Sprintf("Error finding category: %v", err), "Update", "")
			return result
		}
		if category == nil {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("categoria con id %d no encontrada", request.CategoryID)
			result.Error = errObj
			c.Log.Error("quote-usecase", errObj.Message, "Update", "")
			return result
		}
		categoryID = category.CategoryID
		percentage = category.Percentage
	}

	destinationID := detail.DestinationID
	var pricePerKm, distance *decimal.Decimal
	if detail.DestinationPricePerKm != nil && detail.DestinationDistance != nil {
		pricePerKm = detail.DestinationPricePerKm
		distance = detail.DestinationDistance
	}
	if request.DestinationID > 0 {
		destination, err := c.DestinationRepository.FindByID(ctx, request.DestinationID)
		if err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("quote-usecase", fmt.Sprintf("Error finding destination: %v", err), "Update", "")
			return result
		}
		if destination == nil {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("destino con id %d no encontrado", request.DestinationID)
			result.Error = errObj
			c.Log.Error("quote-usecase", errObj.Message, "Update", "")
			return result
		}
		destinationID = &destination.DestinationID
		pricePerKm = &destination.PricePerKm
		distance = &destination.Distance
	}

	tripDate := detail.TripDate
	if request.TripDate != "" {
		parsed, err := time.Parse("2006-01-02", request.TripDate)
		if err != nil {
			errObj := httpError.NewBadRequest()
			errObj.Message = "la fecha del viaje no es valida"
			result.Error = errObj
			c.Log.Error("quote-usecase", errObj.Message, "Update", request.TripDate)
			return result
		}
		tripDate = parsed
	}

	// A trip whose destination was deleted keeps the stored price until a new
	// destination is supplied.
	price := detail.Price
	if pricePerKm != nil && distance != nil {
		price = ComputePrice(*pricePerKm, *distance, percentage)
	}

	quote := &entity.Quote{
		QuoteID:    detail.QuoteID,
		Price:      price,
		Status:     detail.Status,
		PersonID:   personID,
		CategoryID: categoryID,
	}
	trip := &entity.Trip{
		TripID:        detail.TripID,
		Date:          tripDate,
		OriginID:      detail.OriginID,
		DestinationID: destinationID,
	}
	if err := c.QuoteRepository.UpdateWithTrip(ctx, quote, trip); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error updating quote: %v", err), "Update", "")
		return result
	}

	updated, err := c.QuoteRepository.FindDetailByID(ctx, request.QuoteID)
	if err != nil || updated == nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error reloading quote: %v", err), "Update", "")
		return result
	}

	result.Data = converter.QuoteDetailToResponse(updated)
	return result
}

func (c *QuoteUseCase) Delete(ctx context.Context, request *model.GetQuoteRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Delete", utils.ConvertString(err))
		return result
	}

	quote, err := c.QuoteRepository.FindByID(ctx, request.QuoteID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error finding quote: %v", err), "Delete", "")
		return result
	}
	if quote == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("cotizacion con id %d no encontrada", request.QuoteID)
		result.Error = errObj
		c.Log.Error("quote-usecase", errObj.Message, "Delete", "")
		return result
	}

	if err := c.QuoteRepository.DeleteWithTrip(ctx, quote.QuoteID, quote.TripID); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("quote-usecase", fmt.Sprintf("Error deleting quote: %v", err), "Delete", "")
		return result
	}

	result.Data = quote
	return result
}
