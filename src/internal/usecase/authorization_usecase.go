package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/gateway/messaging"
	"quotation-service/src/internal/model"
	"quotation-service/src/internal/model/converter"
	"quotation-service/src/internal/repository"
	httpError "quotation-service/src/pkg/http-error"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/mailer"
	"quotation-service/src/pkg/storage"
	"quotation-service/src/pkg/utils"
)

// AuthorizationUseCase runs the approval step: verify the one-time code,
// archive the identity document, mail the confirmation and only then flip the
// quote to its terminal status.
type AuthorizationUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	QuoteRepository repository.QuoteRepository
	Storage         storage.Storage
	Mailer          mailer.Mailer
	Producer        messaging.QuoteEventPublisher
}

func NewAuthorizationUseCase(
	logger log.Log,
	validate *validator.Validate,
	quoteRepository repository.QuoteRepository,
	store storage.Storage,
	mailClient mailer.Mailer,
	producer messaging.QuoteEventPublisher,
) *AuthorizationUseCase {
	return &AuthorizationUseCase{
		Log:             logger,
		Validate:        validate,
		QuoteRepository: quoteRepository,
		Storage:         store,
		Mailer:          mailClient,
		Producer:        producer,
	}
}

var allowedPhotoExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

func (c *AuthorizationUseCase) Authorize(ctx context.Context, request *model.AuthorizeQuoteRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := validationError(err)
		result.Error = errObj
		c.Log.Error("authorization-usecase", errObj.Message, "Authorize", utils.ConvertString(err))
		return result
	}

	detail, err := c.QuoteRepository.FindDetailByID(ctx, request.QuoteID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("authorization-usecase", fmt.Sprintf("Error finding quote: %v", err), "Authorize", "")
		return result
	}
	if detail == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("cotizacion con id %d no encontrada", request.QuoteID)
		result.Error = errObj
		c.Log.Error("authorization-usecase", errObj.Message, "Authorize", "")
		return result
	}
	if isTerminal(detail.Status) {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("la cotizacion ya fue %s", detail.Status)
		result.Error = errObj
		c.Log.Error("authorization-usecase", errObj.Message, "Authorize", detail.Status)
		return result
	}

	if detail.Code == nil || *detail.Code != request.Code {
		result.Error = httpError.NewUnauthorized()
		c.Log.Error("authorization-usecase", "authorization code mismatch", "Authorize", "")
		return result
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(request.Photo.Filename), "."))
	if !allowedPhotoExtensions[ext] {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = "el documento debe ser una imagen jpg, jpeg o png"
		result.Error = errObj
		c.Log.Error("authorization-usecase", errObj.Message, "Authorize", ext)
		return result
	}

	path, err := c.Storage.Save(request.Photo)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("authorization-usecase", fmt.Sprintf("Error saving identity document: %v", err), "Authorize", "")
		return result
	}

	destinationName := ""
	if detail.DestinationName != nil {
		destinationName = *detail.DestinationName
	}
	confirmation := mailer.ConfirmationData{
		Code:        request.Code,
		Destination: destinationName,
		Price:       detail.Price.String(),
	}
	if err := c.Mailer.SendConfirmation(detail.PersonEmail, "Confirmacion de cotizacion", confirmation, path); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("authorization-usecase", fmt.Sprintf("Error sending confirmation mail: %v", err), "Authorize", "")
		return result
	}

	if err := c.QuoteRepository.UpdateStatus(ctx, request.QuoteID, entity.StatusAproved); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("authorization-usecase", fmt.Sprintf("Error approving quote: %v", err), "Authorize", "")
		return result
	}

	if c.Producer != nil {
		event := converter.QuoteToEvent(&entity.Quote{
			QuoteID: detail.QuoteID,
			Folio:   detail.Folio,
			Price:   detail.Price,
			Status:  entity.StatusAproved,
		}, "approved")
		if err := c.Producer.QuoteApproved(event); err != nil {
			c.Log.Error("authorization-usecase", fmt.Sprintf("Failed publish quote approved event: %v", err), "Authorize", "")
		}
	}

	updated, err := c.QuoteRepository.FindDetailByID(ctx, request.QuoteID)
	if err != nil || updated == nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("authorization-usecase", fmt.Sprintf("Error reloading quote: %v", err), "Authorize", "")
		return result
	}

	result.Data = converter.QuoteDetailToResponse(updated)
	return result
}
