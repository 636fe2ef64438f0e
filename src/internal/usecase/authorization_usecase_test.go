package usecase

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/model"
	httpError "quotation-service/src/pkg/http-error"
	"quotation-service/src/pkg/log"
)

type authorizationUseCaseMocks struct {
	quotes    *quoteRepositoryMock
	storage   *storageMock
	mailer    *mailerMock
	publisher *publisherMock
}

func newAuthorizationUseCase(t *testing.T) (*AuthorizationUseCase, *authorizationUseCaseMocks) {
	t.Helper()

	mocks := &authorizationUseCaseMocks{
		quotes:    &quoteRepositoryMock{},
		storage:   &storageMock{},
		mailer:    &mailerMock{},
		publisher: &publisherMock{},
	}

	useCase := NewAuthorizationUseCase(
		log.Log{},
		newTestValidator(),
		mocks.quotes,
		mocks.storage,
		mocks.mailer,
		mocks.publisher,
	)
	return useCase, mocks
}

func photoFile(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func TestAuthorizeTerminalStatus(t *testing.T) {
	useCase, mocks := newAuthorizationUseCase(t)
	ctx := context.Background()

	stored := "11111"
	detail := pendingQuoteDetail(&stored)
	detail.Status = entity.StatusAproved
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(detail, nil)

	result := useCase.Authorize(ctx, &model.AuthorizeQuoteRequest{
		QuoteID: 9,
		Code:    "11111",
		Photo:   photoFile("ine.png"),
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusConflict, commonErr.Code)
	mocks.quotes.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthorizeWithoutStoredCode(t *testing.T) {
	useCase, mocks := newAuthorizationUseCase(t)
	ctx := context.Background()

	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(nil), nil)

	result := useCase.Authorize(ctx, &model.AuthorizeQuoteRequest{
		QuoteID: 9,
		Code:    "11111",
		Photo:   photoFile("ine.png"),
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusUnauthorized, commonErr.Code)
}

func TestAuthorizeRejectsUnknownFileType(t *testing.T) {
	useCase, mocks := newAuthorizationUseCase(t)
	ctx := context.Background()

	stored := "11111"
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(&stored), nil)

	result := useCase.Authorize(ctx, &model.AuthorizeQuoteRequest{
		QuoteID: 9,
		Code:    "11111",
		Photo:   photoFile("ine.pdf"),
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusUnprocessableEntity, commonErr.Code)
	mocks.storage.AssertNotCalled(t, "Save", mock.Anything)
}

func TestAuthorizeMailFailureLeavesStatusUntouched(t *testing.T) {
	useCase, mocks := newAuthorizationUseCase(t)
	ctx := context.Background()

	stored := "11111"
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(&stored), nil)
	mocks.storage.On("Save", mock.Anything).Return("uploads/FILE-1.png", nil)
	mocks.mailer.On("SendConfirmation", "ana@example.com", mock.Anything, mock.Anything, "uploads/FILE-1.png").
		Return(errors.New("smtp down"))

	result := useCase.Authorize(ctx, &model.AuthorizeQuoteRequest{
		QuoteID: 9,
		Code:    "11111",
		Photo:   photoFile("ine.png"),
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusInternalServerError, commonErr.Code)
	mocks.quotes.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthorizeApprovesQuote(t *testing.T) {
	useCase, mocks := newAuthorizationUseCase(t)
	ctx := context.Background()

	stored := "11111"
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(&stored), nil).Once()
	mocks.storage.On("Save", mock.Anything).Return("uploads/FILE-1.png", nil)
	mocks.mailer.On("SendConfirmation", "ana@example.com", mock.Anything, mock.Anything, "uploads/FILE-1.png").
		Return(nil)
	mocks.quotes.On("UpdateStatus", ctx, int64(9), entity.StatusAproved).Return(nil)
	mocks.publisher.On("QuoteApproved", mock.Anything).Return(nil)

	approved := pendingQuoteDetail(nil)
	approved.Status = entity.StatusAproved
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(approved, nil).Once()

	result := useCase.Authorize(ctx, &model.AuthorizeQuoteRequest{
		QuoteID: 9,
		Code:    "11111",
		Photo:   photoFile("ine.JPG"),
	})

	require.NoError(t, result.Error)
	response := result.Data.(*model.QuoteResponse)
	assert.Equal(t, entity.StatusAproved, response.Status)
	mocks.quotes.AssertCalled(t, "UpdateStatus", ctx, int64(9), entity.StatusAproved)
	mocks.publisher.AssertCalled(t, "QuoteApproved", mock.Anything)
}
