package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/model"
	httpError "quotation-service/src/pkg/http-error"
	"quotation-service/src/pkg/log"
)

type quoteUseCaseMocks struct {
	quotes       *quoteRepositoryMock
	people       *personRepositoryMock
	categories   *categoryRepositoryMock
	destinations *destinationRepositoryMock
	origins      *originRepositoryMock
	sms          *smsSenderMock
	publisher    *publisherMock
}

func newQuoteUseCase(t *testing.T) (*QuoteUseCase, *quoteUseCaseMocks) {
	t.Helper()

	mocks := &quoteUseCaseMocks{
		quotes:       &quoteRepositoryMock{},
		people:       &personRepositoryMock{},
		categories:   &categoryRepositoryMock{},
		destinations: &destinationRepositoryMock{},
		origins:      &originRepositoryMock{},
		sms:          &smsSenderMock{},
		publisher:    &publisherMock{},
	}

	cfg := viper.New()
	cfg.Set("app.origin_id", int64(1))

	useCase := NewQuoteUseCase(
		log.Log{},
		newTestValidator(),
		cfg,
		mocks.quotes,
		mocks.people,
		mocks.categories,
		mocks.destinations,
		mocks.origins,
		&stubGenerator{digit: "7"},
		mocks.sms,
		mocks.publisher,
	)
	return useCase, mocks
}

func pendingQuoteDetail(code *string) *entity.QuoteDetail {
	destinationID := int64(4)
	name := "Cancun"
	distance := decimal.NewFromInt(5)
	pricePerKm := decimal.NewFromInt(10)
	originName := "Terminal Centro"
	return &entity.QuoteDetail{
		QuoteID:               9,
		Folio:                 "777777777777777",
		Price:                 decimal.NewFromInt(58),
		Status:                entity.StatusPending,
		Code:                  code,
		PersonID:              2,
		CategoryID:            3,
		TripID:                6,
		CategoryName:          "Turista",
		CategoryPercentage:    decimal.NewFromInt(16),
		PersonName:            "Ana",
		PersonLastName:        "Luna",
		PersonPhone:           "5512345678",
		PersonEmail:           "ana@example.com",
		OriginID:              1,
		DestinationID:         &destinationID,
		DestinationName:       &name,
		DestinationDistance:   &distance,
		DestinationPricePerKm: &pricePerKm,
		OriginName:            &originName,
	}
}

func TestQuoteCreateComputesPriceAndFolio(t *testing.T) {
	useCase, mocks := newQuoteUseCase(t)
	ctx := context.Background()

	mocks.people.On("FindByID", ctx, int64(2)).Return(&entity.Person{PersonID: 2}, nil)
	mocks.categories.On("FindByID", ctx, int64(3)).Return(&entity.Category{
		CategoryID: 3, Percentage: decimal.NewFromInt(16),
	}, nil)
	mocks.destinations.On("FindByID", ctx, int64(4)).Return(&entity.Destination{
		DestinationID: 4,
		Distance:      decimal.NewFromInt(5),
		PricePerKm:    decimal.NewFromInt(10),
	}, nil)
	mocks.origins.On("FindByID", ctx, int64(1)).Return(&entity.Origin{OriginID: 1}, nil)

	var created *entity.Quote
	mocks.quotes.On("CreateWithTrip", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(2).(*entity.Quote)
			created.QuoteID = 9
		}).
		Return(nil)
	mocks.publisher.On("QuoteCreated", mock.Anything).Return(nil)
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(nil), nil)

	result := useCase.Create(ctx, &model.CreateQuoteRequest{
		DestinationID: 4,
		PersonID:      2,
		CategoryID:    3,
		TripDate:      "2026-09-15",
	})

	require.NoError(t, result.Error)
	require.NotNil(t, created)
	assert.True(t, created.Price.Equal(decimal.NewFromInt(58)), "got %s", created.Price)
	assert.Len(t, created.Folio, 15)
	assert.Equal(t, entity.StatusPending, created.Status)
	mocks.publisher.AssertCalled(t, "QuoteCreated", mock.Anything)
}

func TestQuoteCreateUnknownDestination(t *testing.T) {
	useCase, mocks := newQuoteUseCase(t)
	ctx := context.Background()

	mocks.people.On("FindByID", ctx, int64(2)).Return(&entity.Person{PersonID: 2}, nil)
	mocks.categories.On("FindByID", ctx, int64(3)).Return(&entity.Category{CategoryID: 3}, nil)
	mocks.destinations.On("FindByID", ctx, int64(4)).Return(nil, nil)

	result := useCase.Create(ctx, &model.CreateQuoteRequest{
		DestinationID: 4,
		PersonID:      2,
		CategoryID:    3,
		TripDate:      "2026-09-15",
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusNotFound, commonErr.Code)
	mocks.quotes.AssertNotCalled(t, "CreateWithTrip", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuoteSendCodeDeliveryFailureDoesNotPersist(t *testing.T) {
	useCase, mocks := newQuoteUseCase(t)
	ctx := context.Background()

	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(nil), nil)
	mocks.sms.On("Send", mock.Anything, "5512345678").Return(errors.New("twilio down"))

	result := useCase.SendCode(ctx, &model.SendQuoteCodeRequest{QuoteID: 9})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusInternalServerError, commonErr.Code)
	mocks.quotes.AssertNotCalled(t, "SaveCode", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuoteSendCodeStoresDeliveredCode(t *testing.T) {
	useCase, mocks := newQuoteUseCase(t)
	ctx := context.Background()

	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(nil), nil)
	mocks.sms.On("Send", mock.Anything, "5512345678").Return(nil)
	mocks.quotes.On("SaveCode", ctx, int64(9), "77777").Return(nil)

	result := useCase.SendCode(ctx, &model.SendQuoteCodeRequest{QuoteID: 9})

	require.NoError(t, result.Error)
	mocks.quotes.AssertCalled(t, "SaveCode", ctx, int64(9), "77777")
}

func TestQuoteSendCodeTerminalStatus(t *testing.T) {
	useCase, mocks := newQuoteUseCase(t)
	ctx := context.Background()

	detail := pendingQuoteDetail(nil)
	detail.Status = entity.StatusAproved
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(detail, nil)

	result := useCase.SendCode(ctx, &model.SendQuoteCodeRequest{QuoteID: 9})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusConflict, commonErr.Code)
	mocks.sms.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestQuoteUpdateWithoutStoredCode(t *testing.T) {
	useCase, mocks := newQuoteUseCase(t)
	ctx := context.Background()

	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(nil), nil)

	result := useCase.Update(ctx, &model.UpdateQuoteRequest{QuoteID: 9, Code: "77777"})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusUnauthorized, commonErr.Code)
	mocks.quotes.AssertNotCalled(t, "UpdateWithTrip", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuoteUpdateCodeMismatch(t *testing.T) {
	useCase, mocks := newQuoteUseCase(t)
	ctx := context.Background()

	stored := "11111"
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(&stored), nil)

	result := useCase.Update(ctx, &model.UpdateQuoteRequest{QuoteID: 9, Code: "22222"})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusUnauthorized, commonErr.Code)
	mocks.quotes.AssertNotCalled(t, "UpdateWithTrip", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuoteUpdateTerminalStatus(t *testing.T) {
	useCase, mocks := newQuoteUseCase(t)
	ctx := context.Background()

	stored := "11111"
	detail := pendingQuoteDetail(&stored)
	detail.Status = entity.StatusCancelled
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(detail, nil)

	result := useCase.Update(ctx, &model.UpdateQuoteRequest{QuoteID: 9, Code: "11111"})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusConflict, commonErr.Code)
}

func TestQuoteUpdateCancel(t *testing.T) {
	useCase, mocks := newQuoteUseCase(t)
	ctx := context.Background()

	stored := "11111"
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(&stored), nil).Once()
	mocks.quotes.On("UpdateStatus", ctx, int64(9), entity.StatusCancelled).Return(nil)
	mocks.publisher.On("QuoteCancelled", mock.Anything).Return(nil)

	cancelled := pendingQuoteDetail(nil)
	cancelled.Status = entity.StatusCancelled
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(cancelled, nil).Once()

	result := useCase.Update(ctx, &model.UpdateQuoteRequest{QuoteID: 9, Code: "11111", Cancel: "true"})

	require.NoError(t, result.Error)
	response := result.Data.(*model.QuoteResponse)
	assert.Equal(t, entity.StatusCancelled, response.Status)
	mocks.quotes.AssertCalled(t, "UpdateStatus", ctx, int64(9), entity.StatusCancelled)
	mocks.publisher.AssertCalled(t, "QuoteCancelled", mock.Anything)
}

func TestQuoteUpdateRecomputesPriceForNewDestination(t *testing.T) {
	useCase, mocks := newQuoteUseCase(t)
	ctx := context.Background()

	stored := "11111"
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(&stored), nil).Once()
	mocks.destinations.On("FindByID", ctx, int64(8)).Return(&entity.Destination{
		DestinationID: 8,
		Distance:      decimal.NewFromInt(20),
		PricePerKm:    decimal.NewFromInt(10),
	}, nil)

	var updated *entity.Quote
	mocks.quotes.On("UpdateWithTrip", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.Quote)
		}).
		Return(nil)
	mocks.quotes.On("FindDetailByID", ctx, int64(9)).Return(pendingQuoteDetail(nil), nil).Once()

	result := useCase.Update(ctx, &model.UpdateQuoteRequest{QuoteID: 9, Code: "11111", DestinationID: 8})

	require.NoError(t, result.Error)
	require.NotNil(t, updated)
	// 10*20 = 200, plus the current 16 percent category
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(232)), "got %s", updated.Price)
}
