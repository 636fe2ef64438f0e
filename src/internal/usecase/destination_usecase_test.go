package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/model"
	"quotation-service/src/pkg/geocode"
	httpError "quotation-service/src/pkg/http-error"
	"quotation-service/src/pkg/log"
)

type destinationUseCaseMocks struct {
	destinations *destinationRepositoryMock
	categories   *categoryRepositoryMock
	geocoder     *geocoderMock
}

func newDestinationUseCase(t *testing.T) (*DestinationUseCase, *destinationUseCaseMocks) {
	t.Helper()

	mocks := &destinationUseCaseMocks{
		destinations: &destinationRepositoryMock{},
		categories:   &categoryRepositoryMock{},
		geocoder:     &geocoderMock{},
	}

	useCase := NewDestinationUseCase(
		log.Log{},
		newTestValidator(),
		mocks.destinations,
		mocks.categories,
		mocks.geocoder,
	)
	return useCase, mocks
}

func TestDestinationCreateUnknownZip(t *testing.T) {
	useCase, mocks := newDestinationUseCase(t)
	ctx := context.Background()

	mocks.categories.On("FindByID", ctx, int64(3)).Return(&entity.Category{CategoryID: 3}, nil)
	mocks.geocoder.On("Lookup", ctx, "99999").Return(nil, nil)

	result := useCase.Create(ctx, &model.CreateDestinationRequest{
		Name:       "Cancun",
		Distance:   5,
		ZipCode:    "99999",
		PricePerKm: 10,
		Categories: []int64{3},
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusNotFound, commonErr.Code)
	mocks.destinations.AssertNotCalled(t, "CreateWithDirection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDestinationCreateDuplicateCategories(t *testing.T) {
	useCase, mocks := newDestinationUseCase(t)
	ctx := context.Background()

	result := useCase.Create(ctx, &model.CreateDestinationRequest{
		Name:       "Cancun",
		Distance:   5,
		ZipCode:    "77500",
		PricePerKm: 10,
		Categories: []int64{3, 3},
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusConflict, commonErr.Code)
	mocks.geocoder.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestDestinationUpdateDuplicateCategories(t *testing.T) {
	useCase, mocks := newDestinationUseCase(t)
	ctx := context.Background()

	result := useCase.Update(ctx, &model.UpdateDestinationRequest{
		DestinationID: 4,
		Categories:    []int64{5, 5},
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusConflict, commonErr.Code)
	mocks.destinations.AssertNotCalled(t, "UpdateWithDirection", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDestinationUpdateDuplicateDeleteCategories(t *testing.T) {
	useCase, mocks := newDestinationUseCase(t)
	ctx := context.Background()

	result := useCase.Update(ctx, &model.UpdateDestinationRequest{
		DestinationID:    4,
		DeleteCategories: []int64{8, 8},
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusConflict, commonErr.Code)
	mocks.destinations.AssertNotCalled(t, "UpdateWithDirection", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDestinationCreateBuildsDirectionFromAddress(t *testing.T) {
	useCase, mocks := newDestinationUseCase(t)
	ctx := context.Background()

	mocks.categories.On("FindByID", ctx, int64(3)).Return(&entity.Category{CategoryID: 3}, nil)
	mocks.geocoder.On("Lookup", ctx, "77500").Return(&geocode.Address{
		Zip:            "77500",
		Settlement:     "Centro",
		SettlementType: "Colonia",
		Municipality:   "Benito Juarez",
		State:          "Quintana Roo",
		City:           "Cancun",
		Country:        "Mexico",
	}, nil)

	var createdDirection *entity.Direction
	mocks.destinations.On("CreateWithDirection", ctx, mock.Anything, mock.Anything, []int64{3}).
		Run(func(args mock.Arguments) {
			createdDirection = args.Get(1).(*entity.Direction)
			destination := args.Get(2).(*entity.Destination)
			destination.DestinationID = 4
		}).
		Return(nil)
	mocks.destinations.On("FindDetailByID", ctx, int64(4)).Return(&entity.DestinationDetail{
		DestinationID: 4,
		Name:          "Cancun",
		Distance:      decimal.NewFromInt(5),
		PricePerKm:    decimal.NewFromInt(10),
		Zip:           "77500",
	}, nil)
	mocks.categories.On("FindByDestinationID", ctx, int64(4)).Return([]entity.Category{{CategoryID: 3}}, nil)

	result := useCase.Create(ctx, &model.CreateDestinationRequest{
		Name:       "Cancun",
		Distance:   5,
		ZipCode:    "77500",
		PricePerKm: 10,
		Categories: []int64{3},
	})

	require.NoError(t, result.Error)
	require.NotNil(t, createdDirection)
	assert.Equal(t, "77500", createdDirection.Zip)
	assert.Equal(t, "Benito Juarez", createdDirection.Municipality)
	assert.Equal(t, "Quintana Roo", createdDirection.State)
	response := result.Data.(*model.DestinationResponse)
	require.Len(t, response.Categories, 1)
}

func TestDestinationUpdateAttachAlreadyRelated(t *testing.T) {
	useCase, mocks := newDestinationUseCase(t)
	ctx := context.Background()

	mocks.destinations.On("FindByID", ctx, int64(4)).Return(&entity.Destination{DestinationID: 4, DirectionID: 7}, nil)
	mocks.categories.On("FindByID", ctx, int64(3)).Return(&entity.Category{CategoryID: 3}, nil)
	mocks.destinations.On("HasCategory", ctx, int64(4), int64(3)).Return(true, nil)

	result := useCase.Update(ctx, &model.UpdateDestinationRequest{
		DestinationID: 4,
		Categories:    []int64{3},
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusConflict, commonErr.Code)
	mocks.destinations.AssertNotCalled(t, "UpdateWithDirection", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDestinationUpdateDetachUnrelated(t *testing.T) {
	useCase, mocks := newDestinationUseCase(t)
	ctx := context.Background()

	mocks.destinations.On("FindByID", ctx, int64(4)).Return(&entity.Destination{DestinationID: 4, DirectionID: 7}, nil)
	mocks.destinations.On("HasCategory", ctx, int64(4), int64(8)).Return(false, nil)

	result := useCase.Update(ctx, &model.UpdateDestinationRequest{
		DestinationID:    4,
		DeleteCategories: []int64{8},
	})

	require.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, http.StatusNotFound, commonErr.Code)
}

func TestDestinationDeleteCascades(t *testing.T) {
	useCase, mocks := newDestinationUseCase(t)
	ctx := context.Background()

	mocks.destinations.On("FindByID", ctx, int64(4)).Return(&entity.Destination{DestinationID: 4, DirectionID: 7}, nil)
	mocks.destinations.On("DeleteCascade", ctx, int64(4), int64(7)).Return(nil)

	result := useCase.Delete(ctx, &model.GetDestinationRequest{DestinationID: 4})

	require.NoError(t, result.Error)
	mocks.destinations.AssertCalled(t, "DeleteCascade", ctx, int64(4), int64(7))
}
