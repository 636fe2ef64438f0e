package usecase

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"

	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/model"
	"quotation-service/src/pkg/geocode"
	"quotation-service/src/pkg/mailer"
)

func newTestValidator() *validator.Validate {
	validate := validator.New()
	digits := func(length int) validator.Func {
		return func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) != length {
				return false
			}
			for _, r := range value {
				if r < '0' || r > '9' {
					return false
				}
			}
			return true
		}
	}
	_ = validate.RegisterValidation("zipdigits", digits(5))
	_ = validate.RegisterValidation("phonedigits", digits(10))
	return validate
}

type personRepositoryMock struct {
	mock.Mock
}

func (m *personRepositoryMock) FindAll(ctx context.Context, limit, offset int) ([]entity.PersonDetail, error) {
	args := m.Called(ctx, limit, offset)
	people, _ := args.Get(0).([]entity.PersonDetail)
	return people, args.Error(1)
}

func (m *personRepositoryMock) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	args := m.Called(ctx, id)
	person, _ := args.Get(0).(*entity.Person)
	return person, args.Error(1)
}

func (m *personRepositoryMock) FindDetailByID(ctx context.Context, id int64) (*entity.PersonDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*entity.PersonDetail)
	return detail, args.Error(1)
}

func (m *personRepositoryMock) FindByEmail(ctx context.Context, email string) (*entity.Person, error) {
	args := m.Called(ctx, email)
	person, _ := args.Get(0).(*entity.Person)
	return person, args.Error(1)
}

func (m *personRepositoryMock) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *personRepositoryMock) Create(ctx context.Context, person *entity.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *personRepositoryMock) Update(ctx context.Context, person *entity.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *personRepositoryMock) DeleteCascade(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type administratorRepositoryMock struct {
	mock.Mock
}

func (m *administratorRepositoryMock) FindByID(ctx context.Context, id int64) (*entity.Administrator, error) {
	args := m.Called(ctx, id)
	administrator, _ := args.Get(0).(*entity.Administrator)
	return administrator, args.Error(1)
}

func (m *administratorRepositoryMock) FindByPersonID(ctx context.Context, personID int64) (*entity.Administrator, error) {
	args := m.Called(ctx, personID)
	administrator, _ := args.Get(0).(*entity.Administrator)
	return administrator, args.Error(1)
}

func (m *administratorRepositoryMock) SaveCode(ctx context.Context, id int64, code string) error {
	args := m.Called(ctx, id, code)
	return args.Error(0)
}

func (m *administratorRepositoryMock) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) FindAll(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]entity.Category)
	return categories, args.Error(1)
}

func (m *categoryRepositoryMock) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.Category)
	return category, args.Error(1)
}

func (m *categoryRepositoryMock) FindByDestinationID(ctx context.Context, destinationID int64) ([]entity.Category, error) {
	args := m.Called(ctx, destinationID)
	categories, _ := args.Get(0).([]entity.Category)
	return categories, args.Error(1)
}

func (m *categoryRepositoryMock) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *categoryRepositoryMock) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *categoryRepositoryMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *categoryRepositoryMock) CountReferences(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type destinationRepositoryMock struct {
	mock.Mock
}

func (m *destinationRepositoryMock) FindAll(ctx context.Context, limit, offset int) ([]entity.DestinationDetail, error) {
	args := m.Called(ctx, limit, offset)
	destinations, _ := args.Get(0).([]entity.DestinationDetail)
	return destinations, args.Error(1)
}

func (m *destinationRepositoryMock) FindByID(ctx context.Context, id int64) (*entity.Destination, error) {
	args := m.Called(ctx, id)
	destination, _ := args.Get(0).(*entity.Destination)
	return destination, args.Error(1)
}

func (m *destinationRepositoryMock) FindDetailByID(ctx context.Context, id int64) (*entity.DestinationDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*entity.DestinationDetail)
	return detail, args.Error(1)
}

func (m *destinationRepositoryMock) HasCategory(ctx context.Context, destinationID, categoryID int64) (bool, error) {
	args := m.Called(ctx, destinationID, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *destinationRepositoryMock) CreateWithDirection(ctx context.Context, direction *entity.Direction, destination *entity.Destination, categoryIDs []int64) error {
	args := m.Called(ctx, direction, destination, categoryIDs)
	return args.Error(0)
}

func (m *destinationRepositoryMock) UpdateWithDirection(ctx context.Context, destination *entity.Destination, direction *entity.Direction, attach, detach []int64) error {
	args := m.Called(ctx, destination, direction, attach, detach)
	return args.Error(0)
}

func (m *destinationRepositoryMock) DeleteCascade(ctx context.Context, id, directionID int64) error {
	args := m.Called(ctx, id, directionID)
	return args.Error(0)
}

type originRepositoryMock struct {
	mock.Mock
}

func (m *originRepositoryMock) FindAll(ctx context.Context) ([]entity.OriginDetail, error) {
	args := m.Called(ctx)
	origins, _ := args.Get(0).([]entity.OriginDetail)
	return origins, args.Error(1)
}

func (m *originRepositoryMock) FindByID(ctx context.Context, id int64) (*entity.Origin, error) {
	args := m.Called(ctx, id)
	origin, _ := args.Get(0).(*entity.Origin)
	return origin, args.Error(1)
}

func (m *originRepositoryMock) FindDetailByID(ctx context.Context, id int64) (*entity.OriginDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*entity.OriginDetail)
	return detail, args.Error(1)
}

type quoteRepositoryMock struct {
	mock.Mock
}

func (m *quoteRepositoryMock) FindAll(ctx context.Context, limit, offset int) ([]entity.QuoteDetail, error) {
	args := m.Called(ctx, limit, offset)
	quotes, _ := args.Get(0).([]entity.QuoteDetail)
	return quotes, args.Error(1)
}

func (m *quoteRepositoryMock) FindByID(ctx context.Context, id int64) (*entity.Quote, error) {
	args := m.Called(ctx, id)
	quote, _ := args.Get(0).(*entity.Quote)
	return quote, args.Error(1)
}

func (m *quoteRepositoryMock) FindDetailByID(ctx context.Context, id int64) (*entity.QuoteDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*entity.QuoteDetail)
	return detail, args.Error(1)
}

func (m *quoteRepositoryMock) FindDetailByPersonID(ctx context.Context, personID int64) ([]entity.QuoteDetail, error) {
	args := m.Called(ctx, personID)
	quotes, _ := args.Get(0).([]entity.QuoteDetail)
	return quotes, args.Error(1)
}

func (m *quoteRepositoryMock) CreateWithTrip(ctx context.Context, trip *entity.Trip, quote *entity.Quote) error {
	args := m.Called(ctx, trip, quote)
	return args.Error(0)
}

func (m *quoteRepositoryMock) UpdateWithTrip(ctx context.Context, quote *entity.Quote, trip *entity.Trip) error {
	args := m.Called(ctx, quote, trip)
	return args.Error(0)
}

func (m *quoteRepositoryMock) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *quoteRepositoryMock) SaveCode(ctx context.Context, id int64, code string) error {
	args := m.Called(ctx, id, code)
	return args.Error(0)
}

func (m *quoteRepositoryMock) DeleteWithTrip(ctx context.Context, quoteID, tripID int64) error {
	args := m.Called(ctx, quoteID, tripID)
	return args.Error(0)
}

type smsSenderMock struct {
	mock.Mock
}

func (m *smsSenderMock) Send(message, phone string) error {
	args := m.Called(message, phone)
	return args.Error(0)
}

type mailerMock struct {
	mock.Mock
}

func (m *mailerMock) SendCode(to, subject, code string) error {
	args := m.Called(to, subject, code)
	return args.Error(0)
}

func (m *mailerMock) SendConfirmation(to, subject string, data mailer.ConfirmationData, attachmentPath string) error {
	args := m.Called(to, subject, data, attachmentPath)
	return args.Error(0)
}

type geocoderMock struct {
	mock.Mock
}

func (m *geocoderMock) Lookup(ctx context.Context, zip string) (*geocode.Address, error) {
	args := m.Called(ctx, zip)
	address, _ := args.Get(0).(*geocode.Address)
	return address, args.Error(1)
}

type storageMock struct {
	mock.Mock
}

func (m *storageMock) Save(file *multipart.FileHeader) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) QuoteCreated(event *model.QuoteEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *publisherMock) QuoteApproved(event *model.QuoteEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *publisherMock) QuoteCancelled(event *model.QuoteEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// stubGenerator hands out a predictable digit string so tests can assert on
// the exact code that gets sent and stored.
type stubGenerator struct {
	digit string
}

func (g *stubGenerator) Digits(length int) string {
	return strings.Repeat(g.digit, length)
}
