package repository

import (
	"context"

	"quotation-service/src/internal/entity"
)

// Store interfaces consumed by the usecases. Implementations keep every
// multi-row write sequence inside one transaction so a failure never leaves
// partial rows (trips without quotes, destinations without directions).

type PersonRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]entity.PersonDetail, error)
	FindByID(ctx context.Context, id int64) (*entity.Person, error)
	FindDetailByID(ctx context.Context, id int64) (*entity.PersonDetail, error)
	FindByEmail(ctx context.Context, email string) (*entity.Person, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, person *entity.Person) error
	Update(ctx context.Context, person *entity.Person) error
	DeleteCascade(ctx context.Context, id int64) error
}

type AdministratorRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Administrator, error)
	FindByPersonID(ctx context.Context, personID int64) (*entity.Administrator, error)
	SaveCode(ctx context.Context, id int64, code string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]entity.Category, error)
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindByDestinationID(ctx context.Context, destinationID int64) ([]entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
	CountReferences(ctx context.Context, id int64) (int64, error)
}

type DestinationRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]entity.DestinationDetail, error)
	FindByID(ctx context.Context, id int64) (*entity.Destination, error)
	FindDetailByID(ctx context.Context, id int64) (*entity.DestinationDetail, error)
	HasCategory(ctx context.Context, destinationID, categoryID int64) (bool, error)
	CreateWithDirection(ctx context.Context, direction *entity.Direction, destination *entity.Destination, categoryIDs []int64) error
	UpdateWithDirection(ctx context.Context, destination *entity.Destination, direction *entity.Direction, attach, detach []int64) error
	DeleteCascade(ctx context.Context, id, directionID int64) error
}

type OriginRepository interface {
	FindAll(ctx context.Context) ([]entity.OriginDetail, error)
	FindByID(ctx context.Context, id int64) (*entity.Origin, error)
	FindDetailByID(ctx context.Context, id int64) (*entity.OriginDetail, error)
}

type QuoteRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]entity.QuoteDetail, error)
	FindByID(ctx context.Context, id int64) (*entity.Quote, error)
	FindDetailByID(ctx context.Context, id int64) (*entity.QuoteDetail, error)
	FindDetailByPersonID(ctx context.Context, personID int64) ([]entity.QuoteDetail, error)
	CreateWithTrip(ctx context.Context, trip *entity.Trip, quote *entity.Quote) error
	// UpdateWithTrip persists the edited quote and its trip and clears the
	// consumed authorization code in the same transaction.
	UpdateWithTrip(ctx context.Context, quote *entity.Quote, trip *entity.Trip) error
	// UpdateStatus moves the quote to a terminal status and clears the code.
	UpdateStatus(ctx context.Context, id int64, status string) error
	SaveCode(ctx context.Context, id int64, code string) error
	DeleteWithTrip(ctx context.Context, quoteID, tripID int64) error
}
