package converter

import (
	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/model"
)

func PersonDetailToResponse(detail *entity.PersonDetail, quotes []entity.QuoteDetail) *model.PersonResponse {
	response := &model.PersonResponse{
		PersonID:  detail.PersonID,
		Name:      detail.Name,
		LastName:  detail.LastName,
		Phone:     detail.Phone,
		Email:     detail.Email,
		BirthDate: detail.BirthDate,
		CreatedAt: detail.CreatedAt,
		UpdatedAt: detail.UpdatedAt,
		Quotes:    QuoteDetailsToResponses(quotes),
	}
	if detail.AdministratorID != nil {
		response.Administrator = &model.AdministratorResponse{
			AdministratorID: *detail.AdministratorID,
			PersonID:        detail.PersonID,
		}
	}
	return response
}

func PersonToResponse(person *entity.Person) *model.PersonResponse {
	return &model.PersonResponse{
		PersonID:  person.PersonID,
		Name:      person.Name,
		LastName:  person.LastName,
		Phone:     person.Phone,
		Email:     person.Email,
		BirthDate: person.BirthDate,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
	}
}
