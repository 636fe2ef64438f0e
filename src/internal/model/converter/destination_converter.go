package converter

import (
	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/model"
)

func DestinationDetailToResponse(detail *entity.DestinationDetail) *model.DestinationResponse {
	return &model.DestinationResponse{
		DestinationID: detail.DestinationID,
		Name:          detail.Name,
		Distance:      detail.Distance,
		PricePerKm:    detail.PricePerKm,
		CreatedAt:     detail.CreatedAt,
		UpdatedAt:     detail.UpdatedAt,
		Direction: &model.DirectionResponse{
			Zip:            detail.Zip,
			City:           detail.City,
			State:          detail.State,
			Municipality:   detail.Municipality,
			Settlement:     detail.Settlement,
			SettlementType: detail.SettlementType,
			Country:        detail.Country,
		},
		Categories: CategoriesToResponses(detail.Categories),
	}
}

func DestinationDetailsToResponses(details []entity.DestinationDetail) []model.DestinationResponse {
	responses := make([]model.DestinationResponse, 0, len(details))
	for i := range details {
		responses = append(responses, *DestinationDetailToResponse(&details[i]))
	}
	return responses
}

func CategoryToResponse(category *entity.Category) *model.CategoryResponse {
	return &model.CategoryResponse{
		CategoryID: category.CategoryID,
		Name:       category.Name,
		Percentage: category.Percentage,
		CreatedAt:  category.CreatedAt,
		UpdatedAt:  category.UpdatedAt,
	}
}

func CategoriesToResponses(categories []entity.Category) []model.CategoryResponse {
	responses := make([]model.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *CategoryToResponse(&categories[i]))
	}
	return responses
}

func OriginDetailToResponse(detail *entity.OriginDetail) *model.OriginResponse {
	return &model.OriginResponse{
		OriginID: detail.OriginID,
		Name:     detail.Name,
		Direction: &model.DirectionResponse{
			Zip:            detail.Zip,
			City:           detail.City,
			State:          detail.State,
			Municipality:   detail.Municipality,
			Settlement:     detail.Settlement,
			SettlementType: detail.SettlementType,
			Country:        detail.Country,
		},
	}
}

func OriginDetailsToResponses(details []entity.OriginDetail) []model.OriginResponse {
	responses := make([]model.OriginResponse, 0, len(details))
	for i := range details {
		responses = append(responses, *OriginDetailToResponse(&details[i]))
	}
	return responses
}
