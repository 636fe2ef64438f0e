package converter

import (
	"strconv"

	"quotation-service/src/internal/entity"
	"quotation-service/src/internal/model"
)

// QuoteDetailToResponse rebuilds the nested resource shape out of the flat
// joined row. Destination blocks are omitted when the trip's destination was
// deleted.
func QuoteDetailToResponse(detail *entity.QuoteDetail) *model.QuoteResponse {
	response := &model.QuoteResponse{
		QuoteID:   detail.QuoteID,
		Folio:     detail.Folio,
		Price:     detail.Price,
		Status:    detail.Status,
		CreatedAt: detail.CreatedAt,
		UpdatedAt: detail.UpdatedAt,
		Category: &model.CategoryResponse{
			CategoryID: detail.CategoryID,
			Name:       detail.CategoryName,
			Percentage: detail.CategoryPercentage,
		},
		Person: &model.PersonSummaryResponse{
			PersonID: detail.PersonID,
			Name:     detail.PersonName,
			LastName: detail.PersonLastName,
			Phone:    detail.PersonPhone,
			Email:    detail.PersonEmail,
		},
	}

	trip := &model.TripResponse{
		TripID: detail.TripID,
		Date:   detail.TripDate,
	}
	if detail.OriginName != nil {
		trip.Origin = &model.OriginResponse{
			OriginID:  detail.OriginID,
			Name:      *detail.OriginName,
			Direction: directionFromPointers(detail.OriginZip, detail.OriginCity, detail.OriginState, detail.OriginMunicipality, detail.OriginSettlement, detail.OriginSettlementType, detail.OriginCountry),
		}
	}
	if detail.DestinationID != nil && detail.DestinationName != nil {
		destination := &model.DestinationResponse{
			DestinationID: *detail.DestinationID,
			Name:          *detail.DestinationName,
			Direction:     directionFromPointers(detail.DestinationZip, detail.DestinationCity, detail.DestinationState, detail.DestinationMunicipality, detail.DestinationSettlement, detail.DestinationSettlementType, detail.DestinationCountry),
		}
		if detail.DestinationDistance != nil {
			destination.Distance = *detail.DestinationDistance
		}
		if detail.DestinationPricePerKm != nil {
			destination.PricePerKm = *detail.DestinationPricePerKm
		}
		trip.Destination = destination
	}
	response.Trip = trip

	return response
}

func QuoteDetailsToResponses(details []entity.QuoteDetail) []model.QuoteResponse {
	responses := make([]model.QuoteResponse, 0, len(details))
	for i := range details {
		responses = append(responses, *QuoteDetailToResponse(&details[i]))
	}
	return responses
}

func QuoteToEvent(quote *entity.Quote, action string) *model.QuoteEvent {
	return &model.QuoteEvent{
		ID:     strconv.FormatInt(quote.QuoteID, 10),
		Action: action,
		Folio:  quote.Folio,
		Status: quote.Status,
		Price:  quote.Price.String(),
	}
}

func directionFromPointers(zip, city, state, municipality, settlement, settlementType, country *string) *model.DirectionResponse {
	if zip == nil {
		return nil
	}
	direction := &model.DirectionResponse{Zip: *zip}
	if city != nil {
		direction.City = *city
	}
	if state != nil {
		direction.State = *state
	}
	if municipality != nil {
		direction.Municipality = *municipality
	}
	if settlement != nil {
		direction.Settlement = *settlement
	}
	if settlementType != nil {
		direction.SettlementType = *settlementType
	}
	if country != nil {
		direction.Country = *country
	}
	return direction
}
