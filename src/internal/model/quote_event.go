package model

type Event interface {
	GetId() string
}

type QuoteEvent struct {
	ID     string `json:"id,omitempty"`
	Action string `json:"action,omitempty"`
	Folio  string `json:"folio,omitempty"`
	Status string `json:"status,omitempty"`
	Price  string `json:"price,omitempty"`
}

func (e *QuoteEvent) GetId() string {
	return e.ID
}
