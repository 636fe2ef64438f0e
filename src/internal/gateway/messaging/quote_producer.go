package messaging

import (
	"github.com/IBM/sarama"

	"quotation-service/src/internal/model"
	"quotation-service/src/pkg/log"
)

// QuoteEventPublisher notifies downstream consumers about quote lifecycle
// changes. Sends are fire-and-forget from the caller's point of view.
type QuoteEventPublisher interface {
	QuoteCreated(event *model.QuoteEvent) error
	QuoteApproved(event *model.QuoteEvent) error
	QuoteCancelled(event *model.QuoteEvent) error
}

type QuoteProducer struct {
	CreatedProducer   Producer[*model.QuoteEvent]
	ApprovedProducer  Producer[*model.QuoteEvent]
	CancelledProducer Producer[*model.QuoteEvent]
}

func NewQuoteProducer(producer sarama.SyncProducer, logger log.Log) *QuoteProducer {
	return &QuoteProducer{
		CreatedProducer: Producer[*model.QuoteEvent]{
			Producer: producer,
			Topic:    "quote-created",
			Log:      logger,
		},
		ApprovedProducer: Producer[*model.QuoteEvent]{
			Producer: producer,
			Topic:    "quote-approved",
			Log:      logger,
		},
		CancelledProducer: Producer[*model.QuoteEvent]{
			Producer: producer,
			Topic:    "quote-cancelled",
			Log:      logger,
		},
	}
}

func (p *QuoteProducer) QuoteCreated(event *model.QuoteEvent) error {
	return p.CreatedProducer.Send(event)
}

func (p *QuoteProducer) QuoteApproved(event *model.QuoteEvent) error {
	return p.ApprovedProducer.Send(event)
}

func (p *QuoteProducer) QuoteCancelled(event *model.QuoteEvent) error {
	return p.CancelledProducer.Send(event)
}
