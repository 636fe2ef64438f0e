package messaging

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"quotation-service/src/internal/model"
	"quotation-service/src/pkg/log"
)

// Producer publishes domain events keyed by entity id. A nil SyncProducer
// turns every send into a no-op so the API keeps working without a broker.
type Producer[T model.Event] struct {
	Producer sarama.SyncProducer
	Topic    string
	Log      log.Log
}

func (p *Producer[T]) GetTopic() string {
	return p.Topic
}

func (p *Producer[T]) Send(event T) error {
	if p.Producer == nil {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("gateway/messaging/producer", "failed to marshal event", "Send", err.Error())
		return err
	}

	message := &sarama.ProducerMessage{
		Topic: p.Topic,
		Key:   sarama.StringEncoder(event.GetId()),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := p.Producer.SendMessage(message); err != nil {
		p.Log.Error("gateway/messaging/producer", "error send message", "Send", err.Error())
		return err
	}
	return nil
}
