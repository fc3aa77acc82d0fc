// Package events publica as movimentações de estoque para consumidores externos.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"beltstock/internal/domain"
)

// Publisher é o contrato usado pelos serviços para anunciar movimentações.
type Publisher interface {
	PublishMovements(ctx context.Context, events []domain.StockMovementEvent) error
	Close() error
}

// messageWriter é a parte do kafka.Writer usada aqui.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher escreve um evento por tamanho movimentado no tópico configurado.
// A chave da mensagem é o ID da linha de estoque, mantendo a ordem por linha na partição.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher cria o produtor para os brokers e tópico informados.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer}
}

// newWithWriter permite trocar o writer em testes.
func newWithWriter(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// PublishMovements serializa os eventos em JSON e os envia num único lote.
func (p *KafkaPublisher) PublishMovements(ctx context.Context, events []domain.StockMovementEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(ev.StockID),
			Value: data,
			Time:  ev.Date,
		})
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

// Close descarrega e fecha o writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Nop descarta os eventos. Usado quando KAFKA_BROKERS não está configurado.
type Nop struct{}

func (Nop) PublishMovements(context.Context, []domain.StockMovementEvent) error { return nil }
func (Nop) Close() error                                                       { return nil }
