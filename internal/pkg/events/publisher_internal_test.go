package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beltstock/internal/domain"
)

type recordingWriter struct {
	msgs   []kafka.Message
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishMovements_OneMessagePerSizeKeyedByStock(t *testing.T) {
	w := &recordingWriter{}
	p := newWithWriter(w)
	date := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	err := p.PublishMovements(context.Background(), []domain.StockMovementEvent{
		{StockID: "s1", Category: "PK", Subcategory: "PK", Size: "40", StockIn: 5, Quantity: 10, Date: date},
		{StockID: "s1", Category: "PK", Subcategory: "PK", Size: "42", StockIn: 5, Quantity: 10, Date: date},
	})

	require.NoError(t, err)
	require.Len(t, w.msgs, 2)
	assert.Equal(t, "s1", string(w.msgs[0].Key))
	assert.Equal(t, date, w.msgs[0].Time)

	var decoded domain.StockMovementEvent
	require.NoError(t, json.Unmarshal(w.msgs[1].Value, &decoded))
	assert.Equal(t, "42", decoded.Size)
	assert.Equal(t, 5, decoded.StockIn)
}

func TestPublishMovements_EmptyIsNoop(t *testing.T) {
	w := &recordingWriter{}

	require.NoError(t, newWithWriter(w).PublishMovements(context.Background(), nil))
	assert.Empty(t, w.msgs)
}

func TestClose(t *testing.T) {
	w := &recordingWriter{}

	require.NoError(t, newWithWriter(w).Close())
	assert.True(t, w.closed)
}
