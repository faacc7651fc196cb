package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	mocks "wallet-ledger/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOutboxWorker_DrainsFullBatches(t *testing.T) {
	var calls atomic.Int32
	count := func(mock.Arguments) { calls.Add(1) }

	relay := mocks.NewOutboxRelay(t)
	relay.On("RelayBatch", mock.Anything).Run(count).Return(5, nil).Twice()
	relay.On("RelayBatch", mock.Anything).Run(count).Return(2, nil)

	w := NewOutboxWorker(relay, 10*time.Millisecond, 5, zerolog.Nop())
	w.Start(context.Background())

	assert.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)
	w.Stop()
}

func TestOutboxWorker_StopsOnContextCancel(t *testing.T) {
	relay := mocks.NewOutboxRelay(t)
	relay.On("RelayBatch", mock.Anything).Return(0, errors.New("db down")).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	w := NewOutboxWorker(relay, 5*time.Millisecond, 5, zerolog.Nop())
	w.Start(ctx)

	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancel")
	}
}

func TestNewOutboxWorker_DefaultsNonPositiveSettings(t *testing.T) {
	relay := mocks.NewOutboxRelay(t)
	relay.On("RelayBatch", mock.Anything).Return(0, nil).Once()

	w := NewOutboxWorker(relay, 0, 0, zerolog.Nop())

	assert.Equal(t, 2*time.Second, w.interval)
	assert.Equal(t, 100, w.batchSize)

	// an empty outbox ends the drain after one batch
	w.drain(context.Background())
}
