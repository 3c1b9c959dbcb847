package savings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc/savings-relay/internal/domain"
)

// fakeClient реализует domain.SavingsClient для тестов
type fakeClient struct {
	response *domain.RawSavingsResponse
	err      error
	calls    int
	lastID   domain.UserID
}

func (c *fakeClient) GetSavings(ctx context.Context, userID domain.UserID) (*domain.RawSavingsResponse, error) {
	c.calls++
	c.lastID = userID
	return c.response, c.err
}

func newTestOrchestrator(client *fakeClient) *Orchestrator {
	logger := zap.NewNop()
	return NewOrchestrator(client, NewNormalizer(logger), logger)
}

func TestOrchestrator_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		client := &fakeClient{
			response: &domain.RawSavingsResponse{
				Status:          int32ptr(0),
				TotalSavings:    float64ptr(1500),
				WbCardPurchases: int32ptr(5),
			},
		}
		orch := newTestOrchestrator(client)

		outcome := orch.Query(ctx, "42")

		require.NoError(t, outcome.Err)
		require.NotNil(t, outcome.Result)
		assert.Equal(t, domain.StatusNameOK, outcome.Result.StatusName)
		assert.Equal(t, 1500.0, outcome.Result.TotalSavings)
		assert.Equal(t, domain.UserID(42), client.lastID)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("invalid identifier makes no remote call", func(t *testing.T) {
		client := &fakeClient{}
		orch := newTestOrchestrator(client)

		outcome := orch.Query(ctx, "0")

		require.Error(t, outcome.Err)
		assert.ErrorIs(t, outcome.Err, domain.ErrInvalidIdentifier)
		assert.Nil(t, outcome.Result)
		assert.Zero(t, client.calls)
	})

	t.Run("transport error passes through verbatim", func(t *testing.T) {
		client := &fakeClient{
			err: domain.NewTransportError(domain.TransportUnavailable, "connection refused"),
		}
		orch := newTestOrchestrator(client)

		outcome := orch.Query(ctx, "42")

		require.Error(t, outcome.Err)
		var transportErr *domain.TransportError
		require.ErrorAs(t, outcome.Err, &transportErr)
		assert.Equal(t, domain.TransportUnavailable, transportErr.Code)
		assert.Equal(t, "connection refused", transportErr.Message)
	})

	t.Run("untyped error is wrapped into transport error", func(t *testing.T) {
		client := &fakeClient{err: errors.New("boom")}
		orch := newTestOrchestrator(client)

		outcome := orch.Query(ctx, "42")

		var transportErr *domain.TransportError
		require.ErrorAs(t, outcome.Err, &transportErr)
		assert.Equal(t, domain.TransportUnavailable, transportErr.Code)
		assert.Equal(t, "boom", transportErr.Message)
	})

	t.Run("single attempt per invocation", func(t *testing.T) {
		client := &fakeClient{
			err: domain.NewTransportError(domain.TransportInternal, "server exploded"),
		}
		orch := newTestOrchestrator(client)

		orch.Query(ctx, "42")

		assert.Equal(t, 1, client.calls)
	})
}
