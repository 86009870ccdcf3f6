//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview/rateplan-service/internal/app/rate/domain"
	"github.com/harborview/rateplan-service/internal/app/rate/repo"
	"github.com/harborview/rateplan-service/internal/models/m_outbox"
	"github.com/harborview/rateplan-service/tests/testutil"
)

func TestOutboxRepository_InsertMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	repository := repo.NewOutboxRepo(client)

	event := &domain.RateCreatedEvent{
		RateID:           "rate-1",
		RoomTypeID:       "rt-1",
		BookingChannelID: "ch-1",
		Date:             "2025-06-03",
		CreatedAt:        time.Now().UTC(),
	}

	outboxEvent := repository.EnrichEvent(event, `{"rate_id":"rate-1"}`)
	require.NotEmpty(t, outboxEvent.EventID)
	assert.Equal(t, "rate.created", outboxEvent.EventType)
	assert.Equal(t, "rate-1", outboxEvent.AggregateID)
	assert.Equal(t, m_outbox.StatusPending, outboxEvent.Status)

	mutation := repository.InsertMut(outboxEvent)
	require.NotNil(t, mutation)

	ctx := context.Background()
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err)

	testutil.AssertOutboxEvent(t, client, "rate.created")
	testutil.AssertOutboxEventCount(t, client, 1)
}

func TestOutboxRepository_EnrichEvent_UniqueIDs(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	repository := repo.NewOutboxRepo(client)

	event := &domain.RateDeletedEvent{RateID: "rate-1"}

	first := repository.EnrichEvent(event, "")
	second := repository.EnrichEvent(event, "")

	assert.NotEqual(t, first.EventID, second.EventID)
}
