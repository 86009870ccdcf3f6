//go:build e2e

package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"

	"github.com/harborview/rateplan-service/internal/app/rate/queries/list_week_rates"
	"github.com/harborview/rateplan-service/internal/app/rate/repo"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/create_rate"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/create_rate_range"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/delete_rate"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/update_rate"
	"github.com/harborview/rateplan-service/internal/pkg/clock"
	"github.com/harborview/rateplan-service/internal/pkg/committer"
	"github.com/harborview/rateplan-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	CreateRate      *create_rate.Interactor
	CreateRateRange *create_rate_range.Interactor
	UpdateRate      *update_rate.Interactor
	DeleteRate      *delete_rate.Interactor

	// Queries
	ListWeekRates *list_week_rates.Query

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

func buildServices(client *spanner.Client, clk clock.Clock) *Services {
	comm := committer.NewCommitter(client)

	rateRepo := repo.NewRateRepo(client)
	outboxRepo := repo.NewOutboxRepo(client)
	readModel := repo.NewRateReadModel(client)

	return &Services{
		CreateRate:      create_rate.NewInteractor(rateRepo, outboxRepo, comm, clk),
		CreateRateRange: create_rate_range.NewInteractor(rateRepo, outboxRepo, comm, clk),
		UpdateRate:      update_rate.NewInteractor(rateRepo, outboxRepo, comm, clk),
		DeleteRate:      delete_rate.NewInteractor(rateRepo, outboxRepo, comm, clk),
		ListWeekRates:   list_week_rates.NewQuery(readModel),
		Clock:           clk,
		Client:          client,
	}
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)
	return buildServices(client, clock.NewRealClock()), cleanup
}

// setupTestWithMockClock initializes services with a controllable mock clock.
func setupTestWithMockClock(t *testing.T) (*Services, *clock.MockClock, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)
	mockClock := testutil.NewMockClock()
	return buildServices(client, mockClock), mockClock, cleanup
}

// ctx returns a context for testing.
func ctx() context.Context {
	return context.Background()
}
