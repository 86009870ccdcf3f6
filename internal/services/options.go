package services

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/spanner"

	"github.com/harborview/rateplan-service/internal/app/rate/queries/list_events"
	"github.com/harborview/rateplan-service/internal/app/rate/queries/list_week_rates"
	"github.com/harborview/rateplan-service/internal/app/rate/repo"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/create_rate"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/create_rate_range"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/delete_rate"
	"github.com/harborview/rateplan-service/internal/app/rate/usecases/update_rate"
	"github.com/harborview/rateplan-service/internal/app/rate/view"
	"github.com/harborview/rateplan-service/internal/pkg/clock"
	"github.com/harborview/rateplan-service/internal/pkg/committer"
	httptransport "github.com/harborview/rateplan-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	RatesHandler  *httptransport.Handler
	EventsHandler *httptransport.EventsHandler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string, logger *slog.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories and read models
	rateRepo := repo.NewRateRepo(spannerClient)
	outboxRepo := repo.NewOutboxRepo(spannerClient)
	rateReadModel := repo.NewRateReadModel(spannerClient)
	roomTypeDir := repo.NewRoomTypeDirectory(spannerClient)
	channelDir := repo.NewBookingChannelDirectory(spannerClient)

	// 4. Create command use cases (write operations)
	createRangeUseCase := create_rate_range.NewInteractor(rateRepo, outboxRepo, comm, clk)
	createRateUseCase := create_rate.NewInteractor(rateRepo, outboxRepo, comm, clk)
	updateRateUseCase := update_rate.NewInteractor(rateRepo, outboxRepo, comm, clk)
	deleteRateUseCase := delete_rate.NewInteractor(rateRepo, outboxRepo, comm, clk)

	// 5. Create query use cases (read operations)
	listWeekRatesQuery := list_week_rates.NewQuery(rateReadModel)
	listEventsQuery := list_events.NewQuery(repo.NewEventsReadModel(spannerClient))

	// 6. Create the page session and HTTP handler
	session := view.NewSession()
	ratesHandler := httptransport.NewHandler(
		createRangeUseCase,
		createRateUseCase,
		updateRateUseCase,
		deleteRateUseCase,
		listWeekRatesQuery,
		roomTypeDir,
		channelDir,
		session,
		clk,
		logger,
	)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		RatesHandler:  ratesHandler,
		EventsHandler: httptransport.NewEventsHandler(listEventsQuery),
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
