package cmd

import (
	"orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/jobs"
	"orderflow/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

type CompositionRoot struct {
	config      Config
	coordinator *application.OrderCoordinator
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

func NewCompositionRoot(config Config, logger zerolog.Logger) (CompositionRoot, error) {
	m := metrics.New()

	international, err := services.NewInternationalOrderFactory(config.DefaultCountry, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	coordinator, err := application.NewOrderCoordinator(
		memory.NewOrderRepository(),
		memory.NewPaymentGateway(logger),
		memory.NewInventoryLedger(memory.DefaultStock(), logger),
		memory.NewShippingGateway(logger),
		memory.NewNotificationSink(logger),
		application.Factories{
			Standard:      services.NewStandardOrderFactory(logger),
			Express:       services.NewExpressOrderFactory(logger),
			International: international,
		},
		m,
		logger,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:      config,
		coordinator: coordinator,
		metrics:     m,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(c.coordinator, c.metrics)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.coordinator, c.config.ReportSchedule, c.logger)
}
