package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/levelup-marketers/client-dashboard-service/internal/config"
	"github.com/levelup-marketers/client-dashboard-service/internal/dashboard"
	"github.com/levelup-marketers/client-dashboard-service/internal/database"
	"github.com/levelup-marketers/client-dashboard-service/internal/handler"
	"github.com/levelup-marketers/client-dashboard-service/internal/kafka"
	"github.com/levelup-marketers/client-dashboard-service/internal/router"
	"github.com/levelup-marketers/client-dashboard-service/internal/searchindex"
	"github.com/levelup-marketers/client-dashboard-service/internal/service"
)

// API is the HTTP application (serve mode).
type API struct {
	cfg      *config.Config
	httpSrv  *http.Server
	producer *kafka.Producer
}

// NewAPI wires config, database, services, producer and router.
func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := database.MigrateUp(cfg.DatabaseURL()); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	clientSvc := service.NewClientService(db)
	projectSvc := service.NewProjectService(db)
	ticketSvc := service.NewTicketService(db)
	extrasSvc := service.NewExtrasService(db)
	dashboardSvc := dashboard.NewService(clientSvc, projectSvc, ticketSvc, extrasSvc)

	searchClient := searchindex.NewClient(cfg.SearchServiceURL)
	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicRecords)

	mux := router.New(router.Handlers{
		Client:    handler.NewClientHandler(clientSvc, producer),
		Project:   handler.NewProjectHandler(projectSvc, producer),
		Ticket:    handler.NewTicketHandler(ticketSvc, searchClient, producer),
		Extras:    handler.NewExtrasHandler(extrasSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
	})

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{
		cfg:      cfg,
		httpSrv:  httpSrv,
		producer: producer,
	}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	log.Printf("HTTP server listening on %s", a.httpSrv.Addr)
	log.Printf("  Swagger UI:    %s/swagger", base)
	log.Printf("  Swagger spec:  %s/swagger/openapi.json", base)
	log.Printf("  Health:        %s/health", base)
	log.Printf("  Ready:         %s/ready", base)
	log.Printf("  API v1:        %s/api/v1/", base)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := a.producer.Close(); err != nil {
		log.Printf("kafka: close: %v", err)
	}
	return nil
}
