// Package container provides dependency injection for the creditlens CLI.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"fjacquet/creditlens/internal/analysisparser"
	"fjacquet/creditlens/internal/apiclient"
	"fjacquet/creditlens/internal/auth"
	"fjacquet/creditlens/internal/batch"
	"fjacquet/creditlens/internal/config"
	"fjacquet/creditlens/internal/funding"
	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/report"
	"fjacquet/creditlens/internal/session"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger logging.Logger
	config *config.Config

	parser    *analysisparser.Parser
	generator *report.Generator
	analyzer  *batch.Analyzer

	client  *apiclient.Client
	store   *session.Store
	auth    *auth.Service
	funding *funding.Service
}

// NewContainer creates and wires all application dependencies, logging
// through a logrus adapter configured from cfg. Log lines go to logOutput,
// or to stderr when it is nil.
func NewContainer(cfg *config.Config, logOutput io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	if adapter, ok := logger.(*logging.LogrusAdapter); ok && logOutput != nil {
		adapter.SetOutput(logOutput)
	}
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if cfg.CSV.Delimiter == "" {
		return nil, fmt.Errorf("csv delimiter cannot be empty")
	}

	p := analysisparser.New(logger)
	generator := report.NewGenerator(report.Options{
		IncludeRaw: cfg.Output.IncludeRaw,
		Delimiter:  cfg.DelimiterRune(),
	}, logger)
	analyzer := batch.NewAnalyzer(p, cfg.Batch.Workers, logger)

	client := apiclient.New(apiclient.Options{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.Timeout(),
		RequestsPerMinute: cfg.API.RequestsPerMinute,
	}, logger)
	store := session.NewStore(cfg.Session.TokenFile, logger)
	authService := auth.NewService(client, store, logger)
	fundingService := funding.NewService(client, authService, logger)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldEndpoint, client.BaseURL()),
		logging.F(logging.FieldFile, store.Path()))

	return &Container{
		logger:    logger,
		config:    cfg,
		parser:    p,
		generator: generator,
		analyzer:  analyzer,
		client:    client,
		store:     store,
		auth:      authService,
		funding:   fundingService,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetParser returns the credit analysis parser.
func (c *Container) GetParser() *analysisparser.Parser {
	return c.parser
}

// GetReportGenerator returns the summary renderer.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// GetBatchAnalyzer returns the directory analyzer.
func (c *Container) GetBatchAnalyzer() *batch.Analyzer {
	return c.analyzer
}

// GetAPIClient returns the remote API client.
func (c *Container) GetAPIClient() *apiclient.Client {
	return c.client
}

// GetSessionStore returns the token store.
func (c *Container) GetSessionStore() *session.Store {
	return c.store
}

// GetAuthService returns the login/logout/register service.
func (c *Container) GetAuthService() *auth.Service {
	return c.auth
}

// GetFundingService returns the funding application service.
func (c *Container) GetFundingService() *funding.Service {
	return c.funding
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
