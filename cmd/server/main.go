package main

import (
	"context"
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"

	"github.com/meucofre/meucofre/infra/gemini"
	infrarepo "github.com/meucofre/meucofre/infra/repository"
	"github.com/meucofre/meucofre/pkg/config"
	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/repository"
	"github.com/meucofre/meucofre/pkg/service"
	"github.com/meucofre/meucofre/pkg/validation"
	"github.com/meucofre/meucofre/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	store, err := infrarepo.Open(cfg.DB.Url)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var classifier service.TransactionClassifier
	if cfg.Gemini.ApiKey != "" {
		classifier, err = gemini.New(context.Background(), cfg.Gemini.ApiKey, cfg.Gemini.Model, logger)
		if err != nil {
			return fmt.Errorf("failed to init classifier: %w", err)
		}
	} else {
		logger.Warn("no Gemini API key configured, transaction classification disabled")
	}

	val := validation.New()
	svcs := webapi.Services{
		Accounts: service.NewAccountService(
			infrarepo.NewCollection[domain.Account](store, repository.ColAccounts), val, logger),
		Transactions: service.NewTransactionService(
			infrarepo.NewCollection[domain.Transaction](store, repository.ColTransactions), classifier, val, logger),
		Installments: service.NewInstallmentService(
			infrarepo.NewCollection[domain.InstallmentGroup](store, repository.ColInstallmentGroups), val, logger),
		Investments: service.NewInvestmentService(service.InvestmentCollections{
			Accounts:     infrarepo.NewCollection[domain.InvestmentAccount](store, repository.ColInvestmentAccounts),
			Transactions: infrarepo.NewCollection[domain.InvestmentTransaction](store, repository.ColInvestmentTransactions),
			Positions:    infrarepo.NewCollection[domain.InvestmentPosition](store, repository.ColInvestmentPositions),
			Earnings:     infrarepo.NewCollection[domain.InvestmentEarning](store, repository.ColInvestmentEarnings),
		}, val, logger),
		Points: service.NewPointsService(service.PointsCollections{
			Programs:   infrarepo.NewCollection[domain.PointsProgram](store, repository.ColPointsPrograms),
			Balances:   infrarepo.NewCollection[domain.PointsBalance](store, repository.ColPointsBalances),
			Operations: infrarepo.NewCollection[domain.PointsOperation](store, repository.ColPointsOperations),
			Offers:     infrarepo.NewCollection[domain.PointsOffer](store, repository.ColPointsOffers),
		}, val, logger),
		Ai: service.NewAiService(service.AiCollections{
			Sessions: infrarepo.NewCollection[domain.AiSession](store, repository.ColAiSessions),
			Messages: infrarepo.NewCollection[domain.AiMessage](store, repository.ColAiMessages),
		}, val, logger),
	}

	app := webapi.New(cfg, svcs, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return app.Listen(addr)
}
