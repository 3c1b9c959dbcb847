// Package main выполняет запрос экономии пользователя через relay-сервис
// и выводит результат в терминал. Терминальное воплощение страницы расчёта
// экономии: валидация ввода, один удалённый вызов, машина состояний
// отображения.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"

	"github.com/avc/savings-relay/internal/config"
	"github.com/avc/savings-relay/internal/domain"
	"github.com/avc/savings-relay/internal/faultreport"
	"github.com/avc/savings-relay/internal/relay"
	"github.com/avc/savings-relay/internal/savings"
	"github.com/avc/savings-relay/internal/ui"
)

func main() {
	cfg, err := config.ParseQuery()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	userAgent := fmt.Sprintf("savingsquery (%s; %s)", runtime.GOOS, runtime.GOARCH)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Отчёты о сбоях уходят на эндпоинт логирования relay-сервиса
	reporter := faultreport.NewReporter(cfg.RelayURL, faultreport.ReporterConfig{
		Workers:   cfg.ReportWorkers,
		QueueSize: cfg.ReportQueueSize,
	}, logger)
	reporter.Start(ctx)

	// Необработанная паника уходит отчётом перед завершением
	defer func() {
		if rec := recover(); rec != nil {
			reporter.Report(faultreport.NewErrorReport(
				fmt.Sprint(rec),
				faultreport.Location{Source: "cmd/savingsquery"},
				string(debug.Stack()),
				userAgent,
			))
			reporter.Stop()
			log.Fatalf("panic: %v", rec)
		}
	}()

	client := savings.NewClient(strings.TrimRight(cfg.RelayURL, "/") + relay.ProxyPrefix)
	normalizer := savings.NewNormalizer(logger)
	orchestrator := savings.NewOrchestrator(client, normalizer, logger)

	machine := ui.NewStateMachine(orchestrator, &terminalPresenter{out: os.Stdout}, logger)

	state := machine.Submit(ctx, cfg.UserInput)

	reporter.Stop()

	if state == domain.UIStateError {
		os.Exit(1)
	}
}

// terminalPresenter реализует domain.Presenter поверх терминального вывода
type terminalPresenter struct {
	out io.Writer
}

func (p *terminalPresenter) ShowLoading() {
	fmt.Fprintln(p.out, "Calculating savings...")
}

func (p *terminalPresenter) ShowResult(result *domain.SavingsResult) {
	fmt.Fprintf(p.out, "Savings: %s\n", ui.FormatAmount(result.TotalSavings, result.Currency))
	fmt.Fprintf(p.out, "Total purchases: %d\n", result.TotalPurchases)
	fmt.Fprintf(p.out, "Card purchases:  %d\n", result.WbCardPurchases)
	if result.Message != "" {
		fmt.Fprintf(p.out, "Server message: %s\n", result.Message)
	}
}

func (p *terminalPresenter) ShowError(message string) {
	fmt.Fprintln(p.out, message)
}

func (p *terminalPresenter) Reset() {
	// В терминале скрывать нечего: предыдущий вывод остаётся в истории
}
