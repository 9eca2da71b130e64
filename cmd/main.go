package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/YelzhanWeb/kiosk/internal/adapter/gemini"
	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/adapter/memory"
	"github.com/YelzhanWeb/kiosk/internal/adapter/postgres"
	"github.com/YelzhanWeb/kiosk/internal/adapter/printer"
	"github.com/YelzhanWeb/kiosk/internal/adapter/rabbitmq"
	"github.com/YelzhanWeb/kiosk/internal/app/attendance"
	"github.com/YelzhanWeb/kiosk/internal/app/catalog"
	"github.com/YelzhanWeb/kiosk/internal/app/order"
	"github.com/YelzhanWeb/kiosk/internal/app/reporting"
	"github.com/YelzhanWeb/kiosk/internal/app/settings"
	"github.com/YelzhanWeb/kiosk/internal/config"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"

	amqpAdapter "github.com/YelzhanWeb/kiosk/internal/adapter/amqp"
	httpAdapter "github.com/YelzhanWeb/kiosk/internal/adapter/http"
)

// Log lines go to stderr, display output to stdout.
var (
	logOutput     io.Writer = os.Stderr
	displayOutput io.Writer = os.Stdout
)

func main() {
	// Parse command-line flags
	mode := flag.String("mode", "", "Service mode: kiosk-service, kitchen-display, notification-subscriber, export-report")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	prefetch := flag.Int("prefetch", 0, "RabbitMQ prefetch count (overrides config)")
	kioskURL := flag.String("kiosk-url", "", "Kiosk service base URL (for export-report)")
	period := flag.String("period", "daily", "Report period: daily, weekly, yearly (for export-report)")
	outDir := flag.String("out", ".", "Output directory (for export-report)")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *prefetch != 0 {
		cfg.RabbitMQ.Prefetch = *prefetch
	}

	lgr := logger.NewWithWriter(*mode, logOutput, cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Route to appropriate service
	switch *mode {
	case "kiosk-service":
		runKioskService(ctx, cfg, lgr)

	case "kitchen-display":
		runKitchenDisplay(ctx, cfg, lgr)

	case "notification-subscriber":
		runNotificationSubscriber(ctx, cfg, lgr)

	case "export-report":
		url := *kioskURL
		if url == "" {
			url = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
		}
		if err := runExportReport(ctx, cfg, lgr, url, *period, *outDir); err != nil {
			lgr.Error("export_failed", "Report export failed", "", nil, err)
			os.Exit(1)
		}

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runKioskService(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	// Initialize repositories
	items, err := config.LoadMenu(cfg.MenuFile)
	if err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}
	menuRepo, err := memory.NewMenuRepository(items)
	if err != nil {
		log.Fatalf("Invalid menu: %v", err)
	}
	cartRepo := memory.NewCartRepository()
	orderRepo := memory.NewOrderRepository()
	staffRepo := memory.NewStaffRepository(cfg.Staff)
	attendanceRepo := memory.NewAttendanceRepository()

	// Side channels
	publisher, closeBus := connectPublisher(cfg, lgr)
	defer closeBus()

	archive, closeDB := connectArchive(ctx, cfg, lgr)
	defer closeDB()

	printerOut, closePrinter, err := openPrinter(cfg, lgr)
	if err != nil {
		log.Fatalf("Failed to open printer: %v", err)
	}
	defer closePrinter()

	layout := printer.Layout{
		ShopName: cfg.Shop.Name,
		Tagline:  cfg.Shop.Tagline,
		Currency: cfg.Shop.Currency,
		Width:    cfg.Shop.ReceiptWidth,
	}
	receipts := printer.New(printerOut, layout, lgr)

	recommender, err := gemini.New(ctx, cfg.Recommendation.APIKey, cfg.Recommendation.Model, cfg.Recommendation.ShopName)
	if err != nil {
		log.Fatalf("Failed to create recommender: %v", err)
	}
	if cfg.Recommendation.APIKey == "" {
		lgr.Info("recommender_disabled", "GEMINI_API_KEY not set, recommendations use fallbacks", "startup", nil)
	}

	// Initialize services
	settingsService := settings.NewService(cfg.Admin.PIN, cfg.Admin.AutoPrint, lgr)
	orderService := order.NewService(menuRepo, cartRepo, orderRepo, publisher, archive, receipts, settingsService, lgr)
	catalogService := catalog.NewService(menuRepo, recommender, lgr)
	attendanceService := attendance.NewService(staffRepo, attendanceRepo, archive, lgr)
	reportingService := reporting.NewService(orderRepo, cfg.Shop.ReportTitle,
		reporting.Targets{Daily: cfg.Targets.Daily, Weekly: cfg.Targets.Weekly, Yearly: cfg.Targets.Yearly},
		reporting.Thresholds{Excellent: cfg.Targets.ExcellentPercent, Good: cfg.Targets.GoodPercent},
		lgr,
	)

	// Setup HTTP server
	handler := httpAdapter.NewRouter(httpAdapter.Services{
		Orders:     orderService,
		Catalog:    catalogService,
		Attendance: attendanceService,
		Settings:   settingsService,
		Reports:    reportingService,
		Printer:    receipts,
		Receipt:    layout,
	}, lgr)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Kiosk Service started on port %d", cfg.Server.Port), "startup", map[string]interface{}{
		"port":       cfg.Server.Port,
		"menu_items": len(items),
		"staff":      len(cfg.Staff),
		"bus":        cfg.RabbitMQ.Enabled,
		"archive":    cfg.Database.Enabled,
	})

	// Graceful shutdown
	go func() {
		<-ctx.Done()

		lgr.Info("shutdown_initiated", "Shutting down Kiosk Service", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}

func connectPublisher(cfg *config.Config, lgr logger.Logger) (interfaces.MessagePublisher, func()) {
	if !cfg.RabbitMQ.Enabled {
		return rabbitmq.NopPublisher{}, func() {}
	}

	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})
	return rabbitmq.NewPublisher(mqConn), func() { mqConn.Close() }
}

func connectArchive(ctx context.Context, cfg *config.Config, lgr logger.Logger) (interfaces.SalesArchive, func()) {
	if !cfg.Database.Enabled {
		return postgres.NopArchive{}, func() {}
	}

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("Failed to prepare archive schema: %v", err)
	}

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})
	return postgres.NewSalesArchive(db), db.Close
}

// openPrinter falls back to the display stream when no device is configured.
func openPrinter(cfg *config.Config, lgr logger.Logger) (io.Writer, func(), error) {
	if cfg.Shop.PrinterDevice == "" {
		return displayOutput, func() {}, nil
	}

	f, err := os.OpenFile(cfg.Shop.PrinterDevice, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.Shop.PrinterDevice, err)
	}

	lgr.Info("printer_opened", "Receipt printer ready", "startup", map[string]interface{}{
		"device": cfg.Shop.PrinterDevice,
	})
	return f, func() { f.Close() }, nil
}

func runKitchenDisplay(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	consumer := rabbitmq.NewConsumer(mqConn, cfg.RabbitMQ.Prefetch, lgr)
	orderHandler := amqpAdapter.NewOrderHandler(displayOutput, printer.Layout{
		ShopName: cfg.Shop.Name,
		Currency: cfg.Shop.Currency,
		Width:    cfg.Shop.ReceiptWidth,
	}, lgr)

	lgr.Info("service_started", "Kitchen Display started", "startup", map[string]interface{}{
		"prefetch": cfg.RabbitMQ.Prefetch,
	})

	if err := consumer.ConsumeOrders(ctx, orderHandler.HandleOrder); err != nil && ctx.Err() == nil {
		lgr.Error("consumer_error", "Error consuming orders", "runtime", nil, err)
	}

	lgr.Info("graceful_shutdown", "Shutting down Kitchen Display", "shutdown", nil)
}

func runNotificationSubscriber(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	consumer := rabbitmq.NewConsumer(mqConn, 1, lgr)
	notificationHandler := amqpAdapter.NewNotificationHandler(displayOutput, lgr)

	lgr.Info("service_started", "Notification Subscriber started", "startup", nil)

	if err := consumer.ConsumeNotifications(ctx, notificationHandler.HandleNotification); err != nil && ctx.Err() == nil {
		lgr.Error("consumer_error", "Error consuming notifications", "runtime", nil, err)
	}

	lgr.Info("shutdown_initiated", "Shutting down Notification Subscriber", "shutdown", nil)
}

func runExportReport(ctx context.Context, cfg *config.Config, lgr logger.Logger, kioskURL, periodName, outDir string) error {
	period, err := domain.ParsePeriod(periodName)
	if err != nil {
		return err
	}

	report, err := httpAdapter.NewReportClient(kioskURL, cfg.Admin.PIN).Fetch(ctx, period)
	if err != nil {
		return err
	}

	name := report.Filename
	if name == "" {
		name = reporting.Filename(period, time.Now())
	}
	path := filepath.Join(outDir, filepath.Base(name))
	if err := os.WriteFile(path, report.Body, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	lgr.Info("report_saved", fmt.Sprintf("%s report saved to %s", period, path), "", map[string]interface{}{
		"bytes": len(report.Body),
	})
	return nil
}
