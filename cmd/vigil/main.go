package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	camerasService "vigil/gen/cameras"
	healthService "vigil/gen/health"
	incidentsService "vigil/gen/incidents"
	systemService "vigil/gen/system"
	"vigil/internal/auth"
	"vigil/internal/camera"
	"vigil/internal/config"
	"vigil/internal/database"
	"vigil/internal/detection"
	"vigil/internal/incident"
	"vigil/internal/motion"
	"vigil/internal/notify"
	"vigil/internal/pipeline"
	"vigil/internal/services"
	"vigil/internal/snapshot"
	"vigil/internal/stream"
	"vigil/internal/ws"
)

func main() {
	// Define command line flags, add any other flag required to configure the
	// service.
	var (
		hostF     = flag.String("host", "localhost", "Server host (valid values: localhost, production)")
		domainF   = flag.String("domain", "", "Host domain name (overrides host domain specified in service design)")
		httpPortF = flag.String("http-port", "", "HTTP port (overrides host HTTP port specified in service design)")
		secureF   = flag.Bool("secure", false, "Use secure scheme (https or grpcs)")
		dbgF      = flag.Bool("debug", false, "Log request and response bodies")
		configF   = flag.String("config", "vigil.yaml", "Path to the YAML configuration file")
	)
	flag.Parse()

	// Setup logger. Replace logger with your own log package of choice.
	var (
		logger *log.Logger
	)
	{
		logger = log.New(os.Stderr, "[vigil] ", log.Ltime)
	}

	cfg, err := config.Load(*configF)
	if err != nil {
		logger.Fatalf("failed to load configuration: %s", err)
	}

	// Open the incident database.
	db, err := database.New(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open database: %s", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		logger.Fatalf("failed to migrate database: %s", err)
	}

	// Connect to the detector backend.
	detector, err := detection.NewGRPCDetector(detection.Config{
		Endpoint:       cfg.Detection.Endpoint,
		RequestTimeout: time.Duration(cfg.Detection.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		logger.Fatalf("failed to connect to detector at %s: %s", cfg.Detection.Endpoint, err)
	}
	defer detector.Close()

	// Assemble the capture pipeline.
	bus := pipeline.NewEventBus()
	gate := motion.NewGate()
	pm := pipeline.NewManager(detector, gate, cfg.PipelineConfig(), bus)
	defer pm.Close()

	// Live view: raw frames at capture fps, annotated frames after detection.
	streamHub := stream.NewHub()
	pm.SetFrameTap(streamHub.Publish)
	pm.Router().AddSink(stream.NewOverlay(streamHub))

	// Push events to dashboards.
	wsHub := ws.NewHub()
	wsBridge := ws.NewBridge(wsHub)
	wsBridge.Start(bus)
	defer wsBridge.Stop()

	// Snapshot storage is optional; incidents carry empty references
	// when no object store is configured.
	var snapshots *snapshot.Store
	if cfg.Minio.Endpoint != "" {
		snapshots, err = snapshot.NewStore(context.Background(), snapshot.Config{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		})
		if err != nil {
			logger.Fatalf("failed to connect to object store: %s", err)
		}
	}

	cameraManager := camera.NewManager(db, pm)
	cameraManager.Watch(bus)
	defer cameraManager.Close()

	// Incident engine with its notification channels.
	throttle := notify.NewAlertThrottle(0, 0)
	var snapStore incident.SnapshotStore
	if snapshots != nil {
		snapStore = snapshots
	}
	engine := incident.NewEngine(db, snapStore, throttle, cameraManager, bus)
	if cfg.Telegram.Enabled {
		engine.AddNotifier(notify.NewTelegramNotifier(notify.TelegramConfig{
			BotToken: cfg.Telegram.BotToken,
			ChatID:   cfg.Telegram.ChatID,
			Enabled:  true,
		}))
	}
	if cfg.Webhook.URL != "" {
		engine.AddNotifier(notify.NewWebhookNotifier(notify.WebhookConfig{
			URL:    cfg.Webhook.URL,
			Secret: cfg.Webhook.Secret,
		}))
	}
	pm.Router().SetIncidentHandler(engine)
	go engine.Run()
	defer engine.Stop()

	// Optional Kafka event export.
	if len(cfg.Kafka.Brokers) > 0 {
		exporter, err := notify.NewKafkaExporter(notify.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			logger.Fatalf("failed to connect to kafka: %s", err)
		}
		exporter.Start(bus)
		defer exporter.Close()
	}

	// Start the cameras declared in the registry.
	registry, err := config.LoadRegistry(cfg.Cameras.Registry)
	if err != nil {
		logger.Fatalf("failed to load camera registry: %s", err)
	}
	if err := cameraManager.LoadRegistry(registry); err != nil {
		logger.Fatalf("failed to start registry cameras: %s", err)
	}

	authenticator := auth.NewAuthenticator()

	// Initialize the services.
	var (
		healthSvc    healthService.Service
		camerasSvc   camerasService.Service
		incidentsSvc incidentsService.Service
		systemSvc    systemService.Service
	)
	{
		healthSvc = services.NewHealthService(detector)
		camerasSvc = services.NewCamerasService(cameraManager, pm)
		incidentsSvc = services.NewIncidentsService(engine)
		systemSvc = services.NewSystemService(pm, detector, throttle)
	}

	// Wrap the services in endpoints that can be invoked from other services
	// potentially running in different processes.
	var (
		healthEndpoints    *healthService.Endpoints
		camerasEndpoints   *camerasService.Endpoints
		incidentsEndpoints *incidentsService.Endpoints
		systemEndpoints    *systemService.Endpoints
	)
	{
		healthEndpoints = healthService.NewEndpoints(healthSvc)
		camerasEndpoints = camerasService.NewEndpoints(camerasSvc)
		incidentsEndpoints = incidentsService.NewEndpoints(incidentsSvc)
		systemEndpoints = systemService.NewEndpoints(systemSvc)
	}

	// Create channel used by both the signal handler and server goroutines
	// to notify the main goroutine when to stop the server.
	errc := make(chan error)

	// Setup interrupt handler. This optional step configures the process so
	// that SIGINT and SIGTERM signals cause the services to stop gracefully.
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errc <- fmt.Errorf("%s", <-c)
	}()

	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(context.Background())

	extras := &extraHandlers{
		wsHandler:     ws.NewHandler(wsHub),
		streamHub:     streamHub,
		snapshots:     snapshots,
		authenticator: authenticator,
	}

	// Start the servers and send errors (if any) to the error channel.
	switch *hostF {
	case "localhost", "0.0.0.0":
		{
			addr := fmt.Sprintf("http://%s%s", *hostF, cfg.HTTP.Addr)
			u, err := url.Parse(addr)
			if err != nil {
				logger.Fatalf("invalid URL %#v: %s\n", addr, err)
			}
			if *secureF {
				u.Scheme = "https"
			}
			if *domainF != "" {
				u.Host = *domainF
			}
			if *httpPortF != "" {
				h, _, err := net.SplitHostPort(u.Host)
				if err != nil {
					logger.Fatalf("invalid URL %#v: %s\n", u.Host, err)
				}
				u.Host = net.JoinHostPort(h, *httpPortF)
			} else if u.Port() == "" {
				u.Host = net.JoinHostPort(u.Host, "80")
			}
			handleHTTPServer(ctx, u, healthEndpoints, camerasEndpoints, incidentsEndpoints, systemEndpoints, extras, &wg, errc, logger, *dbgF)
		}

	case "production":
		{
			addr := "https://vigil.example.com"
			u, err := url.Parse(addr)
			if err != nil {
				logger.Fatalf("invalid URL %#v: %s\n", addr, err)
			}
			if *secureF {
				u.Scheme = "https"
			}
			if *domainF != "" {
				u.Host = *domainF
			}
			if *httpPortF != "" {
				h, _, err := net.SplitHostPort(u.Host)
				if err != nil {
					logger.Fatalf("invalid URL %#v: %s\n", u.Host, err)
				}
				u.Host = net.JoinHostPort(h, *httpPortF)
			} else if u.Port() == "" {
				u.Host = net.JoinHostPort(u.Host, "443")
			}
			handleHTTPServer(ctx, u, healthEndpoints, camerasEndpoints, incidentsEndpoints, systemEndpoints, extras, &wg, errc, logger, *dbgF)
		}

	default:
		logger.Fatalf("invalid host argument: %q (valid hosts: localhost|0.0.0.0|production)\n", *hostF)
	}

	// Wait for signal.
	logger.Printf("exiting (%v)", <-errc)

	// Send cancellation signal to the goroutines.
	cancel()

	wg.Wait()
	logger.Println("exited")
}
