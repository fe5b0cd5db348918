package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/dreamshade/recruit-api/internal/config"
	"github.com/dreamshade/recruit-api/internal/engine"
	"github.com/dreamshade/recruit-api/internal/handlers/recruit/v1alpha1"
	"github.com/dreamshade/recruit-api/internal/orchestrators/recruit"
	"github.com/dreamshade/recruit-api/internal/pkg/clock"
	"github.com/dreamshade/recruit-api/internal/pkg/idgen"
	"github.com/dreamshade/recruit-api/internal/pkg/rng"
	redisclient "github.com/dreamshade/recruit-api/internal/redis"
	recruitrepo "github.com/dreamshade/recruit-api/internal/repositories/recruit"
)

var (
	grpcPort     int
	store        string
	redisAddr    string
	sqlitePath   string
	profilesPath string
	logLevel     string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the Recruit API gRPC server.

Settings are read from RECRUIT_* environment variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&store, "store", config.StoreRedis, "recruit store (redis or sqlite)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
	serverCmd.Flags().StringVar(&sqlitePath, "sqlite-path", "recruits.db", "SQLite database file")
	serverCmd.Flags().StringVar(&profilesPath, "profiles", "", "profile catalog file (.yaml or .toml)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// loadServerConfig reads the environment and applies explicitly set flags
func loadServerConfig(cmd *cobra.Command) (*config.Server, error) {
	cfg, err := config.LoadServer()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("store") {
		cfg.Store = store
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = sqlitePath
	}
	if flags.Changed("profiles") {
		cfg.Profiles = profilesPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger for the configured format
func newLogger(w io.Writer, cfg *config.Server) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// openRepository connects the configured store. The returned func releases it.
func openRepository(ctx context.Context, cfg *config.Server) (recruitrepo.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		repo, err := recruitrepo.NewSQLite(&recruitrepo.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			PoolSize:    10,
			DialTimeout: 5 * time.Second,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redisclient.Ping(ctx, client, 5*time.Second); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		repo, err := recruitrepo.NewRedis(&recruitrepo.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create redis store: %w", err)
		}
		return repo, func() { _ = client.Close() }, nil
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(os.Stderr, cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	catalog, err := config.LoadCatalog(cfg.Profiles)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	eng, err := engine.New(&engine.Config{Source: rng.Default()})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	recruitService, err := recruit.NewOrchestrator(&recruit.Config{
		Engine:      eng,
		Repository:  repo,
		Catalog:     catalog,
		IDGenerator: idgen.NewUUID("recruit"),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create recruit orchestrator: %w", err)
	}

	recruitHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RecruitService: recruitService,
	})
	if err != nil {
		return fmt.Errorf("failed to create recruit handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterRecruitServiceServer(srv, recruitHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.GRPCPort,
			"store", cfg.Store,
			"profiles", catalog.Names())
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// logFunc routes interceptor logs to slog; the middleware levels match slog's
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
