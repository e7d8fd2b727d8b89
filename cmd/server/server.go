package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/maze-api/internal/handlers/maze/v1alpha1"
	"github.com/KirkDiggler/maze-api/internal/orchestrators/simulation"
	"github.com/KirkDiggler/maze-api/internal/pkg/clock"
	"github.com/KirkDiggler/maze-api/internal/pkg/idgen"
	"github.com/KirkDiggler/maze-api/internal/redis"
	"github.com/KirkDiggler/maze-api/internal/repositories/mazes"
)

var (
	grpcPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Maze API gRPC server. Layouts go to redis when an address is configured, memory otherwise.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port, GRPC_PORT when unset")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address, REDIS_ADDR when unset")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	port := grpcPort
	if port == 0 {
		port = envConfig.GRPCPort
	}

	repo, closeRepo, err := newRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	mazeService, err := simulation.NewOrchestrator(&simulation.Config{
		Repository:  repo,
		IDGenerator: idgen.NewUUID("maze"),
		TTL:         envConfig.MazeTTL,
		Logger:      slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("failed to create maze service: %w", err)
	}

	mazeHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		MazeService: mazeService,
	})
	if err != nil {
		return fmt.Errorf("failed to create maze handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterMazeServiceServer(srv, mazeHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
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
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newRepository picks redis when an address is configured
func newRepository(ctx context.Context) (mazes.Repository, func(), error) {
	addr := redisAddr
	if addr == "" {
		addr = envConfig.RedisAddr
	}
	if addr == "" {
		slog.Info("No redis address configured, storing mazes in memory")
		return mazes.NewInMemoryRepository(clock.New()), func() {}, nil
	}

	client, err := redis.NewClient(addr, &redis.Options{
		DB:       envConfig.RedisDB,
		Password: envConfig.RedisPassword,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	if err := redis.Ping(ctx, client, 5*time.Second); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}

	repo, err := mazes.NewRedisRepository(&mazes.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create maze repository: %w", err)
	}

	slog.Info("Storing mazes in redis", "addr", addr, "db", envConfig.RedisDB)
	return repo, cleanup, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
