// Package client provides commands that call a running Recruit API server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dreamshade/recruit-api/internal/errors"
	"github.com/dreamshade/recruit-api/internal/handlers/recruit/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the Recruit API",
	Long:  `Client commands make real gRPC requests against a running Recruit API server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(statsCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(setRankCmd)
	ClientCmd.AddCommand(setLevelCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createRecruitClient creates a recruit service client
func createRecruitClient() (v1alpha1.RecruitServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewRecruitServiceClient(conn), cleanup, nil
}

// callError turns a gRPC status into a readable error
func callError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	if errors.IsConfigurationMissing(converted) {
		return fmt.Errorf("failed to %s: unknown profile or missing configuration: %w", action, converted)
	}
	return fmt.Errorf("failed to %s: %w", action, converted)
}
