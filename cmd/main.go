package main

import (
	"chat-archive/auth"
	"chat-archive/cluster"
	"chat-archive/contract"
	"chat-archive/infrastructure/grpc/client"
	grpccluster "chat-archive/infrastructure/grpc/cluster"
	"chat-archive/infrastructure/grpc/server"
	"chat-archive/infrastructure/storage"
	"chat-archive/internal"
	"chat-archive/observability"
	"chat-archive/runtime"
	"chat-archive/runtime/workers"
	"chat-archive/services"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Archive node terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Every defer (database and index close) runs before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	peers, err := cluster.ParsePeers(config.ClusterPeers)
	if err != nil {
		return exitConfig, err
	}
	signer, err := auth.NewSigner(config.ClusterSecret, config.TokenDuration)
	if err != nil {
		return exitConfig, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB) and conversation index (Bluge)
	db, err := badger.Open(buildBadgerOpts(ctx, config, logger))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	var storeOpts []storage.StoreOption
	if !config.Batching {
		storeOpts = append(storeOpts, storage.WithoutBatching())
	}
	index := storage.NewConversationIndex(blugeWriter, logger)
	store := storage.NewArchiveStore(db, index, logger, storeOpts...)
	conversations := storage.NewConversationRepository(db, index, logger)
	messages := storage.NewMessageRepository(db, logger)

	// 3. Cluster
	membership := cluster.NewMembership(
		contract.NodeInfo{ID: config.NodeID, Addr: config.NodeAddr}, peers, config.AuthorityNodeID)
	clusterClient := client.NewClusterClient(logger, membership, client.NodeDialer(signer, config.NodeID))
	defer func() { _ = clusterClient.Close() }()

	// 4. Routing, archiving and retention
	monitoring := observability.NewMonitoringManager(logger)
	settings := internal.NewSettings(logger, config.Retention())
	searcher := services.NewArchiveSearcher(logger, conversations, index)
	directory := runtime.NewDirectory()
	pending := runtime.NewPendingQueues()
	outbound := runtime.NewOutboundQueue()
	eligibility := runtime.NewEligibility(config.XMPPDomain, config.Gateways()...)
	router := runtime.NewRouter(logger, directory, pending, outbound, store, searcher, membership, eligibility, monitoring)

	orchestrator := runtime.NewOrchestrator(
		logger, workers.NewSupervisor(logger, config.RestartInterval),
		router, directory, pending, outbound,
		store, searcher, conversations, messages,
		membership, clusterClient, settings, monitoring,
		runtime.Intervals{
			Archive:    config.ArchiveInterval,
			IdleSweep:  config.IdleSweepInterval,
			Purge:      config.PurgeInterval,
			Forward:    config.ForwardInterval,
			Heartbeat:  config.HeartbeatInterval,
			RPCTimeout: config.RPCTimeout,
		},
	)

	settings.Subscribe(orchestrator.RetentionChanged)

	archiveService := services.NewArchiveService(logger, membership, directory, conversations, clusterClient)
	historyService := services.NewHistoryService(logger, searcher, messages, config.MaxMessages)

	if config.DebugPort > 0 {
		debugServer := internal.StartDebugServer(logger, db, config.DebugPort, internal.Controls{
			Settings:  settings,
			Authority: membership,
			Gateways:  eligibility,
			Stats: func() map[string]any {
				stats := statsOf(monitoring.GetLatest())
				if archived, err := archiveService.ArchivedConversationCount(); err == nil {
					stats["archived_conversations"] = archived
				}
				return stats
			},
		})
		defer func() { _ = debugServer.Close() }()
	}

	errChan := make(chan error, 2)
	orchestratorDone := make(chan struct{})

	// 5. Start the supervised workers
	go func() {
		defer close(orchestratorDone)
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 6. gRPC Server Setup
	listener, err := net.Listen("tcp", config.NodeAddr)
	if err != nil {
		orchestrator.Stop()
		<-orchestratorDone
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", config.NodeAddr, err)
	}

	s := grpc.NewServer(
		grpccluster.ServerOption(),
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			auth.NodeInterceptor(signer),
		))
	grpccluster.RegisterClusterServiceServer(s,
		server.NewClusterServer(logger, archiveService, historyService, router, router, membership))

	go func() {
		logger.Info("Starting gRPC server", "address", config.NodeAddr, "node_id", config.NodeID,
			"authority", config.AuthorityNodeID, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 8. Final Cleanup: stop taking calls, then let the archiver drain before the store closes.
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	orchestrator.Stop()
	<-orchestratorDone
	logger.Info("Program stopped cleanly")

	return code, runErr
}

func buildBadgerOpts(ctx context.Context, config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.INFO)
}

func statsOf(stats observability.ArchiveStats) map[string]any {
	out := make(map[string]any)
	raw, err := json.Marshal(stats)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}
