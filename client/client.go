package main

import (
	"chat-archive/auth"
	"chat-archive/domain"
	"chat-archive/infrastructure/grpc/cluster"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables, optionally read from a .env file.
type Config struct {
	NodeAddr      string        `envconfig:"ARCHIVE_NODE_ADDR" default:"localhost:7400"`
	ClusterSecret string        `envconfig:"CLUSTER_SECRET" required:"true"`
	ClientID      string        `envconfig:"ARCHIVE_CLIENT_ID" default:"archive-cli"`
	Timeout       time.Duration `envconfig:"ARCHIVE_CLIENT_TIMEOUT" default:"10s"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"INFO"`
	Colours       bool          `envconfig:"ARCHIVE_COLOURS" default:"true"`
}

const usage = `usage: client <command> [flags]

commands:
  send     -from alice@x.org/phone -to bob@x.org -body "hi" [-id m1]
  status   -from bob@x.org -to alice@x.org/phone -id m1 -status 3
  history  -owner alice@x.org -with bob@x.org [-max 20] [-index 0 | -after m4 | -before m8] [-since 24h]
  summaries -owner alice@x.org [-since 24h] [-limit 15]
  count    number of active conversations
  list     active conversations`

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return exitConfig, errors.New("missing command")
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	color.Enable = config.Colours

	signer, err := auth.NewSigner(config.ClusterSecret, time.Minute)
	if err != nil {
		return exitConfig, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	conn, err := grpc.NewClient(config.NodeAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithPerRPCCredentials(auth.NewNodeCredentials(signer, config.ClientID)),
	)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to node at %s: %w", config.NodeAddr, err)
	}
	defer func() { _ = conn.Close() }()

	c := &archiveClient{log: log, stub: cluster.NewClusterServiceClient(conn)}
	command, flags := args[0], args[1:]
	switch command {
	case "send":
		err = c.send(ctx, flags)
	case "status":
		err = c.status(ctx, flags)
	case "history":
		err = c.history(ctx, flags)
	case "summaries":
		err = c.summaries(ctx, flags)
	case "count":
		err = c.count(ctx)
	case "list":
		err = c.list(ctx)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return exitConfig, fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

type archiveClient struct {
	log  *slog.Logger
	stub *cluster.ClusterServiceClient
}

func (c *archiveClient) send(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	from := fs.String("from", "", "sender address")
	to := fs.String("to", "", "receiver address")
	body := fs.String("body", "", "message body")
	id := fs.String("id", "", "message id, generated when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		*id = uuid.NewString()
	}
	return c.route(ctx, domain.ConversationEvent{
		MessageID: *id,
		Sender:    *from,
		Receiver:  *to,
		Status:    domain.StatusSent,
		Timestamp: time.Now().UTC(),
		Body:      *body,
	})
}

func (c *archiveClient) status(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	from := fs.String("from", "", "address reporting the status")
	to := fs.String("to", "", "original sender")
	id := fs.String("id", "", "message id")
	code := fs.Int("status", int(domain.StatusDelivered), "2 delivered, 3 read, 4 failed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	status, err := domain.ParseMessageStatus(*code)
	if err != nil {
		return err
	}
	return c.route(ctx, domain.ConversationEvent{
		MessageID: *id,
		Sender:    *from,
		Receiver:  *to,
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}

func (c *archiveClient) route(ctx context.Context, event domain.ConversationEvent) error {
	if _, err := c.stub.RouteEvents(ctx, &cluster.EventBatch{Events: []domain.ConversationEvent{event}}); err != nil {
		return err
	}
	c.log.Info("Event sent", "message_id", event.MessageID, "status", event.Status.String())
	return nil
}

// intFlag keeps track of whether an int flag was given, zero included.
type intFlag struct{ value *int }

func (f *intFlag) String() string {
	if f.value == nil {
		return ""
	}
	return fmt.Sprint(*f.value)
}

func (f *intFlag) Set(s string) error {
	var v int
	if _, err := fmt.Sscan(s, &v); err != nil {
		return err
	}
	f.value = &v
	return nil
}

// stringFlag is the string counterpart of intFlag.
type stringFlag struct{ value *string }

func (f *stringFlag) String() string {
	if f.value == nil {
		return ""
	}
	return *f.value
}

func (f *stringFlag) Set(s string) error {
	f.value = &s
	return nil
}

func (c *archiveClient) history(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	owner := fs.String("owner", "", "archive owner")
	with := fs.String("with", "", "peer")
	since := fs.Duration("since", 0, "only messages newer than this")
	var pageMax, index intFlag
	var after, before stringFlag
	fs.Var(&pageMax, "max", "page size")
	fs.Var(&index, "index", "absolute start index")
	fs.Var(&after, "after", "page after this message id")
	fs.Var(&before, "before", "page before this message id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := domain.HistoryQuery{
		Owner: *owner,
		With:  *with,
		Page:  domain.PageRequest{Max: pageMax.value, Index: index.value, After: after.value, Before: before.value},
	}
	if *since > 0 {
		query.Window.Start = time.Now().Add(-*since)
	}
	reply, err := c.stub.History(ctx, &cluster.HistoryRequest{Query: query})
	if err != nil {
		return err
	}

	header := color.New(color.FgGreen, color.OpBold)
	header.Printf("%s <-> %s: %d of %d messages from #%d (complete: %t)\n",
		*owner, *with, len(reply.History.Messages), reply.History.Page.Count,
		reply.History.Page.FirstIndex, reply.History.Page.Complete)
	for _, m := range reply.History.Messages {
		color.Gray.Printf("[%s] ", m.CreatedAt.Format(time.DateTime))
		color.Cyan.Printf("%s", m.From)
		fmt.Printf(" %s (%s) ", m.Body, m.Status)
		color.Gray.Printf("%s\n", m.ID)
	}
	return nil
}

func (c *archiveClient) summaries(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("summaries", flag.ContinueOnError)
	owner := fs.String("owner", "", "archive owner")
	since := fs.Duration("since", 0, "only conversations active since")
	limit := fs.Int("limit", 0, "number of conversations")
	if err := fs.Parse(args); err != nil {
		return err
	}
	request := &cluster.SummaryRequest{Owner: *owner, Limit: *limit}
	if *since > 0 {
		request.Window.Start = time.Now().Add(-*since)
	}
	reply, err := c.stub.Summaries(ctx, request)
	if err != nil {
		return err
	}
	for _, s := range reply.Summaries {
		color.Cyan.Printf("%-40s", s.Conversation.Key)
		fmt.Printf(" %4d messages  ", s.Conversation.MessageCount)
		color.Gray.Printf("[%s] ", s.Last.CreatedAt.Format(time.DateTime))
		fmt.Printf("%s: %s\n", s.Last.From, s.Last.Body)
	}
	return nil
}

func (c *archiveClient) count(ctx context.Context) error {
	count, err := c.stub.ConversationCount(ctx, &emptypb.Empty{})
	if err != nil {
		return err
	}
	fmt.Println(count.GetValue())
	return nil
}

func (c *archiveClient) list(ctx context.Context) error {
	list, err := c.stub.ListConversations(ctx, &emptypb.Empty{})
	if err != nil {
		return err
	}
	for _, conv := range list.Conversations {
		fmt.Printf("%s  %-40s  %4d messages  last %s\n",
			conv.ID, conv.Key, conv.MessageCount, conv.UpdatedAt.Format(time.DateTime))
	}
	return nil
}
