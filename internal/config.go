package internal

import (
	"chat-archive/domain"
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	NodeID          string `env:"NODE_ID,required=true" validate:"required"`
	NodeAddr        string `env:"NODE_ADDR,required=true" validate:"required,hostname_port"`
	AuthorityNodeID string `env:"AUTHORITY_NODE_ID,required=true" validate:"required"`
	ClusterPeers    string `env:"CLUSTER_PEERS"`
	ClusterSecret   string `env:"CLUSTER_SECRET,required=true" validate:"min=32"`
	XMPPDomain      string `env:"XMPP_DOMAIN,required=true" validate:"required,hostname_rfc1123"`
	GatewayDomains  string `env:"GATEWAY_DOMAINS"`
	BadgerFilepath  string `env:"BADGER_FILEPATH,required=true" validate:"required"`
	BlugeFilepath   string `env:"BLUGE_FILEPATH,required=true" validate:"required"`
	LogLevel        string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	DebugPort       int    `env:"DEBUG_PORT,default=0" validate:"gte=0,lte=65535"`

	ArchiveInterval   time.Duration `env:"ARCHIVE_INTERVAL,default=1m" validate:"gt=0"`
	IdleSweepInterval time.Duration `env:"IDLE_SWEEP_INTERVAL,default=5m" validate:"gt=0"`
	PurgeInterval     time.Duration `env:"PURGE_INTERVAL,default=1m" validate:"gt=0"`
	ForwardInterval   time.Duration `env:"FORWARD_INTERVAL,default=1s" validate:"gt=0"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=1m" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	RPCTimeout        time.Duration `env:"RPC_TIMEOUT,default=5s" validate:"gt=0"`
	TokenDuration     time.Duration `env:"TOKEN_DURATION,default=1m" validate:"gt=0"`

	// Zero disables the job.
	IdleTime    time.Duration `env:"IDLE_TIME,default=15m" validate:"gte=0"`
	MaxAge      time.Duration `env:"MAX_AGE,default=0s" validate:"gte=0"`
	MaxMessages int           `env:"MAX_MESSAGES,default=100" validate:"gt=0"`
	// Batching off writes every op in its own transaction.
	Batching bool `env:"ARCHIVE_BATCHING,default=true"`
}

// LoadConfig reads the node configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	config.LogLevel = strings.ToUpper(config.LogLevel)
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	// A conversation must outlive at least one archiving run before it can be evicted.
	if config.IdleTime > 0 && config.IdleTime <= config.ArchiveInterval {
		return Config{}, fmt.Errorf("invalid config: IDLE_TIME %s must exceed ARCHIVE_INTERVAL %s",
			config.IdleTime, config.ArchiveInterval)
	}
	return config, nil
}

// Gateways splits GATEWAY_DOMAINS.
func (c Config) Gateways() []string {
	var gateways []string
	for _, g := range strings.Split(c.GatewayDomains, ",") {
		if g = strings.TrimSpace(g); g != "" {
			gateways = append(gateways, g)
		}
	}
	return gateways
}

func (c Config) Retention() domain.Retention {
	return domain.Retention{IdleTime: c.IdleTime, MaxAge: c.MaxAge}
}
