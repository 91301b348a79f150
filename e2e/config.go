package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// ARCHIVE_NODE_ADDR points at a running node, e2e suites are skipped when empty
	NodeAddr      string `envconfig:"ARCHIVE_NODE_ADDR"`
	ClusterSecret string `envconfig:"CLUSTER_SECRET"`
	// XMPP_DOMAIN must match the node, only local users are archived
	Domain string `envconfig:"XMPP_DOMAIN" default:"localhost"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
