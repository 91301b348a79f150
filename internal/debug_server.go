package internal

import (
	"chat-archive/contract"
	"chat-archive/domain"
	"chat-archive/infrastructure/wire"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const inspectPage = `<!doctype html>
<html><head><title>archive {{.Prefix}}</title></head>
<body>
<h1>{{.Prefix}} ({{len .Items}})</h1>
<pre>{{range $k, $v := .Stats}}{{$k}}: {{$v}}
{{end}}</pre>
<table border="1">
<tr><th>Key</th><th>Type</th><th>Timestamp</th><th>Entity</th><th>Detail</th></tr>
{{range .Items}}<tr><td>{{.Key}}</td><td>{{.Type}}</td><td>{{.Timestamp}}</td><td>{{.EntityID}}</td><td>{{.Detail}}</td></tr>
{{end}}</table>
</body></html>`

const maxInspectRows = 500

type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	EntityID  string
	Detail    string
}

type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// AuthorityControl moves the cluster authority between members.
type AuthorityControl interface {
	Authority() (contract.NodeInfo, bool)
	SetAuthority(id string) error
}

// GatewayControl registers the gateway domains whose users are archived.
type GatewayControl interface {
	Gateways() []string
	AddGateway(domain string)
	RemoveGateway(domain string)
}

// Controls are what the debug server exposes besides the store dump.
// A nil field hides its endpoint.
type Controls struct {
	Settings  *Settings
	Authority AuthorityControl
	Gateways  GatewayControl
	Stats     StatsProvider
}

// StartDebugServer serves a view of the store and the pipeline counters, and
// the operator endpoints: retention policy, cluster authority and gateways.
func StartDebugServer(log *slog.Logger, db *badger.DB, port int, controls Controls) *http.Server {
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           debugMux(log, db, controls),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("Debug server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Debug server stopped", "error", err)
		}
	}()
	return server
}

func debugMux(log *slog.Logger, db *badger.DB, controls Controls) *http.ServeMux {
	mux := http.NewServeMux()
	settings, statsProvider := controls.Settings, controls.Stats
	tmpl := template.Must(template.New("inspect").Parse(inspectPage))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "conv:"
		}
		data := PageData{Prefix: prefix, Stats: make(map[string]any)}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)) && len(data.Items) < maxInspectRows; it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, ArchiveMapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		if statsProvider == nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(statsProvider())
	})

	mux.HandleFunc("/retention", func(w http.ResponseWriter, r *http.Request) {
		if settings == nil {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
		case http.MethodPut:
			var body retentionBody
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			retention, err := body.toRetention()
			if err == nil {
				err = settings.SetRetention(retention)
			}
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		current := settings.Retention()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(retentionBody{
			IdleTime: current.IdleTime.String(),
			MaxAge:   current.MaxAge.String(),
		})
	})

	mux.HandleFunc("/authority", func(w http.ResponseWriter, r *http.Request) {
		if controls.Authority == nil {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
		case http.MethodPut:
			var body authorityBody
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if err := controls.Authority.SetAuthority(body.NodeID); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Info("Authority set by operator", "node_id", body.NodeID)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		authority, ok := controls.Authority.Authority()
		if !ok {
			http.Error(w, "authority unknown", http.StatusConflict)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(authorityBody{NodeID: authority.ID, Addr: authority.Addr})
	})

	mux.HandleFunc("/gateways", func(w http.ResponseWriter, r *http.Request) {
		if controls.Gateways == nil {
			http.NotFound(w, r)
			return
		}
		gateway := strings.TrimSpace(r.URL.Query().Get("domain"))
		switch r.Method {
		case http.MethodGet:
		case http.MethodPut, http.MethodDelete:
			if gateway == "" {
				http.Error(w, "missing domain", http.StatusBadRequest)
				return
			}
			if r.Method == http.MethodPut {
				controls.Gateways.AddGateway(gateway)
			} else {
				controls.Gateways.RemoveGateway(gateway)
			}
			log.Info("Gateways changed by operator", "method", r.Method, "domain", gateway)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gatewaysBody{Gateways: controls.Gateways.Gateways()})
	})

	return mux
}

type authorityBody struct {
	NodeID string `json:"node_id"`
	Addr   string `json:"addr,omitempty"`
}

type gatewaysBody struct {
	Gateways []string `json:"gateways"`
}

type retentionBody struct {
	IdleTime string `json:"idle_time"`
	MaxAge   string `json:"max_age"`
}

func (b retentionBody) toRetention() (domain.Retention, error) {
	idle, err := time.ParseDuration(b.IdleTime)
	if err != nil {
		return domain.Retention{}, fmt.Errorf("idle_time: %w", err)
	}
	maxAge, err := time.ParseDuration(b.MaxAge)
	if err != nil {
		return domain.Retention{}, fmt.Errorf("max_age: %w", err)
	}
	return domain.Retention{IdleTime: idle, MaxAge: maxAge}, nil
}

// ArchiveMapper decodes conversation and message records; other keys are shown raw.
func ArchiveMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--",
		EntityID:  "--------",
		Detail:    fmt.Sprintf("Size: %d bytes", len(val)),
	}
	switch {
	case strings.HasPrefix(key, "conv:"):
		c, err := wire.DecodeConversation(val)
		if err != nil {
			row.Detail = err.Error()
			return row
		}
		row.Type = "CONVERSATION"
		row.Timestamp = c.CreatedAt.Format(time.RFC3339)
		row.EntityID = shortID(c.ID)
		row.Detail = fmt.Sprintf("%s (%d messages, updated %s)", c.Key, c.MessageCount, c.UpdatedAt.Format(time.RFC3339))
	case strings.HasPrefix(key, "msg:"):
		m, err := wire.DecodeMessage(val)
		if err != nil {
			row.Detail = err.Error()
			return row
		}
		row.Type = "MESSAGE"
		row.Timestamp = m.CreatedAt.Format(time.RFC3339)
		row.EntityID = shortID(m.ID)
		row.Detail = fmt.Sprintf("%s -> %s [%s] %q", m.From, m.To, m.Status, m.Body)
	case strings.HasPrefix(key, "pair:"), strings.HasPrefix(key, "msgid:"):
		row.Type = "POINTER"
		row.Detail = string(val)
	}
	return row
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
