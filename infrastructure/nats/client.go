package nats

import (
	"time"

	"github.com/nats-io/nats.go"

	"catalog-service/pkg/config"
	"catalog-service/pkg/logger"
)

// Client holds the NATS connection plus its JetStream context. Returns
// (nil, nil) when no NATS URL is configured; event publishing then degrades
// to a no-op.
type Client struct {
	conn *nats.Conn
	js   nats.JetStreamContext
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.NATS.URL == "" {
		return nil, nil
	}

	conn, err := nats.Connect(cfg.NATS.URL,
		nats.Name(cfg.App.Name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, err
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, err
	}

	logger.Info("NATS connected", "url", cfg.NATS.URL)
	return &Client{conn: conn, js: js}, nil
}

func (c *Client) JetStream() nats.JetStreamContext {
	return c.js
}

func (c *Client) Close() {
	if c == nil || c.conn == nil {
		return
	}
	c.conn.Drain()
}
