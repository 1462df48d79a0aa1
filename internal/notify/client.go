package notify

import (
	"fmt"
	"net"
	"time"

	"github.com/vocapture/vocapture/internal/config"
	"go.uber.org/zap"
)

// Client sends fire-and-forget messages over loopback TCP. Each message is
// its own short-lived connection; delivery is never confirmed and failures
// are only logged.
type Client struct {
	cfg config.NotifyConfig
	log *zap.Logger
}

func NewClient(cfg config.NotifyConfig, log *zap.Logger) *Client {
	return &Client{cfg: cfg, log: log}
}

func (c *Client) RecordSaved(number int64) {
	c.send(formatRecordSaved(number))
}

func (c *Client) Refresh() {
	c.send(cmdUpdate)
}

func (c *Client) Play(number int64, count int) {
	c.send(formatPlay(number, count))
}

func (c *Client) StopPlayback() {
	c.send(cmdStopPlayback)
}

func (c *Client) SilentRecordStart() {
	c.send(cmdSilentRecordStart)
}

func (c *Client) send(msg string) {
	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)

	conn, err := net.DialTimeout("tcp", addr, c.cfg.Timeout)
	if err != nil {
		c.log.Debug("no notify listener", zap.String("addr", addr), zap.Error(err))
		return
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(c.cfg.Timeout)); err != nil {
		c.log.Warn("failed to set notify deadline", zap.Error(err))
		return
	}

	if _, err := conn.Write([]byte(msg + "\n")); err != nil {
		c.log.Warn("failed to send notify message",
			zap.String("message", msg),
			zap.Error(err))
	}
}
