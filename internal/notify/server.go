package notify

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/vocapture/vocapture/internal/config"
	"go.uber.org/zap"
)

// Handler receives parsed inbound commands. Nil callbacks are skipped.
type Handler struct {
	OnRefresh     func()
	OnPlay        func(number int64, count int)
	OnStop        func()
	OnSilentStart func()
}

// Server accepts loopback connections and dispatches one-line commands to
// the handler. Each connection may carry multiple lines.
type Server struct {
	ln      net.Listener
	handler Handler
	log     *zap.Logger
}

func NewServer(cfg config.NotifyConfig, handler Handler, log *zap.Logger) (*Server, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return &Server{ln: ln, handler: handler, log: log}, nil
}

// Addr returns the bound address, useful when the configured port is 0.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Run accepts connections until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.ln.Close()
	}()

	s.log.Info("command server listening", zap.String("addr", s.ln.Addr().String()))

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("failed to accept connection: %w", err)
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		msg, err := Parse(line)
		if err != nil {
			s.log.Warn("dropping bad message", zap.Error(err))
			continue
		}
		s.dispatch(msg)
	}
}

func (s *Server) dispatch(msg Message) {
	switch msg.Command {
	case cmdUpdate:
		if s.handler.OnRefresh != nil {
			s.handler.OnRefresh()
		}
	case cmdPlay:
		if s.handler.OnPlay != nil {
			s.handler.OnPlay(msg.Number, msg.Count)
		}
	case cmdStopPlayback:
		if s.handler.OnStop != nil {
			s.handler.OnStop()
		}
	case cmdSilentRecordStart:
		if s.handler.OnSilentStart != nil {
			s.handler.OnSilentStart()
		}
	}
}
