// Package console is the line-oriented front end: plain lines become
// capture requests, slash commands drive review and playback control.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vocapture/vocapture/internal/scheduler"
	"github.com/vocapture/vocapture/internal/service"
	"go.uber.org/zap"
)

const (
	CommandReview = "/review"
	CommandStop   = "/stop"
	CommandHelp   = "/help"
	CommandQuit   = "/quit"
)

type CoordinatorI interface {
	Capture(ctx context.Context, text string) error
	StopCurrent()
}

type ReviewI interface {
	StartSession(ctx context.Context) (*service.Session, error)
}

type Console struct {
	in          *bufio.Scanner
	out         io.Writer
	coordinator CoordinatorI
	review      ReviewI
	log         *zap.Logger

	mu     sync.Mutex
	active *service.Session
}

func NewConsole(in io.Reader, out io.Writer, coordinator CoordinatorI, review ReviewI, log *zap.Logger) *Console {
	return &Console{
		in:          bufio.NewScanner(in),
		out:         out,
		coordinator: coordinator,
		review:      review,
		log:         log,
	}
}

// Run reads lines until EOF, /quit or context cancellation.
func (c *Console) Run(ctx context.Context) error {
	c.printHelp()

	for c.in.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}

		switch {
		case line == CommandQuit:
			return nil
		case line == CommandHelp:
			c.printHelp()
		case line == CommandStop:
			c.coordinator.StopCurrent()
		case line == CommandReview:
			c.runReview(ctx)
		case strings.HasPrefix(line, "/"):
			fmt.Fprintf(c.out, "unknown command %q, try %s\n", line, CommandHelp)
		default:
			c.handleCapture(ctx, line)
		}
	}

	return c.in.Err()
}

func (c *Console) handleCapture(ctx context.Context, text string) {
	fmt.Fprintf(c.out, "recording %q, speak now\n", text)

	if err := c.coordinator.Capture(ctx, text); err != nil {
		c.log.Error("capture failed", zap.String("text", text), zap.Error(err))
		fmt.Fprintf(c.out, "capture failed: %v\n", err)
		return
	}

	fmt.Fprintln(c.out, "done")
}

// RefreshActive reloads the queue of the review session currently on screen,
// if any. Saving a new capture calls this so the open session picks it up.
func (c *Console) RefreshActive(ctx context.Context) {
	c.mu.Lock()
	session := c.active
	c.mu.Unlock()

	if session == nil {
		return
	}
	if err := session.Refresh(ctx); err != nil {
		c.log.Error("failed to refresh review session", zap.Error(err))
	}
}

func (c *Console) setActive(session *service.Session) {
	c.mu.Lock()
	c.active = session
	c.mu.Unlock()
}

func (c *Console) runReview(ctx context.Context) {
	session, err := c.review.StartSession(ctx)
	if err != nil {
		c.log.Error("failed to start review", zap.Error(err))
		fmt.Fprintf(c.out, "review unavailable: %v\n", err)
		return
	}

	c.setActive(session)
	defer c.setActive(nil)

	for {
		current, ok := session.Current()
		if !ok {
			done, total := session.Progress()
			fmt.Fprintf(c.out, "review finished: %d/%d\n", done, total)
			return
		}

		fmt.Fprintf(c.out, "%s  [y = remembered, n = forgotten, s = stop]\n", current.Content)

		if !c.in.Scan() {
			return
		}

		answer, ok := parseAnswer(c.in.Text())
		if !ok {
			if strings.TrimSpace(c.in.Text()) == "s" {
				done, total := session.Progress()
				fmt.Fprintf(c.out, "review stopped: %d/%d\n", done, total)
				return
			}
			fmt.Fprintln(c.out, "answer y, n or s")
			continue
		}

		if err := session.Answer(ctx, answer); err != nil {
			c.log.Error("failed to save answer", zap.Error(err))
			fmt.Fprintln(c.out, "answer not saved, showing the word again")
		}
	}
}

func parseAnswer(line string) (scheduler.Outcome, bool) {
	switch strings.TrimSpace(line) {
	case "y":
		return scheduler.Remembered, true
	case "n":
		return scheduler.Forgotten, true
	}
	return 0, false
}

func (c *Console) printHelp() {
	fmt.Fprintf(c.out, `type a word or phrase to record it
%s  review due words
%s    cancel the recording in progress
%s    this message
%s    exit
`, CommandReview, CommandStop, CommandHelp, CommandQuit)
}
