// Package notify carries small control messages between this process and a
// companion UI over a loopback TCP socket. Messages are single-line ASCII
// commands with colon-separated arguments.
package notify

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	cmdUpdate            = "UPDATE"
	cmdPlay              = "PLAY"
	cmdStopPlayback      = "STOP_PLAYBACK"
	cmdSilentRecordStart = "SILENT_RECORD_START"
)

// Notifier announces state changes to whoever is listening. Implementations
// are best-effort: a missing listener must never fail the caller.
type Notifier interface {
	RecordSaved(number int64)
	Refresh()
	Play(number int64, count int)
	StopPlayback()
	SilentRecordStart()
}

// Message is a parsed inbound command.
type Message struct {
	Command string
	Number  int64
	Count   int
}

func formatRecordSaved(number int64) string {
	return fmt.Sprintf("%s:%d", cmdUpdate, number)
}

func formatPlay(number int64, count int) string {
	return fmt.Sprintf("%s:%d:%d", cmdPlay, number, count)
}

// Parse decodes a wire line into a Message.
func Parse(line string) (Message, error) {
	parts := strings.Split(strings.TrimSpace(line), ":")

	switch parts[0] {
	case cmdUpdate:
		msg := Message{Command: cmdUpdate}
		if len(parts) == 1 {
			return msg, nil
		}
		if len(parts) != 2 {
			return Message{}, fmt.Errorf("malformed %s message: %q", cmdUpdate, line)
		}
		number, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return Message{}, fmt.Errorf("invalid record number in %q: %w", line, err)
		}
		msg.Number = number
		return msg, nil

	case cmdPlay:
		if len(parts) != 3 {
			return Message{}, fmt.Errorf("malformed %s message: %q", cmdPlay, line)
		}
		number, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return Message{}, fmt.Errorf("invalid record number in %q: %w", line, err)
		}
		count, err := strconv.Atoi(parts[2])
		if err != nil {
			return Message{}, fmt.Errorf("invalid repeat count in %q: %w", line, err)
		}
		return Message{Command: cmdPlay, Number: number, Count: count}, nil

	case cmdStopPlayback, cmdSilentRecordStart:
		if len(parts) != 1 {
			return Message{}, fmt.Errorf("malformed %s message: %q", parts[0], line)
		}
		return Message{Command: parts[0]}, nil
	}

	return Message{}, fmt.Errorf("unknown message: %q", line)
}
