package proxy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"speedtab/core/markup"

	"go.uber.org/zap"
)

// ConsoleName is the requester name of the proxy console.
const ConsoleName = "console"

// ErrUnknownCommand is returned when executing a command nobody registered.
var ErrUnknownCommand = errors.New("unknown command")

// CommandSource is whoever invoked a command.
type CommandSource interface {
	// Name identifies the requester for permission checks and logs.
	Name() string
	// SendMessage delivers a reply to the requester.
	SendMessage(msg markup.Text)
}

// Command is a named action executable through the registry.
type Command interface {
	Execute(ctx context.Context, source CommandSource)
}

// CommandFunc adapts a function to Command.
type CommandFunc func(ctx context.Context, source CommandSource)

// Execute calls f.
func (f CommandFunc) Execute(ctx context.Context, source CommandSource) {
	f(ctx, source)
}

// RegisterCommand makes cmd executable under name (case-insensitive).
func (r *Registry) RegisterCommand(name string, cmd Command) {
	r.cmdMu.Lock()
	r.commands[strings.ToLower(name)] = cmd
	r.cmdMu.Unlock()
}

// ExecuteCommand runs the command registered under name.
func (r *Registry) ExecuteCommand(ctx context.Context, name string, source CommandSource) error {
	r.cmdMu.RLock()
	cmd, ok := r.commands[strings.ToLower(name)]
	r.cmdMu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	cmd.Execute(ctx, source)
	return nil
}

// BufferedSource collects replies in memory. It is used for requests that
// return the replies to the caller, such as the HTTP bridge.
type BufferedSource struct {
	name string

	mu       sync.Mutex
	messages []string
}

// NewBufferedSource creates a source named name.
func NewBufferedSource(name string) *BufferedSource {
	return &BufferedSource{name: name}
}

func (s *BufferedSource) Name() string { return s.name }

func (s *BufferedSource) SendMessage(msg markup.Text) {
	s.mu.Lock()
	s.messages = append(s.messages, msg.String())
	s.mu.Unlock()
}

// Messages returns the replies received so far.
func (s *BufferedSource) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// ConsoleSource writes replies to the log.
type ConsoleSource struct {
	logger *zap.Logger
}

// NewConsoleSource creates the console requester.
func NewConsoleSource(logger *zap.Logger) *ConsoleSource {
	return &ConsoleSource{logger: logger}
}

func (s *ConsoleSource) Name() string { return ConsoleName }

func (s *ConsoleSource) SendMessage(msg markup.Text) {
	s.logger.Info(msg.String(), zap.String("source", ConsoleName))
}
