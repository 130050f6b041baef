// Package cli provides the interactive terminal front end of the chat client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	domainerrors "github.com/unifiedui/chat-client/internal/domain/errors"
	"github.com/unifiedui/chat-client/internal/domain/models"
	"github.com/unifiedui/chat-client/internal/services/chat"
)

// Prompt is printed before each input line.
const Prompt = "> "

const helpText = `Commands:
  /analytics   fetch and show conversation analytics
  /sentiment   fetch and show sentiment trends
  /close       hide the analytics panel
  /history     print the conversation
  /session     print the session id
  /help        show this help
  /quit        exit
Anything else is sent as a message.`

// REPL reads utterances and commands line by line and prints the conversation.
type REPL struct {
	controller chat.Controller
	in         io.Reader
	out        io.Writer
}

// New creates a REPL over the given controller and streams.
func New(controller chat.Controller, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		controller: controller,
		in:         in,
		out:        out,
	}
}

// Run processes input until /quit, end of input or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintf(r.out, "Session %s. Type /help for commands.\n", r.controller.Session().ID)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(r.out, Prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out)
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}
			line = l
		}

		if quit := r.handleLine(ctx, line); quit {
			return nil
		}
	}
}

// handleLine runs one line and reports whether the REPL should exit.
func (r *REPL) handleLine(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "/") {
		r.send(ctx, line)
		return false
	}

	switch strings.ToLower(trimmed) {
	case "/quit", "/exit":
		return true
	case "/help":
		fmt.Fprintln(r.out, helpText)
	case "/session":
		fmt.Fprintln(r.out, r.controller.Session().ID)
	case "/history":
		for _, msg := range r.controller.Messages() {
			r.printMessage(&msg)
		}
	case "/analytics":
		r.requestAnalytics(ctx)
	case "/sentiment":
		r.requestSentiment(ctx)
	case "/close":
		r.controller.DismissAnalytics()
		r.controller.DismissSentiment()
		fmt.Fprintln(r.out, "Analytics closed.")
	default:
		fmt.Fprintf(r.out, "Unknown command %s. Type /help for commands.\n", trimmed)
	}
	return false
}

func (r *REPL) send(ctx context.Context, text string) {
	submission, err := r.controller.Submit(text)
	if err != nil {
		if domainerrors.IsValidationError(err) {
			return
		}
		fmt.Fprintf(r.out, "Not sent: %s\n", messageOf(err))
		return
	}

	select {
	case reply, ok := <-submission.Reply:
		if ok {
			r.printMessage(reply)
		}
	case <-ctx.Done():
	}
}

func (r *REPL) requestAnalytics(ctx context.Context) {
	if _, err := r.controller.RequestAnalytics(ctx); err != nil {
		fmt.Fprintf(r.out, "Analytics unavailable: %s\n", messageOf(err))
		return
	}
	r.printAnalytics(r.controller.Analytics())
}

func (r *REPL) requestSentiment(ctx context.Context) {
	if _, err := r.controller.RequestSentiment(ctx); err != nil {
		fmt.Fprintf(r.out, "Sentiment trends unavailable: %s\n", messageOf(err))
		return
	}
	trends := r.controller.Sentiment()
	fmt.Fprintf(r.out, "Sentiment: %s (%s)\n", trends.OverallSentiment, trends.Trend)
	fmt.Fprintf(r.out, "  positive %.1f%% | negative %.1f%% | neutral %.1f%%\n",
		trends.PositivePercentage, trends.NegativePercentage, trends.NeutralPercentage)
}

func (r *REPL) printAnalytics(snapshot *models.AnalyticsSnapshot) {
	fmt.Fprintln(r.out, "Conversation analytics")
	fmt.Fprintf(r.out, "  Total conversations:   %d\n", snapshot.TotalConversations)
	fmt.Fprintf(r.out, "  Average response time: %.2fs\n", snapshot.AverageResponseTimeSeconds)
	if snapshot.UserSatisfaction > 0 {
		fmt.Fprintf(r.out, "  User satisfaction:     %.0f%%\n", snapshot.UserSatisfaction*100)
	}
	if len(snapshot.TopIntents) > 0 {
		fmt.Fprintf(r.out, "  Top intents:           %s\n", formatCounts(snapshot.TopIntents))
	}
}

func (r *REPL) printMessage(msg *models.Message) {
	switch {
	case msg.IsUserMessage():
		fmt.Fprintf(r.out, "[%s] you: %s\n", msg.Timestamp, msg.Text)
	case msg.IsError():
		fmt.Fprintf(r.out, "[%s] bot (error): %s\n", msg.Timestamp, msg.Text)
	default:
		fmt.Fprintf(r.out, "[%s] bot: %s\n", msg.Timestamp, msg.Text)
		if msg.Metadata != nil {
			fmt.Fprintf(r.out, "  intent: %s | sentiment: %s | %.2fs\n",
				msg.Metadata.IntentLabel(), msg.Metadata.SentimentLabel(), msg.Metadata.ResponseTimeSeconds)
		}
	}
}

func messageOf(err error) string {
	if domainErr, ok := domainerrors.GetDomainError(err); ok {
		return domainErr.Message
	}
	return err.Error()
}

// formatCounts renders counts by descending count, then name.
func formatCounts(counts map[string]int64) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s (%d)", name, counts[name])
	}
	return strings.Join(parts, ", ")
}
