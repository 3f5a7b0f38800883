package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Tally/internal/hermes"
	"github.com/MikeSquared-Agency/Tally/internal/matrix"
)

// watchCmd follows evaluation events published by tally servers.
func watchCmd() *cobra.Command {
	var natsURL string
	var precision int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print evaluation events as servers publish them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			client, err := hermes.NewNATSClient(ctx, natsURL, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			return followEvents(ctx, client, cmd.OutOrStdout(), precision)
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats", "nats://localhost:4222", "NATS server URL")
	cmd.Flags().IntVar(&precision, "precision", matrix.DefaultPrecision, "decimals shown for scores")
	return cmd
}

// followEvents prints one line per event until ctx is done.
func followEvents(ctx context.Context, client hermes.Client, out io.Writer, precision int) error {
	lines := make(chan string, 64)
	err := client.Subscribe(hermes.SubjectEvaluationAll, func(subject string, data []byte) {
		select {
		case lines <- formatEvent(subject, data, precision):
		case <-ctx.Done():
		}
	})
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case line := <-lines:
			fmt.Fprintln(out, line)
		}
	}
}

func formatEvent(subject string, data []byte, precision int) string {
	switch {
	case strings.HasSuffix(subject, ".completed"):
		var e hermes.EvaluationCompletedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			break
		}
		if e.BestAlternative == "" {
			return fmt.Sprintf("completed %s: nothing to rank", e.EvaluationID)
		}
		return fmt.Sprintf("completed %s: %d alternatives, %d criteria, best %s (score %s)",
			e.EvaluationID, e.Alternatives, e.Criteria, e.BestAlternative, matrix.FormatScore(e.BestScore, precision))
	case strings.HasSuffix(subject, ".rejected"):
		var e hermes.EvaluationRejectedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			break
		}
		return fmt.Sprintf("rejected %s: %s: %s", e.EvaluationID, e.Kind, e.Error)
	}
	return fmt.Sprintf("%s %s", subject, data)
}
