package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Tally/internal/api"
	"github.com/MikeSquared-Agency/Tally/internal/matrix"
)

// submitCmd sends a decision file to a running tally server.
func submitCmd() *cobra.Command {
	var file, apiURL, clientID string
	var precision int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Evaluate a decision file on a tally server",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrix.Load(file)
			if err != nil {
				return err
			}
			body, err := json.Marshal(m)
			if err != nil {
				return fmt.Errorf("encode matrix: %w", err)
			}

			url := strings.TrimRight(apiURL, "/") + "/api/v1/evaluations"
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, url, bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(api.ClientIDHeader, clientID)

			client := &http.Client{Timeout: 10 * time.Second}
			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("submit: %w", err)
			}
			defer resp.Body.Close()

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("read response: %w", err)
			}
			if resp.StatusCode >= 400 {
				var e struct {
					Error string `json:"error"`
				}
				if json.Unmarshal(data, &e) == nil && e.Error != "" {
					return fmt.Errorf("%s", e.Error)
				}
				return fmt.Errorf("tally %s: %d %s", url, resp.StatusCode, string(data))
			}

			var result api.EvaluationResponse
			if err := json.Unmarshal(data, &result); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Evaluation %s\n", result.EvaluationID)
			best := ""
			if result.BestAlternative != nil {
				best = *result.BestAlternative
			}
			printResults(out, result.Results, best, result.BestAlternative != nil, precision)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "decision file (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&apiURL, "api", "http://localhost:8700", "tally server base URL")
	cmd.Flags().StringVar(&clientID, "client", "tallyctl", "value of the X-Client-ID header")
	cmd.Flags().IntVar(&precision, "precision", matrix.DefaultPrecision, "decimals shown for scores")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
