package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules" // register rules
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve checks over HTTP",
		Long: `Serve the check engine over HTTP for editor and CI integrations.

Endpoints:
  POST /v1/check   check one file (file_path, content, phase)
  GET  /v1/rules   list the rule catalog
  GET  /healthz    liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			if err := cmdCtx.Cfg.ValidateProjectRoot(); err != nil {
				return err
			}
			if addr == "" {
				addr = cmdCtx.Cfg.GetServeConfig().Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              addr,
				Handler:           NewCheckHandler(cmdCtx.Runner, cmdCtx.Cfg.ProjectRoot),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				cmdCtx.Logger.Info("check server listening", "addr", addr)
				cmdCtx.Renderer.Info(fmt.Sprintf("listening on %s", addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}

// checkRequest is the POST /v1/check payload.
type checkRequest struct {
	FilePath string `json:"file_path"`
	Content  string `json:"content"`
	Phase    string `json:"phase"`
}

// checkResponse is the POST /v1/check result.
type checkResponse struct {
	Path     string   `json:"path"`
	Category string   `json:"category"`
	Blocked  bool     `json:"blocked"`
	Errors   []string `json:"errors,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

// NewCheckHandler builds the HTTP API over a check runner.
func NewCheckHandler(runner *lint.Runner, projectRoot string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/v1/rules", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, rulesJSONOutput{
			Rules: allRuleInfos(),
			Count: lint.Count(),
		})
	})

	r.Post("/v1/check", func(w http.ResponseWriter, req *http.Request) {
		var body checkRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		phase := core.PhaseAfterWrite
		if body.Phase != "" {
			parsed, ok := core.ParsePhase(body.Phase)
			if !ok {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid phase %q", body.Phase)})
				return
			}
			phase = parsed
		}

		result, err := runner.Check(lint.Request{
			ProjectRoot: projectRoot,
			FilePath:    body.FilePath,
			Content:     []byte(body.Content),
			Phase:       phase,
		})
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, checkResponse{
			Path:     result.Target.RelPath,
			Category: result.Target.Category.String(),
			Blocked:  result.Blocked(),
			Errors:   result.Errors,
			Messages: result.Messages,
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
