package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"passwordStrengthBackend/internal/platform/desktop"
	"passwordStrengthBackend/internal/platform/web"
)

const shutdownTimeout = 10 * time.Second

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "password-strength",
		Short:         "Estimate how crackable a password is and suggest a stronger one",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newAnalyzeCommand(),
		newGenerateCommand(),
		newAuditCommand(),
	)
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, true)
			if err != nil {
				return fmt.Errorf("startup failed: %w", err)
			}
			defer a.Close()

			gin.SetMode(gin.ReleaseMode)
			handler := web.NewWebHandler(a.analyzer, a.auditor, a.cfg.Generate)
			srv := &http.Server{
				Addr:              a.cfg.HTTPAddr,
				Handler:           web.NewRouter(handler, a.registry, a.logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("http server listening", zap.String("addr", srv.Addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func newAnalyzeCommand() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Analyse one password and print the report as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordArg(cmd.InOrStdin(), args, fromStdin)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			return writeJSON(cmd.OutOrStdout(), a.analyzer.Assess(password))
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the password from the first line of stdin")
	return cmd
}

func newGenerateCommand() *cobra.Command {
	var minScore, maxAttempts int
	var minDays float64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password that meets the strength criteria",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			criteria := a.cfg.Generate
			if cmd.Flags().Changed("min-score") {
				criteria.MinScore = minScore
			}
			if cmd.Flags().Changed("min-days") {
				criteria.MinDays = minDays
			}
			if cmd.Flags().Changed("max-attempts") {
				criteria.MaxAttempts = maxAttempts
			}

			return writeJSON(cmd.OutOrStdout(), a.analyzer.GenerateStrongPassword(criteria))
		},
	}
	cmd.Flags().IntVar(&minScore, "min-score", 80, "Minimum acceptable score")
	cmd.Flags().Float64Var(&minDays, "min-days", 36500, "Minimum estimated days to crack")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 10, "Candidates to try before falling back")
	return cmd
}

func newAuditCommand() *cobra.Command {
	var resultsDir string
	var save bool

	cmd := &cobra.Command{
		Use:   "audit <file>",
		Short: "Audit a file with one password per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer a.Close()

			lib := desktop.NewDesktopLib(a.analyzer, a.auditor, &desktop.Config{
				SaveResults: save,
				ResultsPath: resultsDir,
			})
			report, saved, err := lib.AuditFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if saved != "" {
				a.logger.Info("audit report saved", zap.String("path", saved))
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Also write the report to the results directory")
	cmd.Flags().StringVar(&resultsDir, "results-dir", desktop.NewDefaultConfig().ResultsPath, "Directory for saved reports")
	return cmd
}

func passwordArg(in io.Reader, args []string, fromStdin bool) (string, error) {
	if !fromStdin {
		if len(args) == 0 {
			return "", errors.New("a password argument or --stdin is required")
		}
		return args[0], nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
