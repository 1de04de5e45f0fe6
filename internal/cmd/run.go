package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tamzrod/badgewatch/internal/app"
	"github.com/tamzrod/badgewatch/internal/logging"
	"github.com/tamzrod/badgewatch/internal/poller/httpjson"
	"github.com/tamzrod/badgewatch/internal/view"
)

var noView bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Poll every badge until interrupted",
	Long: `Start one updater per configured badge and keep the page in sync
until SIGINT or SIGTERM. The page is redrawn on the terminal unless --no-view.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&noView, "no-view", false, "do not draw the page on stdout")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	log, err := logging.New(cmd.ErrOrStderr(), logLevel, logFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bw := cfg.Badgewatch

	client, err := httpjson.New(httpjson.Config{
		BaseURL:     bw.BaseURL,
		CookieName:  bw.Session.CookieName,
		CookieValue: bw.Session.CookieValue,
		Timeout:     time.Duration(bw.TimeoutMs) * time.Millisecond,
		HTTP2:       bw.HTTP2,
	})
	if err != nil {
		return fmt.Errorf("client build failed: %w", err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Start(ctx, cfg, app.Options{Client: client, Log: log})
	if err != nil {
		return err
	}
	defer a.Stop()

	log.Info("badgewatch running", "badges", len(a.Handles()), "base_url", bw.BaseURL)

	if noView {
		<-ctx.Done()
		return nil
	}

	drawLoop(ctx, a, time.Duration(bw.View.RefreshMs)*time.Millisecond, cmd)
	return nil
}

// drawLoop redraws only when the rendered frame changed.
func drawLoop(ctx context.Context, a *app.App, every time.Duration, cmd *cobra.Command) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	out := cmd.OutOrStdout()
	last := ""
	for {
		frame := view.Render(a.Page().Snapshot(), a.Statuses())
		if frame != last {
			fmt.Fprintln(out, frame)
			last = frame
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
