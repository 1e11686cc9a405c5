package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pamudauposath/portfolio/internal/browse"
	"github.com/pamudauposath/portfolio/internal/config"
	"github.com/pamudauposath/portfolio/internal/content"
	"github.com/pamudauposath/portfolio/internal/logging"
	"github.com/pamudauposath/portfolio/internal/site"
)

const defaultPublicDir = "public"

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.logger = logging.Init(level, cmd.ErrOrStderr())
	return nil
}

func (a *app) site() (*site.Site, error) {
	data, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return site.New(data, a.cfg), nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Build and preview the portfolio site",
		Long: `portfolio renders the single-page portfolio and every state of its
paginated, filtered and carousel sections as static HTML fragments.`,
		Version: version,
		// Errors are reported by cobra; usage only on flag mistakes.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	cmd.SetVersionTemplate(`{{printf "portfolio version %s\n" .Version}}`)
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is "+config.DefaultPath+")")

	cmd.AddCommand(newBuildCmd(a))
	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newBrowseCmd(a))
	cmd.AddCommand(newStatsCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newBuildCmd(a *app) *cobra.Command {
	var out, public string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				a.cfg.OutDir = out
			}
			s, err := a.site()
			if err != nil {
				return err
			}
			tmpl, err := parseTemplates()
			if err != nil {
				return err
			}
			b := &builder{site: s, tmpl: tmpl, out: a.cfg.OutDir, public: public, logger: a.logger}
			n, err := b.Build()
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			a.logger.Info("site built", "out", a.cfg.OutDir, "files", n, "base", a.cfg.BasePath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (overrides out_dir)")
	cmd.Flags().StringVar(&public, "public", defaultPublicDir, "directory of images and documents copied as is")
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var addr, public string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the site, rendering fragments on demand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Addr = addr
			}
			s, err := a.site()
			if err != nil {
				return err
			}
			tmpl, err := parseTemplates()
			if err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)
			router, err := newRouter(s, tmpl, public, a.logger)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}, a.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides addr and PORT)")
	cmd.Flags().StringVar(&public, "public", defaultPublicDir, "directory of images and documents served as is")
	return cmd
}

// serve runs srv until ctx is cancelled or an interrupt arrives.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("preview server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the portfolio in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the browser now.
			slog.SetDefault(logging.Discard())
			s, err := a.site()
			if err != nil {
				return err
			}
			return browse.Run(cmd.Context(), s)
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the hero statistics and section sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.site()
			if err != nil {
				return err
			}
			return printStats(cmd.OutOrStdout(), s)
		},
	}
}

func printStats(w io.Writer, s *site.Site) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, st := range s.Stats() {
		fmt.Fprintf(tw, "%s\t%s\n", st.Label, st.Value)
	}
	fmt.Fprintf(tw, "Top Tech\t%s\n", strings.Join(content.TopTechStack(s.Data.Projects, s.Config.TopTechLimit), ", "))
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SECTION\tSTATES\tDETAILS")
	for _, sec := range s.Sections() {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", sec.Name(), len(sec.States()), len(sec.DetailKeys()))
	}
	return tw.Flush()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of portfolio",
		Args:  cobra.NoArgs,
		// No config needed to print a version.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "portfolio version %s\n", version)
		},
	}
}
