package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/A-Alhammadi/Intro-to-AI/server"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve route queries over HTTP",
		Example: "  waypath serve --addr :8080 --log-format json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, g)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			if a.cfg.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			p, err := a.planner()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(p, server.Options{
				Addr:            a.cfg.Server.Addr,
				ReadTimeout:     a.cfg.Server.ReadTimeout,
				WriteTimeout:    a.cfg.Server.WriteTimeout,
				ShutdownGrace:   a.cfg.Server.ShutdownGrace,
				DefaultStrategy: a.cfg.Strategy(),
				MaxDepth:        a.cfg.Search.MaxDepth,
				Logger:          a.logger,
			})

			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
