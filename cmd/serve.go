package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/morsely/internal/logger"
	"github.com/abhisek/morsely/internal/metrics"
	"github.com/abhisek/morsely/internal/progress"
	"github.com/abhisek/morsely/internal/scheduler"
	"github.com/abhisek/morsely/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the progress snapshot job",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			rt.cfg.Server.Addr = addr
		}
		offline, _ := cmd.Flags().GetBool("offline")

		m := metrics.New()
		svc := rt.challenges(ctx, offline)

		recorder := progress.NewRecorder(rt.tracker, rt.store.SnapshotRepo(), rt.cfg.Snapshots.Keep,
			progress.WithLogger(logger.Component(rt.log, "progress")))
		sched := scheduler.New(logger.Component(rt.log, "scheduler"))
		err = sched.Every(rt.cfg.Snapshots.Interval.Duration, "progress-snapshot", func(ctx context.Context) error {
			if _, err := recorder.Capture(ctx); err != nil {
				return err
			}
			m.ObserveSnapshot()
			return nil
		})
		if err != nil {
			return err
		}

		srv := server.NewServer(logger.Component(rt.log, "server"), server.Config{
			Addr:         rt.cfg.Server.Addr,
			WeakestCount: rt.cfg.Practice.WeakestCount,
		}, rt.tracker, svc, m)

		rt.log.Info().
			Str("addr", rt.cfg.Server.Addr).
			Str("db_driver", rt.cfg.Database.Driver).
			Dur("snapshot_interval", rt.cfg.Snapshots.Interval.Duration).
			Msg("starting morsely")

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return srv.Run(gctx) })
		g.Go(func() error { return sched.Run(gctx) })
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config and MORSELY_ADDR)")
	serveCmd.Flags().Bool("offline", false, "Never call an LLM for challenges")
}
