package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	// needed for profiling
	_ "net/http/pprof"

	"github.com/asaskevich/govalidator"
	"github.com/brave-intl/airdrop-go/airdrop"
	cmdutils "github.com/brave-intl/airdrop-go/libs/cmd"
	"github.com/brave-intl/airdrop-go/libs/clients"
	appctx "github.com/brave-intl/airdrop-go/libs/context"
	errorutils "github.com/brave-intl/airdrop-go/libs/errors"
	"github.com/brave-intl/airdrop-go/libs/handlers"
	"github.com/brave-intl/airdrop-go/libs/logging"
	"github.com/brave-intl/airdrop-go/libs/middleware"
	srv "github.com/brave-intl/airdrop-go/libs/service"
	sentry "github.com/getsentry/sentry-go"
	"github.com/go-chi/chi"
	chiware "github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// ServeCmd start up the airdrop server
	ServeCmd = &cobra.Command{
		Use:   "serve",
		Short: "subcommand to start up airdrop server",
		Run:   cmdutils.Perform("serve", RunAirdropServer),
	}
)

func init() {
	cmdutils.RootCmd.AddCommand(ServeCmd)

	flagBuilder := cmdutils.NewFlagBuilder(ServeCmd)

	flagBuilder.Flag().Bool("enable-job-workers", true,
		"enable job workers (defaults true)").
		Bind("enable-job-workers").
		Env("ENABLE_JOB_WORKERS")

	flagBuilder.Flag().String("custody-account", "",
		"the custodian account holding campaign reserves").
		Bind("custody-account").
		Env("CUSTODY_ACCOUNT")

	flagBuilder.Flag().StringSlice("admin-access-tokens", []string{},
		"bearer tokens granted the admin role at startup").
		Bind("admin-access-tokens").
		Env("ADMIN_ACCESS_TOKENS")

	flagBuilder.Flag().StringSlice("super-admin-access-tokens", []string{},
		"bearer tokens granted the super admin role at startup").
		Bind("super-admin-access-tokens").
		Env("SUPER_ADMIN_ACCESS_TOKENS")

	flagBuilder.Flag().Duration("root-cache-expiry", 1*time.Minute,
		"the campaign root cache default eviction duration").
		Bind("root-cache-expiry").
		Env("ROOT_CACHE_EXPIRY")

	flagBuilder.Flag().Duration("root-cache-purge", 2*time.Minute,
		"the campaign root cache default purge duration").
		Bind("root-cache-purge").
		Env("ROOT_CACHE_PURGE")

	flagBuilder.Flag().String("kafka-brokers", "",
		"the kafka broker list for campaign event emission").
		Bind("kafka-brokers").
		Env("KAFKA_BROKERS")
}

func setupRouter(ctx context.Context, logger *zerolog.Logger) (context.Context, *chi.Mux, *airdrop.Service, []srv.Job) {
	buildTime := ctx.Value(appctx.BuildTimeCTXKey).(string)
	commit := ctx.Value(appctx.CommitCTXKey).(string)
	version := ctx.Value(appctx.VersionCTXKey).(string)

	// runnable jobs for the services created
	jobs := []srv.Job{}

	govalidator.SetFieldsRequiredByDefault(true)

	r := chi.NewRouter()

	// chain should be:
	// id / transfer -> ip -> heartbeat -> request logger / recovery -> token check -> rate limit
	// -> instrumentation -> handler
	r.Use(chiware.RequestID)
	r.Use(middleware.RequestIDTransfer)

	// NOTE: This uses standard fowarding headers, note that this puts implicit trust in the header values
	// provided to us. In particular it uses the first element.
	// Consequently we should consider the request IP as primarily "informational".
	r.Use(chiware.RealIP)

	r.Use(chiware.Heartbeat("/"))
	// log and recover here
	if logger != nil {
		// Also handles panic recovery
		r.Use(hlog.NewHandler(*logger))
		r.Use(hlog.UserAgentHandler("user_agent"))
		r.Use(hlog.RequestIDHandler("req_id", "Request-Id"))
		r.Use(middleware.RequestLogger(logger))
	}
	// now we have middlewares we want included in logging
	r.Use(chiware.Timeout(15 * time.Second))
	r.Use(middleware.BearerToken)
	if os.Getenv("ENV") == "production" {
		r.Use(middleware.RateLimiter(ctx, 180))
	}

	airdropDB, airdropRODB, err := airdrop.NewPostgres()
	if err != nil {
		logger.Panic().Err(err).Msg("unable connect to airdrop db")
	}

	airdropService, err := airdrop.InitService(ctx, airdropDB, airdropRODB)
	if err != nil {
		sentry.CaptureException(err)
		logger.Panic().Err(err).Msg("Airdrop service initialization failed")
	}

	// add runnable jobs:
	jobs = append(jobs, airdropService.Jobs()...)

	r.Mount("/v1/airdrop", airdrop.Router(airdropService))

	// add profiling flag to enable profiling routes
	if os.Getenv("PPROF_ENABLED") != "" {
		// pprof attaches routes to default serve mux
		// host:6061/debug/pprof/
		go func() {
			log.Error().Err(http.ListenAndServe(":6061", http.DefaultServeMux))
		}()
	}

	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("buildTime", buildTime).
		Msg("server starting up")

	r.Get("/health-check", handlers.HealthCheckHandler(version, buildTime, commit, nil))

	return ctx, r, airdropService, jobs
}

func jobWorker(ctx context.Context, job func(context.Context) (bool, error), duration time.Duration) {
	logger, err := appctx.GetLogger(ctx)
	if err != nil {
		ctx, logger = logging.SetupLogger(ctx)
	}
	for {
		_, err := job(ctx)
		if err != nil {
			log := logger.Error().Err(err)
			httpError, ok := err.(*errorutils.ErrorBundle)
			if ok {
				state, ok := httpError.Data().(clients.HTTPState)
				if ok {
					log = log.Int("status", state.Status).
						Str("path", state.Path).
						Interface("data", state.Body)
				}
			}
			log.Msg("error encountered in job run")
			sentry.CaptureException(err)
		}
		// regardless if attempted or not, wait for the duration until retrying
		<-time.After(duration)
	}
}

// RunAirdropServer is the runner for starting up the airdrop server
func RunAirdropServer(cmd *cobra.Command, args []string) error {
	enableJobWorkers, err := cmd.Flags().GetBool("enable-job-workers")
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	// add flags to context
	ctx = context.WithValue(ctx, appctx.CustodyAccountCTXKey, viper.GetString("custody-account"))
	ctx = context.WithValue(ctx, appctx.AdminAccessTokensCTXKey, viper.GetStringSlice("admin-access-tokens"))
	ctx = context.WithValue(ctx, appctx.SuperAdminAccessTokensCTXKey, viper.GetStringSlice("super-admin-access-tokens"))
	ctx = context.WithValue(ctx, appctx.RootCacheExpiryDurationCTXKey, viper.GetDuration("root-cache-expiry"))
	ctx = context.WithValue(ctx, appctx.RootCachePurgeDurationCTXKey, viper.GetDuration("root-cache-purge"))
	if brokers := viper.GetString("kafka-brokers"); len(brokers) > 0 {
		ctx = context.WithValue(ctx, appctx.KafkaBrokersCTXKey, brokers)
	}

	return AirdropServer(
		ctx,
		enableJobWorkers,
	)
}

// AirdropServer runs the airdrop server
func AirdropServer(
	ctx context.Context,
	enableJobWorkers bool,
) error {
	logger, err := appctx.GetLogger(ctx)
	if err != nil {
		ctx, logger = logging.SetupLogger(ctx)
	}

	sentryDsn := os.Getenv("SENTRY_DSN")
	if sentryDsn != "" {
		buildTime := ctx.Value(appctx.BuildTimeCTXKey).(string)
		commit := ctx.Value(appctx.CommitCTXKey).(string)
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     sentryDsn,
			Release: fmt.Sprintf("airdrop@%s-%s", commit, buildTime),
		})
		defer sentry.Flush(2 * time.Second)
		if err != nil {
			logger.Panic().Err(err).Msg("unable to setup reporting!")
		}
	}
	logger.Info().
		Str("prefix", "main").
		Msg("Starting server")

	ctx, r, _, jobs := setupRouter(ctx, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if enableJobWorkers {
		for _, job := range jobs {
			// iterate over jobs
			for i := 0; i < job.Workers; i++ {
				// spin up a job worker for each worker
				logger.Debug().Msg("starting job worker")
				go jobWorker(ctx, job.Func, job.Cadence)
			}
		}
	}

	go func() {
		err := http.ListenAndServe(":9090", middleware.Metrics())
		if err != nil {
			sentry.CaptureException(err)
			logger.Panic().Err(err).Msg("metrics HTTP server start failed!")
		}
	}()

	srv := http.Server{
		Addr:         ":3333",
		Handler:      chi.ServerBaseContext(ctx, r),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 20 * time.Second,
	}
	err = srv.ListenAndServe()
	if err != nil {
		sentry.CaptureException(err)
		logger.Panic().Err(err).Msg("HTTP server start failed!")
	}
	return nil
}
