package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/quantacloud/qcc/internal/adapter"
	"github.com/quantacloud/qcc/internal/config"
	"github.com/quantacloud/qcc/internal/logger"
	"github.com/quantacloud/qcc/internal/service"
	"github.com/quantacloud/qcc/internal/store"
)

// CLI holds the dependencies shared by all commands. Settings are loaded
// once per invocation; the cloud connection is established only by the
// commands that need one.
type CLI struct {
	settings *config.Settings
	version  string
	logger   *logger.Logger

	stdout io.Writer
	stderr io.Writer

	// services is populated lazily by connect.
	services *service.Services
}

// New constructs the CLI with resolved settings. version is the build
// version string shown by `qcc version`.
func New(settings *config.Settings, version string, log *logger.Logger, stdout, stderr io.Writer) *CLI {
	return &CLI{
		settings: settings,
		version:  version,
		logger:   log,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Run dispatches args (without the program name) to the matching command.
// The returned error has already been printed to stderr; main only needs
// to translate it into a non-zero exit code.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.fail(usage())
	}

	var err error
	switch args[0] {
	case "config":
		err = c.runConfig(args[1:])
	case "ping":
		err = c.runPing(ctx)
	case "device":
		err = c.runDevice(ctx, args[1:])
	case "job":
		err = c.runJob(ctx, args[1:])
	case "version":
		fmt.Fprintf(c.stdout, "qcc version %s\n", c.version)
	case "help", "-h", "--help":
		fmt.Fprintln(c.stdout, usage())
	default:
		err = fmt.Errorf("unknown command %q\n%s", args[0], usage())
	}

	if err != nil {
		return c.fail(err)
	}
	return nil
}

// connect builds the transport adapter and service layer on first use.
// The job cache database is opened best-effort: if it cannot be opened the
// client still works, only without `job list --cached`.
func (c *CLI) connect(ctx context.Context) (*service.Services, error) {
	if c.services != nil {
		return c.services, nil
	}

	cloudAdapter, err := adapter.NewHTTPCloudAdapter(c.settings, c.logger)
	if err != nil {
		return nil, err
	}

	var cache store.JobCacheRepository
	db, err := store.NewConnectSQLite(ctx, "", c.logger)
	if err != nil {
		c.logger.Warn().Err(err).Msg("job cache unavailable")
	} else if err = db.Migrate(); err != nil {
		c.logger.Warn().Err(err).Msg("job cache migration failed")
	} else {
		cache = store.NewJobCacheRepository(db, c.logger)
	}

	c.services = service.NewServices(cloudAdapter, cache, c.settings.PollInterval, c.logger)
	return c.services, nil
}

func (c *CLI) runPing(ctx context.Context) error {
	services, err := c.connect(ctx)
	if err != nil {
		return err
	}

	if err = services.Ping(ctx); err != nil {
		return err
	}

	c.printSuccess("Successfully connected to the cloud.")
	return nil
}

func usage() error {
	return fmt.Errorf(`usage: qcc <command> [arguments]

commands:
  config get <name>              print one setting
  config set <name> <value>      change and persist a setting
  config list                    print all settings
  ping                           test the connection to the cloud
  device list [-status s]        list devices
  device get [flags] <target>    inspect one device
  job submit [flags]             submit a job
  job get [flags] <id>           inspect one job
  job list [-limit n] [-cached]  list jobs
  job cancel <id>                cancel a job
  job watch [-interval d] <id>   watch a job until it finishes
  version                        print the client version`)
}
