package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/quantacloud/qcc/internal/tui"
	"github.com/quantacloud/qcc/models"
)

func (c *CLI) runJob(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: qcc job submit|get|list|cancel|watch")
	}

	switch args[0] {
	case "submit":
		return c.jobSubmit(ctx, args[1:])
	case "get":
		return c.jobGet(ctx, args[1:])
	case "list":
		return c.jobList(ctx, args[1:])
	case "cancel":
		return c.jobCancel(ctx, args[1:])
	case "watch":
		return c.jobWatch(ctx, args[1:])
	default:
		return fmt.Errorf("unknown job command %q", args[0])
	}
}

func (c *CLI) jobSubmit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("job submit", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	name := fs.String("name", "", "name of the job")
	target := fs.String("target", "", "device the job should run on")
	circuit := fs.String("circuit", "", "circuit source of the job")
	language := fs.String("language", "blackbird:1.0", "circuit language of the job")
	wait := fs.Bool("wait", false, "block until the job finishes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *target == "" || *circuit == "" {
		return errors.New("job submit requires -target and -circuit")
	}

	services, err := c.connect(ctx)
	if err != nil {
		return err
	}

	job, err := services.Jobs.Submit(ctx, models.SubmitJobRequest{
		Name: *name,
		// Shells eat real newlines, so accept them escaped.
		Circuit:  strings.ReplaceAll(*circuit, `\n`, "\n"),
		Target:   *target,
		Language: *language,
	})
	if err != nil {
		return err
	}

	if *wait {
		if job, err = services.Jobs.Wait(ctx, job.ID, 0); err != nil {
			return err
		}
	}
	return c.printJSON(job)
}

func (c *CLI) jobGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("job get", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	circuit := fs.Bool("circuit", false, "show the circuit of the job")
	result := fs.Bool("result", false, "show the result of the job")
	status := fs.Bool("status", false, "show the status of the job")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: qcc job get [-circuit|-result|-status] <id>")
	}
	id := fs.Arg(0)

	flags := 0
	for _, set := range []bool{*circuit, *result, *status} {
		if set {
			flags++
		}
	}
	if flags > 1 {
		return errors.New("at most one job property can be selected")
	}

	services, err := c.connect(ctx)
	if err != nil {
		return err
	}

	switch {
	case *circuit:
		jobCircuit, err := services.Jobs.Circuit(ctx, id)
		if err != nil {
			return err
		}
		return c.printJSON(jobCircuit)
	case *result:
		payload, err := services.Jobs.Result(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, string(payload))
		return nil
	case *status:
		job, err := services.Jobs.Get(ctx, id)
		if err != nil {
			return err
		}
		return c.printJSON(string(job.Status))
	default:
		job, err := services.Jobs.Get(ctx, id)
		if err != nil {
			return err
		}
		return c.printJSON(job)
	}
}

func (c *CLI) jobList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("job list", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	limit := fs.Int("limit", 10, "maximum number of jobs to display")
	status := fs.String("status", "", "filter jobs by status")
	cached := fs.Bool("cached", false, "list jobs from the local cache without network access")
	if err := fs.Parse(args); err != nil {
		return err
	}

	services, err := c.connect(ctx)
	if err != nil {
		return err
	}

	var jobs []models.Job
	if *cached {
		jobs, err = services.Jobs.ListCached(ctx, *limit)
	} else {
		jobs, err = services.Jobs.List(ctx, models.JobListFilter{
			Limit:  *limit,
			Status: models.JobStatus(*status),
		})
	}
	if err != nil {
		return err
	}

	return c.printJSON(jobs)
}

func (c *CLI) jobCancel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: qcc job cancel <id>")
	}

	services, err := c.connect(ctx)
	if err != nil {
		return err
	}

	if err = services.Jobs.Cancel(ctx, args[0]); err != nil {
		return err
	}

	c.printSuccess(fmt.Sprintf("Requested cancellation of job %s.", args[0]))
	return nil
}

func (c *CLI) jobWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("job watch", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	interval := fs.Duration("interval", 0, "delay between status polls (default from settings)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: qcc job watch [-interval d] <id>")
	}

	services, err := c.connect(ctx)
	if err != nil {
		return err
	}

	pollInterval := *interval
	if pollInterval <= 0 {
		pollInterval = c.settings.PollInterval
	}
	if pollInterval <= 0 {
		pollInterval = time.Second
	}

	job, err := tui.WatchJob(ctx, services.Jobs, fs.Arg(0), pollInterval)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return c.printJSON(job)
}
