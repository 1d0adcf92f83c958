package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/quantacloud/qcc/models"
)

func (c *CLI) runDevice(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: qcc device list|get")
	}

	switch args[0] {
	case "list":
		return c.deviceList(ctx, args[1:])
	case "get":
		return c.deviceGet(ctx, args[1:])
	default:
		return fmt.Errorf("unknown device command %q", args[0])
	}
}

func (c *CLI) deviceList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("device list", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	status := fs.String("status", "", `filter devices by status ("online" or "offline")`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	services, err := c.connect(ctx)
	if err != nil {
		return err
	}

	devices, err := services.Devices.List(ctx, models.DeviceStatus(*status))
	if err != nil {
		return err
	}

	overviews := make([]map[string]any, 0, len(devices))
	for _, device := range devices {
		overviews = append(overviews, device.Overview())
	}
	return c.printJSON(overviews)
}

func (c *CLI) deviceGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("device get", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	certificate := fs.Bool("certificate", false, "show the certificate of the device")
	specification := fs.Bool("specification", false, "show the specification of the device")
	status := fs.Bool("status", false, "show the status of the device")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: qcc device get [-certificate|-specification|-status] <target>")
	}
	target := fs.Arg(0)

	flags := 0
	for _, set := range []bool{*certificate, *specification, *status} {
		if set {
			flags++
		}
	}
	if flags > 1 {
		return errors.New("at most one device property can be selected")
	}

	services, err := c.connect(ctx)
	if err != nil {
		return err
	}

	switch {
	case *certificate:
		cert, err := services.Devices.Certificate(ctx, target)
		if err != nil {
			return err
		}
		return c.printJSON(cert)
	case *specification:
		spec, err := services.Devices.Specification(ctx, target)
		if err != nil {
			return err
		}
		return c.printJSON(spec)
	case *status:
		device, err := services.Devices.Get(ctx, target)
		if err != nil {
			return err
		}
		return c.printJSON(string(device.Status))
	default:
		device, err := services.Devices.Get(ctx, target)
		if err != nil {
			return err
		}
		return c.printJSON(device)
	}
}
