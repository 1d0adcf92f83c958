package cli

import (
	"errors"
	"fmt"
)

func (c *CLI) runConfig(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: qcc config get|set|list")
	}

	switch args[0] {
	case "get":
		if len(args) != 2 {
			return errors.New("usage: qcc config get <name>")
		}
		return c.configGet(args[1])
	case "set":
		if len(args) != 3 {
			return errors.New("usage: qcc config set <name> <value>")
		}
		return c.configSet(args[1], args[2])
	case "list":
		return c.printJSON(c.settings.Map())
	default:
		return fmt.Errorf("unknown config command %q", args[0])
	}
}

func (c *CLI) configGet(name string) error {
	value, err := c.settings.Value(name)
	if err != nil {
		return err
	}
	return c.printJSON(value)
}

func (c *CLI) configSet(name, value string) error {
	if err := c.settings.Set(name, value); err != nil {
		return err
	}
	if err := c.settings.Save(); err != nil {
		return err
	}

	c.printSuccess(fmt.Sprintf("Saved %s to %s.", name, c.settings.FilePath))
	return nil
}
