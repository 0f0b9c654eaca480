package hashimecli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/signatory-io/hashime/core"
	"github.com/signatory-io/hashime/utils"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:     "config",
		Aliases: []string{"conf"},
		Short:   "hashime configuration commands",
	}
	cmd.AddCommand(newConfigInitCommand())
	return &cmd
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := cobra.Command{
		Use:   "init",
		Short: "Create new configuration file with provided parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			var conf core.Config
			conf.Default()
			if err := conf.FromCmdline(false, f); err != nil {
				return err
			}
			if err := conf.Validate(); err != nil {
				return err
			}

			buf, err := yaml.Marshal(&conf)
			if err != nil {
				return err
			}

			confPath, err := f.GetString("config-file")
			if err != nil {
				panic(err)
			}
			baseDir, err := f.GetString("base-dir")
			if err != nil {
				panic(err)
			}
			confPath = core.GetPath(confPath, core.GetBaseDir(baseDir))

			if !force {
				if _, err := os.Stat(confPath); err == nil {
					return fmt.Errorf("configuration file %s already exists, use --force to overwrite it", confPath)
				} else if !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}

			dir := filepath.Dir(confPath)
			if err := os.MkdirAll(dir, 0700); err != nil {
				return err
			}
			if err := utils.AtomicWrite(confPath, buf, 0600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is successfully created\n", confPath)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&force, "force", "F", false, "Overwrite existing configuration file")

	return &cmd
}
