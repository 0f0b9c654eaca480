package hashimecli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signatory-io/hashime/core"
	"github.com/signatory-io/hashime/crypto"
	"github.com/signatory-io/hashime/randomart"
	"github.com/signatory-io/hashime/ui"
	"github.com/signatory-io/hashime/utils"
	"github.com/spf13/cobra"
)

var Version = "dev"

const stdinName = "-"

func NewRootCommand() *cobra.Command {
	var (
		topText    string
		bottomText string
		output     string
		list       bool
	)

	cmd := cobra.Command{
		Use:           "hashime [options] [FILE]",
		Short:         "Hash visualization tool",
		Long:          "Hash FILE (standard input by default) and draw the digest as random art",
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return printList(cmd.OutOrStdout())
			}

			f := cmd.Flags()
			var conf core.Config
			conf.Default()
			if err := conf.FromCmdline(true, f); err != nil {
				return err
			}
			if err := conf.Validate(); err != nil {
				return err
			}
			log := core.NewLogger(conf.LogLevel, cmd.ErrOrStderr())

			input := stdinName
			if len(args) != 0 {
				input = args[0]
			}

			q := renderRequest{
				conf:   &conf,
				name:   filepath.Base(input),
				top:    filepath.Base(input),
				bottom: strings.ToUpper(conf.HashFunction),
				log:    log,
			}
			if f.Changed("top-text") {
				q.top = topText
			}
			if f.Changed("bottom-text") {
				q.bottom = bottomText
			}
			if conf.Format == "text" {
				if output == stdinName {
					stdout, _ := cmd.OutOrStdout().(*os.File)
					q.color = ui.UseColor(conf.Color, stdout)
				} else {
					q.color = ui.UseColor(conf.Color, nil)
				}
			}

			var r io.Reader
			if input == stdinName {
				r = cmd.InOrStdin()
				if stdin, ok := r.(*os.File); ok && ui.IsTerminal(stdin) {
					log.Infof("reading from standard input, press Ctrl-D to finish")
				}
			} else {
				fd, err := os.Open(input)
				if err != nil {
					return err
				}
				defer fd.Close()
				r = fd
			}

			out, err := q.render(r)
			if err != nil {
				return err
			}

			if output == stdinName {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := utils.AtomicWrite(output, out, 0644); err != nil {
				return err
			}
			log.With("file", output).Infof("art written")
			return nil
		},
	}

	var conf core.Config
	conf.Default()
	conf.RegisterFlags(cmd.PersistentFlags(), &cmd)

	f := cmd.Flags()
	f.StringVar(&topText, "top-text", "", "Text on the top frame line (defaults to the input file name)")
	f.StringVar(&bottomText, "bottom-text", "", "Text on the bottom frame line (defaults to the hash function name)")
	f.StringVarP(&output, "output", "o", stdinName, "Output file (defaults to stdout)")
	f.BoolVarP(&list, "list", "L", false, "Show visualization algorithms, hashing functions, digest forms and exit")

	cmd.MarkFlagFilename("output")
	cmd.AddCommand(newConfigCommand())

	return &cmd
}

func printList(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Algorithms:\n    %s\nHash Functions:\n    %s\nDigest Forms:\n    %s\nOutput Formats:\n    %s\n",
		strings.Join(randomart.Names(), ", "),
		strings.Join(crypto.Hashes(), ", "),
		strings.Join(core.DigestForms, ", "),
		strings.Join(core.Formats, ", "),
	)
	return err
}
