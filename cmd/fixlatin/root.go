package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jefersonfdasilv/encoding-fixlatin/fixlatin"
	"github.com/jefersonfdasilv/encoding-fixlatin/internal/config"
)

var (
	errTerminalInput = errors.New("refusing to read from a terminal; give a file or pipe input")
	errOutputIsInput = errors.New("output file is also an input")
)

type rootOptions struct {
	output     string
	options    []string
	bytesOnly  bool
	configPath string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fixlatin [flags] [FILE...]",
		Short: "Repair mixed ASCII, UTF-8, Latin-1 and CP1252 text into UTF-8",
		Long: `fixlatin reads text whose encoding may change from one byte to the next
and writes it back as UTF-8. Valid UTF-8 is copied unchanged. Other bytes
above 0x7F are read as Windows-1252, or ISO-8859-1 where Windows-1252
leaves a byte undefined.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// glog reads its flags from the go flag set
			_ = flag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.output, "output", "o", "", "write output to `file` instead of stdout")
	flags.StringArrayVarP(&o.options, "option", "O", nil, "set a rewrite option as `key[=bool]` (repeatable)")
	flags.BoolVar(&o.bytesOnly, "bytes-only", false, "same as -O bytes_only")
	flags.StringVar(&o.configPath, "config", "", "read rewrite options from a TOML `file`")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) (err error) {
	optionFlags := o.options
	if o.bytesOnly {
		optionFlags = append(optionFlags, fixlatin.OptionBytesOnly)
	}
	opts, err := config.Resolve(o.configPath, optionFlags)
	if err != nil {
		glog.Errorf("options: %v", err)
		return err
	}
	glog.V(1).Infof("rewrite options: bytes_only=%t", opts.BytesOnly)

	if len(args) == 0 {
		args = []string{"-"}
	}

	stdin := cmd.InOrStdin()
	for _, name := range args {
		if name == "-" && isTerminal(stdin) {
			return errTerminalInput
		}
	}

	if o.output != "" {
		for _, name := range args {
			if name != "-" && sameFile(o.output, name) {
				return errors.Wrapf(errOutputIsInput, "%s", name)
			}
		}
	}

	out := cmd.OutOrStdout()
	if o.output != "" {
		f, createErr := os.Create(o.output)
		if createErr != nil {
			return errors.Wrap(createErr, "create output")
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrap(cerr, "close output")
			}
		}()
		out = f
	}

	for _, name := range args {
		if err := fixFile(out, stdin, name); err != nil {
			glog.Errorf("%s: %v", name, err)
			return err
		}
	}
	return nil
}

func fixFile(w io.Writer, stdin io.Reader, name string) error {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	cr := &countingReader{r: r}
	n, err := fixlatin.Copy(w, cr)
	if err != nil {
		return errors.WithMessage(err, name)
	}
	glog.V(1).Infof("%s: %d bytes in, %d bytes out", name, cr.n, n)
	return nil
}

// sameFile reports whether a and b name the same file, or the same path
// when either does not exist yet.
func sameFile(a, b string) bool {
	ai, aerr := os.Stat(a)
	bi, berr := os.Stat(b)
	if aerr == nil && berr == nil {
		return os.SameFile(ai, bi)
	}
	absA, aerr := filepath.Abs(a)
	absB, berr := filepath.Abs(b)
	return aerr == nil && berr == nil && absA == absB
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
