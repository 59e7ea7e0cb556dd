// Package cli implements the pwstrength command line.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/pwstrength/internal/config"
	"github.com/vaultpass/pwstrength/internal/logging"
	"github.com/vaultpass/pwstrength/internal/model"
	"github.com/vaultpass/pwstrength/internal/password"
	"github.com/vaultpass/pwstrength/internal/service"
)

const (
	msgInvalidLevel = "Invalid level. Choose from: low, intermediate, strong."
	msgInvalidInput = "Invalid input. Use --help for usage."
)

type rootOptions struct {
	password string
	generate string
	prompt   bool
	details  bool
	jsonOut  bool
	noColor  bool
	count    int

	newGenerator func() *password.Generator
}

// NewRootCmd builds the pwstrength command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{newGenerator: password.NewRandomGenerator}

	cmd := &cobra.Command{
		Use:   "pwstrength",
		Short: "Classify password strength and generate passwords",
		Long: `pwstrength classifies a password as Low, Intermediate or Strong,
or generates a random password for one of those levels.

  Strong        12+ characters with uppercase, lowercase, digit and symbol
  Intermediate  8+ characters with lowercase and digit
  Low           anything else`,
		Example: `  pwstrength --password 'Abcdefghijk1!'
  pwstrength --generate strong
  pwstrength --generate intermediate --count 5 --json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv()
			level := os.Getenv("LOG_LEVEL")
			if level == "" {
				level = "warn"
			}
			logger, err := logging.New(level, os.Getenv("LOG_FORMAT"), cmd.ErrOrStderr())
			if err != nil {
				// A bad logging setting must not stop classify or generate.
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; using warn level text logs\n", err)
				if logger, err = logging.New("warn", "text", cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			slog.SetDefault(logger)
			return nil
		},
		RunE: o.run,
	}

	f := cmd.Flags()
	f.StringVarP(&o.password, "password", "p", "", "password to classify")
	f.StringVarP(&o.generate, "generate", "g", "", "generate a password for a level: low, intermediate or strong")
	f.BoolVar(&o.prompt, "prompt", false, "read the password to classify from the terminal without echo")
	f.BoolVarP(&o.details, "details", "d", false, "show character classes, missing requirements and a zxcvbn estimate")
	f.BoolVar(&o.jsonOut, "json", false, "print JSON instead of text")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	f.IntVarP(&o.count, "count", "n", 1, "number of passwords to generate")

	cmd.AddCommand(newServeCmd(), newTokenCmd(), newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	out := cmd.OutOrStdout()

	switch {
	case flags.Changed("password") || o.prompt:
		pw := o.password
		if o.prompt {
			var err error
			if pw, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
				return err
			}
		}
		return o.classify(out, pw)
	case flags.Changed("generate"):
		return o.generatePasswords(out)
	case len(args) == 0 && flags.NFlag() == 0:
		return cmd.Help()
	default:
		fmt.Fprintln(out, msgInvalidInput)
		return nil
	}
}

func (o *rootOptions) classify(out io.Writer, pw string) error {
	svc := service.NewStrengthService(o.newGenerator())
	classify := svc.Classify
	if o.details || o.jsonOut {
		classify = svc.ClassifyWithEstimate
	}
	resp, err := classify(model.ClassifyRequest{Password: &pw})
	if err != nil {
		return err
	}

	if o.jsonOut {
		return writeJSON(out, resp)
	}

	st := newStyles(out, o.noColor)
	fmt.Fprintln(out, st.level(resp.Strength))
	if o.details {
		printDetails(out, st, resp)
	}
	return nil
}

func (o *rootOptions) generatePasswords(out io.Writer) error {
	if strings.TrimSpace(o.generate) == "" {
		fmt.Fprintln(out, msgInvalidLevel)
		return nil
	}
	if o.count < 1 || o.count > service.MaxCount {
		fmt.Fprintf(out, "Invalid count. Choose a value between 1 and %d.\n", service.MaxCount)
		return nil
	}

	svc := service.NewStrengthService(o.newGenerator())
	resp, err := svc.Generate(model.GenerateRequest{Level: o.generate, Count: o.count})
	switch {
	case errors.Is(err, password.ErrInvalidLevel):
		fmt.Fprintln(out, msgInvalidLevel)
		return nil
	case err != nil:
		return err
	}

	if o.jsonOut {
		return writeJSON(out, resp)
	}

	passwords := resp.Passwords
	if passwords == nil {
		passwords = []string{resp.Password}
	}
	for _, pw := range passwords {
		fmt.Fprintln(out, pw)
	}
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
