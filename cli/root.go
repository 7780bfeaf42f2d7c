// Package cli wires the date service into the pqdate command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"pqdate/core"
	"pqdate/domain"
	"pqdate/intl"
	"pqdate/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var validate = validator.New()

type Dependencies struct {
	Log     *slog.Logger
	Service services.IDateService
	// Options holds the configured display defaults; flags override them per call.
	Options intl.Options
	Colours bool
}

type displayFlags struct {
	Locale    string `validate:"omitempty,oneof=en-US es-ES"`
	DateStyle string `validate:"omitempty,oneof=short medium long"`
	TimeStyle string `validate:"omitempty,oneof=short medium long"`
	ShowLocal bool
}

type app struct {
	Dependencies
	display displayFlags
}

// NewRootCommand builds the pqdate command tree. Errors are returned from
// Execute, never printed by cobra itself.
func NewRootCommand(deps Dependencies) *cobra.Command {
	a := &app{Dependencies: deps}

	root := &cobra.Command{
		Use:           "pqdate",
		Short:         "UTC-first date arithmetic on ISO 8601 dates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(a.display); err != nil {
				return fmt.Errorf("invalid display flags: %w", err)
			}
			a.Log.Debug("Running command", "run", uuid.NewString(), "command", cmd.Name(), "args", args)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.display.Locale, "locale", "", "Locale for local rendering (en-US, es-ES)")
	flags.StringVar(&a.display.DateStyle, "date-style", "", "Date style for local rendering (short, medium, long)")
	flags.StringVar(&a.display.TimeStyle, "time-style", "", "Time style for local rendering (short, medium, long)")
	flags.BoolVarP(&a.display.ShowLocal, "show-local", "l", false, "Also render results in the local time zone")

	root.AddCommand(
		a.parseCommand(),
		a.shiftCommand("add", "Add a duration to a date", false),
		a.shiftCommand("sub", "Subtract a duration from a date", true),
		a.boundsCommand("start", "Start of the UTC day, month or year", true),
		a.boundsCommand("end", "End of the UTC day, month or year", false),
		a.orderCommand("before", "Whether the first date is strictly before the second", true),
		a.orderCommand("after", "Whether the first date is strictly after the second", false),
		a.sameCommand(),
		a.diffCommand(),
		a.withinCommand(),
		a.localCommand(),
		a.lastBusinessDayCommand(),
		a.calendarCommand(),
	)
	return root
}

// options merges the flags over the configured defaults.
func (a *app) options() intl.Options {
	opts := a.Options
	if a.display.Locale != "" {
		opts.Locale = intl.Locale(a.display.Locale)
	}
	if a.display.DateStyle != "" {
		opts.DateStyle = intl.Style(a.display.DateStyle)
	}
	if a.display.TimeStyle != "" {
		opts.TimeStyle = intl.Style(a.display.TimeStyle)
	}
	return opts
}

func (a *app) printInstant(w io.Writer, i domain.Instant) error {
	if !a.display.ShowLocal {
		s, err := core.FormatISO(i)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, a.paint(color.FgCyan, s))
		return err
	}
	desc, err := a.Service.Describe(i, a.options())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\t%s\n", a.paint(color.FgCyan, desc.ISO), desc.Local)
	return err
}

func (a *app) printBool(w io.Writer, b bool) error {
	if b {
		_, err := fmt.Fprintln(w, a.paint(color.FgGreen, "true"))
		return err
	}
	_, err := fmt.Fprintln(w, a.paint(color.FgRed, "false"))
	return err
}

func (a *app) paint(c color.Color, s string) string {
	if !a.Colours {
		return s
	}
	return color.New(c).Render(s)
}

// RenderError formats a command failure for the terminal.
func RenderError(err error, colours bool) string {
	msg := fmt.Sprintf("Error: %v", err)
	if colours {
		return color.New(color.FgRed, color.OpBold).Render(msg)
	}
	return msg
}

// optionalArg returns args[n] or "" so the service falls back to the clock.
func optionalArg(args []string, n int) string {
	if n < len(args) {
		return args[n]
	}
	return ""
}
