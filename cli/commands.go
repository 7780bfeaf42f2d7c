package cli

import (
	"fmt"
	"pqdate/domain"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <date>",
		Short: "Parse an ISO 8601 date and print it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := a.Service.Resolve(args[0])
			if err != nil {
				return err
			}
			return a.printInstant(cmd.OutOrStdout(), i)
		},
	}
}

// durationFlags only sets the fields passed on the command line, so an
// omitted flag stays absent instead of becoming zero.
type durationFlags struct {
	years, months, days, hours, minutes, seconds int
}

func (f *durationFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&f.years, "years", "y", 0, "Years to apply")
	flags.IntVarP(&f.months, "months", "M", 0, "Months to apply")
	flags.IntVarP(&f.days, "days", "d", 0, "Days to apply")
	flags.IntVarP(&f.hours, "hours", "H", 0, "Hours to apply")
	flags.IntVarP(&f.minutes, "minutes", "m", 0, "Minutes to apply")
	flags.IntVarP(&f.seconds, "seconds", "s", 0, "Seconds to apply")
}

func (f *durationFlags) duration(cmd *cobra.Command) domain.Duration {
	var d domain.Duration
	set := func(name string, v int, dst **int) {
		if cmd.Flags().Changed(name) {
			value := v
			*dst = &value
		}
	}
	set("years", f.years, &d.Years)
	set("months", f.months, &d.Months)
	set("days", f.days, &d.Days)
	set("hours", f.hours, &d.Hours)
	set("minutes", f.minutes, &d.Minutes)
	set("seconds", f.seconds, &d.Seconds)
	return d
}

func (a *app) shiftCommand(use, short string, backwards bool) *cobra.Command {
	var flags durationFlags
	cmd := &cobra.Command{
		Use:   use + " [date]",
		Short: short,
		Long: short + `.

Years and months clamp to the end of the target month (Jan 31 + 1 month is
the last day of February). Days, hours, minutes and seconds are exact offsets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.Service.Shift(optionalArg(args, 0), flags.duration(cmd), backwards)
			if err != nil {
				return err
			}
			return a.printInstant(cmd.OutOrStdout(), r)
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) boundsCommand(use, short string, start bool) *cobra.Command {
	return &cobra.Command{
		Use:       use + " <day|month|year> [date]",
		Short:     short,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{string(domain.Day), string(domain.Month), string(domain.Year)},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Service.Bounds(optionalArg(args, 1), domain.Unit(args[0]))
			if err != nil {
				return err
			}
			if start {
				return a.printInstant(cmd.OutOrStdout(), b.Start)
			}
			return a.printInstant(cmd.OutOrStdout(), b.End)
		},
	}
}

func (a *app) orderCommand(use, short string, before bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <date> <other>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.Service.Order(args[0], args[1])
			if err != nil {
				return err
			}
			if before {
				return a.printBool(cmd.OutOrStdout(), c.Before)
			}
			return a.printBool(cmd.OutOrStdout(), c.After)
		},
	}
}

func (a *app) sameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "same <day|month|year> <date> <other>",
		Short: "Whether two dates share the same UTC day, month or year",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.Service.Compare(args[1], args[2], domain.Unit(args[0]))
			if err != nil {
				return err
			}
			return a.printBool(cmd.OutOrStdout(), c.Same)
		},
	}
}

func (a *app) diffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <date> [other]",
		Short: "Calendar days from other (default now) to date",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := a.Service.DiffDays(args[0], optionalArg(args, 1))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), days)
			return err
		},
	}
}

func (a *app) withinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "within <date> <start> <end>",
		Short: "Whether date lies in the inclusive interval [start, end]",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			within, err := a.Service.Within(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return a.printBool(cmd.OutOrStdout(), within)
		},
	}
}

func (a *app) localCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "local [date]",
		Short: "Relabel a UTC date so its local wall clock shows the UTC numbers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := a.Service.Local(optionalArg(args, 0))
			if err != nil {
				return err
			}
			return a.printInstant(cmd.OutOrStdout(), i)
		},
	}
}

func (a *app) lastBusinessDayCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "lbd [date]",
		Aliases: []string{"last-business-day"},
		Short:   "Last Monday to Friday day of the date's UTC month",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := a.Service.LastBusinessDay(optionalArg(args, 0))
			if err != nil {
				return err
			}
			return a.printInstant(cmd.OutOrStdout(), i)
		},
	}
}

func (a *app) calendarCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [year]",
		Short: "Month boundaries and last business days of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := a.year(optionalArg(args, 0))
			if err != nil {
				return err
			}
			months, err := a.Service.Calendar(year)
			if err != nil {
				return err
			}
			return a.renderCalendar(cmd.OutOrStdout(), months)
		},
	}
}

func (a *app) year(arg string) (int, error) {
	if arg == "" {
		now, err := a.Service.Resolve("")
		if err != nil {
			return 0, err
		}
		return now.UTC().Year(), nil
	}
	year, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", arg, err)
	}
	return year, nil
}
