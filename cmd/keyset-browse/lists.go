package main

import (
	"strconv"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/spf13/cobra"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/fitness"
	"github.com/nrfta/keyset-go/sqlboiler"
)

type exerciseFlags struct {
	name                string
	pushOrPull          []string
	dynamicOrStatic     []string
	straightOrBent      []string
	squatOrHinge        []string
	upperOrLower        []string
	compoundOrIsolation []string
	leverVariation      []string
	grip                []string
	gripWidth           []string
}

func (x *exerciseFlags) filter(cmd *cobra.Command) fitness.ExerciseFilter {
	return fitness.ExerciseFilter{
		Name:                optional(cmd, "name", x.name),
		PushOrPull:          enums[fitness.PushOrPull](x.pushOrPull),
		DynamicOrStatic:     enums[fitness.DynamicOrStatic](x.dynamicOrStatic),
		StraightOrBent:      enums[fitness.StraightOrBentArm](x.straightOrBent),
		SquatOrHinge:        enums[fitness.SquatOrHinge](x.squatOrHinge),
		UpperOrLower:        enums[fitness.UpperOrLower](x.upperOrLower),
		CompoundOrIsolation: enums[fitness.CompoundOrIsolation](x.compoundOrIsolation),
		LeverVariation:      enums[fitness.LeverVariation](x.leverVariation),
		Grip:                enums[fitness.Grip](x.grip),
		GripWidth:           enums[fitness.GripWidth](x.gripWidth),
	}
}

func newExercisesCmd(g *globalOptions) *cobra.Command {
	x := &exerciseFlags{}

	cmd := &cobra.Command{
		Use:     "exercises",
		Aliases: []string{"exercise", "ex"},
		Short:   "Browse the exercise library",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := x.filter(cmd)
			// Reject unknown enum values before touching the database.
			if _, err := filter.Compile(); err != nil {
				return err
			}

			e, cleanup, err := g.setup(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			fetcher := sqlboiler.NewTableFetcher[*fitness.Exercise](e.db, e.dialect, fitness.TableExercises)
			session := keyset.NewSession(fitness.Exercises(fetcher, e.opts...), filter)
			return browse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), session, e.limit, exerciseView)
		},
	}

	f := cmd.Flags()
	f.StringVar(&x.name, "name", "", "name contains")
	f.StringSliceVar(&x.pushOrPull, "push-or-pull", nil, "Push, Pull")
	f.StringSliceVar(&x.dynamicOrStatic, "dynamic-or-static", nil, "Dynamic, Static")
	f.StringSliceVar(&x.straightOrBent, "straight-or-bent", nil, "Straight, Bent")
	f.StringSliceVar(&x.squatOrHinge, "squat-or-hinge", nil, "Squat, Hinge")
	f.StringSliceVar(&x.upperOrLower, "upper-or-lower", nil, "Upper, Lower")
	f.StringSliceVar(&x.compoundOrIsolation, "compound-or-isolation", nil, "Compound, Isolation")
	f.StringSliceVar(&x.leverVariation, "lever-variation", nil, "Tuck, AdvancedTuck, Straddle, OneLeg, HalfLay, Full")
	f.StringSliceVar(&x.grip, "grip", nil, "Pronated, Supinated, Neutral, GymnasticsRing, Floor")
	f.StringSliceVar(&x.gripWidth, "grip-width", nil, "Wide, Shoulder, Narrow")

	return cmd
}

func newWorkoutsCmd(g *globalOptions) *cobra.Command {
	var (
		name, description string
		active            bool
	)

	cmd := &cobra.Command{
		Use:   "workouts",
		Short: "Browse the workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := fitness.WorkoutFilter{
				Name:        optional(cmd, "name", name),
				Description: optional(cmd, "description", description),
				Active:      optional(cmd, "active", active),
			}

			e, cleanup, err := g.setup(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			fetcher := sqlboiler.NewTableFetcher[*fitness.Workout](e.db, e.dialect, fitness.TableWorkouts)
			session := keyset.NewSession(fitness.Workouts(fetcher, e.opts...), filter)
			return browse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), session, e.limit, workoutView)
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "name contains")
	f.StringVar(&description, "description", "", "description contains")
	f.BoolVar(&active, "active", false, "only active (--active) or inactive (--active=false) workouts")

	return cmd
}

func newLogGroupsCmd(g *globalOptions) *cobra.Command {
	var from, to, notes string

	cmd := &cobra.Command{
		Use:     "log-groups",
		Aliases: []string{"logs"},
		Short:   "Browse the logged training days",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := fitness.LogGroupFilter{Notes: optional(cmd, "notes", notes)}

			var err error
			if filter.DateFrom, err = optionalDate(cmd, "from", from); err != nil {
				return err
			}
			if filter.DateTo, err = optionalDate(cmd, "to", to); err != nil {
				return err
			}

			e, cleanup, err := g.setup(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			fetcher := sqlboiler.NewTableFetcher[*fitness.LogGroup](e.db, e.dialect, fitness.TableLogGroups)
			session := keyset.NewSession(fitness.LogGroups(fetcher, e.opts...), filter)
			return browse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), session, e.limit, logGroupView)
		},
	}

	f := cmd.Flags()
	f.StringVar(&from, "from", "", "first date, YYYY-MM-DD")
	f.StringVar(&to, "to", "", "last date, YYYY-MM-DD")
	f.StringVar(&notes, "notes", "", "notes contain")

	return cmd
}

// optional returns &value when the flag was set on the command line.
func optional[V any](cmd *cobra.Command, flag string, value V) *V {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}

func optionalDate(cmd *cobra.Command, flag, value string) (*time.Time, error) {
	if !cmd.Flags().Changed(flag) {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", flag)
	}
	return &t, nil
}

func enums[E ~string](values []string) []E {
	out := make([]E, 0, len(values))
	for _, v := range values {
		out = append(out, E(v))
	}
	return out
}

var exerciseView = view[*fitness.Exercise]{
	header: []string{"ID", "NAME", "BODY", "PUSH/PULL", "GRIP", "LEVER"},
	row: func(e *fitness.Exercise) []string {
		return []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			e.UpperOrLower.String(),
			e.PushOrPull.String,
			e.Grip.String,
			e.LeverVariation.String,
		}
	},
}

var workoutView = view[*fitness.Workout]{
	header: []string{"ID", "NAME", "ACTIVE", "DESCRIPTION"},
	row: func(w *fitness.Workout) []string {
		return []string{
			strconv.FormatInt(w.ID, 10),
			w.Name,
			strconv.FormatBool(w.Active),
			w.Description.String,
		}
	},
}

var logGroupView = view[*fitness.LogGroup]{
	header: []string{"ID", "DATE", "NOTES"},
	row: func(g *fitness.LogGroup) []string {
		return []string{
			strconv.FormatInt(g.ID, 10),
			g.Date.Format(time.DateOnly),
			g.Notes.String,
		}
	},
}
