package tests_test

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/friendsofgo/errors"

	"github.com/nrfta/keyset-go/fitness"
)

// SeedExercises inserts exercises in order and returns their ids.
func SeedExercises(ctx context.Context, db *sql.DB, exercises ...fitness.Exercise) ([]int64, error) {
	ids := make([]int64, 0, len(exercises))
	for _, e := range exercises {
		var id int64
		err := db.QueryRowContext(ctx, `
			INSERT INTO exercise_library (name, push_or_pull, dynamic_or_static, straight_or_bent,
				squat_or_hinge, upper_or_lower, compound_or_isolation, lever_variation, grip, grip_width, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id`,
			e.Name, e.PushOrPull, string(e.DynamicOrStatic), e.StraightOrBent,
			e.SquatOrHinge, string(e.UpperOrLower), string(e.CompoundOrIsolation), e.LeverVariation, e.Grip, e.GripWidth, e.Description,
		).Scan(&id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed exercise %q", e.Name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SeedWorkouts creates count workouts named "Workout N"; every third one is inactive.
func SeedWorkouts(ctx context.Context, db *sql.DB, count int) ([]int64, error) {
	ids := make([]int64, 0, count)
	for i := 1; i <= count; i++ {
		var id int64
		description := null.StringFrom(fmt.Sprintf("block %d", (i-1)/5+1))
		if i%4 == 0 {
			description = null.String{}
		}
		err := db.QueryRowContext(ctx, `
			INSERT INTO workouts (name, description, active, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			fmt.Sprintf("Workout %d", i), description, i%3 != 0,
			time.Now().Add(-time.Duration(count-i)*time.Hour),
		).Scan(&id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed workout %d", i)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SeedLogGroups creates one log group per day starting at first.
func SeedLogGroups(ctx context.Context, db *sql.DB, first time.Time, days int) ([]int64, error) {
	ids := make([]int64, 0, days)
	for i := 0; i < days; i++ {
		var id int64
		notes := null.StringFrom(fmt.Sprintf("day %d", i+1))
		if i%2 == 1 {
			notes = null.StringFrom(fmt.Sprintf("day %d, deload", i+1))
		}
		err := db.QueryRowContext(ctx, `
			INSERT INTO workout_log_groups (date, notes)
			VALUES ($1, $2)
			RETURNING id`,
			first.AddDate(0, 0, i), notes,
		).Scan(&id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed log group %d", i)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CleanupTables truncates all test tables and restarts their id sequences.
func CleanupTables(ctx context.Context, db *sql.DB) error {
	tables := []string{fitness.TableExercises, fitness.TableWorkouts, fitness.TableLogGroups}

	for _, table := range tables {
		query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", table)
		if _, err := db.ExecContext(ctx, query); err != nil {
			return errors.Wrapf(err, "failed to truncate table %s", table)
		}
	}

	return nil
}

// IDs collects record ids in page order.
func IDs[T interface{ GetID() int64 }](items []T) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.GetID())
	}
	return out
}

func ptr[T any](v T) *T { return &v }
