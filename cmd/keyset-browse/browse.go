package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/friendsofgo/errors"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/predicate"
)

// view renders records of one list as table rows.
type view[T any] struct {
	header []string
	row    func(T) []string
}

// browse shows page 1 and then follows navigation commands read from in
// until "q" or the end of input.
func browse[T keyset.Record, F predicate.Filter](
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	session *keyset.Session[T, F],
	limit int,
	v view[T],
) error {
	page, err := session.SetLimit(ctx, limit)
	if err != nil {
		return err
	}
	render(out, v, page, session.State())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "n", "next":
			page, err = session.Next(ctx)
		case "p", "prev", "previous":
			page, err = session.Previous(ctx)
		case "r", "restart":
			page, err = session.SetLimit(ctx, session.State().Limit)
		case "l", "limit":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: l N")
				continue
			}
			n, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				fmt.Fprintf(out, "not a number: %s\n", fields[1])
				continue
			}
			page, err = session.SetLimit(ctx, n)
		default:
			fmt.Fprintf(out, "unknown command %q (n, p, l N, r, q)\n", fields[0])
			continue
		}

		switch {
		case errors.Is(err, keyset.ErrNoNextPage):
			fmt.Fprintln(out, "already on the last page")
		case errors.Is(err, keyset.ErrNoPreviousPage):
			fmt.Fprintln(out, "already on the first page")
		case err != nil:
			// The session kept its state, so the same command can be retried.
			fmt.Fprintf(out, "error: %v\n", err)
		default:
			render(out, v, page, session.State())
		}
	}
}

func render[T any](out io.Writer, v view[T], page *keyset.Page[T], state keyset.State) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(v.header, "\t"))
	for _, item := range page.Items {
		fmt.Fprintln(tw, strings.Join(v.row(item), "\t"))
	}
	tw.Flush()

	var nav []string
	if state.HasPrevious() {
		nav = append(nav, "[p]rev")
	}
	if state.HasNext() {
		nav = append(nav, "[n]ext")
	}
	nav = append(nav, "[l]imit N", "[r]estart", "[q]uit")

	fmt.Fprintf(out, "-- %d items, page size %d  %s\n", len(page.Items), state.Limit, strings.Join(nav, " "))
}
