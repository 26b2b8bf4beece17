package commands

import (
	"math"
	"strconv"
	"time"

	"HelperBot/router"

	"github.com/pkg/errors"
)

const (
	maxCountNumbers = 25
	maxCountDelay   = 10 * time.Second
)

// CountUsage explains the count arguments.
const CountUsage = "<from>, <to>[, <delay in seconds>]"

// CountPlan parses the count arguments into the numbers to send and the delay
// between them. The delay defaults to one second.
func CountPlan(args []string) ([]int, time.Duration, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, 0, errors.New("expected two or three arguments")
	}
	from, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return nil, 0, errors.Errorf("%q is not a number", args[0])
	}
	to, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return nil, 0, errors.Errorf("%q is not a number", args[1])
	}

	delay := time.Second
	if len(args) == 3 {
		secs, err := strconv.ParseFloat(args[2], 64)
		if err != nil || math.IsNaN(secs) || secs < 0 {
			return nil, 0, errors.Errorf("%q is not a valid delay", args[2])
		}
		if secs > maxCountDelay.Seconds() {
			return nil, 0, errors.Errorf("the delay can be at most %d seconds", int(maxCountDelay/time.Second))
		}
		delay = time.Duration(secs * float64(time.Second))
	}

	// Both ends fit in 32 bits, so the distance cannot overflow.
	step := int64(1)
	if to < from {
		step = -1
	}
	count := (to-from)*step + 1
	if count > maxCountNumbers {
		return nil, 0, errors.Errorf("can count at most %d numbers", maxCountNumbers)
	}
	nums := make([]int, 0, count)
	for i, n := int64(0), from; i < count; i, n = i+1, n+step {
		nums = append(nums, int(n))
	}
	return nums, delay, nil
}

// Count counts from one number to another, waiting between the numbers.
func Count() *router.Command {
	return &router.Command{
		Name:        "count",
		Description: "Counts from one number to another with x seconds of delay",
		Usage:       CountUsage,
		Function: func(ctx *router.Context) error {
			nums, delay, err := CountPlan(ctx.Args())
			if err != nil {
				_, err = ctx.Reply("Usage: " + ctx.Router.Prefix() + "count " + CountUsage + " (" + err.Error() + ")")
				return err
			}

			for i, n := range nums {
				if i > 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-time.After(delay):
					}
				}
				if _, err := ctx.Reply(strconv.Itoa(n)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
