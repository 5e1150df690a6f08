// Command ecm-factor factors an integer from the command line with the
// elliptic curve method.
//
//	ecm-factor [flags] N
//
// By default it prints the complete prime factorization of N. With
// --first it stops at the first nontrivial divisor instead.
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/factorlab/ecm-go/pkg/ecm"
)

var (
	flagB1          uint64
	flagB2          uint64
	flagMaxAttempts int
	flagSeed        int64
	flagParallelism int
	flagFirst       bool
	flagProgress    bool
)

func factorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecm-factor N",
		Short: "factor an integer with the elliptic curve method",
		Long: `Factor an integer with Lenstra's two-stage elliptic curve method.

Bounds default to a table keyed on the size of N; override them with
--b1 and --b2 for hand-tuned runs. A zero --seed draws curve seeds from
crypto/rand, any other value gives a reproducible run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("not a decimal integer: %q", args[0])
			}
			return run(cmd.Context(), n)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.Uint64Var(&flagB1, "b1", 0, "stage-1 bound (0 selects the size-based default)")
	flags.Uint64Var(&flagB2, "b2", 0, "stage-2 bound (0 selects 100*B1)")
	flags.IntVar(&flagMaxAttempts, "max-attempts", ecm.DefaultMaxAttempts, "curve attempt budget")
	flags.Int64Var(&flagSeed, "seed", 0, "deterministic seed for curve selection (0 = random)")
	flags.IntVar(&flagParallelism, "parallelism", 1, "concurrent curve attempts")
	flags.BoolVar(&flagFirst, "first", false, "stop at the first nontrivial divisor")
	flags.BoolVar(&flagProgress, "progress", false, "show a progress bar over curve attempts")
	return cmd
}

func run(ctx context.Context, n *big.Int) error {
	cfg := ecm.Config{
		MaxAttempts: flagMaxAttempts,
		Parallelism: flagParallelism,
	}
	if flagB1 > 0 {
		b2 := flagB2
		if b2 == 0 {
			b2 = 100 * flagB1
		}
		cfg.Bounds = ecm.Bounds{B1: flagB1, B2: b2}
	}
	if flagSeed != 0 {
		cfg.Seeds = ecm.DeterministicSeeds(flagSeed)
	}

	var bar *pb.ProgressBar
	if flagProgress {
		bar = pb.StartNew(flagMaxAttempts)
		cfg.Observer = func(attempt int, bounds ecm.Bounds) {
			bar.Increment()
		}
		defer bar.Finish()
	}

	if flagFirst {
		res, err := ecm.Factor(ctx, n, cfg)
		if err != nil {
			return err
		}
		switch res.Status {
		case ecm.StatusFactorFound:
			fmt.Printf("%v = %v * %v\n", n, res.Factor, res.Cofactor)
		case ecm.StatusInputPrime:
			fmt.Printf("%v is prime\n", n)
		default:
			return fmt.Errorf("no factor found in %d attempts", res.Attempts)
		}
		return nil
	}

	factors, err := ecm.Factorize(ctx, n, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("%v = %s\n", n, formatFactors(factors))
	return nil
}

// formatFactors renders a sorted factor list as "p1^e1 * p2^e2 * ...".
func formatFactors(factors []*big.Int) string {
	out := ""
	for i := 0; i < len(factors); {
		j := i
		for j < len(factors) && factors[j].Cmp(factors[i]) == 0 {
			j++
		}
		if out != "" {
			out += " * "
		}
		out += factors[i].String()
		if j-i > 1 {
			out += fmt.Sprintf("^%d", j-i)
		}
		i = j
	}
	return out
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := factorCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
