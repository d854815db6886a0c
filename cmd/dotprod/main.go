// Command dotprod computes structured dot products and reports which kernel
// set the current CPU drives.
//
// To inspect kernel selection: `go run ./cmd/dotprod info`
//
// To compute a dot product from NumPy files:
// `go run ./cmd/dotprod exec --coeffs=h.npy --samples=x.npy`
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/chewxy/math32"
	"github.com/google/subcommands"
	"github.com/sbinet/npyio"

	"github.com/myd7349/liquid-dsp/dsp/dotprod"
	"github.com/myd7349/liquid-dsp/internal/cpu"
	"github.com/myd7349/liquid-dsp/internal/vecmath"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&InfoCommand{}, "")
	subcommands.Register(&ExecCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// InfoCommand prints detected CPU features and the selected kernel set.
type InfoCommand struct{}

var _ subcommands.Command = (*InfoCommand)(nil)

func (*InfoCommand) Name() string {
	return "info"
}

func (*InfoCommand) Synopsis() string {
	return "Print CPU features and the selected dot-product kernel"
}

func (*InfoCommand) Usage() string {
	return ``
}

func (c *InfoCommand) SetFlags(f *flag.FlagSet) {}

func (c *InfoCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	features := cpu.DetectFeatures()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "architecture\t%s\n", features.Architecture)
	fmt.Fprintf(w, "sse2\t%v\n", features.HasSSE2)
	fmt.Fprintf(w, "avx\t%v\n", features.HasAVX)
	fmt.Fprintf(w, "avx2\t%v\n", features.HasAVX2)
	fmt.Fprintf(w, "avx512\t%v\n", features.HasAVX512)
	fmt.Fprintf(w, "neon\t%v\n", features.HasNEON)
	fmt.Fprintf(w, "vector lanes (float32)\t%d\n", cpu.VectorLanes(features))
	fmt.Fprintf(w, "kernel\t%s\n", vecmath.Implementation())
	w.Flush()

	return subcommands.ExitSuccess
}

// ExecCommand computes one structured dot product from .npy input files.
type ExecCommand struct {
	coeffsFile  string
	samplesFile string
	reversed    bool
	realSamples bool
}

var _ subcommands.Command = (*ExecCommand)(nil)

func (*ExecCommand) Name() string {
	return "exec"
}

func (*ExecCommand) Synopsis() string {
	return "Compute the dot product of a coefficient vector and a sample vector"
}

func (*ExecCommand) Usage() string {
	return ``
}

func (c *ExecCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coeffsFile, "coeffs", "", "Path to the coefficient vector (.npy, float32)")
	f.StringVar(&c.samplesFile, "samples", "", "Path to the sample vector (.npy, complex64 or float32 with --real)")
	f.BoolVar(&c.reversed, "reversed", false, "Store the coefficients in reverse order")
	f.BoolVar(&c.realSamples, "real", false, "Treat the samples as real (float32) instead of complex64")
}

func (c *ExecCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *ExecCommand) executeErr(ctx context.Context) error {
	if c.coeffsFile == "" || c.samplesFile == "" {
		return fmt.Errorf("both --coeffs and --samples are required")
	}

	var coeffs []float32
	if err := readNpy(c.coeffsFile, &coeffs); err != nil {
		return fmt.Errorf("while reading coefficients: %w", err)
	}

	if c.realSamples {
		var samples []float32
		if err := readNpy(c.samplesFile, &samples); err != nil {
			return fmt.Errorf("while reading samples: %w", err)
		}
		if len(samples) < len(coeffs) {
			return fmt.Errorf("sample vector too short: %d < %d", len(samples), len(coeffs))
		}

		q := newReal(coeffs, c.reversed)
		defer q.Close()

		y := q.Execute(samples)
		fmt.Printf("%s\n", q)
		fmt.Printf("result    : %g\n", y)
		return nil
	}

	var samples []complex64
	if err := readNpy(c.samplesFile, &samples); err != nil {
		return fmt.Errorf("while reading samples: %w", err)
	}
	if len(samples) < len(coeffs) {
		return fmt.Errorf("sample vector too short: %d < %d", len(samples), len(coeffs))
	}

	q := newComplex(coeffs, c.reversed)
	defer q.Close()

	y := q.Execute(samples)
	re, im := real(y), imag(y)
	fmt.Printf("%s\n", q)
	fmt.Printf("result    : %g%+gi\n", re, im)
	fmt.Printf("magnitude : %g\n", math32.Hypot(re, im))
	fmt.Printf("phase     : %g rad\n", math32.Atan2(im, re))
	return nil
}

func newComplex(coeffs []float32, reversed bool) *dotprod.Complex {
	if reversed {
		return dotprod.NewComplexReversed(coeffs)
	}
	return dotprod.NewComplex(coeffs)
}

func newReal(coeffs []float32, reversed bool) *dotprod.Real {
	if reversed {
		return dotprod.NewRealReversed(coeffs)
	}
	return dotprod.NewReal(coeffs)
}

func readNpy(path string, ptr interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := npyio.Read(f, ptr); err != nil {
		return fmt.Errorf("while decoding %s: %w", path, err)
	}
	return nil
}
