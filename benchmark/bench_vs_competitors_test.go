package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/go-combiflag/combiflag"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"
)

// Benchmark simple flag parsing with int and bool flags.
// All three parse the same argument list for fair comparison.

type simpleConfig struct {
	Port    int
	Verbose bool
}

func BenchmarkSimpleFlags_Combiflag(b *testing.B) {
	args := combiflag.Combine2(
		func(port int, verbose bool) simpleConfig {
			return simpleConfig{Port: port, Verbose: verbose}
		},
		combiflag.Int(combiflag.Describe[int]("port").WithShort("p").WithDefault(8080), combiflag.English),
		combiflag.FlagBool[error](combiflag.Describe[bool]("verbose").WithShort("v").WithDefault(false), combiflag.English),
	)

	line := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = args.Parse(line)
	}
}

func BenchmarkSimpleFlags_Cobra(b *testing.B) {
	line := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().IntP("port", "p", 8080, "Server port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(line)
		_ = cmd.Execute()
	}
}

func BenchmarkSimpleFlags_Urfave(b *testing.B) {
	line := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(line)
	}
}

// Benchmark short-flag bundles ("-abc" style).

func BenchmarkShortBundle_Combiflag(b *testing.B) {
	args := combiflag.Combine3(
		func(a, bb, c bool) [3]bool { return [3]bool{a, bb, c} },
		combiflag.FlagBool[error](combiflag.Describe[bool]("alpha").WithShort("a").WithDefault(false), combiflag.English),
		combiflag.FlagBool[error](combiflag.Describe[bool]("beta").WithShort("b").WithDefault(false), combiflag.English),
		combiflag.FlagBool[error](combiflag.Describe[bool]("gamma").WithShort("c").WithDefault(false), combiflag.English),
	)

	line := []string{"-abc"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = args.Parse(line)
	}
}

func BenchmarkShortBundle_Cobra(b *testing.B) {
	line := []string{"-abc"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().BoolP("alpha", "a", false, "")
		cmd.Flags().BoolP("beta", "b", false, "")
		cmd.Flags().BoolP("gamma", "c", false, "")
		cmd.SetArgs(line)
		_ = cmd.Execute()
	}
}

func BenchmarkShortBundle_Urfave(b *testing.B) {
	line := []string{"bench", "-a", "-b", "-c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "alpha", Aliases: []string{"a"}},
				&cli.BoolFlag{Name: "beta", Aliases: []string{"b"}},
				&cli.BoolFlag{Name: "gamma", Aliases: []string{"c"}},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(line)
	}
}

// Benchmark help text generation.

func BenchmarkHelpText_Combiflag(b *testing.B) {
	args := combiflag.Combine2(
		func(port int, verbose bool) simpleConfig {
			return simpleConfig{Port: port, Verbose: verbose}
		},
		combiflag.Int(combiflag.Describe[int]("port").WithShort("p").WithHelp("Server port").WithDefault(8080), combiflag.English),
		combiflag.FlagBool[error](combiflag.Describe[bool]("verbose").WithShort("v").WithHelp("Verbose output").WithDefault(false), combiflag.English),
	)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = args.HelpText("bench", "1.0", combiflag.English)
	}
}
