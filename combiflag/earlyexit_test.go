//nolint:testpackage // using package name 'combiflag' to access unexported fields for testing
package combiflag

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEarlyExitFlag(t *testing.T) {
	base := FlagBool[error](Describe[bool]("verbose").WithDefault(false), English)
	args := base.EarlyExit(Describe[Void]("help").WithShort("h"), "MyProg 1.0")

	t.Run("long form exits", func(t *testing.T) {
		outcome, rest := args.Parse([]string{"--help"})
		if outcome.Kind() != OutcomeEarlyExit {
			t.Fatalf("expected early exit, got %v", outcome.Kind())
		}
		if diff := cmp.Diff([]string{"MyProg 1.0"}, outcome.Messages()); diff != "" {
			t.Errorf("messages mismatch (-expected +got):\n%s", diff)
		}
		if len(rest) != 0 {
			t.Errorf("unexpected leftovers %v", rest)
		}
	})

	t.Run("short form exits", func(t *testing.T) {
		outcome, rest := args.Parse([]string{"-h"})
		if outcome.Kind() != OutcomeEarlyExit {
			t.Fatalf("expected early exit, got %v", outcome.Kind())
		}
		if diff := cmp.Diff([]string{"MyProg 1.0"}, outcome.Messages()); diff != "" {
			t.Errorf("messages mismatch (-expected +got):\n%s", diff)
		}
		if len(rest) != 0 {
			t.Errorf("unexpected leftovers %v", rest)
		}
	})

	t.Run("unknown short stays leftover", func(t *testing.T) {
		outcome, rest := args.Parse([]string{"-x"})
		if outcome.Kind() != OutcomeValue {
			t.Fatalf("expected value outcome, got %v", outcome.Kind())
		}
		if diff := cmp.Diff([]string{"-x"}, rest); diff != "" {
			t.Errorf("leftovers mismatch (-expected +got):\n%s", diff)
		}
	})

	t.Run("exit beats inner errors", func(t *testing.T) {
		required := FlagBool[error](Describe[bool]("force"), English)
		wrapped := required.EarlyExit(Describe[Void]("help").WithShort("h"), "MyProg 1.0")
		outcome, _ := wrapped.Parse([]string{"--help"})
		if outcome.Kind() != OutcomeEarlyExit {
			t.Fatalf("expected early exit despite missing required flag, got %v", outcome.Kind())
		}
	})
}

func TestEarlyExitMessageOrder(t *testing.T) {
	base := FlagBool[error](Describe[bool]("verbose").WithDefault(false), English)
	args := base.
		EarlyExit(Describe[Void]("version").WithShort("v"), "version 1.0").
		EarlyExit(Describe[Void]("help").WithShort("h"), "help text")

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "both long forms",
			args:     []string{"--help", "--version"},
			expected: []string{"version 1.0", "help text"},
		},
		{
			name:     "bundled shorts",
			args:     []string{"-hv"},
			expected: []string{"version 1.0", "help text"},
		},
		{
			name:     "repeated flag repeats message",
			args:     []string{"--help", "--help"},
			expected: []string{"help text", "help text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, _ := args.Parse(tt.args)
			if outcome.Kind() != OutcomeEarlyExit {
				t.Fatalf("expected early exit, got %v", outcome.Kind())
			}
			if diff := cmp.Diff(tt.expected, outcome.Messages()); diff != "" {
				t.Errorf("messages mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestHelpAndVersion(t *testing.T) {
	base := FlagBool[error](Describe[bool]("verbose").WithShort("v").WithDefault(false), English)
	args := base.HelpAndVersion("myprog", "1.2.3", English)

	t.Run("version flag", func(t *testing.T) {
		outcome, _ := args.Parse([]string{"--version"})
		if outcome.Kind() != OutcomeEarlyExit {
			t.Fatalf("expected early exit, got %v", outcome.Kind())
		}
		if diff := cmp.Diff([]string{"myprog 1.2.3"}, outcome.Messages()); diff != "" {
			t.Errorf("messages mismatch (-expected +got):\n%s", diff)
		}
	})

	t.Run("help flag renders help text", func(t *testing.T) {
		outcome, _ := args.Parse([]string{"--help"})
		if outcome.Kind() != OutcomeEarlyExit {
			t.Fatalf("expected early exit, got %v", outcome.Kind())
		}
		messages := outcome.Messages()
		if len(messages) != 1 {
			t.Fatalf("expected one message, got %d", len(messages))
		}
		text := messages[0]
		for _, want := range []string{
			"myprog 1.2.3",
			"OPTIONS:",
			"--[no]-verbose",
			"--version",
			"--help",
			"Show this text.",
			"Show the current version.",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("help text missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("version registered before help", func(t *testing.T) {
		outcome, _ := args.Parse([]string{"-vh"})
		if outcome.Kind() != OutcomeEarlyExit {
			t.Fatalf("expected early exit, got %v", outcome.Kind())
		}
		messages := outcome.Messages()
		if len(messages) != 2 {
			t.Fatalf("expected two messages, got %d", len(messages))
		}
		if messages[0] != "myprog 1.2.3" {
			t.Errorf("version line should come first, got %q", messages[0])
		}
		if !strings.Contains(messages[1], "OPTIONS:") {
			t.Errorf("help text should come second, got %q", messages[1])
		}
	})
}
