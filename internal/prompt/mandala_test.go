package prompt_test

import (
	"context"
	"strings"
	"testing"

	"github.com/dmorgan81/mandala/internal/prompt"
)

func TestBuilder_Build(t *testing.T) {
	b := &prompt.Builder{}
	got, err := b.Build(context.Background(), "ocean")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.HasPrefix(got, "Create a detailed, intricate black and white mandala design inspired by the word 'ocean'.") {
		t.Fatalf("unexpected prompt start: %q", got)
	}
	if n := strings.Count(got, "'ocean'"); n != 2 {
		t.Fatalf("topic appears %d times, want 2", n)
	}
	if !strings.HasSuffix(got, "Make the image suitable for printing and coloring.") {
		t.Fatalf("unexpected prompt end: %q", got)
	}
}

func TestBuilder_Build_Deterministic(t *testing.T) {
	b := &prompt.Builder{}
	first, _ := b.Build(context.Background(), "fire")
	second, _ := b.Build(context.Background(), "fire")
	if first != second {
		t.Fatalf("prompts differ:\n%s\n%s", first, second)
	}
}

func TestBuilder_Build_Verbatim(t *testing.T) {
	b := &prompt.Builder{}
	topic := `<b>"wind" & {{.}}</b>`
	got, err := b.Build(context.Background(), topic)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(got, "'"+topic+"'") {
		t.Fatalf("topic was altered: %q", got)
	}
}

func TestBuilder_Build_Layout(t *testing.T) {
	b := &prompt.Builder{}
	got, err := b.Build(context.Background(), "ocean")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := "Create a detailed, intricate black and white mandala design inspired by the word 'ocean'. \n" +
		"    The mandala should be perfectly symmetrical, highly detailed, and contain elements that symbolize 'ocean'.\n" +
		"    The design should be strictly monochromatic (black and white only) with no gray shades.\n" +
		"    Use clean, crisp lines with a focus on geometric patterns and repeating elements.\n" +
		"    Make the image suitable for printing and coloring."
	if got != want {
		t.Fatalf("Build =\n%q\nwant\n%q", got, want)
	}
}
