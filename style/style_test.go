package style

import (
	"testing"

	"github.com/minios-linux/loccheck/hudcolor"
)

func TestBoldToggle(t *testing.T) {
	runs := RenderText("~h~Bold~h~Normal")
	if len(runs) != 2 {
		t.Fatalf("runs = %#v, want 2 runs", runs)
	}
	if runs[0].Text != "Bold" || !runs[0].Bold {
		t.Fatalf("first run = %#v, want bold 'Bold'", runs[0])
	}
	if runs[1].Text != "Normal" || runs[1].Bold {
		t.Fatalf("second run = %#v, want plain 'Normal'", runs[1])
	}
	// No color directive was seen: both runs keep the default color.
	if runs[0].Color != hudcolor.Default || runs[1].Color != hudcolor.Default {
		t.Fatalf("colors changed without a color directive: %#v", runs)
	}
}

func TestLeadingFragmentKeepsInitialState(t *testing.T) {
	runs := RenderText("plain~h~bold")
	if len(runs) != 2 {
		t.Fatalf("runs = %#v", runs)
	}
	if runs[0].Text != "plain" || runs[0].Bold {
		t.Fatalf("leading fragment = %#v, want unstyled 'plain'", runs[0])
	}
	if runs[1].Text != "bold" || !runs[1].Bold {
		t.Fatalf("trailing fragment = %#v, want bold 'bold'", runs[1])
	}
}

func TestColorShorthandsAndReset(t *testing.T) {
	runs := RenderText("~r~Red~s~White")
	if len(runs) != 2 {
		t.Fatalf("runs = %#v", runs)
	}
	red, _ := hudcolor.Resolve("RED")
	white, _ := hudcolor.Resolve("PURE_WHITE")
	if runs[0].Color != red {
		t.Fatalf("first run color = %#v, want RED", runs[0].Color)
	}
	if runs[1].Color != white {
		t.Fatalf("second run color = %#v, want PURE_WHITE", runs[1].Color)
	}
}

func TestUnknownColorFallsBackToDefault(t *testing.T) {
	runs := RenderText("~r~red~COLOR_BOGUS~grey")
	if len(runs) != 2 {
		t.Fatalf("runs = %#v", runs)
	}
	if runs[1].Color != hudcolor.Default {
		t.Fatalf("unknown color run = %#v, want default color", runs[1])
	}
}

func TestCustomColor(t *testing.T) {
	runs := RenderText("~RGB_12_200_3~custom")
	if len(runs) != 1 {
		t.Fatalf("runs = %#v", runs)
	}
	want := hudcolor.RGBA{R: 12, G: 200, B: 3, A: 255}
	if runs[0].Color != want {
		t.Fatalf("custom color = %#v, want %#v", runs[0].Color, want)
	}
}

func TestNewlineEmitsBreakPerToggle(t *testing.T) {
	runs := RenderText("a~n~~n~b")
	if len(runs) != 4 {
		t.Fatalf("runs = %#v, want text, break, break, text", runs)
	}
	if runs[0].Text != "a" || !runs[1].Break || !runs[2].Break || runs[3].Text != "b" {
		t.Fatalf("runs = %#v", runs)
	}
}

func TestEmptyFragmentsSuppressed(t *testing.T) {
	runs := RenderText("~h~~n~x")
	// The empty fragments around the directives disappear; the break stays.
	if len(runs) != 2 {
		t.Fatalf("runs = %#v, want break + text", runs)
	}
	if !runs[0].Break {
		t.Fatalf("first run = %#v, want break", runs[0])
	}
	if runs[1].Text != "x" || !runs[1].Bold {
		t.Fatalf("second run = %#v, want bold 'x'", runs[1])
	}
}

func TestCondensedDepthClampedAtZero(t *testing.T) {
	runs := RenderText("(/C)a(C)b(/C)c")
	if len(runs) != 3 {
		t.Fatalf("runs = %#v", runs)
	}
	if runs[0].Condensed {
		t.Fatalf("depth went negative: %#v", runs[0])
	}
	if !runs[1].Condensed {
		t.Fatalf("condensed open ignored: %#v", runs[1])
	}
	if runs[2].Condensed {
		t.Fatalf("condensed close ignored: %#v", runs[2])
	}
}

func TestNestedCondensed(t *testing.T) {
	runs := RenderText("(C)(C)a(/C)b(/C)c")
	if !runs[0].Condensed || !runs[1].Condensed || runs[2].Condensed {
		t.Fatalf("nested condensed runs = %#v", runs)
	}
}

func TestItalicToggle(t *testing.T) {
	runs := RenderText("~italic~slanted~italic~straight")
	if !runs[0].Italic || runs[1].Italic {
		t.Fatalf("italic runs = %#v", runs)
	}
}

func TestNeverFails(t *testing.T) {
	// Degenerate inputs produce runs or nothing, never a panic.
	for _, input := range []string{"", "~", "~~~", "~RGB_999_0_0~x", "(C)(C)(C)"} {
		_ = RenderText(input)
	}
}
