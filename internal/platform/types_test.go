package platform

import "testing"

func TestHandle_String(t *testing.T) {
	tests := []struct {
		h    Handle
		want string
	}{
		{0, "0x00000000"},
		{0x1A2B, "0x00001A2B"},
		{0xDEADBEEF, "0xDEADBEEF"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Handle(%d).String() = %q, want %q", uintptr(tt.h), got, tt.want)
		}
	}
}

func TestRect_Size(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Right: 110, Bottom: 40}
	if r.Width() != 100 || r.Height() != 30 {
		t.Errorf("got %dx%d, want 100x30", r.Width(), r.Height())
	}
}

func TestParseTarget_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Target
	}{
		{"mouse", TargetMouse},
		{"focus", TargetFocus},
		{"active", TargetActive},
	}
	for _, tt := range tests {
		got, err := ParseTarget(tt.input)
		if err != nil {
			t.Errorf("ParseTarget(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseTarget_Invalid(t *testing.T) {
	if _, err := ParseTarget("desktop"); err == nil {
		t.Error("ParseTarget(\"desktop\") should fail")
	}
}

func TestTargets_Order(t *testing.T) {
	got := Targets()
	want := []string{"Window Under Mouse", "Focused Window", "Active Window"}
	if len(got) != len(want) {
		t.Fatalf("got %d targets, want %d", len(got), len(want))
	}
	for i, tg := range got {
		if tg.String() != want[i] {
			t.Errorf("target %d = %q, want %q", i, tg.String(), want[i])
		}
	}
}
