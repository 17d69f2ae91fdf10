package classify

import "testing"

// TestClassify_Codes: every exact code maps to its canonical name, with the
// category collapsing onto the name, regardless of input case.
func TestClassify_Codes(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"FF", "fastball"},
		{"FA", "fastball"},
		{"FT", "fastball"},
		{"FF/FT", "fastball"},
		{"SI", "sinker"},
		{"SL", "slider"},
		{"CU", "curveball"},
		{"KC", "curveball"},
		{"CH", "changeup"},
		{"FC", "cutter"},
		{"FS", "splitter"},
		{"IN", "intentional"},
		{"ff", "fastball"},
		{"kc", "curveball"},
		{"  SL  ", "slider"},
	}
	for _, c := range cases {
		got := Classify(c.raw)
		if got.Name != c.want {
			t.Errorf("Classify(%q): want name %q, got %q", c.raw, c.want, got.Name)
		}
		if got.Category != c.want {
			t.Errorf("Classify(%q): code tier category should equal name %q, got %q", c.raw, c.want, got.Category)
		}
	}
}

// TestClassify_Keywords: descriptive labels map via substring rules to a
// name plus a coarser display category.
func TestClassify_Keywords(t *testing.T) {
	cases := []struct {
		raw          string
		wantName     string
		wantCategory string
	}{
		{"Four-Seam Fastball", "fastball", "heater"},
		{"Slider", "slider", "breaking ball"},
		{"Curveball", "curveball", "breaking ball"},
		{"Changeup", "changeup", "offspeed"},
		{"Sinker", "sinker", "heater"},
		{"Cutter", "cutter", "heater"},
		{"Splitter", "splitter", "offspeed"},
		{"Sweeper", "sweeper", "breaking ball"},
		{"Knuckle Curve", "knuckle curve", "breaking ball"},
		{"Knuckleball", "knuckleball", "other"},
	}
	for _, c := range cases {
		got := Classify(c.raw)
		if got.Name != c.wantName || got.Category != c.wantCategory {
			t.Errorf("Classify(%q): want (%q, %q), got (%q, %q)",
				c.raw, c.wantName, c.wantCategory, got.Name, got.Category)
		}
	}
}

// TestClassify_Empty: empty and whitespace-only labels fall back to unknown.
func TestClassify_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		got := Classify(raw)
		if got.Name != "unknown" || got.Category != "unknown" {
			t.Errorf("Classify(%q): want (unknown, unknown), got (%q, %q)", raw, got.Name, got.Category)
		}
	}
}

// TestClassify_PassThrough: unmatched labels survive trimmed as both name
// and category instead of being dropped.
func TestClassify_PassThrough(t *testing.T) {
	got := Classify("  Eephus  ")
	if got.Name != "Eephus" || got.Category != "Eephus" {
		t.Errorf("want pass-through (Eephus, Eephus), got (%q, %q)", got.Name, got.Category)
	}
}

// TestClassify_RuleOrder: overlapping keywords resolve by rule order —
// "fast" is tested before "curve", and "knuckle curve" before "curve".
func TestClassify_RuleOrder(t *testing.T) {
	got := Classify("fastball with curve action")
	if got.Name != "fastball" {
		t.Errorf("label matching both fast and curve: want fastball (rule order), got %q", got.Name)
	}
	got = Classify("knuckle curveball")
	if got.Name != "knuckle curve" {
		t.Errorf("knuckle curve should win over plain curve, got %q", got.Name)
	}
}
