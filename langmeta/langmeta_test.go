package langmeta

import "testing"

func TestSupportedMatchesRegistry(t *testing.T) {
	tags := Supported()
	if len(tags) != len(Registry) {
		t.Fatalf("Supported() has %d tags, Registry has %d", len(tags), len(Registry))
	}
	for _, tag := range tags {
		if _, ok := Registry[tag]; !ok {
			t.Fatalf("supported tag %q missing from Registry", tag)
		}
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("en-US") {
		t.Fatal("en-US must be supported")
	}
	if IsSupported("en-us") {
		t.Fatal("IsSupported must be exact, got a match for en-us")
	}
	if IsSupported("xx-XX") {
		t.Fatal("xx-XX must not be supported")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ru-RU", "ru-RU"},
		{"ru_ru", "ru-RU"},
		{"RU-RU", "ru-RU"},
		{"zh-hans", "zh-Hans"},
		{"ZH_HANT", "zh-Hant"},
		{"de", "de-DE"},
		{"zh", "zh-Hans"},
		{"ar-001", "ar-001"},
		{"hi-latn", "hi-Latn"},
		{"xx", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Resolve(tt.in); got != tt.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
