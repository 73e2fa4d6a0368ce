package config

import (
	"sort"
	"testing"
)

func TestLookupMode(t *testing.T) {
	cases := []struct {
		name    string
		wantErr bool
	}{
		{ModeClassic, false},
		{ModePull, false},
		{"", true},
		{"Classic", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mode, err := LookupMode(c.name)
			if (err != nil) != c.wantErr {
				t.Fatalf("LookupMode(%q) error = %v", c.name, err)
			}
			if err == nil && mode.Name != c.name {
				t.Fatalf("got mode %q", mode.Name)
			}
		})
	}
}

func TestModeNamesSorted(t *testing.T) {
	names := ModeNames()
	if len(names) != len(Modes) {
		t.Fatalf("%d names for %d modes", len(names), len(Modes))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestModesHaveALevelBound(t *testing.T) {
	for name, mode := range Modes {
		if mode.LevelWidth <= 0 && mode.PlatformCount <= 0 {
			t.Errorf("mode %s never ends a level", name)
		}
	}
}
