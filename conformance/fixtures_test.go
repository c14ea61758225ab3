package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cssyntax/csssyntax/css"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestConformanceFixtures runs the round-trip check over every .css file
// under testdata/fixtures and snapshots each fixture's parsed rule tree
// with go-snaps, so a change in parse shape shows up as a diff in
// go-snaps' __snapshots__ directory instead of a silent behavior change.
func TestConformanceFixtures(t *testing.T) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get current file path")
	}
	fixturesDir := filepath.Join(filepath.Dir(filename), "testdata", "fixtures")

	entries, err := os.ReadDir(fixturesDir)
	if err != nil {
		t.Skipf("no fixtures directory at %s: %v", fixturesDir, err)
	}

	runner := NewRunner(fixturesDir, false)

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".css" {
			continue
		}
		name := entry.Name()
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(fixturesDir, name)

			result := runner.RunTest(path)
			if result.Status == Error {
				t.Fatalf("error running fixture: %s", result.Message)
			}
			if result.Status == Fail {
				t.Errorf("round-trip mismatch: %s", result.Message)
			}

			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading fixture: %v", err)
			}
			rules := css.ParseStylesheet(string(src), css.Options{SkipWhitespace: true, SkipComments: true})
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_tree", name), css.DumpList(rules))
		})
	}
}
