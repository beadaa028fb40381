package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	seedPhrase, players, lineupPath, reportDir = "", nil, "", ""
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestSimulate_SavesReport(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "", "simulate", "-n", "20", "--seed", "cli", "--report-dir", dir,
		"--player", "a=cost", "--player", "b=ascending", "--player", "c=shortest-row")
	if err != nil {
		t.Fatalf("simulate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Point totals after 20 rounds:") || !strings.Contains(out, "Player c:") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	files, _ := filepath.Glob(filepath.Join(dir, "*.json"))
	if len(files) != 1 {
		t.Fatalf("reports = %v", files)
	}

	id := strings.TrimSuffix(filepath.Base(files[0]), ".json")
	out, err = runCLI(t, "", "report", id, "--report-dir", dir)
	if err != nil {
		t.Fatalf("report: %v\n%s", err, out)
	}
	if !strings.Contains(out, "20 rounds") {
		t.Fatalf("unexpected report output:\n%s", out)
	}
}

func TestPlay_ManualPlayerFromStdin(t *testing.T) {
	// Sweep every card value over and over; answers that are not a held
	// card or a valid row are re-prompted, so every prompt is eventually met.
	var in strings.Builder
	for range 30 {
		for c := 1; c <= 104; c++ {
			in.WriteString(strconv.Itoa(c) + "\n")
		}
	}
	out, err := runCLI(t, in.String(), "play", "--seed", "manual", "--player", "me=manual", "--player", "bot=descending")
	if err != nil {
		t.Fatalf("play: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Player 'me' has to choose a card to play") || !strings.Contains(out, "Totals after 1 rounds:") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestSimulate_RejectsManualPlayers(t *testing.T) {
	if _, err := runCLI(t, "", "simulate", "-n", "1", "--player", "me=manual"); err == nil {
		t.Fatal("expected quiet/manual error")
	}
}

func TestLineupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineup.json")
	if err := os.WriteFile(path, []byte(`[{"id":"x","strategy":"random"},{"id":"y","strategy":"cheater"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "", "simulate", "-n", "5", "--lineup", path)
	if err != nil {
		t.Fatalf("simulate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Player y: 0 ") {
		t.Fatalf("cheater scored:\n%s", out)
	}
}

func TestRounds_MustBePositive(t *testing.T) {
	for _, cmd := range []string{"play", "simulate"} {
		for _, n := range []string{"0", "-1"} {
			out, err := runCLI(t, "", cmd, "-n", n, "--player", "a=ascending")
			if err == nil {
				t.Fatalf("%s -n %s accepted", cmd, n)
			}
			if strings.Contains(out, "Totals after") || strings.Contains(out, "Point totals") {
				t.Fatalf("%s -n %s printed totals:\n%s", cmd, n, out)
			}
		}
	}
}
