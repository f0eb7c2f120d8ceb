package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/config"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "decksplit.yaml")

	if _, err := writeDefaultConfig(path, false); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg, err := config.LoadConfig(path, true)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.DeckColumn != config.DefaultDeckColumn || cfg.ManifestFile != config.DefaultManifestFile {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if _, err := writeDefaultConfig(path, false); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if _, err := writeDefaultConfig(path, true); err != nil {
		t.Fatalf("forced overwrite failed: %v", err)
	}
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cards.csv")
	content := "Word,Translation,Decks\nhond,dog,Animals > Basics\nbrood,bread,Food\n"
	if err := os.WriteFile(input, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "decksplit.yaml")
	if _, err := writeDefaultConfig(cfgPath, false); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "packs")

	rootCmd.SetArgs([]string{"run", "--config", cfgPath, "--input", input, "--output", out, "--log-level", "error"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, name := range []string{"Animals_-_Basics.csv", "Food.csv", "store_metadata.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(out, "store_metadata.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"name": "Animals > Basics"`) {
		t.Fatalf("unexpected manifest:\n%s", data)
	}
}

func TestBindEnvOverridesDefault(t *testing.T) {
	t.Setenv("DECKSPLIT_DECK_COLUMN", "Stapel")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addGlobalFlags(flags)
	env := viper.New()
	if err := bindEnv(env, flags); err != nil {
		t.Fatal(err)
	}

	if got := env.GetString("deck-column"); got != "Stapel" {
		t.Fatalf("expected env value, got %q", got)
	}
	if err := flags.Parse([]string{"--deck-column", "Decks"}); err != nil {
		t.Fatal(err)
	}
	if got := env.GetString("deck-column"); got != "Decks" {
		t.Fatalf("flag should win over env, got %q", got)
	}
}
