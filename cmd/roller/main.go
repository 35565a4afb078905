// Package main is the entry point for the build roller CLI
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/build-roller/internal/config"
	"github.com/KirkDiggler/build-roller/internal/errors"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "build-roller",
	Short: "Roll a random equipment and spell build",
	Long: `build-roller reads a spreadsheet of weapons, off-hand items, spells,
armor sets and spirits, then rolls one loadout that respects handedness,
casting rules, the memory slot budget and armor affinity.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describe(err))
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.String("data", config.DefaultDataFile, "catalog source, .csv or .xlsx")
	flags.Uint64("seed", 0, "seed for reproducible builds")
	flags.String("format", "text", "output format: text, json or yaml")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("redis-addr", "", "share parsed catalogs through Redis at this address")

	bindings := map[string]string{
		config.KeyData:      "data",
		config.KeySeed:      "seed",
		config.KeyFormat:    "format",
		config.KeyLogLevel:  "log-level",
		config.KeyRedisAddr: "redis-addr",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(cacheCmd)
}

// describe turns the errors users can fix into instructions
func describe(err error) string {
	if errors.IsNotFound(err) {
		meta := errors.GetMeta(err)
		if path, ok := meta["path"].(string); ok {
			msg := fmt.Sprintf("catalog source %q was not found. Put it in the working directory "+
				"or next to the build-roller executable, or pass --data", path)
			if tried, ok := meta["tried"].([]string); ok && len(tried) > 0 {
				msg += "\nsearched:\n  " + strings.Join(tried, "\n  ")
			}
			return msg
		}
	}
	return err.Error()
}
