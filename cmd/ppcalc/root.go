package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ppcalc",
	Short: "osu!standard difficulty and performance calculator",
	Long: `ppcalc computes pp+ difficulty attributes (aim/jump/flow/precision,
speed/stamina, rhythm-based accuracy) and performance points for
osu!standard beatmaps described as minimal JSON fixtures.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ppcalc: use 'diff', 'perf' or 'strains' — see --help")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML mod-preset config (optional)")

	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(perfCmd)
	rootCmd.AddCommand(strainsCmd)
}
