package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osupp/ppplus/beatmap"
	"github.com/osupp/ppplus/diffcalc"
)

var (
	diffMods        string
	diffPreset      string
	diffLazer       bool
	diffClockRate   float64
	diffPassed      int
)

var diffCmd = &cobra.Command{
	Use:   "diff <beatmap.json>",
	Short: "compute difficulty attributes for a beatmap fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffMods, "mods", "", "comma-separated mod acronyms, e.g. HD,DT")
	diffCmd.Flags().StringVar(&diffPreset, "preset", "", "named mod preset from the config file")
	diffCmd.Flags().BoolVar(&diffLazer, "lazer", false, "score the map under lazer slider-head accuracy rules")
	diffCmd.Flags().Float64Var(&diffClockRate, "clock-rate", 0, "override the mod-implied clock rate (0 = use mods)")
	diffCmd.Flags().IntVar(&diffPassed, "passed-objects", 0, "only consider the first N objects (0 = all)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	mods, err := resolveMods(diffMods, diffPreset)
	if err != nil {
		return err
	}

	bm, err := loadFixture(args[0])
	if err != nil {
		return err
	}

	d := beatmap.Difficulty{
		Mods:              mods,
		ClockRateOverride: diffClockRate,
		PassedObjects:     diffPassed,
		Lazer:             diffLazer,
	}

	attrs := diffcalc.Calculate(bm, d)
	printDifficultyTable(cmd, attrs)
	return nil
}

func resolveMods(modsFlag, preset string) (beatmap.Mods, error) {
	if preset != "" {
		cfg, err := loadModPresetConfig(configPath)
		if err != nil {
			return 0, err
		}
		spec, ok := cfg.resolve(preset)
		if !ok {
			return 0, fmt.Errorf("unknown mod preset %q", preset)
		}
		return parseMods(spec)
	}

	return parseMods(modsFlag)
}

func loadFixture(path string) (*beatmap.Beatmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open beatmap: %w", err)
	}
	defer f.Close()

	return beatmap.FromJSON(f)
}

func printDifficultyTable(cmd *cobra.Command, attrs diffcalc.DifficultyAttributes) {
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"Metric", "Value"})

	rows := [][2]string{
		{"Stars", fmt.Sprintf("%.3f", attrs.Stars)},
		{"Aim", fmt.Sprintf("%.3f", attrs.Aim)},
		{"Jump", fmt.Sprintf("%.3f", attrs.Jump)},
		{"Flow", fmt.Sprintf("%.3f", attrs.Flow)},
		{"Precision", fmt.Sprintf("%.3f", attrs.Precision)},
		{"Speed", fmt.Sprintf("%.3f", attrs.Speed)},
		{"Stamina", fmt.Sprintf("%.3f", attrs.Stamina)},
		{"Accuracy", fmt.Sprintf("%.3f", attrs.Accuracy)},
		{"AR", fmt.Sprintf("%.2f", attrs.AR)},
		{"OD", fmt.Sprintf("%.2f", attrs.OD())},
		{"Circles", humanize.Comma(int64(attrs.NCircles))},
		{"Sliders", humanize.Comma(int64(attrs.NSliders))},
		{"Spinners", humanize.Comma(int64(attrs.NSpinners))},
		{"Max combo", humanize.Comma(int64(attrs.MaxCombo))},
		{"Difficult sliders", fmt.Sprintf("%.2f", attrs.AimDifficultSliderCount)},
	}

	for _, r := range rows {
		table.Append([]string{r[0], r[1]})
	}

	table.Render()

	for _, line := range strings.Split(strings.TrimRight(tableString.String(), "\n"), "\n") {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
