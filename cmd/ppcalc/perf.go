package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osupp/ppplus/beatmap"
	"github.com/osupp/ppplus/diffcalc"
	"github.com/osupp/ppplus/perfcalc"
)

var (
	perfMods             string
	perfPreset           string
	perfLazer            bool
	perfClassicSliderAcc bool
	perfN300             int
	perfN100             int
	perfN50              int
	perfMisses           int
	perfCombo            int
)

var perfCmd = &cobra.Command{
	Use:   "perf <beatmap.json>",
	Short: "compute performance points for a played score against a beatmap fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runPerf,
}

func init() {
	perfCmd.Flags().StringVar(&perfMods, "mods", "", "comma-separated mod acronyms, e.g. HD,DT")
	perfCmd.Flags().StringVar(&perfPreset, "preset", "", "named mod preset from the config file")
	perfCmd.Flags().BoolVar(&perfLazer, "lazer", false, "score the map under lazer slider-head accuracy rules")
	perfCmd.Flags().BoolVar(&perfClassicSliderAcc, "classic-slider-acc", false, "sliders don't carry their own hit judgement")
	perfCmd.Flags().IntVar(&perfN300, "n300", 0, "count of 300 judgements")
	perfCmd.Flags().IntVar(&perfN100, "n100", 0, "count of 100 judgements")
	perfCmd.Flags().IntVar(&perfN50, "n50", 0, "count of 50 judgements")
	perfCmd.Flags().IntVar(&perfMisses, "misses", 0, "count of misses")
	perfCmd.Flags().IntVar(&perfCombo, "combo", 0, "max combo achieved (0 = full combo)")
}

func runPerf(cmd *cobra.Command, args []string) error {
	mods, err := resolveMods(perfMods, perfPreset)
	if err != nil {
		return err
	}

	bm, err := loadFixture(args[0])
	if err != nil {
		return err
	}

	d := beatmap.Difficulty{Mods: mods, Lazer: perfLazer}
	attrs := diffcalc.Calculate(bm, d)

	combo := perfCombo
	if combo == 0 {
		combo = attrs.MaxCombo
	}

	state := perfcalc.ScoreState{
		N300:     perfN300,
		N100:     perfN100,
		N50:      perfN50,
		Misses:   perfMisses,
		MaxCombo: combo,
	}
	if state.TotalHits() == 0 {
		state.N300 = attrs.NObjects()
		state.MaxCombo = attrs.MaxCombo
	}

	result := perfcalc.Calculate(attrs, mods, state, perfClassicSliderAcc)
	printPerformanceTable(cmd, result, state)
	return nil
}

func printPerformanceTable(cmd *cobra.Command, result perfcalc.Attributes, state perfcalc.ScoreState) {
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"Metric", "Value"})

	rows := [][2]string{
		{"PP", fmt.Sprintf("%.2f", result.PP)},
		{"PP aim", fmt.Sprintf("%.2f", result.PPAim)},
		{"PP jump", fmt.Sprintf("%.2f", result.PPJumpAim)},
		{"PP flow", fmt.Sprintf("%.2f", result.PPFlowAim)},
		{"PP precision", fmt.Sprintf("%.2f", result.PPPrecision)},
		{"PP speed", fmt.Sprintf("%.2f", result.PPSpeed)},
		{"PP stamina", fmt.Sprintf("%.2f", result.PPStamina)},
		{"PP accuracy", fmt.Sprintf("%.2f", result.PPAccuracy)},
		{"Stars", fmt.Sprintf("%.3f", result.Stars())},
		{"Accuracy", fmt.Sprintf("%.2f%%", state.Accuracy()*100)},
		{"Effective misses", fmt.Sprintf("%.2f", result.EffectiveMissCount)},
		{"Combo", humanize.Comma(int64(state.MaxCombo))},
	}

	for _, r := range rows {
		table.Append([]string{r[0], r[1]})
	}

	table.Render()

	for _, line := range strings.Split(strings.TrimRight(tableString.String(), "\n"), "\n") {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
