package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osupp/ppplus/beatmap"
	"github.com/osupp/ppplus/diffcalc"
)

var (
	strainsMods   string
	strainsPreset string
)

var strainsCmd = &cobra.Command{
	Use:   "strains <beatmap.json>",
	Short: "print each skill's 400ms-section strain-peak timeline",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrains,
}

func init() {
	strainsCmd.Flags().StringVar(&strainsMods, "mods", "", "comma-separated mod acronyms, e.g. HD,DT")
	strainsCmd.Flags().StringVar(&strainsPreset, "preset", "", "named mod preset from the config file")
}

func runStrains(cmd *cobra.Command, args []string) error {
	mods, err := resolveMods(strainsMods, strainsPreset)
	if err != nil {
		return err
	}

	bm, err := loadFixture(args[0])
	if err != nil {
		return err
	}

	strains := diffcalc.CalculateStrains(bm, beatmap.Difficulty{Mods: mods})
	printStrainsTable(cmd, strains)
	return nil
}

func printStrainsTable(cmd *cobra.Command, strains diffcalc.Strains) {
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"Section", "Time (ms)", "Aim", "Jump", "Flow", "Speed", "Stamina"})

	for i := range strains.Aim {
		row := []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.0f", float64(i)*diffcalc.StrainsSectionLen),
			fmt.Sprintf("%.1f", strains.Aim[i]),
			fmt.Sprintf("%.1f", valueOrZero(strains.JumpAim, i)),
			fmt.Sprintf("%.1f", valueOrZero(strains.FlowAim, i)),
			fmt.Sprintf("%.1f", valueOrZero(strains.Speed, i)),
			fmt.Sprintf("%.1f", valueOrZero(strains.Stamina, i)),
		}
		table.Append(row)
	}

	table.Render()

	for _, line := range strings.Split(strings.TrimRight(tableString.String(), "\n"), "\n") {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}

func valueOrZero(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
