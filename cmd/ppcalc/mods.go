package main

import (
	"fmt"
	"strings"

	"github.com/osupp/ppplus/beatmap"
)

// parseMods turns a comma-separated list of two-letter mod acronyms (as
// accepted by --mods) into a beatmap.Mods bitset.
func parseMods(spec string) (beatmap.Mods, error) {
	var mods beatmap.Mods

	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, nil
	}

	for _, tok := range strings.Split(spec, ",") {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}

		switch tok {
		case "HD":
			mods |= beatmap.ModHidden
		case "FL":
			mods |= beatmap.ModFlashlight
		case "HR":
			mods |= beatmap.ModHardRock
		case "EZ":
			mods |= beatmap.ModEasy
		case "DT", "NC":
			mods |= beatmap.ModDoubleTime
		case "HT":
			mods |= beatmap.ModHalfTime
		case "TD":
			mods |= beatmap.ModTouchDevice
		case "RX":
			mods |= beatmap.ModRelax
		case "AP":
			mods |= beatmap.ModAutopilot
		case "NF":
			mods |= beatmap.ModNoFail
		case "SO":
			mods |= beatmap.ModSpunOut
		default:
			return 0, fmt.Errorf("unknown mod %q", tok)
		}
	}

	return mods, nil
}
