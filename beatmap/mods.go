package beatmap

// Mods is a bitset of the osu!standard mods this core recognizes. Unknown
// bits are simply never set by callers and are ignored by every consumer,
// matching §6's "unknown flags are ignored" contract.
type Mods uint32

const (
	ModHidden Mods = 1 << iota
	ModFlashlight
	ModHardRock
	ModEasy
	ModDoubleTime
	ModHalfTime
	ModTouchDevice
	ModRelax
	ModAutopilot
	ModNoFail
	ModSpunOut
)

// Active reports whether every bit of sub is set in m.
func (m Mods) Active(sub Mods) bool {
	return m&sub == sub
}

func (m Mods) HD() bool { return m.Active(ModHidden) }
func (m Mods) FL() bool { return m.Active(ModFlashlight) }
func (m Mods) HR() bool { return m.Active(ModHardRock) }
func (m Mods) EZ() bool { return m.Active(ModEasy) }
func (m Mods) DT() bool { return m.Active(ModDoubleTime) }
func (m Mods) HT() bool { return m.Active(ModHalfTime) }
func (m Mods) TD() bool { return m.Active(ModTouchDevice) }
func (m Mods) RX() bool { return m.Active(ModRelax) }
func (m Mods) AP() bool { return m.Active(ModAutopilot) }
func (m Mods) NF() bool { return m.Active(ModNoFail) }
func (m Mods) SO() bool { return m.Active(ModSpunOut) }

// ClockRate returns the playback speed multiplier implied by DT/HT. A
// caller-supplied override (Difficulty.ClockRateOverride) always wins over
// this; it only covers the mod-implied default.
func (m Mods) ClockRate() float64 {
	switch {
	case m.DT():
		return 1.5
	case m.HT():
		return 0.75
	default:
		return 1
	}
}

// csMultiplier and arodhpMultiplier (shared by AR, OD and HP) are the
// classic HR/EZ attribute scalars.
func (m Mods) csMultiplier() float64 {
	switch {
	case m.HR():
		return 1.3
	case m.EZ():
		return 0.5
	default:
		return 1
	}
}

func (m Mods) arodhpMultiplier() float64 {
	switch {
	case m.HR():
		return 1.4
	case m.EZ():
		return 0.5
	default:
		return 1
	}
}
