package life

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the board geometry. The two supported geometries differ only
// in dimensions and in how many bits of each packed column are in use.
type Mode int

const (
	// ModeA is a 128x64 board stored in 64-bit columns.
	ModeA Mode = iota
	// ModeB is a 64x32 board stored in the low 32 bits of 64-bit columns.
	// Bits above bit 31 are never set.
	ModeB
)

// maxWidth is the column capacity of every board buffer. ModeB uses only a
// prefix of it.
const maxWidth = 128

// Width returns the number of columns for the mode.
func (m Mode) Width() int {
	if m == ModeB {
		return 64
	}
	return 128
}

// Height returns the number of rows for the mode. It always equals the
// effective column bit width, so a circular rotate over the column's live
// bits is a circular walk over the rows.
func (m Mode) Height() int {
	if m == ModeB {
		return 32
	}
	return 64
}

// colMask masks a column value down to the mode's effective bit width.
func (m Mode) colMask() uint64 {
	if m == ModeB {
		return 0xffffffff
	}
	return ^uint64(0)
}

func (m Mode) String() string {
	if m == ModeB {
		return "B"
	}
	return "A"
}

// ParseMode converts a textual mode name ("a" or "b", any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "":
		return ModeA, nil
	case "b":
		return ModeB, nil
	}
	return ModeA, fmt.Errorf("unknown mode %q", s)
}

// validate panics on a geometry the packed representation cannot hold.
// Misconfiguration here is a programming error, not a runtime condition.
func (m Mode) validate() {
	if m != ModeA && m != ModeB {
		panic(fmt.Sprintf("life: invalid mode %d", int(m)))
	}
	if m.Width() > maxWidth || m.Height() > 64 {
		panic(fmt.Sprintf("life: mode %s exceeds board capacity", m))
	}
}

// Config controls the board geometry and deterministic seeding.
type Config struct {
	Mode Mode
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Mode: ModeA, Seed: 1337}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
