// Code generated by "stringer -type Mode -output mode_string.go"; adapted by hand because the
// generator cannot be run in this environment.

package opcode

var modeNames = map[Mode]string{
	ModeImplied:          "Implied",
	ModeAccumulator:      "Accumulator",
	ModeImmediate:        "Immediate",
	ModeZeroPage:         "ZeroPage",
	ModeZeroPageX:        "ZeroPageX",
	ModeZeroPageY:        "ZeroPageY",
	ModeZeroPageRelative: "ZeroPageRelative",
	ModeRelative:         "Relative",
	ModeIndirectX:        "IndirectX",
	ModeIndirectY:        "IndirectY",
	ModeIndirect:         "Indirect",
	ModeAbsolute:         "Absolute",
	ModeAbsoluteX:        "AbsoluteX",
	ModeAbsoluteY:        "AbsoluteY",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}

	return "Mode(?)"
}
