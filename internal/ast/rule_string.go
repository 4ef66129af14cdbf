// Code generated by "stringer -type Rule -output rule_string.go"; adapted by hand because the
// generator cannot be run in this environment.

package ast

var ruleNames = map[Rule]string{
	RuleUnknown:            "Unknown",
	RuleNumber:             "Number",
	RuleSymbol:             "Symbol",
	RuleFactor:             "Factor",
	RuleMulExpr:            "MulExpr",
	RuleAddExpr:            "AddExpr",
	RuleShiftExpr:          "ShiftExpr",
	RuleAndExpr:            "AndExpr",
	RuleOrExpr:             "OrExpr",
	RuleXOrExpr:            "XOrExpr",
	RuleAddrExpr:           "AddrExpr",
	RuleExpr:               "Expr",
	RuleEquate:             "Equate",
	RuleLabelDef:           "LabelDef",
	RuleOpImplied:          "Op_Implied",
	RuleOpAccumulator:      "Op_Accumulator",
	RuleOpImmediate:        "Op_Immediate",
	RuleOpAbsolute:         "Op_Absolute",
	RuleOpAbsoluteX:        "Op_AbsoluteX",
	RuleOpAbsoluteY:        "Op_AbsoluteY",
	RuleOpZeroPage:         "Op_ZeroPage",
	RuleOpZeroPageX:        "Op_ZeroPageX",
	RuleOpZeroPageY:        "Op_ZeroPageY",
	RuleOpIndirect:         "Op_Indirect",
	RuleOpIndirectX:        "Op_IndirectX",
	RuleOpIndirectY:        "Op_IndirectY",
	RuleOpRelative:         "Op_Relative",
	RuleOpZeroPageRelative: "Op_ZeroPageRelative",
	RuleOpInstruction:      "Op_Instruction",
	RuleDirective:          "Directive",
	RuleMacroDef:           "MacroDef",
	RuleMacroCall:          "MacroCall",
	RuleLoop:               "Loop",
	RuleComment:            "Comment",
	RuleStatement:          "Statement",
	RuleLine:               "Line",
	RuleProg:               "Prog",
}

func (r Rule) String() string {
	if s, ok := ruleNames[r]; ok {
		return s
	}

	return "Rule(?)"
}
