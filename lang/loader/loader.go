// Package loader consumes a parsed XML tree and produces a validated,
// order-sorted instruction vector plus the label table. It is the single
// boundary in the module that imports encoding/xml; see DESIGN.md for why
// that is a stdlib choice rather than an ecosystem one.
package loader

import (
	"encoding/xml"
	"io"
	"regexp"
	"sort"
	"strconv"

	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
	"github.com/ipp22/interpreter/lang/value"
)

var intRe = regexp.MustCompile(`^[+-]?[0-9]+$`)

// Load reads an entire IPPcode22 XML document from r, validates its
// structure, and returns the sorted instruction vector and label table.
// All failures are *ipperr.Error values carrying the exit code named by
// spec §4.1/§6.
func Load(r io.Reader) (*program.Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ipperr.New(31, "could not read XML source: %v", err)
	}

	var root xmlProgram
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, ipperr.New(31, "invalid XML: %v", err)
	}

	if root.XMLName.Local != "program" || root.Language != "IPPcode22" {
		return nil, ipperr.New(32, "root element must be <program language=\"IPPcode22\">")
	}

	seenOrders := make(map[int]bool, len(root.Children))
	instrs := make([]program.Instruction, 0, len(root.Children))

	for _, child := range root.Children {
		if child.XMLName.Local != "instruction" {
			return nil, ipperr.New(32, "unexpected root child <%s>", child.XMLName.Local)
		}
		if child.Order == "" || child.Opcode == "" {
			return nil, ipperr.New(32, "instruction missing order or opcode attribute")
		}
		order, ok := parsePositiveInt(child.Order)
		if !ok {
			return nil, ipperr.New(32, "invalid order attribute %q", child.Order)
		}
		if seenOrders[order] {
			return nil, ipperr.New(32, "duplicate order number %d", order)
		}
		seenOrders[order] = true

		op, ok := program.LookupOpcode(child.Opcode)
		if !ok {
			return nil, ipperr.New(32, "unknown opcode %q", child.Opcode)
		}

		args, err := decodeArgs(child.Args)
		if err != nil {
			return nil, err
		}
		if want := op.Arity(); len(args) != want {
			return nil, ipperr.New(32, "%s takes %d argument(s), got %d", op, want, len(args))
		}

		instrs = append(instrs, program.Instruction{Opcode: op, Order: order, Args: args})
	}

	sort.Slice(instrs, func(i, j int) bool { return instrs[i].Order < instrs[j].Order })

	labels := make(map[string]int, len(instrs))
	for i, instr := range instrs {
		if instr.Opcode == program.LABEL {
			name := instr.Args[0].Label
			if _, exists := labels[name]; exists {
				return nil, ipperr.New(52, "duplicate label %q", name)
			}
			labels[name] = i
		}
	}

	return &program.Program{Instructions: instrs, Labels: labels}, nil
}

type orderedArg struct {
	order int
	arg   program.Argument
}

var argTagOrder = map[string]int{"arg1": 1, "arg2": 2, "arg3": 3}

func decodeArgs(children []xmlNode) ([]program.Argument, error) {
	ordered := make([]orderedArg, 0, len(children))
	for _, c := range children {
		pos, ok := argTagOrder[c.XMLName.Local]
		if !ok {
			return nil, ipperr.New(32, "unexpected argument tag <%s>", c.XMLName.Local)
		}
		arg, err := decodeArgument(c.Type, c.Text)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, orderedArg{order: pos, arg: arg})
	}

	sort.Slice(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })

	args := make([]program.Argument, len(ordered))
	for i, oa := range ordered {
		if oa.order != i+1 {
			return nil, ipperr.New(32, "argument positions are not consecutive starting at 1")
		}
		args[i] = oa.arg
	}
	return args, nil
}

func decodeArgument(argType, text string) (program.Argument, error) {
	switch argType {
	case "var":
		if len(text) < 4 {
			return program.Argument{}, ipperr.New(31, "invalid variable reference %q", text)
		}
		var tag program.FrameTag
		switch text[:3] {
		case "GF@":
			tag = program.GF
		case "LF@":
			tag = program.LF
		case "TF@":
			tag = program.TF
		default:
			return program.Argument{}, ipperr.New(31, "invalid variable reference %q", text)
		}
		return program.Argument{Kind: program.ArgVar, Frame: tag, Name: text[3:]}, nil

	case "string":
		decoded, err := decodeStringLiteral(text)
		if err != nil {
			return program.Argument{}, err
		}
		return program.Argument{Kind: program.ArgString, Literal: value.Str(decoded)}, nil

	case "int":
		if text == "" || !intRe.MatchString(text) {
			return program.Argument{}, ipperr.New(32, "invalid integer literal %q", text)
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return program.Argument{}, ipperr.New(32, "invalid integer literal %q", text)
		}
		return program.Argument{Kind: program.ArgInt, Literal: value.Int(n)}, nil

	case "bool":
		switch text {
		case "true", "false":
			return program.Argument{Kind: program.ArgBool, Literal: value.Bool(text == "true")}, nil
		default:
			return program.Argument{}, ipperr.New(31, "invalid bool literal %q", text)
		}

	case "nil":
		if text != "nil" {
			return program.Argument{}, ipperr.New(31, "invalid nil literal %q", text)
		}
		return program.Argument{Kind: program.ArgNil, Literal: value.NilValue}, nil

	case "label":
		if text == "" {
			return program.Argument{}, ipperr.New(31, "empty label name")
		}
		return program.Argument{Kind: program.ArgLabel, Label: text}, nil

	case "type":
		switch text {
		case "int", "string", "bool":
			return program.Argument{Kind: program.ArgType, TypeName: text}, nil
		default:
			return program.Argument{}, ipperr.New(31, "invalid type name %q", text)
		}

	default:
		return program.Argument{}, ipperr.New(32, "unknown argument declared type %q", argType)
	}
}

func parsePositiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
