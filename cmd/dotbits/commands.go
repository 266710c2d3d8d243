package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kr/text"
	"github.com/spf13/cast"

	"github.com/iotaledger/dotbits"
	"github.com/iotaledger/dotbits/bitmanip"
	"github.com/iotaledger/dotbits/bitvec"
	"github.com/iotaledger/dotbits/ierrors"
	"github.com/iotaledger/dotbits/logger"
)

const listWrapLimit = 72

var (
	// ErrUnknownCommand is returned if the command is not supported.
	ErrUnknownCommand = ierrors.New("unknown command")
	// ErrInvalidArguments is returned if a command gets the wrong number or kind of arguments.
	ErrInvalidArguments = ierrors.New("invalid arguments")
)

type command struct {
	name  string
	args  string
	usage string
}

var commands = []command{
	{"bits", "<value>", "all bits, least significant first"},
	{"ones", "<value>", "positions of all set bits"},
	{"zeroes", "<value>", "positions of all cleared bits"},
	{"count", "<value>", "number of set and cleared bits"},
	{"get", "<value> <pos>", "state of a single bit"},
	{"set", "<value> <pos> <0|1>", "value with a single bit changed"},
	{"toggle", "<value> <pos>", "value with a single bit flipped"},
	{"first-one", "<value>", "position of the lowest set bit"},
	{"first-zero", "<value>", "position of the lowest cleared bit"},
	{"range", "<value> <start> <end>", "bits [start, end) moved to the bottom"},
	{"setrange", "<value> <start> <end> <insert>", "value with bits [start, end) replaced by the low bits of insert"},
	{"rev", "<value>", "value with the bit order reversed"},
	{"shl", "<value> <n>", "value shifted left, negative n shifts right"},
	{"shr", "<value> <n>", "value shifted right, negative n shifts left"},
	{"from-bits", "<digits>", "value of a binary digit string, most significant first"},
}

func commandUsage() string {
	var builder strings.Builder
	for _, cmd := range commands {
		fmt.Fprintf(&builder, "  %-10s %-32s %s\n", cmd.name, cmd.args, cmd.usage)
	}

	return builder.String()
}

// dispatcher runs commands on the word type selected by the configured width.
type dispatcher struct {
	*logger.WrappedLogger

	opts *options
}

func newDispatcher(log *logger.Logger, opts *options) *dispatcher {
	return &dispatcher{
		WrappedLogger: logger.NewWrappedLogger(log),
		opts:          opts,
	}
}

func (d *dispatcher) dispatch(args []string) (result string, err error) {
	d.LogDebugw("executing command", "args", args, "width", d.opts.Width, "format", d.opts.Format)

	defer func() {
		if err != nil {
			d.LogDebugw("command failed", "args", args, "error", err)
		}
	}()

	switch d.opts.Width {
	case 8:
		return execute(d, newFixedWord[bitmanip.U8](), args)
	case 16:
		return execute(d, newFixedWord[bitmanip.U16](), args)
	case 32:
		return execute(d, newFixedWord[bitmanip.U32](), args)
	case 64:
		return execute(d, newFixedWord[bitmanip.U64](), args)
	case 128:
		return execute(d, newU128Word(), args)
	case 0:
		return execute(d, newFixedWord[bitmanip.Uint](), args)
	default:
		return "", ierrors.WithMessagef(ErrInvalidWidth, "%d", d.opts.Width)
	}
}

func execute[T bitmanip.BitManip[T]](d *dispatcher, w word[T], args []string) (result string, err error) {
	if len(args) < 2 {
		return "", ierrors.WithMessagef(ErrInvalidArguments, "expected a command and a value")
	}

	name, args := args[0], args[1:]
	format := d.opts.Format

	// invalid ranges are programming errors in the library, but plain user input here
	defer func() {
		if r := recover(); r != nil {
			recovered, ok := r.(error)
			if !ok || !ierrors.Is(recovered, dotbits.ErrPosOutOfBounds) {
				panic(r)
			}

			d.LogWarnw("invalid bit range", "command", name, "args", args, "error", recovered)
			result, err = "", recovered
		}
	}()

	if name == "from-bits" {
		if err := expectArgs(name, args, 1); err != nil {
			return "", err
		}

		digits, err := bitvec.Parse(args[0])
		if err != nil {
			return "", err
		}

		value, err := w.fromBits(digits)
		if err != nil {
			return "", err
		}

		return w.format(value, format), nil
	}

	value, err := w.parse(args[0])
	if err != nil {
		return "", err
	}
	args = args[1:]

	switch name {
	case "bits":
		if err := expectArgs(name, args, 0); err != nil {
			return "", err
		}

		var digits strings.Builder
		for pos, bit := range value.Bits() {
			if pos > 0 && pos%8 == 0 {
				digits.WriteByte(' ')
			}

			if bit {
				digits.WriteByte('1')
			} else {
				digits.WriteByte('0')
			}
		}

		return block("bits", text.Wrap(digits.String(), listWrapLimit)), nil

	case "ones":
		if err := expectArgs(name, args, 0); err != nil {
			return "", err
		}

		return positionList("ones", value.Ones()), nil

	case "zeroes":
		if err := expectArgs(name, args, 0); err != nil {
			return "", err
		}

		return positionList("zeroes", value.Zeroes()), nil

	case "count":
		if err := expectArgs(name, args, 0); err != nil {
			return "", err
		}

		return fmt.Sprintf("ones: %d\nzeroes: %d", value.CountOnes(), value.CountZeroes()), nil

	case "get":
		if err := expectArgs(name, args, 1); err != nil {
			return "", err
		}

		pos, err := parsePos(args[0])
		if err != nil {
			return "", err
		}

		set, err := value.Get(pos)
		if err != nil {
			return "", err
		}

		return strconv.FormatBool(set), nil

	case "set":
		if err := expectArgs(name, args, 2); err != nil {
			return "", err
		}

		pos, err := parsePos(args[0])
		if err != nil {
			return "", err
		}

		flag, err := cast.ToBoolE(args[1])
		if err != nil {
			return "", ierrors.WithMessagef(ErrInvalidArguments, "invalid flag %q", args[1])
		}

		return formatResult(w, format)(value.Set(pos, flag))

	case "toggle":
		if err := expectArgs(name, args, 1); err != nil {
			return "", err
		}

		pos, err := parsePos(args[0])
		if err != nil {
			return "", err
		}

		return formatResult(w, format)(value.Toggle(pos))

	case "first-one", "first-zero":
		if err := expectArgs(name, args, 0); err != nil {
			return "", err
		}

		find := value.FirstOne
		if name == "first-zero" {
			find = value.FirstZero
		}

		pos, found := find()
		if !found {
			return "none", nil
		}

		return strconv.FormatUint(uint64(pos), 10), nil

	case "range", "setrange":
		expected := 2
		if name == "setrange" {
			expected = 3
		}
		if err := expectArgs(name, args, expected); err != nil {
			return "", err
		}

		start, err := parsePos(args[0])
		if err != nil {
			return "", err
		}

		end, err := parsePos(args[1])
		if err != nil {
			return "", err
		}

		if name == "range" {
			return w.format(value.Range(start, end), format), nil
		}

		insert, err := w.parse(args[2])
		if err != nil {
			return "", err
		}

		return w.format(value.SetRange(start, end, insert), format), nil

	case "rev":
		if err := expectArgs(name, args, 0); err != nil {
			return "", err
		}

		return w.format(value.Reverse(), format), nil

	case "shl", "shr":
		if err := expectArgs(name, args, 1); err != nil {
			return "", err
		}

		amount, err := cast.ToIntE(args[0])
		if err != nil {
			return "", ierrors.WithMessagef(ErrInvalidArguments, "invalid shift amount %q", args[0])
		}

		if name == "shl" {
			return w.format(value.SignedLeftShift(amount), format), nil
		}

		return w.format(value.SignedRightShift(amount), format), nil

	default:
		return "", ierrors.WithMessagef(ErrUnknownCommand, "%q", name)
	}
}

func formatResult[T bitmanip.BitManip[T]](w word[T], format string) func(T, error) (string, error) {
	return func(value T, err error) (string, error) {
		if err != nil {
			return "", err
		}

		return w.format(value, format), nil
	}
}

func expectArgs(name string, args []string, count int) error {
	if len(args) != count {
		return ierrors.WithMessagef(ErrInvalidArguments, "%s expects %d argument(s) after the value, got %d", name, count, len(args))
	}

	return nil
}

func parsePos(s string) (uint, error) {
	pos, err := cast.ToUintE(s)
	if err != nil {
		return 0, ierrors.WithMessagef(ErrInvalidArguments, "invalid position %q", s)
	}

	return pos, nil
}

func positionList(title string, positions []uint) string {
	if len(positions) == 0 {
		return block(title, "none")
	}

	formatted := make([]string, len(positions))
	for i, pos := range positions {
		formatted[i] = strconv.FormatUint(uint64(pos), 10)
	}

	return block(title, text.Wrap(strings.Join(formatted, " "), listWrapLimit))
}

func block(title string, content string) string {
	return title + ":\n" + text.Indent(content, "  ")
}
