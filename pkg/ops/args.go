package ops

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/graphcanvas/pkg/errors"
)

// Arg is a single positional argument: a number or a list of numbers.
type Arg struct {
	Num    float64
	List   []float64
	IsList bool
}

// Number returns a scalar argument.
func Number(v float64) Arg { return Arg{Num: v} }

// List returns a list argument.
func List(vs ...float64) Arg { return Arg{List: vs, IsList: true} }

// MarshalJSON encodes the argument as a number or an array.
func (a Arg) MarshalJSON() ([]byte, error) {
	if a.IsList {
		if a.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.List)
	}
	return json.Marshal(a.Num)
}

// UnmarshalJSON accepts a number or an array of numbers.
func (a *Arg) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []float64
		if err := json.Unmarshal(data, &list); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidArgument, err, "argument must be a number or a list of numbers")
		}
		*a = List(list...)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArgument, err, "argument must be a number or a list of numbers")
	}
	*a = Number(n)
	return nil
}

func (a Arg) String() string {
	if !a.IsList {
		return formatFloat(a.Num)
	}
	parts := make([]string, len(a.List))
	for i, v := range a.List {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ",")
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// Args is a positional argument list.
type Args []Arg

// ParseArgs parses command-line tokens. A token containing a comma becomes a
// list; a lone trailing comma makes a one-element list ("3,").
func ParseArgs(tokens []string) (Args, error) {
	args := make(Args, 0, len(tokens))
	for i, tok := range tokens {
		if !strings.Contains(tok, ",") {
			v, err := parseNumber(tok)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidArgument, err, "argument %d: %q is not a number", i+1, tok)
			}
			args = append(args, Number(v))
			continue
		}
		var list []float64
		for _, part := range strings.Split(tok, ",") {
			if part = strings.TrimSpace(part); part == "" {
				continue
			}
			v, err := parseNumber(part)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidArgument, err, "argument %d: %q is not a number", i+1, part)
			}
			list = append(list, v)
		}
		args = append(args, List(list...))
	}
	return args, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// Int returns argument i as an integer. It fails when the argument is
// missing, a list, or has a fractional part.
func (a Args) Int(i int, name string) (int, error) {
	if i >= len(a) {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "missing argument %d (%s)", i+1, name)
	}
	return toInt(a[i], i, name)
}

// Float returns argument i, or def when it is absent.
func (a Args) Float(i int, name string, def float64) (float64, error) {
	if i >= len(a) {
		return def, nil
	}
	if a[i].IsList {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "argument %d (%s) must be a number, got a list", i+1, name)
	}
	return a[i].Num, nil
}

// Ints returns argument i as a list of integers. A scalar is accepted as a
// one-element list.
func (a Args) Ints(i int, name string) ([]int, error) {
	if i >= len(a) {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "missing argument %d (%s)", i+1, name)
	}
	if !a[i].IsList {
		n, err := toInt(a[i], i, name)
		if err != nil {
			return nil, err
		}
		return []int{n}, nil
	}
	out := make([]int, len(a[i].List))
	for j, v := range a[i].List {
		n, err := toInt(Number(v), i, name)
		if err != nil {
			return nil, err
		}
		out[j] = n
	}
	return out, nil
}

func toInt(arg Arg, i int, name string) (int, error) {
	if arg.IsList {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "argument %d (%s) must be a number, got a list", i+1, name)
	}
	if arg.Num != math.Trunc(arg.Num) || math.Abs(arg.Num) > math.MaxInt32 {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "argument %d (%s) must be an integer, got %s", i+1, name, arg)
	}
	return int(arg.Num), nil
}
