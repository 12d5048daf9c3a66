package ops

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/matzehuels/graphcanvas/pkg/errors"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		tokens  []string
		want    Args
		wantErr bool
	}{
		{nil, Args{}, false},
		{[]string{"6"}, Args{Number(6)}, false},
		{[]string{"6", "1,2", "100"}, Args{Number(6), List(1, 2), Number(100)}, false},
		{[]string{"3,"}, Args{List(3)}, false},
		{[]string{"-1.5"}, Args{Number(-1.5)}, false},
		{[]string{"x"}, nil, true},
		{[]string{"1,y"}, nil, true},
		{[]string{"NaN"}, nil, true},
	}
	for _, tt := range tests {
		got, err := ParseArgs(tt.tokens)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseArgs(%q) error = %v, wantErr %v", tt.tokens, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("ParseArgs(%q) code = %s", tt.tokens, errors.GetCode(err))
			}
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseArgs(%q) = %v, want %v", tt.tokens, got, tt.want)
		}
	}
}

func TestArgsJSON(t *testing.T) {
	var args Args
	if err := json.Unmarshal([]byte(`[6, [1, 2], 100]`), &args); err != nil {
		t.Fatal(err)
	}
	want := Args{Number(6), List(1, 2), Number(100)}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("decoded %v, want %v", args, want)
	}

	out, err := json.Marshal(Args{Number(6), List(1, 2), List()})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `[6,[1,2],[]]` {
		t.Errorf("encoded %s", out)
	}

	for _, bad := range []string{`["a"]`, `[[1, "b"]]`, `[{"n": 1}]`} {
		if err := json.Unmarshal([]byte(bad), &args); err == nil {
			t.Errorf("Unmarshal(%s) succeeded", bad)
		}
	}
}

func TestArgsAccessors(t *testing.T) {
	args := Args{Number(5), List(1, -2), Number(2.5)}

	if n, err := args.Int(0, "n"); err != nil || n != 5 {
		t.Errorf("Int(0) = %d, %v", n, err)
	}
	if _, err := args.Int(2, "k"); err == nil {
		t.Error("Int accepted a fractional value")
	}
	if _, err := args.Int(1, "k"); err == nil {
		t.Error("Int accepted a list")
	}
	if _, err := args.Int(3, "k"); err == nil {
		t.Error("Int accepted a missing argument")
	}

	if xs, err := args.Ints(1, "offsets"); err != nil || !reflect.DeepEqual(xs, []int{1, -2}) {
		t.Errorf("Ints(1) = %v, %v", xs, err)
	}
	if xs, err := args.Ints(0, "offsets"); err != nil || !reflect.DeepEqual(xs, []int{5}) {
		t.Errorf("Ints(0) = %v, %v", xs, err)
	}

	if f, err := args.Float(2, "r", 100); err != nil || f != 2.5 {
		t.Errorf("Float(2) = %g, %v", f, err)
	}
	if f, err := args.Float(9, "r", 100); err != nil || f != 100 {
		t.Errorf("Float default = %g, %v", f, err)
	}
	if _, err := args.Float(1, "r", 100); err == nil {
		t.Error("Float accepted a list")
	}
}

func TestArgString(t *testing.T) {
	if s := List(1, 2.5).String(); s != "1,2.5" {
		t.Errorf("List.String() = %q", s)
	}
	if s := Number(6).String(); s != "6" {
		t.Errorf("Number.String() = %q", s)
	}
}
