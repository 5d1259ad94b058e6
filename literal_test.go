// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package bpgraph_test

import (
	"testing"

	"github.com/creachadair/bpgraph"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

// A literalTest is a test case for a literal parser. If fail >= 0, the parse
// is expected to fail at that offset; otherwise it must succeed with the
// given value and remainder.
type literalTest[T any] struct {
	input string
	want  T
	rest  string
	fail  int
}

func ok[T any](input string, want T, rest string) literalTest[T] {
	return literalTest[T]{input: input, want: want, rest: rest, fail: -1}
}

func bad[T any](input string, offset int) literalTest[T] {
	return literalTest[T]{input: input, fail: offset}
}

func runLiteral[T any](t *testing.T, parse func(bpgraph.Input) (T, bpgraph.Input, error), tests []literalTest[T], opts ...cmp.Option) {
	t.Helper()
	for _, tc := range tests {
		in := bpgraph.NewInput(tc.input)
		got, rest, err := parse(in)
		if tc.fail >= 0 {
			if err == nil {
				t.Errorf("Parse %#q: got %v, want error", tc.input, got)
			} else if off := bpgraph.Offset(err); off != tc.fail {
				t.Errorf("Parse %#q: error at %d, want %d (%v)", tc.input, off, tc.fail, err)
			}
			if rest.Pos() != in.Pos() {
				t.Errorf("Parse %#q: failed parse moved input to %d", tc.input, rest.Pos())
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(got, tc.want, opts...); diff != "" {
			t.Errorf("Parse %#q: (-got, +want)\n%s", tc.input, diff)
		}
		if got := rest.String(); got != tc.rest {
			t.Errorf("Parse %#q: rest is %#q, want %#q", tc.input, got, tc.rest)
		}
	}
}

func TestStringLiteral(t *testing.T) {
	runLiteral(t, bpgraph.StringLiteral, []literalTest[string]{
		ok(`""`, "", ""),
		ok(`"MyEvent"`, "MyEvent", ""),
		ok(`"abc" tail`, "abc", " tail"),
		ok(`"EGPD_Output",`, "EGPD_Output", ","),
		ok(`"a\"b"`, `a"b`, ""),
		ok(`"a\\b"`, `a\b`, ""),
		ok(`"it\'s"`, "it's", ""),
		ok(`"one\ntwo\tthree\r"`, "one\ntwo\tthree\r", ""),
		ok(`"ünïcödé"`, "ünïcödé", ""),

		bad[string](``, 0),
		bad[string](`abc`, 0),
		bad[string](`'abc'`, 0),
		bad[string](`"abc`, 4),   // unterminated
		bad[string](`"abc\"`, 6), // the escaped quote does not close
		bad[string](`"a\qb"`, 2), // invalid escape
	})
}

func TestUUIDLiteral(t *testing.T) {
	runLiteral(t, bpgraph.UUIDLiteral, []literalTest[uuid.UUID]{
		ok("39364FF3470F9B07BCE5F6A5FB580445",
			uuid.MustParse("39364ff3-470f-9b07-bce5-f6a5fb580445"), ""),
		ok("570bad4542cbb0285413eeab4f6dbdda,)",
			uuid.MustParse("570bad45-42cb-b028-5413-eeab4f6dbdda"), ",)"),
		ok("00000000000000000000000000000000 x", uuid.Nil, " x"),

		bad[uuid.UUID]("", 0),
		bad[uuid.UUID]("1088", 0),
		bad[uuid.UUID]("39364FF3470F9B07BCE5F6A5FB58044", 0),    // 31 digits
		bad[uuid.UUID]("39364FF3470F9B07BCE5F6A5FB5804451", 32), // 33 digits
		bad[uuid.UUID]("39364ff3-470f-9b07-bce5-f6a5fb580445", 0),
	})
}

func TestBoolean(t *testing.T) {
	runLiteral(t, bpgraph.Boolean, []literalTest[bool]{
		ok("True", true, ""),
		ok("False", false, ""),
		ok("True,", true, ","),
		ok("False)", false, ")"),

		bad[bool]("", 0),
		bad[bool]("true", 0),
		bad[bool]("FALSE", 0),
		bad[bool]("1", 0),
	})
}

func TestInteger(t *testing.T) {
	runLiteral(t, bpgraph.Integer, []literalTest[int64]{
		ok[int64]("0", 0, ""),
		ok[int64]("1088", 1088, ""),
		ok[int64]("-23088", -23088, ""),
		ok[int64]("+5x", 5, "x"),
		ok[int64]("512\n", 512, "\n"),
		ok[int64]("9223372036854775807", 9223372036854775807, ""),
		ok[int64]("-9223372036854775808", -9223372036854775808, ""),
		ok[int64]("12.5", 12, ".5"),

		bad[int64]("", 0),
		bad[int64]("-", 0),
		bad[int64]("x1", 0),
		bad[int64]("9223372036854775808", 0),
	})
}

func TestDouble(t *testing.T) {
	runLiteral(t, bpgraph.Double, []literalTest[float64]{
		ok("0.5", 0.5, ""),
		ok("-0.5", -0.5, ""),
		ok("+0.25", 0.25, ""),
		ok("2.0", 2.0, ""),
		ok("-560.123400", -560.1234, ""),
		ok("12.250000,", 12.25, ","),
		ok("1088.5)", 1088.5, ")"),

		bad[float64]("", 0),
		bad[float64]("12", 2),
		bad[float64]("3.", 2),
		bad[float64]("3.x", 2),
		bad[float64](".5", 0),
	}, cmpopts.EquateApprox(0, 1e-9))
}

func TestNSLOCText(t *testing.T) {
	runLiteral(t, bpgraph.NSLOCText, []literalTest[[3]string]{
		ok(`NSLOCTEXT("K2Node", "Target", "Target")`, [3]string{"K2Node", "Target", "Target"}, ""),
		ok(`NSLOCTEXT("a","b","c")x`, [3]string{"a", "b", "c"}, "x"),
		ok(`NSLOCTEXT("a" "b" "c")`, [3]string{"a", "b", "c"}, ""),
		ok(`NSLOCTEXT("a", "b", "c",)`, [3]string{"a", "b", "c"}, ""),
		ok(`NSLOCTEXT("", "", "")`, [3]string{}, ""),

		bad[[3]string](`NSLOCTEXT`, 0),
		bad[[3]string](`LOCTEXT("a", "b", "c")`, 0),
		bad[[3]string](`NSLOCTEXT("a", "b")`, 18),
		bad[[3]string](`NSLOCTEXT("a", "b", "c", "d")`, 25),
	})
}

func TestObjectLiteral(t *testing.T) {
	type ref struct{ Class, Path string }
	parse := func(in bpgraph.Input) (ref, bpgraph.Input, error) {
		c, p, rest, err := bpgraph.ObjectLiteral(in)
		return ref{c, p}, rest, err
	}
	runLiteral(t, parse, []literalTest[ref]{
		ok("None", ref{"None", "None"}, ""),
		ok("None,", ref{"None", "None"}, ","),
		ok(`Class'"/Script/UMG.Button"'`, ref{"Class", "/Script/UMG.Button"}, ""),
		ok(`Class'"/Script/Engine.Actor"',x`, ref{"Class", "/Script/Engine.Actor"}, ",x"),
		ok(`Blueprint_Class'"/Game/A \"B\""'`, ref{"Blueprint_Class", `/Game/A "B"`}, ""),

		bad[ref]("", 0),
		bad[ref](`'"x"'`, 0),
		bad[ref](`Class"x"`, 5),
		bad[ref](`Class'"x"`, 9),
		bad[ref](`Class'x'`, 6),
	})
}

func TestLinkedObject(t *testing.T) {
	type link struct {
		Name string
		ID   uuid.UUID
	}
	parse := func(in bpgraph.Input) (link, bpgraph.Input, error) {
		name, id, rest, err := bpgraph.LinkedObject(in)
		return link{name, id}, rest, err
	}
	id := uuid.MustParse("570bad45-42cb-b028-5413-eeab4f6dbdda")
	runLiteral(t, parse, []literalTest[link]{
		ok("K2Node_VariableGet_17 570BAD4542CBB0285413EEAB4F6DBDDA", link{"K2Node_VariableGet_17", id}, ""),
		ok("N\t\t570BAD4542CBB0285413EEAB4F6DBDDA,)", link{"N", id}, ",)"),

		bad[link]("", 0),
		bad[link](" N 570BAD4542CBB0285413EEAB4F6DBDDA", 0),
		bad[link]("Node", 4),
		bad[link]("Node\n570BAD4542CBB0285413EEAB4F6DBDDA", 4),
		bad[link]("Node 12", 5),
	})
}

func TestList(t *testing.T) {
	parse := func(in bpgraph.Input) ([]int64, bpgraph.Input, error) {
		return bpgraph.List(in, bpgraph.Integer)
	}
	runLiteral(t, parse, []literalTest[[]int64]{
		ok[[]int64]("()", nil, ""),
		ok[[]int64]("( )", nil, ""),
		ok[[]int64]("(1)", []int64{1}, ""),
		ok[[]int64]("(1,2,3)", []int64{1, 2, 3}, ""),
		ok[[]int64]("(1,2,)", []int64{1, 2}, ""),
		ok[[]int64]("( 1 ,\n 2 ,\n )x", []int64{1, 2}, "x"),

		bad[[]int64]("", 0),
		bad[[]int64]("1,2", 0),
		bad[[]int64]("(1,2", 4),
		bad[[]int64]("(1;2)", 2),
		bad[[]int64]("(1,,2)", 3),
	}, cmpopts.EquateEmpty())
}
