package main

import (
	"strings"
	"testing"
)

func execAll(t *testing.T, s *session, lines ...string) string {
	t.Helper()
	var out string
	for _, line := range lines {
		var err error
		out, err = s.ExecLine(line)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	return out
}

func TestSessionArithmetic(t *testing.T) {
	s := newSession()
	tests := []struct {
		line string
		want string
	}{
		{"1 + 2 * 3", "7"},
		{"(1 + 2) * 3", "9"},
		{"2 ** 10", "1024"},
		{"7 % 3", "1"},
		{"1 << 4 | 1", "17"},
		{"~0", "-1"},
		{"-5 + 3", "-2"},
		{"1.5 + 1", "2.5"},
		{`"foo" + "bar"`, "foobar"},
		{"3 < 4", "true"},
		{"3 <=> 4", "-1"},
		{"!0", "false"},
	}
	for _, tt := range tests {
		if got := execAll(t, s, tt.line); got != tt.want {
			t.Errorf("%q = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSessionNumberDemo(t *testing.T) {
	s := newSession()
	execAll(t, s, "x = Number(5)")

	tests := []struct {
		line string
		want string
	}{
		{"x + 1", "Number(value: 6)"},
		{"1 + x", "Number(value: 6)"},
		{"x < 6", "true"},
		{"6 < x", "false"},
		{"x == 5", "true"},
		{"x != 5", "false"},
		{"x <=> 9", "-1"},
	}
	for _, tt := range tests {
		if got := execAll(t, s, tt.line); got != tt.want {
			t.Errorf("%q = %q, want %q", tt.line, got, tt.want)
		}
	}

	// Sub is not overridden and has no native rule for Number.
	if _, err := s.ExecLine("x - 1"); err == nil {
		t.Errorf("x - 1 should fail")
	} else if !strings.Contains(err.Error(), "invalid operator") {
		t.Errorf("x - 1 error = %q", err.Error())
	}
}

func TestSessionAssignments(t *testing.T) {
	s := newSession()
	execAll(t, s, "n = 10")

	if got := execAll(t, s, "n += 5"); got != "15" {
		t.Errorf("n += 5 = %q", got)
	}
	if got := execAll(t, s, "n <<= 1"); got != "30" {
		t.Errorf("n <<= 1 = %q", got)
	}
	if got := execAll(t, s, "n++"); got != "31" {
		t.Errorf("n++ = %q", got)
	}
	if got := execAll(t, s, "n--"); got != "30" {
		t.Errorf("n-- = %q", got)
	}
	if got := execAll(t, s, "n"); got != "30" {
		t.Errorf("n = %q after updates", got)
	}

	// Compound assignment flows through the same override as plain +.
	execAll(t, s, "x = Number(5)")
	if got := execAll(t, s, "x += 2"); got != "Number(value: 7)" {
		t.Errorf("x += 2 = %q", got)
	}
	if got := execAll(t, s, "x++"); got != "Number(value: 8)" {
		t.Errorf("x++ = %q", got)
	}
}

func TestSessionComplexDemo(t *testing.T) {
	s := newSession()
	execAll(t, s, "c = Complex(1, 2)")

	if got := execAll(t, s, "c + c"); got != "Complex(im: 4, re: 2)" {
		t.Errorf("c + c = %q", got)
	}
	if got := execAll(t, s, "c == Complex(1, 2)"); got != "true" {
		t.Errorf("c == Complex(1, 2) = %q", got)
	}
	if got := execAll(t, s, "c != Complex(3, 4)"); got != "true" {
		t.Errorf("c != Complex(3, 4) = %q", got)
	}

	// Equatable but not orderable: ordering fails closed.
	if _, err := s.ExecLine("c < Complex(3, 4)"); err == nil {
		t.Errorf("c < Complex(3, 4) should fail")
	}
}

func TestSessionErrors(t *testing.T) {
	s := newSession()
	if _, err := s.ExecLine("missing + 1"); err == nil {
		t.Errorf("undefined variable should fail")
	}
	if _, err := s.ExecLine("1 +"); err == nil {
		t.Errorf("dangling operator should fail")
	}
	if _, err := s.ExecLine("1 / 0"); err == nil {
		t.Errorf("division by zero should fail")
	}
	if _, err := s.ExecLine("Number()"); err == nil {
		t.Errorf("bad constructor arity should fail")
	}
}

func TestScanLongestMatch(t *testing.T) {
	toks := scan("a <<= 1 <=> 2 <= 3")
	var ops []string
	for _, tok := range toks {
		if tok.kind == tokOp {
			ops = append(ops, tok.lit)
		}
	}
	want := []string{"<<=", "<=>", "<="}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("ops[%d] = %q, want %q", i, ops[i], want[i])
		}
	}
}
