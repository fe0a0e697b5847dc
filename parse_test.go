package lispy

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "",
			want:  "",
		},
		{
			input: "42",
			want:  "42",
		},
		{
			input: "(+ 1 2)",
			want:  "(+ 1 2)",
		},
		{
			input: "  ( *   -2\t3 )  ",
			want:  "(* -2 3)",
		},
		{
			input: "(+ 1 (* 2 3))",
			want:  "(+ 1 (* 2 3))",
		},
		{
			input: "(- 5)",
			want:  "(- 5)",
		},
		{
			input: "(- 5 -)",
			want:  "(- 5 -)",
		},
		{
			input: "(+ 1 2) (* 3 4)",
			want:  "(+ 1 2) (* 3 4)",
		},
		{
			input: "(+ 1 (2 3))",
			want:  "(+ 1 (2 3))",
		},
		{
			input: "(+ 1 ())",
			want:  "(+ 1 ())",
		},
		{
			input: "(1 2 3)",
			want:  "(1 2 3)",
		},
		{
			input: "(-5)",
			want:  "(-5)",
		},
		{
			input: "((+ 1 2))",
			want:  "((+ 1 2))",
		},
		{
			input: "(+ 99999999999999999999 1)",
			want:  "(+ 99999999999999999999 1)",
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		node, err := Parse(test.input)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", test.input, err)
			continue
		}
		got := node.String()

		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: %s", test.input, diff)
		}
	}
}

func TestParseFailure(t *testing.T) {
	tests := []string{
		"+ 1 2",
		"+",
		"()",
		"(+)",
		"(-)",
		"(+ 1 2",
		"(+ 1 2))",
		")",
		"(+ 1 a)",
		"(+ 1.5 2)",
		"(% 1 2)",
		"(+ 1 2) +",
	}
	for _, input := range tests {
		node, err := Parse(input)
		if err == nil {
			t.Errorf("want error for %q but got %v", input, node)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("want *ParseError for %q but got %T", input, err)
			continue
		}
		if perr.Filename != "<stdin>" || perr.Line != 1 || perr.Message == "" {
			t.Errorf("unexpected parse error for %q: %#v", input, perr)
		}
		if !strings.HasPrefix(err.Error(), "<stdin>:1:") {
			t.Errorf("unexpected message for %q: %v", input, err)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("+ 1 2")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want *ParseError but got %v", err)
	}
	if perr.Column != 1 {
		t.Errorf("want column 1 but got %d", perr.Column)
	}

	_, err = Parse("(+ 1 2)   (*)")
	if !errors.As(err, &perr) {
		t.Fatalf("want *ParseError but got %v", err)
	}
	if perr.Column != 11 {
		t.Errorf("want column 11 but got %d", perr.Column)
	}
	if !strings.Contains(perr.Message, `"*"`) {
		t.Errorf("want message naming the operator but got %q", perr.Message)
	}

	_, err = NewParser().ParseString("script.lispy", "(+ 1 2")
	if err == nil || !strings.HasPrefix(err.Error(), "script.lispy:1:") {
		t.Errorf("want error naming script.lispy but got %v", err)
	}
}

func TestTree(t *testing.T) {
	node, err := Parse("(+ 1 (* -2 3))")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"program",
		"  group:1",
		"    operator:2 '+'",
		"    number:4 '1'",
		"    group:6",
		"      operator:7 '*'",
		"      number:9 '-2'",
		"      number:12 '3'",
		"",
	}, "\n")
	if diff := cmp.Diff(want, node.Tree()); diff != "" {
		t.Error(diff)
	}
}

func TestNodeAccessors(t *testing.T) {
	node, err := Parse("(/ 10 2)")
	if err != nil {
		t.Fatal(err)
	}
	if node.Type() != NodeProgram || len(node.Children()) != 1 {
		t.Fatalf("unexpected root: %s", node.Tree())
	}
	group := node.Children()[0]
	if group.Type() != NodeGroup || group.Column() != 1 {
		t.Errorf("unexpected group: %v", group.Type())
	}
	var texts []string
	for _, child := range group.Children() {
		texts = append(texts, child.Type().String()+" "+child.Text())
	}
	want := []string{"operator /", "number 10", "number 2"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Error(diff)
	}
}

func TestParseConcurrent(t *testing.T) {
	inputs := []string{"(+ 1 2)", "(* 2 (- 7 3))", "(/ 9 3)", "+ 1 2"}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				node, err := Parse(input)
				if input == "+ 1 2" {
					if err == nil {
						t.Errorf("want error for %q", input)
					}
					continue
				}
				if err != nil {
					t.Errorf("%q: %v", input, err)
					continue
				}
				if node.String() != input {
					t.Errorf("want %q but got %q", input, node.String())
				}
			}
		}(inputs[i%len(inputs)])
	}
	wg.Wait()
}

func TestGrammar(t *testing.T) {
	g := Grammar()
	if !strings.Contains(g, "(") {
		t.Errorf("unexpected grammar:\n%s", g)
	}
}
