package lang

import (
	"slices"
	"testing"
)

func TestWalk(t *testing.T) {
	doc := mustParse(t, "import a\nf(x = 1) = g(y = -x, z = (2)) * m.h(3, 4)")

	var kinds []string

	Walk(doc, func(n Node) bool {
		kinds = append(kinds, treeLabel(n))

		return true
	})

	want := []string{
		"Document",
		"Import a as a",
		"Func f",
		"Arg x",
		"Number 1",
		"Binary mul",
		"Call g named",
		"Named y",
		"Neg",
		"Ref x",
		"Named z",
		"Paren",
		"Number 2",
		"Call m.h positional",
		"Number 3",
		"Number 4",
	}

	if !slices.Equal(kinds, want) {
		t.Errorf("got  %q\nwant %q", kinds, want)
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	doc := mustParse(t, "a = f(1, 2) + 3\nb = 4")

	var numbers int

	Walk(doc, func(n Node) bool {
		if _, ok := n.(*Call); ok {
			return false
		}

		if _, ok := n.(*Number); ok {
			numbers++
		}

		return true
	})

	if numbers != 2 {
		t.Errorf("visited %d numbers, want 2", numbers)
	}
}
