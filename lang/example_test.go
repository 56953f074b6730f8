package lang_test

import (
	"context"
	"fmt"

	"github.com/ardnew/funcad/lang"
)

func ExampleParseString() {
	src := "import ../shapes/circle\narea(r)=pi*r*r\nunit=circle.area(r=1)"

	doc, err := lang.ParseString(context.Background(), src)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Print(doc)

	for im := range doc.Imports() {
		fmt.Println(im.Up, im.Path, im.Alias())
	}

	// Output:
	// import ../shapes/circle
	// area(r) = pi * r * r
	// unit = circle.area(r = 1)
	// 1 [shapes circle] circle
}

func ExampleParseExpr() {
	e, err := lang.ParseExpr(context.Background(), "-2*3 + (1+2)*3")
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(lang.Inspect(e))
	fmt.Println(lang.FormatExpr(e))

	// Output:
	// Binary(add, Binary(mul, Neg(2), 3), Binary(mul, Paren(Binary(add, 1, 2)), 3))
	// -2 * 3 + (1 + 2) * 3
}

func ExampleSyntaxError() {
	_, err := lang.ParseString(context.Background(), "f(a=1,2) = 3")

	fmt.Println(err)

	// Output:
	// syntax error at line 1, column 7: expected identifier, found '2'
	//   1 | f(a=1,2) = 3
	//             ^
}
