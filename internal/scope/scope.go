// Package scope demonstrates how Go scopes variables declared by and inside
// for loops. Each example records the values it would print.
package scope

import "strconv"

// Example is a titled demonstration and the lines it prints
type Example struct {
	Title string
	Lines []string
}

// Examples returns every demonstration in order
func Examples() []Example {
	return []Example{
		outerIterator(),
		shadowedIterator(),
		shadowedBody(),
		separateScopes(),
		closureCapture(),
	}
}

type recorder []string

func (r *recorder) print(v int) {
	*r = append(*r, strconv.Itoa(v))
}

func outerIterator() Example {
	var out recorder

	foo := 0
	out.print(foo)
	for foo = 1; foo <= 3; foo++ {
		out.print(foo)
	}
	out.print(foo)

	return Example{Title: "Using an outer variable as the loop iterator", Lines: out}
}

func shadowedIterator() Example {
	var out recorder

	bar := 0
	out.print(bar)
	for bar := 1; bar <= 3; bar++ {
		out.print(bar)
	}
	out.print(bar)

	return Example{Title: "Loop iterator shadowing an outer variable", Lines: out}
}

func shadowedBody() Example {
	var out recorder

	baz := 0
	out.print(baz)
	for baz = 1; baz <= 3; baz++ {
		baz := 1
		out.print(baz)
	}
	out.print(baz)

	return Example{Title: "Outer variable as iterator, shadowed inside the loop body", Lines: out}
}

func separateScopes() Example {
	var out recorder

	qux := 0
	out.print(qux)
	for qux := 1; qux <= 3; qux++ {
		qux := 1
		out.print(qux)
	}
	out.print(qux)

	return Example{Title: "The loop header and the loop body are separate scopes", Lines: out}
}

func closureCapture() Example {
	var out recorder

	// Since Go 1.22 each iteration declares a fresh i
	var perIteration []func() int
	for i := 1; i <= 3; i++ {
		perIteration = append(perIteration, func() int { return i })
	}

	shared := 0
	var sharedVar []func() int
	for shared = 1; shared <= 3; shared++ {
		sharedVar = append(sharedVar, func() int { return shared })
	}

	for _, f := range perIteration {
		out.print(f())
	}
	for _, f := range sharedVar {
		out.print(f())
	}

	return Example{Title: "Closures capture per-iteration variables, but not an outer iterator", Lines: out}
}
