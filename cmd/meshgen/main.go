// Package main is the entry point for meshgen, which evaluates a shape DSL
// program, tessellates every part it declares and prints the result as
// JSON.
//
// Usage:
//
//	meshgen -e '(sphere :radius 2 :name "ball")'
//	meshgen -kernel sdfx -buffers scene.lisp
//	echo '(box)' | meshgen
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "meshgen: %v\n", err)
		os.Exit(1)
	}
}
