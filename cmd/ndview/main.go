// Package main provides the ndview CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("ndview %s\n", version)
		return
	}

	fmt.Println("ndview - strided buffer views over owned and borrowed memory")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Demo programs live under examples/ (ndarray, matrix, vectors, primitives).")
}
