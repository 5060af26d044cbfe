// archlevel reports the x86-64 microarchitecture level of the host CPU.
package main

import "github.com/ppiankov/archlevel/internal/cli"

func main() {
	cli.Execute()
}
