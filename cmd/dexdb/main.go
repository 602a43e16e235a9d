// Package main provides the dexdb CLI application.
// dexdb manages the lifecycle of the Pokédex PostgreSQL database.
package main

import (
	"github.com/dexdata/dexdb/cmd"
)

func main() {
	cmd.Execute()
}
