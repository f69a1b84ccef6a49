// Command kanbanctl inspects and moves the persisted board collection of a kanban board deployment.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(openConfiguredStore).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
