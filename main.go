package main

import (
	"fmt"
	"os"

	"github.com/rpribau/cm-admin-sub000/cmd/cmadmin"
)

func main() {
	// Execute root
	if err := cmadmin.Command.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
