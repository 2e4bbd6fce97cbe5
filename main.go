package main

import (
	"os"

	"github.com/RayyanMinhaj/global-hackathon-v1/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
