package main

import (
	"fmt"
	"os"

	"coupon-herald/bootstrap"
)

func main() {
	if err := bootstrap.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}
