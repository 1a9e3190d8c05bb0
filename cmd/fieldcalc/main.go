package main

import (
	"os"

	"github.com/gehtsoft-usa/go_fieldcalc"
)

func main() {
	go_fieldcalc.Demonstrate(os.Stdout)
}
