package main

import (
	"os"

	"github.com/uphy/productfeed/app"
)

func main() {
	a := app.New()
	if err := a.Run(os.Args); err != nil {
		panic(err)
	}
}
