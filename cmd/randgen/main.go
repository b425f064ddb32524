package main

import (
	"os"

	"github.com/reddit/csrand.go/cmd/lib/randgen"
)

func main() {
	os.Exit(randgen.Run())
}
