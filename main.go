package main

import (
	"os"

	"github.com/HiDiHlabs/geanno/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "docs" {
		makeDocs() // write the Markdown docs for the geanno site
		return
	}

	cmd.Execute() // initialize cobra commands
}
