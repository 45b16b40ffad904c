// Command dxfhatch inspects and rewrites HATCH entities in DXF files.
package main

import (
	"os"

	"github.com/bert/libdxf-sub001/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
