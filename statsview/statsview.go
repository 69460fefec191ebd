// Package statsview serves live runtime statistics (heap, goroutines, GC) of
// the running emulator over HTTP. Useful when looking at the cost of the
// per-cycle loop.
package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address the stats server listens on.
const Address = "localhost:12600"

const url = "/debug/statsview"

// Launch starts the stats server in the background and writes its location
// to output.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, url)
}
