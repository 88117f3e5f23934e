// Command surfaceinfo reports which native surface source this build of
// nativesurface creates.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/nativesurface"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		nativesurface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(os.Stdout, nativesurface.Info()); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, info nativesurface.SurfaceInfo) error {
	fmt.Fprintf(w, "source:         %v\n", info.Source)
	fmt.Fprintf(w, "default format: %v\n", info.DefaultFormat)
	return info.Err()
}
