package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/iansmith/rendcore/pkg/layout"
	"github.com/iansmith/rendcore/pkg/render"
)

func main() {
	width := flag.Int("w", layout.DefaultConfig().ContentAreaWidth, "content area width in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: render [flags] <html-file>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	fmt.Fprintf(os.Stderr, "Reading %s...\n", path)
	body, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	cfg := layout.Config{ContentAreaWidth: *width}

	fmt.Fprintf(os.Stderr, "Rendering with content width %d...\n", cfg.ContentAreaWidth)
	window, _, _, items, err := render.Render(body, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(render.DebugDump(window.Document()))

	encoded, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding display list: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))

	fmt.Fprintf(os.Stderr, "Emitted %d display items. This binary does not rasterize; hand the list above to an external renderer.\n", len(items))
}
