package main

import (
	"flag"
	"log"

	"github.com/danmuck/fieldbuf/internal/config"
)

func main() {
	kind := flag.String("kind", "handshake", "manifest kind: handshake|blank")
	output := flag.String("output", "fields.toml", "output path for manifest template")
	validate := flag.Bool("validate", false, "validate an existing manifest file")
	input := flag.String("input", "", "manifest path for validation (defaults to -output)")
	force := flag.Bool("force", false, "overwrite existing manifest file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = *output
		}
		if _, err := config.LoadManifest(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated manifest at %s", path)
		return
	}

	if err := config.WriteTemplate(*output, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s manifest template to %s", *kind, *output)
}
