/*
Package main generates a Gantt-style timeline chart for a PhD project.

The schedule (internships, funding periods, teaching duties, conference
windows and paper submission goals) is compiled into the program; edit the
list in buildEvents to change it. Each run draws one horizontal bar per
entry on a shared calendar axis and writes the chart to timeline.png in the
current directory, overwriting any previous output.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	configFile := flag.String("config", "", "YAML chart style file (optional)")
	outputFile := flag.String("output", "timeline.png", "Output image filename")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "  --debug             Enable debug logging\n")
		fmt.Fprintf(os.Stderr, "  --config <file>     YAML chart style file (optional)\n")
		fmt.Fprintf(os.Stderr, "  --output <file>     Output image filename (default timeline.png)\n")
		fmt.Fprintf(os.Stderr, "\nThe schedule itself is compiled in; edit buildEvents to change it.\n")
		fmt.Fprintf(os.Stderr, "The image format follows the output file extension.\n")
	}

	flag.Parse()
	if *debugFlag {
		log.SetLevel(log.DebugLevel)
	}

	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	entries := buildEvents(time.Now())
	log.Debugf("Built %d timeline entries", len(entries))

	if err := createTimeline(entries, *outputFile, config); err != nil {
		log.Fatalf("Error rendering timeline: %v", err)
	}

	log.Infof("Timeline chart generated successfully: %s", *outputFile)
}
