package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/skirmish/internal/audio"
)

func main() {
	dir := flag.String("out", "data/sounds", "output directory")
	rate := flag.Int("rate", audio.DefaultConfig().SampleRate, "sample rate in Hz")
	flag.Parse()

	fmt.Println("Skirmish Sound Cue Generator")
	fmt.Println("============================")
	fmt.Println()

	paths, err := audio.ExportCues(*dir, *rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, p := range paths {
		fmt.Printf("  wrote %s\n", p)
	}
	fmt.Println()
	fmt.Println("Done! Point SKIRMISH_SHOOT_WAV or SKIRMISH_HIT_WAV at an edited copy to replace a cue.")
}
