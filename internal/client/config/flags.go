package config

import (
	"flag"
	"os"
	"time"

	"teamspace/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags:
//
//	-a string   base URL of the record store server
//	-i int      slideshow auto-advance interval in seconds
//
// Only the flags handled here are parsed; os.Args is filtered first so the
// config-file flag owned by parseJSON does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "record store server base URL")
	interval := fs.Int("i", int(cfg.SlideshowInterval.Seconds()), "slideshow interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SlideshowInterval = time.Duration(*interval) * time.Second
}
