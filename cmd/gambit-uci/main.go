package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/exo-shinigami/gambit/internal/storage"
	"github.com/exo-shinigami/gambit/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	hashMB     = flag.Int("hash", 0, "hash table size in MB (overrides stored options)")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	// Persistent options are optional: the engine runs fine without them.
	store, err := storage.New()
	if err != nil {
		log.Printf("Warning: options store unavailable: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := storage.DefaultOptions()
	if store != nil {
		if first, err := store.IsFirstLaunch(); err == nil && first {
			// Seed the store so later runs and option edits start from
			// known values.
			if err := store.SaveOptions(opts); err != nil {
				log.Printf("Warning: could not save default options: %v", err)
			}
			if err := store.MarkFirstLaunchComplete(); err != nil {
				log.Printf("Warning: could not mark first launch: %v", err)
			}
		}
		if loaded, err := store.LoadOptions(); err != nil {
			log.Printf("Warning: could not load options: %v", err)
		} else {
			opts = loaded
		}
	}

	hash := opts.HashMB
	if *hashMB > 0 {
		hash = *hashMB
	}

	protocol := uci.New(hash, opts.DefaultDepth, store)
	protocol.Run(os.Stdin)
}
