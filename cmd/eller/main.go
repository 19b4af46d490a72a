package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/maze-server/internal/eller"
)

var (
	log = logrus.New()

	seed     uint64
	key      string
	printKey bool
	verbose  bool
)

func init() {
	flag.Uint64Var(&seed, "seed", 0, "random seed (random if not set)")
	flag.StringVar(&key, "key", "", "rebuild the maze named by a key printed with -print-key")
	flag.BoolVar(&printKey, "print-key", false, "print the maze key to stderr")
	flag.BoolVar(&verbose, "v", false, "log every generated row")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
}

func seedWasSet() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	return set
}

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	eller.Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		eller.Log.SetLevel(logrus.DebugLevel)
	}

	var (
		params eller.Params
		err    error
	)
	if key != "" {
		params, seed, err = eller.ParseKey(key)
	} else {
		params, err = parseArgs(flag.Args())
		if err == nil && !seedWasSet() {
			seed = new(maphash.Hash).Sum64()
		}
	}
	if err != nil {
		fmt.Println(err)
		fmt.Println(usage)
		return
	}

	maze, err := eller.Generate(params, eller.NewRand(seed))
	if err != nil {
		log.Fatal("unable to generate maze: ", err)
	}

	if printKey {
		log.WithField("key", params.Key(seed)).Info("maze key")
	}

	if err := maze.Render(os.Stdout); err != nil {
		log.Fatal("unable to print maze: ", err)
	}
}
