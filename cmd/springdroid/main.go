// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/intcode/droid"
	"github.com/ezrec/intcode/machine"
	"github.com/ezrec/intcode/script"
)

func main() {
	var program string
	var planfile string
	var cells int
	var verbose bool

	flag.StringVar(&program, "p", "-", "Intcode program to execute")
	flag.StringVar(&planfile, "s", "", ".star springscript plan to transmit")
	flag.IntVar(&cells, "m", machine.MEMORY_DEFAULT_CAPACITY, "Memory cells")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	input := os.Stdin
	if program != "-" {
		inf, err := os.Open(program)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		defer inf.Close()
		input = inf
	}

	prog, err := machine.ParseProgram(input)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	plan := script.Default()
	if len(planfile) != 0 {
		plan, err = script.Load(planfile)
		if err != nil {
			log.Fatalf("%v: %v", planfile, err)
		}
	}

	ses, err := droid.NewSession(prog, cells)
	if err != nil {
		log.Fatal(err)
	}

	ses.Verbose = verbose
	ses.Log = os.Stdout

	damage, err := ses.Survey(plan)
	if err != nil {
		log.Fatal(err)
	}

	if damage != nil {
		fmt.Println(damage)
	}
}
