package main

import (
	"fmt"
	"os"

	"podcastsite/internal/sitectl"

	"github.com/jessevdk/go-flags"
)

func main() {
	var opts sitectl.Options

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "sitectl: %v\n", err)
		os.Exit(1)
	}
}
