package main

import (
	"fmt"
	"log"

	"github.com/alecthomas/kong"
	"github.com/tilecraft/anvil"
	"github.com/tilecraft/anvil/nbt"
)

type cli struct {
	File    string `arg:"" help:"NBT file, raw or gzip/zlib-compressed."`
	Compact bool   `help:"Print the tree as a single SNBT line."`
}

func main() {
	log.SetFlags(0)

	var args cli
	kong.Parse(&args,
		kong.Name("nbtdump"),
		kong.Description("Print the NBT tag tree of a file."),
		kong.UsageOnError(),
	)

	name, tag, err := anvil.ReadFile(args.File)
	if err != nil {
		log.Fatal(err)
	}

	out := nbt.Pretty(tag)
	if args.Compact {
		out = tag.String()
	}

	if name != "" {
		fmt.Printf("%s: %s\n", name, out)
	} else {
		fmt.Println(out)
	}
}
