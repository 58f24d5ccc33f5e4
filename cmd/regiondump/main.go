package main

import (
	"fmt"
	"log"
	"time"

	"github.com/alecthomas/kong"
	"github.com/tilecraft/anvil"
	"github.com/tilecraft/anvil/nbt"
	"github.com/tilecraft/anvil/region"
)

type cli struct {
	File string `arg:"" help:"Region file (r.<rx>.<rz>.mca)."`
	X    *int   `arg:"" optional:"" help:"Region-local chunk X coordinate."`
	Z    *int   `arg:"" optional:"" help:"Region-local chunk Z coordinate."`
}

func main() {
	log.SetFlags(0)

	var args cli
	kong.Parse(&args,
		kong.Name("regiondump"),
		kong.Description("List the chunks of an Anvil region file, or print one chunk's NBT tree."),
		kong.UsageOnError(),
	)

	if (args.X == nil) != (args.Z == nil) {
		log.Fatal("a single-chunk dump needs both X and Z")
	}

	f, err := anvil.OpenRegion(args.File)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if args.X != nil {
		dumpChunk(f, *args.X, *args.Z)
		return
	}

	listChunks(f)
}

func dumpChunk(f *region.File, x, z int) {
	if x < 0 || x >= region.ChunksPerAxis || z < 0 || z >= region.ChunksPerAxis {
		log.Fatalf("chunk coordinates (%d, %d) out of range", x, z)
	}

	c, err := f.Chunk(x, z)
	if err != nil {
		log.Fatal(err)
	}

	_, tag, err := nbt.Decode(c.Data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(nbt.Pretty(tag))
}

func listChunks(f *region.File) {
	err := f.ForEach(func(c *region.Chunk) error {
		ts := "-"
		if !c.Timestamp.IsZero() {
			ts = c.Timestamp.Format(time.DateTime)
		}

		ext := ""
		if c.External {
			ext = " external"
		}

		fmt.Printf("(%2d, %2d)  %-4s  %3d sectors  %8d bytes  %-19s  %016x%s\n",
			c.X, c.Z, c.Scheme, c.Sectors, len(c.Data), ts, c.Fingerprint, ext)

		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}
