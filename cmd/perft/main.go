// Command perft counts the leaf nodes reachable from a position to a fixed
// depth, for validating move generation against known perft tables.
//
// Usage:
//
//	perft "<fen>" <depth>
//	perft -divide "<fen>" <depth>
//	perft -cache "<fen>" <depth>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/perft"
	"github.com/hailam/chessplay/internal/perftcache"
)

func main() {
	divide := flag.Bool("divide", false, "print a per-root-move node count breakdown")
	useCache := flag.Bool("cache", false, "memoize node counts in the perft cache database")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: perft [-divide] [-cache] \"<fen>\" <depth>")
		os.Exit(1)
	}

	fen := args[0]
	var depth int
	if _, err := fmt.Sscanf(args[1], "%d", &depth); err != nil {
		fmt.Fprintf(os.Stderr, "invalid depth %q: %v\n", args[1], err)
		os.Exit(1)
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen %q: %v\n", fen, err)
		os.Exit(1)
	}

	if *divide {
		entries, total := perft.Divide(pos, depth)
		for _, e := range entries {
			fmt.Printf("%s: %d\n", e.Move.String(), e.Nodes)
		}
		fmt.Printf("\n%d\n", total)
		return
	}

	if *useCache {
		cache, err := perftcache.Open()
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft cache unavailable: %v\n", err)
			os.Exit(1)
		}
		defer cache.Close()

		hash := pos.ComputeHash()
		if nodes, found, err := cache.Get(hash, depth); err == nil && found {
			fmt.Println(nodes)
			return
		}

		nodes := perft.Perft(pos, depth)
		if err := cache.Put(hash, depth, nodes); err != nil {
			fmt.Fprintf(os.Stderr, "perft cache write failed: %v\n", err)
		}
		fmt.Println(nodes)
		return
	}

	fmt.Println(perft.Perft(pos, depth))
}
