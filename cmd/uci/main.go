// Command uci runs the engine as a UCI-speaking subprocess, for
// use by any UCI-compatible chess GUI.
package main

import (
	"github.com/hailam/chessplay/internal/engine"
	"github.com/hailam/chessplay/internal/uci"
)

func main() {
	eng := engine.NewEngine()
	driver := uci.New(eng)
	driver.Run()
}
