// Command w4go is a WASM-4 cartridge that says hello.
//
// Build it with TinyGo:
//
//	tinygo build -target wasm4 -o cart.wasm .
package main

import "github.com/nf/w4go/w4"

var c cart

//export start
func start() {
	defer w4.CatchPanic()
	c.start()
}

//export update
func update() {
	defer w4.CatchPanic()
	c.update()
}

// main is not called on the console; the host drives start and update.
func main() {}
