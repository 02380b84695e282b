package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

func init() {
	runtime.LockOSThread()
}

const (
	windowWidth  = 512
	windowHeight = 512
	windowTitle  = "OPAL Shader Explorer"
)

func main() {
	shaderPath := flag.String("shader", "./base.glsl", "Fragment shader `file`")
	vsync := flag.Bool("vsync", true, "Enable vsync")
	fps := flag.Int("fps", 60, "Frame rate cap (0 for uncapped)")

	flag.CommandLine.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-shader file] [-vsync=false] [-fps n]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(os.Stderr, "Move with WASD, Space and Left Control. Tab toggles mouse look, Escape quits.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *fps < 0 {
		fmt.Fprintln(os.Stderr, "-fps must not be negative")
		os.Exit(2)
	}

	app, err := NewApp(*shaderPath, *vsync, *fps)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Destroy()
	app.Main()
}
