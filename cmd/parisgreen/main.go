package main

import (
	"flag"

	panelapp "github.com/BoyleSeo/paris-green/internal/panelapp"
)

func main() {
	trace := flag.Bool("traceLog", false, "log every outgoing OSC message")
	flag.Parse()
	panelapp.SetTraceLogEnabled(*trace)

	app := panelapp.NewApp()
	app.Run()
}
