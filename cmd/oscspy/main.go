// cmd/oscspy/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hypebeast/go-osc/osc"
)

// oscspy listens for the panel's OSC traffic and prints every message, one
// line per datagram. Point the panel's broadcast target at this process to
// watch what actually leaves the socket.
func main() {
	listen := flag.String("listen", "127.0.0.1:9000", "UDP address to listen on")
	flag.Parse()

	dispatcher := osc.NewStandardDispatcher()
	err := dispatcher.AddMsgHandler("*", func(msg *osc.Message) {
		fmt.Printf("%s %s %s\n", time.Now().Format("15:04:05.000"), msg.Address, formatArgs(msg.Arguments))
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "oscspy:", err)
		os.Exit(1)
	}

	server := &osc.Server{
		Addr:       *listen,
		Dispatcher: dispatcher,
	}

	fmt.Println("oscspy listening on", *listen)
	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintln(os.Stderr, "oscspy:", err)
		os.Exit(1)
	}
}

func formatArgs(args []interface{}) string {
	if len(args) == 0 {
		return "(no arguments)"
	}
	parts := make([]string, 0, len(args))
	for _, a := range args {
		switch v := a.(type) {
		case float32:
			parts = append(parts, fmt.Sprintf("%.4f", v))
		case int32:
			parts = append(parts, fmt.Sprintf("%d", v))
		case string:
			parts = append(parts, fmt.Sprintf("%q", v))
		default:
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(parts, " ")
}
