// Package oscout broadcasts panel changes as OSC messages over UDP so
// external gear, a synth or a DAW, can follow the on-screen widgets.
package oscout

import (
	"fmt"
	"log"
	"sync"

	"github.com/hypebeast/go-osc/osc"
)

// Broadcaster sends best-effort OSC messages to a single UDP target. Sends
// from a disabled broadcaster are silently swallowed; a failed send is
// reported to the caller but never retried, UDP loss is acceptable here.
type Broadcaster struct {
	mu      sync.Mutex
	client  *osc.Client
	prefix  string
	enabled bool
}

// New creates a broadcaster aimed at host:port. It never dials; the socket is
// opened per send by the OSC client.
func New(host string, port int, prefix string) *Broadcaster {
	return &Broadcaster{
		client: osc.NewClient(host, port),
		prefix: prefix,
	}
}

// SetEnabled switches sending on or off.
func (b *Broadcaster) SetEnabled(on bool) {
	b.mu.Lock()
	b.enabled = on
	b.mu.Unlock()
}

// Enabled reports whether sends currently go out.
func (b *Broadcaster) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

// Retarget points the broadcaster at a new target and address prefix.
func (b *Broadcaster) Retarget(host string, port int, prefix string) {
	b.mu.Lock()
	b.client = osc.NewClient(host, port)
	b.prefix = prefix
	b.mu.Unlock()
	if isTraceLoggingEnabled() {
		log.Printf("osc: retargeted to %s:%d prefix %s", host, port, prefix)
	}
}

// Param reports one named parameter, carrying both the normalized position
// and the value on the parameter's own scale.
func (b *Broadcaster) Param(name string, normal, value float64) error {
	return b.send(paramMessage(b.currentPrefix(), name, normal, value))
}

// Pad reports both pad axes in one message so receivers always see a
// consistent pair.
func (b *Broadcaster) Pad(nx, ny, x, y float64) error {
	return b.send(padMessage(b.currentPrefix(), nx, ny, x, y))
}

// Mix reports the stock slider's value.
func (b *Broadcaster) Mix(value float64) error {
	return b.send(mixMessage(b.currentPrefix(), value))
}

// Button reports a button press by its identifier.
func (b *Broadcaster) Button(id uint8) error {
	return b.send(buttonMessage(b.currentPrefix(), id))
}

func (b *Broadcaster) currentPrefix() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.prefix
}

func (b *Broadcaster) send(msg *osc.Message) error {
	b.mu.Lock()
	client := b.client
	enabled := b.enabled
	b.mu.Unlock()
	if !enabled || client == nil {
		return nil
	}
	if err := client.Send(msg); err != nil {
		return fmt.Errorf("osc send %s: %w", msg.Address, err)
	}
	if isTraceLoggingEnabled() {
		log.Printf("osc: sent %s %v", msg.Address, msg.Arguments)
	}
	return nil
}

// paramMessage builds "<prefix>/param/<name>" with float32 normal and value
// arguments, the layout TouchOSC-style receivers expect.
func paramMessage(prefix, name string, normal, value float64) *osc.Message {
	msg := osc.NewMessage(prefix + "/param/" + name)
	msg.Append(float32(normal))
	msg.Append(float32(value))
	return msg
}

// padMessage builds "<prefix>/param/pad" carrying both normals followed by
// both bipolar values.
func padMessage(prefix string, nx, ny, x, y float64) *osc.Message {
	msg := osc.NewMessage(prefix + "/param/pad")
	msg.Append(float32(nx))
	msg.Append(float32(ny))
	msg.Append(float32(x))
	msg.Append(float32(y))
	return msg
}

// mixMessage builds "<prefix>/mix" with the slider value.
func mixMessage(prefix string, value float64) *osc.Message {
	msg := osc.NewMessage(prefix + "/mix")
	msg.Append(float32(value))
	return msg
}

// buttonMessage builds "<prefix>/button" with the pressed id as an int32.
func buttonMessage(prefix string, id uint8) *osc.Message {
	msg := osc.NewMessage(prefix + "/button")
	msg.Append(int32(id))
	return msg
}
