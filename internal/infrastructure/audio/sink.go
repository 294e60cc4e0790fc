// Package audio provides AudioSink implementations. Nothing here plays
// sound; cues are logged or counted so hosts and tests can observe them.
package audio

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/Niaki1412/Super-Mario-Game/internal/application/system"
)

// LogSink writes every cue to a logger at debug level
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink that logs with the "audio" prefix
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger.WithPrefix("audio")}
}

// Cue implements system.AudioSink
func (s *LogSink) Cue(c system.Cue) {
	s.logger.Debug("cue", "name", c.String())
}

// Counter tallies cues by kind. Safe for concurrent use.
type Counter struct {
	mu     sync.Mutex
	counts map[system.Cue]int
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{counts: make(map[system.Cue]int)}
}

// Cue implements system.AudioSink
func (c *Counter) Cue(cue system.Cue) {
	c.mu.Lock()
	c.counts[cue]++
	c.mu.Unlock()
}

// Count returns how many times cue was played
func (c *Counter) Count(cue system.Cue) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[cue]
}

// Summary lists the non-zero counts in cue order, e.g. "jump=3 coin=1".
// An empty counter reports "none".
func (c *Counter) Summary() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var parts []string
	for cue := system.CueJump; cue <= system.CueWin; cue++ {
		if n := c.counts[cue]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", cue, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// Multi fans a cue out to several sinks. nil entries are skipped.
type Multi []system.AudioSink

// Cue implements system.AudioSink
func (m Multi) Cue(c system.Cue) {
	for _, s := range m {
		if s != nil {
			s.Cue(c)
		}
	}
}

var (
	_ system.AudioSink = (*LogSink)(nil)
	_ system.AudioSink = (*Counter)(nil)
	_ system.AudioSink = Multi(nil)
)
