// Package snapshot persists and restores a full CPU state to/from a
// file, the same way the teacher's checkpoint file lets a long search
// resume where it left off.
package snapshot

import (
	"encoding/gob"
	"os"

	"github.com/oisee/tiny-x86/internal/cache"
	"github.com/oisee/tiny-x86/internal/cpu"
)

// Snapshot mirrors every piece of CPU state: registers, IP, SP, flags,
// the full memory image, and the cache's lines and counters.
type Snapshot struct {
	Regs   [8]byte
	IP     byte
	SP     byte
	Flags  byte
	Memory [cpu.MemorySize]byte
	Cache  cache.Cache
}

// Save writes c's state to path.
func Save(path string, c *cpu.CPU) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	snap := Snapshot{
		Regs:   c.Regs,
		IP:     c.IP,
		SP:     c.SP,
		Flags:  c.Flags,
		Memory: c.Memory,
		Cache:  c.Cache,
	}
	return gob.NewEncoder(f).Encode(&snap)
}

// Load reads a snapshot from path and restores it into a fresh CPU.
func Load(path string) (*cpu.CPU, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var snap Snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, err
	}

	c := &cpu.CPU{
		Regs:   snap.Regs,
		IP:     snap.IP,
		SP:     snap.SP,
		Flags:  snap.Flags,
		Memory: snap.Memory,
		Cache:  snap.Cache,
	}
	return c, nil
}
