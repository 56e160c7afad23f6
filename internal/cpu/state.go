// Package cpu implements the architectural state and single-step
// executor for the tiny-x86 core: an eight-register, 8-bit machine with
// a flags byte, a downward-growing stack, and a direct-mapped
// instruction cache on the fetch path.
package cpu

import "github.com/oisee/tiny-x86/internal/cache"

// MemorySize is the size of the flat, byte-addressable address space.
const MemorySize = 256

// Register indices, per the ModR/M encoding: low 3 bits of a reg_code
// select one of these eight registers.
const (
	AL = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH
)

var regNames = [8]string{"AL", "CL", "DL", "BL", "AH", "CH", "DH", "BH"}

// CPU is the full architectural state: the register file (addressable
// both by name and by index, observing the same storage), IP, SP,
// flags, the flat memory array, and the instruction cache sitting in
// front of it on the fetch path.
type CPU struct {
	Regs [8]byte

	IP    byte
	SP    byte
	Flags byte

	Memory [MemorySize]byte
	Cache  cache.Cache

	// OnHalt, if set, runs just before HLT terminates the process —
	// the hook the CLI driver uses to write a snapshot before exit.
	OnHalt func(*CPU)
}

// New returns a CPU with memory zeroed, SP at the top of memory (stack
// grows downward), and a freshly initialized cache.
func New() *CPU {
	c := &CPU{}
	c.Reset()
	return c
}

// Reset restores the CPU to its power-on state: it zeroes everything,
// including Memory, the cache and OnHalt, then sets SP, matching
// init_cpu's memset-then-set-SP shape.
func (c *CPU) Reset() {
	*c = CPU{}
	c.SP = MemorySize - 1
	c.Cache.Reset()
}

// reg returns a pointer to the register selected by the low 3 bits of
// code; the high bits are ignored and it never fails.
func (c *CPU) reg(code byte) *byte {
	return &c.Regs[code&0x07]
}

func regName(code byte) string {
	return regNames[code&0x07]
}
