// Package load implements the program-loader front end: reading a raw
// binary program file into a CPU's memory before execution begins.
package load

import (
	"fmt"
	"os"

	"github.com/oisee/tiny-x86/internal/cpu"
)

// Program reads path and copies its bytes into c.Memory starting at
// address 0. The file must be no larger than cpu.MemorySize and must
// be read in full; either condition failing is reported as an error
// rather than a partial load.
func Program(c *cpu.CPU, path string, verbose bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open program file: %w", err)
	}

	if len(data) > cpu.MemorySize {
		return 0, fmt.Errorf("program too large for memory (max %d bytes)", cpu.MemorySize)
	}

	n := copy(c.Memory[:], data)
	if n != len(data) {
		return 0, fmt.Errorf("failed to read entire program")
	}

	if verbose {
		fmt.Println("Machine code:")
		for i, b := range data {
			fmt.Printf("0x%02X: 0x%02X\n", i, b)
		}
	}

	fmt.Printf("Loaded %d bytes into memory\n", n)
	return n, nil
}
