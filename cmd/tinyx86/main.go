// Command tinyx86 loads and runs tiny-x86 programs: raw binary images
// of the reduced 8-bit opcode subset this emulator understands.
package main

import (
	"fmt"
	"os"

	"github.com/oisee/tiny-x86/internal/cpu"
	"github.com/oisee/tiny-x86/internal/load"
	"github.com/oisee/tiny-x86/internal/snapshot"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tinyx86",
		Short: "tiny-x86 — an 8-bit IA-32 subset emulator with a direct-mapped instruction cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Help()
			return fmt.Errorf("a subcommand is required")
		},
	}

	var verbose bool
	var snapshotOut string
	var maxSteps int

	runCmd := &cobra.Command{
		Use:   "run <program.bin>",
		Short: "Load a program and run it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cpu.New()
			if _, err := load.Program(c, args[0], verbose); err != nil {
				return err
			}

			if snapshotOut != "" {
				c.OnHalt = func(c *cpu.CPU) {
					if err := snapshot.Save(snapshotOut, c); err != nil {
						fmt.Fprintf(os.Stderr, "failed to write snapshot: %v\n", err)
					}
				}
			}

			if maxSteps > 0 {
				cpu.RunSteps(c, verbose, maxSteps)
				fmt.Fprintf(os.Stderr, "step budget of %d exhausted without HLT\n", maxSteps)
				os.Exit(1)
			}

			cpu.RunCPU(c, verbose) // never returns: HLT or fault exits the process
			return nil
		},
	}
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every executed instruction")
	runCmd.Flags().StringVar(&snapshotOut, "snapshot-out", "", "write a snapshot file on HLT")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after N steps instead of waiting for HLT (0 = unbounded)")

	inspectCmd := &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Load a snapshot and print its state without executing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := snapshot.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}
			printState(c)
			return nil
		},
	}

	var resumeVerbose bool
	resumeCmd := &cobra.Command{
		Use:   "resume <snapshot>",
		Short: "Restore a snapshot and continue execution from its saved IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := snapshot.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}
			cpu.RunCPU(c, resumeVerbose)
			return nil
		},
	}
	resumeCmd.Flags().BoolVarP(&resumeVerbose, "verbose", "v", false, "trace every executed instruction")

	rootCmd.AddCommand(runCmd, inspectCmd, resumeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printState(c *cpu.CPU) {
	fmt.Printf("AL: 0x%02X (%d)\n", c.Regs[cpu.AL], c.Regs[cpu.AL])
	fmt.Printf("BL: 0x%02X (%d)\n", c.Regs[cpu.BL], c.Regs[cpu.BL])
	fmt.Printf("CL: 0x%02X (%d)\n", c.Regs[cpu.CL], c.Regs[cpu.CL])
	fmt.Printf("DL: 0x%02X (%d)\n", c.Regs[cpu.DL], c.Regs[cpu.DL])
	fmt.Printf("SP: 0x%02X\n", c.SP)
	fmt.Printf("IP: 0x%02X\n", c.IP)
	fmt.Printf("Flags: 0x%02X\n", c.Flags)
	c.PrintCacheStats()
}
