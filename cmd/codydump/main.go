// codydump disassembles a Cody cartridge image, following the
// cobra-based CLI shape of oisee-z80-optimizer's cmd/z80opt.
package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/codyhome/cody65c02/cartridge"
	"github.com/codyhome/cody65c02/disassemble"
	"github.com/codyhome/cody65c02/display"
	"github.com/codyhome/cody65c02/memory"
	"github.com/spf13/cobra"
)

const (
	displayBase   = 0xA000
	displayWidth  = 128
	displayHeight = 128
)

func main() {
	var output string
	var pngOut string
	var pngScale int

	rootCmd := &cobra.Command{
		Use:   "codydump <cartridge>",
		Short: "Disassemble a Cody cartridge image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pngOut != "" {
				return dumpPNG(args[0], pngOut, pngScale)
			}
			return dump(args[0], output)
		},
	}
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write disassembly to this file instead of stdout")
	rootCmd.Flags().StringVar(&pngOut, "png", "", "write a grayscale PNG snapshot of display RAM to this file instead of disassembling")
	rootCmd.Flags().IntVar(&pngScale, "png-scale", 4, "integer nearest-neighbor scale factor for --png")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dump(path, output string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("codydump: %w", err)
	}
	defer f.Close()

	img, err := cartridge.Load(f)
	if err != nil {
		return fmt.Errorf("codydump: %w", err)
	}

	w := os.Stdout
	if output != "" {
		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("codydump: %w", err)
		}
		defer out.Close()
		w = out
	}

	mem := memory.NewROMFromBytes(img.Data)
	for pc := uint16(0); int(pc) < img.Len(); {
		text, width := disassemble.Step(pc, mem)
		fmt.Fprintf(w, "%04X  %s\n", uint32(img.Load)+uint32(pc), text)
		pc += uint16(width)
	}
	return nil
}

// dumpPNG renders a cartridge image's bytes as a grayscale display
// snapshot and writes it out as a scaled PNG, giving a quick visual
// look at a cartridge's raw bytes without wiring up the real display
// pipeline (out of scope per spec.md §1).
func dumpPNG(path, out string, scale int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("codydump: %w", err)
	}
	defer f.Close()

	img, err := cartridge.Load(f)
	if err != nil {
		return fmt.Errorf("codydump: %w", err)
	}

	mem := memory.NewROMFromBytes(img.Data)
	snap := display.Snapshot(mem, uint16(displayBase), displayWidth, displayHeight)
	scaled := display.ScaleNearest(snap, scale)

	w, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("codydump: %w", err)
	}
	defer w.Close()

	if err := png.Encode(w, scaled); err != nil {
		return fmt.Errorf("codydump: %w", err)
	}
	return nil
}
