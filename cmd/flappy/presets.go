package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows every difficulty preset and how fast it ramps up.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Difficulty presets:")
	fmt.Fprintln(out)

	for _, p := range config.Presets {
		ramp := "no progression"
		if !config.IsFixedPreset(p) {
			ramp = fmt.Sprintf("full speed after %.0f points", config.RampForPreset(p))
		}
		fmt.Fprintf(out, "  %-8s %s\n", p, ramp)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Normal curve:")
	for _, score := range []int{0, 10, 25, 50, 100} {
		d := config.DifficultyAt(score)
		fmt.Fprintf(out, "  score %-4d speed x%.2f  gap x%.2f  spawn x%.2f\n", score, d.Speed, d.Gap, d.Spawn)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use: flappy play --difficulty <preset>")
}
