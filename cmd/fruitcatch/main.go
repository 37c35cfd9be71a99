// fruitcatch is a terminal arcade game: fruit falls across three lanes
// and you move the basket between them to catch it before the timer or
// your lives run out. Hearts give an extra life. Bombs are best left
// alone.
//
// Usage:
//
//	fruitcatch play          - Play the game
//	fruitcatch config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Frame rate (default: 60)
//	--seed <value>  - RNG seed for reproducible runs (0 = time-based)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitcatch",
	Short: "Catch falling fruit in your terminal",
	Long: `fruitcatch is a terminal lane-catching arcade game.

Items fall from the top of the screen across three lanes. Move the
basket to catch apples, oranges and grapes for points and hearts for
extra lives. Catching a bomb ends the run on the spot; letting one fall
past you costs nothing.

Examples:
  fruitcatch play
  fruitcatch play --difficulty hard
  fruitcatch play --seed 42 --mute
  fruitcatch config`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
