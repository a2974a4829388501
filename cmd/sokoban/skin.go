package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var skinCmd = &cobra.Command{
	Use:   "skin [name]",
	Short: "Show or select the skin",
	Long: `Without an argument, prints the selected skin (or the configured
default when none was selected). With a name, stores it as the selected
skin. The name is not interpreted.

Examples:
  sokoban skin
  sokoban skin yoshi`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSkin,
}

func runSkin(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.Close()

	if len(args) == 1 {
		if err := a.skins.SetSkin(args[0]); err != nil {
			a.fail("%v", err)
		}
		fmt.Printf("Skin set to %s.\n", paint(headerStyle, args[0]))
		return
	}

	name, err := a.skins.Skin()
	if err != nil {
		a.fail("%v", err)
	}
	if name == "" {
		fmt.Printf("%s %s\n", a.cfg.Skin, paint(dimStyle, "(default)"))
		return
	}
	fmt.Println(name)
}
