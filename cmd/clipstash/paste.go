package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sdaveas/clipstash/internal/clip"
)

func newPasteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Print the system clipboard to stdout (like pbpaste)",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindViper(cmd, v)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			resolveLogging(v.GetString("log-format"), v.GetString("log-level"))
			return runPaste()
		},
	}

	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runPaste() error {
	device := clip.New()
	defer device.Close()

	text, ok := device.ReadText()
	if !ok {
		// No text payload — print nothing, exit 0 (pbpaste behaviour).
		return nil
	}
	fmt.Print(text)
	return nil
}
