package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sdaveas/clipstash/internal/clip"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy stdin to the system clipboard (like pbcopy)",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindViper(cmd, v)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			resolveLogging(v.GetString("log-format"), v.GetString("log-level"))
			return runCopy()
		},
	}

	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runCopy() error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	device := clip.New()
	defer device.Close()

	return device.WriteText(string(data))
}
