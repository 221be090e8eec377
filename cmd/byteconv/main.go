package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"byteview"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	inputPath string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:           "byteconv",
	Short:         "Convert raw bytes to UTF-8 text, C strings or hex",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd.ErrOrStderr(), logLevel)
	},
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Print the input decoded as UTF-8",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := readInput(cmd)
		if err != nil {
			return err
		}
		text, ok := v.Text()
		if !ok {
			return invalidInput(v)
		}
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	},
}

var cstringCmd = &cobra.Command{
	Use:   "cstring",
	Short: "Write the input as a null-terminated UTF-8 string",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := readInput(cmd)
		if err != nil {
			return err
		}
		cs, ok := v.CString()
		if !ok {
			return invalidInput(v)
		}
		_, err = cmd.OutOrStdout().Write(cs.Terminated())
		return err
	},
}

var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Print the input as lowercase hexadecimal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := readInput(cmd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), v.Hex())
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "input file (default stdin)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(textCmd, cstringCmd, hexCmd)
}

// readInput loads the whole input into a view.
func readInput(cmd *cobra.Command) (byteview.ByteView, error) {
	var r io.Reader = cmd.InOrStdin()
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return byteview.ByteView{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return byteview.ByteView{}, fmt.Errorf("read input: %w", err)
	}
	logrus.WithFields(logrus.Fields{"command": cmd.Name(), "bytes": len(b)}).Debug("input loaded")
	return byteview.New(b), nil
}

func invalidInput(v byteview.ByteView) error {
	err := v.Validate()
	var invalid *byteview.InvalidUTF8Error
	if errors.As(err, &invalid) {
		logrus.WithField("offset", invalid.Offset).Warn("input is not valid UTF-8")
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
