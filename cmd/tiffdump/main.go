// Command tiffdump prints the directory chain of a classic TIFF file:
// byte order, and every directory's tags with their value type, element
// count and decoded values. -v enables debug logging, which reports tags
// whose values could not be decoded.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/halfvec/tiff6"
)

var log *slog.Logger

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	var maxValues int

	cmd := &cobra.Command{
		Use:   "tiffdump <file>",
		Short: "Print the directory chain of a TIFF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)
			return dump(args[0], maxValues)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().IntVarP(&maxValues, "max", "m", 16, "maximum values to print per field, 0 for unlimited")
	viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	viper.BindPFlag("max", cmd.Flags().Lookup("max"))

	return cmd
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
}

func dump(path string, maxValues int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := tiff6.NewReader(f)
	if err != nil {
		return err
	}
	log.Info("parsed file", "directories", r.DirectoryCount(), "byteOrder", endianName(r))

	for i := 0; i < r.DirectoryCount(); i++ {
		if err := r.SetCurrentDirectory(i); err != nil {
			return err
		}
		fmt.Printf("\nDirectory %d:\n", i)
		tags := r.CurrentDirectoryTags()
		for _, tag := range tags {
			v, ok := r.ValueForTag(tag)
			if !ok {
				log.Debug("could not decode tag", "tag", tag.Name())
				continue
			}
			printValue(tag, v, maxValues)
		}
	}
	return nil
}

func endianName(r *tiff6.Reader) string {
	if r.Endianness().String() == "LittleEndian" {
		return "little"
	}
	return "big"
}

func printValue(tag tiff6.Tag, v tiff6.Value, limit int) {
	count := v.Count()
	shown := count
	if limit > 0 && shown > limit {
		shown = limit
	}
	fmt.Printf("  %-28s type=%-10s count=%d", tag.Name(), v.Type, count)
	if shown > 0 {
		fmt.Printf(" = %s", formatSample(v, shown))
	}
	if shown < count {
		fmt.Printf(" ... (%d more)", count-shown)
	}
	fmt.Println()
}
