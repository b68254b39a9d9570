package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by every command
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "", "config file")
	flags.Int("width", 32, "storage width in bits: 8, 16, 32 or 64")
	flags.Uint("frac", 8, "number of fractional bits")
	flags.Bool("no-color", false, "disable colored output")
}
