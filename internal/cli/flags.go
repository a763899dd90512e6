package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// InitConfig wires environment variables into viper so that any flag
// can also be set via `CMADMIN_<FLAG_NAME>`
func InitConfig() {
	viper.SetEnvPrefix("cmadmin")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

type FlagType string

const (
	FlagTypeBool     FlagType = "bool"
	FlagTypeDuration FlagType = "duration"
	FlagTypeInteger  FlagType = "integer"
	FlagTypeString   FlagType = "string"
)

// FlagData represents a logical flag; the `.Name` property doubles as
// the viper reference and should be kebab-cased
type FlagData struct {
	Name         string
	Short        rune
	DefaultValue any
	Usage        string
	Type         FlagType
}

// AddToCommand registers the flag on `command` and should be called
// from the command's `init()`. Panics on an unrecognised `.Type`.
func (f *FlagData) AddToCommand(command *cobra.Command, persistent ...bool) {
	flags := command.Flags()
	if len(persistent) > 0 && persistent[0] {
		flags = command.PersistentFlags()
	}
	switch f.Type {
	case FlagTypeBool:
		if f.Short != 0 {
			flags.BoolP(f.Name, string(f.Short), f.DefaultValue.(bool), f.Usage)
			break
		}
		flags.Bool(f.Name, f.DefaultValue.(bool), f.Usage)
	case FlagTypeDuration:
		if f.Short != 0 {
			flags.DurationP(f.Name, string(f.Short), f.DefaultValue.(time.Duration), f.Usage)
			break
		}
		flags.Duration(f.Name, f.DefaultValue.(time.Duration), f.Usage)
	case FlagTypeInteger:
		if f.Short != 0 {
			flags.IntP(f.Name, string(f.Short), f.DefaultValue.(int), f.Usage)
			break
		}
		flags.Int(f.Name, f.DefaultValue.(int), f.Usage)
	case FlagTypeString:
		if f.Short != 0 {
			flags.StringP(f.Name, string(f.Short), f.DefaultValue.(string), f.Usage)
			break
		}
		flags.String(f.Name, f.DefaultValue.(string), f.Usage)
	default:
		panic(fmt.Sprintf("unknown FlagType[%s]", f.Type))
	}
}

// BindViper binds the flag into viper. This must happen in the
// command's `PreRun` rather than `init()` so that sibling commands
// sharing a flag name do not overwrite each other's bindings.
func (f *FlagData) BindViper(command *cobra.Command, persistent ...bool) {
	var flags *pflag.FlagSet
	if len(persistent) > 0 && persistent[0] {
		flags = command.PersistentFlags()
	} else {
		flags = command.Flags()
	}
	viper.BindPFlag(f.Name, flags.Lookup(f.Name))
	viper.BindEnv(f.Name)
}

// Flags defines a collection of flags as a slice
type Flags []FlagData

func (f Flags) AddToCommand(command *cobra.Command, persistent ...bool) {
	for _, g := range f {
		g.AddToCommand(command, persistent...)
	}
}

func (f Flags) BindViper(command *cobra.Command, persistent ...bool) {
	for _, g := range f {
		g.BindViper(command, persistent...)
	}
}
