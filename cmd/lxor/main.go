package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/luaxor/cmd/internal"
	flag "github.com/spf13/pflag"
)

var (
	version = "dev"
)

func main() {
	var (
		helpFlag    bool
		versionFlag bool
		verboseFlag bool
		keyFlag     string
		offsetFlag  int
	)
	flags := flag.NewFlagSet("lxor", flag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the version of lxor.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Logs cipher handle lifecycle events to stderr.")
	flags.StringVarP(&keyFlag, "key", "k", "", "Hex encoded key used by the screen command.")
	flags.IntVarP(&offsetFlag, "offset", "o", 0, "Offset within the key to start screening at, used by the screen command.")
	flags.Usage = func() {
		fmt.Printf(`
lxor embeds a Lua interpreter with the lxor module preloaded, and provides a few XOR screening utilities.

USAGE:
    lxor [FLAGS] run SCRIPT [ARGS...]
        Runs SCRIPT. The lxor module is available with require("lxor"), and ARGS are passed in the global arg table.
    lxor [FLAGS] screen [IN [OUT]]
        XOR screens IN (default stdin) to OUT (default stdout) using the --key and --offset flags.
    lxor genkey LENGTH
        Prints a random key of LENGTH bytes, hex encoded.

FLAGS:
%s
SECURITY:
    A repeating XOR key is obfuscation, not encryption, and is easily reversed by anyone who can guess part of the plain text.
`, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		fmt.Println(version)
		return
	}

	logger := internal.Logger(os.Stderr, verboseFlag)
	args := flags.Args()
	if len(args) == 0 {
		internal.Fatal("Missing required command, one of run, screen, or genkey")
	}
	switch args[0] {
	case "run":
		if len(args) < 2 {
			internal.Fatal("Missing required SCRIPT argument")
		}
		if err := runScript(logger, args[1], args[2:]...); err != nil {
			internal.Fatal("Script failed: %v", err)
		}
	case "screen":
		if err := screenFiles(keyFlag, offsetFlag, args[1:]...); err != nil {
			internal.Fatal("Failed to screen input: %v", err)
		}
	case "genkey":
		if len(args) < 2 {
			internal.Fatal("Missing required LENGTH argument")
		}
		key, err := genKey(args[1])
		if err != nil {
			internal.Fatal("Failed to generate key: %v", err)
		}
		fmt.Println(key)
	default:
		internal.Fatal("Unknown command '%s'", args[0])
	}
}
