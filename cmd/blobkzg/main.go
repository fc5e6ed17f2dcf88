// Command blobkzg computes and checks EIP-4844 blob commitments and proofs.
//
// Usage:
//
//	blobkzg [flags] <command> [args]
//
// Commands:
//
//	commit <blob-file>                          print the blob's commitment
//	prove  <blob-file> [commitment]             print a proof (commits first if no commitment)
//	verify <blob-file> <commitment> <proof>     check a proof, exit 1 if rejected
//	hash   <commitment>                         print the versioned hash
//	pack   <data-file> <blob-file>              pack arbitrary data into a blob file
//	guest  <blob-file>                          run the guest program on host-prepared input
//
// Flags:
//
//	--backend    Backend: full, verifyonly (default: build-selected)
//	--workers    go-eth-kzg goroutines, 0 = library default (default: 0)
//	--verbosity  Log level 0-5 (default: 2)
//	--version    Print version and exit
//
// Commitments and proofs are 0x-prefixed hex.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eth2030/blobkzg/kzg"
	"github.com/eth2030/blobkzg/log"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

// Exit codes.
const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	return newCLI(os.Stdout, os.Stderr).run(args)
}

// options holds the global flags.
type options struct {
	cfg       kzg.Config
	verbosity int
}

type cli struct {
	out    io.Writer
	errOut io.Writer

	backend kzg.Backend
	logger  *log.Logger
}

func newCLI(out, errOut io.Writer) *cli {
	return &cli{out: out, errOut: errOut}
}

func (c *cli) run(args []string) int {
	opts, rest, exit, code := c.parseFlags(args)
	if exit {
		return code
	}
	log.SetDefault(log.NewWithWriter(c.errOut, "text", log.VerbosityToLevel(opts.verbosity)))
	c.logger = log.Default().Module("cli")

	if len(rest) == 0 {
		fmt.Fprintln(c.errOut, "Error: missing command")
		return exitUsage
	}
	backend, err := kzg.New(opts.cfg)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return exitUsage
	}
	c.backend = backend
	c.logger.Debug("backend selected", "backend", backend.Name(), "workers", opts.cfg.Workers)

	cmd, cmdArgs := rest[0], rest[1:]
	var handler func([]string) error
	switch cmd {
	case "commit":
		handler = c.commit
	case "prove":
		handler = c.prove
	case "verify":
		handler = c.verify
	case "hash":
		handler = c.hash
	case "pack":
		handler = c.pack
	case "guest":
		handler = c.runGuest
	default:
		fmt.Fprintf(c.errOut, "Error: unknown command %q\n", cmd)
		return exitUsage
	}

	switch err := handler(cmdArgs); {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return exitUsage
	default:
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return exitRejected
	}
}

// parseFlags parses the global flags. Returns the options, the remaining
// arguments, whether the caller should exit immediately, and the exit code.
func (c *cli) parseFlags(args []string) (options, []string, bool, int) {
	opts := options{cfg: kzg.DefaultConfig(), verbosity: 2}

	fs := newCustomFlagSet("blobkzg", c.errOut)
	fs.KindVar(&opts.cfg.Backend, "backend", opts.cfg.Backend, "backend: full, verifyonly")
	fs.IntVar(&opts.cfg.Workers, "workers", opts.cfg.Workers, "go-eth-kzg goroutines, 0 = library default")
	fs.IntVar(&opts.verbosity, "verbosity", opts.verbosity, "log level 0-5")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, nil, true, exitUsage
	}
	if *showVersion {
		fmt.Fprintf(c.out, "blobkzg %s (commit %s)\n", version, commit)
		return opts, nil, true, exitOK
	}
	if err := opts.cfg.Validate(); err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return opts, nil, true, exitUsage
	}
	return opts, fs.Args(), false, exitOK
}

func usageErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}
