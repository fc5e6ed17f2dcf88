package main

import (
	"flag"
	"io"

	"github.com/eth2030/blobkzg/kzg"
)

// flagSet wraps flag.FlagSet to add a backend kind flag.
type flagSet struct {
	*flag.FlagSet
}

// newCustomFlagSet creates a flagSet with ContinueOnError behavior that
// reports to w.
func newCustomFlagSet(name string, w io.Writer) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return &flagSet{FlagSet: fs}
}

// KindVar defines a backend kind flag.
func (fs *flagSet) KindVar(p *kzg.Kind, name string, value kzg.Kind, usage string) {
	*p = value
	fs.FlagSet.Var(&kindValue{p: p}, name, usage)
}

// kindValue implements flag.Value for kzg.Kind.
type kindValue struct {
	p *kzg.Kind
}

func (v *kindValue) String() string {
	if v.p == nil {
		return ""
	}
	return v.p.String()
}

func (v *kindValue) Set(s string) error {
	k, err := kzg.ParseKind(s)
	if err != nil {
		return err
	}
	*v.p = k
	return nil
}
