package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"pacwrap/pkg/manager"
)

// opFlags holds the operation and modifier letters as pflag parsed them.
// Combined shorthands such as -Syu or -Rns set several fields at once.
type opFlags struct {
	query   bool
	remove  bool
	sync    bool
	upgrade bool

	clean      int
	info       bool
	list       bool
	nosave     bool
	owns       bool
	search     bool
	sysupgrade bool
	download   bool
	refresh    bool
}

func (o *opFlags) register(flags *pflag.FlagSet) {
	flags.BoolVarP(&o.query, "query", "Q", false, "query the installed packages")
	flags.BoolVarP(&o.remove, "remove", "R", false, "remove packages")
	flags.BoolVarP(&o.sync, "sync", "S", false, "install, search and upgrade from the repositories")
	flags.BoolVarP(&o.upgrade, "upgrade", "U", false, "install packages from local files")

	flags.CountVarP(&o.clean, "clean", "c", "with -S: clean the cache (twice for everything); with -Q: changelog")
	flags.BoolVarP(&o.info, "info", "i", false, "show package information")
	flags.BoolVarP(&o.list, "list", "l", false, "list the files owned by a package")
	flags.BoolVarP(&o.nosave, "nosave", "n", false, "with -R: remove configuration files too")
	flags.BoolVarP(&o.owns, "owns", "o", false, "find the package owning a file")
	flags.BoolVarP(&o.search, "search", "s", false, "with -Q/-S: search; with -R: remove unneeded dependencies")
	flags.BoolVarP(&o.sysupgrade, "sysupgrade", "u", false, "upgrade outdated packages")
	flags.BoolVarP(&o.download, "downloadonly", "w", false, "download packages without installing")
	flags.BoolVarP(&o.refresh, "refresh", "y", false, "refresh the package database")
}

// empty reports whether no operation or modifier letter was given.
func (o *opFlags) empty() bool {
	return o.tag() == ""
}

// tag folds the parsed letters back into an operation tag such as "Suy".
// Operation letters come first, modifiers follow in alphabetical order.
func (o *opFlags) tag() string {
	var sb strings.Builder
	for _, l := range []struct {
		set    bool
		letter byte
	}{
		{o.query, 'Q'}, {o.remove, 'R'}, {o.sync, 'S'}, {o.upgrade, 'U'},
	} {
		if l.set {
			sb.WriteByte(l.letter)
		}
	}

	sb.WriteString(strings.Repeat("c", o.clean))
	for _, l := range []struct {
		set    bool
		letter byte
	}{
		{o.info, 'i'}, {o.list, 'l'}, {o.nosave, 'n'}, {o.owns, 'o'},
		{o.search, 's'}, {o.sysupgrade, 'u'}, {o.download, 'w'}, {o.refresh, 'y'},
	} {
		if l.set {
			sb.WriteByte(l.letter)
		}
	}
	return sb.String()
}

// operation validates the folded tag against the operation set.
func (o *opFlags) operation() (manager.Operation, error) {
	tag := o.tag()

	ops := 0
	for _, set := range []bool{o.query, o.remove, o.sync, o.upgrade} {
		if set {
			ops++
		}
	}
	switch {
	case ops == 0:
		return "", &manager.ConfigError{
			Key:   "command line",
			Value: dashed(tag),
			Err:   fmt.Errorf("%w: no operation specified (use one of -Q, -R, -S, -U)", manager.ErrInvalidOperation),
		}
	case ops > 1:
		return "", &manager.ConfigError{
			Key:   "command line",
			Value: dashed(tag),
			Err:   fmt.Errorf("%w: only one of -Q, -R, -S, -U may be given", manager.ErrInvalidOperation),
		}
	}

	op, err := manager.ParseOperation(tag)
	if err != nil {
		return "", &manager.ConfigError{Key: "command line", Value: dashed(tag), Err: manager.ErrInvalidOperation}
	}
	return op, nil
}

func dashed(tag string) string {
	if tag == "" {
		return ""
	}
	return "-" + tag
}
