package formatter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/wordtree/btree"
	"github.com/npillmayer/wordtree/rbtree"
)

// DumpRB writes the pre-order dump of a red-black tree. The lines are the ones
// of rbtree.Tree.Dump, with red nodes printed in red and black nodes in bold
// if config enables colors.
func DumpRB(w io.Writer, tree *rbtree.Tree, config *Config) error {
	if w == nil || tree == nil {
		return ErrIllegalArguments
	}
	colors := makePalette(config != nil && config.Color)
	bw := bufio.NewWriter(w)
	var err error
	tree.Walk(func(v rbtree.Visit) bool {
		fmt.Fprintf(bw, "level=%d child=%d ", v.Level, v.Child)
		switch {
		case v.Nil:
			bw.WriteString("null")
		case v.Color == rbtree.Red:
			colors.red.Fprintf(bw, "%s(%s)", v.Entry.Key, v.Color)
		default:
			colors.black.Fprintf(bw, "%s(%s)", v.Entry.Key, v.Color)
		}
		err = bw.WriteByte('\n')
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// DumpB writes the pre-order dump of a B-tree. The lines are the ones of
// btree.Tree.Dump, with keys highlighted if config enables colors.
func DumpB(w io.Writer, tree *btree.Tree, config *Config) error {
	if w == nil || tree == nil {
		return ErrIllegalArguments
	}
	colors := makePalette(config != nil && config.Color)
	bw := bufio.NewWriter(w)
	var err error
	tree.Walk(func(v btree.Visit) bool {
		fmt.Fprintf(bw, "level=%d child=%d /", v.Level, v.Child)
		if len(v.Entries) == 0 {
			bw.WriteByte('/')
		}
		for _, e := range v.Entries {
			colors.key.Fprint(bw, e.Key)
			bw.WriteByte('/')
		}
		err = bw.WriteByte('\n')
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// Outline writes an indented outline of a B-tree, one node per line, for
// interactive inspection.
func Outline(w io.Writer, tree *btree.Tree, config *Config) error {
	if w == nil || tree == nil {
		return ErrIllegalArguments
	}
	colors := makePalette(config != nil && config.Color)
	bw := bufio.NewWriter(w)
	tree.Walk(func(v btree.Visit) bool {
		bw.WriteString(strings.Repeat("    ", v.Level))
		colors.black.Fprintf(bw, "[%d]", v.Child)
		bw.WriteByte(' ')
		bw.WriteString(strings.Join(v.Keys(), " "))
		bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}
