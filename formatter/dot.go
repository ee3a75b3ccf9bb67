package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/wordtree/btree"
	"github.com/npillmayer/wordtree/rbtree"
)

// parents tracks the ID of the most recent node per level during a pre-order
// walk, which is the parent of the next node one level deeper.
type parents struct {
	ids []int
	max int
}

func (p *parents) alloc(level int) (id, parent int) {
	p.max++
	id = p.max
	if level > 0 {
		parent = p.ids[level-1]
	}
	p.ids = append(p.ids[:level], id)
	return id, parent
}

// RBToDot outputs the structure of a red-black tree in Graphviz DOT format
// (for debugging purposes). Sentinel leaf edges are drawn as small black circles.
func RBToDot(w io.Writer, tree *rbtree.Tree) error {
	if w == nil || tree == nil {
		return ErrIllegalArguments
	}
	var nodelist, edgelist strings.Builder
	var ids parents
	tree.Walk(func(v rbtree.Visit) bool {
		id, parent := ids.alloc(v.Level)
		if v.Nil {
			fmt.Fprintf(&nodelist, "\"%d\" %s;\n", id, emptyNode())
		} else {
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, dotEscape(v.Entry.Key),
				rbDotStyles(v.Color))
		}
		if parent > 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", parent, id)
		}
		return true
	})
	return writeDot(w, nodelist.String(), edgelist.String())
}

// BToDot outputs the structure of a B-tree in Graphviz DOT format
// (for debugging purposes). Every node is drawn as a record of its keys.
func BToDot(w io.Writer, tree *btree.Tree) error {
	if w == nil || tree == nil {
		return ErrIllegalArguments
	}
	var nodelist, edgelist strings.Builder
	var ids parents
	tree.Walk(func(v btree.Visit) bool {
		id, parent := ids.alloc(v.Level)
		keys := v.Keys()
		for i, k := range keys {
			keys[i] = dotEscape(k)
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, strings.Join(keys, "|"),
			bDotStyles(v.Leaf))
		if parent > 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", parent, id)
		}
		return true
	})
	return writeDot(w, nodelist.String(), edgelist.String())
}

func writeDot(w io.Writer, nodelist, edgelist string) error {
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist,
		edgelist,
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			T().Errorf("tree DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",style=filled,color=black,shape=circle,fixedsize=true,width=.2]"
}

func rbDotStyles(c rbtree.Color) string {
	s := ",style=filled,fontcolor=white,shape=circle"
	if c == rbtree.Red {
		s += ",color=red,fillcolor=red"
	} else {
		s += ",color=black,fillcolor=black"
	}
	return s
}

func bDotStyles(leaf bool) string {
	s := ",shape=record,style=filled"
	if leaf {
		s += ",fillcolor=white"
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

// dotEscape escapes characters with a special meaning in DOT record labels.
func dotEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`,
		`<`, `\<`, `>`, `\>`)
	return r.Replace(s)
}
