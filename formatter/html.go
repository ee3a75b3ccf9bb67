package formatter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/wordtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrMalformedHTML is flagged when an HTML fragment does not hold a well-formed
// definition list of entries.
var ErrMalformedHTML = errors.New("formatter: malformed entry list")

// ListClass is the CSS class of the definition list produced by WriteHTML.
const ListClass = "wordtree"

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a, Attr: attrs}
}

func textElement(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// EntriesToHTML creates an HTML definition list for entries, with every word
// as a <dt> and its translation as the following <dd>.
func EntriesToHTML(entries []wordtree.Entry) *html.Node {
	dl := element(atom.Dl, html.Attribute{Key: "class", Val: ListClass})
	for _, e := range entries {
		dl.AppendChild(textElement(atom.Dt, e.Key))
		dl.AppendChild(textElement(atom.Dd, e.Value))
	}
	return dl
}

// WriteHTML renders entries as an HTML definition list.
func WriteHTML(w io.Writer, entries []wordtree.Entry) error {
	if w == nil {
		return ErrIllegalArguments
	}
	if err := html.Render(w, EntriesToHTML(entries)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// ReadHTML extracts entries from an HTML fragment holding definition lists, as
// written by WriteHTML. Every <dt> must be followed by exactly one <dd>; the
// text content of both is trimmed of surrounding white space.
func ReadHTML(input io.Reader) ([]wordtree.Entry, error) {
	if input == nil {
		return nil, ErrIllegalArguments
	}
	body := element(atom.Body)
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	var entries []wordtree.Entry
	for _, n := range nodes {
		if entries, err = collectEntries(n, entries); err != nil {
			return nil, err
		}
	}
	T().Debugf("read %d entries from HTML", len(entries))
	return entries, nil
}

func collectEntries(n *html.Node, entries []wordtree.Entry) ([]wordtree.Entry, error) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Dl {
		var key *string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Dt:
				if key != nil {
					return nil, fmt.Errorf("%w: word %q without translation", ErrMalformedHTML, *key)
				}
				k := innerText(c)
				key = &k
			case atom.Dd:
				if key == nil {
					return nil, fmt.Errorf("%w: translation %q without word", ErrMalformedHTML, innerText(c))
				}
				entries = append(entries, wordtree.Entry{Key: *key, Value: innerText(c)})
				key = nil
			}
		}
		if key != nil {
			return nil, fmt.Errorf("%w: word %q without translation", ErrMalformedHTML, *key)
		}
		return entries, nil
	}
	var err error
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if entries, err = collectEntries(c, entries); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// innerText returns the textual content of an HTML element and all its
// descendents, similar to JavaScript's innerText.
func innerText(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// BatchFromHTML reads entries from an HTML fragment and turns them into an
// insert batch. Words containing white space or empty words or translations
// cannot be stored in a batch and are rejected with ErrMalformedHTML.
func BatchFromHTML(input io.Reader) (*wordtree.Batch, error) {
	entries, err := ReadHTML(input)
	if err != nil {
		return nil, err
	}
	batch := wordtree.NewBatch(wordtree.ModeInsert)
	for _, e := range entries {
		if e.Key == "" || e.Value == "" || len(strings.Fields(e.Key)) != 1 {
			return nil, fmt.Errorf("%w: cannot insert %q", ErrMalformedHTML, e.Key)
		}
		batch.Add(e.Key, e.Value)
	}
	return batch, nil
}
