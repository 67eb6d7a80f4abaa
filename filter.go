package pandoc

import (
	"io"
	"os"
	"sort"
)

// InlineFunc transforms one inline element. Returning a nil slice keeps
// the element unchanged; returning an empty non-nil slice removes it;
// anything else replaces it in place.
type InlineFunc func(Inline) ([]Inline, error)

// BlockFunc transforms one block element, with the same replacement
// contract as InlineFunc.
type BlockFunc func(Block) ([]Block, error)

// DocFunc transforms the whole document after all element handlers ran.
type DocFunc func(*Doc) (*Doc, error)

// FilterSet maps node kinds to transformation callbacks. Handlers are
// registered explicitly per tag, and only tags from the closed kind
// enumeration are accepted; there is no name-based collection of
// callbacks from a namespace, so an unrelated binding can never be
// picked up by accident.
type FilterSet struct {
	inlines map[Tag]InlineFunc
	blocks  map[Tag]BlockFunc
	doc     DocFunc
	format  string
}

// NewFilterSet returns an empty filter set.
func NewFilterSet() *FilterSet {
	return &FilterSet{
		inlines: make(map[Tag]InlineFunc),
		blocks:  make(map[Tag]BlockFunc),
	}
}

// OnInline registers a handler for an inline kind. Registering a tag
// outside the inline enumeration fails with UnknownTagError.
func (f *FilterSet) OnInline(tag Tag, fn InlineFunc) error {
	if _, ok := inlineReaders[tag]; !ok {
		return &UnknownTagError{Tag: tag, Want: "inline"}
	}
	f.inlines[tag] = fn
	return nil
}

// OnBlock registers a handler for a block kind. Registering a tag
// outside the block enumeration fails with UnknownTagError.
func (f *FilterSet) OnBlock(tag Tag, fn BlockFunc) error {
	if _, ok := blockReaders[tag]; !ok {
		return &UnknownTagError{Tag: tag, Want: "block"}
	}
	f.blocks[tag] = fn
	return nil
}

// OnDoc registers a handler for the assembled document, run after the
// element handlers.
func (f *FilterSet) OnDoc(fn DocFunc) {
	f.doc = fn
}

// Tags returns the registered tags in lexical order.
func (f *FilterSet) Tags() []Tag {
	tags := make([]Tag, 0, len(f.inlines)+len(f.blocks))
	for t := range f.inlines {
		tags = append(tags, t)
	}
	for t := range f.blocks {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Format returns the output format pandoc passed to the filter, or ""
// when the filter was not started through RunFilter.
func (f *FilterSet) Format() string {
	return f.format
}

// Apply runs the registered handlers over the document: first the inline
// handlers, then the block handlers, then the document handler.
// Replacement elements are not re-visited. The input document is not
// mutated; untouched parts are shared with the result.
func (f *FilterSet) Apply(doc *Doc) (*Doc, error) {
	var err error
	if len(f.inlines) > 0 {
		doc = Filter(doc, func(i Inline) ([]Inline, WalkResult) {
			fn, ok := f.inlines[i.Tag()]
			if !ok {
				return nil, WalkContinue
			}
			repl, ferr := fn(i)
			if ferr != nil {
				err = ferr
				return nil, WalkStop
			}
			if repl == nil {
				return nil, WalkContinue
			}
			return repl, WalkReplace
		})
		if err != nil {
			return nil, err
		}
	}
	if len(f.blocks) > 0 {
		doc = Filter(doc, func(b Block) ([]Block, WalkResult) {
			fn, ok := f.blocks[b.Tag()]
			if !ok {
				return nil, WalkContinue
			}
			repl, ferr := fn(b)
			if ferr != nil {
				err = ferr
				return nil, WalkStop
			}
			if repl == nil {
				return nil, WalkContinue
			}
			return repl, WalkReplace
		})
		if err != nil {
			return nil, err
		}
	}
	if f.doc != nil {
		return f.doc(doc)
	}
	return doc, nil
}

// Run reads a document from r, applies the filter set and writes the
// result to w.
func (f *FilterSet) Run(r io.Reader, w io.Writer) error {
	doc, err := ReadFrom(r)
	if err != nil {
		return err
	}
	doc, err = f.Apply(doc)
	if err != nil {
		return err
	}
	return doc.WriteTo(w)
}

// RunFilter implements the pandoc JSON filter protocol: the document
// arrives on stdin, the transformed document leaves on stdout, and the
// first command line argument, when present, names the output format.
//
// Example:
//
//	func main() {
//	    fs := pandoc.NewFilterSet()
//	    fs.OnInline(pandoc.EmphTag, func(i pandoc.Inline) ([]pandoc.Inline, error) {
//	        return []pandoc.Inline{&pandoc.Strong{Inlines: i.(*pandoc.Emph).Inlines}}, nil
//	    })
//	    if err := pandoc.RunFilter(fs); err != nil {
//	        log.Fatal(err)
//	    }
//	}
func RunFilter(f *FilterSet) error {
	if len(os.Args) > 1 {
		f.format = os.Args[1]
	}
	return f.Run(os.Stdin, os.Stdout)
}
