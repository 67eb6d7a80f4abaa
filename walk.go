package pandoc

import (
	"io"
	"strings"
)

// WalkResult is the result of a walk operation.
type WalkResult int

const (
	// WalkContinue indicates that the walk operation should continue.
	WalkContinue WalkResult = iota
	// WalkReplace indicates that the current element should be replaced
	// with the elements returned by the function.
	WalkReplace
	// WalkSkip indicates that the current element should be kept as is and
	// no children should be processed.
	WalkSkip
	// WalkStop indicates that the walk operation should stop immediately.
	WalkStop
)

// Filter applies the specified function 'fun' to each child element of the
// provided element 'elt'. The function 'fun' is not applied to 'elt'
// itself, even if 'elt's type matches the parameter type of 'fun'.
//
// The behavior of the filter depends on the WalkResult returned by 'fun':
//
//   - WalkStop: Terminates the traversal process immediately.
//   - WalkSkip: Skips processing of the current element's children.
//   - WalkReplace: Replaces the current element with the elements returned
//     by 'fun'.
//   - WalkContinue: Continues without replacing the current element.
//
// To remove an element, 'fun' should return an empty slice of elements
// along with WalkReplace. Untouched parts of the tree are shared between
// the input and the result; replaced lists are copied.
//
// Example:
//
//	doc = pandoc.Filter(doc, func(str *pandoc.Str) ([]pandoc.Inline, pandoc.WalkResult) {
//	    return []pandoc.Inline{&pandoc.Strong{
//	        Inlines: []pandoc.Inline{&pandoc.Str{Text: str.Text}},
//	    }}, pandoc.WalkReplace
//	})
func Filter[P any, E Element, R Element](elt E, fun func(P) ([]R, WalkResult)) E {
	elt, _, _ = walkChildren(elt, fun)
	return elt
}

type queryResult struct{}

func (queryResult) element()              {}
func (queryResult) clone() Element        { return queryResult{} }
func (queryResult) write(io.Writer) error { return nil }

// Query applies the specified function 'fun' to each child element of the
// provided element 'elt' without altering the structure of 'elt'. It is
// useful for operations like searching or validation where modification
// is not required.
//
// Example:
//
//	var headers int
//	pandoc.Query(doc, func(h *pandoc.Header) pandoc.WalkResult {
//	    headers++
//	    return pandoc.WalkSkip
//	})
func Query[P any, E Element](elt E, fun func(P) WalkResult) {
	walkChildren(elt, func(e P) ([]queryResult, WalkResult) {
		return nil, fun(e)
	})
}

// Stringify reduces an element to the plain text it contains, the way
// pandoc's stringify does: Str contents joined with spaces and line
// breaks, notes skipped.
func Stringify[E Element](elt E) string {
	var sb strings.Builder
	Query(elt, func(i Inline) WalkResult {
		switch i := i.(type) {
		case *Str:
			sb.WriteString(i.Text)
		case *Space:
			sb.WriteByte(' ')
		case *SoftBreak, *LineBreak:
			sb.WriteByte('\n')
		case *Note:
			return WalkSkip
		}
		return WalkContinue
	})
	return sb.String()
}

func coerce[S Element, R Element](replace []R) ([]S, bool) {
	if out, ok := any(replace).([]S); ok {
		return out, true
	}
	out := make([]S, len(replace))
	for i := range replace {
		v, ok := any(replace[i]).(S)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func walkChildren[P any, E Element, R Element](e E, fun func(P) ([]R, WalkResult)) (E, bool, WalkResult) {
	switch e := any(e).(type) {
	case *Doc:
		meta, metaUpdated, result := walkList(e.Meta, fun)
		if result == WalkStop {
			if metaUpdated {
				e = &Doc{Version: e.Version, Meta: meta, Blocks: e.Blocks}
			}
			return any(e).(E), metaUpdated, WalkStop
		}
		blocks, blocksUpdated, result := walkList(e.Blocks, fun)
		if metaUpdated || blocksUpdated {
			e = &Doc{Version: e.Version, Meta: meta, Blocks: blocks}
		}
		return any(e).(E), metaUpdated || blocksUpdated, result

	// Inlines
	case *Emph:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Emph{Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Strong:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Strong{Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Strikeout:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Strikeout{Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Superscript:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Superscript{Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Subscript:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Subscript{Inlines: lst}
		}
		return any(e).(E), updated, result
	case *SmallCaps:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &SmallCaps{Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Quoted:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Quoted{QuoteType: e.QuoteType, Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Cite:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Cite{Citations: e.Citations, Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Link:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Link{Attr: e.Attr, Target: e.Target, Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Image:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Image{Attr: e.Attr, Target: e.Target, Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Note:
		lst, updated, result := walkList(e.Blocks, fun)
		if updated {
			e = &Note{Blocks: lst}
		}
		return any(e).(E), updated, result
	case *Span:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Span{Attr: e.Attr, Inlines: lst}
		}
		return any(e).(E), updated, result

	// Blocks
	case *Plain:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Plain{Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Para:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Para{Inlines: lst}
		}
		return any(e).(E), updated, result
	case *LineBlock:
		lst, updated, result := walkListOfLists(e.Inlines, fun)
		if updated {
			e = &LineBlock{Inlines: lst}
		}
		return any(e).(E), updated, result
	case *Header:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &Header{Attr: e.Attr, Level: e.Level, Inlines: lst}
		}
		return any(e).(E), updated, result
	case *BlockQuote:
		lst, updated, result := walkList(e.Blocks, fun)
		if updated {
			e = &BlockQuote{Blocks: lst}
		}
		return any(e).(E), updated, result
	case *Div:
		lst, updated, result := walkList(e.Blocks, fun)
		if updated {
			e = &Div{Attr: e.Attr, Blocks: lst}
		}
		return any(e).(E), updated, result
	case *BulletList:
		lst, updated, result := walkListOfLists(e.Items, fun)
		if updated {
			e = &BulletList{Items: lst}
		}
		return any(e).(E), updated, result
	case *OrderedList:
		lst, updated, result := walkListOfLists(e.Items, fun)
		if updated {
			e = &OrderedList{Attr: e.Attr, Items: lst}
		}
		return any(e).(E), updated, result
	case *DefinitionList:
		var (
			updated bool
			items   = e.Items
		)
		for i := range items {
			term, upd, result := walkList(items[i].Term, fun)
			if upd {
				if !updated {
					updated = true
					items = append([]Definition(nil), items...)
				}
				items[i].Term = term
			}
			if result == WalkStop {
				if updated {
					e = &DefinitionList{Items: items}
				}
				return any(e).(E), updated, WalkStop
			}
			defs, upd, result := walkListOfLists(items[i].Definition, fun)
			if upd {
				if !updated {
					updated = true
					items = append([]Definition(nil), items...)
				}
				items[i].Definition = defs
			}
			if result == WalkStop {
				if updated {
					e = &DefinitionList{Items: items}
				}
				return any(e).(E), updated, WalkStop
			}
		}
		if updated {
			e = &DefinitionList{Items: items}
		}
		return any(e).(E), updated, WalkContinue
	case *Table:
		t := *e
		updated := false
		caption, upd, result := walkList(t.Caption, fun)
		if upd {
			updated = true
			t.Caption = caption
		}
		if result == WalkStop {
			return tableResult(e, &t, updated).(E), updated, WalkStop
		}
		headers, upd, result := walkListOfLists(t.Headers, fun)
		if upd {
			updated = true
			t.Headers = headers
		}
		if result == WalkStop {
			return tableResult(e, &t, updated).(E), updated, WalkStop
		}
		rows := t.Rows
		rowsCopied := false
		for i := range rows {
			row, upd, result := walkListOfLists(rows[i], fun)
			if upd {
				if !rowsCopied {
					rowsCopied = true
					rows = append([][][]Block(nil), rows...)
				}
				updated = true
				rows[i] = row
			}
			if result == WalkStop {
				t.Rows = rows
				return tableResult(e, &t, updated).(E), updated, WalkStop
			}
		}
		t.Rows = rows
		return tableResult(e, &t, updated).(E), updated, WalkContinue

	// Meta
	case MetaMapEntry:
		lst, updated, result := walkList([]MetaValue{e.Value}, fun)
		if updated && len(lst) == 1 {
			e = MetaMapEntry{Key: e.Key, Value: lst[0]}
		} else {
			updated = false
		}
		return any(e).(E), updated, result
	case *MetaMap:
		lst, updated, result := walkList(e.Entries, fun)
		if updated {
			e = &MetaMap{Entries: lst}
		}
		return any(e).(E), updated, result
	case *MetaList:
		lst, updated, result := walkList(e.Entries, fun)
		if updated {
			e = &MetaList{Entries: lst}
		}
		return any(e).(E), updated, result
	case *MetaInlines:
		lst, updated, result := walkList(e.Inlines, fun)
		if updated {
			e = &MetaInlines{Inlines: lst}
		}
		return any(e).(E), updated, result
	case *MetaBlocks:
		lst, updated, result := walkList(e.Blocks, fun)
		if updated {
			e = &MetaBlocks{Blocks: lst}
		}
		return any(e).(E), updated, result
	}
	// Str, Code, Space, SoftBreak, LineBreak, Math, RawInline, CodeBlock,
	// RawBlock, HorizontalRule, Null, MetaBool and MetaString carry no
	// child elements.
	return e, false, WalkContinue
}

func tableResult(orig, copied *Table, updated bool) Element {
	if updated {
		return copied
	}
	return orig
}

func walkListOfLists[P any, S Element, R Element](source [][]S, fun func(P) ([]R, WalkResult)) ([][]S, bool, WalkResult) {
	updated := false
	for i := 0; i < len(source); i++ {
		lst, upd, result := walkList(source[i], fun)
		if upd {
			if !updated {
				updated = true
				source = append([][]S(nil), source...)
			}
			source[i] = lst
		}
		if result == WalkStop {
			return source, updated, WalkStop
		}
	}
	return source, updated, WalkContinue
}

func walkList[P any, S Element, R Element](source []S, fun func(P) ([]R, WalkResult)) ([]S, bool, WalkResult) {
	// Special case: fun handles whole lists and works bottom-up.
	if _, ok := any(source).(P); ok {
		updated := false
		for i := range source {
			item, upd, result := walkChildren(source[i], fun)
			if upd {
				if !updated {
					updated = true
					source = append([]S(nil), source...)
				}
				source[i] = item
			}
			if result == WalkStop {
				return source, updated, WalkStop
			}
		}
		replace, result := fun(any(source).(P))
		switch result {
		case WalkReplace:
			if out, ok := coerce[S](replace); ok {
				return out, true, WalkContinue
			}
		case WalkStop:
			return source, updated, WalkStop
		}
		return source, updated, WalkContinue
	}
	updated := false
	for i := 0; i < len(source); {
		if v, ok := any(source[i]).(P); ok {
			replace, result := fun(v)
			switch result {
			case WalkStop:
				return source, updated, WalkStop
			case WalkSkip:
				i++
				continue
			case WalkReplace:
				if out, ok := coerce[S](replace); ok {
					if !updated {
						updated = true
						source = append([]S(nil), source...)
					}
					source = append(source[:i], append(out, source[i+1:]...)...)
					i += len(out)
					continue
				}
			}
		}
		item, upd, result := walkChildren(source[i], fun)
		if upd {
			if !updated {
				updated = true
				source = append([]S(nil), source...)
			}
			source[i] = item
		}
		if result == WalkStop {
			return source, updated, WalkStop
		}
		i++
	}
	return source, updated, WalkContinue
}
