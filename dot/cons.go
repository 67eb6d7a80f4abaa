// Package dot provides short constructors for document elements. It is
// meant to be dot-imported by code that builds documents by hand:
//
//	import . "github.com/inkpress/go-pandoc/dot"
//
//	doc := Doc(
//	    Header(1, Attr("intro"), Str("Introduction")),
//	    Para(Str("Hello,"), Space(), Emph(Str("world"))),
//	)
package dot

import "github.com/inkpress/go-pandoc"

const (
	Continue = pandoc.WalkContinue
	Replace  = pandoc.WalkReplace
	Skip     = pandoc.WalkSkip
	Stop     = pandoc.WalkStop
)

func Blocks(b ...pandoc.Block) []pandoc.Block {
	return b
}

func Inlines(i ...pandoc.Inline) []pandoc.Inline {
	return i
}

// Document with the given blocks, empty metadata and the default
// api version.
func Doc(b ...pandoc.Block) *pandoc.Doc {
	return &pandoc.Doc{
		Version: append([]int(nil), pandoc.APIVersion...),
		Blocks:  b,
	}
}

// Text (string)
func Str(s string) pandoc.Inline {
	return &pandoc.Str{Text: s}
}

// Emphasized text (list of inlines)
func Emph(i ...pandoc.Inline) *pandoc.Emph {
	return &pandoc.Emph{Inlines: i}
}

// Strongly emphasized text (list of inlines)
func Strong(i ...pandoc.Inline) *pandoc.Strong {
	return &pandoc.Strong{Inlines: i}
}

// Strikeout text (list of inlines)
func Strikeout(i ...pandoc.Inline) *pandoc.Strikeout {
	return &pandoc.Strikeout{Inlines: i}
}

// Superscripted text (list of inlines)
func Superscript(i ...pandoc.Inline) *pandoc.Superscript {
	return &pandoc.Superscript{Inlines: i}
}

// Subscripted text (list of inlines)
func Subscript(i ...pandoc.Inline) *pandoc.Subscript {
	return &pandoc.Subscript{Inlines: i}
}

// Small capitals (list of inlines)
func SmallCaps(i ...pandoc.Inline) *pandoc.SmallCaps {
	return &pandoc.SmallCaps{Inlines: i}
}

const (
	DoubleQuote = pandoc.DoubleQuote
	SingleQuote = pandoc.SingleQuote
)

// Quoted text (list of inlines). The first argument is the quote type.
func Quoted(t pandoc.QuoteType, i ...pandoc.Inline) *pandoc.Quoted {
	return &pandoc.Quoted{QuoteType: t, Inlines: i}
}

// Text in single quotes, same as Quoted(SingleQuote, ...).
func SingleQuoted(i ...pandoc.Inline) *pandoc.Quoted {
	return &pandoc.Quoted{QuoteType: pandoc.SingleQuote, Inlines: i}
}

// Text in double quotes, same as Quoted(DoubleQuote, ...).
func DoubleQuoted(i ...pandoc.Inline) *pandoc.Quoted {
	return &pandoc.Quoted{QuoteType: pandoc.DoubleQuote, Inlines: i}
}

const (
	NormalCitation = pandoc.NormalCitation
	SuppressAuthor = pandoc.SuppressAuthor
	AuthorInText   = pandoc.AuthorInText
)

// Citation record with empty prefix and suffix, note number and
// hash zero. Set the remaining fields directly when needed.
func Citation(id string, mode pandoc.CitationMode) pandoc.Citation {
	return pandoc.Citation{Id: id, Mode: mode}
}

// Citation (list of citations).
func Cite(c ...pandoc.Citation) *pandoc.Cite {
	return &pandoc.Cite{Citations: c}
}

// Inline code (literal). The first argument is the span attributes.
func Code(attr pandoc.Attr, text string) *pandoc.Code {
	return &pandoc.Code{Attr: attr, Text: text}
}

// Inter-word space
func Space() pandoc.Inline { return pandoc.SP }

// Soft line break
func SoftBreak() pandoc.Inline { return pandoc.SB }

// Hard line break
func LineBreak() pandoc.Inline { return pandoc.LB }

const (
	DisplayMathType = pandoc.DisplayMathType
	InlineMathType  = pandoc.InlineMathType
)

// TeX math (literal). The first argument is the math type.
func Math(t pandoc.MathType, text string) *pandoc.Math {
	return &pandoc.Math{MathType: t, Text: text}
}

// Display math, same as Math(DisplayMathType, text).
func DisplayMath(text string) *pandoc.Math {
	return &pandoc.Math{MathType: pandoc.DisplayMathType, Text: text}
}

// Inline math, same as Math(InlineMathType, text).
func InlineMath(text string) *pandoc.Math {
	return &pandoc.Math{MathType: pandoc.InlineMathType, Text: text}
}

// Raw inline (literal). The first argument is the format
// the literal must be exported in.
func RawInline(format string, text string) *pandoc.RawInline {
	return &pandoc.RawInline{Format: format, Text: text}
}

// Link (list of inlines as link text).
func Link(attr pandoc.Attr, url string, title string, i ...pandoc.Inline) *pandoc.Link {
	return &pandoc.Link{Attr: attr, Target: pandoc.Target{Url: url, Title: title}, Inlines: i}
}

// Image (list of inlines as alternate text).
func Image(attr pandoc.Attr, url string, title string, i ...pandoc.Inline) *pandoc.Image {
	return &pandoc.Image{Attr: attr, Target: pandoc.Target{Url: url, Title: title}, Inlines: i}
}

// Footnote or endnote (list of blocks)
func Note(b ...pandoc.Block) pandoc.Inline {
	return &pandoc.Note{Blocks: b}
}

// Generic inline container with attributes.
func Span(attr pandoc.Attr, i ...pandoc.Inline) *pandoc.Span {
	return &pandoc.Span{Attr: attr, Inlines: i}
}

var NoAttr = pandoc.EmptyAttr

func KVs(kvs ...string) []pandoc.KV {
	var res = make([]pandoc.KV, 0, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		res = append(res, pandoc.KV{Key: kvs[i], Value: kvs[i+1]})
	}
	return res
}

func Attr(id string, classes ...string) pandoc.Attr {
	return pandoc.Attributes(nil, id, classes...)
}

func AttrKVs(id string, kvs []pandoc.KV, classes ...string) pandoc.Attr {
	return pandoc.Attributes(kvs, id, classes...)
}

func Plain(i ...pandoc.Inline) *pandoc.Plain {
	return &pandoc.Plain{Inlines: i}
}

func Para(i ...pandoc.Inline) *pandoc.Para {
	return &pandoc.Para{Inlines: i}
}

// Line block (list of lines, each a list of inlines).
func LineBlock(lines ...[]pandoc.Inline) *pandoc.LineBlock {
	return &pandoc.LineBlock{Inlines: lines}
}

func CodeBlock(attr pandoc.Attr, text string) *pandoc.CodeBlock {
	return &pandoc.CodeBlock{Attr: attr, Text: text}
}

func RawBlock(format string, text string) *pandoc.RawBlock {
	return &pandoc.RawBlock{Format: format, Text: text}
}

func BlockQuote(b ...pandoc.Block) *pandoc.BlockQuote {
	return &pandoc.BlockQuote{Blocks: b}
}

const (
	DefaultStyle = pandoc.DefaultStyle
	Example      = pandoc.Example
	Decimal      = pandoc.Decimal
	LowerRoman   = pandoc.LowerRoman
	UpperRoman   = pandoc.UpperRoman
	LowerAlpha   = pandoc.LowerAlpha
	UpperAlpha   = pandoc.UpperAlpha

	DefaultDelim = pandoc.DefaultDelim
	Period       = pandoc.Period
	OneParen     = pandoc.OneParen
	TwoParens    = pandoc.TwoParens
)

func ListAttrs(start int, style pandoc.ListNumberStyle, delim pandoc.ListNumberDelim) pandoc.ListAttrs {
	return pandoc.ListAttrs{Start: start, Style: style, Delimiter: delim}
}

func OrderedList(attrs pandoc.ListAttrs, items ...[]pandoc.Block) *pandoc.OrderedList {
	return &pandoc.OrderedList{Attr: attrs, Items: items}
}

func BulletList(items ...[]pandoc.Block) *pandoc.BulletList {
	return &pandoc.BulletList{Items: items}
}

// Definition list item: a term and its definitions.
func Definition(term []pandoc.Inline, defs ...[]pandoc.Block) pandoc.Definition {
	return pandoc.Definition{Term: term, Definition: defs}
}

func DefinitionList(items ...pandoc.Definition) *pandoc.DefinitionList {
	return &pandoc.DefinitionList{Items: items}
}

// Horizontal rule.
func HorizontalRule() pandoc.Block {
	return pandoc.HR
}

// Null block.
func Null() pandoc.Block {
	return pandoc.NB
}

func Header(level int, attr pandoc.Attr, i ...pandoc.Inline) *pandoc.Header {
	return &pandoc.Header{Level: level, Attr: attr, Inlines: i}
}

const (
	AlignLeft    = pandoc.AlignLeft
	AlignRight   = pandoc.AlignRight
	AlignCenter  = pandoc.AlignCenter
	AlignDefault = pandoc.AlignDefault
)

// Table with the given caption, column alignments, relative column
// widths, column headers and rows.
func Table(caption []pandoc.Inline, aligns []pandoc.Alignment, widths []float64, headers [][]pandoc.Block, rows ...[][]pandoc.Block) *pandoc.Table {
	return &pandoc.Table{Caption: caption, Aligns: aligns, Widths: widths, Headers: headers, Rows: rows}
}

func Div(attr pandoc.Attr, b ...pandoc.Block) *pandoc.Div {
	return &pandoc.Div{Attr: attr, Blocks: b}
}

func MetaMap(entries ...pandoc.MetaMapEntry) *pandoc.MetaMap {
	return &pandoc.MetaMap{Entries: entries}
}

func MetaEntry(key string, value pandoc.MetaValue) pandoc.MetaMapEntry {
	return pandoc.MetaMapEntry{Key: key, Value: value}
}

func MetaList(entries ...pandoc.MetaValue) *pandoc.MetaList {
	return &pandoc.MetaList{Entries: entries}
}

func MetaInlines(i ...pandoc.Inline) *pandoc.MetaInlines {
	return &pandoc.MetaInlines{Inlines: i}
}

func MetaBlocks(b ...pandoc.Block) *pandoc.MetaBlocks {
	return &pandoc.MetaBlocks{Blocks: b}
}

func MetaBool(b bool) pandoc.MetaValue {
	return pandoc.MetaBool(b)
}

func MetaString(s string) pandoc.MetaValue {
	return pandoc.MetaString(s)
}

func Filter[P any, E pandoc.Element, R pandoc.Element](elt E, fun func(P) ([]R, pandoc.WalkResult)) E {
	return pandoc.Filter[P, E, R](elt, fun)
}

func Query[P any, E pandoc.Element](elt E, fun func(P) pandoc.WalkResult) {
	pandoc.Query[P, E](elt, fun)
}

func Stringify[E pandoc.Element](elt E) string {
	return pandoc.Stringify(elt)
}
