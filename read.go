package pandoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// envelope is the two-field wire shape shared by every tagged node.
// Nullary kinds omit "c" entirely.
type envelope struct {
	T Tag             `json:"t"`
	C json.RawMessage `json:"c"`
}

// The dispatch tables below are the kind registries: one entry per
// concrete kind, keyed by tag. tags.go derives the public closed tag
// sets from them.

var inlineReaders map[Tag]func(json.RawMessage) (Inline, error)
var blockReaders map[Tag]func(json.RawMessage) (Block, error)
var metaReaders map[Tag]func(json.RawMessage) (MetaValue, error)

// The maps are populated in init rather than with composite-literal
// initializers: the reader functions refer back to the maps via
// readInline/readBlock/readMetaValue, which would otherwise be a
// package-level initialization cycle.
func init() {
	inlineReaders = map[Tag]func(json.RawMessage) (Inline, error){
		StrTag:         readStr,
		EmphTag:        readEmph,
		StrongTag:      readStrong,
		StrikeoutTag:   readStrikeout,
		SuperscriptTag: readSuperscript,
		SubscriptTag:   readSubscript,
		SmallCapsTag:   readSmallCaps,
		QuotedTag:      readQuoted,
		CiteTag:        readCite,
		CodeTag:        readCode,
		SpaceTag:       readNullaryInline(SpaceTag, SP),
		SoftBreakTag:   readNullaryInline(SoftBreakTag, SB),
		LineBreakTag:   readNullaryInline(LineBreakTag, LB),
		MathTag:        readMath,
		RawInlineTag:   readRawInline,
		LinkTag:        readLink,
		ImageTag:       readImage,
		NoteTag:        readNote,
		SpanTag:        readSpan,
	}

	blockReaders = map[Tag]func(json.RawMessage) (Block, error){
		PlainTag:          readPlain,
		ParaTag:           readPara,
		LineBlockTag:      readLineBlock,
		CodeBlockTag:      readCodeBlock,
		RawBlockTag:       readRawBlock,
		BlockQuoteTag:     readBlockQuote,
		OrderedListTag:    readOrderedList,
		BulletListTag:     readBulletList,
		DefinitionListTag: readDefinitionList,
		HeaderTag:         readHeader,
		HorizontalRuleTag: readNullaryBlock(HorizontalRuleTag, HR),
		NullTag:           readNullaryBlock(NullTag, NB),
		TableTag:          readTable,
		DivTag:            readDiv,
	}

	metaReaders = map[Tag]func(json.RawMessage) (MetaValue, error){
		MetaMapTag:     readMetaMap,
		MetaListTag:    readMetaList,
		MetaBoolTag:    readMetaBool,
		MetaStringTag:  readMetaString,
		MetaInlinesTag: readMetaInlines,
		MetaBlocksTag:  readMetaBlocks,
	}
}

// ----------- generic plumbing -------------

func readEnvelope(raw json.RawMessage) (envelope, error) {
	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		return e, fmt.Errorf("pandoc: malformed element: %w", err)
	}
	if e.T == "" {
		return e, fmt.Errorf("pandoc: element without tag")
	}
	return e, nil
}

func readString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

func readInt(raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func readFloat(raw json.RawMessage) (float64, error) {
	var f float64
	if raw == nil || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, err
	}
	return f, nil
}

// tupleOf splits a kind's multi-field content into exactly n raw slots.
func tupleOf(tag Tag, raw json.RawMessage, n int) ([]json.RawMessage, error) {
	if raw == nil {
		return nil, contentErr(tag, "missing content")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, contentErr(tag, "expected %d-tuple: %v", n, err)
	}
	if len(items) != n {
		return nil, contentErr(tag, "expected %d-tuple, got %d items", n, len(items))
	}
	return items, nil
}

func listr[T any](fn func(json.RawMessage) (T, error)) func(json.RawMessage) ([]T, error) {
	return func(raw json.RawMessage) ([]T, error) {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		lst := make([]T, len(items))
		for i := range items {
			v, err := fn(items[i])
			if err != nil {
				return nil, err
			}
			lst[i] = v
		}
		return lst, nil
	}
}

// readTags accepts one of the given tag-only values, e.g. a quote type or
// an alignment.
func readTags[T ~string](tags ...T) func(json.RawMessage) (T, error) {
	return func(raw json.RawMessage) (T, error) {
		e, err := readEnvelope(raw)
		if err != nil {
			return "", err
		}
		for _, t := range tags {
			if string(e.T) == string(t) {
				return t, nil
			}
		}
		return "", fmt.Errorf("pandoc: unexpected tag %q, expected one of %v", e.T, tags)
	}
}

var (
	readInlines    = listr(readInline)
	readBlocks     = listr(readBlock)
	readBlocksList = listr(readBlocks)
)

// ----------- categories -------------

func readInline(raw json.RawMessage) (Inline, error) {
	e, err := readEnvelope(raw)
	if err != nil {
		return nil, err
	}
	rd, ok := inlineReaders[e.T]
	if !ok {
		return nil, &UnknownTagError{Tag: e.T, Want: "inline"}
	}
	return rd(e.C)
}

func readBlock(raw json.RawMessage) (Block, error) {
	e, err := readEnvelope(raw)
	if err != nil {
		return nil, err
	}
	rd, ok := blockReaders[e.T]
	if !ok {
		return nil, &UnknownTagError{Tag: e.T, Want: "block"}
	}
	return rd(e.C)
}

func readMetaValue(raw json.RawMessage) (MetaValue, error) {
	e, err := readEnvelope(raw)
	if err != nil {
		return nil, err
	}
	rd, ok := metaReaders[e.T]
	if !ok {
		return nil, &UnknownTagError{Tag: e.T, Want: "meta"}
	}
	return rd(e.C)
}

func readNullaryInline(tag Tag, singleton Inline) func(json.RawMessage) (Inline, error) {
	return func(raw json.RawMessage) (Inline, error) {
		if len(raw) != 0 {
			return nil, contentErr(tag, "nullary kind carries no content")
		}
		return singleton, nil
	}
}

func readNullaryBlock(tag Tag, singleton Block) func(json.RawMessage) (Block, error) {
	return func(raw json.RawMessage) (Block, error) {
		if len(raw) != 0 {
			return nil, contentErr(tag, "nullary kind carries no content")
		}
		return singleton, nil
	}
}

// ----------- shared payload parts -------------

func readAttr(raw json.RawMessage) (Attr, error) {
	tup, err := tupleOf("Attr", raw, 3)
	if err != nil {
		return Attr{}, err
	}
	id, err := readString(tup[0])
	if err != nil {
		return Attr{}, err
	}
	var classes []string
	if err := json.Unmarshal(tup[1], &classes); err != nil {
		return Attr{}, err
	}
	var pairs [][]string
	if err := json.Unmarshal(tup[2], &pairs); err != nil {
		return Attr{}, err
	}
	var kvs []KV
	if len(pairs) > 0 {
		kvs = make([]KV, len(pairs))
		for i, p := range pairs {
			if len(p) != 2 {
				return Attr{}, contentErr("Attr", "key-value pair must have 2 items, got %d", len(p))
			}
			kvs[i] = KV{p[0], p[1]}
		}
	}
	return Attributes(kvs, id, classes...), nil
}

func readTarget(raw json.RawMessage) (Target, error) {
	tup, err := tupleOf("Target", raw, 2)
	if err != nil {
		return Target{}, err
	}
	url, err := readString(tup[0])
	if err != nil {
		return Target{}, err
	}
	title, err := readString(tup[1])
	if err != nil {
		return Target{}, err
	}
	return Target{url, title}, nil
}

// ----------- inlines -------------

func readStr(raw json.RawMessage) (Inline, error) {
	s, err := readString(raw)
	if err != nil {
		return nil, contentErr(StrTag, "%v", err)
	}
	return &Str{s}, nil
}

func readEmph(raw json.RawMessage) (Inline, error) {
	lst, err := readInlines(raw)
	if err != nil {
		return nil, err
	}
	return &Emph{lst}, nil
}

func readStrong(raw json.RawMessage) (Inline, error) {
	lst, err := readInlines(raw)
	if err != nil {
		return nil, err
	}
	return &Strong{lst}, nil
}

func readStrikeout(raw json.RawMessage) (Inline, error) {
	lst, err := readInlines(raw)
	if err != nil {
		return nil, err
	}
	return &Strikeout{lst}, nil
}

func readSuperscript(raw json.RawMessage) (Inline, error) {
	lst, err := readInlines(raw)
	if err != nil {
		return nil, err
	}
	return &Superscript{lst}, nil
}

func readSubscript(raw json.RawMessage) (Inline, error) {
	lst, err := readInlines(raw)
	if err != nil {
		return nil, err
	}
	return &Subscript{lst}, nil
}

func readSmallCaps(raw json.RawMessage) (Inline, error) {
	lst, err := readInlines(raw)
	if err != nil {
		return nil, err
	}
	return &SmallCaps{lst}, nil
}

var readQuoteType = readTags(SingleQuote, DoubleQuote)

func readQuoted(raw json.RawMessage) (Inline, error) {
	tup, err := tupleOf(QuotedTag, raw, 2)
	if err != nil {
		return nil, err
	}
	typ, err := readQuoteType(tup[0])
	if err != nil {
		return nil, err
	}
	inlines, err := readInlines(tup[1])
	if err != nil {
		return nil, err
	}
	return &Quoted{typ, inlines}, nil
}

var readCitationMode = readTags(AuthorInText, SuppressAuthor, NormalCitation)

func readCitation(raw json.RawMessage) (Citation, error) {
	var c struct {
		Id      string          `json:"citationId"`
		Prefix  json.RawMessage `json:"citationPrefix"`
		Suffix  json.RawMessage `json:"citationSuffix"`
		Mode    json.RawMessage `json:"citationMode"`
		NoteNum int             `json:"citationNoteNum"`
		Hash    int             `json:"citationHash"`
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return Citation{}, contentErr(CiteTag, "malformed citation: %v", err)
	}
	mode, err := readCitationMode(c.Mode)
	if err != nil {
		return Citation{}, err
	}
	prefix, err := readInlines(c.Prefix)
	if err != nil {
		return Citation{}, err
	}
	suffix, err := readInlines(c.Suffix)
	if err != nil {
		return Citation{}, err
	}
	return Citation{
		Id:      c.Id,
		Prefix:  prefix,
		Suffix:  suffix,
		Mode:    mode,
		NoteNum: c.NoteNum,
		Hash:    c.Hash,
	}, nil
}

func readCite(raw json.RawMessage) (Inline, error) {
	tup, err := tupleOf(CiteTag, raw, 2)
	if err != nil {
		return nil, err
	}
	citations, err := listr(readCitation)(tup[0])
	if err != nil {
		return nil, err
	}
	inlines, err := readInlines(tup[1])
	if err != nil {
		return nil, err
	}
	return &Cite{citations, inlines}, nil
}

func readCode(raw json.RawMessage) (Inline, error) {
	tup, err := tupleOf(CodeTag, raw, 2)
	if err != nil {
		return nil, err
	}
	attr, err := readAttr(tup[0])
	if err != nil {
		return nil, err
	}
	text, err := readString(tup[1])
	if err != nil {
		return nil, err
	}
	return &Code{attr, text}, nil
}

var readMathType = readTags(DisplayMathType, InlineMathType)

func readMath(raw json.RawMessage) (Inline, error) {
	tup, err := tupleOf(MathTag, raw, 2)
	if err != nil {
		return nil, err
	}
	typ, err := readMathType(tup[0])
	if err != nil {
		return nil, err
	}
	text, err := readString(tup[1])
	if err != nil {
		return nil, err
	}
	return &Math{typ, text}, nil
}

func readRawInline(raw json.RawMessage) (Inline, error) {
	tup, err := tupleOf(RawInlineTag, raw, 2)
	if err != nil {
		return nil, err
	}
	format, err := readString(tup[0])
	if err != nil {
		return nil, err
	}
	text, err := readString(tup[1])
	if err != nil {
		return nil, err
	}
	return &RawInline{format, text}, nil
}

func readLink(raw json.RawMessage) (Inline, error) {
	attr, inlines, target, err := readLinkParts(LinkTag, raw)
	if err != nil {
		return nil, err
	}
	return &Link{attr, inlines, target}, nil
}

func readImage(raw json.RawMessage) (Inline, error) {
	attr, inlines, target, err := readLinkParts(ImageTag, raw)
	if err != nil {
		return nil, err
	}
	return &Image{attr, inlines, target}, nil
}

func readLinkParts(tag Tag, raw json.RawMessage) (Attr, []Inline, Target, error) {
	tup, err := tupleOf(tag, raw, 3)
	if err != nil {
		return Attr{}, nil, Target{}, err
	}
	attr, err := readAttr(tup[0])
	if err != nil {
		return Attr{}, nil, Target{}, err
	}
	inlines, err := readInlines(tup[1])
	if err != nil {
		return Attr{}, nil, Target{}, err
	}
	target, err := readTarget(tup[2])
	if err != nil {
		return Attr{}, nil, Target{}, err
	}
	return attr, inlines, target, nil
}

func readNote(raw json.RawMessage) (Inline, error) {
	blocks, err := readBlocks(raw)
	if err != nil {
		return nil, err
	}
	return &Note{blocks}, nil
}

func readSpan(raw json.RawMessage) (Inline, error) {
	tup, err := tupleOf(SpanTag, raw, 2)
	if err != nil {
		return nil, err
	}
	attr, err := readAttr(tup[0])
	if err != nil {
		return nil, err
	}
	inlines, err := readInlines(tup[1])
	if err != nil {
		return nil, err
	}
	return &Span{attr, inlines}, nil
}

// ----------- blocks -------------

func readPlain(raw json.RawMessage) (Block, error) {
	lst, err := readInlines(raw)
	if err != nil {
		return nil, err
	}
	return &Plain{lst}, nil
}

func readPara(raw json.RawMessage) (Block, error) {
	lst, err := readInlines(raw)
	if err != nil {
		return nil, err
	}
	return &Para{lst}, nil
}

func readLineBlock(raw json.RawMessage) (Block, error) {
	lines, err := listr(readInlines)(raw)
	if err != nil {
		return nil, err
	}
	return &LineBlock{lines}, nil
}

func readCodeBlock(raw json.RawMessage) (Block, error) {
	tup, err := tupleOf(CodeBlockTag, raw, 2)
	if err != nil {
		return nil, err
	}
	attr, err := readAttr(tup[0])
	if err != nil {
		return nil, err
	}
	text, err := readString(tup[1])
	if err != nil {
		return nil, err
	}
	return &CodeBlock{attr, text}, nil
}

func readRawBlock(raw json.RawMessage) (Block, error) {
	tup, err := tupleOf(RawBlockTag, raw, 2)
	if err != nil {
		return nil, err
	}
	format, err := readString(tup[0])
	if err != nil {
		return nil, err
	}
	text, err := readString(tup[1])
	if err != nil {
		return nil, err
	}
	return &RawBlock{format, text}, nil
}

func readBlockQuote(raw json.RawMessage) (Block, error) {
	blocks, err := readBlocks(raw)
	if err != nil {
		return nil, err
	}
	return &BlockQuote{blocks}, nil
}

var (
	readListStyle = readTags(DefaultStyle, Example, Decimal, LowerRoman, UpperRoman, LowerAlpha, UpperAlpha)
	readListDelim = readTags(DefaultDelim, Period, OneParen, TwoParens)
)

func readListAttrs(raw json.RawMessage) (ListAttrs, error) {
	tup, err := tupleOf(OrderedListTag, raw, 3)
	if err != nil {
		return ListAttrs{}, err
	}
	start, err := readInt(tup[0])
	if err != nil {
		return ListAttrs{}, err
	}
	style, err := readListStyle(tup[1])
	if err != nil {
		return ListAttrs{}, err
	}
	delim, err := readListDelim(tup[2])
	if err != nil {
		return ListAttrs{}, err
	}
	return ListAttrs{start, style, delim}, nil
}

func readOrderedList(raw json.RawMessage) (Block, error) {
	tup, err := tupleOf(OrderedListTag, raw, 2)
	if err != nil {
		return nil, err
	}
	attrs, err := readListAttrs(tup[0])
	if err != nil {
		return nil, err
	}
	items, err := readBlocksList(tup[1])
	if err != nil {
		return nil, err
	}
	return &OrderedList{attrs, items}, nil
}

func readBulletList(raw json.RawMessage) (Block, error) {
	items, err := readBlocksList(raw)
	if err != nil {
		return nil, err
	}
	return &BulletList{items}, nil
}

func readDefinition(raw json.RawMessage) (Definition, error) {
	tup, err := tupleOf(DefinitionListTag, raw, 2)
	if err != nil {
		return Definition{}, err
	}
	term, err := readInlines(tup[0])
	if err != nil {
		return Definition{}, err
	}
	defs, err := readBlocksList(tup[1])
	if err != nil {
		return Definition{}, err
	}
	return Definition{term, defs}, nil
}

func readDefinitionList(raw json.RawMessage) (Block, error) {
	items, err := listr(readDefinition)(raw)
	if err != nil {
		return nil, err
	}
	return &DefinitionList{items}, nil
}

func readHeader(raw json.RawMessage) (Block, error) {
	tup, err := tupleOf(HeaderTag, raw, 3)
	if err != nil {
		return nil, err
	}
	level, err := readInt(tup[0])
	if err != nil {
		return nil, err
	}
	attr, err := readAttr(tup[1])
	if err != nil {
		return nil, err
	}
	inlines, err := readInlines(tup[2])
	if err != nil {
		return nil, err
	}
	return &Header{attr, level, inlines}, nil
}

var readAlignment = readTags(AlignLeft, AlignRight, AlignCenter, AlignDefault)

func readTable(raw json.RawMessage) (Block, error) {
	tup, err := tupleOf(TableTag, raw, 5)
	if err != nil {
		return nil, err
	}
	caption, err := readInlines(tup[0])
	if err != nil {
		return nil, err
	}
	aligns, err := listr(readAlignment)(tup[1])
	if err != nil {
		return nil, err
	}
	widths, err := listr(readFloat)(tup[2])
	if err != nil {
		return nil, err
	}
	headers, err := readBlocksList(tup[3])
	if err != nil {
		return nil, err
	}
	rows, err := listr(readBlocksList)(tup[4])
	if err != nil {
		return nil, err
	}
	return &Table{caption, aligns, widths, headers, rows}, nil
}

func readDiv(raw json.RawMessage) (Block, error) {
	tup, err := tupleOf(DivTag, raw, 2)
	if err != nil {
		return nil, err
	}
	attr, err := readAttr(tup[0])
	if err != nil {
		return nil, err
	}
	blocks, err := readBlocks(tup[1])
	if err != nil {
		return nil, err
	}
	return &Div{attr, blocks}, nil
}

// ----------- meta -------------

func readMetaEntries(raw json.RawMessage) (Meta, error) {
	d := json.NewDecoder(bytes.NewReader(raw))
	tok, err := d.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("pandoc: expected metadata object, got %v", tok)
	}
	var m Meta
	for d.More() {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("pandoc: expected metadata key, got %v", tok)
		}
		var v json.RawMessage
		if err := d.Decode(&v); err != nil {
			return nil, err
		}
		value, err := readMetaValue(v)
		if err != nil {
			return nil, err
		}
		m = append(m, MetaMapEntry{key, value})
	}
	if _, err := d.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func readMetaMap(raw json.RawMessage) (MetaValue, error) {
	entries, err := readMetaEntries(raw)
	if err != nil {
		return nil, err
	}
	return &MetaMap{entries}, nil
}

func readMetaList(raw json.RawMessage) (MetaValue, error) {
	entries, err := listr(readMetaValue)(raw)
	if err != nil {
		return nil, err
	}
	return &MetaList{entries}, nil
}

func readMetaBool(raw json.RawMessage) (MetaValue, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, contentErr(MetaBoolTag, "%v", err)
	}
	return MetaBool(b), nil
}

func readMetaString(raw json.RawMessage) (MetaValue, error) {
	s, err := readString(raw)
	if err != nil {
		return nil, contentErr(MetaStringTag, "%v", err)
	}
	return MetaString(s), nil
}

func readMetaInlines(raw json.RawMessage) (MetaValue, error) {
	lst, err := readInlines(raw)
	if err != nil {
		return nil, err
	}
	return &MetaInlines{lst}, nil
}

func readMetaBlocks(raw json.RawMessage) (MetaValue, error) {
	lst, err := readBlocks(raw)
	if err != nil {
		return nil, err
	}
	return &MetaBlocks{lst}, nil
}

// ----------- document -------------

func cmpSemver(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}
	return 0
}

// ReadFrom reads the JSON encoding of a pandoc document from r. The
// document's pandoc-api-version must match APIVersion in its major and
// minor components.
func ReadFrom(r io.Reader) (*Doc, error) {
	var doc struct {
		Version []int           `json:"pandoc-api-version"`
		Meta    json.RawMessage `json:"meta"`
		Blocks  json.RawMessage `json:"blocks"`
	}
	d := json.NewDecoder(r)
	if err := d.Decode(&doc); err != nil {
		return nil, fmt.Errorf("pandoc: malformed document: %w", err)
	}
	if len(doc.Version) < 2 || cmpSemver(doc.Version[:2], APIVersion[:2]) != 0 {
		return nil, &VersionError{Got: doc.Version}
	}
	var (
		meta Meta
		err  error
	)
	if doc.Meta != nil {
		if meta, err = readMetaEntries(doc.Meta); err != nil {
			return nil, err
		}
	}
	var blocks []Block
	if doc.Blocks != nil {
		if blocks, err = readBlocks(doc.Blocks); err != nil {
			return nil, err
		}
	}
	return &Doc{Version: doc.Version, Meta: meta, Blocks: blocks}, nil
}
