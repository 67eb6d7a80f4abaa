package pandoc

import "sort"

// Category is one of the three disjoint node families.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryBlock
	CategoryInline
	CategoryMeta
)

func (c Category) String() string {
	switch c {
	case CategoryBlock:
		return "block"
	case CategoryInline:
		return "inline"
	case CategoryMeta:
		return "meta"
	default:
		return "unknown"
	}
}

// The kind enumeration is closed: the decoder dispatch tables in read.go
// are the single registry, and the public tag lists are derived from them
// once at initialization.
var (
	blockTagList  []Tag
	inlineTagList []Tag
	metaTagList   []Tag
)

func init() {
	for t := range blockReaders {
		blockTagList = append(blockTagList, t)
	}
	for t := range inlineReaders {
		inlineTagList = append(inlineTagList, t)
	}
	for t := range metaReaders {
		metaTagList = append(metaTagList, t)
	}
	for _, l := range [][]Tag{blockTagList, inlineTagList, metaTagList} {
		sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	}
}

// BlockTags returns the closed set of Block kinds in lexical order.
func BlockTags() []Tag { return blockTagList }

// InlineTags returns the closed set of Inline kinds in lexical order.
func InlineTags() []Tag { return inlineTagList }

// MetaTags returns the closed set of MetaValue kinds in lexical order.
func MetaTags() []Tag { return metaTagList }

// CategoryOf reports which node family a tag belongs to, or
// CategoryUnknown for a tag outside the closed enumeration.
func CategoryOf(t Tag) Category {
	if _, ok := blockReaders[t]; ok {
		return CategoryBlock
	}
	if _, ok := inlineReaders[t]; ok {
		return CategoryInline
	}
	if _, ok := metaReaders[t]; ok {
		return CategoryMeta
	}
	return CategoryUnknown
}

// KnownTag reports whether t names a registered kind.
func KnownTag(t Tag) bool {
	return CategoryOf(t) != CategoryUnknown
}
