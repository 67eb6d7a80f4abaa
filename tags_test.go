package pandoc

import (
	"sort"
	"testing"
)

func TestTagEnumeration(t *testing.T) {
	if got := len(BlockTags()); got != 14 {
		t.Errorf("expected 14 block kinds, got %d: %v", got, BlockTags())
	}
	if got := len(InlineTags()); got != 19 {
		t.Errorf("expected 19 inline kinds, got %d: %v", got, InlineTags())
	}
	if got := len(MetaTags()); got != 6 {
		t.Errorf("expected 6 meta kinds, got %d: %v", got, MetaTags())
	}
	for _, l := range [][]Tag{BlockTags(), InlineTags(), MetaTags()} {
		if !sort.SliceIsSorted(l, func(i, j int) bool { return l[i] < l[j] }) {
			t.Errorf("tag list not sorted: %v", l)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	var tests = []struct {
		tag  Tag
		want Category
	}{
		{StrTag, CategoryInline},
		{SpaceTag, CategoryInline},
		{ParaTag, CategoryBlock},
		{NullTag, CategoryBlock},
		{TableTag, CategoryBlock},
		{MetaBoolTag, CategoryMeta},
		{"Foo", CategoryUnknown},
		{"Underline", CategoryUnknown}, // introduced after 1.17
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.tag); got != tt.want {
			t.Errorf("CategoryOf(%s) = %v, want %v", tt.tag, got, tt.want)
		}
	}
	if KnownTag("Foo") || !KnownTag(HeaderTag) {
		t.Errorf("KnownTag misreported")
	}
}
