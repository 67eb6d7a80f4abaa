package dot

import (
	"reflect"
	"testing"

	pandoc "github.com/inkpress/go-pandoc"
)

func TestMathSpecializations(t *testing.T) {
	if !reflect.DeepEqual(DisplayMath("x^2"), Math(DisplayMathType, "x^2")) {
		t.Errorf("DisplayMath is not equivalent to Math(DisplayMathType, ...)")
	}
	if !reflect.DeepEqual(InlineMath("x"), Math(InlineMathType, "x")) {
		t.Errorf("InlineMath is not equivalent to Math(InlineMathType, ...)")
	}
}

func TestQuotedSpecializations(t *testing.T) {
	q := SingleQuoted(Str("q"))
	if !reflect.DeepEqual(q, Quoted(SingleQuote, Str("q"))) {
		t.Errorf("SingleQuoted is not equivalent to Quoted(SingleQuote, ...)")
	}
	if DoubleQuoted().QuoteType != DoubleQuote {
		t.Errorf("DoubleQuoted got quote type %v", DoubleQuoted().QuoteType)
	}
}

func TestDocDefaults(t *testing.T) {
	d := Doc(Para(Str("x")))
	if !reflect.DeepEqual(d.Version, []int{1, 17, 0, 5}) {
		t.Errorf("default version = %v", d.Version)
	}
	if len(d.Meta) != 0 {
		t.Errorf("default meta not empty: %v", d.Meta)
	}
	if len(d.Blocks) != 1 {
		t.Errorf("blocks = %v", d.Blocks)
	}
}

func TestNullarySingletons(t *testing.T) {
	if Space() != pandoc.SP || SoftBreak() != pandoc.SB || LineBreak() != pandoc.LB {
		t.Errorf("nullary inline constructors do not return the shared values")
	}
	if HorizontalRule() != pandoc.HR || Null() != pandoc.NB {
		t.Errorf("nullary block constructors do not return the shared values")
	}
}

func TestCitationDefaults(t *testing.T) {
	c := Citation("key", NormalCitation)
	if c.Id != "key" || c.Mode != NormalCitation {
		t.Errorf("unexpected citation: %+v", c)
	}
	if len(c.Prefix) != 0 || len(c.Suffix) != 0 || c.NoteNum != 0 || c.Hash != 0 {
		t.Errorf("citation defaults not empty: %+v", c)
	}
}

func TestAttrHelpers(t *testing.T) {
	a := AttrKVs("id", KVs("k", "1", "k", "2"), "c1", "c2")
	if a.Id != "id" || a.Class() != "c1 c2" {
		t.Errorf("unexpected attr: %+v", a)
	}
	if len(a.KVs) != 2 {
		t.Errorf("expected both pairs kept, got %v", a.KVs)
	}
	if v, _ := a.Get("k"); v != "2" {
		t.Errorf("Get(k) = %q, want \"2\"", v)
	}
	if !NoAttr.IsEmpty() {
		t.Errorf("NoAttr is not empty")
	}
}

func TestListConstructors(t *testing.T) {
	ol := OrderedList(ListAttrs(1, Decimal, Period),
		Blocks(Plain(Str("a"))),
		Blocks(Plain(Str("b"))),
	)
	if len(ol.Items) != 2 || ol.Attr.Start != 1 {
		t.Errorf("unexpected ordered list: %+v", ol)
	}
	dl := DefinitionList(Definition(Inlines(Str("t")), Blocks(Plain(Str("d")))))
	if len(dl.Items) != 1 || len(dl.Items[0].Definition) != 1 {
		t.Errorf("unexpected definition list: %+v", dl)
	}
}
