package pandoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFilterSetRegistration(t *testing.T) {
	fs := NewFilterSet()
	if err := fs.OnInline(StrTag, func(i Inline) ([]Inline, error) { return nil, nil }); err != nil {
		t.Fatal(err)
	}
	if err := fs.OnBlock(ParaTag, func(b Block) ([]Block, error) { return nil, nil }); err != nil {
		t.Fatal(err)
	}

	tags := fs.Tags()
	if len(tags) != 2 || tags[0] != ParaTag || tags[1] != StrTag {
		t.Errorf("Tags() = %v, want [Para Str]", tags)
	}

	var unknown *UnknownTagError
	err := fs.OnInline("Foo", func(i Inline) ([]Inline, error) { return nil, nil })
	if !errors.As(err, &unknown) || unknown.Tag != "Foo" {
		t.Errorf("expected UnknownTagError for Foo, got %v", err)
	}
	// A block tag is not a valid inline registration.
	err = fs.OnInline(ParaTag, func(i Inline) ([]Inline, error) { return nil, nil })
	if !errors.As(err, &unknown) {
		t.Errorf("expected UnknownTagError for Para as inline, got %v", err)
	}
	if got := len(fs.Tags()); got != 2 {
		t.Errorf("rejected registrations changed the set: %d tags", got)
	}
}

func TestFilterSetApply(t *testing.T) {
	fs := NewFilterSet()
	_ = fs.OnInline(StrTag, func(i Inline) ([]Inline, error) {
		s := i.(*Str)
		return []Inline{&Str{strings.ToUpper(s.Text)}}, nil
	})
	_ = fs.OnBlock(NullTag, func(b Block) ([]Block, error) {
		return []Block{}, nil
	})
	fs.OnDoc(func(d *Doc) (*Doc, error) {
		d.Meta.SetBool("filtered", true)
		return d, nil
	})

	doc := &Doc{Blocks: []Block{
		&Para{[]Inline{&Str{"hi"}}},
		NB,
	}}
	got, err := fs.Apply(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Blocks) != 1 {
		t.Fatalf("Null block not removed: %d blocks", len(got.Blocks))
	}
	if s := got.Blocks[0].(*Para).Inlines[0].(*Str).Text; s != "HI" {
		t.Errorf("inline handler not applied: %q", s)
	}
	if v := got.Meta.Get("filtered"); v != MetaBool(true) {
		t.Errorf("document handler not applied: %v", v)
	}
	// The input document is left alone by the element handlers.
	if s := doc.Blocks[0].(*Para).Inlines[0].(*Str).Text; s != "hi" {
		t.Errorf("Apply mutated the input document: %q", s)
	}
}

func TestFilterSetError(t *testing.T) {
	errBoom := errors.New("boom")
	fs := NewFilterSet()
	_ = fs.OnInline(StrTag, func(i Inline) ([]Inline, error) {
		return nil, errBoom
	})
	_, err := fs.Apply(&Doc{Blocks: []Block{&Para{[]Inline{&Str{"x"}}}}})
	if !errors.Is(err, errBoom) {
		t.Errorf("expected handler error, got %v", err)
	}
}

func TestFilterSetRun(t *testing.T) {
	const in = `{"pandoc-api-version":[1,17,0,5],"meta":{},` +
		`"blocks":[{"t":"Para","c":[{"t":"Emph","c":[{"t":"Str","c":"x"}]}]}]}`
	const want = `{"pandoc-api-version":[1,17,0,5],"meta":{},` +
		`"blocks":[{"t":"Para","c":[{"t":"Strong","c":[{"t":"Str","c":"x"}]}]}]}`

	fs := NewFilterSet()
	_ = fs.OnInline(EmphTag, func(i Inline) ([]Inline, error) {
		return []Inline{&Strong{Inlines: i.(*Emph).Inlines}}, nil
	})

	var out bytes.Buffer
	if err := fs.Run(strings.NewReader(in), &out); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}
