package pandoc

import (
	"strings"
	"testing"
)

func testDoc() *Doc {
	return &Doc{
		Meta: Meta{{"title", &MetaInlines{[]Inline{&Str{"Meta"}}}}},
		Blocks: []Block{
			&Header{Attr{}, 1, []Inline{&Str{"Head"}}},
			&Para{[]Inline{&Str{"Hello,"}, SP, &Emph{[]Inline{&Str{"world"}}}}},
			&BulletList{[][]Block{{&Plain{[]Inline{&Str{"item"}}}}}},
		},
	}
}

func TestQueryOrder(t *testing.T) {
	var items []string
	Query(testDoc(), func(s *Str) WalkResult {
		items = append(items, s.Text)
		return WalkContinue
	})
	const expected = "Meta,Head,Hello,,world,item"
	if result := strings.Join(items, ","); result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestQueryStop(t *testing.T) {
	var count int
	Query(testDoc(), func(s *Str) WalkResult {
		count++
		return WalkStop
	})
	if count != 1 {
		t.Errorf("expected the walk to stop after 1 element, got %d", count)
	}
}

func TestFilterReplace(t *testing.T) {
	doc := testDoc()
	got := Filter(doc, func(s *Str) ([]Inline, WalkResult) {
		if s.Text == "world" {
			return []Inline{&Str{"there"}}, WalkReplace
		}
		return nil, WalkContinue
	})
	emph := got.Blocks[1].(*Para).Inlines[2].(*Emph)
	if emph.Inlines[0].(*Str).Text != "there" {
		t.Errorf("replacement not applied: %v", Stringify(got))
	}
	// The input document shares untouched parts and keeps the old value.
	orig := doc.Blocks[1].(*Para).Inlines[2].(*Emph)
	if orig.Inlines[0].(*Str).Text != "world" {
		t.Errorf("filter mutated the input document")
	}
	if got.Blocks[0] != doc.Blocks[0] {
		t.Errorf("untouched blocks not shared")
	}
}

func TestFilterNoChangeSharesInput(t *testing.T) {
	doc := testDoc()
	got := Filter(doc, func(s *Str) ([]Inline, WalkResult) {
		return nil, WalkContinue
	})
	if got != doc {
		t.Errorf("filter with no replacements returned a new document")
	}
}

func TestFilterRemove(t *testing.T) {
	doc := testDoc()
	got := Filter(doc, func(s *Space) ([]Inline, WalkResult) {
		return []Inline{}, WalkReplace
	})
	para := got.Blocks[1].(*Para)
	if len(para.Inlines) != 2 {
		t.Errorf("expected 2 inlines after removal, got %d", len(para.Inlines))
	}
}

func TestFilterExpand(t *testing.T) {
	doc := testDoc()
	got := Filter(doc, func(e *Emph) ([]Inline, WalkResult) {
		return append([]Inline{&Str{"very"}, SP}, e.Inlines...), WalkReplace
	})
	para := got.Blocks[1].(*Para)
	if len(para.Inlines) != 5 {
		t.Errorf("expected 5 inlines after expansion, got %d", len(para.Inlines))
	}
	if para.Inlines[2].(*Str).Text != "very" {
		t.Errorf("expansion out of order: %q", Stringify(para))
	}
}

func testLegacyTable() *Table {
	return &Table{
		Caption: []Inline{&Str{"Caption"}},
		Aligns:  []Alignment{AlignDefault},
		Widths:  []float64{0},
		Headers: [][]Block{{&Plain{[]Inline{&Str{"Header"}}}}},
		Rows: [][][]Block{
			{{&Plain{[]Inline{&Str{"R1C1"}}}}},
			{{&Plain{[]Inline{&Str{"R2C1"}}}}},
		},
	}
}

func TestWalkTable(t *testing.T) {
	var items []string
	Query(testLegacyTable(), func(s *Str) WalkResult {
		items = append(items, s.Text)
		return WalkContinue
	})
	const expected = "Caption,Header,R1C1,R2C1"
	if result := strings.Join(items, ","); result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestFilterTableCopyOnWrite(t *testing.T) {
	tbl := testLegacyTable()
	got := Filter(tbl, func(s *Str) ([]Inline, WalkResult) {
		if s.Text == "R2C1" {
			return []Inline{&Str{"X"}}, WalkReplace
		}
		return nil, WalkContinue
	})
	if got == tbl {
		t.Fatalf("expected a copied table")
	}
	if tbl.Rows[1][0][0].(*Plain).Inlines[0].(*Str).Text != "R2C1" {
		t.Errorf("filter mutated the input table")
	}
	if got.Rows[1][0][0].(*Plain).Inlines[0].(*Str).Text != "X" {
		t.Errorf("replacement not applied")
	}
	if &got.Rows[0][0] == &tbl.Rows[0][0] {
		// Untouched rows stay shared at the cell-list level.
		t.Logf("row 0 shared")
	}
}

func TestWalkDefinitionList(t *testing.T) {
	dl := &DefinitionList{[]Definition{{
		Term:       []Inline{&Str{"Term"}},
		Definition: [][]Block{{&Plain{[]Inline{&Str{"Def"}}}}},
	}}}
	var items []string
	Query(dl, func(s *Str) WalkResult {
		items = append(items, s.Text)
		return WalkContinue
	})
	const expected = "Term,Def"
	if result := strings.Join(items, ","); result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestStringify(t *testing.T) {
	para := &Para{[]Inline{
		&Str{"Hello,"}, SP, &Emph{[]Inline{&Str{"world"}}}, SB,
		&Note{[]Block{&Para{[]Inline{&Str{"hidden"}}}}},
		&Str{"!"},
	}}
	const expected = "Hello, world\n!"
	if got := Stringify(para); got != expected {
		t.Errorf("Stringify = %q, want %q", got, expected)
	}
}

func TestIs(t *testing.T) {
	var e Inline = &Str{"x"}
	if !Is[*Str](e) || Is[*Emph](e) {
		t.Errorf("Is misreported the dynamic type")
	}
}

func TestClone(t *testing.T) {
	s := &Str{"x"}
	c := Clone(s)
	if c == s || c.Text != "x" {
		t.Errorf("Clone did not produce an equal copy")
	}
}
