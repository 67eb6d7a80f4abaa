package pandoc

import (
	"bytes"
	"testing"
)

func render(t *testing.T, e Element) string {
	t.Helper()
	var b bytes.Buffer
	if err := Write(&b, e); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestWriteInlines(t *testing.T) {
	var tests = []struct {
		name string
		elt  Inline
		want string
	}{
		{"Str", &Str{"hello"}, `{"t":"Str","c":"hello"}`},
		{"Space", SP, `{"t":"Space"}`},
		{"SoftBreak", SB, `{"t":"SoftBreak"}`},
		{"LineBreak", LB, `{"t":"LineBreak"}`},
		{"Emph", &Emph{[]Inline{&Str{"a"}}}, `{"t":"Emph","c":[{"t":"Str","c":"a"}]}`},
		{"Strong", &Strong{[]Inline{&Str{"a"}}}, `{"t":"Strong","c":[{"t":"Str","c":"a"}]}`},
		{"Quoted", &Quoted{SingleQuote, []Inline{&Str{"q"}}},
			`{"t":"Quoted","c":[{"t":"SingleQuote"},[{"t":"Str","c":"q"}]]}`},
		{"Math", &Math{DisplayMathType, "x^2"}, `{"t":"Math","c":[{"t":"DisplayMath"},"x^2"]}`},
		{"Code", &Code{Attributes(nil, "id", "go"), "x"},
			`{"t":"Code","c":[["id",["go"],[]],"x"]}`},
		{"RawInline", &RawInline{"html", "<br>"}, `{"t":"RawInline","c":["html","<br>"]}`},
		{"Link", &Link{Attr{}, []Inline{&Str{"t"}}, Target{"https://x", "ti"}},
			`{"t":"Link","c":[["",[],[]],[{"t":"Str","c":"t"}],["https://x","ti"]]}`},
		{"Image", &Image{Attr{}, []Inline{&Str{"alt"}}, Target{"i.png", ""}},
			`{"t":"Image","c":[["",[],[]],[{"t":"Str","c":"alt"}],["i.png",""]]}`},
		{"Note", &Note{[]Block{&Para{[]Inline{&Str{"n"}}}}},
			`{"t":"Note","c":[{"t":"Para","c":[{"t":"Str","c":"n"}]}]}`},
		{"Span", &Span{Attributes(nil, "", "mark"), []Inline{&Str{"s"}}},
			`{"t":"Span","c":[["",["mark"],[]],[{"t":"Str","c":"s"}]]}`},
		{"Cite", &Cite{
			[]Citation{{Id: "k", Mode: NormalCitation}},
			[]Inline{&Str{"[@k]"}},
		}, `{"t":"Cite","c":[[{"citationId":"k","citationPrefix":[],"citationSuffix":[],` +
			`"citationMode":{"t":"NormalCitation"},"citationNoteNum":0,"citationHash":0}],` +
			`[{"t":"Str","c":"[@k]"}]]}`},
	}
	for _, tt := range tests {
		if got := render(t, tt.elt); got != tt.want {
			t.Errorf("%s:\n got %s\nwant %s", tt.name, got, tt.want)
		}
	}
}

func TestWriteBlocks(t *testing.T) {
	var tests = []struct {
		name string
		elt  Block
		want string
	}{
		{"Null", NB, `{"t":"Null"}`},
		{"HorizontalRule", HR, `{"t":"HorizontalRule"}`},
		{"Plain", &Plain{[]Inline{&Str{"p"}}}, `{"t":"Plain","c":[{"t":"Str","c":"p"}]}`},
		{"Para", &Para{[]Inline{&Str{"p"}}}, `{"t":"Para","c":[{"t":"Str","c":"p"}]}`},
		{"LineBlock", &LineBlock{[][]Inline{{&Str{"l1"}}, {&Str{"l2"}}}},
			`{"t":"LineBlock","c":[[{"t":"Str","c":"l1"}],[{"t":"Str","c":"l2"}]]}`},
		{"CodeBlock", &CodeBlock{Attributes(nil, "", "go"), "x := 1"},
			`{"t":"CodeBlock","c":[["",["go"],[]],"x := 1"]}`},
		{"RawBlock", &RawBlock{"latex", `\par`}, `{"t":"RawBlock","c":["latex","\\par"]}`},
		{"BlockQuote", &BlockQuote{[]Block{&Plain{[]Inline{&Str{"q"}}}}},
			`{"t":"BlockQuote","c":[{"t":"Plain","c":[{"t":"Str","c":"q"}]}]}`},
		{"Header", &Header{Attributes(nil, "intro"), 1, []Inline{&Str{"Intro"}}},
			`{"t":"Header","c":[1,["intro",[],[]],[{"t":"Str","c":"Intro"}]]}`},
		{"OrderedList", &OrderedList{
			ListAttrs{1, Decimal, Period},
			[][]Block{{&Plain{[]Inline{&Str{"a"}}}}},
		}, `{"t":"OrderedList","c":[[1,{"t":"Decimal"},{"t":"Period"}],` +
			`[[{"t":"Plain","c":[{"t":"Str","c":"a"}]}]]]}`},
		{"BulletList", &BulletList{[][]Block{{&Plain{[]Inline{&Str{"a"}}}}}},
			`{"t":"BulletList","c":[[{"t":"Plain","c":[{"t":"Str","c":"a"}]}]]}`},
		{"DefinitionList", &DefinitionList{[]Definition{{
			Term:       []Inline{&Str{"t"}},
			Definition: [][]Block{{&Plain{[]Inline{&Str{"d"}}}}},
		}}}, `{"t":"DefinitionList","c":[[[{"t":"Str","c":"t"}],` +
			`[[{"t":"Plain","c":[{"t":"Str","c":"d"}]}]]]]}`},
		{"Div", &Div{Attributes(nil, "box"), []Block{NB}},
			`{"t":"Div","c":[["box",[],[]],[{"t":"Null"}]]}`},
		{"Table", &Table{
			Caption: []Inline{&Str{"Cap"}},
			Aligns:  []Alignment{AlignDefault, AlignLeft},
			Widths:  []float64{0, 0.25},
			Headers: [][]Block{{&Plain{[]Inline{&Str{"h"}}}}, {}},
			Rows:    [][][]Block{{{&Plain{[]Inline{&Str{"c"}}}}, {}}},
		}, `{"t":"Table","c":[[{"t":"Str","c":"Cap"}],` +
			`[{"t":"AlignDefault"},{"t":"AlignLeft"}],[0,0.25],` +
			`[[{"t":"Plain","c":[{"t":"Str","c":"h"}]}],[]],` +
			`[[[{"t":"Plain","c":[{"t":"Str","c":"c"}]}],[]]]]}`},
	}
	for _, tt := range tests {
		if got := render(t, tt.elt); got != tt.want {
			t.Errorf("%s:\n got %s\nwant %s", tt.name, got, tt.want)
		}
	}
}

func TestWriteMeta(t *testing.T) {
	var tests = []struct {
		name string
		elt  MetaValue
		want string
	}{
		{"MetaBool", MetaBool(true), `{"t":"MetaBool","c":true}`},
		{"MetaString", MetaString("s"), `{"t":"MetaString","c":"s"}`},
		{"MetaInlines", &MetaInlines{[]Inline{&Str{"T"}}},
			`{"t":"MetaInlines","c":[{"t":"Str","c":"T"}]}`},
		{"MetaBlocks", &MetaBlocks{[]Block{&Plain{[]Inline{&Str{"b"}}}}},
			`{"t":"MetaBlocks","c":[{"t":"Plain","c":[{"t":"Str","c":"b"}]}]}`},
		{"MetaList", &MetaList{[]MetaValue{MetaString("a"), MetaBool(false)}},
			`{"t":"MetaList","c":[{"t":"MetaString","c":"a"},{"t":"MetaBool","c":false}]}`},
		{"MetaMap", &MetaMap{Meta{{"k", MetaString("v")}}},
			`{"t":"MetaMap","c":{"k":{"t":"MetaString","c":"v"}}}`},
	}
	for _, tt := range tests {
		if got := render(t, tt.elt); got != tt.want {
			t.Errorf("%s:\n got %s\nwant %s", tt.name, got, tt.want)
		}
	}
}

func TestWriteDocDefaults(t *testing.T) {
	var b bytes.Buffer
	if err := (&Doc{}).WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	const want = `{"pandoc-api-version":[1,17,0,5],"meta":{},"blocks":[]}`
	if got := b.String(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestAppendQuote(t *testing.T) {
	var tests = []struct {
		str, want string
	}{
		{"", `""`},
		{"a", `"a"`},
		{"\"", `"\""`},
		{`a\b`, `"a\\b"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\tend", `"tab\tend"`},
	}
	for i := range tests {
		r := appendQuote(nil, tests[i].str)
		v := []byte(tests[i].want)
		if !bytes.Equal(r, v) {
			t.Errorf("expected [%s], got [%s]", v, r)
		}
	}
}

func TestAppendFloat(t *testing.T) {
	var tests = []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{0.25, "0.25"},
		{0.5, "0.5"},
		{0.005, "5e-3"},
	}
	for _, tt := range tests {
		if got := string(appendFloat(nil, tt.f)); got != tt.want {
			t.Errorf("appendFloat(%v) = %s, want %s", tt.f, got, tt.want)
		}
	}
}
