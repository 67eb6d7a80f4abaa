package pandoc

import "testing"

func TestAttributesLookup(t *testing.T) {
	a := Attributes([]KV{{"width", "10"}, {"style", "x"}, {"width", "20"}}, "fig", "wide")
	if got := len(a.KVs); got != 3 {
		t.Fatalf("expected all pairs kept, got %d", got)
	}
	v, ok := a.Get("width")
	if !ok || v != "20" {
		t.Errorf("Get(width) = %q, %v, want \"20\", true", v, ok)
	}
	if _, ok := a.Get("height"); ok {
		t.Errorf("Get(height) reported a missing key as present")
	}
}

func TestAttrGetWithoutIndex(t *testing.T) {
	// Literal construction leaves the index unbuilt; lookup must still
	// resolve repeated keys to the last pair.
	a := Attr{KVs: []KV{{"k", "1"}, {"k", "2"}}}
	v, ok := a.Get("k")
	if !ok || v != "2" {
		t.Errorf("Get(k) = %q, %v, want \"2\", true", v, ok)
	}
}

func TestAttrClass(t *testing.T) {
	a := Attributes(nil, "", "a", "b")
	if got := a.Class(); got != "a b" {
		t.Errorf("Class() = %q, want %q", got, "a b")
	}
	if !a.HasClass("b") || a.HasClass("c") {
		t.Errorf("HasClass misreported")
	}
	if !a.HasOneOfClasses("c", "a") {
		t.Errorf("HasOneOfClasses missed a present class")
	}
}

func TestAttrCopyOnWrite(t *testing.T) {
	orig := Attributes([]KV{{"k", "1"}}, "id", "c1")

	with := orig.WithKV("k", "2").WithClass("c2").WithIdent("other")
	if v, _ := orig.Get("k"); v != "1" {
		t.Errorf("WithKV mutated the original: k = %q", v)
	}
	if len(orig.Classes) != 1 || orig.Id != "id" {
		t.Errorf("mutators changed the original: %+v", orig)
	}
	if v, _ := with.Get("k"); v != "2" {
		t.Errorf("WithKV result k = %q, want \"2\"", v)
	}
	if !with.HasClass("c2") || with.Id != "other" {
		t.Errorf("derived copy incomplete: %+v", with)
	}
}

func TestEmptyAttrStaysEmpty(t *testing.T) {
	_ = EmptyAttr.WithClass("x").WithKV("k", "v").WithIdent("id")
	if !EmptyAttr.IsEmpty() {
		t.Fatalf("EmptyAttr was mutated: %+v", EmptyAttr)
	}
}

func TestAttrWithKVs(t *testing.T) {
	a := Attributes([]KV{{"a", "1"}}, "").WithKVs("a", "2", "b", "3")
	if v, _ := a.Get("a"); v != "2" {
		t.Errorf("a = %q, want \"2\"", v)
	}
	if v, _ := a.Get("b"); v != "3" {
		t.Errorf("b = %q, want \"3\"", v)
	}
	if len(a.KVs) != 2 {
		t.Errorf("WithKVs duplicated a key: %v", a.KVs)
	}
}

func TestAttrWithoutKeys(t *testing.T) {
	a := Attributes([]KV{{"a", "1"}, {"b", "2"}, {"c", "3"}}, "")
	a = a.WithoutKey("b").WithoutKeys("c", "missing")
	if len(a.KVs) != 1 || a.KVs[0].Key != "a" {
		t.Errorf("unexpected pairs: %v", a.KVs)
	}
	if _, ok := a.Get("b"); ok {
		t.Errorf("removed key still resolvable")
	}
}
