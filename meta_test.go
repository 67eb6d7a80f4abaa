package pandoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaFromYAML(t *testing.T) {
	const in = `
title: A Title
draft: true
tags:
  - go
  - pandoc
author:
  name: Ann
  email: ann@example.com
`
	m, err := MetaFromYAML([]byte(in))
	require.NoError(t, err)
	require.Len(t, m, 4)

	// Key order follows the document.
	assert.Equal(t, "title", m[0].Key)
	assert.Equal(t, "draft", m[1].Key)
	assert.Equal(t, "tags", m[2].Key)
	assert.Equal(t, "author", m[3].Key)

	assert.Equal(t, MetaString("A Title"), m.Get("title"))
	assert.Equal(t, MetaBool(true), m.Get("draft"))

	tags, ok := m.Get("tags").(*MetaList)
	require.True(t, ok)
	require.Len(t, tags.Entries, 2)
	assert.Equal(t, MetaString("go"), tags.Entries[0])

	author, ok := m.Get("author").(*MetaMap)
	require.True(t, ok)
	assert.Equal(t, MetaString("Ann"), author.Get("name"))
}

func TestMetaFromYAMLScalars(t *testing.T) {
	m, err := MetaFromYAML([]byte("count: 3\nratio: 0.5\nnothing: null\nquoted: \"true\"\n"))
	require.NoError(t, err)

	// Everything that is not a boolean stays a string.
	assert.Equal(t, MetaString("3"), m.Get("count"))
	assert.Equal(t, MetaString("0.5"), m.Get("ratio"))
	assert.Equal(t, MetaString(""), m.Get("nothing"))
	assert.Equal(t, MetaString("true"), m.Get("quoted"))
}

func TestMetaFromYAMLEmpty(t *testing.T) {
	m, err := MetaFromYAML(nil)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestMetaFromYAMLNotMapping(t *testing.T) {
	_, err := MetaFromYAML([]byte("- a\n- b\n"))
	require.Error(t, err)
}

func TestMetaToYAML(t *testing.T) {
	m := Meta{
		{"title", &MetaInlines{[]Inline{&Str{"A"}, SP, &Str{"Title"}}}},
		{"draft", MetaBool(false)},
		{"tags", &MetaList{[]MetaValue{MetaString("go")}}},
	}
	out, err := MetaToYAML(m)
	require.NoError(t, err)

	const want = `title: A Title
draft: false
tags:
  - go
`
	assert.Equal(t, want, string(out))
}

func TestMetaYAMLRoundTrip(t *testing.T) {
	const in = `title: Test
draft: true
author:
  name: Ann
`
	m, err := MetaFromYAML([]byte(in))
	require.NoError(t, err)
	out, err := MetaToYAML(m)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}
