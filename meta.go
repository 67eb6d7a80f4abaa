package pandoc

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MetaFromYAML builds document metadata from a YAML mapping, the way
// pandoc treats a metadata file: booleans become MetaBool, every other
// scalar becomes MetaString, sequences become MetaList and mappings
// become MetaMap. Key order is preserved. An empty document yields nil
// metadata.
func MetaFromYAML(data []byte) (Meta, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("pandoc: parse metadata: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("pandoc: metadata must be a mapping")
	}
	return metaFromMapping(doc)
}

func metaFromMapping(n *yaml.Node) (Meta, error) {
	var m Meta
	for i := 0; i+1 < len(n.Content); i += 2 {
		value, err := metaFromNode(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		m = append(m, MetaMapEntry{n.Content[i].Value, value})
	}
	return m, nil
}

func metaFromNode(n *yaml.Node) (MetaValue, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, fmt.Errorf("pandoc: parse metadata: %w", err)
			}
			return MetaBool(b), nil
		case "!!null":
			return MetaString(""), nil
		default:
			return MetaString(n.Value), nil
		}
	case yaml.SequenceNode:
		entries := make([]MetaValue, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := metaFromNode(c)
			if err != nil {
				return nil, err
			}
			entries = append(entries, v)
		}
		return &MetaList{entries}, nil
	case yaml.MappingNode:
		entries, err := metaFromMapping(n)
		if err != nil {
			return nil, err
		}
		return &MetaMap{entries}, nil
	case yaml.AliasNode:
		return metaFromNode(n.Alias)
	}
	return nil, fmt.Errorf("pandoc: unsupported metadata node kind %d", n.Kind)
}

// MetaToYAML renders document metadata as plain YAML, preserving key
// order. MetaInlines and MetaBlocks values are reduced to their text
// with Stringify.
func MetaToYAML(m Meta) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(metaMappingNode(m)); err != nil {
		return nil, fmt.Errorf("pandoc: encode metadata: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("pandoc: encode metadata: %w", err)
	}
	return buf.Bytes(), nil
}

func metaMappingNode(m Meta) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			metaValueNode(e.Value))
	}
	return n
}

func metaValueNode(v MetaValue) *yaml.Node {
	switch v := v.(type) {
	case MetaBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(v))}
	case MetaString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)}
	case *MetaInlines:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: Stringify(v)}
	case *MetaBlocks:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: Stringify(v)}
	case *MetaList:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.Entries {
			n.Content = append(n.Content, metaValueNode(e))
		}
		return n
	case *MetaMap:
		return metaMappingNode(v.Entries)
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
