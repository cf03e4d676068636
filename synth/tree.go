// SPDX-License-Identifier: MIT
// Package: archgraph/synth
//
// tree.go — the ArchGraph tagged union and its JSON codec.
//
// Encoding (stable external contract):
//   Leaf       {"component":[degree, gen1, gen2, ...]}
//   Cluster    {"cluster":[node1, node2, ...]}         (length ≥ 1)
//   Supergraph {"supergraph":[componentNode, subgraphNode]}
//
// A Supergraph always pairs exactly one component with the previously built
// subtree; its first JSON element is therefore a Leaf encoding. Decoding
// reconstructs the identical tag structure, so shape round-trips.

package synth

import (
	"encoding/json"
	"fmt"
)

// JSON object tags of the union.
const (
	tagComponent  = "component"
	tagCluster    = "cluster"
	tagSupergraph = "supergraph"
)

// Kind discriminates the three node shapes.
type Kind int

// Node kinds in declaration order.
const (
	KindLeaf Kind = iota
	KindCluster
	KindSupergraph
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return tagComponent
	case KindCluster:
		return tagCluster
	case KindSupergraph:
		return tagSupergraph
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is one architecture-graph tree node. Exactly three implementations
// exist: Leaf, Cluster and Supergraph. Trees own their children exclusively.
type Node interface {
	Kind() Kind
}

// Leaf wraps a single component.
type Leaf struct {
	Component Component
}

// Kind implements Node.
func (Leaf) Kind() Kind { return KindLeaf }

// MarshalJSON encodes {"component":[degree, gen...]}.
func (l Leaf) MarshalJSON() ([]byte, error) {
	arr := make([]any, 0, 1+len(l.Component.Generators))
	arr = append(arr, l.Component.Degree)
	for _, g := range l.Component.Generators {
		arr = append(arr, g)
	}
	return json.Marshal(map[string][]any{tagComponent: arr})
}

// Cluster composes sibling subtrees at one level. Members[0] is always the
// previously built subtree; the rest are fresh components.
type Cluster struct {
	Members []Node
}

// Kind implements Node.
func (Cluster) Kind() Kind { return KindCluster }

// MarshalJSON encodes {"cluster":[...]}.
func (c Cluster) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]Node{tagCluster: c.Members})
}

// Supergraph nests the previous subtree under one fresh component.
type Supergraph struct {
	Component Component
	Sub       Node
}

// Kind implements Node.
func (Supergraph) Kind() Kind { return KindSupergraph }

// MarshalJSON encodes {"supergraph":[componentNode, subgraphNode]}.
func (s Supergraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]Node{
		tagSupergraph: {Leaf{Component: s.Component}, s.Sub},
	})
}

// Decode parses a serialized tree back into its Node structure.
func Decode(data []byte) (Node, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("Decode: %w: %v", ErrBadTree, err)
	}
	if len(raw) != 1 {
		return nil, fmt.Errorf("Decode: want exactly one tag, got %d: %w", len(raw), ErrBadTree)
	}

	if body, ok := raw[tagComponent]; ok {
		leaf, err := decodeLeaf(body)
		if err != nil {
			return nil, err
		}
		return leaf, nil
	}
	if body, ok := raw[tagCluster]; ok {
		return decodeCluster(body)
	}
	if body, ok := raw[tagSupergraph]; ok {
		return decodeSupergraph(body)
	}
	for tag := range raw {
		return nil, fmt.Errorf("Decode: unknown tag %q: %w", tag, ErrBadTree)
	}
	return nil, fmt.Errorf("Decode: empty object: %w", ErrBadTree)
}

// decodeLeaf parses [degree, gen...].
func decodeLeaf(body json.RawMessage) (Leaf, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(body, &arr); err != nil || len(arr) < 1 {
		return Leaf{}, fmt.Errorf("decodeLeaf: component must be a non-empty array: %w", ErrBadTree)
	}
	var degree int
	if err := json.Unmarshal(arr[0], &degree); err != nil {
		return Leaf{}, fmt.Errorf("decodeLeaf: degree: %w: %v", ErrBadTree, err)
	}
	gens := make([]string, 0, len(arr)-1)
	for i, g := range arr[1:] {
		var s string
		if err := json.Unmarshal(g, &s); err != nil {
			return Leaf{}, fmt.Errorf("decodeLeaf: generator %d: %w: %v", i, ErrBadTree, err)
		}
		gens = append(gens, s)
	}
	return Leaf{Component: Component{Degree: degree, Generators: gens}}, nil
}

// decodeCluster parses a non-empty node list.
func decodeCluster(body json.RawMessage) (Node, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(body, &arr); err != nil {
		return nil, fmt.Errorf("decodeCluster: %w: %v", ErrBadTree, err)
	}
	if len(arr) < 1 {
		return nil, fmt.Errorf("decodeCluster: empty cluster: %w", ErrBadTree)
	}
	members := make([]Node, 0, len(arr))
	for i, m := range arr {
		node, err := Decode(m)
		if err != nil {
			return nil, fmt.Errorf("decodeCluster: member %d: %w", i, err)
		}
		members = append(members, node)
	}
	return Cluster{Members: members}, nil
}

// decodeSupergraph parses the exact [componentNode, subgraphNode] pair.
func decodeSupergraph(body json.RawMessage) (Node, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(body, &arr); err != nil {
		return nil, fmt.Errorf("decodeSupergraph: %w: %v", ErrBadTree, err)
	}
	if len(arr) != 2 {
		return nil, fmt.Errorf("decodeSupergraph: want 2 elements, got %d: %w", len(arr), ErrBadTree)
	}
	head, err := Decode(arr[0])
	if err != nil {
		return nil, fmt.Errorf("decodeSupergraph: component: %w", err)
	}
	leaf, ok := head.(Leaf)
	if !ok {
		return nil, fmt.Errorf("decodeSupergraph: first element is %s, want %s: %w",
			head.Kind(), KindLeaf, ErrBadTree)
	}
	sub, err := Decode(arr[1])
	if err != nil {
		return nil, fmt.Errorf("decodeSupergraph: subgraph: %w", err)
	}
	return Supergraph{Component: leaf.Component, Sub: sub}, nil
}
