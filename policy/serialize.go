package policy

import (
	"bytes"

	"github.com/mmsyan/cpabe-core/codec"
	"github.com/mmsyan/cpabe-core/pairing"
)

// Serialize writes n per §4.7's PolicyNode layout: uint32 k, uint32
// n_children, then either a leaf's (attr, c, c') or its children in
// order, recursively.
func Serialize(buf *bytes.Buffer, n *Node) error {
	codec.WriteUint32(buf, uint32(n.K))
	codec.WriteUint32(buf, uint32(len(n.Children)))

	if n.IsLeaf() {
		if err := codec.WriteCString(buf, n.Attr); err != nil {
			return err
		}
		codec.WriteBytes(buf, n.C.Bytes())
		codec.WriteBytes(buf, n.CP.Bytes())
		return nil
	}

	for _, child := range n.Children {
		if err := Serialize(buf, child); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads a PolicyNode tree written by Serialize from the front
// of b, returning the node and the remaining bytes.
func Deserialize(b []byte) (*Node, []byte, error) {
	k, rest, err := codec.ReadUint32(b)
	if err != nil {
		return nil, nil, err
	}
	nChildren, rest, err := codec.ReadUint32(rest)
	if err != nil {
		return nil, nil, err
	}

	if nChildren == 0 {
		attr, r, err := codec.ReadCString(rest)
		if err != nil {
			return nil, nil, err
		}
		rest = r
		cBytes, r, err := codec.ReadBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		rest = r
		c, err := pairing.G1FromBytes(cBytes)
		if err != nil {
			return nil, nil, err
		}
		cpBytes, r, err := codec.ReadBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		rest = r
		cp, err := pairing.G1FromBytes(cpBytes)
		if err != nil {
			return nil, nil, err
		}
		return &Node{K: int(k), Attr: attr, C: c, CP: cp}, rest, nil
	}

	children := make([]*Node, nChildren)
	for i := range children {
		child, r, err := Deserialize(rest)
		if err != nil {
			return nil, nil, err
		}
		children[i] = child
		rest = r
	}
	return &Node{K: int(k), Children: children}, rest, nil
}
