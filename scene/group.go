// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/tree"

// NewGroup returns a new [Group] under the given optional parent.
func NewGroup(parent ...tree.Node) *Group {
	return tree.New[Group](parent...)
}

// Group collects individual elements in a scene but does not have a mesh
// or material of its own. It does have a transform that applies to all
// nodes under it.
type Group struct {
	NodeBase
}

// UpdateMeshBBox aggregates the local bounding box over child elements,
// transformed by each child's local matrix.
func (gp *Group) UpdateMeshBBox() {
	gp.MeshBBox.SetEmpty()
	for _, kid := range gp.Children {
		ni, nb := AsNode(kid)
		if ni == nil {
			continue
		}
		nbb := nb.BoundsInParent()
		if nbb.IsEmpty() {
			continue
		}
		gp.MeshBBox.ExpandByBox(nbb)
	}
}

var _ Node = (*Group)(nil)
