// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the viewer scene graph: a tree of renderable
// nodes with hierarchical poses, meshes, materials, and bounding boxes.
// It maintains transform and bounds state only; drawing is left to
// renderers such as [github.com/fitroom/fitroom/snapshot].
package scene

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Node is the common interface for all scene nodes.
type Node interface {
	tree.Node

	// AsNodeBase returns the [NodeBase] for our node, the core scene
	// node state on which all scene functionality is defined.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is a [Solid] node (has a mesh).
	IsSolid() bool

	// AsSolid returns the node as a [Solid] (nil if not).
	AsSolid() *Solid

	// UpdateMeshBBox updates the mesh-based local bounding box for this
	// node; groups aggregate over their children.
	UpdateMeshBBox()
}

// NodeBase is the base type for all scene nodes.
type NodeBase struct {
	tree.NodeBase

	// complete specification of position and orientation
	Pose Pose `set:"-"`

	// MeshBBox is the local bounding box of this node's mesh, in mesh
	// coordinates; for groups it aggregates over children.
	MeshBBox math32.Box3 `set:"-"`

	// WorldBBox is the bounding box in world coordinates, only valid
	// after [Scene.UpdateWorld].
	WorldBBox math32.Box3 `set:"-"`
}

func (nb *NodeBase) Init() {
	nb.Pose.Defaults()
	nb.MeshBBox.SetEmpty()
	nb.WorldBBox.SetEmpty()
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

func (nb *NodeBase) UpdateMeshBBox() {
}

// AsNode converts the given tree node to a scene [Node] and [NodeBase],
// returning nil if it is not a scene node type.
func AsNode(n tree.Node) (Node, *NodeBase) {
	ni, ok := n.(Node)
	if !ok {
		return nil, nil
	}
	return ni, ni.AsNodeBase()
}

// SetPos sets the [Pose.Pos] position of the node.
func (nb *NodeBase) SetPos(x, y, z float32) *NodeBase {
	nb.Pose.Pos.Set(x, y, z)
	return nb
}

// SetScale sets the [Pose.Scale] of the node uniformly.
func (nb *NodeBase) SetScale(s float32) *NodeBase {
	nb.Pose.Scale.Set(s, s, s)
	return nb
}

// SetEulerRotation sets the [Pose.Quat] rotation of the node,
// from euler angles in degrees.
func (nb *NodeBase) SetEulerRotation(x, y, z float32) *NodeBase {
	nb.Pose.SetEulerRotation(x, y, z)
	return nb
}

// BoundsInParent returns the node's bounding box expressed in its
// parent's coordinates, by transforming the local mesh bbox through
// the node's local matrix.
func (nb *NodeBase) BoundsInParent() math32.Box3 {
	if nb.MeshBBox.IsEmpty() {
		return nb.MeshBBox
	}
	nb.Pose.UpdateMatrix()
	return nb.MeshBBox.MulMatrix4(&nb.Pose.Matrix)
}

// UpdateWorldMatrix updates the node's world matrix based on the
// parent's world matrix, recursively down the tree, and updates
// the world bounding boxes.
func (nb *NodeBase) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
	nb.WorldBBox = nb.MeshBBox.MulMatrix4(&nb.Pose.WorldMatrix)
	for _, kid := range nb.Children {
		ni, cb := AsNode(kid)
		if ni == nil {
			continue
		}
		cb.UpdateWorldMatrix(&nb.Pose.WorldMatrix)
	}
}
