package geometry

import (
	"math/rand"

	"golang.org/x/exp/slices"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// BVHNode is one interior node of a bounding volume hierarchy: a binary
// split of its children's combined box, used to cull ray/scene tests to
// O(log n) instead of O(n).
type BVHNode struct {
	Base
	Left, Right Hittable
	Box         core.AABB
}

// NewBVH builds a hierarchy over items by repeatedly picking a random
// axis, sorting the current span of shapes by their box's minimum along
// that axis, and splitting the sorted span in half. This is a simpler,
// lower-quality partition than a surface-area-heuristic build, but it is
// easy to reason about and gives every shape the same expected depth
// regardless of its position.
func NewBVH(items []Hittable, t0, t1 float64, rng *rand.Rand) Hittable {
	n := len(items)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return items[0]
	}

	axis := rng.Intn(3)
	span := make([]Hittable, n)
	copy(span, items)
	slices.SortFunc(span, func(a, b Hittable) bool {
		boxA, _ := a.BoundingBox(t0, t1)
		boxB, _ := b.BoundingBox(t0, t1)
		return core.AxisValue(boxA.Min, axis) < core.AxisValue(boxB.Min, axis)
	})

	var left, right Hittable
	if n == 2 {
		left, right = span[0], span[1]
	} else {
		mid := n / 2
		left = NewBVH(span[:mid], t0, t1, rng)
		right = NewBVH(span[mid:], t0, t1, rng)
	}

	leftBox, _ := left.BoundingBox(t0, t1)
	rightBox, _ := right.BoundingBox(t0, t1)
	return &BVHNode{Left: left, Right: right, Box: leftBox.Union(rightBox)}
}

// Hit implements Hittable: reject on the node's own box first, then
// descend into the left subtree before the right, narrowing tMax with
// whatever the left subtree found so the right subtree only has to beat
// it.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	hitLeft, okLeft := n.Left.Hit(ray, tMin, tMax)
	rightMax := tMax
	if okLeft {
		rightMax = hitLeft.T
	}
	hitRight, okRight := n.Right.Hit(ray, tMin, rightMax)
	if okRight {
		return hitRight, true
	}
	if okLeft {
		return hitLeft, true
	}
	return nil, false
}

// BoundingBox implements Hittable.
func (n *BVHNode) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return n.Box, true
}
