package core

import "math"

// AABB is an axis-aligned bounding box defined by opposite corners, with
// Min[i] <= Max[i] on every axis.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints returns the tightest AABB bounding all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Vec3{math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z)}
		max = Vec3{math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z)}
	}
	return AABB{Min: min, Max: max}
}

// Hit tests ray-box intersection using the slab method, narrowing
// [tMin,tMax] on each axis and failing once the interval is empty.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	boxMin := [3]float64{aabb.Min.X, aabb.Min.Y, aabb.Min.Z}
	boxMax := [3]float64{aabb.Max.X, aabb.Max.Y, aabb.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < boxMin[axis] || origin[axis] > boxMax[axis] {
				return false
			}
			continue
		}
		invDir := 1.0 / dir[axis]
		t0 := (boxMin[axis] - origin[axis]) * invDir
		t1 := (boxMax[axis] - origin[axis]) * invDir
		if invDir < 0 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Union returns the AABB bounding both aabb and other.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(aabb.Min.X, other.Min.X), math.Min(aabb.Min.Y, other.Min.Y), math.Min(aabb.Min.Z, other.Min.Z)},
		Max: Vec3{math.Max(aabb.Max.X, other.Max.X), math.Max(aabb.Max.Y, other.Max.Y), math.Max(aabb.Max.Z, other.Max.Z)},
	}
}

// Center returns the AABB's midpoint.
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the AABB's extent along each axis.
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// AxisValue returns Min/Max/Center's component on the given axis (0=X,1=Y,2=Z).
func AxisValue(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Expand returns aabb inflated by amount on every axis in both directions,
// used to give zero-thickness geometry (an axis-aligned rectangle, a
// coplanar triangle) a finite extent so it can be placed in a BVH.
func (aabb AABB) Expand(amount float64) AABB {
	e := NewVec3(amount, amount, amount)
	return AABB{Min: aabb.Min.Subtract(e), Max: aabb.Max.Add(e)}
}
