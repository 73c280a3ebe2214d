package geometry

import (
	"sort"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// Leaf threshold: nodes with this many or fewer shapes keep a linear list
const leafThreshold = 8

// bvhNode is one node of the hierarchy; leaves hold shapes, interior nodes
// hold children
type bvhNode struct {
	bounds core.AABB
	left   *bvhNode
	right  *bvhNode
	shapes []Shape
}

// BVH is a bounding volume hierarchy for fast ray-shape intersection over
// large shape lists
type BVH struct {
	root *bvhNode
}

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Sort on a copy so concurrent builders sharing a slice stay safe
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{root: buildBVH(shapesCopy)}
}

// buildBVH recursively splits shapes at the median of the longest axis
func buildBVH(shapes []Shape) *bvhNode {
	bounds := shapes[0].Bounds()
	for i := 1; i < len(shapes); i++ {
		bounds = bounds.Union(shapes[i].Bounds())
	}

	if len(shapes) <= leafThreshold {
		return &bvhNode{bounds: bounds, shapes: shapes}
	}

	sortShapesByAxis(shapes, bounds.LongestAxis())
	mid := len(shapes) / 2
	return &bvhNode{
		bounds: bounds,
		left:   buildBVH(shapes[:mid]),
		right:  buildBVH(shapes[mid:]),
	}
}

// sortShapesByAxis sorts shapes by their bounding box center along the axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		centerI := shapes[i].Bounds().Center()
		centerJ := shapes[j].Bounds().Center()
		switch axis {
		case 0:
			return centerI.X < centerJ.X
		case 1:
			return centerI.Y < centerJ.Y
		default:
			return centerI.Z < centerJ.Z
		}
	})
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, stats *core.Stats) (*Intersection, bool) {
	if bvh.root == nil {
		return nil, false
	}
	return bvh.root.hit(ray, stats)
}

// Bounds returns the bounds of the whole hierarchy
func (bvh *BVH) Bounds() core.AABB {
	if bvh.root == nil {
		return core.NewAABB(core.Vec3{}, core.Vec3{})
	}
	return bvh.root.bounds
}

// hit recursively tests ray intersection, shrinking the ray window to the
// closest hit found so far
func (node *bvhNode) hit(ray core.Ray, stats *core.Stats) (*Intersection, bool) {
	if !node.bounds.Hit(ray) {
		return nil, false
	}

	if node.shapes != nil {
		var closest *Intersection
		for _, shape := range node.shapes {
			if isect, ok := shape.Hit(ray, stats); ok {
				closest = isect
				ray.TMax = isect.T
			}
		}
		return closest, closest != nil
	}

	var closest *Intersection
	if node.left != nil {
		if isect, ok := node.left.hit(ray, stats); ok {
			closest = isect
			ray.TMax = isect.T
		}
	}
	if node.right != nil {
		if isect, ok := node.right.hit(ray, stats); ok {
			closest = isect
			ray.TMax = isect.T
		}
	}
	return closest, closest != nil
}
