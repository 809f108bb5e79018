package core

import (
	"math"
	"testing"
)

func TestONBOrthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0.95, 0.1, 0.2),
		NewVec3(-1, -1, -1),
	}

	const eps = 1e-5
	for _, n := range normals {
		basis := NewONBFromW(n)

		for _, v := range []Vec3{basis.U, basis.V, basis.W} {
			if math.Abs(v.Length()-1) > eps {
				t.Errorf("basis vector %v not unit length for normal %v", v, n)
			}
		}

		if math.Abs(basis.U.Dot(basis.V)) > eps {
			t.Errorf("u.v = %v, want ~0 for normal %v", basis.U.Dot(basis.V), n)
		}
		if math.Abs(basis.U.Dot(basis.W)) > eps {
			t.Errorf("u.w = %v, want ~0 for normal %v", basis.U.Dot(basis.W), n)
		}
		if math.Abs(basis.V.Dot(basis.W)) > eps {
			t.Errorf("v.w = %v, want ~0 for normal %v", basis.V.Dot(basis.W), n)
		}

		local := basis.Local(NewVec3(0, 0, 1))
		if local.Subtract(basis.W).Length() > eps {
			t.Errorf("Local((0,0,1)) = %v, want basis.W = %v", local, basis.W)
		}
	}
}
