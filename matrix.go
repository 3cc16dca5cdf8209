package ink

import "golang.org/x/image/math/f32"

// Identity returns the 4x4 identity transform.
func Identity() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a 4x4 transform that moves points by (x, y, z).
// Matrices are row-major as in [f32.Mat4]; the translation lives in the
// last column.
func Translation(x, y, z float32) f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// MulMat4 returns a*b.
func MulMat4(a, b f32.Mat4) f32.Mat4 {
	var m f32.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[row*4+k] * b[k*4+col]
			}
			m[row*4+col] = sum
		}
	}
	return m
}

// TransformPoint applies m to the point (x, y, z) and returns the result
// after the perspective divide.
func TransformPoint(m f32.Mat4, x, y, z float32) (float32, float32, float32) {
	tx := m[0]*x + m[1]*y + m[2]*z + m[3]
	ty := m[4]*x + m[5]*y + m[6]*z + m[7]
	tz := m[8]*x + m[9]*y + m[10]*z + m[11]
	w := m[12]*x + m[13]*y + m[14]*z + m[15]
	if w != 0 && w != 1 {
		return tx / w, ty / w, tz / w
	}
	return tx, ty, tz
}
