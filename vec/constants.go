package vec

// Named vector values. All are initialized before any use and must never
// be written; treat them as constants.
var (
	Zero2  = Vector2{0, 0}
	One2   = Vector2{1, 1}
	UnitX2 = Vector2{1, 0}
	UnitY2 = Vector2{0, 1}
	Up2    = Vector2{0, 1}
	Down2  = Vector2{0, -1}
	Left2  = Vector2{-1, 0}
	Right2 = Vector2{1, 0}
)

var (
	Zero3    = Vector3{0, 0, 0}
	One3     = Vector3{1, 1, 1}
	Origin3  = Vector3{0, 0, 0}
	UnitX3   = Vector3{1, 0, 0}
	UnitY3   = Vector3{0, 1, 0}
	UnitZ3   = Vector3{0, 0, 1}
	Up3      = Vector3{0, 1, 0}
	Down3    = Vector3{0, -1, 0}
	Left3    = Vector3{-1, 0, 0}
	Right3   = Vector3{1, 0, 0}
	Forward3 = Vector3{0, 0, 1}
	Back3    = Vector3{0, 0, -1}
)

var (
	Zero4  = Vector4{0, 0, 0, 0}
	One4   = Vector4{1, 1, 1, 1}
	UnitX4 = Vector4{1, 0, 0, 0}
	UnitY4 = Vector4{0, 1, 0, 0}
	UnitZ4 = Vector4{0, 0, 1, 0}
	UnitW4 = Vector4{0, 0, 0, 1}
)
