package pyrodash

var (
	Debug = false // set to true for verbose debug output
	// Compile time checks to ensure that the Surfacer interface is implemented by all required types
	_ Surfacer = (*Sphere)(nil)
	_ Surfacer = (*Cylinder)(nil)
	_ Surfacer = (*Cone)(nil)
	// Compile time checks for the trace kinds
	_ Trace = (*SurfaceTrace)(nil)
	_ Trace = (*ScatterTrace)(nil)
	_ Trace = (*MeshTrace)(nil)
)
