package jobseq

// Params structs use zero values to mean "the vendor's documented
// default". These helpers apply that normalization. Booleans whose vendor
// default is true are pointers; build them with swag.Bool.

func defStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func defBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
