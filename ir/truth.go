package ir

// Truth reports whether node holds a non-empty, non-zero value.
func Truth(node *Node) bool {
	switch node.Kind() {
	case ObjectType, ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case BytesType:
		return len(node.Bytes) != 0
	case NumberType:
		f, _ := node.AsFloat()
		return f != 0.0
	case BoolType:
		b, _ := node.AsBool()
		return b
	default:
		return false
	}
}
