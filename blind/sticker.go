package blind

// rotate turns a piece name so that the sticker at position o comes first:
// rotate("UFR", 1) == "FRU".
func rotate(name string, o uint8) string {
	k := int(o) % len(name)

	return name[k:] + name[:k]
}

// key joins an op type and sticker into a table key.
func key(t OpType, sticker string) string {
	return t.String() + ":" + sticker
}
