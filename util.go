package huffman

func btoi(bit bool) int {
	if bit {
		return 1
	}
	return 0
}
