package dataprep

// LabelEncode encodes categories as integers, first occurrence first.
func LabelEncode(data []string) ([]int, map[string]int) {
	unique := map[string]int{}
	out := make([]int, len(data))
	for i, v := range data {
		if _, ok := unique[v]; !ok {
			unique[v] = len(unique)
		}
		out[i] = unique[v]
	}
	return out, unique
}
