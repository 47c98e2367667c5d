package schedule

// Conflicts returns the CRNs of every assigned section involved in at least
// one pairwise block overlap with another section. The scan always runs over
// the full flattened assignment rather than updating a previous result, so it
// reflects the current assignment exactly.
func Conflicts(assignment Assignment) map[string]bool {
	blocks := make([]Block, 0, len(assignment))
	for _, section := range assignment {
		blocks = append(blocks, BlocksOf(section)...)
	}

	conflicts := make(map[string]bool)
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if blocks[i].CRN == blocks[j].CRN {
				continue
			}
			if blocks[i].Overlaps(blocks[j]) {
				conflicts[blocks[i].CRN] = true
				conflicts[blocks[j].CRN] = true
			}
		}
	}
	return conflicts
}
