package reaction

import "strings"

// Entries splits a reaction block into its per-reaction text entries. A new
// entry starts at every line containing a reaction arrow; its extent runs to
// the line before the next such line, or the end of the block. Text before
// the first equation line (the units header, comments) is not part of any
// entry. No returned entry is empty.
func Entries(block string) []string {
	block = strings.ReplaceAll(block, "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(block), "\n")

	var heads []int
	for i, line := range lines {
		if reArrow.MatchString(line) {
			heads = append(heads, i)
		}
	}
	if len(heads) == 0 {
		return nil
	}

	entries := make([]string, 0, len(heads))
	for i, start := range heads {
		end := len(lines)
		if i+1 < len(heads) {
			end = heads[i+1]
		}
		entry := strings.TrimRight(strings.Join(lines[start:end], "\n"), "\n \t")
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}
