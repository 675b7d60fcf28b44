package client

const letterWidth = 3
const letterHeight = 5

// 3x5 block glyphs, one string per row, '#' marks a filled cell.
var letterGlyphs = map[string][letterHeight]string{
	"0": {"###", "# #", "# #", "# #", "###"},
	"1": {" # ", "## ", " # ", " # ", "###"},
	"2": {"###", "  #", "###", "#  ", "###"},
	"3": {"###", "  #", "###", "  #", "###"},
	"4": {"# #", "# #", "###", "  #", "  #"},
	"5": {"###", "#  ", "###", "  #", "###"},
	"6": {"###", "#  ", "###", "# #", "###"},
	"7": {"###", "  #", "  #", "  #", "  #"},
	"8": {"###", "# #", "###", "# #", "###"},
	"9": {"###", "# #", "###", "  #", "###"},
}

// GetCellsFromChar returns the filled cells of a digit glyph as (x, y)
// offsets from its top-left corner. Unknown characters have no cells.
func GetCellsFromChar(ch string) [][2]int {
	glyph, ok := letterGlyphs[ch]
	if !ok {
		return nil
	}

	var cells [][2]int
	for y, row := range glyph {
		for x, c := range row {
			if c == '#' {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}
