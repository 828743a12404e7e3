package eval

// isolatedPenalty is indexed by the number of files holding an isolated pawn of one side;
// doubled isolated pawns on one file count once.
var isolatedPenalty = [9]int{0, -10, -25, -50, -75, -75, -75, -75, -75}

// passedBonus is indexed by ranks advanced toward promotion (0 = own back rank).
var passedBonus = [7]int{0, 120, 80, 50, 30, 15, 15}

// pawnFiles tracks, per file, the frontmost (most advanced) pawn rank for each side. A value of
// -1 means no pawn of that color occupies the file. "Frontmost" is measured toward the
// respective side's promotion rank, so white tracks the minimum rank and black the maximum.
type pawnFiles struct {
	white [8]int
	black [8]int
}

func newPawnFiles() pawnFiles {
	var pf pawnFiles
	for f := 0; f < 8; f++ {
		pf.white[f] = -1
		pf.black[f] = -1
	}
	return pf
}

func (pf *pawnFiles) record(file, rank int, white bool) {
	if white {
		if pf.white[file] == -1 || rank < pf.white[file] {
			pf.white[file] = rank
		}
		return
	}
	if pf.black[file] == -1 || rank > pf.black[file] {
		pf.black[file] = rank
	}
}

// pawnStructureScore returns the signed (white-minus-black, from white's perspective) isolated-
// and passed-pawn adjustment over all files for both colors.
func pawnStructureScore(pf pawnFiles) int {
	score := 0

	isolatedWhite, isolatedBlack := 0, 0
	for f := 0; f < 8; f++ {
		if pf.white[f] == -1 {
			continue
		}
		if !hasNeighborPawn(pf.white, f) {
			isolatedWhite++
		}
	}
	for f := 0; f < 8; f++ {
		if pf.black[f] == -1 {
			continue
		}
		if !hasNeighborPawn(pf.black, f) {
			isolatedBlack++
		}
	}
	score += isolatedPenalty[clampIndex(isolatedWhite, len(isolatedPenalty))]
	score -= isolatedPenalty[clampIndex(isolatedBlack, len(isolatedPenalty))]

	for f := 0; f < 8; f++ {
		if pf.white[f] != -1 && isPassedWhite(pf, f) {
			// White's own back rank is rank 7; advanced-from-own-back = 7 - rank.
			score += passedBonus[clampIndex(7-pf.white[f], len(passedBonus))]
		}
		if pf.black[f] != -1 && isPassedBlack(pf, f) {
			score -= passedBonus[clampIndex(pf.black[f], len(passedBonus))]
		}
	}

	return score
}

func hasNeighborPawn(files [8]int, file int) bool {
	if file > 0 && files[file-1] != -1 {
		return true
	}
	if file < 7 && files[file+1] != -1 {
		return true
	}
	return false
}

// isPassedWhite reports whether white's pawn on file f (frontmost rank pf.white[f]) is passed:
// for its file and each adjacent file, the most advanced black pawn there (pf.black) must not
// stand at or ahead of it (ahead = smaller rank). Only that one black pawn per file is compared;
// a second black pawn further back on the same file is not seen.
func isPassedWhite(pf pawnFiles, f int) bool {
	rank := pf.white[f]
	for _, nf := range neighborFiles(f) {
		if pf.black[nf] != -1 && pf.black[nf] <= rank {
			return false
		}
	}
	return true
}

// isPassedBlack mirrors isPassedWhite with ahead = larger rank.
func isPassedBlack(pf pawnFiles, f int) bool {
	rank := pf.black[f]
	for _, nf := range neighborFiles(f) {
		if pf.white[nf] != -1 && pf.white[nf] >= rank {
			return false
		}
	}
	return true
}

func neighborFiles(f int) []int {
	files := []int{f}
	if f > 0 {
		files = append(files, f-1)
	}
	if f < 7 {
		files = append(files, f+1)
	}
	return files
}

func clampIndex(n, limit int) int {
	if n >= limit {
		return limit - 1
	}
	if n < 0 {
		return 0
	}
	return n
}
