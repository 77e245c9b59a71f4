package kociemba

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"
)

// Table lifecycle: every move, conjugation, class and
// pruning table is built exactly once per process, behind a one-shot
// initializer that concurrent solve callers wait on. Each table persists
// to its own file of raw little-endian bytes in index order, no header;
// integrity is by size check only, and a missing or wrong-sized file
// simply causes that table to be rebuilt and rewritten. Disk failures are
// non-fatal: the in-RAM tables serve regardless.
//
// Fixed file names, one per table.
const (
	fileMoveTwist       = "move_twist"
	fileMoveFlip        = "move_flip"
	fileMoveSliceSorted = "move_slice_sorted"
	fileMoveUEdges      = "move_u_edges"
	fileMoveDEdges      = "move_d_edges"
	fileMoveCorners     = "move_corners"
	fileMoveUDEdges     = "move_ud_edges"

	fileConjTwist   = "conj_twist"
	fileConjUDEdges = "conj_ud_edges"

	fileFSClassIdx = "classidx_flipslice"
	fileFSSym      = "sym_flipslice"
	fileFSRep      = "rep_flipslice"
	fileFSSelfSym  = "selfsym_flipslice"

	fileCoClassIdx = "classidx_corners"
	fileCoSym      = "sym_corners"
	fileCoRep      = "rep_corners"
	fileCoSelfSym  = "selfsym_corners"

	filePrunePhase1      = "prune_phase1"
	filePrunePhase2      = "prune_phase2"
	filePruneCornerSlice = "prune_corner_slice"
)

var (
	tableOnce sync.Once
	tableDir  string
)

// DefaultTableDir is where tables persist when the caller does not choose
// a directory: a per-user cache location, or in-memory only ("") when the
// platform offers none.
func DefaultTableDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "kociemba-tables")
}

// EnsureTables builds (or loads from dir) all solver tables exactly once
// for the process's lifetime. Subsequent calls, even with a different
// dir, are no-ops: the tables are process-wide immutable state. The error
// is always nil today (construction is infallible in memory and disk
// persistence is best-effort); the signature leaves room for the reserved
// TableIOFailure kind.
func EnsureTables(dir string) error {
	tableOnce.Do(func() {
		tableDir = dir
		buildAndPersistTables(dir)
	})
	return nil
}

func buildAndPersistTables(dir string) {
	if dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}

	// Move tables; each depends only on the cube algebra.
	loadOrBuildU16(dir, fileMoveTwist, TwistCoordCount*NumMoves, &twistMove, buildTwistMove)
	loadOrBuildU16(dir, fileMoveFlip, FlipCoordCount*NumMoves, &flipMove, buildFlipMove)
	loadOrBuildU16(dir, fileMoveSliceSorted, SliceSortedCoordCount*NumMoves, &sliceSortedMove, buildSliceSortedMove)
	loadOrBuildU16(dir, fileMoveUEdges, SliceSortedCoordCount*NumMoves, &uEdgesMove, buildUEdgesMove)
	loadOrBuildU16(dir, fileMoveDEdges, SliceSortedCoordCount*NumMoves, &dEdgesMove, buildDEdgesMove)
	loadOrBuildU16(dir, fileMoveCorners, CornersCoordCount*NumMoves, &cornersMove, buildCornersMove)
	loadOrBuildU16(dir, fileMoveUDEdges, UDEdgesCoordCount*NumMoves, &udEdgesMove, buildUDEdgesMove)

	// Symmetry conjugation tables.
	loadOrBuildU16(dir, fileConjTwist, TwistCoordCount*SymD4hCount, &twistConj, buildTwistConj)
	loadOrBuildU16(dir, fileConjUDEdges, UDEdgesCoordCount*SymD4hCount, &udEdgesConj, buildUDEdgesConj)

	// Class tables come in dependent quadruples: a partial set is useless,
	// so any mismatch rebuilds the whole group.
	if !(loadU16(dir, fileFSClassIdx, SliceCombCount*FlipCoordCount, &flipSliceClassIdx) &&
		loadU8(dir, fileFSSym, SliceCombCount*FlipCoordCount, &flipSliceSym) &&
		loadU32(dir, fileFSRep, FlipSliceClassCount, &flipSliceRep) &&
		loadU16(dir, fileFSSelfSym, FlipSliceClassCount, &flipSliceSelfSym)) {
		buildFlipSliceClasses()
		saveU16(dir, fileFSClassIdx, flipSliceClassIdx)
		saveU8(dir, fileFSSym, flipSliceSym)
		saveU32(dir, fileFSRep, flipSliceRep)
		saveU16(dir, fileFSSelfSym, flipSliceSelfSym)
	}
	if !(loadU16(dir, fileCoClassIdx, CornersCoordCount, &cornersClassIdx) &&
		loadU8(dir, fileCoSym, CornersCoordCount, &cornersSym) &&
		loadU16(dir, fileCoRep, CornersClassCount, &cornersRep) &&
		loadU16(dir, fileCoSelfSym, CornersClassCount, &cornersSelfSym)) {
		buildCornersClasses()
		saveU16(dir, fileCoClassIdx, cornersClassIdx)
		saveU8(dir, fileCoSym, cornersSym)
		saveU16(dir, fileCoRep, cornersRep)
		saveU16(dir, fileCoSelfSym, cornersSelfSym)
	}

	// Pruning tables, last: they consume the move and symmetry tables.
	if !loadU8(dir, filePruneCornerSlice, CornersCoordCount*24, &cornSliceDepth) {
		buildCornSliceDepth()
		saveU8(dir, filePruneCornerSlice, cornSliceDepth)
	}
	p1Bytes := (FlipSliceClassCount*TwistCoordCount + 3) / 4
	if !loadDepth3(dir, filePrunePhase1, p1Bytes, &phase1Prune) {
		buildPhase1Prune()
		saveU8(dir, filePrunePhase1, phase1Prune)
	}
	p2Bytes := (CornersClassCount*UDEdgesCoordCount + 3) / 4
	if !loadDepth3(dir, filePrunePhase2, p2Bytes, &phase2Prune) {
		buildPhase2Prune()
		saveU8(dir, filePrunePhase2, phase2Prune)
	}
}

func loadOrBuildU16(dir, name string, n int, dst *[]uint16, build func()) {
	if loadU16(dir, name, n, dst) {
		return
	}
	build()
	saveU16(dir, name, *dst)
}

func readSized(dir, name string, want int) []byte {
	if dir == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil || len(data) != want {
		return nil
	}
	return data
}

func loadU8(dir, name string, n int, dst *[]uint8) bool {
	data := readSized(dir, name, n)
	if data == nil {
		return false
	}
	*dst = data
	return true
}

func loadDepth3(dir, name string, nbytes int, dst *depth3Table) bool {
	data := readSized(dir, name, nbytes)
	if data == nil {
		return false
	}
	*dst = depth3Table(data)
	return true
}

func loadU16(dir, name string, n int, dst *[]uint16) bool {
	data := readSized(dir, name, 2*n)
	if data == nil {
		return false
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	*dst = out
	return true
}

func loadU32(dir, name string, n int, dst *[]uint32) bool {
	data := readSized(dir, name, 4*n)
	if data == nil {
		return false
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	*dst = out
	return true
}

func saveU8(dir, name string, data []uint8) {
	if dir == "" {
		return
	}
	_ = os.WriteFile(filepath.Join(dir, name), data, 0o644)
}

func saveU16(dir, name string, data []uint16) {
	if dir == "" {
		return
	}
	buf := make([]byte, 2*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint16(buf[2*i:], v)
	}
	_ = os.WriteFile(filepath.Join(dir, name), buf, 0o644)
}

func saveU32(dir, name string, data []uint32) {
	if dir == "" {
		return
	}
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	_ = os.WriteFile(filepath.Join(dir, name), buf, 0o644)
}

// TableStats reports what the table singleton holds, for the CLI's tables
// subcommand and operational visibility.
type TableStats struct {
	Dir              string
	MoveTableBytes   int
	SymTableBytes    int
	Phase1PruneBytes int
	Phase2PruneBytes int
}

// Stats returns sizes of the tables currently loaded. EnsureTables must
// have been called first.
func Stats() TableStats {
	move := 2 * (len(twistMove) + len(flipMove) + len(sliceSortedMove) +
		len(uEdgesMove) + len(dEdgesMove) + len(cornersMove) + len(udEdgesMove))
	sym := 2*(len(twistConj)+len(udEdgesConj)+len(flipSliceClassIdx)+len(flipSliceSelfSym)+
		len(cornersClassIdx)+len(cornersRep)+len(cornersSelfSym)) +
		len(flipSliceSym) + len(cornersSym) + 4*len(flipSliceRep)
	return TableStats{
		Dir:              tableDir,
		MoveTableBytes:   move,
		SymTableBytes:    sym,
		Phase1PruneBytes: len(phase1Prune),
		Phase2PruneBytes: len(phase2Prune) + len(cornSliceDepth),
	}
}
