// Package sudograph solves 9×9 Sudoku by recasting it as graph coloring
// over a small persisted property-graph store.
//
// 🚀 What is sudograph?
//
//	Two library packages plus a CLI:
//		• store/  — integer-addressed nodes, typed edges, key/value properties,
//		  buffered single-writer transactions, optional BadgerDB durability
//		• sudoku/ — the constraint-graph builder (anchor + 81 cells + 810
//		  undirected conflict edges), a stack-based backtracking solver, the
//		  solution extractor, and the "9,9"-headed puzzle-file glue
//		• cmd/sudograph — `sudograph <store-path> <puzzle-file>`
//
// Quick example:
//
//	st, _ := store.Open()
//	defer st.Close()
//
//	grid, _ := sudoku.ParseProblemFile("puzzle.txt")
//	p, _ := sudoku.Build(st, grid)
//	if err := p.Solve(); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(p) // 9 lines of 9 digits
//
// Every phase runs in exactly one transaction: built, solved, and extracted
// state are each all-or-nothing against the store.
package sudograph
