// Package sparsemat is a small toolkit for sparse integer matrices stored as
// coordinate -> value maps.
//
// What is in here?
//
//	sparse/           — the Matrix type, Add/Sub/Mul, text codec, operation dispatch
//	internal/calc/    — operation name + two serialized matrices in, one result out
//	internal/config/  — YAML configuration with environment overrides
//	internal/logging/ — zap logger wiring
//	cmd/sparsecalc/   — command-line front end
//
// Quick example:
//
//	a, _ := sparse.ParseString("rows=2\ncols=2\n(0,0,1)\n(1,1,2)")
//	b, _ := sparse.ParseString("rows=2\ncols=2\n(0,0,3)\n(0,1,4)")
//	sum, _ := sparse.Add(a, b)
//	fmt.Println(sum.Serialize())
//
// Only nonzero cells are stored, so memory is O(nnz) rather than O(rows*cols).
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsecalc@latest
package sparsemat
