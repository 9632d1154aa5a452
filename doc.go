// Package blockpart is the incremental state engine behind stochastic
// block model (SBM) community detection on directed graphs.
//
// 🚀 What is blockpart?
//
//	A small, deterministic library that keeps a graph partition and all of
//	its aggregated statistics consistent across thousands of incremental
//	mutations per second:
//	  • Sparse block-to-block edge-count matrix with point, row, column
//	    and bulk access
//	  • Partition state: assignment vector, blockmodel, per-block degrees
//	    and a description-length score
//	  • Transactional vertex moves and greedy block-merge rounds
//	  • Golden-ratio bookkeeping for searching the optimal block count
//
// ✨ Why choose blockpart?
//
//   - Incremental by design – a vertex move touches four matrix rows and
//     columns, never the whole blockmodel
//   - Value-like state – Copy() yields fully independent partitions, the
//     mechanism for speculative evaluation and driver-side parallelism
//   - Deterministic – identical inputs always produce identical scores
//   - Pure Go – no cgo, no hidden global state
//
// Everything is organized under two subpackages:
//
//	sparse/    — the mutable B×B sparse nonnegative-integer matrix
//	partition/ — Partition state, move/merge protocol, scoring, search
//	             bookkeeping
//
// The move-proposal strategy (annealing schedules, acceptance rules) and
// graph loading are deliberately external: blockpart only exposes the
// operations such a driver needs.
//
//	go get github.com/katalvlaran/blockpart
package blockpart
