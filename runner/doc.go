// Package runner implements the shared iteration loop driving every local
// search strategy (§4.5) — select -> accept -> make -> bookkeeping — plus
// the seven concrete selection policies built on top of it.
//
// Grounded on original_source/include/easylocal/runners/moverunner.hh (the
// loop shape: InitializeRun/SelectMove/AcceptableMoveFound/MakeMove/
// UpdateBestState/TerminateRun) and runners/*.hh (each concrete SelectMove /
// StopCriterion rule).
package runner
