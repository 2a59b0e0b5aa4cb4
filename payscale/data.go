/*
data.go - Built-in Basic Pay Scale reference data

PURPOSE:
  Ships the two fixed pay schedules the enhancement scheme is defined
  against: the 2017 Basic Pay Scales (the historical baseline the 30%
  allowance is computed on) and the 2022 Basic Pay Scales (the current
  running basic pay the 10% relief is computed on).

REPRESENTATION:
  Each grade is recorded compactly as {initial pay, annual increment,
  stage count} - the way the official scale charts publish them - and
  expanded to the full stage sequence at construction time. The expansion
  is arithmetic (initial + stage*increment), which makes the monotonicity
  invariant hold by construction for non-negative increments.

STAGE COUNTS:
  Stage counts are NOT uniform across periods. Grade 19 carries 22 stages
  on the 2022 schedule but only 20 on the 2017 schedule, so a stage
  resolved against the current table can legitimately have no historical
  counterpart. Callers must treat the two tables as independent.

UPDATING:
  When a new scale revision is notified, add its definition here or load
  it at startup through the factory package (JSON) without recompiling.

SEE ALSO:
  - table.go: Table type and invariants
  - factory/scales.go: JSON loading for revised scale data
*/
package payscale

import "fmt"

// scaleDef is the compact chart form of one grade's scale.
type scaleDef struct {
	Initial   int64 // stage-0 basic pay
	Increment int64 // per-stage annual increment
	Stages    int   // number of stages
}

// =============================================================================
// BPS 2017 - historical schedule (baseline for the 30% allowance)
// =============================================================================

var bps2017 = map[int]scaleDef{
	1:  {Initial: 9130, Increment: 290, Stages: 30},
	2:  {Initial: 9310, Increment: 320, Stages: 30},
	3:  {Initial: 9610, Increment: 370, Stages: 30},
	4:  {Initial: 9900, Increment: 420, Stages: 30},
	5:  {Initial: 10260, Increment: 470, Stages: 30},
	6:  {Initial: 10620, Increment: 520, Stages: 30},
	7:  {Initial: 10990, Increment: 570, Stages: 30},
	8:  {Initial: 11380, Increment: 620, Stages: 30},
	9:  {Initial: 11770, Increment: 670, Stages: 30},
	10: {Initial: 12160, Increment: 720, Stages: 30},
	11: {Initial: 12570, Increment: 770, Stages: 30},
	12: {Initial: 13320, Increment: 840, Stages: 30},
	13: {Initial: 14260, Increment: 910, Stages: 30},
	14: {Initial: 15180, Increment: 1010, Stages: 30},
	15: {Initial: 16120, Increment: 1110, Stages: 30},
	16: {Initial: 20950, Increment: 1480, Stages: 30},
	17: {Initial: 30370, Increment: 2300, Stages: 30},
	18: {Initial: 38350, Increment: 2870, Stages: 25},
	19: {Initial: 59210, Increment: 3180, Stages: 20},
	20: {Initial: 69090, Increment: 4720, Stages: 14},
	21: {Initial: 76720, Increment: 5220, Stages: 12},
	22: {Initial: 82380, Increment: 5640, Stages: 10},
}

// =============================================================================
// BPS 2022 - current schedule (running basic pay, base for the 10% relief)
// =============================================================================

var bps2022 = map[int]scaleDef{
	1:  {Initial: 12690, Increment: 405, Stages: 30},
	2:  {Initial: 12940, Increment: 445, Stages: 30},
	3:  {Initial: 13360, Increment: 515, Stages: 30},
	4:  {Initial: 13760, Increment: 585, Stages: 30},
	5:  {Initial: 14260, Increment: 655, Stages: 30},
	6:  {Initial: 14760, Increment: 725, Stages: 30},
	7:  {Initial: 15280, Increment: 790, Stages: 30},
	8:  {Initial: 15820, Increment: 860, Stages: 30},
	9:  {Initial: 16360, Increment: 930, Stages: 30},
	10: {Initial: 16900, Increment: 1000, Stages: 30},
	11: {Initial: 17470, Increment: 1070, Stages: 30},
	12: {Initial: 18510, Increment: 1170, Stages: 30},
	13: {Initial: 19820, Increment: 1265, Stages: 30},
	14: {Initial: 21100, Increment: 1405, Stages: 30},
	15: {Initial: 22410, Increment: 1545, Stages: 30},
	16: {Initial: 29115, Increment: 2065, Stages: 30},
	17: {Initial: 42215, Increment: 3195, Stages: 30},
	18: {Initial: 53310, Increment: 3990, Stages: 25},
	19: {Initial: 82295, Increment: 4420, Stages: 22},
	20: {Initial: 96030, Increment: 6560, Stages: 14},
	21: {Initial: 106645, Increment: 7255, Stages: 12},
	22: {Initial: 114510, Increment: 7840, Stages: 10},
}

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// BPS2017 returns the built-in historical (2017) pay scale table.
func BPS2017() *Table { return mustTable("bps-2017", bps2017) }

// BPS2022 returns the built-in current (2022) pay scale table.
func BPS2022() *Table { return mustTable("bps-2022", bps2022) }

func expand(defs map[int]scaleDef) map[int][]int64 {
	scales := make(map[int][]int64, len(defs))
	for grade, def := range defs {
		stages := make([]int64, def.Stages)
		for i := range stages {
			stages[i] = def.Initial + int64(i)*def.Increment
		}
		scales[grade] = stages
	}
	return scales
}

// mustTable panics on invalid built-in data. The built-in charts are fixed
// at compile time, so a failure here is a programming error, not input.
func mustTable(name string, defs map[int]scaleDef) *Table {
	t, err := New(name, expand(defs))
	if err != nil {
		panic(fmt.Sprintf("built-in pay scale %s: %v", name, err))
	}
	return t
}
