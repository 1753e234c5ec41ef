package battle

import (
	"fmt"

	"github.com/nathanieltooley/klefki/core"
)

type ResultKind uint8

const (
	RESULT_DAMAGE ResultKind = iota
	RESULT_STATUS
	RESULT_DRAIN
	RESULT_STAT_STAGE
	RESULT_FLINCH
	RESULT_NO_HIT
)

var resultNames = [...]string{"damage", "status", "drain", "stat_stage", "flinch", "no_hit"}

func (k ResultKind) String() string {
	if int(k) < len(resultNames) {
		return resultNames[k]
	}
	return fmt.Sprintf("ResultKind(%d)", k)
}

type NoHitReason uint8

const (
	NOHIT_INEFFECTIVE NoHitReason = iota
	NOHIT_MISS
	NOHIT_TODO
	NOHIT_ERROR
)

var noHitNames = [...]string{"ineffective", "miss", "todo", "error"}

func (r NoHitReason) String() string {
	if int(r) < len(noHitNames) {
		return noHitNames[r]
	}
	return fmt.Sprintf("NoHitReason(%d)", r)
}

type DamageResult struct {
	Damage        core.Health
	Effectiveness core.Effectiveness
	Crit          bool
}

// MoveResult is one outcome of a move. Kind decides which fields are set:
//
//	damage:     Damage
//	status:     Ailment
//	drain:      Damage, Heal (negative is recoil)
//	stat_stage: Stat, Stage
//	no_hit:     NoHit
//
// OnUser marks results that came from a user node and affect the user instead of the target.
type MoveResult struct {
	Kind    ResultKind
	Damage  DamageResult
	Heal    int16
	Ailment core.LiveAilment
	Stat    core.StatType
	Stage   int8
	NoHit   NoHitReason
	OnUser  bool
}

func DamageHit(result DamageResult) MoveResult {
	return MoveResult{Kind: RESULT_DAMAGE, Damage: result}
}

func StatusResult(ailment core.LiveAilment) MoveResult {
	return MoveResult{Kind: RESULT_STATUS, Ailment: ailment}
}

func DrainResult(result DamageResult, heal int16) MoveResult {
	return MoveResult{Kind: RESULT_DRAIN, Damage: result, Heal: heal}
}

func StatStageResult(stat core.StatType, stage int8) MoveResult {
	return MoveResult{Kind: RESULT_STAT_STAGE, Stat: stat, Stage: stage}
}

func FlinchResult() MoveResult {
	return MoveResult{Kind: RESULT_FLINCH}
}

func NoHit(reason NoHitReason) MoveResult {
	return MoveResult{Kind: RESULT_NO_HIT, NoHit: reason}
}

// Equal compares only the fields relevant to the result's kind
func (r MoveResult) Equal(other MoveResult) bool {
	if r.Kind != other.Kind || r.OnUser != other.OnUser {
		return false
	}

	switch r.Kind {
	case RESULT_DAMAGE:
		return r.Damage == other.Damage
	case RESULT_STATUS:
		return r.Ailment.Equal(other.Ailment)
	case RESULT_DRAIN:
		return r.Damage == other.Damage && r.Heal == other.Heal
	case RESULT_STAT_STAGE:
		return r.Stat == other.Stat && r.Stage == other.Stage
	case RESULT_NO_HIT:
		return r.NoHit == other.NoHit
	}

	return true
}

func (r MoveResult) String() string {
	switch r.Kind {
	case RESULT_DAMAGE:
		return fmt.Sprintf("damage %d (%s, crit: %t)", r.Damage.Damage, r.Damage.Effectiveness, r.Damage.Crit)
	case RESULT_STATUS:
		return fmt.Sprintf("status %s", r.Ailment)
	case RESULT_DRAIN:
		return fmt.Sprintf("drain %d, heal %d", r.Damage.Damage, r.Heal)
	case RESULT_STAT_STAGE:
		return fmt.Sprintf("%s %+d", r.Stat, r.Stage)
	case RESULT_NO_HIT:
		return fmt.Sprintf("no hit: %s", r.NoHit)
	}

	return r.Kind.String()
}
