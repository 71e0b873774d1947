package coc7e

// CreationMode selects how attributes are produced for a draft.
type CreationMode string

// Creation modes
const (
	ModeRolled CreationMode = "rolled"
	ModeManual CreationMode = "manual"
)

// Wizard steps. Creation is strictly linear; the caller controls navigation
// and is expected to block forward movement past any step holding an
// error-severity issue.
const (
	StepAge         = 1
	StepAttributes  = 2
	StepIdentity    = 3
	StepOccupation  = 4
	StepCredit      = 5
	StepSkills      = 6
	StepBackground  = 7
	StepEquipment   = 8
	StepCompanions  = 9
	StepSummary     = 10
	StepFirst       = StepAge
	StepLast        = StepSummary
)

// ReservedCreditRating is the pseudo-skill tracked in allocation maps but
// governed by the occupation's credit range rather than point budgets.
const ReservedCreditRating = "Credit Rating"

// OccupationSelection captures the player's occupation choices.
type OccupationSelection struct {
	Name         string
	CreditRating int
	// Skills are directly selected skill names.
	Skills []string
	// ChoiceGroups maps a group label to the skill(s) picked for it.
	ChoiceGroups map[string][]string
	// FormulaChoices maps a formula alternative-group index to the chosen
	// alternative identifier (e.g. "FUEx2"). Groups left out are resolved by
	// maximization.
	FormulaChoices map[int]string
}

// SkillAllocation holds the two point buckets, keyed by skill name.
type SkillAllocation struct {
	Occupation map[string]int
	Personal   map[string]int
}

// ComputedSkill is the per-skill breakdown shown on the sheet.
type ComputedSkill struct {
	Base    int
	Hard    int
	Extreme int
	Total   int
}

// Background holds the investigator's narrative fields. The engine carries
// them on the draft but never validates their content.
type Background struct {
	Description       string
	Ideology          string
	SignificantPeople string
	Locations         string
	Possessions       string
	Traits            string
}

// Draft is the aggregate creation snapshot owned by the caller. The engine
// treats it as read-only input: every operation returns derived data or
// issues and never mutates the draft.
type Draft struct {
	ID       string
	PlayerID string

	Mode          CreationMode
	Age           int
	LastRolledAge int
	AgePenalty    AgePenaltyAllocation
	Attributes    *Attributes
	Occupation    *OccupationSelection
	Skills        SkillAllocation

	Name       string
	Residence  string
	Birthplace string
	Background Background
	Equipment  []string
	Companions []string

	CreatedAt int64
	UpdatedAt int64
	ExpiresAt int64
}
