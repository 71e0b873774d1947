package coc7e

// Attribute mnemonics used by occupation point formulas. The catalog and the
// formula DSL speak these short names (the rulebook's Spanish abbreviations),
// so they are the canonical keys for attribute lookups.
const (
	AttrStrength     = "FUE"
	AttrConstitution = "CON"
	AttrSize         = "TAM"
	AttrDexterity    = "DES"
	AttrAppearance   = "APA"
	AttrIntelligence = "INT"
	AttrPower        = "POD"
	AttrEducation    = "EDU"
	AttrLuck         = "SUE"
)

// Attributes holds the nine core characteristics of an investigator.
// Each value is expected to be in the 1-99 range once generation completes.
type Attributes struct {
	Strength     int
	Constitution int
	Size         int
	Dexterity    int
	Appearance   int
	Intelligence int
	Power        int
	Education    int
	Luck         int
}

// Table returns the attributes keyed by formula mnemonic.
func (a *Attributes) Table() map[string]int {
	if a == nil {
		return map[string]int{}
	}
	return map[string]int{
		AttrStrength:     a.Strength,
		AttrConstitution: a.Constitution,
		AttrSize:         a.Size,
		AttrDexterity:    a.Dexterity,
		AttrAppearance:   a.Appearance,
		AttrIntelligence: a.Intelligence,
		AttrPower:        a.Power,
		AttrEducation:    a.Education,
		AttrLuck:         a.Luck,
	}
}

// AgePenaltyAllocation distributes the mandatory age penalty points chosen by
// the player. Youth deductions apply below the adulthood threshold and must
// sum to the youth band's required total; mature deductions apply from the
// first mature band onward and must sum to the band's required total. The
// engine never clamps these silently: mismatches surface as step issues.
type AgePenaltyAllocation struct {
	YouthStrength int
	YouthSize     int

	MatureStrength     int
	MatureConstitution int
	MatureDexterity    int
}

// YouthTotal returns the points distributed for the youth band.
func (a AgePenaltyAllocation) YouthTotal() int {
	return a.YouthStrength + a.YouthSize
}

// MatureTotal returns the points distributed for the mature bands.
func (a AgePenaltyAllocation) MatureTotal() int {
	return a.MatureStrength + a.MatureConstitution + a.MatureDexterity
}
