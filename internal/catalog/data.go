package catalog

// Default returns the stock Call of Cthulhu 7e creation dataset. Callers with
// a revised or translated rulebook hand the engine their own Catalog instead;
// nothing in the engine assumes these particular values.
func Default() *Catalog {
	return &Catalog{
		AttributeRolls: []AttributeRoll{
			{Attribute: "FUE", Spec: RollSpec{Count: 3, Sides: 6, Multiplier: 5}},
			{Attribute: "CON", Spec: RollSpec{Count: 3, Sides: 6, Multiplier: 5}},
			{Attribute: "TAM", Spec: RollSpec{Count: 2, Sides: 6, Plus: 6, Multiplier: 5}},
			{Attribute: "DES", Spec: RollSpec{Count: 3, Sides: 6, Multiplier: 5}},
			{Attribute: "APA", Spec: RollSpec{Count: 3, Sides: 6, Multiplier: 5}},
			{Attribute: "INT", Spec: RollSpec{Count: 2, Sides: 6, Plus: 6, Multiplier: 5}},
			{Attribute: "POD", Spec: RollSpec{Count: 3, Sides: 6, Multiplier: 5}},
			{Attribute: "EDU", Spec: RollSpec{Count: 2, Sides: 6, Plus: 6, Multiplier: 5}},
			{Attribute: "SUE", Spec: RollSpec{Count: 3, Sides: 6, Multiplier: 5}},
		},
		AgeBands: []AgeBand{
			{MinAge: 15, MaxAge: 19, PenaltyTotal: 5, EducationLoss: 5, Youth: true},
			{MinAge: 20, MaxAge: 39, EducationChecks: 1},
			{MinAge: 40, MaxAge: 49, PenaltyTotal: 5, AppearanceLoss: 5, EducationChecks: 2},
			{MinAge: 50, MaxAge: 59, PenaltyTotal: 10, AppearanceLoss: 10, EducationChecks: 3},
			{MinAge: 60, MaxAge: 69, PenaltyTotal: 20, AppearanceLoss: 15, EducationChecks: 4},
			{MinAge: 70, MaxAge: 79, PenaltyTotal: 40, AppearanceLoss: 20, EducationChecks: 4},
			{MinAge: 80, MaxAge: 89, PenaltyTotal: 80, AppearanceLoss: 25, EducationChecks: 4},
		},
		MoveRules: []MoveRule{
			{Strength: CompareBelowSize, Dexterity: CompareBelowSize, Rate: 7},
			{Strength: CompareAboveSize, Dexterity: CompareAboveSize, Rate: 9},
			{Strength: CompareAny, Dexterity: CompareAny, Rate: 8},
		},
		MovePenalties: []MovePenalty{
			{MinAge: 40, Penalty: 1},
			{MinAge: 50, Penalty: 2},
			{MinAge: 60, Penalty: 3},
			{MinAge: 70, Penalty: 4},
			{MinAge: 80, Penalty: 5},
		},
		BuildRanges: []BuildRange{
			{Min: 2, Max: 64, DamageBonus: "-2", Build: -2},
			{Min: 65, Max: 84, DamageBonus: "-1", Build: -1},
			{Min: 85, Max: 124, DamageBonus: "0", Build: 0},
			{Min: 125, Max: 164, DamageBonus: "+1D4", Build: 1},
			{Min: 165, Max: 204, DamageBonus: "+1D6", Build: 2},
		},
		BuildOverflow:        BuildOverflow{Span: 80, BuildStep: 1, DiceStep: 1, DieSides: 6},
		Skills:               defaultSkills(),
		Occupations:          defaultOccupations(),
		PersonalPointsFactor: 2,
		CreationSkillCap:     75,
		AbsoluteSkillCap:     99,
		HardDivisor:          2,
		ExtremeDivisor:       5,
	}
}

func defaultSkills() []Skill {
	return []Skill{
		{Name: "Accounting", Base: 5},
		{Name: "Anthropology", Base: 1},
		{Name: "Appraise", Base: 5},
		{Name: "Archaeology", Base: 1},
		{Name: "Art/Craft", Base: 5, Specializations: []string{
			"Art/Craft (Acting)",
			"Art/Craft (Painting)",
			"Art/Craft (Photography)",
			"Art/Craft (Forgery)",
		}},
		{Name: "Art/Craft (Acting)", Base: 5},
		{Name: "Art/Craft (Painting)", Base: 5},
		{Name: "Art/Craft (Photography)", Base: 5, Aliases: []string{"Photography"}},
		{Name: "Art/Craft (Forgery)", Base: 5, Aliases: []string{"Forgery"}},
		{Name: "Charm", Base: 15},
		{Name: "Climb", Base: 20},
		{Name: "Credit Rating", Base: 0, Aliases: []string{"Credit"}},
		{Name: "Cthulhu Mythos", Base: 0, Forbidden: true, Aliases: []string{"Mythos"}},
		{Name: "Disguise", Base: 5},
		{Name: "Dodge", BaseAttribute: "DES", BaseDivisor: 2},
		{Name: "Drive Auto", Base: 20, Aliases: []string{
			"Drive Automobile (or truck)",
			"Drive Automobile",
		}},
		{Name: "Electrical Repair", Base: 10},
		{Name: "Fast Talk", Base: 5, Aliases: []string{"Fast-Talk"}},
		{Name: "Fighting", Base: 25, Specializations: []string{
			"Fighting (Brawl)",
			"Fighting (Sword)",
			"Fighting (Axe)",
			"Fighting (Spear)",
			"Fighting (Whip)",
			"Fighting (Garrote)",
		}},
		{Name: "Fighting (Brawl)", Base: 25},
		{Name: "Fighting (Sword)", Base: 20},
		{Name: "Fighting (Axe)", Base: 15},
		{Name: "Fighting (Spear)", Base: 20},
		{Name: "Fighting (Whip)", Base: 5},
		{Name: "Fighting (Garrote)", Base: 15},
		{Name: "Firearms", Base: 20, Specializations: []string{
			"Firearms (Handgun)",
			"Firearms (Rifle/Shotgun)",
			"Firearms (Submachine Gun)",
			"Firearms (Machine Gun)",
			"Firearms (Bow)",
		}},
		{Name: "Firearms (Handgun)", Base: 20, Aliases: []string{"Handgun"}},
		{Name: "Firearms (Rifle/Shotgun)", Base: 25, Aliases: []string{"Rifle/Shotgun"}},
		{Name: "Firearms (Submachine Gun)", Base: 15},
		{Name: "Firearms (Machine Gun)", Base: 10},
		{Name: "Firearms (Bow)", Base: 15},
		{Name: "First Aid", Base: 30},
		{Name: "History", Base: 5},
		{Name: "Intimidate", Base: 15},
		{Name: "Jump", Base: 20},
		{Name: "Language (Own)", BaseAttribute: "EDU", Aliases: []string{"Own Language"}},
		{Name: "Language (Other)", Base: 1, Aliases: []string{"Other Language"}},
		{Name: "Law", Base: 5},
		{Name: "Library Use", Base: 20},
		{Name: "Listen", Base: 20},
		{Name: "Locksmith", Base: 1},
		{Name: "Mechanical Repair", Base: 10},
		{Name: "Medicine", Base: 1},
		{Name: "Natural World", Base: 10},
		{Name: "Navigate", Base: 10},
		{Name: "Occult", Base: 5},
		{Name: "Operate Heavy Machinery", Base: 1},
		{Name: "Persuade", Base: 10},
		{Name: "Pilot", Base: 1},
		{Name: "Psychoanalysis", Base: 1},
		{Name: "Psychology", Base: 10},
		{Name: "Ride", Base: 5},
		{Name: "Science", Base: 1, Specializations: []string{
			"Science (Biology)",
			"Science (Chemistry)",
			"Science (Physics)",
			"Science (Astronomy)",
			"Science (Pharmacy)",
		}},
		{Name: "Science (Biology)", Base: 1},
		{Name: "Science (Chemistry)", Base: 1},
		{Name: "Science (Physics)", Base: 1},
		{Name: "Science (Astronomy)", Base: 1},
		{Name: "Science (Pharmacy)", Base: 1},
		{Name: "Sleight of Hand", Base: 10},
		{Name: "Spot Hidden", Base: 25},
		{Name: "Stealth", Base: 20},
		{Name: "Survival", Base: 10},
		{Name: "Swim", Base: 20},
		{Name: "Throw", Base: 20},
		{Name: "Track", Base: 10},
	}
}

func defaultOccupations() []Occupation {
	return []Occupation{
		{
			Name: "Antiquarian",
			Skills: []string{
				"Appraise", "Art/Craft", "History", "Library Use",
				"Language (Other)", "Spot Hidden",
			},
			ChoiceGroups: []ChoiceGroup{
				{Label: "social", Count: 1, Options: []string{"Charm", "Fast Talk", "Intimidate", "Persuade"}},
				{Label: "personal", Count: 1, Options: []string{"Accounting", "Occult", "Law"}},
			},
			PointsFormula: "EDU x4",
			CreditMin:     30,
			CreditMax:     70,
		},
		{
			Name: "Athlete",
			Skills: []string{
				"Climb", "Jump", "Fighting (Brawl)", "Ride", "Swim", "Throw",
			},
			ChoiceGroups: []ChoiceGroup{
				{Label: "social", Count: 1, Options: []string{"Charm", "Fast Talk", "Intimidate", "Persuade"}},
			},
			PointsFormula: "EDU x2 + (DES x2 o FUE x2)",
			CreditMin:     9,
			CreditMax:     70,
		},
		{
			Name: "Criminal",
			Skills: []string{
				"Psychology", "Spot Hidden", "Stealth",
			},
			ChoiceGroups: []ChoiceGroup{
				{Label: "social", Count: 1, Options: []string{"Charm", "Fast Talk", "Intimidate", "Persuade"}},
				{Label: "trade", Count: 4, Options: []string{
					"Appraise", "Disguise", "Fighting", "Firearms",
					"Locksmith", "Mechanical Repair", "Sleight of Hand",
				}},
			},
			PointsFormula: "EDU x2 + (DES x2 o APA x2)",
			CreditMin:     5,
			CreditMax:     65,
		},
		{
			Name: "Dilettante",
			Skills: []string{
				"Art/Craft", "Firearms", "Language (Other)", "Ride",
			},
			ChoiceGroups: []ChoiceGroup{
				{Label: "social", Count: 1, Options: []string{"Charm", "Fast Talk", "Intimidate", "Persuade"}},
				{Label: "personal", Count: 3, Options: []string{
					"Appraise", "History", "Library Use", "Natural World",
					"Occult", "Photography",
				}},
			},
			PointsFormula: "APA x2 + EDU x2",
			CreditMin:     50,
			CreditMax:     99,
		},
		{
			Name: "Doctor of Medicine",
			Skills: []string{
				"First Aid", "Medicine", "Psychology", "Science (Biology)",
				"Science (Pharmacy)", "Language (Other)",
			},
			ChoiceGroups: []ChoiceGroup{
				{Label: "specialty", Count: 2, Options: []string{
					"Psychoanalysis", "Science (Chemistry)", "Law", "Persuade",
				}},
			},
			PointsFormula: "EDU x4",
			CreditMin:     30,
			CreditMax:     80,
		},
		{
			Name: "Journalist",
			Skills: []string{
				"Art/Craft (Acting)", "History", "Library Use",
				"Language (Own)", "Psychology",
			},
			ChoiceGroups: []ChoiceGroup{
				{Label: "social", Count: 1, Options: []string{"Charm", "Fast Talk", "Intimidate", "Persuade"}},
				{Label: "personal", Count: 2, Options: []string{
					"Photography", "Stealth", "Listen", "Spot Hidden",
				}},
			},
			PointsFormula: "EDU x4",
			CreditMin:     9,
			CreditMax:     30,
		},
		{
			Name: "Librarian",
			Skills: []string{
				"Accounting", "Library Use", "Language (Other)", "Language (Own)",
			},
			ChoiceGroups: []ChoiceGroup{
				{Label: "personal", Count: 4, Options: []string{
					"History", "Occult", "Law", "Natural World",
					"Psychology", "Spot Hidden",
				}},
			},
			PointsFormula: "EDU x4",
			CreditMin:     9,
			CreditMax:     35,
		},
		{
			Name: "Police Detective",
			Skills: []string{
				"Firearms", "Law", "Listen", "Psychology", "Spot Hidden",
			},
			ChoiceGroups: []ChoiceGroup{
				{Label: "social", Count: 1, Options: []string{"Charm", "Fast Talk", "Intimidate", "Persuade"}},
				{Label: "craft", Count: 1, Options: []string{"Art/Craft (Acting)", "Disguise"}},
			},
			PointsFormula: "EDU x2 + (DES x2 o FUE x2)",
			CreditMin:     20,
			CreditMax:     50,
		},
		{
			Name: "Private Investigator",
			Skills: []string{
				"Art/Craft (Photography)", "Disguise", "Law", "Library Use",
				"Psychology", "Spot Hidden",
			},
			ChoiceGroups: []ChoiceGroup{
				{Label: "social", Count: 1, Options: []string{"Charm", "Fast Talk", "Intimidate", "Persuade"}},
				{Label: "trade", Count: 1, Options: []string{
					"Fighting", "Firearms", "Locksmith", "Drive Auto",
				}},
			},
			PointsFormula: "EDU x2 + (DES x2 o FUE x2)",
			CreditMin:     9,
			CreditMax:     30,
		},
		{
			Name: "Professor",
			Skills: []string{
				"Library Use", "Language (Other)", "Language (Own)", "Psychology",
			},
			ChoiceGroups: []ChoiceGroup{
				{Label: "field", Count: 4, Options: []string{
					"History", "Archaeology", "Anthropology", "Occult",
					"Science", "Law", "Natural World",
				}},
			},
			PointsFormula: "EDU x4",
			CreditMin:     20,
			CreditMax:     70,
		},
	}
}
