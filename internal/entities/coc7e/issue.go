package coc7e

// Severity classifies a validation issue. Errors block wizard progression;
// warnings are informational only.
type Severity string

// Issue severities
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue codes reported by the step and skill validators.
const (
	IssueAgeYouthPenaltyMismatch  = "AGE_YOUTH_PENALTY_MISMATCH"
	IssueAgeMaturePenaltyMismatch = "AGE_MATURE_PENALTY_MISMATCH"
	IssueAgeRollMismatch          = "AGE_ROLL_MISMATCH"
	IssueMissingOccupation        = "MISSING_OCCUPATION"
	IssueInvalidOccupationSkill   = "INVALID_OCCUPATION_SKILL"
	IssueForbiddenSkill           = "FORBIDDEN_SKILL"
	IssueOccupationPointsExceeded = "OCCUPATION_POINTS_EXCEEDED"
	IssueOccupationPointsPending  = "OCCUPATION_POINTS_PENDING"
	IssuePersonalPointsExceeded   = "PERSONAL_POINTS_EXCEEDED"
	IssuePersonalPointsPending    = "PERSONAL_POINTS_PENDING"
	IssueSkillCreationCapExceeded = "SKILL_CREATION_CAP_EXCEEDED"
	IssueSkillAbsoluteCapExceeded = "SKILL_ABSOLUTE_CAP_EXCEEDED"
)

// Issue is a single validation finding. Issues are returned values, never Go
// errors: an incomplete draft is a normal state, not a failure.
type Issue struct {
	Code     string
	Severity Severity
	Message  string
}

// Error creates an error-severity issue.
func Error(code, message string) Issue {
	return Issue{Code: code, Severity: SeverityError, Message: message}
}

// Warning creates a warning-severity issue.
func Warning(code, message string) Issue {
	return Issue{Code: code, Severity: SeverityWarning, Message: message}
}

// HasErrors reports whether any issue in the list carries error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
