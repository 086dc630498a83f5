package normalize

// Property kinds the candidate database uses. Anything else resolves to null.
const (
	kindTitle    = "title"
	kindRichText = "rich_text"
	kindSelect   = "select"
	kindNumber   = "number"
	kindCheckbox = "checkbox"
	kindDate     = "date"
	kindURL      = "url"
	kindFormula  = "formula"
	kindString   = "string"
	kindBoolean  = "boolean"
)

// Declared schema of the candidate database: every property the dashboard
// reads, by its human-readable field name. This is the one place the loose
// property bag meets typed code; a renamed column breaks here and nowhere
// else.
const (
	PropName               = "Name"
	PropRole               = "Role"
	PropStatus             = "Status"
	PropPriority           = "Priority"
	PropStratification     = "Stratification"
	PropInterviewStatus    = "Interview Status"
	PropHot                = "Hot Candidate"
	PropHoursSinceActivity = "Hours Since Last Activity"
	PropAIScore            = "AI Score"
	PropHumanScore         = "Human Score"
	PropDateAdded          = "Date Added"
	PropAIProcessedAt      = "AI Processed At"
	PropCVVerified         = "CV Verified by Lynn"
	PropPassedHumanFilter  = "Passed Human Filter"
	PropLinkedIn           = "LinkedIn Profile"
)
