package prompt

// Mode selects which template and response contract apply.
type Mode string

const (
	ModeAdvice         Mode = "advice"
	ModeChat           Mode = "chat"
	ModeSummary        Mode = "summary"
	ModePredict        Mode = "predict"
	ModeScheduleAssist Mode = "schedule_assist"
)

// Display formats used inside prompts.
const (
	DateDisplayFormat = "Monday, January 2, 2006"
	TimeDisplayFormat = "3:04pm"
)

// Section headers and fixed instructions.
const (
	HeaderToday   = "Today's Tasks"
	HeaderHistory = "Past 7 Days History"
	HeaderGoals   = "Active Goals"
	HeaderRecent  = "Recent Conversation"

	InstructionAdvice = `Give one short, concrete piece of advice for balancing the rest of today. Two sentences maximum.`

	InstructionSummary = `Summarize how today went in one short paragraph: what got done, what the balance looks like, and one thing to carry into tomorrow.`

	InstructionPredict = `Based on the history above, predict tomorrow's likely balance score and name the single biggest risk to it. Keep it to three sentences.`

	InstructionChat = `Answer the user's question as their coach. If you want to propose tasks, embed each one as a directive on its own, in exactly this form:
[ACTION: CREATE_TASK | <title> | <ADULT|CHILD|REST> | <duration minutes> | <YYYY-MM-DD> | <HH:MM> | <projected score change like +2 or -1>]
The date and the trailing score change are optional fields. You may wrap private reasoning in a single <thought>...</thought> block; it will not be shown to the user.`

	InstructionScheduleAssist = `You schedule a single task. Reply with ONE line containing ONLY a JSON object with exactly these keys:
{"suggestedType": "ADULT|CHILD|REST", "suggestedDate": "YYYY-MM-DD", "suggestedTime": "HH:MM", "duration": <integer minutes>}
No markdown, no commentary, no extra keys.`
)
