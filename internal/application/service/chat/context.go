package chat

import (
	"fmt"
	"time"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/utils"
)

var germanWeekdays = map[time.Weekday]string{
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
	time.Sunday:    "Sonntag",
}

const personaPrompt = `Du bist der TIM-Assistent, der offizielle Chatbot für die TIM-Kurse (Technologie- und Innovationsmanagement).

Regeln:
- Du beantwortest ausschließlich Fragen rund um die TIM-Kurse: Organisation, Inhalte, Termine, Prüfungen und Abgaben. Für alles andere verweist du freundlich darauf, dass du nur für die TIM-Kurse zuständig bist.
- Wenn eine Frage von einem bestimmten Kurs abhängt und nicht eindeutig ist, welcher gemeint ist, stelle genau eine Rückfrage, welcher Kurs gemeint ist. Rate niemals.
- Antworte kurz und präzise, in einem freundlichen und professionellen Ton. Keine langen Absätze, wenn zwei Sätze reichen.
- Wenn du eine Antwort nicht sicher aus den bereitgestellten Unterlagen ableiten kannst, sage das offen und verweise auf die offizielle Kursseite oder die Kursleitung. Erfinde keine Termine, Räume oder Regeln.
- Antworte immer in der Sprache der letzten Nachricht des Nutzers.`

// ContextAssembler builds the synthetic system messages that precede every
// conversation sent to the model
type ContextAssembler struct {
	now func() time.Time
}

// NewContextAssembler creates an assembler on the given clock.
// Pass nil to use the wall clock.
func NewContextAssembler(now func() time.Time) *ContextAssembler {
	if now == nil {
		now = time.Now
	}
	return &ContextAssembler{now: now}
}

// Assemble produces the ordered synthetic context: the runtime-time message,
// the persona message, and — only when a course was detected and its syllabus
// text was retrievable — the syllabus message. The caller appends the original
// conversation unmodified after these.
func (a *ContextAssembler) Assemble(detectedCourse, syllabusText string) []types.Message {
	messages := []types.Message{
		{Role: types.MessageRoleSystem, Content: a.runtimeContext()},
		{Role: types.MessageRoleSystem, Content: personaPrompt},
	}
	if detectedCourse != "" && syllabusText != "" {
		messages = append(messages, types.Message{
			Role:    types.MessageRoleSystem,
			Content: syllabusContext(detectedCourse, syllabusText),
		})
	}
	return messages
}

func (a *ContextAssembler) runtimeContext() string {
	now := a.now().In(utils.ViennaLocation())
	return fmt.Sprintf(
		"Aktueller Zeitkontext: Heute ist %s, der %s, %s Uhr (Zeitzone %s). "+
			"Löse alle relativen Zeitangaben wie \"morgen\", \"nächste Woche\" oder \"in zwei Tagen\" "+
			"gegen genau diesen Zeitpunkt auf. Wenn eine frühere Nachricht ein anderes Datum oder eine "+
			"andere Uhrzeit behauptet, korrigiere sie anhand dieses Zeitkontexts.",
		germanWeekdays[now.Weekday()],
		utils.FormatViennaDate(now),
		utils.FormatViennaTime(now),
		utils.ReferenceTimezone,
	)
}

func syllabusContext(course, text string) string {
	return fmt.Sprintf(
		"Syllabus für den Kurs %q:\n\n%s\n\n"+
			"Beantworte organisatorische Fragen zu diesem Kurs ausschließlich auf Basis dieses Syllabus. "+
			"Steht die Antwort nicht darin, sage, dass die Information nicht vorliegt, und verweise auf die "+
			"offizielle Kursseite.",
		course, text,
	)
}
