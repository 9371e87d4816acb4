package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
)

func fixedClock() func() time.Time {
	// 2026-03-18 14:30 UTC is a Wednesday; Vienna is UTC+1 before DST starts.
	return func() time.Time {
		return time.Date(2026, 3, 18, 14, 30, 0, 0, time.UTC)
	}
}

func TestAssembleWithoutCourse(t *testing.T) {
	assembler := NewContextAssembler(fixedClock())

	messages := assembler.Assemble("", "")
	require.Len(t, messages, 2)

	assert.Equal(t, types.MessageRoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, "Mittwoch")
	assert.Contains(t, messages[0].Content, "2026-03-18")
	assert.Contains(t, messages[0].Content, "15:30")
	assert.Contains(t, messages[0].Content, "Europe/Vienna")

	assert.Equal(t, types.MessageRoleSystem, messages[1].Role)
	assert.Contains(t, messages[1].Content, "TIM-Assistent")
	assert.Contains(t, messages[1].Content, "Rate niemals")
}

func TestAssembleWithSyllabus(t *testing.T) {
	assembler := NewContextAssembler(fixedClock())

	messages := assembler.Assemble("Innovation Management", "Exam: 2026-06-25, HS 1")
	require.Len(t, messages, 3)

	assert.Equal(t, types.MessageRoleSystem, messages[2].Role)
	assert.Contains(t, messages[2].Content, "Innovation Management")
	assert.Contains(t, messages[2].Content, "Exam: 2026-06-25, HS 1")
}

func TestAssembleSkipsSyllabusWithoutText(t *testing.T) {
	assembler := NewContextAssembler(fixedClock())

	// course detected but its syllabus was not retrievable
	messages := assembler.Assemble("Innovation Management", "")
	assert.Len(t, messages, 2)
}

func TestAssembleUsesSummerTime(t *testing.T) {
	assembler := NewContextAssembler(func() time.Time {
		// after the DST switch Vienna is UTC+2
		return time.Date(2026, 6, 25, 8, 0, 0, 0, time.UTC)
	})

	messages := assembler.Assemble("", "")
	assert.Contains(t, messages[0].Content, "10:00")
	assert.Contains(t, messages[0].Content, "Donnerstag")
}
