package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
)

type fakeSyllabi struct {
	index    *types.CourseIndex
	indexErr error
	texts    map[string]string
	textErr  error
}

func (f *fakeSyllabi) GetIndex(ctx context.Context) (*types.CourseIndex, error) {
	if f.indexErr != nil {
		return nil, f.indexErr
	}
	return f.index, nil
}

func (f *fakeSyllabi) GetSyllabusText(ctx context.Context, url string) (string, error) {
	if f.textErr != nil {
		return "", f.textErr
	}
	return f.texts[url], nil
}

type fakeModel struct {
	calls int
	got   []types.Message
	reply string
	err   error
}

func (f *fakeModel) Chat(ctx context.Context, messages []types.Message) (string, error) {
	f.calls++
	f.got = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func twoCourseIndex() *types.CourseIndex {
	return &types.CourseIndex{Courses: []types.Course{
		{Name: "A", Meta: types.CourseMeta{}},
		{Name: "B", Meta: types.CourseMeta{}},
	}}
}

func userSays(text string) []types.Message {
	return []types.Message{{Role: types.MessageRoleUser, Content: text}}
}

func TestChatAsksForClarificationWithoutModelCall(t *testing.T) {
	model := &fakeModel{reply: "should not be used"}
	svc := NewService(&fakeSyllabi{index: twoCourseIndex()}, model, NewContextAssembler(fixedClock()))

	reply, err := svc.Chat(context.Background(), userSays("When is the exam?"))
	require.NoError(t, err)
	assert.Equal(t, "Für welchen TIM-Kurs meinst du das? (A / B)", reply)
	assert.Equal(t, 0, model.calls, "clarification must short-circuit the model call")
}

func TestChatAssemblesFullContextForDetectedCourse(t *testing.T) {
	syllabi := &fakeSyllabi{
		index: &types.CourseIndex{Courses: []types.Course{
			{Name: "Innovation Management", Meta: types.CourseMeta{
				Aliases:     []string{"TIM 1"},
				SyllabusURL: "https://example.edu/tim1.md",
			}},
			{Name: "Technology Strategy", Meta: types.CourseMeta{}},
		}},
		texts: map[string]string{"https://example.edu/tim1.md": "Exam: 2026-06-25"},
	}
	model := &fakeModel{reply: "Die Prüfung ist am 25.06.2026."}
	svc := NewService(syllabi, model, NewContextAssembler(fixedClock()))

	conversation := userSays("Wann ist die Prüfung in TIM 1?")
	reply, err := svc.Chat(context.Background(), conversation)
	require.NoError(t, err)
	assert.Equal(t, "Die Prüfung ist am 25.06.2026.", reply)

	require.Len(t, model.got, 4)
	assert.Contains(t, model.got[0].Content, "Zeitkontext")
	assert.Contains(t, model.got[1].Content, "TIM-Assistent")
	assert.Contains(t, model.got[2].Content, "Innovation Management")
	assert.Contains(t, model.got[2].Content, "Exam: 2026-06-25")
	assert.Equal(t, conversation[0], model.got[3], "original conversation must be appended unmodified")
}

func TestChatDegradesWhenIndexUnavailable(t *testing.T) {
	syllabi := &fakeSyllabi{indexErr: &types.UpstreamFetchError{URL: "x", Err: errors.New("boom")}}
	model := &fakeModel{reply: "Hallo!"}
	svc := NewService(syllabi, model, NewContextAssembler(fixedClock()))

	reply, err := svc.Chat(context.Background(), userSays("When is the exam?"))
	require.NoError(t, err, "index failure must not fail the chat request")
	assert.Equal(t, "Hallo!", reply)

	// only runtime + persona precede the conversation
	require.Len(t, model.got, 3)
	assert.Contains(t, model.got[0].Content, "Zeitkontext")
	assert.Contains(t, model.got[1].Content, "TIM-Assistent")
}

func TestChatDegradesWhenSyllabusUnavailable(t *testing.T) {
	syllabi := &fakeSyllabi{
		index: &types.CourseIndex{Courses: []types.Course{
			{Name: "A", Meta: types.CourseMeta{SyllabusURL: "https://example.edu/a.md"}},
		}},
		textErr: errors.New("timeout"),
	}
	model := &fakeModel{reply: "ok"}
	svc := NewService(syllabi, model, NewContextAssembler(fixedClock()))

	_, err := svc.Chat(context.Background(), userSays("what is covered in a?"))
	require.NoError(t, err)
	require.Len(t, model.got, 3, "no syllabus message when the text was not retrievable")
}

func TestChatSingleCourseIndexIsNeverAmbiguous(t *testing.T) {
	syllabi := &fakeSyllabi{index: &types.CourseIndex{Courses: []types.Course{
		{Name: "A", Meta: types.CourseMeta{}},
	}}}
	model := &fakeModel{reply: "answer"}
	svc := NewService(syllabi, model, NewContextAssembler(fixedClock()))

	reply, err := svc.Chat(context.Background(), userSays("When is the exam?"))
	require.NoError(t, err)
	assert.Equal(t, "answer", reply)
	assert.Equal(t, 1, model.calls)
}

func TestChatDetectionUsesLastUserMessage(t *testing.T) {
	syllabi := &fakeSyllabi{index: twoCourseIndex()}
	model := &fakeModel{reply: "ok"}
	svc := NewService(syllabi, model, NewContextAssembler(fixedClock()))

	// the earlier user message matches course B, the last one matches A
	messages := []types.Message{
		{Role: types.MessageRoleUser, Content: "tell me about b"},
		{Role: types.MessageRoleAssistant, Content: "sure"},
		{Role: types.MessageRoleUser, Content: "when is the a exam?"},
	}
	_, err := svc.Chat(context.Background(), messages)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(model.got), 3)
}

func TestChatRejectsInvalidConversations(t *testing.T) {
	svc := NewService(&fakeSyllabi{}, &fakeModel{}, NewContextAssembler(fixedClock()))

	cases := [][]types.Message{
		nil,
		{},
		{{Role: "robot", Content: "hi"}},
		{{Role: types.MessageRoleUser, Content: ""}},
	}
	for _, messages := range cases {
		_, err := svc.Chat(context.Background(), messages)
		assert.ErrorIs(t, err, types.ErrInvalidRequest)
	}
}

func TestChatModelFailureIsFatal(t *testing.T) {
	syllabi := &fakeSyllabi{index: twoCourseIndex()}
	model := &fakeModel{err: &types.UpstreamLLMError{Err: errors.New("rate limited")}}
	svc := NewService(syllabi, model, NewContextAssembler(fixedClock()))

	_, err := svc.Chat(context.Background(), userSays("hello"))
	var llmErr *types.UpstreamLLMError
	assert.ErrorAs(t, err, &llmErr)
}
