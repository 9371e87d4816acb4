// Package chat coordinates a chat request end to end: course detection,
// disambiguation, context assembly and the model call.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/application/service/syllabus"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/logger"
	chatmodel "github.com/maximilianstepf/Tim-Chatbot-Backend/internal/models/chat"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types/interfaces"
)

// Service implements the ChatService interface
type Service struct {
	syllabi   interfaces.SyllabusService
	model     chatmodel.Chat
	assembler *ContextAssembler
}

// NewService creates the request-level chat orchestrator
func NewService(syllabi interfaces.SyllabusService, model chatmodel.Chat, assembler *ContextAssembler) *Service {
	return &Service{
		syllabi:   syllabi,
		model:     model,
		assembler: assembler,
	}
}

// Chat validates the conversation, runs course detection against its last
// user message and either short-circuits with a clarification question or
// assembles the full context and calls the model.
//
// Index and syllabus fetch failures degrade to "no syllabus context" and
// never fail the request; only validation and the model call are fatal.
func (s *Service) Chat(ctx context.Context, messages []types.Message) (string, error) {
	if err := (types.ChatRequest{Messages: messages}).Validate(); err != nil {
		return "", err
	}

	lastUser := types.LastUserText(messages)

	index, err := s.syllabi.GetIndex(ctx)
	if err != nil {
		logger.Warnf(ctx, "course index unavailable, continuing without syllabus context: %v", err)
		index = nil
	}

	course, detected := syllabus.Detect(index, lastUser)

	if !detected && index != nil && len(index.Courses) > 1 && syllabus.NeedsCourseContext(lastUser) {
		logger.Info(ctx, "course-dependent question without resolved course, asking for clarification")
		return clarificationReply(index.Names()), nil
	}

	var syllabusText string
	if detected {
		if meta, ok := index.Lookup(course); ok && meta.SyllabusURL != "" {
			text, err := s.syllabi.GetSyllabusText(ctx, meta.SyllabusURL)
			if err != nil {
				logger.Warnf(ctx, "syllabus for %q unavailable: %v", course, err)
			} else {
				syllabusText = text
			}
		}
	}

	synthetic := s.assembler.Assemble(course, syllabusText)
	outbound := make([]types.Message, 0, len(synthetic)+len(messages))
	outbound = append(outbound, synthetic...)
	outbound = append(outbound, messages...)

	reply, err := s.model.Chat(ctx, outbound)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return reply, nil
}

func clarificationReply(courses []string) string {
	return fmt.Sprintf("Für welchen TIM-Kurs meinst du das? (%s)", strings.Join(courses, " / "))
}
