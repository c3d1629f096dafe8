package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/masterdu/masterdu-backend/pkg/logger"
)

const (
	// ChatFallback replaces any transport or generation error; chat
	// failures never surface as error states.
	ChatFallback = "抱歉，系統繁忙，請直接聯絡我們。"
	// ChatEmptyReply stands in when the model returns nothing.
	ChatEmptyReply = "抱歉，我現在無法連接到宇宙能量，請稍後再試。"
)

const chatInstructionHeader = `
You are the AI Assistant for Master Du Qianzhang (杜乾彰師傅), a renowned Metaphysics and Feng Shui master in Hong Kong.
Your tone should be professional, wise, empathetic, and polite. You represent a high-end, luxury spiritual brand.
Use Traditional Chinese (Cantonese context permitted but keep it formal written Chinese mostly) for responses.

Knowledge Base:
1. Master Du combines traditional Chinese Metaphysics (Taoism, Feng Shui, I Ching) with Western Psychology (Hypnotherapy, NLP).
2. Membership Tiers: "Caring" ($6800), "Total Care" ($9800), "Supreme" ($12800). Mention specific benefits if asked.
3. Services: Rituals for Love (He He), Wealth, Karmic Debt, and Feng Shui for homes/offices.
4. Courses: Reiki, Tarot, Akashic Records, Six Ren (Liu Ren).

Strictly follow these rules:
- Do not make up prices. Refer to the data provided or ask the user to contact the master for a quote.
- If the user has a serious personal problem, offer empathy and suggest a consultation (Divination/Q&A) or a specific ritual.
- Emphasize the "scientific" and "psychological" approach Master Du takes, not just superstition.
- If asked about "Points", explain that 5000 points = $1 HKD.
`

// ReplyGenerator is the external text-generation call behind the chat
// widget, satisfied by the Gemini client in production.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, systemInstruction, message string) (string, error)
}

// ChatService forwards one user message plus the system instruction
// to the generation API. There is no server-side transcript, retry,
// or streaming; the widget holds the visible conversation.
type ChatService interface {
	Reply(ctx context.Context, message string) string
}

type chatService struct {
	generator   ReplyGenerator
	serviceRepo repository.ServiceRepository
	courseRepo  repository.CourseRepository
}

func NewChatService(
	generator ReplyGenerator,
	serviceRepo repository.ServiceRepository,
	courseRepo repository.CourseRepository,
) ChatService {
	return &chatService{
		generator:   generator,
		serviceRepo: serviceRepo,
		courseRepo:  courseRepo,
	}
}

func (s *chatService) Reply(ctx context.Context, message string) string {
	instruction := s.buildInstruction()

	reply, err := s.generator.GenerateReply(ctx, instruction, message)
	if err != nil {
		logger.Error("Chat generation failed", err)
		return ChatFallback
	}
	if reply == "" {
		return ChatEmptyReply
	}
	return reply
}

// buildInstruction appends the current catalog snapshot so the
// assistant quotes live names and prices rather than inventing them.
func (s *chatService) buildInstruction() string {
	services, err := s.serviceRepo.GetAll()
	if err != nil {
		logger.Warn("Chat instruction built without services", map[string]interface{}{
			"error": err.Error(),
		})
	}
	courses, err := s.courseRepo.GetAll()
	if err != nil {
		logger.Warn("Chat instruction built without courses", map[string]interface{}{
			"error": err.Error(),
		})
	}

	serviceLines := make([]string, 0, len(services))
	for _, item := range services {
		serviceLines = append(serviceLines, item.Name+" - $"+priceLabel(item.Price))
	}
	courseLines := make([]string, 0, len(courses))
	for _, item := range courses {
		courseLines = append(courseLines, item.Name+" - $"+priceLabel(item.Price))
	}

	servicesJSON, _ := json.Marshal(serviceLines)
	coursesJSON, _ := json.Marshal(courseLines)

	return fmt.Sprintf("%s\nCurrent available data context:\nServices: %s\nCourses: %s\n",
		chatInstructionHeader, servicesJSON, coursesJSON)
}

func priceLabel(p model.Price) string {
	if p.IsNumeric() {
		return strconv.FormatFloat(p.Amount(), 'f', -1, 64)
	}
	return p.Text()
}
