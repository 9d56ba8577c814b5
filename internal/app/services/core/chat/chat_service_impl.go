package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type chatService struct {
	mu       sync.RWMutex
	sessions map[string]*models.ChatSession
	Patients PatientFinder
	delay    time.Duration
	ttl      time.Duration
	now      func() time.Time
	Log      *zap.Logger
}

func NewChatService(patients PatientFinder, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.ChatService {
	return &chatService{
		sessions: make(map[string]*models.ChatSession),
		Patients: patients,
		delay:    internalConfig.Chat.ResponseDelay(),
		ttl:      internalConfig.Chat.SessionTTL(),
		now:      time.Now,
		Log:      logger,
	}
}

func (s *chatService) StartSession(ctx context.Context, patientID string) (*models.ChatSession, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("chatService.StartSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if _, err := s.Patients.FindPatient(ctx, patientID); err != nil {
		return nil, err
	}

	session := &models.ChatSession{
		ID:        utils.GenerateChatSessionID(),
		PatientID: patientID,
		StartedAt: s.now(),
		Messages:  []models.ChatMessage{},
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.Log.Info("chatService.StartSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return cloneSession(session), nil
}

func (s *chatService) GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrChatSessionNotFound(nil, sessionID)
	}
	return cloneSession(session), nil
}

// SendMessage records the user message right away and the bot reply after
// the configured delay. If ctx ends during the delay no reply is recorded.
func (s *chatService) SendMessage(ctx context.Context, sessionID, text string) (*responses.ChatExchange, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("chatService.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if strings.TrimSpace(text) == "" {
		return nil, exceptions.ErrChatMessageEmpty(nil)
	}

	userMessage := models.ChatMessage{
		ID:        utils.GenerateChatMessageID(),
		Text:      text,
		Sender:    constvars.ChatSenderUser,
		Timestamp: s.now(),
	}

	patientID, err := s.appendMessage(sessionID, userMessage)
	if err != nil {
		return nil, err
	}

	patient, err := s.Patients.FindPatient(ctx, patientID)
	if err != nil {
		s.Log.Warn("chatService.SendMessage patient lookup failed, answering generically",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		patient = nil
	}
	reply := Respond(patient, text)

	if err := s.wait(ctx); err != nil {
		s.Log.Warn("chatService.SendMessage cancelled before reply",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, exceptions.ErrServerDeadlineExceeded(err)
	}

	botMessage := models.ChatMessage{
		ID:        utils.GenerateChatMessageID(),
		Text:      reply,
		Sender:    constvars.ChatSenderBot,
		Timestamp: s.now(),
	}
	if _, err := s.appendMessage(sessionID, botMessage); err != nil {
		return nil, err
	}

	return &responses.ChatExchange{
		SessionID:   sessionID,
		UserMessage: userMessage,
		BotMessage:  botMessage,
	}, nil
}

func (s *chatService) EndSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return exceptions.ErrChatSessionNotFound(nil, sessionID)
	}
	delete(s.sessions, sessionID)

	s.Log.Info("chatService.EndSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

// Sweep drops sessions with no activity for the configured TTL and reports
// how many went.
func (s *chatService) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if now.Sub(lastActivity(session)) >= s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.Log.Info("chatService.Sweep removed idle sessions",
			zap.Int(constvars.LoggingSessionCountKey, removed),
		)
	}
	return removed
}

// StartCleanup sweeps on every interval until ctx is done.
func (s *chatService) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

func lastActivity(session *models.ChatSession) time.Time {
	if n := len(session.Messages); n > 0 {
		return session.Messages[n-1].Timestamp
	}
	return session.StartedAt
}

func (s *chatService) appendMessage(sessionID string, message models.ChatMessage) (patientID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return "", exceptions.ErrChatSessionNotFound(nil, sessionID)
	}
	session.Messages = append(session.Messages, message)
	return session.PatientID, nil
}

func (s *chatService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func cloneSession(session *models.ChatSession) *models.ChatSession {
	cloned := *session
	cloned.Messages = append([]models.ChatMessage{}, session.Messages...)
	return &cloned
}
