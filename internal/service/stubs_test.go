package service

import (
	"context"
	"errors"
	"sync"

	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/mail"
	"github.com/goldenpays/consultancy-api/internal/repository"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []mail.Message
	fail map[string]error
}

func (s *recordingSender) Send(_ context.Context, msg mail.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, to := range msg.To {
		if err, ok := s.fail[to]; ok {
			return err
		}
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) messages() []mail.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mail.Message(nil), s.sent...)
}

// failingInquiryRepo rejects every write.
type failingInquiryRepo struct {
	repository.InquiryRepository
}

func (failingInquiryRepo) Create(context.Context, *domain.Inquiry) error {
	return errors.New("disk full")
}
