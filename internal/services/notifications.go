package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/harentsoaR/beastfit-api/internal/logging"
	"github.com/harentsoaR/beastfit-api/internal/models"
)

const textbeltURL = "https://textbelt.com/text"

// NotificationService tells staff about new submissions and, when a
// Textbelt key is configured, texts the submitter an acknowledgement.
// Delivery runs in the background and never fails the request.
type NotificationService struct {
	log   logging.Logger
	staff Notifier

	textbeltKey string
	smsEndpoint string
	httpClient  *http.Client

	wg sync.WaitGroup
}

func NewNotificationService(log logging.Logger, staff Notifier, textbeltKey string) *NotificationService {
	return &NotificationService{
		log:         log,
		staff:       staff,
		textbeltKey: textbeltKey,
		smsEndpoint: textbeltURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *NotificationService) MembershipInquiryReceived(inq *models.MembershipInquiry) {
	plan := "unspecified"
	if inq.PlanType != nil && *inq.PlanType != "" {
		plan = *inq.PlanType
	}
	subject := fmt.Sprintf("New membership inquiry #%d (%s plan)", inq.ID, plan)
	body := formatSubmission(inq.Name, inq.Email, inq.Phone, inq.Interest, inq.Message)
	sms := fmt.Sprintf("Hi %s, thanks for your interest in our %s plan! Our team will call you shortly.", firstName(inq.Name), plan)

	s.dispatch(subject, body, inq.Phone, sms)
}

func (s *NotificationService) ContactMessageReceived(msg *models.ContactMessage) {
	subject := fmt.Sprintf("New contact message #%d (%s)", msg.ID, msg.Interest)
	body := formatSubmission(msg.Name, msg.Email, msg.Phone, msg.Interest, msg.Message)
	sms := fmt.Sprintf("Hi %s, we received your message and will get back to you soon.", firstName(msg.Name))

	s.dispatch(subject, body, msg.Phone, sms)
}

// Wait blocks until in-flight notifications finish.
func (s *NotificationService) Wait() {
	s.wg.Wait()
}

func (s *NotificationService) dispatch(subject, body, phone, sms string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.staff.Publish(ctx, subject, body); err != nil {
			s.log.Error(ctx, "staff notification failed", "subject", subject, "error", err)
		}
		if s.textbeltKey == "" || phone == "" {
			return
		}
		if err := s.sendSMS(ctx, phone, sms); err != nil {
			s.log.Warn(ctx, "sms not sent", "phone", phone, "error", err)
		} else {
			s.log.Info(ctx, "sms sent", "phone", phone)
		}
	}()
}

func (s *NotificationService) sendSMS(ctx context.Context, phone, message string) error {
	postBody, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.textbeltKey,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.smsEndpoint, bytes.NewReader(postBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode textbelt response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("textbelt: %s", result.Error)
	}
	return nil
}

func formatSubmission(name, email, phone, interest string, message *string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\nInterest: %s\n", name, email, phone, interest)
	if message != nil {
		fmt.Fprintf(&b, "Message: %s\n", *message)
	}
	return b.String()
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return "there"
}
