package inquiry

import (
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cnk-ceneka/cnk/internal/i18n"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid inquiry")

// Field limits, in characters.
const (
	MaxName    = 120
	MaxEmail   = 254
	MaxPhone   = 30
	MaxMessage = 4000
)

// ValidationError lists the offending fields with a short reason each.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrInvalid, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Input is an unvalidated submission.
type Input struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID *int64
	Lang       i18n.Lang
	RemoteIP   string
}

// Validate trims the input in place and checks every field.
func (in *Input) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)

	fields := map[string]string{}

	switch {
	case in.Name == "":
		fields["name"] = "required"
	case utf8.RuneCountInString(in.Name) > MaxName:
		fields["name"] = "too long"
	}

	switch {
	case in.Email == "":
		fields["email"] = "required"
	case len(in.Email) > MaxEmail:
		fields["email"] = "too long"
	default:
		addr, err := mail.ParseAddress(in.Email)
		if err != nil || addr.Address != in.Email {
			fields["email"] = "not an address"
		}
	}

	if utf8.RuneCountInString(in.Phone) > MaxPhone {
		fields["phone"] = "too long"
	} else if in.Phone != "" && strings.Trim(in.Phone, "+0123456789 -()") != "" {
		fields["phone"] = "not a phone number"
	}

	switch {
	case in.Message == "":
		fields["message"] = "required"
	case utf8.RuneCountInString(in.Message) > MaxMessage:
		fields["message"] = "too long"
	}

	if in.PropertyID != nil && *in.PropertyID <= 0 {
		fields["property_id"] = "must be positive"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Notifier delivers new inquiries to the office.
type Notifier interface {
	Recipients() []string
	Notify(inq *Inquiry) error
}

// Service accepts contact form submissions.
type Service struct {
	repo     *Repository
	notifier Notifier
}

// NewService creates a service. notifier may be nil when mail is not set up.
func NewService(repo *Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Submit validates, stores and announces an inquiry. A failed notification
// is logged and recorded but does not fail the submission.
func (s *Service) Submit(in Input) (*Inquiry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	lang, ok := i18n.ParseLang(string(in.Lang))
	if !ok {
		lang = i18n.Default
	}

	inq, err := s.repo.Add(&Inquiry{
		Reference:  NewReference(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Message:    in.Message,
		PropertyID: in.PropertyID,
		Lang:       string(lang),
		RemoteIP:   in.RemoteIP,
	})
	if err != nil {
		return nil, fmt.Errorf("saving inquiry: %w", err)
	}
	slog.Info("inquiry received", "id", inq.ID, "reference", inq.Reference)

	s.notify(inq)
	return inq, nil
}

func (s *Service) notify(inq *Inquiry) {
	if s.notifier == nil || len(s.notifier.Recipients()) == 0 {
		return
	}

	status, errText := StatusSent, ""
	if err := s.notifier.Notify(inq); err != nil {
		slog.Error("inquiry notification failed", "reference", inq.Reference, "error", err)
		status, errText = StatusFailed, err.Error()
	}

	for _, to := range s.notifier.Recipients() {
		if err := s.repo.RecordNotification(inq.ID, to, status, errText); err != nil {
			slog.Error("recording inquiry notification", "reference", inq.Reference, "error", err)
		}
	}
}

// List returns stored inquiries newest first.
func (s *Service) List(limit int) ([]*Inquiry, error) {
	return s.repo.List(limit)
}

// Get returns an inquiry by its public reference.
func (s *Service) Get(ref string) (*Inquiry, error) {
	return s.repo.GetByReference(strings.ToUpper(strings.TrimSpace(ref)))
}

// Notifications returns the delivery log of an inquiry.
func (s *Service) Notifications(inq *Inquiry) ([]*Notification, error) {
	return s.repo.Notifications(inq.ID)
}

// Delete removes the inquiry with the given reference and its delivery log.
func (s *Service) Delete(ref string) error {
	inq, err := s.Get(ref)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(inq.ID); err != nil {
		return err
	}
	slog.Info("inquiry deleted", "reference", inq.Reference)
	return nil
}

// NewReference returns a short public reference such as "CNK-1A2B3C4D".
func NewReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "CNK-" + strings.ToUpper(id[:8])
}
