package waitlist_module

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"backend/commons/apierrors"
	"backend/commons/enums"
	"backend/database/entities"
)

// Mailer sends the signup confirmation. Satisfied by mailer_module.Service.
type Mailer interface {
	SendConfirmation(name, email, company string) error
}

type Service struct {
	db     *gorm.DB
	mailer Mailer
	log    *zap.Logger
}

func NewService(db *gorm.DB, mailer Mailer, log *zap.Logger) *Service {
	return &Service{db: db, mailer: mailer, log: log}
}

// Submit validates and stores one submission, then fires the confirmation
// mail on a goroutine. The pre-insert lookup is only the friendly fast path
// for duplicates; the unique index on email is the authoritative guard, so a
// lost insert race still comes back as DUPLICATE_EMAIL.
func (s *Service) Submit(req SubmitRequest, meta RequestMeta) (uint, error) {
	req = Sanitize(req)
	if err := Validate(req); err != nil {
		return 0, err
	}

	var existing entities.Lead
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return 0, duplicateEmail()
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Error("waitlist: duplicate lookup failed", zap.Error(err))
		return 0, apierrors.Storage()
	}

	lead := entities.Lead{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Company:          req.Company,
		Plan:             req.Plan,
		BiggestChallenge: req.BiggestChallenge,
		IPAddress:        meta.IPAddress,
		UserAgent:        meta.UserAgent,
	}
	if err := s.db.Create(&lead).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, duplicateEmail()
		}
		s.log.Error("waitlist: insert failed", zap.Error(err))
		return 0, apierrors.Storage()
	}

	go func() {
		if err := s.mailer.SendConfirmation(lead.Name, lead.Email, lead.Company); err != nil {
			s.log.Warn("waitlist: confirmation mail failed",
				zap.String("email", lead.Email), zap.Error(err))
		}
	}()

	return lead.ID, nil
}

// Count is public, used by the site for social proof.
func (s *Service) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&entities.Lead{}).Count(&n).Error; err != nil {
		s.log.Error("waitlist: count failed", zap.Error(err))
		return 0, apierrors.Storage()
	}
	return n, nil
}

func duplicateEmail() error {
	return apierrors.Conflict(enums.DUPLICATE_EMAIL, "this email is already on the waitlist")
}
