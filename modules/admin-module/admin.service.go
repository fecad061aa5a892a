package admin_module

import (
	"bytes"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"backend/commons/apierrors"
	"backend/database/entities"
)

const csvHeader = "ID,Name,Email,Phone,Company,Plan,Biggest Challenge,Created At,IP Address"

type PlanCount struct {
	Plan  string `json:"plan"`
	Count int64  `json:"count"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int64  `json:"count"`
}

type StatsResponse struct {
	Total        int64          `json:"total"`
	ByPlan       []PlanCount    `json:"byPlan"`
	Recent7Days  int64          `json:"recent7Days"`
	TopCompanies []CompanyCount `json:"topCompanies"`
	Timestamp    time.Time      `json:"timestamp"`
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// ListAll returns every lead, newest first.
func (s *Service) ListAll() ([]entities.Lead, error) {
	leads := []entities.Lead{}
	if err := s.db.Order("created_at DESC").Find(&leads).Error; err != nil {
		s.log.Error("admin: list failed", zap.Error(err))
		return nil, apierrors.Storage()
	}
	return leads, nil
}

// Stats aggregates totals, per-plan counts (empty plans excluded), signups in
// the trailing 7 days and the top 5 companies by lead count.
func (s *Service) Stats() (*StatsResponse, error) {
	stats := &StatsResponse{
		ByPlan:       []PlanCount{},
		TopCompanies: []CompanyCount{},
		Timestamp:    time.Now().UTC(),
	}
	leadModel := func() *gorm.DB { return s.db.Model(&entities.Lead{}) }

	if err := leadModel().Count(&stats.Total).Error; err != nil {
		return nil, s.statsErr(err)
	}
	if err := leadModel().
		Select("plan, count(*) as count").
		Where("plan <> ''").
		Group("plan").
		Order("count DESC").
		Scan(&stats.ByPlan).Error; err != nil {
		return nil, s.statsErr(err)
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := leadModel().Where("created_at >= ?", weekAgo).Count(&stats.Recent7Days).Error; err != nil {
		return nil, s.statsErr(err)
	}
	if err := leadModel().
		Select("company, count(*) as count").
		Group("company").
		Order("count DESC, company ASC").
		Limit(5).
		Scan(&stats.TopCompanies).Error; err != nil {
		return nil, s.statsErr(err)
	}
	return stats, nil
}

func (s *Service) statsErr(err error) error {
	s.log.Error("admin: stats query failed", zap.Error(err))
	return apierrors.Storage()
}

// ExportCSV renders every lead (newest first) as CSV with a fixed header row.
// Embedded quotes and commas are escaped per RFC 4180.
func (s *Service) ExportCSV() (string, error) {
	leads, err := s.ListAll()
	if err != nil {
		return "", err
	}
	if len(leads) == 0 {
		return csvHeader + "\n", nil
	}

	n := len(leads)
	ids := make([]int, n)
	names := make([]string, n)
	emails := make([]string, n)
	phones := make([]string, n)
	companies := make([]string, n)
	plans := make([]string, n)
	challenges := make([]string, n)
	createds := make([]string, n)
	ips := make([]string, n)
	for i, lead := range leads {
		ids[i] = int(lead.ID)
		names[i] = lead.Name
		emails[i] = lead.Email
		phones[i] = lead.Phone
		companies[i] = lead.Company
		plans[i] = lead.Plan
		challenges[i] = lead.BiggestChallenge
		createds[i] = lead.CreatedAt.UTC().Format(time.RFC3339)
		ips[i] = lead.IPAddress
	}

	df := dataframe.New(
		series.New(ids, series.Int, "ID"),
		series.New(names, series.String, "Name"),
		series.New(emails, series.String, "Email"),
		series.New(phones, series.String, "Phone"),
		series.New(companies, series.String, "Company"),
		series.New(plans, series.String, "Plan"),
		series.New(challenges, series.String, "Biggest Challenge"),
		series.New(createds, series.String, "Created At"),
		series.New(ips, series.String, "IP Address"),
	)
	if df.Err != nil {
		s.log.Error("admin: export dataframe failed", zap.Error(df.Err))
		return "", apierrors.Storage()
	}
	var buf bytes.Buffer
	if err := df.WriteCSV(&buf); err != nil {
		s.log.Error("admin: export write failed", zap.Error(err))
		return "", apierrors.Storage()
	}
	return buf.String(), nil
}
