package services

import (
	"time"

	"backend/repository"
)

type ReportService struct {
	repo     *repository.ReportRepository
	cashRepo *repository.CashRepository
}

func NewReportService(repo *repository.ReportRepository, cashRepo *repository.CashRepository) *ReportService {
	return &ReportService{repo: repo, cashRepo: cashRepo}
}

type DailySummary struct {
	Date          string                    `json:"date"`
	Totals        *repository.SalesTotals   `json:"totals"`
	ByPayment     []repository.PaymentSplit `json:"byPayment"`
	TopItems      []repository.TopItem      `json:"topItems"`
	CountByStatus map[string]int64          `json:"countByStatus"`
	CashBalance   int64                     `json:"cashBalance"`
}

// Daily builds the back-office dashboard for one calendar day.
func (s *ReportService) Daily(day time.Time) (*DailySummary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	totals, err := s.repo.CompletedTotals(from, to)
	if err != nil {
		return nil, err
	}
	byPayment, err := s.repo.RevenueByPaymentMethod(from, to)
	if err != nil {
		return nil, err
	}
	topItems, err := s.repo.TopItems(from, to, 10)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repo.CountByStatus(from, to)
	if err != nil {
		return nil, err
	}
	balance, err := s.cashRepo.Balance(&from, &to)
	if err != nil {
		return nil, err
	}

	return &DailySummary{
		Date:          from.Format("2006-01-02"),
		Totals:        totals,
		ByPayment:     byPayment,
		TopItems:      topItems,
		CountByStatus: byStatus,
		CashBalance:   balance,
	}, nil
}
