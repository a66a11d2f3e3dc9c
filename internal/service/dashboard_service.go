package service

import (
	"context"
	"math"

	"nursery-api/internal/domain"
	"nursery-api/internal/repository"
)

// DashboardService derives aggregate statistics from an owner's record
// streams. Everything is recomputed on each call; nothing is cached.
type DashboardService interface {
	Stats(ctx context.Context, owner string) (*domain.DashboardStats, error)
}

type dashboardService struct {
	records repository.RecordRepository
}

func NewDashboardService(records repository.RecordRepository) DashboardService {
	return &dashboardService{records: records}
}

func (s *dashboardService) Stats(ctx context.Context, owner string) (*domain.DashboardStats, error) {
	totalReceived, err := s.sumQuantity(ctx, domain.KindSeedlingsReceived, owner)
	if err != nil {
		return nil, err
	}
	totalDead, err := s.sumQuantity(ctx, domain.KindDeadSeedlings, owner)
	if err != nil {
		return nil, err
	}
	totalDiscarded, err := s.sumQuantity(ctx, domain.KindDiscardedSeedlings, owner)
	if err != nil {
		return nil, err
	}
	totalProduced, err := s.sumQuantity(ctx, domain.KindNurseryProduced, owner)
	if err != nil {
		return nil, err
	}

	// May go negative when deaths and discards exceed inputs. That is a
	// data inconsistency worth seeing, so it is not clamped.
	totalInNursery := totalReceived + totalProduced - totalDead - totalDiscarded
	totalInput := totalReceived + totalProduced

	var survivalRate float64
	if totalInput > 0 {
		survivalRate = round2(float64(totalInNursery) / float64(totalInput) * 100)
	}

	return &domain.DashboardStats{
		TotalReceived:  totalReceived,
		TotalDead:      totalDead,
		TotalDiscarded: totalDiscarded,
		TotalProduced:  totalProduced,
		TotalInNursery: totalInNursery,
		SurvivalRate:   survivalRate,
	}, nil
}

func (s *dashboardService) sumQuantity(ctx context.Context, kind domain.RecordKind, owner string) (int, error) {
	records, err := s.records.ListByOwner(ctx, kind, owner)
	if err != nil {
		return 0, err
	}
	total := 0
	for i := range records {
		total += records[i].Quantity
	}
	return total, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
