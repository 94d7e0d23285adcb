package verify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/evmscope/evmscope-backend/internal/classifier"
	"github.com/evmscope/evmscope-backend/internal/model"
)

var (
	// ErrInvalidRequest is returned by Accept for submissions missing the
	// address or the source code.
	ErrInvalidRequest = errors.New("invalid verification request")
	// ErrUnknownRequest is returned by Complete when no request exists for
	// the address.
	ErrUnknownRequest = errors.New("no verification request for address")
)

// Service runs the verification request lifecycle: Accept persists a pending
// record, Complete stores the collaborator's outcome and, on success, tags
// the contract's interfaces.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewService(store Store, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}

	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Accept records a verification request as pending. Re-submitting for the
// same address resets the record to pending.
func (s *Service) Accept(ctx context.Context, req Request) error {
	if req.Address == "" || req.SourceCode == "" {
		return ErrInvalidRequest
	}

	record := model.ContractVerification{
		Network:         req.Network,
		Address:         req.Address,
		ContractName:    req.ContractName,
		CompilerVersion: req.CompilerVersion,
		Optimization:    req.Optimization,
		SourceCode:      req.SourceCode,
		Status:          model.VerificationPending,
		UpdatedAt:       s.now().UTC(),
	}
	if err := s.store.UpsertVerification(ctx, record); err != nil {
		return fmt.Errorf("persist verification request: %w", err)
	}

	s.logger.Info("verification request accepted",
		zap.String("network", string(req.Network)),
		zap.String("address", req.Address),
	)
	return nil
}

// Complete records the outcome for a previously accepted request. A
// successful outcome stores the ABI and refreshes the contract's interface
// tags.
func (s *Service) Complete(ctx context.Context, network model.Network, address string, outcome Outcome) error {
	record, err := s.store.VerificationFor(ctx, network, address)
	if err != nil {
		return fmt.Errorf("load verification request: %w", err)
	}
	if record == nil {
		return ErrUnknownRequest
	}

	record.UpdatedAt = s.now().UTC()

	if !outcome.Success {
		record.Status = model.VerificationFailure
		record.Error = outcome.Error
		record.ABI = ""
		if err := s.store.UpsertVerification(ctx, *record); err != nil {
			return fmt.Errorf("persist verification outcome: %w", err)
		}
		return nil
	}

	names, err := FunctionNames(outcome.ABI)
	if err != nil {
		return fmt.Errorf("outcome abi: %w", err)
	}

	record.Status = model.VerificationSuccess
	record.Error = ""
	record.ABI = outcome.ABI
	if err := s.store.UpsertVerification(ctx, *record); err != nil {
		return fmt.Errorf("persist verification outcome: %w", err)
	}

	standards := classifier.Classify(names)
	if len(standards) == 0 {
		return nil
	}

	detected := s.now().UTC()
	tags := make([]model.InterfaceTag, 0, len(standards))
	for _, standard := range standards {
		tags = append(tags, model.InterfaceTag{
			Network:    network,
			Address:    address,
			Interface:  string(standard),
			DetectedAt: detected,
		})
	}
	if err := s.store.UpsertInterfaceTags(ctx, tags); err != nil {
		return fmt.Errorf("persist interface tags: %w", err)
	}

	s.logger.Info("contract verified",
		zap.String("address", address),
		zap.Int("tags", len(tags)),
	)
	return nil
}
