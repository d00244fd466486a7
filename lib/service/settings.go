package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/escrowhub/escrowhub.go/db/models"
)

const settingsRowID = 1

const (
	maxPlatformFeePercent = 10
	minPaymentTimeout     = 24 * time.Hour
)

// Settings returns a snapshot of the current escrow settings. The row is
// read as a whole, a reader can never observe a mix of two admin updates.
func (svc *EscrowService) Settings(ctx context.Context) (*models.Setting, error) {
	setting := &models.Setting{}
	err := svc.DB.NewSelect().Model(setting).Where("id = ?", settingsRowID).Limit(1).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return setting, nil
}

// InitSettings seeds the settings row from the environment defaults on first
// start. An existing row wins, redeploys do not clobber admin changes.
func (svc *EscrowService) InitSettings(ctx context.Context) error {
	_, err := svc.Settings(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	setting := &models.Setting{
		ID:                    settingsRowID,
		ArbitratorID:          svc.Config.ArbitratorID,
		TreasuryID:            svc.Config.TreasuryID,
		PlatformFeePercent:    svc.Config.PlatformFeePercent,
		PaymentTimeoutSeconds: svc.Config.PaymentTimeoutSeconds,
	}
	if err := validateSetting(setting); err != nil {
		return err
	}
	_, err = svc.DB.NewInsert().Model(setting).Exec(ctx)
	return err
}

func (svc *EscrowService) SetArbitrator(ctx context.Context, identity string) (*models.Setting, error) {
	if identity == "" {
		return nil, ErrInvalidSetting
	}
	return svc.updateSettings(ctx, func(s *models.Setting) {
		s.ArbitratorID = identity
	})
}

func (svc *EscrowService) SetPlatformFeePercent(ctx context.Context, percent int64) (*models.Setting, error) {
	if percent < 0 || percent > maxPlatformFeePercent {
		return nil, ErrInvalidSetting
	}
	return svc.updateSettings(ctx, func(s *models.Setting) {
		s.PlatformFeePercent = percent
	})
}

func (svc *EscrowService) SetPaymentTimeout(ctx context.Context, timeout time.Duration) (*models.Setting, error) {
	if timeout < minPaymentTimeout {
		return nil, ErrInvalidSetting
	}
	return svc.updateSettings(ctx, func(s *models.Setting) {
		s.PaymentTimeoutSeconds = int64(timeout / time.Second)
	})
}

// updateSettings applies one mutation to the settings row inside a
// transaction. Concurrent admin updates serialize on the row, the committed
// row is always one admin's complete write.
func (svc *EscrowService) updateSettings(ctx context.Context, mutate func(*models.Setting)) (*models.Setting, error) {
	setting := &models.Setting{}
	tx, err := svc.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	err = tx.NewSelect().Model(setting).Where("id = ?", settingsRowID).Limit(1).Scan(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	mutate(setting)
	if err := validateSetting(setting); err != nil {
		tx.Rollback()
		return nil, err
	}
	_, err = tx.NewUpdate().Model(setting).WherePK().Exec(ctx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return setting, nil
}

func validateSetting(s *models.Setting) error {
	if s.ArbitratorID == "" || s.TreasuryID == "" {
		return ErrInvalidSetting
	}
	if s.PlatformFeePercent < 0 || s.PlatformFeePercent > maxPlatformFeePercent {
		return ErrInvalidSetting
	}
	if s.PaymentTimeout() < minPaymentTimeout {
		return ErrInvalidSetting
	}
	return nil
}
