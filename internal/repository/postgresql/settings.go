package postgresql

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/acctfirm/backoffice-go/internal/domain/settings"
	"github.com/acctfirm/backoffice-go/internal/pkg/database"
)

// settingsProviderImpl reads tunable calculation parameters from the
// app_settings key/value table. Any missing row or unparseable value falls
// back to the caller's default; calculations never fail on configuration.
type settingsProviderImpl struct {
	db     *database.DB
	logger *slog.Logger
}

func NewSettingsProvider(db *database.DB, logger *slog.Logger) settings.Provider {
	return &settingsProviderImpl{db: db, logger: logger}
}

func (p *settingsProviderImpl) Int(ctx context.Context, key string, def int64) int64 {
	raw, ok := p.lookup(ctx, key)
	if !ok {
		return def
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		p.logger.Warn("unparseable setting value, using default",
			slog.String("key", key), slog.String("value", raw))
		return def
	}
	return d.IntPart()
}

func (p *settingsProviderImpl) Decimal(ctx context.Context, key string, def decimal.Decimal) decimal.Decimal {
	raw, ok := p.lookup(ctx, key)
	if !ok {
		return def
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		p.logger.Warn("unparseable setting value, using default",
			slog.String("key", key), slog.String("value", raw))
		return def
	}
	return d
}

func (p *settingsProviderImpl) lookup(ctx context.Context, key string) (string, bool) {
	q := GetQuerier(ctx, p.db)

	var value string
	err := q.QueryRow(ctx, `SELECT value FROM app_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if err != pgx.ErrNoRows {
			p.logger.Warn("settings lookup failed, using default",
				slog.String("key", key), slog.Any("error", err))
		}
		return "", false
	}
	return value, true
}
