package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/stakevault/internal/domain"
)

func parseAmountArg(name, raw string) (domain.Amount, error) {
	amount, err := domain.ParseAmount(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, domain.ErrInvalidAmount)
	}
	return amount, nil
}

func parseBipsArg(name, raw string) (domain.Bips, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16)
	if err != nil || value >= uint64(domain.BIPS) {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, domain.ErrInvalidPercent)
	}
	return domain.Bips(value), nil
}

func parseUintArg(name, raw string) (uint64, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return value, nil
}

func parseBatchIDs(raw []string) ([]domain.BatchID, error) {
	ids := make([]domain.BatchID, 0, len(raw))
	for _, arg := range raw {
		id, err := parseUintArg("batch id", arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, domain.BatchID(id))
	}
	return ids, nil
}

func accountArg(args []string, fallback func() (domain.AccountID, error)) (domain.AccountID, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return domain.AccountID(strings.TrimSpace(args[0])), nil
	}
	return fallback()
}
