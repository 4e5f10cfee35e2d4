package status

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/bnema/stakevault/internal/application"
	"github.com/bnema/stakevault/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type RenderOptions struct {
	Now time.Time
}

// sectionRenderer draws one block of the status view below the header.
type sectionRenderer func(status application.Status, opts RenderOptions, s styles) string

var sectionRenderers = []sectionRenderer{
	func(status application.Status, _ RenderOptions, s styles) string { return renderPool(status, s) },
	func(status application.Status, _ RenderOptions, s styles) string { return renderParams(status, s) },
	func(status application.Status, _ RenderOptions, s styles) string { return renderAgents(status, s) },
	renderBatches,
}

func renderHeader(status application.Status, s styles) []string {
	return []string{
		s.title.Render("Staking Vault"),
		s.header.Render(fmt.Sprintf("vault: %s  batch: %d  as of: %s", status.Vault, status.CurrentBatch, formatTime(status.AsOf))),
	}
}

func renderPool(status application.Status, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.heading.Render("Pool"),
		keyValue(s, "total pooled", formatAmount(status.TotalPooled)),
		keyValue(s, "shares minted", formatAmount(status.TotalSharesMinted)),
		keyValue(s, "fee shares", formatAmount(status.VirtualShares)),
		keyValue(s, "total shares", formatAmount(status.TotalShares)),
		keyValue(s, "rate", formatRate(status.ValuePerScale)),
	)
}

func renderParams(status application.Status, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.heading.Render("Parameters"),
		keyValue(s, "fee", formatBips(status.FeePercentage)),
		keyValue(s, "incentive", formatBips(status.IncentivePercentage)),
		keyValue(s, "minimum stake", formatAmount(status.MinimumStake)),
		keyValue(s, "era", status.Era.String()),
		keyValue(s, "cooldown", status.CooldownPeriod.String()),
		keyValue(s, "owner", string(status.Roles.Owner)),
		keyValue(s, "fee role", string(status.Roles.AdjustFee)),
		keyValue(s, "fee admin", string(status.Roles.AdjustFeeAdmin)),
	)
}

func renderAgents(status application.Status, s styles) string {
	lines := []string{s.heading.Render(fmt.Sprintf("Agents (total weight %d)", status.TotalWeight))}
	if len(status.Agents) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No agents registered."))...)
	}

	for _, agent := range status.Agents {
		lines = append(lines, agentLine(agent, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func agentLine(agent application.AgentStatus, s styles) string {
	parts := []string{
		s.key.Render(fmt.Sprintf("%s w=%d", agent.Account, agent.Weight)),
		" ",
		renderProgressBar(fillPercent(agent.Staked, agent.Target), 20, s),
		" ",
		s.detail.Render(fmt.Sprintf("staked %s / target %s", formatAmount(agent.Staked), formatAmount(agent.Target))),
		" ",
		imbalanceStyle(agent.Imbalance, s).Render(formatImbalance(agent.Imbalance)),
	}
	if agent.Unbonding > 0 {
		parts = append(parts, " ", s.meta.Render(fmt.Sprintf("unbonding %s", formatAmount(agent.Unbonding))))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderBatches(status application.Status, opts RenderOptions, s styles) string {
	lines := []string{s.heading.Render("Unlock batches")}
	if len(status.Batches) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No unlock requests."))...)
	}

	for _, batch := range status.Batches {
		lines = append(lines, batchLine(batch, status, opts, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func batchLine(batch application.BatchInfo, status application.Status, opts RenderOptions, s styles) string {
	label := s.key.Render(fmt.Sprintf("batch %d:", batch.ID))
	shares := s.detail.Render(fmt.Sprintf("%s shares", formatAmount(batch.TotalShares)))

	if batch.ValueAtRedemption == nil || batch.RedemptionTime == nil {
		state := "pending"
		if batch.ID == status.CurrentBatch {
			state = "open"
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", shares, " ", s.meta.Render(state))
	}

	redeemableAt := batch.RedemptionTime.Add(status.CooldownPeriod)
	value := s.detail.Render(fmt.Sprintf("for %s", formatAmount(*batch.ValueAtRedemption)))
	cooldown := lipgloss.NewStyle().Foreground(cooldownColor(redeemableAt, opts.Now, status.CooldownPeriod))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		shares,
		" ",
		value,
		" ",
		cooldown.Render(fmt.Sprintf("(%s)", formatRedeemableRelative(redeemableAt, opts.Now))),
	)
}

func keyValue(s styles, key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+":"), " ", s.detail.Render(value))
}

func renderProgressBar(filledPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(filledPercent) / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func fillPercent(staked, target domain.Amount) float64 {
	if target == 0 {
		if staked == 0 {
			return 0
		}
		return 100
	}
	return float64(staked) / float64(target) * 100
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func imbalanceStyle(imbalance int64, s styles) lipgloss.Style {
	if imbalance < 0 {
		return s.warning
	}
	return s.meta
}

func formatImbalance(imbalance int64) string {
	switch {
	case imbalance > 0:
		return fmt.Sprintf("(+%s)", humanize.Comma(imbalance))
	case imbalance < 0:
		return fmt.Sprintf("(%s)", humanize.Comma(imbalance))
	default:
		return "(balanced)"
	}
}

func formatAmount(amount domain.Amount) string {
	if amount <= math.MaxInt64 {
		return humanize.Comma(int64(amount))
	}
	return humanize.BigComma(new(big.Int).SetUint64(uint64(amount)))
}

// formatRate prints base per share from the value of application.RateScale
// shares.
func formatRate(valuePerScale domain.Amount) string {
	scale := uint64(application.RateScale)
	return fmt.Sprintf("%d.%09d", uint64(valuePerScale)/scale, uint64(valuePerScale)%scale)
}

func formatBips(bips domain.Bips) string {
	return fmt.Sprintf("%d.%02d%%", bips/100, bips%100)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.UTC().Format(time.RFC3339)
}

func formatRedeemableRelative(redeemableAt, now time.Time) string {
	if now.IsZero() {
		return "redeemable from " + formatTime(redeemableAt)
	}

	if !redeemableAt.After(now) {
		return "redeemable now"
	}

	remaining := redeemableAt.Sub(now)
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		if hours < 1 {
			hours = 1
		}
		suffix := "hours"
		if hours == 1 {
			suffix = "hour"
		}
		return fmt.Sprintf("redeemable in %d %s (%s)", hours, suffix, redeemableAt.Format("15:04"))
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	suffix := "days"
	if days == 1 {
		suffix = "day"
	}

	return fmt.Sprintf("redeemable in %d %s (%s)", days, suffix, redeemableAt.Format("15:04 on 02 Jan"))
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp from 240 (faded) to 255 (bright white).
	baseColor := 240.0
	targetColor := 255.0

	interpolated := baseColor + (targetColor-baseColor)*normalized
	return lipgloss.Color(fmt.Sprintf("%d", int(interpolated)))
}

// cooldownColor brightens as the redeemable time approaches.
func cooldownColor(redeemableAt, now time.Time, cooldown time.Duration) lipgloss.Color {
	if now.IsZero() || !redeemableAt.After(now) {
		return lipgloss.Color("255")
	}

	remaining := redeemableAt.Sub(now)
	return interpolateColor(cooldown.Seconds()-remaining.Seconds(), 0, cooldown.Seconds())
}
