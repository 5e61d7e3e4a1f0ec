// Package model contains the Olympic table rows passed between layers.
package model

import (
	"errors"
	"strings"
)

// Tier is a medal tier.
type Tier string

// The three medal tiers, in podium order.
const (
	Gold   Tier = "Gold"
	Silver Tier = "Silver"
	Bronze Tier = "Bronze"
)

// ErrUnknownTier is returned by ParseTier for values outside Gold, Silver and Bronze.
var ErrUnknownTier = errors.New("unknown medal tier")

// Tiers returns the tiers in podium order.
func Tiers() []Tier { return []Tier{Gold, Silver, Bronze} }

// ParseTier accepts "Gold", "gold" or the source form "Gold Medal".
func ParseTier(s string) (Tier, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), " Medal"))
	for _, t := range Tiers() {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", ErrUnknownTier
}
