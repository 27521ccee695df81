package economy

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dayMillis     = 24 * 60 * 60 * 1000
	twoDaysMillis = 2 * dayMillis
)

// Cooldown returns the remaining wait for an activity, zero when usable.
func Cooldown(u *UserRecord, key string) time.Duration {
	until := u.Cooldowns[key]
	remain := until - nowMillis()
	if remain <= 0 {
		return 0
	}
	return time.Duration(remain) * time.Millisecond
}

// SetCooldown marks an activity unusable for the given duration.
func SetCooldown(u *UserRecord, key string, d time.Duration) {
	if u.Cooldowns == nil {
		u.Cooldowns = make(map[string]int64)
	}
	if d < 0 {
		d = 0
	}
	u.Cooldowns[key] = nowMillis() + d.Milliseconds()
}

// AddWallet applies a delta to the in-hand balance, clamping at zero.
func AddWallet(u *UserRecord, delta int64) {
	u.Wallet = max(0, u.Wallet+delta)
}

// AddBank applies a delta to the stored balance, clamping at zero.
func AddBank(u *UserRecord, delta int64) {
	u.Bank = max(0, u.Bank+delta)
}

func TotalWealth(u *UserRecord) int64 {
	return u.Wallet + u.Bank
}

// ComputeExp derives experience from activity counters plus a wealth bonus.
func ComputeExp(u *UserRecord) int64 {
	var exp int64
	for _, v := range u.Stats {
		if v > 0 {
			exp += v
		}
	}
	wealth := TotalWealth(u)
	if wealth > 0 {
		exp += wealth / 250000
	}
	return exp
}

func LevelFromExp(exp int64) int64 {
	if exp < 0 {
		exp = 0
	}
	return int64(math.Sqrt(float64(exp) / 10))
}

func ExpForNextLevel(level int64) int64 {
	if level < 0 {
		level = 0
	}
	return (level + 1) * (level + 1) * 10
}

// WithinDayWindow reports whether lastAt is less than 24h ago.
func WithinDayWindow(lastAt int64) bool {
	return nowMillis()-lastAt < dayMillis
}

// StreakResetNeeded reports whether a daily streak has lapsed (over 48h).
func StreakResetNeeded(lastAt int64) bool {
	return lastAt > 0 && nowMillis()-lastAt > twoDaysMillis
}

var amountPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)([kmb])?$`)

// ParseAmount reads user-typed amounts: plain numbers, k/m/b suffixes
// ("250k", "1.5m") and "all"/"todo" meaning the caller-provided maximum.
// Returns (0, false) for anything non-positive or unreadable.
func ParseAmount(input string, maxAmount int64) (int64, bool) {
	raw := strings.ToLower(strings.TrimSpace(input))
	if raw == "" {
		return 0, false
	}
	switch raw {
	case "all", "todo", "toda", "t":
		return maxAmount, true
	}

	m := amountPattern.FindStringSubmatch(raw)
	if m == nil {
		num, err := strconv.ParseFloat(strings.NewReplacer(",", "", " ", "").Replace(raw), 64)
		if err != nil || num <= 0 || math.IsInf(num, 0) {
			return 0, false
		}
		return int64(math.Floor(num)), true
	}

	base, err := strconv.ParseFloat(m[1], 64)
	if err != nil || base <= 0 {
		return 0, false
	}
	mult := 1.0
	switch m[2] {
	case "k":
		mult = 1e3
	case "m":
		mult = 1e6
	case "b":
		mult = 1e9
	}
	return int64(math.Floor(base * mult)), true
}

// FormatMoney renders an amount with thousands separators and the currency
// glyph, e.g. ¥1,250,000.
func FormatMoney(amount int64) string {
	n := amount
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%s¥%s", sign, b.String())
}

// FormatDuration renders a wait time in at most two units, e.g. "1 día 3 horas".
func FormatDuration(d time.Duration) string {
	s := int64(d.Seconds())
	if s <= 0 {
		return "Ahora."
	}

	days := s / 86400
	hours := (s % 86400) / 3600
	mins := (s % 3600) / 60
	secs := s % 60

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "día", "días"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hora", "horas"))
	}
	if mins > 0 {
		parts = append(parts, plural(mins, "minuto", "minutos"))
	}
	if len(parts) == 0 || secs > 0 {
		parts = append(parts, plural(secs, "segundo", "segundos"))
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, " ")
}

func plural(n int64, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
