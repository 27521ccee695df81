package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		max   int64
		want  int64
		ok    bool
	}{
		{"500", 0, 500, true},
		{"250k", 0, 250000, true},
		{"1.5m", 0, 1500000, true},
		{"2b", 0, 2000000000, true},
		{"1,000", 0, 1000, true},
		{"all", 777, 777, true},
		{"todo", 777, 777, true},
		{"t", 42, 42, true},
		{"", 0, 0, false},
		{"-5", 0, 0, false},
		{"0", 0, 0, false},
		{"abc", 0, 0, false},
		{"1.2.3", 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseAmount(tc.input, tc.max)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "¥0", FormatMoney(0))
	assert.Equal(t, "¥500", FormatMoney(500))
	assert.Equal(t, "¥1,250,000", FormatMoney(1250000))
	assert.Equal(t, "-¥1,000", FormatMoney(-1000))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "Ahora.", FormatDuration(0))
	assert.Equal(t, "Ahora.", FormatDuration(-time.Second))
	assert.Equal(t, "1 segundo", FormatDuration(time.Second))
	assert.Equal(t, "45 segundos", FormatDuration(45*time.Second))
	assert.Equal(t, "2 minutos 5 segundos", FormatDuration(125*time.Second))
	assert.Equal(t, "1 día 3 horas", FormatDuration(27*time.Hour))
	assert.Equal(t, "2 días 1 hora", FormatDuration(49*time.Hour))
}

func TestCooldowns(t *testing.T) {
	u := emptyUserRecord()

	assert.Zero(t, Cooldown(u, "work"))

	SetCooldown(u, "work", 15*time.Minute)
	remain := Cooldown(u, "work")
	assert.Greater(t, remain, 14*time.Minute)
	assert.LessOrEqual(t, remain, 15*time.Minute)

	// Expired cooldowns report zero, not negative.
	u.Cooldowns["crime"] = nowMillis() - 1000
	assert.Zero(t, Cooldown(u, "crime"))
}

func TestWalletAndBankClampAtZero(t *testing.T) {
	u := emptyUserRecord()
	u.Wallet = 100
	u.Bank = 100

	AddWallet(u, -500)
	AddBank(u, -500)

	assert.Zero(t, u.Wallet)
	assert.Zero(t, u.Bank)

	AddWallet(u, 30)
	assert.Equal(t, int64(30), u.Wallet)
	assert.Equal(t, int64(30), TotalWealth(u))
}

func TestLevelMath(t *testing.T) {
	assert.Equal(t, int64(0), LevelFromExp(0))
	assert.Equal(t, int64(0), LevelFromExp(9))
	assert.Equal(t, int64(1), LevelFromExp(10))
	assert.Equal(t, int64(3), LevelFromExp(90))
	assert.Equal(t, int64(10), ExpForNextLevel(0))
	assert.Equal(t, int64(40), ExpForNextLevel(1))
}

func TestComputeExp(t *testing.T) {
	u := emptyUserRecord()
	u.Stats["work"] = 10
	u.Stats["crime"] = 5
	u.Wallet = 500000

	assert.Equal(t, int64(17), ComputeExp(u))
}

func TestDayWindows(t *testing.T) {
	now := nowMillis()

	assert.True(t, WithinDayWindow(now-1000))
	assert.False(t, WithinDayWindow(now-dayMillis-1000))

	assert.False(t, StreakResetNeeded(0))
	assert.False(t, StreakResetNeeded(now-dayMillis))
	assert.True(t, StreakResetNeeded(now-twoDaysMillis-1000))
}
