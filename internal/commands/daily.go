package commands

import (
	"fmt"
	"time"

	"florbot/internal/economy"
)

func (r *Registry) dailyCommand() *Command {
	return &Command{
		Names: []string{"daily", "diario"},
		Tags:  []string{"economy"},
		Help:  "daily",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)

				if economy.WithinDayWindow(user.Daily.LastClaimAt) {
					return ctx.Reply("《✧》Ya has reclamado tu diario hoy.\n> Vuelve mañana.")
				}
				if economy.StreakResetNeeded(user.Daily.LastClaimAt) {
					user.Daily.Streak = 0
				}

				user.Daily.Streak++
				user.Daily.LastClaimAt = time.Now().UnixMilli()

				earned := int64(50000) + user.Daily.Streak*5000
				economy.AddWallet(user, earned)

				return ctx.Reply(fmt.Sprintf(
					"「✿」¡Recompensa diaria! +%s\n> Racha » *%d días*",
					economy.FormatMoney(earned), user.Daily.Streak,
				))
			})
		},
	}
}
