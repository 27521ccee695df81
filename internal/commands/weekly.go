package commands

import (
	"fmt"
	"time"

	"florbot/internal/economy"
)

const weeklyCooldown = 7 * 24 * time.Hour

func (r *Registry) weeklyCommand() *Command {
	return &Command{
		Names: []string{"weekly", "semanal"},
		Tags:  []string{"economy"},
		Help:  "weekly",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)

				if remain := economy.Cooldown(user, "weekly"); remain > 0 {
					return ctx.Reply(fmt.Sprintf("《✧》Ya reclamaste tu semanal.\n> Vuelve en » *%s*", economy.FormatDuration(remain)))
				}

				earned := r.randInt(250000, 650000)
				economy.AddWallet(user, earned)
				user.Stats["weekly"]++
				economy.SetCooldown(user, "weekly", weeklyCooldown)

				return ctx.Reply(fmt.Sprintf(
					"「✿」¡Recompensa semanal! +%s\n> Vuelve la próxima semana.",
					economy.FormatMoney(earned),
				))
			})
		},
	}
}
