package commands

import (
	"fmt"
	"time"

	"florbot/internal/economy"
)

const workCooldown = 15 * time.Minute

var workJobs = []string{
	"Repartiste pedidos en moto",
	"Programaste toda la noche",
	"Atendiste la cafetería",
	"Vendiste flores en la plaza",
	"Hiciste de guía turístico",
}

func (r *Registry) workCommand() *Command {
	return &Command{
		Names: []string{"work", "trabajar", "w"},
		Tags:  []string{"economy"},
		Help:  "work",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)

				if remain := economy.Cooldown(user, "work"); remain > 0 {
					return ctx.Reply(fmt.Sprintf("《✧》Aún no puedes trabajar.\n> Vuelve en » *%s*", economy.FormatDuration(remain)))
				}

				earned := r.randInt(15000, 60000)
				economy.AddWallet(user, earned)
				user.Stats["work"]++
				economy.SetCooldown(user, "work", workCooldown)

				return ctx.Reply(fmt.Sprintf(
					"「✿」¡Trabajo terminado! +%s\n> %s y ganaste *%s*.",
					economy.FormatMoney(earned), r.pick(workJobs), economy.FormatMoney(earned),
				))
			})
		},
	}
}

func (r *Registry) randInt(min, max int64) int64 {
	return min + r.rng.Int63n(max-min+1)
}

func (r *Registry) pick(options []string) string {
	return options[r.rng.Intn(len(options))]
}
