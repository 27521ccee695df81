package commands

import (
	"fmt"
	"time"

	"florbot/internal/economy"
)

const crimeCooldown = 45 * time.Minute

var crimeSuccess = []string{
	"Hackeaste un cajero automático",
	"Robaste un maletín en plena calle",
	"Hiciste un fraude de criptomonedas",
	"Vendiste datos filtrados",
}

var crimeFail = []string{
	"Te atrapó la policía",
	"La alarma sonó demasiado rápido",
	"Un guardia te reconoció",
	"Te traicionó tu compa",
}

func (r *Registry) crimeCommand() *Command {
	return &Command{
		Names: []string{"crime", "crimen"},
		Tags:  []string{"economy"},
		Help:  "crime",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)

				if remain := economy.Cooldown(user, "crime"); remain > 0 {
					return ctx.Reply(fmt.Sprintf("《✧》Aún no puedes usar crime.\n> Vuelve en » *%s*", economy.FormatDuration(remain)))
				}

				economy.SetCooldown(user, "crime", crimeCooldown)
				user.Stats["crime"]++

				if r.rng.Float64() < 0.52 {
					earned := r.randInt(50000, 200000)
					economy.AddWallet(user, earned)
					return ctx.Reply(fmt.Sprintf(
						"「✿」¡Crimen exitoso! +%s\n> %s y ganaste *%s*.",
						economy.FormatMoney(earned), r.pick(crimeSuccess), economy.FormatMoney(earned),
					))
				}

				loss := r.randInt(10000, 80000)
				economy.AddWallet(user, -loss)
				return ctx.Reply(fmt.Sprintf(
					"「✦」Crimen fallido... -%s\n> %s y perdiste *%s*.",
					economy.FormatMoney(loss), r.pick(crimeFail), economy.FormatMoney(loss),
				))
			})
		},
	}
}
