package commands

import (
	"fmt"
	"math"
	"time"

	"florbot/internal/economy"
)

const (
	investMin      = 10000
	investDuration = time.Hour
)

func (r *Registry) investCommand() *Command {
	return &Command{
		Names: []string{"invest", "invertir", "inversion"},
		Tags:  []string{"economy"},
		Help:  "invest 250k",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)
				now := time.Now().UnixMilli()

				if user.Invest.Amount > 0 && user.Invest.MatureAt > now {
					return ctx.Reply("《✧》Ya tienes una inversión en curso.\n> Cóbrala luego con *.collect*")
				}
				if user.Invest.Amount > 0 && user.Invest.MatureAt <= now {
					return ctx.Reply("「✿」Tu inversión ya está lista para cobrar.\n> Usa *.collect* para reclamarla.")
				}

				amount, ok := parseFirstAmount(ctx.Args, user.Wallet)
				if !ok {
					return ctx.Reply("「✦」Uso: invest <cantidad>\n> Ej: invest 250k")
				}
				if amount < investMin {
					return ctx.Reply(fmt.Sprintf("「✦」La inversión mínima es *%s*.", economy.FormatMoney(investMin)))
				}
				if user.Wallet < amount {
					return ctx.Reply("「✦」No tienes suficiente en la billetera.")
				}

				mult := math.Round((0.8+r.rng.Float64()*0.8)*100) / 100
				economy.AddWallet(user, -amount)
				user.Invest = economy.Invest{
					Amount:     amount,
					MatureAt:   now + investDuration.Milliseconds(),
					Multiplier: mult,
				}
				user.Stats["invest"]++

				return ctx.Reply(fmt.Sprintf(
					"「✿」Inversión creada: *%s*\n> Tu retorno será aleatorio.\n> Cobra en una hora con *.collect*",
					economy.FormatMoney(amount),
				))
			})
		},
	}
}

func (r *Registry) collectCommand() *Command {
	return &Command{
		Names: []string{"collect", "cobrar"},
		Tags:  []string{"economy"},
		Help:  "collect",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)
				now := time.Now().UnixMilli()

				if user.Invest.Amount <= 0 {
					return ctx.Reply("「✦」No tienes ninguna inversión activa.\n> Crea una con *.invest*")
				}
				if user.Invest.MatureAt > now {
					remain := time.Duration(user.Invest.MatureAt-now) * time.Millisecond
					return ctx.Reply(fmt.Sprintf("《✧》Tu inversión aún no madura.\n> Vuelve en » *%s*", economy.FormatDuration(remain)))
				}

				payout := int64(math.Floor(float64(user.Invest.Amount) * user.Invest.Multiplier))
				economy.AddWallet(user, payout)
				user.Invest = economy.Invest{Multiplier: 1}
				user.Stats["collect"]++

				return ctx.Reply(fmt.Sprintf("「✿」Inversión cobrada: *%s*", economy.FormatMoney(payout)))
			})
		},
	}
}
