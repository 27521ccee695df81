package commands

import (
	"fmt"

	"florbot/internal/economy"
)

func (r *Registry) payCommand() *Command {
	return &Command{
		Names: []string{"pay", "pagar"},
		Tags:  []string{"economy"},
		Help:  "pay <numero> <cantidad>",
		Run: func(ctx *Context) error {
			if len(ctx.Args) < 2 {
				return ctx.Reply("「✦」Uso: pay <numero> <cantidad>\n> Ej: pay 5215512345678 100k")
			}
			target := ctx.Args[0]

			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)
				amount, ok := economy.ParseAmount(ctx.Args[1], user.Wallet)
				if !ok {
					return ctx.Reply("「✦」Cantidad inválida.")
				}
				if user.Wallet < amount {
					return ctx.Reply("「✦」No tienes suficiente en la billetera.")
				}

				recipient := r.store.GetUser(doc, target)
				if recipient == user {
					return ctx.Reply("「✦」No puedes pagarte a ti mismo.")
				}

				economy.AddWallet(user, -amount)
				economy.AddWallet(recipient, amount)
				user.Stats["pay"]++

				return ctx.Reply(fmt.Sprintf("「✿」Enviaste *%s* a +%s.", economy.FormatMoney(amount), numberOf(target)))
			})
		},
	}
}

func (r *Registry) coinflipCommand() *Command {
	return &Command{
		Names: []string{"coinflip", "cf"},
		Tags:  []string{"economy"},
		Help:  "coinflip 50k",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)
				amount, ok := parseFirstAmount(ctx.Args, user.Wallet)
				if !ok {
					return ctx.Reply("「✦」Uso: coinflip <cantidad>\n> Ej: coinflip 50k")
				}
				if user.Wallet < amount {
					return ctx.Reply("「✦」No tienes suficiente en la billetera.")
				}

				user.Stats["coinflip"]++
				if r.rng.Intn(2) == 0 {
					economy.AddWallet(user, amount)
					return ctx.Reply(fmt.Sprintf("「✿」¡Cara! Ganaste *%s*.", economy.FormatMoney(amount)))
				}
				economy.AddWallet(user, -amount)
				return ctx.Reply(fmt.Sprintf("「✦」Cruz... perdiste *%s*.", economy.FormatMoney(amount)))
			})
		},
	}
}
