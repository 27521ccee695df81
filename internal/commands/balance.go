package commands

import (
	"fmt"
	"sort"
	"strings"

	"florbot/internal/economy"
)

func (r *Registry) balanceCommand() *Command {
	return &Command{
		Names: []string{"balance", "bal", "einfo"},
		Tags:  []string{"economy"},
		Help:  "balance",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)
				exp := economy.ComputeExp(user)
				level := economy.LevelFromExp(exp)
				return ctx.Reply(fmt.Sprintf(
					"「✿」Balance de *%s*\n\n> Billetera » *%s*\n> Banco » *%s*\n> Total » *%s*\n> Nivel » *%d* (%d/%d exp)",
					ctx.SenderTag,
					economy.FormatMoney(user.Wallet),
					economy.FormatMoney(user.Bank),
					economy.FormatMoney(economy.TotalWealth(user)),
					level, exp, economy.ExpForNextLevel(level),
				))
			})
		},
	}
}

func (r *Registry) depositCommand() *Command {
	return &Command{
		Names: []string{"deposit", "dep", "depositar"},
		Tags:  []string{"economy"},
		Help:  "deposit 250k",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)
				amount, ok := parseFirstAmount(ctx.Args, user.Wallet)
				if !ok {
					return ctx.Reply("「✦」Uso: deposit <cantidad>\n> Ej: deposit 250k")
				}
				if user.Wallet < amount {
					return ctx.Reply("「✦」No tienes suficiente en la billetera.")
				}
				economy.AddWallet(user, -amount)
				economy.AddBank(user, amount)
				return ctx.Reply(fmt.Sprintf("「✿」Depositaste *%s* al banco.", economy.FormatMoney(amount)))
			})
		},
	}
}

func (r *Registry) withdrawCommand() *Command {
	return &Command{
		Names: []string{"withdraw", "wd", "retirar"},
		Tags:  []string{"economy"},
		Help:  "withdraw 250k",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)
				amount, ok := parseFirstAmount(ctx.Args, user.Bank)
				if !ok {
					return ctx.Reply("「✦」Uso: withdraw <cantidad>\n> Ej: withdraw 250k")
				}
				if user.Bank < amount {
					return ctx.Reply("「✦」No tienes suficiente en el banco.")
				}
				economy.AddBank(user, -amount)
				economy.AddWallet(user, amount)
				return ctx.Reply(fmt.Sprintf("「✿」Retiraste *%s* del banco.", economy.FormatMoney(amount)))
			})
		},
	}
}

func (r *Registry) baltopCommand() *Command {
	return &Command{
		Names: []string{"baltop", "top"},
		Tags:  []string{"economy"},
		Help:  "baltop",
		Run: func(ctx *Context) error {
			return r.store.View(func(doc *economy.Document) error {
				type entry struct {
					jid    string
					wealth int64
				}
				var entries []entry
				for jid, u := range doc.Users {
					if u == nil {
						continue
					}
					if w := economy.TotalWealth(u); w > 0 {
						entries = append(entries, entry{jid, w})
					}
				}
				sort.Slice(entries, func(i, j int) bool { return entries[i].wealth > entries[j].wealth })
				if len(entries) > 10 {
					entries = entries[:10]
				}

				var b strings.Builder
				b.WriteString("「✿」Top de riqueza\n")
				for i, e := range entries {
					fmt.Fprintf(&b, "\n> %d. +%s » *%s*", i+1, numberOf(e.jid), economy.FormatMoney(e.wealth))
				}
				if len(entries) == 0 {
					b.WriteString("\n> Nadie tiene dinero todavía.")
				}
				return ctx.Reply(b.String())
			})
		},
	}
}

// numberOf extracts the user part of a JID for display.
func numberOf(jid string) string {
	if i := strings.IndexByte(jid, '@'); i >= 0 {
		return jid[:i]
	}
	return jid
}

func parseFirstAmount(args []string, maxAmount int64) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	return economy.ParseAmount(args[0], maxAmount)
}
