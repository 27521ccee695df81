package commands

import (
	"fmt"
	"time"

	"florbot/internal/economy"
)

func (r *Registry) marketSellCommand() *Command {
	return &Command{
		Names: []string{"sell", "vender"},
		Tags:  []string{"gacha"},
		Help:  "sell <id> <precio>",
		Run: func(ctx *Context) error {
			if len(ctx.Args) < 2 {
				return ctx.Reply("「✦」Uso: sell <id> <precio>\n> Ej: sell 104 500k")
			}
			id := ctx.Args[0]

			return r.store.Update(func(doc *economy.Document) error {
				state := r.store.GetWaifuState(doc, id)
				if state.Owner != ctx.Sender {
					return ctx.Reply("「✦」No eres dueño de ese personaje.")
				}

				price, ok := economy.ParseAmount(ctx.Args[1], 0)
				if !ok || price <= 0 {
					return ctx.Reply("「✦」Precio inválido.")
				}

				r.store.SetMarketEntry(doc, id, &economy.ListingRecord{
					Price:    price,
					Seller:   ctx.Sender,
					ListedAt: time.Now().UnixMilli(),
				})
				return ctx.Reply(fmt.Sprintf("「✿」Personaje *%s* en venta por *%s*.", id, economy.FormatMoney(price)))
			})
		},
	}
}

func (r *Registry) marketBuyCommand() *Command {
	return &Command{
		Names: []string{"buy", "comprar"},
		Tags:  []string{"gacha"},
		Help:  "buy <id>",
		Run: func(ctx *Context) error {
			if len(ctx.Args) < 1 {
				return ctx.Reply("「✦」Uso: buy <id>")
			}
			id := ctx.Args[0]

			return r.store.Update(func(doc *economy.Document) error {
				entry := r.store.GetMarketEntry(doc, id)
				if entry == nil {
					return ctx.Reply("「✦」Ese personaje no está en venta.")
				}

				buyer := r.store.GetUser(doc, ctx.Sender)
				if entry.Seller == ctx.Sender {
					return ctx.Reply("「✦」No puedes comprar tu propio personaje.")
				}
				if buyer.Wallet < entry.Price {
					return ctx.Reply(fmt.Sprintf("「✦」Necesitas *%s* en la billetera.", economy.FormatMoney(entry.Price)))
				}

				seller := r.store.GetUser(doc, entry.Seller)
				economy.AddWallet(buyer, -entry.Price)
				economy.AddWallet(seller, entry.Price)

				state := r.store.GetWaifuState(doc, id)
				state.Owner = ctx.Sender
				state.ClaimedAt = time.Now().UnixMilli()

				seller.Waifus = removeID(seller.Waifus, id)
				buyer.Waifus = appendUnique(buyer.Waifus, id)
				r.store.SetMarketEntry(doc, id, nil)

				return ctx.Reply(fmt.Sprintf("「✿」Compraste el personaje *%s* por *%s*.", id, economy.FormatMoney(entry.Price)))
			})
		},
	}
}

func (r *Registry) marketDelistCommand() *Command {
	return &Command{
		Names: []string{"delist", "retirarventa"},
		Tags:  []string{"gacha"},
		Help:  "delist <id>",
		Run: func(ctx *Context) error {
			if len(ctx.Args) < 1 {
				return ctx.Reply("「✦」Uso: delist <id>")
			}
			id := ctx.Args[0]

			return r.store.Update(func(doc *economy.Document) error {
				entry := r.store.GetMarketEntry(doc, id)
				if entry == nil {
					return ctx.Reply("「✦」Ese personaje no está en venta.")
				}
				if entry.Seller != ctx.Sender {
					return ctx.Reply("「✦」Solo el vendedor puede retirar la venta.")
				}
				r.store.SetMarketEntry(doc, id, nil)
				return ctx.Reply(fmt.Sprintf("「✿」Venta del personaje *%s* retirada.", id))
			})
		},
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
