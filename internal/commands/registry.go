// Package commands implements the chat command set. Every handler is a thin
// call-site over the economy store: acquire the lock, load, mutate through the
// accessors, save.
package commands

import (
	"context"
	"math/rand"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"florbot/internal/economy"
	"florbot/internal/gacha"
	"florbot/internal/providers"
	"florbot/internal/structures"
)

// Context carries one inbound command invocation. Sender is already resolved
// to its canonical identity by the transport layer.
type Context struct {
	Ctx       context.Context
	Chat      string
	Sender    string
	SenderTag string
	Args      []string
	RawText   string
	Reply     func(text string) error
	React     func(emoji string) error
}

type Command struct {
	Names []string
	Tags  []string
	Help  string
	Run   func(ctx *Context) error
}

type Registry struct {
	conf    *structures.Config
	store   *economy.Store
	catalog *gacha.Catalog
	logger  providers.Logger
	ai      *openai.Client
	rng     *rand.Rand

	byName map[string]*Command
	all    []*Command
}

func NewRegistry(conf *structures.Config, store *economy.Store, catalog *gacha.Catalog, logger providers.Logger) *Registry {
	r := &Registry{
		conf:    conf,
		store:   store,
		catalog: catalog,
		logger:  logger,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		byName:  make(map[string]*Command),
	}
	if conf.AI.APIKey != "" {
		r.ai = openai.NewClient(conf.AI.APIKey)
	}

	r.add(r.pingCommand())
	r.add(r.balanceCommand())
	r.add(r.depositCommand())
	r.add(r.withdrawCommand())
	r.add(r.baltopCommand())
	r.add(r.workCommand())
	r.add(r.crimeCommand())
	r.add(r.weeklyCommand())
	r.add(r.dailyCommand())
	r.add(r.investCommand())
	r.add(r.collectCommand())
	r.add(r.payCommand())
	r.add(r.coinflipCommand())
	r.add(r.rollCommand())
	r.add(r.claimCommand())
	r.add(r.waifuInfoCommand())
	r.add(r.waifuBoardCommand())
	r.add(r.marketSellCommand())
	r.add(r.marketBuyCommand())
	r.add(r.marketDelistCommand())
	r.add(r.profileCommand())
	r.add(r.aiCommand())

	return r
}

func (r *Registry) add(cmd *Command) {
	r.all = append(r.all, cmd)
	for _, name := range cmd.Names {
		r.byName[name] = cmd
	}
}

func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

func (r *Registry) All() []*Command {
	return r.all
}
