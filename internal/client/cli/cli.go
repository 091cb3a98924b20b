// Package cli реализует терминальные команды клиента: авторизацию,
// локальные операции над корзиной/избранным/настройками/alerts
// и запуск синхронизации.
package cli

import (
	"fmt"

	"github.com/iudanet/shopsync/internal/client/auth"
	"github.com/iudanet/shopsync/internal/client/data"
	"github.com/iudanet/shopsync/internal/client/iocli"
	"github.com/iudanet/shopsync/internal/client/sync"
)

type Cli struct {
	io           iocli.IO
	authService  *auth.Service
	dataService  data.Service
	syncService  *sync.Service
	printVersion func()
}

func New(io iocli.IO, authService *auth.Service, dataService data.Service, syncService *sync.Service, printVersion func()) *Cli {
	return &Cli{
		io:           io,
		authService:  authService,
		dataService:  dataService,
		syncService:  syncService,
		printVersion: printVersion,
	}
}

func PrintUsage() {
	fmt.Println(`Usage: shopsync <command> [arguments]

Auth commands:
  register                        create a new account
  login                           authenticate and save device session
  logout                          remove device session
  status                          show session and cache freshness

Sync commands:
  sync                            synchronize all domains with server
  sync full                       drop local cache and pull server state
  background-sync [interval]      sync once if cache is stale, or loop at interval

Data commands:
  cart list                       show local cart
  cart add <id> <name> <qty> <price>   add or replace a cart item
  cart qty <id> <qty>             change item quantity
  cart rm <id>                    remove item from cart
  fav list                        show favorites
  fav toggle <id>                 add/remove product in favorites
  prefs list                      show preferences
  prefs set <key> <value>         set a preference value
  alert list                      show price alerts
  alert add <id> <target-price>   create a price alert
  alert off <alert-id>            deactivate an alert

Other:
  version                         print build information
  help                            show this message`)
}
