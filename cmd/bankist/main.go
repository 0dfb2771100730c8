package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/okanv/bankist-ledger/internal/config"
	"github.com/okanv/bankist-ledger/internal/events/zaplog"
	"github.com/okanv/bankist-ledger/internal/ledger"
	"github.com/okanv/bankist-ledger/internal/logging"
	"github.com/okanv/bankist-ledger/internal/models"
	"github.com/okanv/bankist-ledger/internal/session"
	"github.com/okanv/bankist-ledger/internal/storage/memory"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	store := memory.NewAccountStore()
	for _, acc := range models.SeedAccounts() {
		if err := store.Save(acc); err != nil {
			log.Fatal("seed account rejected", zap.String("owner", acc.Owner), zap.Error(err))
		}
	}

	publisher := zaplog.NewPublisher(log)
	clk := systemClock{}
	ldg := ledger.New(store, publisher, clk, log)
	renderer := newTermRenderer(os.Stdout)

	ctrl := session.NewController(session.Config{
		Store:        store,
		Ledger:       ldg,
		Events:       publisher,
		Render:       renderer,
		Clock:        clk,
		Logger:       log,
		TimerTicks:   cfg.TimerTicks,
		TickInterval: cfg.TickInterval,
		LoanDelay:    cfg.LoanDelay,
	})

	fmt.Println("Bankist: log in to get started")
	fmt.Println("commands: login <user> <pin> | transfer <to> <amount> | loan <amount> | close <user> <pin> | sort | logout | quit")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "login":
			if len(fields) != 3 {
				fmt.Println("usage: login <user> <pin>")
				continue
			}
			_, err = ctrl.Login(models.LoginRequest{Username: fields[1], PIN: fields[2]})
		case "transfer":
			if len(fields) != 3 {
				fmt.Println("usage: transfer <to> <amount>")
				continue
			}
			err = ctrl.Transfer(ctx, models.TransferRequest{
				To:     fields[1],
				Amount: models.ParseAmount(fields[2]),
			})
		case "loan":
			if len(fields) != 2 {
				fmt.Println("usage: loan <amount>")
				continue
			}
			err = ctrl.RequestLoan(ctx, models.LoanRequest{Amount: models.ParseAmount(fields[1])})
		case "close":
			if len(fields) != 3 {
				fmt.Println("usage: close <user> <pin>")
				continue
			}
			err = ctrl.CloseAccount(models.CloseRequest{Username: fields[1], PIN: fields[2]})
		case "sort":
			err = ctrl.ToggleSort()
		case "logout":
			ctrl.Logout()
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command")
			continue
		}

		// The reference UI swallows every failure without feedback;
		// keep that surface, but the typed error still reaches the log.
		if err != nil {
			log.Debug("operation rejected", zap.String("command", fields[0]), zap.Error(err))
		}
	}
}
