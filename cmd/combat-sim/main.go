package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/config"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/content"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/diagnostics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/events"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/repositories/combats"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/services"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/services/combat"
)

func main() {
	turns := flag.Int("turns", 5, "maximum number of turns to play")
	keep := flag.Bool("keep", false, "keep the combat snapshot after the run")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var recorder *diagnostics.Recorder
	var reporter diagnostics.Reporter
	switch cfg.Diagnostics {
	case config.DiagnosticsDiscard:
		reporter = diagnostics.Discard
	case config.DiagnosticsRecord:
		recorder = diagnostics.NewRecorder()
		reporter = recorder
	default:
		reporter = diagnostics.NewLogReporter()
	}

	catalog := content.Default()
	if cfg.Content.Dir != "" {
		catalog, err = content.LoadDir(cfg.Content.Dir)
		if err != nil {
			log.Fatalf("Failed to load content: %v", err)
		}
	}

	providerConfig := &services.ProviderConfig{Reporter: reporter}

	// Keep Redis client for cleanup
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient = connectRedis(cfg)
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
		providerConfig.CombatRepository = combats.NewRedisRepository(&combats.RedisRepoConfig{
			Client: redisClient,
			TTL:    cfg.Combat.SnapshotTTL,
		})
		log.Println("Using Redis for persistence")
	} else {
		providerConfig.CombatRepository = combats.NewInMemoryRepository(&combats.InMemoryRepoConfig{
			TTL: cfg.Combat.SnapshotTTL,
		})
		log.Println("Using in-memory persistence")
	}

	provider := services.NewProvider(providerConfig)
	subscribePrinter(provider.Bus)

	if err := run(context.Background(), provider.CombatService, catalog, *turns, *keep); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	if recorder != nil {
		fmt.Printf("\n%d diagnostics recorded\n", recorder.Len())
		for _, report := range recorder.Reports() {
			fmt.Printf("  %s\n", diagnostics.Format(report))
		}
	}
}

func connectRedis(cfg *config.Config) *redis.Client {
	opts, err := cfg.RedisOptions()
	if err != nil {
		log.Printf("Failed to build Redis options: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis at %s: %v", opts.Addr, err)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}

	log.Printf("Successfully connected to Redis at %s", opts.Addr)
	return client
}

func subscribePrinter(bus *events.Bus) {
	printer := &events.ListenerFunc{
		Name:  "printer",
		Order: events.PriorityPresentation,
		Handler: func(e events.Event) error {
			switch ev := e.(type) {
			case *events.TriggerResolvedEvent:
				fmt.Printf("  * %s resolved\n", ev.Trigger)
			case *events.DrawRequestedEvent:
				fmt.Printf("  * draw %d cards (%s)\n", ev.Count, ev.Source)
			case *events.StatusTickedEvent:
				who := ev.CombatantID
				if who == "" {
					who = "player"
				}
				if ev.PoisonDamage > 0 {
					fmt.Printf("  * %s takes %d poison damage\n", who, ev.PoisonDamage)
				}
			case *events.EnemyDefeatedEvent:
				fmt.Printf("  * %s is defeated\n", ev.EnemyID)
			case *events.PlayerDefeatedEvent:
				fmt.Println("  * the player is defeated")
			}
			return nil
		},
	}

	bus.SubscribeAll(printer)
}

// run plays a scripted encounter: the player opens with the best strike
// each turn, then every living enemy plays the next card in its rotation
func run(ctx context.Context, svc combat.Service, catalog *content.Catalog, turns int, keep bool) error {
	player, err := newPlayer(catalog)
	if err != nil {
		return err
	}

	snapshot, err := svc.Start(ctx, &combat.StartInput{
		PlayerID: "sim-player",
		Player:   player,
		Enemies: []*entities.Enemy{
			{Name: "Jaw Worm", Health: 40, MaxHealth: 40, Intent: &entities.Intent{Type: entities.IntentAttack, Value: 11}},
			{Name: "Louse", Health: 12, MaxHealth: 12, Intent: &entities.Intent{Type: entities.IntentBuff}},
		},
	})
	if err != nil {
		return err
	}
	fmt.Printf("Combat %s started\n", snapshot.ID)
	printState(snapshot)

	strike, err := catalog.Card("strike")
	if err != nil {
		return err
	}
	rotation := []string{"chomp", "bellow", "thrash", "lick"}

	firstAttack := true
	for turn := 1; turn <= turns; turn++ {
		fmt.Printf("\n== Turn %d ==\n", turn)

		result, err := svc.FireTrigger(ctx, snapshot.ID, entities.TriggerTurnStart)
		if err != nil {
			return err
		}
		snapshot = result.Snapshot

		previews, err := svc.PreviewAll(ctx, snapshot.ID, strike, firstAttack)
		if err != nil {
			return err
		}
		for id, p := range previews {
			fmt.Printf("  strike vs %s: %d total, %d through block, kill=%v\n", id, p.TotalDamage, p.ActualDamage, p.WouldKill)
		}
		firstAttack = false

		for i := range snapshot.Enemies {
			enemy := snapshot.Enemies[i]
			if enemy.IsDefeated() {
				continue
			}
			card, err := catalog.MonsterCard(rotation[(turn+i)%len(rotation)])
			if err != nil {
				return err
			}
			fmt.Printf("  %s plays %s\n", enemy.Name, card.Name)
			result, err := svc.PlayMonsterCard(ctx, snapshot.ID, enemy.ID, card)
			if err != nil {
				return err
			}
			snapshot = result.Snapshot
			if snapshot.Player.IsDefeated() {
				break
			}
		}

		snapshot, err = svc.EndTurn(ctx, snapshot.ID)
		if err != nil {
			return err
		}
		printState(snapshot)

		if snapshot.Player.IsDefeated() || allDefeated(snapshot.Enemies) {
			break
		}
	}

	if keep {
		fmt.Printf("\nKeeping combat %s\n", snapshot.ID)
		return nil
	}
	return svc.End(ctx, snapshot.ID)
}

func newPlayer(catalog *content.Catalog) (*entities.Player, error) {
	relics, err := catalog.RelicSet(
		entities.RelicAkabeko,
		entities.RelicBronzeScales,
		entities.RelicCentennialPuzzle,
		"anchor",
		"lantern",
	)
	if err != nil {
		return nil, err
	}
	metallicize, err := catalog.PowerCard("metallicize")
	if err != nil {
		return nil, err
	}

	return &entities.Player{
		Health:     80,
		MaxHealth:  80,
		Energy:     3,
		MaxEnergy:  3,
		Relics:     relics,
		PowerCards: []entities.PowerCard{metallicize},
	}, nil
}

func printState(snapshot *combats.Snapshot) {
	p := snapshot.Player
	fmt.Printf("  player: %d/%d hp, %d block, %d energy, %v\n", p.Health, p.MaxHealth, p.Block, p.Energy, p.StatusEffects)
	for _, e := range snapshot.Enemies {
		fmt.Printf("  %s (%s): %d/%d hp, %d block, %v\n", e.Name, e.ID, e.Health, e.MaxHealth, e.Block, e.StatusEffects)
	}
}

func allDefeated(enemies []*entities.Enemy) bool {
	for _, e := range enemies {
		if !e.IsDefeated() {
			return false
		}
	}
	return true
}
