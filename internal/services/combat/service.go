// Package combat applies triggers, damage and monster cards to stored
// combats and publishes what happened
package combat

import (
	"context"
	"log"
	"sync"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/diagnostics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/domain/combat/monsters"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/domain/combat/powers"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/domain/combat/preview"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/domain/combat/relics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/effects"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/events"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/repositories/combats"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/uuid"
	"golang.org/x/sync/errgroup"
)

// Service applies externally sequenced combat events to stored snapshots.
// It never decides on its own when a trigger fires.
type Service interface {
	// Start stores a new combat and resolves combat_start
	Start(ctx context.Context, input *StartInput) (*combats.Snapshot, error)

	// Get returns the stored combat
	Get(ctx context.Context, combatID string) (*combats.Snapshot, error)

	// FireTrigger resolves power cards then relics for trigger
	FireTrigger(ctx context.Context, combatID string, trigger entities.Trigger) (*TriggerResult, error)

	// TakeDamage applies incoming damage to the player, block first, and
	// resolves damage_taken when health was lost
	TakeDamage(ctx context.Context, combatID string, amount int) (*TriggerResult, error)

	// EndTurn resolves turn_end, ticks every combatant's statuses and
	// advances the turn counter
	EndTurn(ctx context.Context, combatID string) (*combats.Snapshot, error)

	// PlayMonsterCard resolves a card played by one enemy against the player
	PlayMonsterCard(ctx context.Context, combatID, enemyID string, card *entities.MonsterCard) (*TriggerResult, error)

	// PreviewCard projects card against one enemy without committing
	PreviewCard(ctx context.Context, combatID string, card *entities.Card, enemyID string, firstAttack bool) (*preview.Preview, bool, error)

	// PreviewAll projects card against every living enemy
	PreviewAll(ctx context.Context, combatID string, card *entities.Card, firstAttack bool) (map[string]*preview.Preview, error)

	// End removes a finished combat
	End(ctx context.Context, combatID string) error
}

// StartInput contains data for starting a combat
type StartInput struct {
	PlayerID string
	Player   *entities.Player
	Enemies  []*entities.Enemy
}

// TriggerResult is the stored snapshot after a trigger plus the requests the
// card sequencer must service
type TriggerResult struct {
	Snapshot   *combats.Snapshot
	DrawCards  int
	HealthLost int
}

type service struct {
	repository    combats.Repository
	bus           *events.Bus
	uuidGenerator uuid.Generator
	powers        *powers.Processor
	relics        *relics.Processor
	monsters      *monsters.Processor
	preview       *preview.Calculator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    combats.Repository
	Bus           *events.Bus          // Optional, events are dropped when nil
	UUIDGenerator uuid.Generator       // Optional
	Reporter      diagnostics.Reporter // Optional, logs when nil
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}
	calculator := effects.NewCalculator(reporter)

	svc := &service{
		repository: cfg.Repository,
		bus:        cfg.Bus,
		powers:     powers.NewProcessor(&powers.ProcessorConfig{Reporter: reporter}),
		relics:     relics.NewProcessor(&relics.ProcessorConfig{Reporter: reporter}),
		monsters:   monsters.NewProcessor(&monsters.ProcessorConfig{Calculator: calculator, Reporter: reporter}),
		preview:    preview.NewCalculator(calculator),
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) Start(ctx context.Context, input *StartInput) (*combats.Snapshot, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, dnderr.InvalidArgument("player ID is required")
	}
	if input.Player == nil {
		return nil, dnderr.InvalidArgument("player state is required")
	}
	if len(input.Enemies) == 0 {
		return nil, dnderr.InvalidArgument("at least one enemy is required")
	}

	snapshot := &combats.Snapshot{
		ID:       s.uuidGenerator.New(),
		PlayerID: input.PlayerID,
		Turn:     1,
		Player:   input.Player.Clone(),
		Enemies:  entities.CloneEnemies(input.Enemies),
	}
	for _, enemy := range snapshot.Enemies {
		if enemy == nil {
			return nil, dnderr.InvalidArgument("enemy state cannot be nil")
		}
		if enemy.ID == "" {
			enemy.ID = s.uuidGenerator.New()
		}
	}

	before := snapshot.Clone()
	drawCards := s.resolve(snapshot, entities.TriggerCombatStart)

	if err := s.repository.Create(ctx, snapshot); err != nil {
		return nil, dnderr.Wrap(err, "failed to create combat")
	}

	log.Printf("[COMBAT] Started %s for player %s against %d enemies", snapshot.ID, snapshot.PlayerID, len(snapshot.Enemies))
	s.emitResolved(snapshot.ID, entities.TriggerCombatStart, drawCards)
	s.emitDefeats(before, snapshot)

	return snapshot.Clone(), nil
}

func (s *service) Get(ctx context.Context, combatID string) (*combats.Snapshot, error) {
	if combatID == "" {
		return nil, dnderr.InvalidArgument("combat ID is required")
	}

	snapshot, err := s.repository.Get(ctx, combatID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get combat")
	}
	return snapshot, nil
}

func (s *service) FireTrigger(ctx context.Context, combatID string, trigger entities.Trigger) (*TriggerResult, error) {
	if !trigger.IsKnown() {
		return nil, dnderr.InvalidArgumentf("unknown trigger %q", trigger)
	}

	snapshot, err := s.Get(ctx, combatID)
	if err != nil {
		return nil, err
	}

	before := snapshot.Clone()
	drawCards := s.resolve(snapshot, trigger)

	if err := s.repository.Update(ctx, snapshot); err != nil {
		return nil, dnderr.Wrap(err, "failed to update combat")
	}

	drawCards = s.emitResolved(snapshot.ID, trigger, drawCards)
	s.emitDefeats(before, snapshot)

	return &TriggerResult{Snapshot: snapshot.Clone(), DrawCards: drawCards}, nil
}

func (s *service) TakeDamage(ctx context.Context, combatID string, amount int) (*TriggerResult, error) {
	if amount < 0 {
		return nil, dnderr.InvalidArgumentf("damage must not be negative, got %d", amount)
	}

	snapshot, err := s.Get(ctx, combatID)
	if err != nil {
		return nil, err
	}

	before := snapshot.Clone()
	lost := absorb(snapshot.Player, amount)

	return s.commitDamage(ctx, before, snapshot, lost)
}

func (s *service) PlayMonsterCard(ctx context.Context, combatID, enemyID string, card *entities.MonsterCard) (*TriggerResult, error) {
	if card == nil {
		return nil, dnderr.InvalidArgument("monster card cannot be nil")
	}

	snapshot, err := s.Get(ctx, combatID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, e := range snapshot.Enemies {
		if e.ID == enemyID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, dnderr.NotFoundf("enemy %s not found in combat %s", enemyID, combatID).
			WithMeta("enemy_id", enemyID)
	}
	if snapshot.Enemies[index].IsDefeated() {
		return nil, dnderr.InvalidArgumentf("enemy %s is defeated", enemyID)
	}

	before := snapshot.Clone()
	result := s.monsters.Process(card, snapshot.Player, snapshot.Enemies[index])
	snapshot.Player = result.Player
	snapshot.Enemies[index] = result.Enemy

	lost := max(0, before.Player.Health-snapshot.Player.Health)
	return s.commitDamage(ctx, before, snapshot, lost)
}

// commitDamage resolves damage_taken when health was lost, then persists
func (s *service) commitDamage(ctx context.Context, before, snapshot *combats.Snapshot, lost int) (*TriggerResult, error) {
	drawCards := 0
	if lost > 0 {
		drawCards = s.resolve(snapshot, entities.TriggerDamageTaken)
	}

	if err := s.repository.Update(ctx, snapshot); err != nil {
		return nil, dnderr.Wrap(err, "failed to update combat")
	}

	if lost > 0 {
		drawCards = s.emitResolved(snapshot.ID, entities.TriggerDamageTaken, drawCards)
	}
	s.emitDefeats(before, snapshot)

	return &TriggerResult{Snapshot: snapshot.Clone(), DrawCards: drawCards, HealthLost: lost}, nil
}

func (s *service) EndTurn(ctx context.Context, combatID string) (*combats.Snapshot, error) {
	snapshot, err := s.Get(ctx, combatID)
	if err != nil {
		return nil, err
	}

	before := snapshot.Clone()
	drawCards := s.resolve(snapshot, entities.TriggerTurnEnd)
	afterTrigger := snapshot.Clone()

	snapshot.Player = effects.ProcessStatusEffects(snapshot.Player)
	for i, enemy := range snapshot.Enemies {
		snapshot.Enemies[i] = effects.ProcessStatusEffects(enemy)
	}
	snapshot.Turn++

	if err := s.repository.Update(ctx, snapshot); err != nil {
		return nil, dnderr.Wrap(err, "failed to update combat")
	}

	s.emitResolved(snapshot.ID, entities.TriggerTurnEnd, drawCards)
	s.emit(events.NewStatusTickedEvent(snapshot.ID, "",
		afterTrigger.Player.Health-snapshot.Player.Health, snapshot.Player.StatusEffects))
	for i, enemy := range snapshot.Enemies {
		s.emit(events.NewStatusTickedEvent(snapshot.ID, enemy.ID,
			afterTrigger.Enemies[i].Health-enemy.Health, enemy.StatusEffects))
	}
	s.emitDefeats(before, snapshot)

	return snapshot.Clone(), nil
}

func (s *service) PreviewCard(ctx context.Context, combatID string, card *entities.Card, enemyID string, firstAttack bool) (*preview.Preview, bool, error) {
	snapshot, err := s.Get(ctx, combatID)
	if err != nil {
		return nil, false, err
	}

	target := snapshot.State().Enemy(enemyID)
	if target == nil {
		return nil, false, dnderr.NotFoundf("enemy %s not found in combat %s", enemyID, combatID).
			WithMeta("enemy_id", enemyID)
	}

	p, ok := s.preview.Project(card, snapshot.Player, target, firstAttack)
	return p, ok, nil
}

func (s *service) PreviewAll(ctx context.Context, combatID string, card *entities.Card, firstAttack bool) (map[string]*preview.Preview, error) {
	snapshot, err := s.Get(ctx, combatID)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	previews := make(map[string]*preview.Preview, len(snapshot.Enemies))

	g, gctx := errgroup.WithContext(ctx)
	for _, enemy := range snapshot.Enemies {
		if enemy.IsDefeated() {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, ok := s.preview.Project(card, snapshot.Player, enemy, firstAttack)
			if !ok {
				return nil
			}
			mu.Lock()
			previews[enemy.ID] = p
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return previews, nil
}

func (s *service) End(ctx context.Context, combatID string) error {
	if combatID == "" {
		return dnderr.InvalidArgument("combat ID is required")
	}
	if err := s.repository.Delete(ctx, combatID); err != nil {
		return dnderr.Wrap(err, "failed to end combat")
	}

	log.Printf("[COMBAT] Ended %s", combatID)
	return nil
}

// resolve runs power cards then relics for trigger against snapshot and
// returns the number of cards the relics asked to draw
func (s *service) resolve(snapshot *combats.Snapshot, trigger entities.Trigger) int {
	state := s.powers.Process(trigger, snapshot.Player, snapshot.Enemies)

	relicCtx := &relics.Context{}
	state = s.relics.Process(trigger, state.Player, state.Enemies, relicCtx)

	snapshot.SetState(state)
	return relicCtx.ShouldDrawCards
}

// absorb applies incoming damage to player, block first, and returns the
// health lost
func absorb(player *entities.Player, amount int) int {
	lost := min(player.Health, max(0, amount-player.Block))
	player.Block = max(0, player.Block-amount)
	player.Health -= lost
	return lost
}

// emitResolved publishes the trigger and any draw request. It returns the
// number of cards to draw after listeners had their say.
func (s *service) emitResolved(combatID string, trigger entities.Trigger, drawCards int) int {
	s.emit(events.NewTriggerResolvedEvent(combatID, trigger, drawCards))
	if drawCards == 0 {
		return 0
	}

	request := events.NewDrawRequestedEvent(combatID, drawCards, string(trigger))
	s.emit(request)
	if request.IsCancelled() {
		return 0
	}
	return request.Count
}

// emitDefeats publishes a defeat for every combatant whose health reached
// zero between before and after
func (s *service) emitDefeats(before, after *combats.Snapshot) {
	for _, enemy := range after.Enemies {
		prev := before.State().Enemy(enemy.ID)
		if enemy.IsDefeated() && (prev == nil || !prev.IsDefeated()) {
			s.emit(events.NewEnemyDefeatedEvent(after.ID, enemy.ID))
		}
	}
	if after.Player.IsDefeated() && !before.Player.IsDefeated() {
		s.emit(events.NewPlayerDefeatedEvent(after.ID))
	}
}

func (s *service) emit(event events.Event) {
	if err := s.bus.Emit(event); err != nil {
		log.Printf("[COMBAT] Event %s for %s failed: %v", event.GetType(), event.GetCombatID(), err)
	}
}
