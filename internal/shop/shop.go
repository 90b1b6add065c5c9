// internal/shop/shop.go
package shop

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/event"
	"deep-dive-dash/internal/persist"
	"deep-dive-dash/internal/skill"
	"deep-dive-dash/internal/utils"
)

var (
	ErrNotEnoughCoins   = errors.New("not enough coins")
	ErrAlreadyPurchased = errors.New("skill already purchased")
	ErrUnknownSkill     = errors.New("unknown skill")
)

// Notice — временное уведомление магазина
type Notice int

const (
	NoticeNone Notice = iota
	NoticeNotEnoughCoins
	NoticePurchaseFailed
)

func (n Notice) String() string {
	switch n {
	case NoticeNotEnoughCoins:
		return "Not enough coins!"
	case NoticePurchaseFailed:
		return "Fail to purchase skill."
	}
	return ""
}

// Account — общий счёт монет, которым владеет сессия.
type Account interface {
	TotalCoins() int
	SetTotalCoins(n int)
}

// Shop проводит покупку: выбор навыка, подтверждение, списание и сохранение.
type Shop struct {
	logger     *zap.Logger
	catalogue  *skill.Catalogue
	account    Account
	store      persist.Store
	playerID   string
	player     *component.Player
	dispatcher *event.Dispatcher

	buying      *skill.Skill
	notice      Notice
	noticeTimer float64
}

func NewShop(logger *zap.Logger, cat *skill.Catalogue, account Account, store persist.Store,
	playerID string, player *component.Player, dispatcher *event.Dispatcher) *Shop {
	return &Shop{
		logger:     logger,
		catalogue:  cat,
		account:    account,
		store:      store,
		playerID:   playerID,
		player:     player,
		dispatcher: dispatcher,
	}
}

// Skills возвращает навыки в порядке витрины
func (s *Shop) Skills() []*skill.Skill {
	return s.catalogue.All()
}

// Buying — навык, ожидающий подтверждения, или nil
func (s *Shop) Buying() *skill.Skill {
	return s.buying
}

func (s *Shop) Confirming() bool {
	return s.buying != nil
}

func (s *Shop) Notice() Notice {
	return s.notice
}

// Select открывает окно подтверждения для навыка.
func (s *Shop) Select(id string) error {
	sk, ok := s.catalogue.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSkill, id)
	}
	if sk.Purchased {
		return ErrAlreadyPurchased
	}
	s.buying = sk
	return nil
}

// Cancel закрывает окно подтверждения без покупки.
func (s *Shop) Cancel() {
	s.buying = nil
}

// Confirm завершает покупку выбранного навыка. Прогресс сначала сохраняется,
// и только после успешной записи меняются монеты и каталог. При любом исходе
// магазин возвращается в состояние «ничего не покупаем».
func (s *Shop) Confirm() error {
	sk := s.buying
	if sk == nil {
		return nil
	}
	defer s.Cancel()

	if sk.Purchased {
		return ErrAlreadyPurchased
	}
	total := s.account.TotalCoins()
	if total < sk.Price() {
		s.show(NoticeNotEnoughCoins)
		return fmt.Errorf("%w: have %d, need %d", ErrNotEnoughCoins, total, sk.Price())
	}

	names := make([]string, 0, len(s.catalogue.All()))
	for _, other := range s.catalogue.All() {
		if other.Purchased || other == sk {
			names = append(names, other.Name())
		}
	}
	progress := persist.Progress{Coins: total - sk.Price(), PurchasedSkills: names}
	if err := s.store.Save(s.playerID, progress); err != nil {
		s.show(NoticePurchaseFailed)
		s.logger.Error("failed to save purchase", zap.String("skill", sk.ID()), zap.Error(err))
		return fmt.Errorf("purchase %s: %w", sk.ID(), err)
	}

	s.account.SetTotalCoins(progress.Coins)
	sk.Unlock(s.player)
	s.logger.Info("skill purchased",
		zap.String("skill", sk.ID()),
		zap.Int("price", sk.Price()),
		zap.Int("coins_left", progress.Coins),
	)
	s.dispatcher.Emit(event.SkillPurchased, sk.ID())
	return nil
}

func (s *Shop) show(n Notice) {
	s.notice = n
	s.noticeTimer = config.NoticeDuration
}

// Update гасит уведомление по истечении времени.
func (s *Shop) Update(dt float64) {
	if s.notice == NoticeNone {
		return
	}
	s.noticeTimer = utils.Approach(s.noticeTimer, dt)
	if s.noticeTimer == 0 {
		s.notice = NoticeNone
	}
}
