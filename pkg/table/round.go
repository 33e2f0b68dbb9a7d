package table

// StartRound begins a new round for an active player. If a round is already
// in progress the request is queued and the next round starts automatically
// when this one ends.
func (t *Table) StartRound(playerID string) (Result, error) {
	if !t.isActive(playerID) {
		return Result{}, newError(ErrUnknownPlayer, "%s is not an active player", playerID)
	}

	if t.state != WaitingForPlayers {
		t.pendingDeal = playerID
		t.events.Append("%s queued the next round", playerID)
		return result(SuccessQueued, "the next round will start when this one ends"), nil
	}

	t.roundEnded = false
	if err := t.startRound(playerID); err != nil {
		return Result{}, err
	}

	t.run()

	// blinds alone can force everyone all-in and run the round to completion
	if t.roundEnded {
		return result(SuccessRoundEnded, "round complete"), nil
	}

	return result(Success, "round started"), nil
}

// startRound resets per-round state, deals, and posts blinds. The caller is
// responsible for driving the work loop afterwards.
func (t *Table) startRound(requester string) *Error {
	for _, p := range t.active {
		p.newRound()
	}

	// evict busted players before dealing
	kept := make([]*Player, 0, len(t.active))
	for _, p := range t.active {
		if p.stack <= 0 {
			t.inactive = append(t.inactive, p)
			t.events.Append("%s is out of chips and leaves the table", p.id)
			continue
		}

		kept = append(kept, p)
	}
	t.active = kept

	if len(t.active) < 2 {
		return newError(ErrNotEnoughPlayers, "at least two players with chips are needed to start a round")
	}

	if t.dealerIndex >= len(t.active) {
		t.dealerIndex = 0
	}

	t.community = nil
	t.folded = make(map[string]bool)
	t.pot = 0
	t.currentBet = 0
	t.lastRaise = 0
	t.lastNotified = ""

	t.deck.Reset()
	t.deck.Shuffle()

	t.events.Append("%s started a new round", requester)

	// two round-robin passes, not two cards at a time
	for pass := 0; pass < 2; pass++ {
		for _, p := range t.active {
			card, ok := t.deck.Draw()
			if !ok {
				break
			}

			p.cards = append(p.cards, card)
		}
	}

	for _, p := range t.active {
		t.events.AppendEphemeral(p.id, p.Cards(), "your hole cards")
	}

	big := t.opts.Schedule(t.opts.Clock.Now().Weekday())
	t.smallBlind = big / 2
	t.bigBlind = big

	n := len(t.active)
	t.postBlind(t.active[(t.dealerIndex+1)%n], t.smallBlind, "small")
	t.postBlind(t.active[(t.dealerIndex+2)%n], t.bigBlind, "big")
	t.currentBet = t.bigBlind

	t.state = PreFlop
	t.log.WithFields(map[string]interface{}{
		"players":  len(t.active),
		"bigBlind": t.bigBlind,
	}).Info("round started")

	// first to act is the seat after the big blind
	t.currentIndex = (t.dealerIndex + 2) % n
	t.advanceTurn()
	return nil
}

// postBlind commits a forced bet, capped at the poster's stack
func (t *Table) postBlind(p *Player, amount int, name string) {
	if amount > p.stack {
		amount = p.stack
	}

	p.commit(amount)
	t.pot += amount

	if p.allIn {
		t.events.Append("%s posted the %s blind of %d and is all-in", p.id, name, amount)
	} else {
		t.events.Append("%s posted the %s blind of %d", p.id, name, amount)
	}
}

// advanceTurn moves to the next seat in table order, skipping folded and
// all-in players. If no eligible seat exists the index is left alone; the
// completion check will judge the street over.
func (t *Table) advanceTurn() {
	t.lastNotified = ""

	n := len(t.active)
	for i := 1; i <= n; i++ {
		idx := (t.currentIndex + i) % n
		p := t.active[idx]
		if !t.folded[p.id] && !p.allIn {
			t.currentIndex = idx
			return
		}
	}
}

// bettingComplete reports whether the current street needs no further
// decisions. A street is done when at most one player remains, when every
// remaining player is all-in, or when everyone has matched the bet and had
// a turn. The had-a-turn requirement is what gives the big blind a closing
// option pre-flop; it is waived when only a single player can still act.
func (t *Table) bettingComplete() bool {
	remaining := t.remaining()
	if len(remaining) <= 1 {
		return true
	}

	canAct := 0
	for _, p := range remaining {
		if !p.allIn {
			canAct++
		}
	}

	if canAct == 0 {
		return true
	}

	for _, p := range remaining {
		if p.allIn {
			continue
		}

		if p.streetBet != t.currentBet {
			return false
		}

		if !p.hadTurn && canAct > 1 {
			return false
		}
	}

	return true
}

// run drives the state machine forward until it needs a human decision or
// the round is over. Deliberately a loop rather than recursion so cascaded
// street progression, settlement, and queued actions stay bounded.
func (t *Table) run() {
	for t.state.inBettingRound() {
		if t.bettingComplete() {
			if len(t.remaining()) <= 1 || t.state == River {
				t.endRound()
				continue
			}

			t.nextStreet()
			continue
		}

		p, ok := t.CurrentPlayer()
		if !ok {
			return
		}

		if p.queued != nil {
			// clear before executing so a queued action can never be
			// applied twice
			qa := *p.queued
			p.queued = nil
			t.applyQueued(p, qa)
			continue
		}

		t.notifyTurn(p)
		return
	}
}

// nextStreet deals the next community cards and restarts action at the
// first eligible seat after the dealer
func (t *Table) nextStreet() {
	switch t.state {
	case PreFlop:
		t.dealCommunity(3)
		t.state = Flop
		t.events.AppendCards(t.Community(), "Flop")
	case Flop:
		t.dealCommunity(1)
		t.state = Turn
		t.events.AppendCards(t.Community(), "Turn")
	case Turn:
		t.dealCommunity(1)
		t.state = River
		t.events.AppendCards(t.Community(), "River")
	}

	for _, p := range t.active {
		p.newStreet()
	}

	t.currentBet = 0
	t.lastRaise = 0
	t.currentIndex = t.dealerIndex
	t.advanceTurn()
}

// dealCommunity burns one card and deals count community cards
func (t *Table) dealCommunity(count int) {
	t.deck.Burn()
	for i := 0; i < count; i++ {
		card, ok := t.deck.Draw()
		if !ok {
			return
		}

		t.community = append(t.community, card)
	}
}

// endRound settles the pots, reveals any community cards that were never
// dealt, advances the button, applies deferred seating changes, and starts
// the next round if one was queued.
func (t *Table) endRound() {
	t.settlePots()

	if len(t.community) < 5 {
		for len(t.community) < 5 {
			if len(t.community) == 0 {
				t.dealCommunity(3)
			} else {
				t.dealCommunity(1)
			}
		}

		t.events.AppendCards(t.Community(), "the remaining community cards would have been")
	}

	for _, p := range t.active {
		p.newRound()
	}

	t.currentBet = 0
	t.lastRaise = 0
	t.state = WaitingForPlayers
	t.dealerIndex = (t.dealerIndex + 1) % len(t.active)
	t.applySeatingChanges()
	t.roundEnded = true
	t.log.Info("round complete")

	if id := t.pendingDeal; id != "" {
		t.pendingDeal = ""
		if !t.isActive(id) {
			return
		}

		if err := t.startRound(id); err != nil {
			t.events.Append("could not start the next round: %s", err.Error())
		}
	}
}

// applySeatingChanges moves players who asked to leave mid-round off the
// table and seats players who asked to join
func (t *Table) applySeatingChanges() {
	kept := make([]*Player, 0, len(t.active))
	for _, p := range t.active {
		if p.leaveNext {
			p.leaveNext = false
			t.inactive = append(t.inactive, p)
			t.events.Append("%s left the table", p.id)
			continue
		}

		kept = append(kept, p)
	}
	t.active = kept

	still := make([]*Player, 0, len(t.inactive))
	for _, p := range t.inactive {
		if p.joinNext {
			p.joinNext = false
			t.active = append(t.active, p)
			t.events.Append("%s joined the table", p.id)
			continue
		}

		still = append(still, p)
	}
	t.inactive = still

	if t.dealerIndex >= len(t.active) {
		t.dealerIndex = 0
	}
}

func (t *Table) notifyTurn(p *Player) {
	if t.lastNotified == p.id {
		return
	}

	t.lastNotified = p.id

	if toCall := t.currentBet - p.streetBet; toCall > 0 {
		t.events.AppendTurn(p.id, "%s, it's your turn (%d to call)", p.id, toCall)
	} else {
		t.events.AppendTurn(p.id, "%s, it's your turn", p.id)
	}
}
