package table

import "math"

// actingPlayer validates that a round is live and that id is on the clock
func (t *Table) actingPlayer(id string) (*Player, *Error) {
	if !t.state.inBettingRound() {
		return nil, newError(ErrNotPlaying, "there is no round in progress")
	}

	p, ok := t.CurrentPlayer()
	if !ok {
		return nil, newError(ErrNotYourTurn, "no one can act right now")
	}

	if p.id != id {
		if _, at := t.Player(id); !at {
			return nil, newError(ErrUnknownPlayer, "%s is not at the table", id)
		}

		return nil, newError(ErrNotYourTurn, "it is not your turn")
	}

	return p, nil
}

// Fold folds the acting player's hand. If that leaves at most one player
// the round ends immediately.
func (t *Table) Fold(id string) (Result, error) {
	p, aerr := t.actingPlayer(id)
	if aerr != nil {
		return Result{}, aerr
	}

	t.roundEnded = false
	t.applyFold(p)
	t.run()

	if t.roundEnded {
		return result(SuccessRoundEnded, "%s folded and the round is over", id), nil
	}

	return result(Success, "%s folded", id), nil
}

// Check passes the action. Only legal when the player has already matched
// the current bet (including when there is no bet at all).
func (t *Table) Check(id string) (Result, error) {
	p, aerr := t.actingPlayer(id)
	if aerr != nil {
		return Result{}, aerr
	}

	if p.streetBet != t.currentBet {
		return Result{}, newError(ErrCannotCheck, "you cannot check, there is an outstanding bet of %d", t.currentBet-p.streetBet)
	}

	t.roundEnded = false
	t.applyCheck(p)
	t.run()

	if t.roundEnded {
		return result(SuccessRoundEnded, "%s checked and the round is over", id), nil
	}

	return result(Success, "%s checked", id), nil
}

// Call matches the current bet, going all-in if the player cannot cover it
func (t *Table) Call(id string) (Result, error) {
	p, aerr := t.actingPlayer(id)
	if aerr != nil {
		return Result{}, aerr
	}

	if t.currentBet == 0 {
		return Result{}, newError(ErrNothingToCall, "there is no bet to call, you can check")
	}

	if t.currentBet <= p.streetBet {
		return Result{}, newError(ErrAlreadyMatched, "you have already matched the bet of %d", t.currentBet)
	}

	t.roundEnded = false
	amount, allIn := t.applyCall(p)
	t.run()

	switch {
	case t.roundEnded:
		return result(SuccessRoundEnded, "%s called %d and the round is over", id, amount), nil
	case allIn:
		return result(SuccessAllIn, "%s called %d and is all-in", id, amount), nil
	}

	return result(Success, "%s called %d", id, amount), nil
}

// Bet places an opening bet or raises to a new total. The amount is the
// total the player wants in front of them this street, not the increment.
func (t *Table) Bet(id string, amount float64) (Result, error) {
	p, aerr := t.actingPlayer(id)
	if aerr != nil {
		return Result{}, aerr
	}

	total := int(math.Round(amount))
	if verr := t.validateBet(p, total); verr != nil {
		return Result{}, verr
	}

	opening := t.currentBet == 0
	t.roundEnded = false
	t.applyBet(p, total)
	t.run()

	detail := "Raised to %d"
	if opening {
		detail = "Bet %d"
	}

	switch {
	case t.roundEnded:
		return result(SuccessRoundEnded, detail+", ending the round", total), nil
	case p.allIn:
		return result(SuccessAllIn, detail+" (all-in)", total), nil
	}

	return result(Success, detail, total), nil
}

func (t *Table) validateBet(p *Player, total int) *Error {
	if total <= 0 {
		return newError(ErrInvalidAmount, "bet must be a positive amount")
	}

	needed := total - p.streetBet
	if needed <= 0 {
		return newError(ErrInvalidAmount, "you already have %d in play", p.streetBet)
	}

	if needed > p.stack {
		return newError(ErrInsufficientChips, "you only have %d chips behind", p.stack)
	}

	// a bet that cannot exceed the live bet never reopens action; a short
	// stack facing a bet goes all-in through Call
	if t.currentBet > 0 && total <= t.currentBet {
		return newError(ErrBelowCurrentBet, "a raise must exceed the current bet of %d; call instead", t.currentBet)
	}

	// minimum raise, unless the bet is the player's whole stack
	if needed != p.stack {
		minIncrement := t.lastRaise
		if t.bigBlind > minIncrement {
			minIncrement = t.bigBlind
		}

		if total-t.currentBet < minIncrement {
			return newError(ErrBelowMinimumRaise, "the minimum bet is %d", t.currentBet+minIncrement)
		}
	}

	// a bet nobody can match is meaningless; cap at the biggest amount any
	// single opponent could still put in
	ceiling := 0
	for _, o := range t.remaining() {
		if o == p {
			continue
		}

		if v := o.stack + o.streetBet; v > ceiling {
			ceiling = v
		}
	}

	if total > ceiling {
		return newError(ErrAboveMaximumBet, "no opponent can match a bet above %d", ceiling)
	}

	return nil
}

func (t *Table) applyFold(p *Player) {
	t.folded[p.id] = true
	p.hadTurn = true
	t.events.Append("%s folded", p.id)
	t.advanceTurn()
}

func (t *Table) applyCheck(p *Player) {
	p.hadTurn = true
	t.events.Append("%s checked", p.id)
	t.advanceTurn()
}

func (t *Table) applyCall(p *Player) (int, bool) {
	amount := t.currentBet - p.streetBet
	if amount > p.stack {
		amount = p.stack
	}

	p.commit(amount)
	t.pot += amount
	p.hadTurn = true

	if p.allIn {
		t.events.Append("%s called %d and is all-in", p.id, amount)
	} else {
		t.events.Append("%s called %d", p.id, amount)
	}

	t.advanceTurn()
	return amount, p.allIn
}

func (t *Table) applyBet(p *Player, total int) {
	opening := t.currentBet == 0
	needed := total - p.streetBet

	t.lastRaise = total - t.currentBet
	t.currentBet = total
	p.commit(needed)
	t.pot += needed
	p.hadTurn = true

	verb := "raised to"
	if opening {
		verb = "bet"
	}

	if p.allIn {
		t.events.Append("%s %s %d and is all-in", p.id, verb, total)
	} else {
		t.events.Append("%s %s %d", p.id, verb, total)
	}

	t.advanceTurn()
}

// QueueAction pre-registers an action to run the instant it becomes the
// player's turn. A queued call remembers the bet it was queued against and
// is discarded if the bet has moved by the time the turn arrives. If it is
// already the player's turn the action executes immediately.
func (t *Table) QueueAction(id string, kind ActionKind, amount float64) (Result, error) {
	p, ok := t.Player(id)
	if !ok {
		return Result{}, newError(ErrUnknownPlayer, "%s is not at the table", id)
	}

	if !t.isActive(id) || !t.state.inBettingRound() {
		return Result{}, newError(ErrNotPlaying, "%s is not in the current round", id)
	}

	// the turn advance skips these players, so a queued action could never fire
	if t.folded[id] {
		return Result{}, newError(ErrNotPlaying, "%s has folded and cannot act this round", id)
	}

	if p.allIn {
		return Result{}, newError(ErrNotPlaying, "%s is all-in and has no decisions left", id)
	}

	switch kind {
	case ActionCheck, ActionFold, ActionCall, ActionBet:
	default:
		return Result{}, newError(ErrUnknown, "cannot queue unknown action %q", kind)
	}

	amt := int(math.Round(amount))
	if kind == ActionCall {
		amt = t.currentBet
	}

	p.queued = &QueuedAction{Kind: kind, Amount: amt}
	t.events.AppendEphemeral(id, nil, "your %s is queued", kind)

	t.roundEnded = false
	t.run()

	if t.roundEnded {
		return result(SuccessRoundEnded, "%s acted and the round is over", id), nil
	}

	return result(SuccessQueued, "%s will %s when the action reaches them", id, kind), nil
}

// applyQueued executes a pre-registered action if its conditions still
// hold, otherwise discards it
func (t *Table) applyQueued(p *Player, qa QueuedAction) {
	switch qa.Kind {
	case ActionFold:
		t.applyFold(p)
		return
	case ActionCheck:
		if p.streetBet == t.currentBet {
			t.applyCheck(p)
			return
		}
	case ActionCall:
		if t.currentBet > 0 && t.currentBet == qa.Amount && t.currentBet > p.streetBet {
			t.applyCall(p)
			return
		}
	case ActionBet:
		if t.validateBet(p, qa.Amount) == nil {
			t.applyBet(p, qa.Amount)
			return
		}
	}

	t.events.AppendEphemeral(p.id, nil, "your queued %s no longer applies and was discarded", qa.Kind)
}
