package table

import (
	"sort"
)

// settlePots distributes the pot at the end of a round. With one player
// left everything goes to them uncontested. Otherwise contributions are
// carved into tiers at each all-in player's total, ascending; each tier is
// contested only by players whose total contribution reached its ceiling,
// and anything above the highest ceiling goes to the remaining players who
// were never all-in.
func (t *Table) settlePots() {
	remaining := t.remaining()
	if len(remaining) == 0 {
		return
	}

	if len(remaining) == 1 {
		winner := remaining[0]
		winner.addChips(t.pot)
		t.events.Append("%s wins %d (all other players folded)", winner.id, t.pot)
		t.pot = 0
		return
	}

	// showdown: rank every contesting hand once
	ranks := make(map[string]int, len(remaining))
	for _, p := range remaining {
		rank, desc := t.opts.Evaluator.Evaluate(append(p.Cards(), t.community...))
		ranks[p.id] = rank
		t.events.AppendCards(p.Cards(), "%s shows %s", p.id, desc)
	}

	levels := t.allInLevels(remaining)

	maxContribution := 0
	for _, p := range remaining {
		if p.roundBet > maxContribution {
			maxContribution = p.roundBet
		}
	}

	// side pots only exist when an all-in player covered less than someone
	// still in the hand
	if len(levels) == 0 || levels[0] >= maxContribution {
		t.awardPot(t.pot, remaining, ranks, "the pot")
		t.pot = 0
		return
	}

	distributed := 0
	prev := 0
	for _, level := range levels {
		tierPot := 0
		for _, p := range t.active {
			// folded players contribute no more than they actually bet
			c := p.roundBet
			if c > level {
				c = level
			}

			if c -= prev; c > 0 {
				tierPot += c
			}
		}

		eligible := make([]*Player, 0, len(remaining))
		for _, p := range remaining {
			if p.roundBet >= level {
				eligible = append(eligible, p)
			}
		}

		t.awardPot(tierPot, eligible, ranks, "the side pot")
		distributed += tierPot
		prev = level
	}

	// the main pot sits above every all-in ceiling
	if residual := t.pot - distributed; residual > 0 {
		eligible := make([]*Player, 0, len(remaining))
		for _, p := range remaining {
			if !p.allIn {
				eligible = append(eligible, p)
			}
		}

		if len(eligible) == 0 {
			// excess fold contributions above the biggest all-in; the top
			// tier's contestants take it
			top := levels[len(levels)-1]
			for _, p := range remaining {
				if p.roundBet >= top {
					eligible = append(eligible, p)
				}
			}
		}

		t.awardPot(residual, eligible, ranks, "the main pot")
	}

	t.pot = 0
}

// allInLevels returns the distinct total contributions of the all-in
// players still in the hand, ascending
func (t *Table) allInLevels(remaining []*Player) []int {
	seen := make(map[int]bool)
	levels := make([]int, 0)
	for _, p := range remaining {
		if p.allIn && p.roundBet > 0 && !seen[p.roundBet] {
			seen[p.roundBet] = true
			levels = append(levels, p.roundBet)
		}
	}

	sort.Ints(levels)
	return levels
}

// awardPot pays a pot tier to the best hand(s) among the eligible players.
// Ties split evenly; odd chips go to the earliest seats.
func (t *Table) awardPot(amount int, eligible []*Player, ranks map[string]int, label string) {
	if amount == 0 || len(eligible) == 0 {
		return
	}

	var winners []*Player
	best := 0
	for _, p := range eligible {
		r := ranks[p.id]
		switch {
		case len(winners) == 0 || r < best:
			best = r
			winners = []*Player{p}
		case r == best:
			winners = append(winners, p)
		}
	}

	share := amount / len(winners)
	extra := amount % len(winners)
	for i, w := range winners {
		chips := share
		if i < extra {
			chips++
		}

		w.addChips(chips)
		t.events.Append("%s wins %d from %s", w.id, chips, label)
	}
}
